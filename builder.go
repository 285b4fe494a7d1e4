package erract

// Builder accumulates the optional parts of an Error before construction.
// Context added through the builder is stored on the heap; use
// Error.WithContextIn afterwards for arena-backed storage.
//
// Example:
//
//	err := erract.NewBuilder(erract.KindNotFound, erract.StatusPermanent, "resource not found").
//		WithOperation("fetch_resource").
//		WithContext("resource_id", "abc123").
//		Build()
type Builder struct {
	err   Error
	pairs []Pair
}

// NewBuilder starts a builder with the required error parameters.
func NewBuilder(kind ErrorKind, status ErrorStatus, message string) *Builder {
	return &Builder{
		err: Error{kind: kind, status: status, message: message},
	}
}

// WithOperation sets the operation label.
func (b *Builder) WithOperation(operation string) *Builder {
	b.err.operation = operation
	return b
}

// WithContext appends one context pair.
func (b *Builder) WithContext(key, value string) *Builder {
	b.pairs = append(b.pairs, Pair{Key: key, Value: value})
	return b
}

// WithContextPairs appends multiple context pairs in order.
func (b *Builder) WithContextPairs(pairs ...Pair) *Builder {
	b.pairs = append(b.pairs, pairs...)
	return b
}

// WithCause records err as the shared cause.
func (b *Builder) WithCause(err error) *Builder {
	b.err.cause = err
	return b
}

// Build returns the finished error. The builder must not be reused after
// Build; the returned error owns the accumulated context.
func (b *Builder) Build() *Error {
	e := b.err
	e.context = heapHandle(b.pairs)
	return &e
}
