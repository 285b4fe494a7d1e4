package erract

// handleKind is the tag of a ContextHandle.
type handleKind uint8

const (
	handleEmpty handleKind = iota
	handleHeap
	handleArena
)

// ContextHandle records where an error's context pairs physically live:
// nowhere (the zero value), in a slice owned by the error itself, or in a
// ContextArena identified by arena id, byte offset and pair count.
//
// The handle owns no arena storage; the arena buffer outlives any error that
// references it until the owner calls Clear. An arena-backed handle is
// resolvable only against its owning arena; resolved anywhere else it yields
// an empty result instead of reading across the ownership boundary.
type ContextHandle struct {
	kind    handleKind
	pairs   []Pair
	arenaID uint64
	offset  int
	count   int
}

func heapHandle(pairs []Pair) ContextHandle {
	if len(pairs) == 0 {
		return ContextHandle{}
	}
	return ContextHandle{kind: handleHeap, pairs: pairs}
}

func arenaHandle(a *ContextArena, offset, count int) ContextHandle {
	if count == 0 {
		return ContextHandle{}
	}
	return ContextHandle{kind: handleArena, arenaID: a.id, offset: offset, count: count}
}

// Len returns the number of pairs the handle refers to.
func (h ContextHandle) Len() int {
	switch h.kind {
	case handleHeap:
		return len(h.pairs)
	case handleArena:
		return h.count
	default:
		return 0
	}
}

// IsEmpty reports whether the handle refers to no pairs.
func (h ContextHandle) IsEmpty() bool {
	return h.Len() == 0
}

// resolve is the single decode path for every context read.
//
// Empty resolves to nil, heap storage to its owned pairs, and arena storage
// to the decoded pairs if and only if the presented arena is the owner.
// Passing nil, or a different arena, yields nil: the deliberate degradation
// for handles read outside their owning worker. The returned slice aliases
// internal storage; callers that expose it must copy first.
func (h ContextHandle) resolve(a *ContextArena) []Pair {
	switch h.kind {
	case handleHeap:
		return h.pairs
	case handleArena:
		if a == nil || a.id != h.arenaID {
			return nil
		}
		return a.GetPairs(h.offset, h.count)
	default:
		return nil
	}
}

func copyPairs(pairs []Pair) []Pair {
	if len(pairs) == 0 {
		return nil
	}
	out := make([]Pair, len(pairs))
	copy(out, pairs)
	return out
}

// Context returns the error's context pairs in insertion order.
//
// Heap-backed context is always readable. Arena-backed context resolves to
// empty here because no arena is presented; use ContextIn from the owning
// worker, or Promote the error before it crosses goroutines.
func (e *Error) Context() []Pair {
	return copyPairs(e.context.resolve(nil))
}

// ContextIn returns the error's context pairs, resolving arena-backed
// storage against the given arena. A handle owned by a different arena
// resolves to empty.
func (e *Error) ContextIn(a *ContextArena) []Pair {
	return copyPairs(e.context.resolve(a))
}

// ContextLen returns the number of context pairs without decoding them.
func (e *Error) ContextLen() int {
	return e.context.Len()
}

// WithContext returns a copy of the error with one more context pair, stored
// on the heap. It always succeeds and never mutates the receiver.
//
// This is the portable path: the resulting error carries its context across
// goroutines. If the receiver's context lives in an arena, the current pairs
// are resolved without one and therefore come back empty, the same
// degradation as any other read outside the owning worker. Use WithContextIn
// from the owning worker to keep arena-backed context intact.
func (e *Error) WithContext(key, value string) *Error {
	cur := e.context.resolve(nil)
	pairs := make([]Pair, 0, len(cur)+1)
	pairs = append(pairs, cur...)
	pairs = append(pairs, Pair{Key: key, Value: value})

	clone := *e
	clone.context = heapHandle(pairs)
	return &clone
}

// WithContextIn returns a copy of the error with one more context pair,
// using the worker's arena for multi-pair storage.
//
// A single resulting pair is stored on the heap, skipping the arena for the
// common case. With more than one pair, the entire accumulated set is
// committed to the arena and the copy holds an arena handle.
//
// Each call re-commits the full growing set, so a chain of n additions
// writes O(n²) bytes into the arena in total. The arena only ever grows
// until Clear, which keeps stale handles safe; see ContextArena.
func (e *Error) WithContextIn(a *ContextArena, key, value string) *Error {
	if a == nil {
		return e.WithContext(key, value)
	}

	cur := e.context.resolve(a)
	pairs := make([]Pair, 0, len(cur)+1)
	pairs = append(pairs, cur...)
	pairs = append(pairs, Pair{Key: key, Value: value})

	clone := *e
	if len(pairs) == 1 {
		clone.context = heapHandle(pairs)
	} else {
		offset, count := a.PushPairs(pairs)
		clone.context = arenaHandle(a, offset, count)
	}
	return &clone
}

// Promote returns a copy of the error whose context is guaranteed to live on
// the heap, resolving arena-backed storage against the given arena. Call it
// from the owning worker before handing an error to another goroutine;
// without promotion the arena-backed context is unreadable there.
//
// Errors whose context is already empty or heap-backed are returned as-is.
func (e *Error) Promote(a *ContextArena) *Error {
	if e.context.kind != handleArena {
		return e
	}
	clone := *e
	clone.context = heapHandle(copyPairs(e.context.resolve(a)))
	return &clone
}
