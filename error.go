package erract

import (
	"fmt"
	"strings"
)

// Error is the structured error value.
//
// It carries an actionable kind, explicit retry status, a human-readable
// message, an optional operation label, key/value context through a
// ContextHandle, and an optional shared cause. Errors are
// immutable-by-convention: every With* method returns a new value.
//
// The cause, when set, is shared rather than copied; any number of Error
// values may reference the same underlying error, and the standard Unwrap
// convention exposes it to errors.Is, errors.As and the frame traversal in
// this package.
type Error struct {
	kind      ErrorKind
	status    ErrorStatus
	message   string
	operation string
	context   ContextHandle
	cause     error
}

// New creates an error with the given kind, status and message.
func New(kind ErrorKind, status ErrorStatus, message string) *Error {
	return &Error{kind: kind, status: status, message: message}
}

// Newf creates an error with a formatted message.
func Newf(kind ErrorKind, status ErrorStatus, format string, args ...any) *Error {
	return New(kind, status, fmt.Sprintf(format, args...))
}

// Permanent creates an error that cannot be retried.
func Permanent(kind ErrorKind, message string) *Error {
	return New(kind, StatusPermanent, message)
}

// Temporary creates an error that is safe to retry.
func Temporary(kind ErrorKind, message string) *Error {
	return New(kind, StatusTemporary, message)
}

// Persistent creates an error that kept failing after retries.
func Persistent(kind ErrorKind, message string) *Error {
	return New(kind, StatusPersistent, message)
}

// Named constructors for the common cases, with preset messages.

// NotFound creates a permanent "not found" error.
func NotFound() *Error {
	return Permanent(KindNotFound, "not found")
}

// PermissionDenied creates a permanent "permission denied" error.
func PermissionDenied() *Error {
	return Permanent(KindPermissionDenied, "permission denied")
}

// Timeout creates a temporary "operation timed out" error.
func Timeout() *Error {
	return Temporary(KindTimeout, "operation timed out")
}

// ValidationFailed creates a permanent "validation failed" error.
func ValidationFailed() *Error {
	return Permanent(KindValidation, "validation failed")
}

// Unexpected creates a permanent "unexpected error".
func Unexpected() *Error {
	return Permanent(KindUnexpected, "unexpected error")
}

// Wrap creates an error that records err as its shared cause. The cause is
// reachable through Unwrap and counts as a frame in tree traversal.
// Returns nil if err is nil.
func Wrap(err error, kind ErrorKind, status ErrorStatus, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(kind, status, message)
	e.cause = err
	return e
}

// Wrapf is Wrap with a formatted message. Returns nil if err is nil.
func Wrapf(err error, kind ErrorKind, status ErrorStatus, format string, args ...any) *Error {
	return Wrap(err, kind, status, fmt.Sprintf(format, args...))
}

// Kind returns the error kind.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Status returns the error status.
func (e *Error) Status() ErrorStatus {
	return e.status
}

// Message returns the human-readable message.
func (e *Error) Message() string {
	return e.message
}

// Operation returns the operation label, or "" if none was set.
func (e *Error) Operation() string {
	return e.operation
}

// IsRetryable reports whether the error is safe to retry. This is a pure
// function of status, independent of kind.
func (e *Error) IsRetryable() bool {
	return e.status.IsRetryable()
}

// IsPermanent reports whether retrying won't help.
func (e *Error) IsPermanent() bool {
	return e.status.IsPermanent()
}

// Unwrap returns the shared cause, or nil. It makes wrapped erract errors
// traversable by errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithOperation returns a copy of the error with the operation label set.
func (e *Error) WithOperation(operation string) *Error {
	clone := *e
	clone.operation = operation
	return &clone
}

// WithStatus returns a copy of the error with the status replaced.
func (e *Error) WithStatus(status ErrorStatus) *Error {
	clone := *e
	clone.status = status
	return &clone
}

// WithCause returns a copy of the error with err recorded as its shared
// cause, replacing any previous cause.
func (e *Error) WithCause(err error) *Error {
	clone := *e
	clone.cause = err
	return &clone
}

// Equal reports whether two errors have the same kind, status, message and
// operation. Context is deliberately excluded: an arena-backed handle cannot
// be resolved safely from an arbitrary caller, so context never participates
// in equality.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.kind == other.kind &&
		e.status == other.status &&
		e.message == other.message &&
		e.operation == other.operation
}

// Error renders the error for humans:
//
//	message[ " (operation: " op ")" ][ " [k1: v1, k2: v2]" ]
//
// The context segment appears only when context is non-empty and readable
// without an arena, with pairs in insertion order.
func (e *Error) Error() string {
	pairs := e.Context()
	if e.operation == "" && len(pairs) == 0 {
		return e.message
	}

	var b strings.Builder
	b.Grow(len(e.message) + 32)
	b.WriteString(e.message)
	if e.operation != "" {
		b.WriteString(" (operation: ")
		b.WriteString(e.operation)
		b.WriteByte(')')
	}
	if len(pairs) > 0 {
		b.WriteString(" [")
		for i, p := range pairs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Key)
			b.WriteString(": ")
			b.WriteString(p.Value)
		}
		b.WriteByte(']')
	}
	return b.String()
}

// IsRetryable reports whether err is an erract error that is safe to retry.
// Returns false for nil and for foreign errors, the safe default for retry
// decisions. It inspects the outermost erract error in the chain.
func IsRetryable(err error) bool {
	if e := outermost(err); e != nil {
		return e.IsRetryable()
	}
	return false
}

// IsPermanent reports whether err is an erract error whose status is
// permanent. Returns false for nil and for foreign errors.
func IsPermanent(err error) bool {
	if e := outermost(err); e != nil {
		return e.IsPermanent()
	}
	return false
}

// KindOf returns the kind of the outermost erract error in err's chain.
// Returns KindUnexpected for nil and for foreign errors.
func KindOf(err error) ErrorKind {
	if e := outermost(err); e != nil {
		return e.kind
	}
	return KindUnexpected
}

// StatusOf returns the status of the outermost erract error in err's chain.
// Returns StatusPermanent for nil and for foreign errors, the safe default
// that prevents inappropriate retries.
func StatusOf(err error) ErrorStatus {
	if e := outermost(err); e != nil {
		return e.status
	}
	return StatusPermanent
}

// outermost finds the first *Error in err's unwrap chain, walking
// iteratively to tolerate deep chains.
func outermost(err error) *Error {
	found := (*Error)(nil)
	walkFrames(err, func(frame error) bool {
		if e, ok := frame.(*Error); ok {
			found = e
			return false
		}
		return true
	})
	return found
}
