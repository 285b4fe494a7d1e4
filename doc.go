// Package erract provides a structured error value that carries an actionable
// classification, explicit retry semantics, and free-form key/value diagnostic
// context through a call chain.
//
// Errors are classified on two independent axes:
//
//   - ErrorKind says what failed, categorized by what the caller should do
//     about it (not by where the failure came from).
//   - ErrorStatus says whether retrying can help. Retryability is a pure
//     function of status; kind-level retry hints are advisory only.
//
// Errors are constructed once at the failure site and enriched as they
// propagate. Every enrichment method is copy-on-write: it returns a new
// value and never mutates one that may be observed elsewhere.
//
//	err := erract.Permanent(erract.KindNotFound, "user not found").
//		WithOperation("lookup_user").
//		WithContext("user_id", "12345")
//
//	if erract.IsRetryable(err) {
//	    // schedule a retry
//	}
//
// Context pairs are stored through a tagged ContextHandle that picks between
// no storage, an owned heap slice, and a per-worker ContextArena. The arena
// is a bump buffer owned by a single goroutine; a handle into it resolves to
// its pairs only when presented with the owning arena, and degrades to an
// empty result otherwise. See ContextArena and ArenaRegistry.
//
// Wrapped errors form a tree through the standard Unwrap conventions
// (including errors.Join). CountFrames, HasRetryable, HasPermanent and
// IsAllRetryable answer aggregate queries over such a tree iteratively, so
// chains thousands of frames deep cannot overflow the goroutine stack.
//
// For machine consumption, errors render to a fixed-order machine string
// (MachineString) and to JSON (JSON, WriteJSON, and the json.Marshaler
// interface). *Error also implements slog.LogValuer for structured logging.
package erract
