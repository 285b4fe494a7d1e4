package erract

// Wrapped errors form a tree: a frame's children are what its Unwrap method
// exposes, either a single cause or a slice (errors.Join and multi-cause
// wrappers). The queries below aggregate over every frame of such a tree,
// downcasting each one to *Error with a comma-ok type assertion; frames
// carrying any other payload simply don't match.
//
// Traversal is iterative with an explicit stack, so chains hundreds or
// thousands of frames deep cannot overflow the goroutine stack. Visit order
// is unspecified beyond "each frame exactly once"; all queries here are
// order-independent.

// frameStackInline is the traversal stack's inline capacity. Deeper trees
// spill to a heap-allocated stack transparently.
const frameStackInline = 32

// walkFrames visits every frame of the error tree rooted at err, including
// the root. Returning false from visit stops the walk early.
func walkFrames(err error, visit func(error) bool) {
	if err == nil {
		return
	}
	var inline [frameStackInline]error
	stack := append(inline[:0], err)
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(frame) {
			return
		}
		switch u := frame.(type) {
		case interface{ Unwrap() []error }:
			for _, child := range u.Unwrap() {
				if child != nil {
					stack = append(stack, child)
				}
			}
		case interface{ Unwrap() error }:
			if child := u.Unwrap(); child != nil {
				stack = append(stack, child)
			}
		}
	}
}

// CountFrames returns the total number of frames in err's tree, including
// the root. Returns 0 for nil.
func CountFrames(err error) int {
	count := 0
	walkFrames(err, func(error) bool {
		count++
		return true
	})
	return count
}

// HasRetryable reports whether any frame in err's tree is an erract error
// that is safe to retry.
func HasRetryable(err error) bool {
	found := false
	walkFrames(err, func(frame error) bool {
		if e, ok := frame.(*Error); ok && e.IsRetryable() {
			found = true
			return false
		}
		return true
	})
	return found
}

// HasPermanent reports whether any frame in err's tree is an erract error
// with permanent status.
func HasPermanent(err error) bool {
	found := false
	walkFrames(err, func(frame error) bool {
		if e, ok := frame.(*Error); ok && e.IsPermanent() {
			found = true
			return false
		}
		return true
	})
	return found
}

// IsAllRetryable reports whether every erract error in err's tree is safe to
// retry. Frames that are not erract errors are vacuously compliant, so a
// tree with no erract errors at all reports true.
func IsAllRetryable(err error) bool {
	all := true
	walkFrames(err, func(frame error) bool {
		if e, ok := frame.(*Error); ok && !e.IsRetryable() {
			all = false
			return false
		}
		return true
	})
	return all
}
