package erract

// ErrorKind categorizes an error by what the caller should do about it,
// not by where the failure came from.
//
// The set of kinds is deliberately open: the base catalog below covers the
// common cases, the HTTP/database/storage catalogs in this package cover
// their domains, and consumers may define further kinds by implementing this
// interface. Code that switches over kinds must therefore keep a default
// branch; new kinds are not a breaking change.
//
// IsRetryable on a kind is an advisory hint used when classifying a raw
// failure. It never overrides an Error's status: retry decisions read
// Error.IsRetryable, which is a pure function of ErrorStatus.
type ErrorKind interface {
	// IsRetryable reports whether this kind typically represents a
	// retryable condition.
	IsRetryable() bool

	// MachineString returns the stable wire representation of the kind,
	// lower snake_case.
	MachineString() string

	// String returns the human-readable name of the kind.
	String() string
}

// Kind is the base error kind catalog.
type Kind int

const (
	// KindNotFound means the resource does not exist. Don't retry.
	KindNotFound Kind = iota

	// KindPermissionDenied means access was refused. Won't succeed on
	// retry; fix permissions first.
	KindPermissionDenied

	// KindTimeout means the operation ran out of time. Safe to retry if
	// the operation was not already persisted.
	KindTimeout

	// KindValidation means input validation failed. Won't fix on retry;
	// fix the input.
	KindValidation

	// KindUnexpected means an unknown or unclassified failure. May or may
	// not be retryable depending on context.
	KindUnexpected
)

// IsRetryable reports the advisory retry hint for the base kind.
func (k Kind) IsRetryable() bool {
	return k == KindTimeout
}

// MachineString returns the stable wire representation of the kind.
func (k Kind) MachineString() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindPermissionDenied:
		return "permission_denied"
	case KindTimeout:
		return "timeout"
	case KindValidation:
		return "validation_error"
	case KindUnexpected:
		return "unexpected_error"
	default:
		return "unknown"
	}
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindTimeout:
		return "timeout"
	case KindValidation:
		return "validation error"
	case KindUnexpected:
		return "unexpected error"
	default:
		return "unknown"
	}
}
