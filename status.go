package erract

// ErrorStatus encodes explicit retry semantics for an error.
// It eliminates guesswork when implementing retry logic: an error is safe to
// retry if and only if its status is StatusTemporary.
type ErrorStatus int

const (
	// StatusPermanent indicates the error will not succeed on retry.
	// Examples: not found, permission denied, validation failures.
	StatusPermanent ErrorStatus = iota

	// StatusTemporary indicates the error is safe to retry.
	// Examples: network timeouts, rate limiting, temporary unavailability.
	StatusTemporary

	// StatusPersistent indicates the error kept failing after retries.
	// Use it when recovery has already been attempted.
	StatusPersistent
)

// IsRetryable returns true if the error is safe to retry.
func (s ErrorStatus) IsRetryable() bool {
	return s == StatusTemporary
}

// IsPermanent returns true if retrying won't help.
func (s ErrorStatus) IsPermanent() bool {
	return s == StatusPermanent
}

// IsPersistent returns true if the error persisted after retries.
func (s ErrorStatus) IsPersistent() bool {
	return s == StatusPersistent
}

// String returns the human-readable name of the status.
func (s ErrorStatus) String() string {
	switch s {
	case StatusPermanent:
		return "permanent"
	case StatusTemporary:
		return "temporary"
	case StatusPersistent:
		return "persistent"
	default:
		return "unknown"
	}
}

// MachineString returns the stable wire representation of the status.
// It is identical to String; both exist so call sites can state intent.
func (s ErrorStatus) MachineString() string {
	return s.String()
}
