package erract_test

import (
	stderrors "errors"
	"testing"

	"github.com/ab22593k/erract"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := erract.New(erract.KindNotFound, erract.StatusPermanent, "user not found")

	require.Equal(t, erract.KindNotFound, err.Kind())
	require.Equal(t, erract.StatusPermanent, err.Status())
	require.Equal(t, "user not found", err.Message())
	require.Empty(t, err.Operation())
	require.Empty(t, err.Context())
	require.Nil(t, err.Unwrap())
}

func TestNewf(t *testing.T) {
	err := erract.Newf(erract.KindValidation, erract.StatusPermanent, "bad value: %d (max %d)", 15, 10)
	require.Equal(t, "bad value: 15 (max 10)", err.Message())
}

func TestStatusConstructors(t *testing.T) {
	require.True(t, erract.Permanent(erract.KindNotFound, "x").IsPermanent())
	require.True(t, erract.Temporary(erract.KindTimeout, "x").IsRetryable())

	persistent := erract.Persistent(erract.KindUnexpected, "x")
	require.False(t, persistent.IsRetryable())
	require.False(t, persistent.IsPermanent())
	require.True(t, persistent.Status().IsPersistent())
}

func TestNamedConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *erract.Error
		kind    erract.ErrorKind
		status  erract.ErrorStatus
		message string
	}{
		{"not found", erract.NotFound(), erract.KindNotFound, erract.StatusPermanent, "not found"},
		{"permission denied", erract.PermissionDenied(), erract.KindPermissionDenied, erract.StatusPermanent, "permission denied"},
		{"timeout", erract.Timeout(), erract.KindTimeout, erract.StatusTemporary, "operation timed out"},
		{"validation failed", erract.ValidationFailed(), erract.KindValidation, erract.StatusPermanent, "validation failed"},
		{"unexpected", erract.Unexpected(), erract.KindUnexpected, erract.StatusPermanent, "unexpected error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.err.Kind())
			require.Equal(t, tt.status, tt.err.Status())
			require.Equal(t, tt.message, tt.err.Message())
		})
	}
}

func TestWithOperation(t *testing.T) {
	base := erract.NotFound()
	labeled := base.WithOperation("fetch_user")

	require.Equal(t, "fetch_user", labeled.Operation())
	require.Empty(t, base.Operation(), "WithOperation must not mutate the receiver")
}

func TestWithStatus(t *testing.T) {
	base := erract.Timeout()
	exhausted := base.WithStatus(erract.StatusPersistent)

	require.True(t, base.IsRetryable())
	require.False(t, exhausted.IsRetryable())
}

func TestWithCause_SharedAcrossValues(t *testing.T) {
	cause := stderrors.New("connection refused")
	first := erract.Temporary(erract.KindUnexpected, "dial failed").WithCause(cause)
	second := first.WithOperation("dial")

	require.Same(t, cause, first.Unwrap())
	require.Same(t, cause, second.Unwrap())
	require.True(t, stderrors.Is(first, cause))
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("row not found")
	err := erract.Wrap(cause, erract.KindNotFound, erract.StatusPermanent, "user lookup failed")

	require.Equal(t, erract.KindNotFound, err.Kind())
	require.Same(t, cause, err.Unwrap())
	require.Nil(t, erract.Wrap(nil, erract.KindNotFound, erract.StatusPermanent, "x"))
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("boom")
	err := erract.Wrapf(cause, erract.KindUnexpected, erract.StatusPermanent, "stage %s failed", "build")
	require.Equal(t, "stage build failed", err.Message())
	require.Nil(t, erract.Wrapf(nil, erract.KindUnexpected, erract.StatusPermanent, "x"))
}

func TestEqual(t *testing.T) {
	a := erract.Permanent(erract.KindNotFound, "gone").WithOperation("get")
	b := erract.Permanent(erract.KindNotFound, "gone").WithOperation("get")
	require.True(t, a.Equal(b))

	require.False(t, a.Equal(b.WithOperation("put")))
	require.False(t, a.Equal(erract.Permanent(erract.KindValidation, "gone").WithOperation("get")))
	require.False(t, a.Equal(erract.Temporary(erract.KindNotFound, "gone").WithOperation("get")))
	require.False(t, a.Equal(nil))

	// Context is excluded from equality.
	require.True(t, a.Equal(b.WithContext("k", "v")))
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		err  *erract.Error
		want string
	}{
		{
			"message only",
			erract.Permanent(erract.KindNotFound, "user not found"),
			"user not found",
		},
		{
			"with operation",
			erract.Permanent(erract.KindNotFound, "user not found").WithOperation("lookup_user"),
			"user not found (operation: lookup_user)",
		},
		{
			"with context",
			erract.Permanent(erract.KindNotFound, "user not found").
				WithContext("user_id", "123").
				WithContext("tenant", "acme"),
			"user not found [user_id: 123, tenant: acme]",
		},
		{
			"operation and context",
			erract.Permanent(erract.KindNotFound, "user not found").
				WithOperation("lookup_user").
				WithContext("user_id", "123"),
			"user not found (operation: lookup_user) [user_id: 123]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestTopLevelPredicates(t *testing.T) {
	require.False(t, erract.IsRetryable(nil))
	require.False(t, erract.IsPermanent(nil))
	require.False(t, erract.IsRetryable(stderrors.New("foreign")))

	require.True(t, erract.IsRetryable(erract.Timeout()))
	require.True(t, erract.IsPermanent(erract.NotFound()))

	// Predicates see through foreign wrapping.
	wrapped := stderrors.Join(stderrors.New("outer"), erract.Timeout())
	require.True(t, erract.IsRetryable(wrapped))
}

func TestKindOfStatusOf(t *testing.T) {
	require.Equal(t, erract.KindUnexpected, erract.KindOf(nil))
	require.Equal(t, erract.StatusPermanent, erract.StatusOf(nil))
	require.Equal(t, erract.StatusPermanent, erract.StatusOf(stderrors.New("foreign")))

	err := erract.Temporary(erract.KindTimeout, "slow")
	require.Equal(t, erract.KindTimeout, erract.KindOf(err))
	require.Equal(t, erract.StatusTemporary, erract.StatusOf(err))
}

func TestBuilder(t *testing.T) {
	cause := stderrors.New("underlying")
	err := erract.NewBuilder(erract.KindNotFound, erract.StatusPermanent, "resource not found").
		WithOperation("fetch_resource").
		WithContext("resource_id", "abc123").
		WithContext("resource_type", "user").
		WithCause(cause).
		Build()

	require.Equal(t, erract.KindNotFound, err.Kind())
	require.Equal(t, "fetch_resource", err.Operation())
	require.Equal(t, []erract.Pair{
		{Key: "resource_id", Value: "abc123"},
		{Key: "resource_type", Value: "user"},
	}, err.Context())
	require.Same(t, cause, err.Unwrap())
}

func TestBuilder_WithContextPairs(t *testing.T) {
	err := erract.NewBuilder(erract.KindValidation, erract.StatusPermanent, "invalid").
		WithContextPairs(
			erract.Pair{Key: "field", Value: "email"},
			erract.Pair{Key: "reason", Value: "missing @"},
		).
		Build()
	require.Len(t, err.Context(), 2)
}
