package erract_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/ab22593k/erract"
	"github.com/stretchr/testify/require"
)

func TestCountFrames(t *testing.T) {
	require.Zero(t, erract.CountFrames(nil))
	require.Equal(t, 1, erract.CountFrames(erract.NotFound()))

	inner := erract.Permanent(erract.KindNotFound, "inner")
	outer := erract.Wrap(inner, erract.KindUnexpected, erract.StatusTemporary, "outer")
	require.Equal(t, 2, erract.CountFrames(outer))

	// Foreign frames count too.
	wrapped := fmt.Errorf("context: %w", outer)
	require.Equal(t, 3, erract.CountFrames(wrapped))
}

func TestCountFrames_JoinedTree(t *testing.T) {
	left := erract.Wrap(erract.NotFound(), erract.KindUnexpected, erract.StatusPermanent, "left")
	right := erract.Timeout()
	joined := stderrors.Join(left, right)

	// join node + left chain (2) + right (1)
	require.Equal(t, 4, erract.CountFrames(joined))
}

func TestHasRetryable(t *testing.T) {
	permanentOnly := erract.Wrap(erract.NotFound(), erract.KindUnexpected, erract.StatusPermanent, "outer")
	require.False(t, erract.HasRetryable(permanentOnly))

	mixed := erract.Wrap(erract.Timeout(), erract.KindUnexpected, erract.StatusPermanent, "outer")
	require.True(t, erract.HasRetryable(mixed))
	require.False(t, erract.HasRetryable(nil))
}

func TestHasPermanent(t *testing.T) {
	temporaryOnly := erract.Wrap(erract.Timeout(), erract.KindUnexpected, erract.StatusTemporary, "outer")
	require.False(t, erract.HasPermanent(temporaryOnly))

	mixed := erract.Wrap(erract.NotFound(), erract.KindTimeout, erract.StatusTemporary, "outer")
	require.True(t, erract.HasPermanent(mixed))
}

func TestIsAllRetryable(t *testing.T) {
	allTemporary := erract.Wrap(
		erract.Wrap(erract.Timeout(), erract.KindUnexpected, erract.StatusTemporary, "mid"),
		erract.KindUnexpected, erract.StatusTemporary, "outer")
	require.True(t, erract.IsAllRetryable(allTemporary))

	// A single permanent frame anywhere flips the result.
	onePermanent := erract.Wrap(
		erract.Wrap(erract.NotFound(), erract.KindUnexpected, erract.StatusTemporary, "mid"),
		erract.KindUnexpected, erract.StatusTemporary, "outer")
	require.False(t, erract.IsAllRetryable(onePermanent))
}

func TestIsAllRetryable_ForeignFramesAreVacuous(t *testing.T) {
	// A tree with no erract errors at all is vacuously compliant.
	require.True(t, erract.IsAllRetryable(stderrors.New("foreign")))

	mixed := fmt.Errorf("outer: %w", erract.Timeout())
	require.True(t, erract.IsAllRetryable(mixed))
}

func TestTraversal_DeepChain(t *testing.T) {
	// Root is permanent; wrappers alternate temporary/permanent.
	err := error(erract.Permanent(erract.KindNotFound, "root"))
	for i := 0; i < 1000; i++ {
		status := erract.StatusTemporary
		if i%2 == 1 {
			status = erract.StatusPermanent
		}
		err = erract.Wrap(err, erract.KindUnexpected, status, fmt.Sprintf("layer %d", i))
	}

	require.Equal(t, 1001, erract.CountFrames(err))
	require.True(t, erract.HasRetryable(err))
	require.True(t, erract.HasPermanent(err))
	require.False(t, erract.IsAllRetryable(err))
}

func TestTraversal_WideTree(t *testing.T) {
	leaves := make([]error, 100)
	for i := range leaves {
		leaves[i] = erract.Timeout()
	}
	joined := stderrors.Join(leaves...)

	require.Equal(t, 101, erract.CountFrames(joined))
	require.True(t, erract.IsAllRetryable(joined))

	leaves[50] = erract.NotFound()
	joined = stderrors.Join(leaves...)
	require.False(t, erract.IsAllRetryable(joined))
	require.True(t, erract.HasPermanent(joined))
}
