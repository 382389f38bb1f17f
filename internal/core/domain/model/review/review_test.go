package review_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	r, err := review.NewReview(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 5, "tasty", review.Approved, time.Now(),
	)
	require.NoError(t, err)
	assert.Equal(t, review.Approved, r.Verdict())
	require.NoError(t, r.Validate())

	for _, rating := range []int{0, 6} {
		_, err = review.NewReview(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), rating, "", review.Pending, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}

	_, err = review.NewReview(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3, "", review.UnknownVerdict, time.Now(),
	)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
