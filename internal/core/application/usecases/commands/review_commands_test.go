package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) seedDeliveredOrder(t *testing.T, userID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		userID,
		kernel.NewUUID(),
		restaurantID,
		nil,
		decimal.RequireFromString("520.00"),
		order.Delivered,
		e.clock.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, e.factory.Create().OrderRepository().Add(t.Context(), o))
	return o
}

func TestNewSubmitReviewCommand(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		_, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), kernel.NewUUID(), rating, "ok")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}

	cmd, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), kernel.NewUUID(), 5, "")
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
}

func TestSubmitReviewCommandHandler(t *testing.T) {
	env := newTestEnv(t)
	handler := commands.NewSubmitReviewCommandHandler(env.reviewUoW(), env.clock)
	restaurantID := kernel.NewUUID()

	submit := func(t *testing.T, userID, orderID kernel.UUID, comment string) (review.Verdict, error) {
		cmd, err := commands.NewSubmitReviewCommand(userID, orderID, 4, comment)
		require.NoError(t, err)
		return handler.Handle(t.Context(), cmd)
	}

	author := env.seedUser(t, true)

	t.Run("clean comment is approved", func(t *testing.T) {
		o := env.seedDeliveredOrder(t, author, restaurantID)

		verdict, err := submit(t, author, o.ID(), "Hot and fast, thanks")

		require.NoError(t, err)
		assert.Equal(t, review.Approved, verdict)
	})

	t.Run("second review of the same order", func(t *testing.T) {
		o := env.seedDeliveredOrder(t, author, restaurantID)
		_, err := submit(t, author, o.ID(), "Lovely pasta")
		require.NoError(t, err)

		_, err = submit(t, author, o.ID(), "Lovely pasta again")

		require.ErrorIs(t, err, errs.ErrAlreadyExists)
	})

	t.Run("stop word is banned", func(t *testing.T) {
		o := env.seedDeliveredOrder(t, author, restaurantID)

		verdict, err := submit(t, author, o.ID(), "Great deals at HTTPS://spam.example")

		require.NoError(t, err)
		assert.Equal(t, review.Banned, verdict)
	})

	t.Run("author repeating an earlier comment is banned", func(t *testing.T) {
		o := env.seedDeliveredOrder(t, author, kernel.NewUUID())

		verdict, err := submit(t, author, o.ID(), "hot and FAST, thanks")

		require.NoError(t, err)
		assert.Equal(t, review.Banned, verdict)
	})

	t.Run("comment already left at the restaurant by someone else is banned", func(t *testing.T) {
		other := env.seedUser(t, true)
		o := env.seedDeliveredOrder(t, other, restaurantID)

		verdict, err := submit(t, other, o.ID(), "Lovely pasta")

		require.NoError(t, err)
		assert.Equal(t, review.Banned, verdict)
	})

	t.Run("another user's order", func(t *testing.T) {
		o := env.seedDeliveredOrder(t, author, restaurantID)

		_, err := submit(t, env.seedUser(t, true), o.ID(), "nice")

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("order not delivered yet", func(t *testing.T) {
		o := env.seedOrder(t, author, order.Taked, nil)

		_, err := submit(t, author, o.ID(), "where is it")

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := submit(t, author, kernel.NewUUID(), "nice")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
