package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand is a customer's review of a delivered order.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	userID   kernel.UUID
	orderID  kernel.UUID
	rating   int
	comment  string

	guard guard.ConstructorGuard
}

func NewSubmitReviewCommand(userID, orderID kernel.UUID, rating int, comment string) (SubmitReviewCommand, error) {
	var ratingErr error
	if rating < 1 || rating > 5 {
		ratingErr = errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}
	if err := errors.Join(userID.Validate(), orderID.Validate(), ratingErr); err != nil {
		return SubmitReviewCommand{}, err
	}

	return SubmitReviewCommand{
		reviewID: kernel.NewUUID(),
		userID:   userID,
		orderID:  orderID,
		rating:   rating,
		comment:  comment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

func (c SubmitReviewCommand) ReviewID() kernel.UUID { return c.reviewID }
func (c SubmitReviewCommand) UserID() kernel.UUID   { return c.userID }
func (c SubmitReviewCommand) OrderID() kernel.UUID  { return c.orderID }
func (c SubmitReviewCommand) Rating() int           { return c.rating }
func (c SubmitReviewCommand) Comment() string       { return c.comment }
