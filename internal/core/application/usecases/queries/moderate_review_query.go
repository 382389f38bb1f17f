package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrModerateReviewQueryIsNotConstructed = errors.New(
	"ModerateReviewQuery must be created via NewModerateReviewQuery constructor",
)

// ModerateReviewQuery asks for a spam verdict on a comment without storing anything.
type ModerateReviewQuery struct {
	comment      string
	userID       kernel.UUID
	restaurantID kernel.UUID
	guard        guard.ConstructorGuard
}

func NewModerateReviewQuery(comment string, userID, restaurantID kernel.UUID) (ModerateReviewQuery, error) {
	if err := errors.Join(userID.Validate(), restaurantID.Validate()); err != nil {
		return ModerateReviewQuery{}, err
	}
	return ModerateReviewQuery{
		comment:      comment,
		userID:       userID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ModerateReviewQuery) Validate() error {
	return q.guard.Validate(ErrModerateReviewQueryIsNotConstructed)
}

func (q ModerateReviewQuery) Comment() string           { return q.comment }
func (q ModerateReviewQuery) UserID() kernel.UUID       { return q.userID }
func (q ModerateReviewQuery) RestaurantID() kernel.UUID { return q.restaurantID }
