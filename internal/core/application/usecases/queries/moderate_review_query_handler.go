package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

type ModerateReviewQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	moderator  services.ReviewModerator
}

func NewModerateReviewQueryHandler(uowFactory ports.UnitOfWorkFactory) ModerateReviewQueryHandler {
	return ModerateReviewQueryHandler{
		uowFactory: uowFactory,
		moderator:  services.NewReviewModerator(),
	}
}

// Handle compares the comment with the author's history and the restaurant's
// latest services.RestaurantHistoryDepth comments.
func (h ModerateReviewQueryHandler) Handle(ctx context.Context, query ModerateReviewQuery) (review.Verdict, error) {
	if err := query.Validate(); err != nil {
		return review.UnknownVerdict, err
	}

	repo := h.uowFactory.Create().ReviewRepository()

	userComments, err := repo.CommentsByUser(ctx, query.UserID())
	if err != nil {
		return review.UnknownVerdict, err
	}

	restaurantComments, err := repo.LatestCommentsByRestaurant(ctx, query.RestaurantID(), services.RestaurantHistoryDepth)
	if err != nil {
		return review.UnknownVerdict, err
	}

	return h.moderator.Moderate(query.Comment(), userComments, restaurantComments), nil
}
