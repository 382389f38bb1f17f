package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
)

type ReviewRepository interface {
	Add(ctx context.Context, aggregate *review.Review) error
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)

	// CommentsByUser returns every comment the user has left.
	CommentsByUser(ctx context.Context, userID kernel.UUID) ([]string, error)

	// LatestCommentsByRestaurant returns up to limit comments, newest first.
	LatestCommentsByRestaurant(ctx context.Context, restaurantID kernel.UUID, limit int) ([]string, error)
}
