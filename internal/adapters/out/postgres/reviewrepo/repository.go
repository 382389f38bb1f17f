package reviewrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("review", aggregate.OrderID().String())
		}
		return err
	}
	return nil
}

func (r *GormReviewRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ReviewDTO{}).Where("order_id = ?", orderID.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormReviewRepository) CommentsByUser(ctx context.Context, userID kernel.UUID) ([]string, error) {
	comments := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("user_id = ? AND comment <> ''", userID.Bytes()).
		Pluck("comment", &comments).Error
	return comments, err
}

func (r *GormReviewRepository) LatestCommentsByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
	limit int,
) ([]string, error) {
	comments := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("restaurant_id = ? AND comment <> ''", restaurantID.Bytes()).
		Order("created_at DESC").
		Limit(limit).
		Pluck("comment", &comments).Error
	return comments, err
}
