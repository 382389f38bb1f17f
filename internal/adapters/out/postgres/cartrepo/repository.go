package cartrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("cart", aggregate.UserID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the restaurant binding and replaces all lines.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&CartDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"restaurant_id": dto.RestaurantID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartId", aggregate.ID().String())
	}

	if err := db.Where("cart_id = ?", dto.ID).Delete(&CartLineDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Lines) > 0 {
		if err := db.Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	return r.get(ctx, r.db, "id = ?", id, "cartId")
}

func (r *GormCartRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), "id = ?", id, "cartId")
}

func (r *GormCartRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	return r.get(ctx, r.db, "user_id = ?", userID, "userId")
}

func (r *GormCartRepository) GetByLine(ctx context.Context, lineID kernel.UUID) (*cart.Cart, error) {
	if err := lineID.Validate(); err != nil {
		return nil, err
	}

	var line CartLineDTO
	if err := r.db.WithContext(ctx).Select("cart_id").First(&line, "id = ?", lineID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cartLineId", lineID.String())
		}
		return nil, err
	}

	cartID, err := kernel.UUIDFromBytes(line.CartID[:])
	if err != nil {
		return nil, err
	}
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), "id = ?", cartID, "cartId")
}

func (r *GormCartRepository) get(
	ctx context.Context,
	db *gorm.DB,
	where string,
	id kernel.UUID,
	param string,
) (*cart.Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := db.WithContext(ctx).
		Preload("Lines", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		First(&dto, where, id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
