package catalogrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AddRestaurant(ctx context.Context, restaurant *catalog.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}
	dto := restaurantFromDomain(restaurant)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCatalogRepository) AddMenuItem(ctx context.Context, item *catalog.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	dto := menuItemFromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCatalogRepository) GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurantId", id.String())
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

func (r *GormCatalogRepository) GetMenuItemByOption(ctx context.Context, optionID kernel.UUID) (*catalog.MenuItem, error) {
	if err := optionID.Validate(); err != nil {
		return nil, err
	}

	var option OptionDTO
	if err := r.db.WithContext(ctx).Select("menu_item_id").First(&option, "id = ?", optionID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("optionId", optionID.String())
		}
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).Preload("Options").First(&dto, "id = ?", option.MenuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("optionId", optionID.String())
		}
		return nil, err
	}

	return menuItemToDomain(dto)
}

func (r *GormCatalogRepository) GetMenu(ctx context.Context, optionIDs []kernel.UUID) (catalog.Menu, error) {
	if len(optionIDs) == 0 {
		return catalog.Menu{}, nil
	}

	ids := make([]uuid.UUID, 0, len(optionIDs))
	for _, id := range optionIDs {
		ids = append(ids, id.Bytes())
	}

	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).
		Preload("Options").
		Where("id IN (?)", r.db.Model(&OptionDTO{}).Select("menu_item_id").Where("id IN ?", ids)).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	menu := make(catalog.Menu, 0, len(dtos))
	for _, dto := range dtos {
		item, itemErr := menuItemToDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		menu = append(menu, item)
	}
	return menu, nil
}
