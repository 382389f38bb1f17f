package catalogrepo

import (
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO keeps opening hours as minutes since midnight.
type RestaurantDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Active   bool      `gorm:"not null"`
	OpensAt  int       `gorm:"type:int;not null"`
	ClosesAt int       `gorm:"type:int;not null"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type MenuItemDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Name         string      `gorm:"type:varchar(255);not null"`
	Available    bool        `gorm:"not null"`
	Options      []OptionDTO `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

type OptionDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	PrepMinutes int             `gorm:"type:int;not null"`
}

func (OptionDTO) TableName() string {
	return "menu_item_options"
}

func restaurantFromDomain(r *catalog.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:       r.ID().Bytes(),
		Name:     r.Name(),
		Active:   r.IsActive(),
		OpensAt:  r.OpensAt().Minutes(),
		ClosesAt: r.ClosesAt().Minutes(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	opensAt, err := kernel.TimeOfDayFromMinutes(dto.OpensAt)
	if err != nil {
		return nil, err
	}
	closesAt, err := kernel.TimeOfDayFromMinutes(dto.ClosesAt)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreRestaurant(id, dto.Name, dto.Active, opensAt, closesAt)
}

func menuItemFromDomain(item *catalog.MenuItem) MenuItemDTO {
	itemID := item.ID().Bytes()
	options := make([]OptionDTO, 0, len(item.Options()))
	for _, o := range item.Options() {
		options = append(options, OptionDTO{
			ID:          o.ID().Bytes(),
			MenuItemID:  itemID,
			Name:        o.Name(),
			Price:       o.Price(),
			PrepMinutes: o.PrepMinutes(),
		})
	}

	return MenuItemDTO{
		ID:           itemID,
		RestaurantID: item.RestaurantID().Bytes(),
		Name:         item.Name(),
		Available:    item.IsAvailable(),
		Options:      options,
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	options := make([]*catalog.Option, 0, len(dto.Options))
	for _, o := range dto.Options {
		optionID, optErr := kernel.UUIDFromBytes(o.ID[:])
		if optErr != nil {
			return nil, optErr
		}
		option, optErr := catalog.NewOption(optionID, o.Name, o.Price, o.PrepMinutes)
		if optErr != nil {
			return nil, optErr
		}
		options = append(options, option)
	}

	return catalog.RestoreMenuItem(id, restaurantID, dto.Name, dto.Available, options)
}
