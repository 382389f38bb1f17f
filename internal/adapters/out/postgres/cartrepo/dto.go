package cartrepo

import (
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CartDTO struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex"`
	RestaurantID *uuid.UUID    `gorm:"type:uuid"`
	Lines        []CartLineDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

func (CartDTO) TableName() string {
	return "carts"
}

type CartLineDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null"`
	OptionID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity int       `gorm:"type:int;not null"`
	Position int       `gorm:"type:int;not null"`
}

func (CartLineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(c *cart.Cart) CartDTO {
	cartID := c.ID().Bytes()

	var restaurantID *uuid.UUID
	if rid := c.RestaurantID(); rid != nil {
		raw := rid.Bytes()
		restaurantID = &raw
	}

	lines := make([]CartLineDTO, 0, len(c.Lines()))
	for i, l := range c.Lines() {
		lines = append(lines, CartLineDTO{
			ID:       l.ID().Bytes(),
			CartID:   cartID,
			ItemID:   l.ItemID().Bytes(),
			OptionID: l.OptionID().Bytes(),
			Quantity: l.Quantity(),
			Position: i,
		})
	}

	return CartDTO{
		ID:           cartID,
		UserID:       c.UserID().Bytes(),
		RestaurantID: restaurantID,
		Lines:        lines,
	}
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != nil {
		rid, ridErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if ridErr != nil {
			return nil, ridErr
		}
		restaurantID = &rid
	}

	lines := make([]*cart.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := lineToDomain(l)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(id, userID, restaurantID, lines)
}

func lineToDomain(dto CartLineDTO) (*cart.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}
	optionID, err := kernel.UUIDFromBytes(dto.OptionID[:])
	if err != nil {
		return nil, err
	}
	return cart.NewLine(id, itemID, optionID, dto.Quantity)
}
