package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CartID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null"`
	CourierID    *uuid.UUID      `gorm:"type:uuid;index"`
	Total        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status       int             `gorm:"type:int;not null;index"`
	CreatedAt    time.Time       `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := o.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		UserID:       o.UserID().Bytes(),
		CartID:       o.CartID().Bytes(),
		RestaurantID: o.RestaurantID().Bytes(),
		CourierID:    courierID,
		Total:        o.Total(),
		Status:       int(o.Status()),
		CreatedAt:    o.CreatedAt().UTC().Truncate(time.Microsecond),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	cartID, err := kernel.UUIDFromBytes(dto.CartID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	return order.RestoreOrder(
		id,
		userID,
		cartID,
		restaurantID,
		courierID,
		dto.Total,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
