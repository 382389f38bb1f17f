package courierrepo

import (
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CourierDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Phone        string          `gorm:"type:varchar(32);not null"`
	Status       int             `gorm:"type:int;not null"`
	Rating       decimal.Decimal `gorm:"type:numeric(3,2);not null"`
	ActiveOrders int             `gorm:"type:int;not null"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:           c.ID().Bytes(),
		Name:         c.Name(),
		Phone:        c.Phone(),
		Status:       int(c.Status()),
		Rating:       c.Rating(),
		ActiveOrders: c.ActiveOrders(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		dto.Phone,
		courier.Status(dto.Status),
		dto.Rating,
		dto.ActiveOrders,
	)
}
