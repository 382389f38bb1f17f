package paymentrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Method    int             `gorm:"type:int;not null"`
	Status    int             `gorm:"type:int;not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        p.ID().Bytes(),
		OrderID:   p.OrderID().Bytes(),
		Method:    int(p.Method()),
		Status:    int(p.Status()),
		Amount:    p.Amount(),
		CreatedAt: p.CreatedAt().UTC().Truncate(time.Microsecond),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		payment.Method(dto.Method),
		payment.Status(dto.Status),
		dto.Amount,
		dto.CreatedAt,
	)
}
