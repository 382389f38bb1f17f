package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetPaymentQueryHandler struct {
	db *gorm.DB
}

func NewGetPaymentQueryHandler(db *gorm.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db}
}

type paymentRow struct {
	OrderID   uuid.UUID
	Method    int
	Status    int
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// Handle returns errs.ErrObjectNotFound for an unknown payment.
func (h GetPaymentQueryHandler) Handle(ctx context.Context, query GetPaymentQuery) (PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentResponse{}, err
	}

	var rows []paymentRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, method, status, amount, created_at
		FROM payments
		WHERE id = ?
	`, query.PaymentID().Bytes()).Scan(&rows).Error
	if err != nil {
		return PaymentResponse{}, err
	}
	if len(rows) == 0 {
		return PaymentResponse{}, errs.NewObjectNotFoundError("paymentId", query.PaymentID())
	}

	row := rows[0]
	orderID, err := kernel.UUIDFromBytes(row.OrderID[:])
	if err != nil {
		return PaymentResponse{}, err
	}

	return PaymentResponse{
		ID:        query.PaymentID(),
		OrderID:   orderID,
		Method:    payment.Method(row.Method),
		Status:    payment.Status(row.Status),
		Amount:    row.Amount,
		CreatedAt: row.CreatedAt,
	}, nil
}
