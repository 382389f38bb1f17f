package queries

import (
	"context"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Raw(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, query.OrderID().Bytes()).
		Scan(&rows).Error
	if err != nil {
		return OrderResponse{}, err
	}
	if len(rows) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return rows[0].toResponse()
}
