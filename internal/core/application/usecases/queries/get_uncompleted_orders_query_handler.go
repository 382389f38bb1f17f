package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler retrieves open orders from the database.
//
// Example:
//
//	handler := NewGetUncompletedOrdersQueryHandler(db)
//	pending, err := handler.Handle(ctx, NewGetUncompletedOrdersQuery())
//	if err != nil {
//	    log.Printf("Failed to get open orders: %v", err)
//	    return err
//	}
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle returns open orders, oldest first.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at, id
	`, int(order.Delivered), int(order.Cancelled)).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toOrderResponses(rows)
}
