// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID           kernel.UUID     `json:"id"`
	UserID       kernel.UUID     `json:"userId"`
	CartID       kernel.UUID     `json:"cartId"`
	RestaurantID kernel.UUID     `json:"restaurantId"`
	CourierID    *kernel.UUID    `json:"courierId"`
	Total        decimal.Decimal `json:"total"`
	Status       order.Status    `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

const orderColumns = `id, user_id, cart_id, restaurant_id, courier_id, total, status, created_at`

type orderRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CartID       uuid.UUID
	RestaurantID uuid.UUID
	CourierID    *uuid.UUID
	Total        decimal.Decimal
	Status       int
	CreatedAt    time.Time
}

func (r orderRow) toResponse() (OrderResponse, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{r.ID, r.UserID, r.CartID, r.RestaurantID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return OrderResponse{}, err
		}
		ids = append(ids, id)
	}

	resp := OrderResponse{
		ID:           ids[0],
		UserID:       ids[1],
		CartID:       ids[2],
		RestaurantID: ids[3],
		Total:        r.Total,
		Status:       order.Status(r.Status),
		CreatedAt:    r.CreatedAt,
	}
	if r.CourierID != nil {
		courierID, err := kernel.UUIDFromBytes(r.CourierID[:])
		if err != nil {
			return OrderResponse{}, err
		}
		resp.CourierID = &courierID
	}
	return resp, nil
}

func toOrderResponses(rows []orderRow) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		resp, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}
	return orders, nil
}
