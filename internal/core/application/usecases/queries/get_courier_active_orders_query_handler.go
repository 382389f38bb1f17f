package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCourierActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetCourierActiveOrdersQueryHandler(db *gorm.DB) GetCourierActiveOrdersQueryHandler {
	return GetCourierActiveOrdersQueryHandler{db: db}
}

// Handle returns the courier's TAKED orders, or errs.ErrObjectNotFound for an
// unknown courier.
func (h GetCourierActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierActiveOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	courierID := query.CourierID().Bytes()

	var couriers int64
	if err := db.Raw(`SELECT COUNT(*) FROM couriers WHERE id = ?`, courierID).Scan(&couriers).Error; err != nil {
		return nil, err
	}
	if couriers == 0 {
		return nil, errs.NewObjectNotFoundError("courierId", query.CourierID())
	}

	var rows []orderRow
	err := db.Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE courier_id = ? AND status = ?
		ORDER BY created_at, id
	`, courierID, int(order.Taked)).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toOrderResponses(rows)
}
