package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCourierActiveOrdersQueryIsNotConstructed = errors.New(
	"GetCourierActiveOrdersQuery must be created via NewGetCourierActiveOrdersQuery constructor",
)

// GetCourierActiveOrdersQuery lists the orders a courier is carrying right now.
type GetCourierActiveOrdersQuery struct {
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetCourierActiveOrdersQuery(courierID kernel.UUID) (GetCourierActiveOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierActiveOrdersQuery{}, err
	}
	return GetCourierActiveOrdersQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCourierActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierActiveOrdersQueryIsNotConstructed)
}

func (q GetCourierActiveOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}
