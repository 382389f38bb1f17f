package services

import (
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderDispatcher hands orders to couriers.
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch binds the order to the courier. The checks run in a fixed order:
// courier online, order unassigned, order READY, courier under the active-order
// cap, courier rating at or above the floor. Neither aggregate is modified when
// a check fails.
func (d OrderDispatcher) Dispatch(o *order.Order, c *courier.Courier) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if err := c.EnsureOnline(); err != nil {
		return err
	}
	if err := o.EnsureAssignable(); err != nil {
		return err
	}
	if err := c.EnsureCanTakeOrder(); err != nil {
		return err
	}

	if err := o.AssignCourier(c.ID()); err != nil {
		return err
	}
	return c.TakeOrder()
}
