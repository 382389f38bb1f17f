package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of a placed order.
//
// Invariants:
//   - the total is fixed at creation time
//   - a courier is bound if and only if the order went through READY -> TAKED
//   - nothing changes once the order is DELIVERED
type Order struct {
	id           kernel.UUID
	userID       kernel.UUID
	cartID       kernel.UUID
	restaurantID kernel.UUID
	courierID    *kernel.UUID
	total        decimal.Decimal
	status       Status
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewOrder creates an order in NEW status.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), userID, cartID, restaurantID, decimal.RequireFromString("450.00"), now)
func NewOrder(
	id, userID, cartID, restaurantID kernel.UUID,
	total decimal.Decimal,
	createdAt time.Time,
) (*Order, error) {
	return RestoreOrder(id, userID, cartID, restaurantID, nil, total, New, createdAt)
}

// RestoreOrder rehydrates an order from persistence.
func RestoreOrder(
	id, userID, cartID, restaurantID kernel.UUID,
	courierID *kernel.UUID,
	total decimal.Decimal,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setCartID(cartID),
		o.setRestaurantID(restaurantID),
		o.setCourierID(courierID),
		o.setTotal(total),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID           { return o.id }
func (o *Order) UserID() kernel.UUID       { return o.userID }
func (o *Order) CartID() kernel.UUID       { return o.cartID }
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }
func (o *Order) Total() decimal.Decimal    { return o.total }
func (o *Order) Status() Status            { return o.status }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }

// CourierID returns the bound courier or nil.
func (o *Order) CourierID() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

// CourierSlot names the couriers whose active-order count a status change
// moves: Released gives a slot back, Taken occupies one again.
type CourierSlot struct {
	Released *kernel.UUID
	Taken    *kernel.UUID
}

// ChangeStatus moves the order to next. Leaving TAKED releases the bound
// courier's slot; coming back to TAKED with a courier still bound takes it again.
func (o *Order) ChangeStatus(next Status) (CourierSlot, error) {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return CourierSlot{}, err
	}

	var slot CourierSlot
	switch {
	case o.status == Taked && newStatus != Taked:
		slot.Released = o.CourierID()
	case o.status != Taked && newStatus == Taked:
		slot.Taken = o.CourierID()
	}

	o.status = newStatus
	return slot, nil
}

// Cancel forces the order into CANCELLED.
func (o *Order) Cancel() (CourierSlot, error) {
	return o.ChangeStatus(Cancelled)
}

// EnsureAssignedTo checks that courierID is the courier bound to the order.
func (o *Order) EnsureAssignedTo(courierID kernel.UUID) error {
	if o.courierID == nil {
		return errs.NewForbiddenError("order is not assigned to any courier")
	}
	if !o.courierID.IsEqual(courierID) {
		return errs.NewForbiddenError("order belongs to another courier")
	}
	return nil
}

// EnsureAssignable checks that the order can be handed to a courier.
func (o *Order) EnsureAssignable() error {
	if o.courierID != nil {
		return errs.NewBusinessRuleViolationError("order is already assigned to a courier")
	}
	if o.status != Ready {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("order must be in %s status to be assigned, current status is %s", Ready, o.status),
		)
	}
	return nil
}

// AssignCourier binds courierID and moves the order to TAKED.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if err := o.EnsureAssignable(); err != nil {
		return err
	}

	id := courierID
	o.courierID = &id
	o.status = Taked
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.userID = id
	return nil
}

func (o *Order) setCartID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.cartID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setCourierID(id *kernel.UUID) error {
	if id == nil {
		o.courierID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	cid := *id
	o.courierID = &cid
	return nil
}

func (o *Order) setTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%s is negative", total))
	}
	o.total = total
	return nil
}
