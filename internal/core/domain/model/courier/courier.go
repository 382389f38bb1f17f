package courier

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MaxActiveOrders caps the number of orders a courier carries at once.
const MaxActiveOrders = 3

var (
	// MinRating is the lowest rating still eligible for new assignments.
	MinRating = decimal.RequireFromString("3.0")
	maxRating = decimal.NewFromInt(5)

	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")
)

// Courier is the aggregate root for a delivery courier.
//
// Business rules:
//   - 0 <= activeOrders <= MaxActiveOrders
//   - rating is within [0, 5]
//   - OFFLINE is only reachable with no active orders
type Courier struct {
	id           kernel.UUID
	name         string
	phone        string
	status       Status
	rating       decimal.Decimal
	activeOrders int
	guard        guard.ConstructorGuard
}

// NewCourier registers a courier. Couriers start OFFLINE with no orders.
//
// Example:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Ivan", "+79990000000", decimal.RequireFromString("4.7"))
func NewCourier(id kernel.UUID, name, phone string, rating decimal.Decimal) (*Courier, error) {
	return RestoreCourier(id, name, phone, Offline, rating, 0)
}

// RestoreCourier rehydrates a courier from persistence.
func RestoreCourier(
	id kernel.UUID,
	name, phone string,
	status Status,
	rating decimal.Decimal,
	activeOrders int,
) (*Courier, error) {
	c := &Courier{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setStatus(status),
		c.setRating(rating),
		c.setActiveOrders(activeOrders),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Courier) ID() kernel.UUID         { return c.id }
func (c *Courier) Name() string            { return c.name }
func (c *Courier) Phone() string           { return c.phone }
func (c *Courier) Status() Status          { return c.status }
func (c *Courier) Rating() decimal.Decimal { return c.rating }
func (c *Courier) ActiveOrders() int       { return c.activeOrders }

// IsLoaded reports whether the courier carries at least one order.
func (c *Courier) IsLoaded() bool {
	return c.activeOrders > 0
}

// ChangeStatus switches availability. Going OFFLINE with orders in hand is refused.
func (c *Courier) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == Offline && c.activeOrders > 0 {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("courier cannot go offline with %d active orders", c.activeOrders),
		)
	}
	c.status = status
	return nil
}

// EnsureOnline fails for OFFLINE couriers.
func (c *Courier) EnsureOnline() error {
	if c.status == Offline {
		return errs.NewBusinessRuleViolationError("courier must be online to accept orders")
	}
	return nil
}

// EnsureCanTakeOrder checks the active-order cap and the rating floor.
func (c *Courier) EnsureCanTakeOrder() error {
	if c.activeOrders >= MaxActiveOrders {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("courier cannot have more than %d active orders", MaxActiveOrders),
		)
	}
	if c.rating.LessThan(MinRating) {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("courier rating %s is below %s", c.rating.StringFixed(1), MinRating.StringFixed(1)),
		)
	}
	return nil
}

// TakeOrder occupies one active-order slot.
func (c *Courier) TakeOrder() error {
	if err := c.EnsureCanTakeOrder(); err != nil {
		return err
	}
	c.activeOrders++
	return nil
}

// ReleaseOrder frees one active-order slot. It never goes below zero.
func (c *Courier) ReleaseOrder() {
	if c.activeOrders > 0 {
		c.activeOrders--
	}
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Courier) setRating(rating decimal.Decimal) error {
	if rating.IsNegative() || rating.GreaterThan(maxRating) {
		return errs.NewValueIsOutOfRangeError("rating", rating.String(), "0", "5")
	}
	c.rating = rating
	return nil
}

func (c *Courier) setActiveOrders(n int) error {
	if n < 0 || n > MaxActiveOrders {
		return errs.NewValueIsOutOfRangeError("activeOrders", n, 0, MaxActiveOrders)
	}
	c.activeOrders = n
	return nil
}
