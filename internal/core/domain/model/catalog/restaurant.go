package catalog

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant or RestoreRestaurant")

// Restaurant is the owner of menu items. Orders can only be assembled while it is
// active and inside its opening window [opensAt, closesAt).
type Restaurant struct {
	id       kernel.UUID
	name     string
	active   bool
	opensAt  kernel.TimeOfDay
	closesAt kernel.TimeOfDay
	guard    guard.ConstructorGuard
}

func NewRestaurant(id kernel.UUID, name string, opensAt, closesAt kernel.TimeOfDay) (*Restaurant, error) {
	return RestoreRestaurant(id, name, true, opensAt, closesAt)
}

func RestoreRestaurant(
	id kernel.UUID,
	name string,
	active bool,
	opensAt, closesAt kernel.TimeOfDay,
) (*Restaurant, error) {
	r := &Restaurant{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setHours(opensAt, closesAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID            { return r.id }
func (r *Restaurant) Name() string               { return r.name }
func (r *Restaurant) IsActive() bool             { return r.active }
func (r *Restaurant) OpensAt() kernel.TimeOfDay  { return r.opensAt }
func (r *Restaurant) ClosesAt() kernel.TimeOfDay { return r.closesAt }

// Deactivate stops the restaurant from accepting new cart items.
func (r *Restaurant) Deactivate() {
	r.active = false
}

// IsOpenAt evaluates the opening window against the wall-clock part of now.
func (r *Restaurant) IsOpenAt(now time.Time) bool {
	return kernel.TimeOfDayAt(now).InWindow(r.opensAt, r.closesAt)
}

// EnsureAcceptsOrders checks the active flag first, then opening hours.
func (r *Restaurant) EnsureAcceptsOrders(now time.Time) error {
	if !r.active {
		return errs.NewBusinessRuleViolationError("restaurant is not active")
	}
	if !r.IsOpenAt(now) {
		return errs.NewBusinessRuleViolationError(
			"restaurant is closed, opening hours are " + r.opensAt.String() + "-" + r.closesAt.String(),
		)
	}
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setHours(opensAt, closesAt kernel.TimeOfDay) error {
	if err := errors.Join(opensAt.Validate(), closesAt.Validate()); err != nil {
		return err
	}
	if !opensAt.IsBefore(closesAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"opening hours",
			errors.New(opensAt.String()+" is not before "+closesAt.String()),
		)
	}
	r.opensAt = opensAt
	r.closesAt = closesAt
	return nil
}
