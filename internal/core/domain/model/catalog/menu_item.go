package catalog

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")

// MenuItem is a dish offered by one restaurant. Each item is sold through one
// or more options (sizes), and each option has its own price and preparation time.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	available    bool
	options      []*Option
	guard        guard.ConstructorGuard
}

func NewMenuItem(id, restaurantID kernel.UUID, name string) (*MenuItem, error) {
	return RestoreMenuItem(id, restaurantID, name, true, nil)
}

func RestoreMenuItem(
	id, restaurantID kernel.UUID,
	name string,
	available bool,
	options []*Option,
) (*MenuItem, error) {
	item := &MenuItem{
		available: available,
		options:   make([]*Option, 0, len(options)),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.setName(name),
	); err != nil {
		return nil, err
	}

	for _, o := range options {
		if o == nil {
			return nil, errs.NewValueIsRequiredError("option")
		}
		item.options = append(item.options, o)
	}

	return item, nil
}

func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m *MenuItem) ID() kernel.UUID           { return m.id }
func (m *MenuItem) RestaurantID() kernel.UUID { return m.restaurantID }
func (m *MenuItem) Name() string              { return m.name }
func (m *MenuItem) IsAvailable() bool         { return m.available }

func (m *MenuItem) Options() []*Option {
	out := make([]*Option, len(m.options))
	copy(out, m.options)
	return out
}

func (m *MenuItem) SetAvailable(available bool) {
	m.available = available
}

// AddOption registers a new size/price variant of the item.
func (m *MenuItem) AddOption(name string, price decimal.Decimal, prepMinutes int) (*Option, error) {
	o, err := NewOption(kernel.NewUUID(), name, price, prepMinutes)
	if err != nil {
		return nil, err
	}
	m.options = append(m.options, o)
	return o, nil
}

// Option finds an option of this item by id.
func (m *MenuItem) Option(optionID kernel.UUID) (*Option, bool) {
	for _, o := range m.options {
		if o.ID().IsEqual(optionID) {
			return o, true
		}
	}
	return nil, false
}

// EnsureAvailable fails with a business rule violation naming the item.
func (m *MenuItem) EnsureAvailable() error {
	if !m.available {
		return errs.NewBusinessRuleViolationError(fmt.Sprintf("item %q is not available now", m.name))
	}
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.restaurantID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	m.name = name
	return nil
}
