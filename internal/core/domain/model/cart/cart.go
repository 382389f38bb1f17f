package cart

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// Cart is the aggregate root of a user's basket.
//
// Invariants:
//   - every line references the restaurant the cart is bound to
//   - a cart with no lines is not bound to any restaurant
//   - at most one line exists per option
type Cart struct {
	id           kernel.UUID
	userID       kernel.UUID
	restaurantID *kernel.UUID
	lines        []*Line
	guard        guard.ConstructorGuard
}

// NewCart creates an empty, unbound cart for userID.
func NewCart(id, userID kernel.UUID) (*Cart, error) {
	c := &Cart{
		lines: make([]*Line, 0),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCart rehydrates a cart from persistence.
func RestoreCart(id, userID kernel.UUID, restaurantID *kernel.UUID, lines []*Line) (*Cart, error) {
	c, err := NewCart(id, userID)
	if err != nil {
		return nil, err
	}

	for _, l := range lines {
		if l == nil {
			return nil, errs.NewValueIsRequiredError("cart line")
		}
		c.lines = append(c.lines, l)
	}

	if len(c.lines) > 0 {
		if restaurantID == nil {
			return nil, errs.NewValueIsRequiredError("restaurantId of a non-empty cart")
		}
		rid := *restaurantID
		c.restaurantID = &rid
	}

	return c, nil
}

func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

func (c *Cart) ID() kernel.UUID     { return c.id }
func (c *Cart) UserID() kernel.UUID { return c.userID }

// RestaurantID returns nil while the cart is unbound.
func (c *Cart) RestaurantID() *kernel.UUID {
	if c.restaurantID == nil {
		return nil
	}
	rid := *c.restaurantID
	return &rid
}

func (c *Cart) Lines() []*Line {
	out := make([]*Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// OptionIDs lists the option of every line, in line order.
func (c *Cart) OptionIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, l := range c.lines {
		ids = append(ids, l.optionID)
	}
	return ids
}

// AddItem binds the cart to restaurantID when unbound, then either increments the
// line holding optionID or appends a new line. A different restaurant is rejected.
func (c *Cart) AddItem(restaurantID, itemID, optionID kernel.UUID, quantity int) (*Line, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}
	if c.restaurantID != nil && !c.restaurantID.IsEqual(restaurantID) {
		return nil, errs.NewBusinessRuleViolationError("cart already holds items of another restaurant")
	}

	if existing := c.lineByOption(optionID); existing != nil {
		if err := existing.setQuantity(existing.quantity + quantity); err != nil {
			return nil, err
		}
		return existing, nil
	}

	line, err := NewLine(kernel.NewUUID(), itemID, optionID, quantity)
	if err != nil {
		return nil, err
	}

	if c.restaurantID == nil {
		rid := restaurantID
		c.restaurantID = &rid
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// UpdateQuantity overwrites the quantity of a line.
func (c *Cart) UpdateQuantity(lineID kernel.UUID, quantity int) error {
	line := c.Line(lineID)
	if line == nil {
		return errs.NewObjectNotFoundError("cartLineId", lineID)
	}
	return line.setQuantity(quantity)
}

// RemoveLine deletes a line and unbinds the restaurant when the cart becomes empty.
func (c *Cart) RemoveLine(lineID kernel.UUID) error {
	for i, l := range c.lines {
		if l.id.IsEqual(lineID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			if len(c.lines) == 0 {
				c.restaurantID = nil
			}
			return nil
		}
	}
	return errs.NewObjectNotFoundError("cartLineId", lineID)
}

// Clear empties the cart and unbinds the restaurant.
func (c *Cart) Clear() {
	c.lines = make([]*Line, 0)
	c.restaurantID = nil
}

// Line returns the line with lineID or nil.
func (c *Cart) Line(lineID kernel.UUID) *Line {
	for _, l := range c.lines {
		if l.id.IsEqual(lineID) {
			return l
		}
	}
	return nil
}

func (c *Cart) lineByOption(optionID kernel.UUID) *Line {
	for _, l := range c.lines {
		if l.optionID.IsEqual(optionID) {
			return l
		}
	}
	return nil
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
