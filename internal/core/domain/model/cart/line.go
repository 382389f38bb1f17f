package cart

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const maxLineQuantity = 99

// Line is one (menu option, quantity) entry of a cart.
type Line struct {
	id       kernel.UUID
	itemID   kernel.UUID
	optionID kernel.UUID
	quantity int
}

func NewLine(id, itemID, optionID kernel.UUID, quantity int) (*Line, error) {
	l := &Line{}
	if err := errors.Join(
		id.Validate(),
		itemID.Validate(),
		optionID.Validate(),
		l.setQuantity(quantity),
	); err != nil {
		return nil, err
	}
	l.id = id
	l.itemID = itemID
	l.optionID = optionID
	return l, nil
}

func (l *Line) ID() kernel.UUID       { return l.id }
func (l *Line) ItemID() kernel.UUID   { return l.itemID }
func (l *Line) OptionID() kernel.UUID { return l.optionID }
func (l *Line) Quantity() int         { return l.quantity }

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 || quantity > maxLineQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}
	l.quantity = quantity
	return nil
}
