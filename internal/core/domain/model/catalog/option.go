package catalog

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Option is a priced, size-specific variant of a menu item.
type Option struct {
	id          kernel.UUID
	name        string
	price       decimal.Decimal
	prepMinutes int
}

func NewOption(id kernel.UUID, name string, price decimal.Decimal, prepMinutes int) (*Option, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	if prepMinutes < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("prepMinutes", errors.New("must not be negative"))
	}
	return &Option{id: id, name: name, price: price, prepMinutes: prepMinutes}, nil
}

func (o *Option) ID() kernel.UUID        { return o.id }
func (o *Option) Name() string           { return o.name }
func (o *Option) Price() decimal.Decimal { return o.price }
func (o *Option) PrepMinutes() int       { return o.prepMinutes }
