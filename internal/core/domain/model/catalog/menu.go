package catalog

import "fooddelivery/internal/core/domain/model/kernel"

// Menu is a lookup over the menu items referenced by a cart.
type Menu []*MenuItem

// Find resolves an option id to its item and option.
func (m Menu) Find(optionID kernel.UUID) (*MenuItem, *Option, bool) {
	for _, item := range m {
		if o, ok := item.Option(optionID); ok {
			return item, o, true
		}
	}
	return nil, nil, false
}
