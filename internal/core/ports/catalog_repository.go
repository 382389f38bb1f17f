package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CatalogRepository resolves restaurants and menu items. The catalog is owned by
// another team; the core only reads it, Add methods exist for provisioning.
type CatalogRepository interface {
	AddRestaurant(ctx context.Context, restaurant *catalog.Restaurant) error
	AddMenuItem(ctx context.Context, item *catalog.MenuItem) error

	// GetRestaurant returns the restaurant or an errs.ObjectNotFoundError.
	GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)

	// GetMenuItemByOption returns the item owning optionID, with all of its options,
	// or an errs.ObjectNotFoundError for the option.
	GetMenuItemByOption(ctx context.Context, optionID kernel.UUID) (*catalog.MenuItem, error)

	// GetMenu returns the items owning any of optionIDs. Unknown ids are skipped.
	GetMenu(ctx context.Context, optionIDs []kernel.UUID) (catalog.Menu, error)
}
