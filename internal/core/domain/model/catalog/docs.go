// Package catalog models the read side of restaurants and their menus as the
// ordering flow sees them: whether a restaurant currently accepts orders, whether
// a menu item is available, and the price and preparation time of each option.
//
// Catalog maintenance is owned by another system. This package only carries the
// rules the cart and order flows must enforce against catalog data.
package catalog
