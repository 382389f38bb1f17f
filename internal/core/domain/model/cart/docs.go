// Package cart provides the Cart aggregate: the per-user basket assembled before
// checkout.
//
// Key business rules:
//   - A cart belongs to exactly one user and is created lazily on the first added item
//   - A cart is bound to the restaurant of its first item and only accepts items of that restaurant
//   - Adding an option that already has a line increases that line's quantity
//   - Removing the last line, or clearing the cart, unbinds the restaurant
//   - Quantities are positive integers
//
// Catalog rules (item availability, restaurant opening hours) are checked by the
// caller against the catalog before an item reaches the cart.
package cart
