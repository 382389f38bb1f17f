// Package kernel provides the shared value objects of the food delivery domain.
//
// The package includes:
//   - UUID: identifier used by every aggregate (carts, orders, couriers, notifications, payments)
//   - TimeOfDay: a wall-clock time used for restaurant opening hours and delivery surcharge windows
//
// Both are immutable and safe for concurrent use. Zero values are invalid and
// report an error from Validate.
package kernel
