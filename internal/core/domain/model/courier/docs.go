// Package courier provides the Courier aggregate used by the assignment engine.
//
// The package includes:
//   - Courier: identity, availability status, rating and the count of orders in hand
//   - Status: OFFLINE, FREE and BUSY
//
// Key business rules:
//   - A courier never carries more than MaxActiveOrders orders at once
//   - A courier rated below MinRating is not eligible for new assignments
//   - A courier cannot go OFFLINE while carrying orders
//   - New couriers start OFFLINE with no active orders
package courier
