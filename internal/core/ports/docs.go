// Package ports defines the contracts between the application core and infrastructure.
// Repositories persist aggregates, UnitOfWork scopes them to one transaction, and the
// remaining interfaces describe the outside capabilities the core consumes: a clock,
// a user directory and a notification transport.
package ports
