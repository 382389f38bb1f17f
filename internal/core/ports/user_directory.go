package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// UserDirectory answers whether a user account exists and is active.
// Account management itself lives outside this service.
type UserDirectory interface {
	IsActive(ctx context.Context, userID kernel.UUID) (bool, error)
}
