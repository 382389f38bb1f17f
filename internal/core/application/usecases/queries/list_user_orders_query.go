package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListUserOrdersQueryIsNotConstructed = errors.New(
	"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
)

// ListUserOrdersQuery lists the order history of one customer, newest first.
type ListUserOrdersQuery struct {
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewListUserOrdersQuery(userID kernel.UUID) (ListUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListUserOrdersQuery{}, err
	}
	return ListUserOrdersQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

func (q ListUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}
