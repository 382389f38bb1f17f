// Package review provides the Review aggregate left by a customer for a delivered order.
package review

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview")

// Verdict is the outcome of spam moderation.
type Verdict int

const (
	UnknownVerdict Verdict = iota
	Pending
	Approved
	Banned
)

func (v Verdict) String() string {
	switch v {
	case Pending:
		return "PENDING"
	case Approved:
		return "APPROVED"
	case Banned:
		return "BANNED"
	default:
		return "UNKNOWN"
	}
}

func (v Verdict) Validate() error {
	if v < Pending || v > Banned {
		return errs.NewValueIsInvalidError("verdict")
	}
	return nil
}

func (v Verdict) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

type Review struct {
	id           kernel.UUID
	orderID      kernel.UUID
	userID       kernel.UUID
	restaurantID kernel.UUID
	rating       int
	comment      string
	verdict      Verdict
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewReview creates a review with the verdict produced by moderation.
func NewReview(
	id, orderID, userID, restaurantID kernel.UUID,
	rating int,
	comment string,
	verdict Verdict,
	createdAt time.Time,
) (*Review, error) {
	return RestoreReview(id, orderID, userID, restaurantID, rating, comment, verdict, createdAt)
}

func RestoreReview(
	id, orderID, userID, restaurantID kernel.UUID,
	rating int,
	comment string,
	verdict Verdict,
	createdAt time.Time,
) (*Review, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		userID.Validate(),
		restaurantID.Validate(),
		verdict.Validate(),
	); err != nil {
		return nil, err
	}
	if rating < 1 || rating > 5 {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}
	return &Review{
		id:           id,
		orderID:      orderID,
		userID:       userID,
		restaurantID: restaurantID,
		rating:       rating,
		comment:      comment,
		verdict:      verdict,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

func (r *Review) ID() kernel.UUID           { return r.id }
func (r *Review) OrderID() kernel.UUID      { return r.orderID }
func (r *Review) UserID() kernel.UUID       { return r.userID }
func (r *Review) RestaurantID() kernel.UUID { return r.restaurantID }
func (r *Review) Rating() int               { return r.rating }
func (r *Review) Comment() string           { return r.comment }
func (r *Review) Verdict() Verdict          { return r.verdict }
func (r *Review) CreatedAt() time.Time      { return r.createdAt }
