// Package payment provides the Payment aggregate. A payment records the outcome
// reported by an external payment provider for exactly one order.
package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

type Status int

const (
	UnknownStatus Status = iota
	Pending
	Succeeded
	Failed
	Refunded
)

type Method int

const (
	UnknownMethod Method = iota
	Card
	Cash
)

var (
	statusNames = map[Status]string{Pending: "PENDING", Succeeded: "SUCCEEDED", Failed: "FAILED", Refunded: "REFUNDED"}
	methodNames = map[Method]string{Card: "CARD", Cash: "CASH"}
)

func StatusFromString(s string) (Status, error) {
	for v, n := range statusNames {
		if n == strings.ToUpper(strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a payment status", s))
}

func MethodFromString(s string) (Method, error) {
	for v, n := range methodNames {
		if n == strings.ToUpper(strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a payment type", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (m Method) Validate() error {
	if _, ok := methodNames[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid payment type", m))
	}
	return nil
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

func (m Method) String() string {
	if n, ok := methodNames[m]; ok {
		return n
	}
	return "UNKNOWN"
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (m Method) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := StatusFromString(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := MethodFromString(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// OrderStatus maps a payment outcome onto the order status it drives.
// Only SUCCEEDED and FAILED move the order.
func (s Status) OrderStatus() (order.Status, bool) {
	switch s {
	case Succeeded:
		return order.Confirmed, true
	case Failed:
		return order.Cancelled, true
	default:
		return order.Unknown, false
	}
}

// Payment is the single payment attached to an order.
type Payment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	method    Method
	status    Status
	amount    decimal.Decimal
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewPayment creates a PENDING payment for the order total.
func NewPayment(id, orderID kernel.UUID, method Method, amount decimal.Decimal, createdAt time.Time) (*Payment, error) {
	return RestorePayment(id, orderID, method, Pending, amount, createdAt)
}

func RestorePayment(
	id, orderID kernel.UUID,
	method Method,
	status Status,
	amount decimal.Decimal,
	createdAt time.Time,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		method.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	return &Payment{
		id:        id,
		orderID:   orderID,
		method:    method,
		status:    status,
		amount:    amount,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) ID() kernel.UUID         { return p.id }
func (p *Payment) OrderID() kernel.UUID    { return p.orderID }
func (p *Payment) Method() Method          { return p.method }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }

// SetStatus records the provider outcome. There is no transition graph.
func (p *Payment) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
