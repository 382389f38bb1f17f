package notification

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status is the delivery state of a notification.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Scheduled
	Sent
	Failed
)

// Type classifies the business event behind a notification.
type Type int

const (
	UnknownType Type = iota
	OrderCreated
	PaymentSucceeded
	PaymentFailed
	OrderConfirmed
	OrderCancelled
	OrderReady
	OrderDelivering
	OrderDelivered
	ReviewReminder
	Promotional
)

// Channel is the medium a notification is delivered through.
type Channel int

const (
	UnknownChannel Channel = iota
	Push
	SMS
	Email
)

var (
	statusNames = map[Status]string{
		Pending:   "PENDING",
		Scheduled: "SCHEDULED",
		Sent:      "SENT",
		Failed:    "FAILED",
	}
	typeNames = map[Type]string{
		OrderCreated:     "ORDER_CREATED",
		PaymentSucceeded: "PAYMENT_SUCCEEDED",
		PaymentFailed:    "PAYMENT_FAILED",
		OrderConfirmed:   "ORDER_CONFIRMED",
		OrderCancelled:   "ORDER_CANCELLED",
		OrderReady:       "ORDER_READY",
		OrderDelivering:  "ORDER_DELIVERING",
		OrderDelivered:   "ORDER_DELIVERED",
		ReviewReminder:   "REVIEW_REMINDER",
		Promotional:      "PROMOTIONAL",
	}
	channelNames = map[Channel]string{
		Push:  "PUSH",
		SMS:   "SMS",
		Email: "EMAIL",
	}
)

func lookup[T comparable](names map[T]string, param, s string) (T, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for v, name := range names {
		if name == want {
			return v, nil
		}
	}
	var zero T
	return zero, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not supported", s))
}

func validate[T comparable](names map[T]string, param string, v T) error {
	if _, ok := names[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v is not supported", v))
	}
	return nil
}

func name[T comparable](names map[T]string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return "UNKNOWN"
}

func StatusFromString(s string) (Status, error)   { return lookup(statusNames, "status", s) }
func TypeFromString(s string) (Type, error)       { return lookup(typeNames, "type", s) }
func ChannelFromString(s string) (Channel, error) { return lookup(channelNames, "channel", s) }

func (s Status) Validate() error  { return validate(statusNames, "status", s) }
func (t Type) Validate() error    { return validate(typeNames, "type", t) }
func (c Channel) Validate() error { return validate(channelNames, "channel", c) }

func (s Status) String() string  { return name(statusNames, s) }
func (t Type) String() string    { return name(typeNames, t) }
func (c Channel) String() string { return name(channelNames, c) }

func (s Status) MarshalText() ([]byte, error)  { return []byte(s.String()), nil }
func (t Type) MarshalText() ([]byte, error)    { return []byte(t.String()), nil }
func (c Channel) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (s *Status) UnmarshalText(text []byte) error  { return unmarshal(StatusFromString, s, text) }
func (t *Type) UnmarshalText(text []byte) error    { return unmarshal(TypeFromString, t, text) }
func (c *Channel) UnmarshalText(text []byte) error { return unmarshal(ChannelFromString, c, text) }

func unmarshal[T any](parse func(string) (T, error), dst *T, text []byte) error {
	v, err := parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
