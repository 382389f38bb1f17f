package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order. It is persisted as its integer value.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	New
	Confirmed
	Preparing
	Ready
	Taked
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		New:       "NEW",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Ready:     "READY",
		Taked:     "TAKED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses the upper-case wire name of a status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == strings.ToUpper(strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// TransitionTo validates a move from s to next.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidStateTransitionError("order", s.String(), next.String())
	}
	return next, nil
}

// MarshalText renders the status by name in JSON payloads.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := StatusFromString(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
