package courier

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status is the availability of a courier.
type Status int

const (
	UnknownStatus Status = iota
	Offline
	Free
	Busy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Offline:       "OFFLINE",
		Free:          "FREE",
		Busy:          "BUSY",
	}
}

func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != UnknownStatus && name == strings.ToUpper(strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a courier status", s))
}

func (s Status) Validate() error {
	if s <= UnknownStatus || s > Busy {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid courier status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

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
