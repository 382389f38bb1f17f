package kernel

import (
	"fmt"
	"time"

	"fooddelivery/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time with minute precision, stored as minutes since midnight.
// It is used for restaurant opening hours and for the evening delivery surcharge window.
type TimeOfDay struct {
	minutes       int
	isConstructed bool
}

// NewTimeOfDay builds a TimeOfDay from hour [0,23] and minute [0,59].
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return TimeOfDay{minutes: hour*60 + minute, isConstructed: true}, nil
}

// TimeOfDayFromMinutes restores a TimeOfDay persisted as minutes since midnight.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minutes", minutes, 0, minutesPerDay-1)
	}
	return TimeOfDay{minutes: minutes, isConstructed: true}, nil
}

// TimeOfDayFromString parses "HH:MM".
func TimeOfDayFromString(s string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}
	return NewTimeOfDay(parsed.Hour(), parsed.Minute())
}

// TimeOfDayAt extracts the wall-clock part of t in t's own location.
func TimeOfDayAt(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute(), isConstructed: true}
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// InWindow reports whether t lies in [from, to). The lower bound is inclusive and the upper bound exclusive.
func (t TimeOfDay) InWindow(from, to TimeOfDay) bool {
	return !t.IsBefore(from) && t.IsBefore(to)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) Validate() error {
	if !t.isConstructed {
		return errs.NewValueIsRequiredError("time of day")
	}
	return nil
}
