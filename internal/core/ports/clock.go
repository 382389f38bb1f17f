package ports

import "time"

// Clock supplies the current time in the service's local timezone.
// Opening hours and delivery surcharges are evaluated against it.
type Clock interface {
	Now() time.Time
}
