package services

import "time"

const (
	baseDeliveryMinutes   = 30
	eveningSurcharge      = 5
	weekendSurcharge      = 10
	moderateLoadSurcharge = 10
	heavyLoadSurcharge    = 15
	moderateLoadThreshold = 0.5
	heavyLoadThreshold    = 0.8
	eveningStartHour      = 18
	eveningEndHour        = 22
)

// CourierLoad is the number of couriers and how many of them carry at least one order.
type CourierLoad struct {
	Total  int
	Loaded int
}

// Surcharge returns extra delivery minutes for the current courier load.
func (l CourierLoad) Surcharge() int {
	if l.Total <= 0 {
		return 0
	}
	ratio := float64(l.Loaded) / float64(l.Total)
	switch {
	case ratio > heavyLoadThreshold:
		return heavyLoadSurcharge
	case ratio > moderateLoadThreshold:
		return moderateLoadSurcharge
	default:
		return 0
	}
}

// EtaEstimator computes the minutes from checkout to delivery.
type EtaEstimator struct{}

func NewEtaEstimator() EtaEstimator {
	return EtaEstimator{}
}

// Estimate returns nil when there is nothing to prepare. Preparation time is the
// longest line because the kitchen works on lines in parallel.
func (e EtaEstimator) Estimate(prepMinutes []int, now time.Time, load CourierLoad) *int {
	if len(prepMinutes) == 0 {
		return nil
	}

	prep := 0
	for _, m := range prepMinutes {
		prep = max(prep, m)
	}

	eta := prep + e.DeliveryMinutes(now, load)
	return &eta
}

// DeliveryMinutes is the base delivery time plus evening, weekend and load surcharges.
func (e EtaEstimator) DeliveryMinutes(now time.Time, load CourierLoad) int {
	minutes := baseDeliveryMinutes
	if h := now.Hour(); h >= eveningStartHour && h < eveningEndHour {
		minutes += eveningSurcharge
	}
	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		minutes += weekendSurcharge
	}
	return minutes + load.Surcharge()
}
