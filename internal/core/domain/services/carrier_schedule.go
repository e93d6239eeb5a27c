package services

import "time"

// Fixed origin-facility cutoff hours, in UTC, applied to the ship date's
// calendar day. The critical pull time is the reference point for computing
// the destination delivery commitment; the other two bracket it by one hour
// for the carrier's pickup window.
const (
	readyForPickupHourUTC = 20
	criticalPullHourUTC   = 21
	departureHourUTC      = 22
)

// PullSchedule is the carrier's pull-time window for one ship date.
// All timestamps are UTC and fall on the ship date's calendar day.
type PullSchedule struct {
	// ReadyForPickup is when the shipment is expected to be ready at the
	// origin facility.
	ReadyForPickup time.Time

	// CriticalPull is the cutoff by which the shipment must be ready for
	// carrier pickup. The delivery commitment is computed relative to it.
	CriticalPull time.Time

	// Departure is the expected carrier departure from the origin facility.
	Departure time.Time
}

// NewPullSchedule computes the pull-time window for the given ship date.
// Only the calendar day of shipDate is significant.
func NewPullSchedule(shipDate time.Time) PullSchedule {
	return PullSchedule{
		ReadyForPickup: atHourUTC(shipDate, readyForPickupHourUTC),
		CriticalPull:   atHourUTC(shipDate, criticalPullHourUTC),
		Departure:      atHourUTC(shipDate, departureHourUTC),
	}
}

func atHourUTC(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
}
