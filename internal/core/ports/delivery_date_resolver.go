package ports

import (
	"context"
	"time"
)

// DeliveryDateResolver defines the contract for computing the destination
// delivery commitment of one order.
//
// The resolver locates the destination address, determines its UTC offset,
// interprets the carrier's critical pull time at that offset, and adds the
// transit lead time. The result is a UTC ISO-8601 timestamp string suitable
// for the carrier's wire format.
type DeliveryDateResolver interface {
	// Resolve computes the UTC delivery commitment for a destination.
	// pullTime is the origin facility's critical pull time on the ship
	// date; transitDays is the carrier's committed lead time in days.
	// Fails with an address-not-found error when the destination cannot
	// be located.
	Resolve(ctx context.Context, address string, pullTime time.Time, transitDays int) (string, error)
}
