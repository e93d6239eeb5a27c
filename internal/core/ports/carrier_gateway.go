package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// SubmissionResult is the carrier's answer to a successful order submission:
// the confirmed order number, the assigned tracking number, and the decoded
// shipping label document.
type SubmissionResult struct {
	OrderID        string
	TrackingNumber string
	Label          []byte
}

// CarrierGateway defines the contract for purchasing one shipment from the
// carrier. The gateway owns the carrier's wire format: it builds the full
// carrier order from the validated order record (which must already carry
// its resolved delivery date) together with the configured shipper identity.
type CarrierGateway interface {
	// Submit purchases a shipment for the given order. On rejection it
	// fails with a structured error preserving the carrier's status and
	// machine-readable error body; the failure is terminal for the order
	// in this run, nothing is retried.
	Submit(ctx context.Context, o *order.Order) (SubmissionResult, error)
}
