package ports

import (
	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/order"
)

// ManifestWriter defines the contract for emitting the per-run tabular
// manifests into the run's archive directory.
type ManifestWriter interface {
	// WriteTracking emits the tracking manifest: header "Order,Tracking
	// Number", one row per success, in the order successes were supplied.
	WriteTracking(runID string, name string, successes []batch.Success) error

	// WriteFailed emits the failed-orders manifest: one row per failed
	// order with the full field set including the error text. Must only
	// be called when at least one order failed.
	WriteFailed(runID string, name string, failures []*order.Order) error
}
