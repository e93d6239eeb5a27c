// Package batch provides the whole-run aggregate for one fulfillment batch.
// It collects the per-order outcomes produced by the concurrent pipeline
// stage into a stable, fully-resolved view that the strictly sequential
// post-processing stages (manifests, label merge, archival) operate on.
//
// Key business rules:
//   - Every validated order produces exactly one outcome, success or failure
//   - Outcomes correlate by sales order number, never by slice position
//   - Zero successes and zero failures are both valid batch states
package batch

import (
	"fulfillment/internal/core/domain/model/order"
)

// Success records the artifacts of one purchased shipment: the sales order
// number, the path of the label persisted in temporary storage, and the
// carrier tracking number.
type Success struct {
	OrderID        string
	LabelPath      string
	TrackingNumber string
}

// Outcome is the tagged per-order result crossing the pipeline's fan-in
// boundary. Exactly one of Success or Err is set.
type Outcome struct {
	Order   *order.Order
	Success *Success
	Err     error
}

// Succeed creates a success outcome for the given order.
func Succeed(o *order.Order, s Success) Outcome {
	return Outcome{Order: o, Success: &s}
}

// Fail creates a failure outcome carrying the most specific available error.
func Fail(o *order.Order, err error) Outcome {
	return Outcome{Order: o, Err: err}
}

// Succeeded reports whether the outcome is the success variant.
func (out Outcome) Succeeded() bool {
	return out.Err == nil
}

// Batch is the resolved aggregate of one run: the ordered successes, the
// failed orders (validation rejects first, then pipeline failures in
// collection order), and the run-level counts.
type Batch struct {
	total     int
	successes []Success
	failures  []*order.Order
}

// New creates an empty Batch.
func New() *Batch {
	return &Batch{}
}

// Reject adds orders quarantined by validation. Each order must already
// carry its failure reason.
func (b *Batch) Reject(orders []*order.Order) {
	b.total += len(orders)
	b.failures = append(b.failures, orders...)
}

// Collect folds the pipeline outcomes into the batch. Failed orders are
// marked with the outcome's error text so the failure reason travels with
// the record into the manifest and the run log.
func (b *Batch) Collect(outcomes []Outcome) {
	b.total += len(outcomes)
	for _, out := range outcomes {
		if out.Succeeded() {
			b.successes = append(b.successes, *out.Success)
			continue
		}
		if !out.Order.Failed() {
			out.Order.MarkFailed(out.Err.Error())
		}
		b.failures = append(b.failures, out.Order)
	}
}

// Successes returns the purchased shipments in collection order.
func (b *Batch) Successes() []Success {
	return b.successes
}

// Failures returns the rejected and failed orders in collection order.
func (b *Batch) Failures() []*order.Order {
	return b.failures
}

// LabelPaths returns the temporary label paths of all successes, in
// collection order. This is the input order of the label merge.
func (b *Batch) LabelPaths() []string {
	paths := make([]string, 0, len(b.successes))
	for _, s := range b.successes {
		paths = append(paths, s.LabelPath)
	}
	return paths
}

// Succeeded returns the count of purchased shipments.
func (b *Batch) Succeeded() int {
	return len(b.successes)
}

// Failed returns the count of rejected and failed orders.
func (b *Batch) Failed() int {
	return len(b.failures)
}

// Total returns the count of orders the run started with.
func (b *Batch) Total() int {
	return b.total
}
