// Package services provides domain services for the fulfillment batch.
// It implements the business rules that span the whole batch rather than a
// single order record.
//
// The package includes:
//   - OrderValidator: partitions raw orders into valid and rejected sets and
//     normalizes phone, postal code, and transit time fields
//   - PullSchedule: the carrier's fixed origin-facility pull-time window on a
//     ship date
//   - RunReporter: formats the human-readable run summary and per-order
//     failure detail for the run log
//
// Domain services coordinate across order records, implementing business
// logic that does not naturally belong to the Order aggregate itself.
package services
