// Package order provides the domain entity for shipment orders read from the
// tabular batch input. It implements the Order record with normalized field
// access and per-order failure state.
//
// The package includes:
//   - Order: the record type carrying the normalized input fields of one shipment
//   - Field name constants for every column the fulfillment pipeline reads or writes
//
// Key business rules:
//   - Field names are the normalized column headers of the batch input
//     (non-word runs replaced with underscores, uppercased)
//   - An order is identified by its sales order number
//   - A failed order carries a single human-readable error string and is
//     terminal for the current run; it is never retried
//   - The delivery date is the only field added to an order after validation
//
// The package follows Domain-Driven Design principles, providing encapsulated
// state and validation so downstream stages always see a consistent record.
package order
