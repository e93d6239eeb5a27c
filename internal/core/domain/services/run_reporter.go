package services

import (
	"encoding/json"
	"fmt"

	"fulfillment/internal/core/domain/model/batch"
)

// failureDetail is the machine-readable failure record appended to the run
// log, one JSON line per failed order.
type failureDetail struct {
	OrderNumber string `json:"order_number"`
	Errors      string `json:"errors"`
}

// RunReporter formats the human-readable summary of one batch run for the
// run log: a success count with noun agreement and, when any order failed,
// a failure count followed by one JSON detail line per failed order.
type RunReporter struct{}

// NewRunReporter creates a new RunReporter instance.
func NewRunReporter() RunReporter {
	return RunReporter{}
}

// Report renders the run summary as run-log lines, in append order.
func (r RunReporter) Report(b *batch.Batch) []string {
	noun := "shipments"
	if b.Succeeded() == 1 {
		noun = "shipment"
	}
	lines := []string{fmt.Sprintf("%d %s purchased successfully.", b.Succeeded(), noun)}

	if b.Failed() == 0 {
		return lines
	}

	noun = "orders"
	if b.Failed() == 1 {
		noun = "order"
	}
	lines = append(lines,
		fmt.Sprintf("The following %d %s encountered errors and could not be purchased:", b.Failed(), noun))

	for _, failed := range b.Failures() {
		detail, err := json.Marshal(failureDetail{
			OrderNumber: failed.ID(),
			Errors:      failed.FailureReason(),
		})
		if err != nil {
			// A string-only struct cannot fail to marshal; keep the order
			// visible in the log regardless.
			lines = append(lines, fmt.Sprintf(`{"order_number":%q}`, failed.ID()))
			continue
		}
		lines = append(lines, string(detail))
	}

	return lines
}
