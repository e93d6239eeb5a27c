// Package manifest emits the per-run CSV manifests: tracking numbers for
// purchased shipments and the full records of failed orders.
package manifest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/order"
)

const (
	trackingPrefix = "TRACKING-"
	failedPrefix   = "FAILED_ORDERS-"
)

// Writer implements ManifestWriter over the run archive directory.
type Writer struct {
	archiveDir string
}

// NewWriter creates a CSV manifest writer.
func NewWriter(archiveDir string) *Writer {
	return &Writer{archiveDir: archiveDir}
}

// WriteTracking emits archive/<runID>/TRACKING-<name>.csv with one row
// per purchased shipment.
func (w *Writer) WriteTracking(runID string, name string, successes []batch.Success) error {
	rows := [][]string{{"Order", "Tracking Number"}}
	for _, success := range successes {
		rows = append(rows, []string{success.OrderID, success.TrackingNumber})
	}

	return w.write(runID, trackingPrefix+name+".csv", rows)
}

// WriteFailed emits archive/<runID>/FAILED_ORDERS-<name>.csv carrying the
// full field set of every failed order plus its error text, so the file
// can be corrected and dropped back in as a new input.
func (w *Writer) WriteFailed(runID string, name string, failures []*order.Order) error {
	columns := failureColumns(failures)

	rows := [][]string{columns}
	for _, o := range failures {
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = o.Field(column)
		}
		rows = append(rows, row)
	}

	return w.write(runID, failedPrefix+name+".csv", rows)
}

// failureColumns unions the columns of all failed orders in first-seen
// order, with the error column always present and last.
func failureColumns(failures []*order.Order) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, o := range failures {
		for _, column := range o.Columns() {
			if column == order.FieldErrors || seen[column] {
				continue
			}
			seen[column] = true
			columns = append(columns, column)
		}
	}
	return append(columns, order.FieldErrors)
}

func (w *Writer) write(runID, filename string, rows [][]string) error {
	dir := filepath.Join(w.archiveDir, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create archive directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		return fmt.Errorf("write manifest %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close manifest %s: %w", path, err)
	}
	return nil
}
