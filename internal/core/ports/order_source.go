package ports

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
)

// ErrNoInputFound is returned by OrderSource.Read when the drop directory
// contains no batch input file. In watch mode this is an expected idle
// state, not a failure.
var ErrNoInputFound = errors.New("no input file found in drop directory")

// Input is one discovered batch input: the file's base name without its
// extension (used to name the run's output artifacts) and the parsed orders
// in input row order.
type Input struct {
	Name   string
	Orders []*order.Order
}

// OrderSource defines the contract for discovering and consuming the
// tabular batch input.
type OrderSource interface {
	// Read discovers the input file in the drop directory and parses its
	// rows into orders with normalized field names.
	// Returns ErrNoInputFound when the drop directory holds no input.
	Read(ctx context.Context) (*Input, error)

	// Archive moves the input file, unmodified, into the archive root of
	// the given run. The destination directory is created if absent.
	Archive(ctx context.Context, runID string) error
}
