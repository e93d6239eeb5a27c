// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, orchestration, and reporting.
package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrProcessBatchCommandIsNotConstructed = errors.New(
	"ProcessBatchCommand must be created via NewProcessBatchCommand constructor",
)

// ProcessBatchCommand triggers one fulfillment run: the batch input in the
// drop directory is validated, submitted to the carrier order by order, and
// the run's artifacts (manifests, merged label document, archive) are
// produced.
//
// Example:
//
//	cmd := NewProcessBatchCommand()
//	handler := NewProcessBatchCommandHandler(deps)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ports.ErrNoInputFound) {
//	    log.Println("Nothing to process")
//	}
type ProcessBatchCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessBatchCommand creates a new command to trigger one fulfillment run.
// This is a parameterless command; the run is driven entirely by the drop
// directory's content.
func NewProcessBatchCommand() ProcessBatchCommand {
	return ProcessBatchCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessBatchCommandIsNotConstructed if validation fails.
func (c *ProcessBatchCommand) Validate() error {
	return c.guard.Validate(
		ErrProcessBatchCommandIsNotConstructed,
	)
}
