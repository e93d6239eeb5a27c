// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var ErrGetArchivedRunsQueryIsNotConstructed = errors.New(
	"GetArchivedRunsQuery must be created via NewGetArchivedRunsQuery constructor",
)

// GetArchivedRunsQuery retrieves the completed fulfillment runs recorded in
// the archive directory tree. Returns run identity and artifact counts for
// monitoring the watch-mode daemon.
//
// Example:
//
//	query := NewGetArchivedRunsQuery()
//	handler := NewGetArchivedRunsQueryHandler(archiveDir)
//
//	runs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve runs: %w", err)
//	}
//	for _, run := range runs {
//	    fmt.Printf("Run %s: %d labels\n", run.RunID, run.Labels)
//	}
type GetArchivedRunsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetArchivedRunsQuery creates a query to retrieve all archived runs.
// This is a parameterless query that scans the complete archive tree.
func NewGetArchivedRunsQuery() GetArchivedRunsQuery {
	return GetArchivedRunsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetArchivedRunsQueryIsNotConstructed if validation fails.
func (q GetArchivedRunsQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedRunsQueryIsNotConstructed)
}

// GetArchivedRunsQueryResponse represents one archived run in the read model.
type GetArchivedRunsQueryResponse struct {
	// RunID is the run's start time as seconds since epoch, decimal string.
	RunID string

	// StartedAt is RunID decoded to a UTC timestamp.
	StartedAt time.Time

	// Labels is the number of per-order label files in the run's label archive.
	Labels int

	// Artifacts is the number of files in the run's archive root
	// (manifests, merged label document, archived input).
	Artifacts int
}
