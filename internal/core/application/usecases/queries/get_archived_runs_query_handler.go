package queries

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// labelArchiveDir is the per-run subdirectory holding individual labels.
const labelArchiveDir = "label_archive"

// GetArchivedRunsQueryHandler retrieves archived run information from the
// archive directory tree. Reads the filesystem directly for the read side;
// the write side never updates state outside the archive.
//
// Example:
//
//	handler := NewGetArchivedRunsQueryHandler("/var/lib/fulfillment/archive")
//	query := NewGetArchivedRunsQuery()
//
//	runs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list runs: %v", err)
//	}
type GetArchivedRunsQueryHandler struct {
	archiveDir string
}

// NewGetArchivedRunsQueryHandler creates a handler scanning the given
// archive root directory.
func NewGetArchivedRunsQueryHandler(archiveDir string) GetArchivedRunsQueryHandler {
	return GetArchivedRunsQueryHandler{archiveDir: archiveDir}
}

// Handle executes the query. Returns archived runs sorted oldest first.
// Directory entries that are not run directories (non-numeric names) are
// skipped. A missing archive root yields an empty result, not an error:
// it simply means no run has completed yet.
func (h GetArchivedRunsQueryHandler) Handle(
	_ context.Context,
	query GetArchivedRunsQuery,
) ([]GetArchivedRunsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(h.archiveDir)
	if os.IsNotExist(err) {
		return []GetArchivedRunsQueryResponse{}, nil
	}
	if err != nil {
		return nil, err
	}

	runs := make([]GetArchivedRunsQueryResponse, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		epoch, convErr := strconv.ParseInt(entry.Name(), 10, 64)
		if convErr != nil {
			continue
		}

		run := GetArchivedRunsQueryResponse{
			RunID:     entry.Name(),
			StartedAt: time.Unix(epoch, 0).UTC(),
		}

		runDir := filepath.Join(h.archiveDir, entry.Name())
		if files, readErr := os.ReadDir(runDir); readErr == nil {
			for _, f := range files {
				if !f.IsDir() {
					run.Artifacts++
				}
			}
		}
		if labels, readErr := os.ReadDir(filepath.Join(runDir, labelArchiveDir)); readErr == nil {
			run.Labels = len(labels)
		}

		runs = append(runs, run)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.Before(runs[j].StartedAt)
	})

	return runs, nil
}
