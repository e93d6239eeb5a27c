package ports

import "context"

// LabelStore defines the contract for persisting, merging, and archiving
// shipping label documents.
//
// Labels live in temporary storage from submission until the end of the
// run, when they are moved, not copied, into the run's archive. No two
// runs may execute concurrently against the same storage directories.
type LabelStore interface {
	// Save persists one label document to temporary storage, named by its
	// order identifier, and returns the file path.
	Save(orderID string, label []byte) (string, error)

	// Merge concatenates the given label files, in the given order, into a
	// single document named after the batch input inside the run's archive
	// directory. Returns the merged document's path. Fails with a merge
	// error when the external merge tool reports one or an input path is
	// unreadable.
	Merge(ctx context.Context, runID string, name string, labelPaths []string) (string, error)

	// Archive moves the given label files into the run's label archive
	// directory, creating it if absent. Relocation is best-effort: a
	// failed move is reported with its source path but does not prevent
	// the remaining moves from being attempted.
	Archive(runID string, labelPaths []string) error
}
