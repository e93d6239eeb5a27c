// Package labelstore persists shipping label PDFs, merges them into a
// single print document, and archives the individual files after a run.
package labelstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

const labelArchiveDir = "label_archive"

// MergeError reports a failed label merge. Output holds the merge tool's
// combined output for diagnosis.
type MergeError struct {
	Output string
	Cause  error
}

func (e *MergeError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("merge labels: %v", e.Cause)
	}
	return fmt.Sprintf("merge labels: %v: %s", e.Cause, e.Output)
}

func (e *MergeError) Unwrap() error {
	return e.Cause
}

// ArchiveError reports one label that could not be moved into the run
// archive. Path names the file left behind in temporary storage.
type ArchiveError struct {
	Path  string
	Cause error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive label %s: %v", e.Path, e.Cause)
}

func (e *ArchiveError) Unwrap() error {
	return e.Cause
}

// Store implements LabelStore over a temporary directory and the run
// archive, shelling out to pdftk for the merge.
type Store struct {
	tempDir    string
	archiveDir string
	pdftkPath  string
}

// NewStore creates a file-backed label store.
func NewStore(tempDir, archiveDir, pdftkPath string) *Store {
	return &Store{
		tempDir:    tempDir,
		archiveDir: archiveDir,
		pdftkPath:  pdftkPath,
	}
}

// Save persists one label to temporary storage, named by its order
// identifier.
func (s *Store) Save(orderID string, label []byte) (string, error) {
	if err := os.MkdirAll(s.tempDir, 0o755); err != nil {
		return "", fmt.Errorf("create label directory %s: %w", s.tempDir, err)
	}

	path := filepath.Join(s.tempDir, orderID+".pdf")
	if err := os.WriteFile(path, label, 0o644); err != nil {
		return "", fmt.Errorf("save label for order %s: %w", orderID, err)
	}

	return path, nil
}

// Merge concatenates the given label files into archive/<runID>/<name>.pdf
// and returns the merged document's path.
func (s *Store) Merge(ctx context.Context, runID string, name string, labelPaths []string) (string, error) {
	if len(labelPaths) == 0 {
		return "", &MergeError{Cause: errors.New("no labels to merge")}
	}

	destDir := filepath.Join(s.archiveDir, runID)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create archive directory %s: %w", destDir, err)
	}

	mergedPath := filepath.Join(destDir, name+".pdf")
	args := append(append([]string{}, labelPaths...), "cat", "output", mergedPath)

	output, err := exec.CommandContext(ctx, s.pdftkPath, args...).CombinedOutput()
	if err != nil {
		return "", &MergeError{Output: string(output), Cause: err}
	}

	return mergedPath, nil
}

// Archive moves the given label files into archive/<runID>/label_archive/.
// Every move is attempted; failures are joined and reported together.
func (s *Store) Archive(runID string, labelPaths []string) error {
	destDir := filepath.Join(s.archiveDir, runID, labelArchiveDir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create label archive directory %s: %w", destDir, err)
	}

	var failures []error
	for _, path := range labelPaths {
		if err := moveFile(path, filepath.Join(destDir, filepath.Base(path))); err != nil {
			failures = append(failures, &ArchiveError{Path: path, Cause: err})
		}
	}

	return errors.Join(failures...)
}

// moveFile renames src to dest, falling back to copy and remove when the
// two paths sit on different filesystems.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	in.Close()
	return os.Remove(src)
}
