// Package csvdrop reads order batches from CSV files placed in a drop
// directory and archives processed inputs.
package csvdrop

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// nonWord matches runs of characters that are not letters, digits or
// underscores. Used to normalize CSV headers into field names.
var nonWord = regexp.MustCompile(`\W+`)

// Source implements OrderSource over a local drop directory. When more
// than one CSV file is present the lexically first one is chosen, so a
// backlog drains in a deterministic order across runs.
type Source struct {
	dropDir    string
	archiveDir string
	logger     *slog.Logger
}

// NewSource creates a drop-directory order source.
func NewSource(dropDir, archiveDir string, logger *slog.Logger) *Source {
	return &Source{
		dropDir:    dropDir,
		archiveDir: archiveDir,
		logger:     logger.With("component", "csvdrop"),
	}
}

// Read discovers the current input file and parses it into order records.
// Returns ports.ErrNoInputFound when the drop directory holds no CSV file.
func (s *Source) Read(ctx context.Context) (*ports.Input, error) {
	path, err := s.discover(ctx)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	defer file.Close()

	orders, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse input %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &ports.Input{Name: name, Orders: orders}, nil
}

// Archive moves the current input file into the run's archive directory.
func (s *Source) Archive(ctx context.Context, runID string) error {
	path, err := s.discover(ctx)
	if err != nil {
		return err
	}

	destDir := filepath.Join(s.archiveDir, runID)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create archive directory %s: %w", destDir, err)
	}

	return moveFile(path, filepath.Join(destDir, filepath.Base(path)))
}

// discover returns the path of the input file to process.
func (s *Source) discover(ctx context.Context) (string, error) {
	entries, err := os.ReadDir(s.dropDir)
	if err != nil {
		return "", fmt.Errorf("read drop directory %s: %w", s.dropDir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			candidates = append(candidates, entry.Name())
		}
	}

	if len(candidates) == 0 {
		return "", ports.ErrNoInputFound
	}
	if len(candidates) > 1 {
		s.logger.WarnContext(ctx, "Multiple input files in drop directory, processing the first",
			"selected", candidates[0],
			"pending", len(candidates)-1)
	}

	return filepath.Join(s.dropDir, candidates[0]), nil
}

// parse reads CSV rows into order records. The first row is treated as
// the header and normalized into field names: runs of non-word
// characters become a single underscore and the result is uppercased,
// so "Sales Order #" becomes "SALES_ORDER_".
func parse(r io.Reader) ([]*order.Order, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = normalizeHeader(h)
	}

	var orders []*order.Order
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		fields := make(map[string]string, len(columns))
		for i, column := range columns {
			fields[column] = row[i]
		}

		o, err := order.New(columns, fields)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func normalizeHeader(h string) string {
	return strings.ToUpper(nonWord.ReplaceAllString(h, "_"))
}

// moveFile renames src to dest, falling back to copy and remove when the
// two paths sit on different filesystems.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("move %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("move %s: %w", src, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("move %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("move %s: %w", src, err)
	}

	in.Close()
	return os.Remove(src)
}
