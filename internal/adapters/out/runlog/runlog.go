// Package runlog appends timestamped lines to the operator-facing run log
// file. The log is append-only and never truncated.
package runlog

import (
	"fmt"
	"os"
	"time"
)

// Log implements RunLog over a single append-only file.
type Log struct {
	path string
	now  func() time.Time
}

// NewLog creates a file-backed run log at the given path. The file is
// created on first append.
func NewLog(path string) *Log {
	return &Log{
		path: path,
		now:  time.Now,
	}
}

// Append writes one timestamped line to the log.
func (l *Log) Append(line string) error {
	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log %s: %w", l.path, err)
	}

	if _, err := fmt.Fprintf(file, "%s: %s\n", l.now().Format(time.UnixDate), line); err != nil {
		file.Close()
		return fmt.Errorf("append to run log %s: %w", l.path, err)
	}

	return file.Close()
}
