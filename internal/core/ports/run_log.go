package ports

// RunLog defines the contract for the append-only, human-readable run log.
// Every appended line is prefixed with a timestamp by the implementation.
// The log is never truncated or rotated by this system.
type RunLog interface {
	// Append writes one line to the run log.
	Append(line string) error
}
