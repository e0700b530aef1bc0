package walk

import (
	"errors"

	"github.com/Oscarnordstrom/rcat/pkg/config"
)

// Options configure a single walk. Immutable once the walk starts.
type Options struct {
	// IncludeAll disables ignore rules, dotted-name filtering, and the
	// binary-file exclusion.
	IncludeAll bool

	// MaxSize caps the aggregate size of all emitted blocks. When adding
	// a block would exceed it, a single truncation marker is emitted and
	// the walk stops.
	MaxSize int

	// MaxFileSize skips individual files larger than this many bytes.
	MaxFileSize int

	// ExcludePatterns are matched against each component of a candidate
	// path; a match excludes the whole path.
	ExcludePatterns []string

	// Workers sets the traversal worker count. With one worker the walk
	// is strictly breadth-first with entries in name order, so output is
	// deterministic. With more workers no file is duplicated or lost and
	// the size caps still hold, but emission order across directories is
	// unspecified.
	Workers int
}

// DefaultOptions returns the standard single-worker configuration with
// the default size caps.
func DefaultOptions() Options {
	return Options{
		MaxSize:     config.DefaultMaxSize,
		MaxFileSize: config.DefaultMaxFileSize,
		Workers:     1,
	}
}

// Validate rejects malformed options before any traversal starts. This is
// the only error that aborts a walk.
func (o Options) Validate() error {
	if o.MaxSize <= 0 {
		return errors.New("max size must be greater than 0")
	}
	if o.MaxFileSize <= 0 {
		return errors.New("max file size must be greater than 0")
	}
	if o.Workers < 0 {
		return errors.New("worker count cannot be negative")
	}
	return nil
}
