// internal/core/domain/run.go
package domain

import (
	"fmt"
	"strings"
	"time"
)

// RunConfig describes a single flattening run. It is built once by the
// config layer and not modified afterwards.
type RunConfig struct {
	// Root is the directory tree to scan.
	Root string

	// Dest is the flat destination directory.
	Dest string

	// InputExts and OutputExts are the raw extension tokens, paired by position.
	InputExts  []string
	OutputExts []string

	// Excludes are shell globs matched against bare directory names.
	Excludes []string

	// DryRun simulates the run without writing anything.
	DryRun bool

	// UseGitIgnore also honors <Root>/.gitignore.
	UseGitIgnore bool
}

// Validate checks the fields every run needs. Filesystem checks happen later.
func (c RunConfig) Validate() error {
	if strings.TrimSpace(c.Dest) == "" {
		return ErrEmptyDestination
	}
	if len(c.InputExts) == 0 {
		return ErrNoInputExtensions
	}
	if len(c.OutputExts) == 0 {
		return ErrNoOutputExtensions
	}
	return nil
}

// Mapping builds the extension mapping for this run.
func (c RunConfig) Mapping() ExtensionMapping {
	return NewExtensionMapping(c.InputExts, c.OutputExts)
}

// ModeLabel is the human readable execution mode.
func (c RunConfig) ModeLabel() string {
	if c.DryRun {
		return "DRY RUN - SIMULATION"
	}
	return "LIVE EXECUTION"
}

// RunStats holds the counters of one run.
type RunStats struct {
	Discovered int
	Processed  int
	DryRun     bool
	Duration   time.Duration

	// Outputs are the destination file names, in processing order.
	// In dry-run mode they are the names a live run would have used.
	Outputs []string
}

// Summary is the one-line completion report, e.g. "Processed: 3/3 files."
func (s RunStats) Summary() string {
	return fmt.Sprintf("Processed: %d/%d files.", s.Processed, s.Discovered)
}

// Outcome is "Simulation" for dry runs and "Operation" otherwise.
func (s RunStats) Outcome() string {
	if s.DryRun {
		return "Simulation"
	}
	return "Operation"
}
