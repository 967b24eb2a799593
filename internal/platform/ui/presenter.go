// internal/platform/ui/presenter.go
package ui

import (
	"io"
	"strings"
	"time"
)

// UIMode selects how a run is rendered.
type UIMode string

const (
	UIModePTerm UIMode = "pterm" // boxes, tables and a progress bar (default)
	UIModePlain UIMode = "plain" // plain text lines, no progress bar
	UIModeQuiet UIMode = "quiet" // no output at all
)

// IsValid reports whether m is a known mode.
func (m UIMode) IsValid() bool {
	switch m {
	case UIModePTerm, UIModePlain, UIModeQuiet:
		return true
	default:
		return false
	}
}

// ParseUIMode maps a user supplied name to a UIMode.
func ParseUIMode(s string) (UIMode, bool) {
	m := UIMode(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return UIModePTerm, true
	}
	return m, m.IsValid()
}

// Presenter renders the progress of a run. It is a side channel only:
// implementations must never influence what the run does.
type Presenter interface {
	// ShowConfig shows the resolved run configuration
	ShowConfig(info RunInfo)

	// Info shows an informational message
	Info(msg string)

	// Warning shows a warning
	Warning(msg string)

	// Error shows a fatal error
	Error(msg string)

	// StartProgress starts progress tracking for total files
	StartProgress(total int)

	// Advance marks one more file as done
	Advance(current string)

	// StopProgress ends progress tracking; safe to call more than once
	StopProgress()

	// Summary shows the final statistics
	Summary(summary RunSummary)

	// Close releases presenter resources
	Close() error
}

// RunInfo describes a run before it starts.
type RunInfo struct {
	Mode      string
	DryRun    bool
	Root      string
	Dest      string
	Excludes  []string
	GitIgnore bool
	Mappings  []MappingRow
}

// MappingRow is one input -> output extension entry.
type MappingRow struct {
	Input   string
	Output  string
	Comment string // comment family of Output, e.g. "double-slash"
}

// RunSummary holds the final figures of a run.
type RunSummary struct {
	Outcome   string // "Simulation" or "Operation"
	DryRun    bool
	Processed int
	Total     int
	Duration  time.Duration
}

// NewWithWriter returns the presenter for mode. The pterm presenter always
// renders through pterm's own output.
func NewWithWriter(mode UIMode, w io.Writer) Presenter {
	switch mode {
	case UIModeQuiet:
		return NewNoopPresenter()
	case UIModePlain:
		return NewPlainPresenter(w)
	default:
		return NewPTermPresenter()
	}
}
