// internal/platform/ui/plain_presenter.go
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// PlainPresenter writes bracket-tagged text lines and no progress bar.
// It is the fallback when the terminal cannot render pterm output.
type PlainPresenter struct {
	mu        sync.Mutex
	w         io.Writer
	total     int
	completed int
}

// NewPlainPresenter creates a presenter writing to w.
func NewPlainPresenter(w io.Writer) *PlainPresenter {
	return &PlainPresenter{w: w}
}

func (p *PlainPresenter) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, format, args...)
}

// ShowConfig prints the configuration block
func (p *PlainPresenter) ShowConfig(info RunInfo) {
	var b strings.Builder
	b.WriteString("\n[CONFIGURATION]\n")
	fmt.Fprintf(&b, " Mode:       %s\n", modeLabel(info))
	fmt.Fprintf(&b, " Root:       %s\n", info.Root)
	fmt.Fprintf(&b, " Dest:       %s\n", info.Dest)
	fmt.Fprintf(&b, " Excluding:  [%s]\n", strings.Join(info.Excludes, ", "))
	if info.GitIgnore {
		b.WriteString(" GitIgnore:  ON\n")
	}
	b.WriteString(" Mappings:\n")
	for _, m := range info.Mappings {
		fmt.Fprintf(&b, "   %-8s -> %s\n", m.Input, m.Output)
	}
	p.printf("%s", b.String())
}

func (p *PlainPresenter) Info(msg string) {
	p.printf("[INFO] %s\n", msg)
}

func (p *PlainPresenter) Warning(msg string) {
	p.printf("[WARN] %s\n", msg)
}

func (p *PlainPresenter) Error(msg string) {
	p.printf("[FATAL] %s\n", msg)
}

// StartProgress only records the total; plain output has no bar.
func (p *PlainPresenter) StartProgress(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.total = total
	p.completed = 0
}

func (p *PlainPresenter) Advance(current string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed++
}

func (p *PlainPresenter) StopProgress() {}

// Progress returns how many files were reported out of the announced total.
func (p *PlainPresenter) Progress() (completed, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed, p.total
}

// Summary prints the completion lines
func (p *PlainPresenter) Summary(summary RunSummary) {
	p.printf("\n[SUCCESS] %s complete.\nProcessed: %d/%d files.\n",
		summary.Outcome, summary.Processed, summary.Total)
}

func (p *PlainPresenter) Close() error {
	return nil
}

func modeLabel(info RunInfo) string {
	if info.Mode != "" {
		return info.Mode
	}
	if info.DryRun {
		return "[DRY RUN - SIMULATION]"
	}
	return "LIVE EXECUTION"
}
