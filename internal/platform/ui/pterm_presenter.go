// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

// PTermPresenter renders a run with pterm: a configuration box, a mapping
// table, a progress bar and a statistics panel.
type PTermPresenter struct {
	mu  sync.Mutex
	bar *pterm.ProgressbarPrinter
}

// NewPTermPresenter creates a presenter backed by pterm
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{}
}

// ShowConfig prints the header, the configuration box and the mapping table
func (p *PTermPresenter) ShowConfig(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("FlatSource - File Aggregation")

	pterm.Println()

	modeStyle := StyleSuccess
	if info.DryRun {
		modeStyle = StyleWarning
	}

	excludes := "none"
	if len(info.Excludes) > 0 {
		excludes = strings.Join(info.Excludes, ", ")
	}

	content := fmt.Sprintf("%s Mode: %s\n", IconMode, modeStyle.Sprint(modeLabel(info)))
	content += fmt.Sprintf("%s Root: %s\n", IconRoot, pterm.Cyan(info.Root))
	content += fmt.Sprintf("%s Dest: %s\n", IconDest, pterm.Cyan(info.Dest))
	content += fmt.Sprintf("%s Excluding: %s\n", IconExclude, excludes)
	content += fmt.Sprintf("   GitIgnore: %s", boolToString(info.GitIgnore))

	pterm.DefaultBox.
		WithTitle("Configuration").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Println(content)

	if len(info.Mappings) > 0 {
		tableData := pterm.TableData{{"Input", "Output", "Header"}}
		for _, m := range info.Mappings {
			tableData = append(tableData, []string{m.Input, m.Output, m.Comment})
		}
		pterm.DefaultSection.WithLevel(2).Println("Mappings")
		_ = pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(tableData).Render()
	}

	pterm.Println()
}

func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pterm.Info.Println(msg)
}

func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pterm.Warning.Println(msg)
}

// Error stops any running bar so the message is not overdrawn.
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopBarUnsafe()
	pterm.Error.WithPrefix(pterm.Prefix{
		Text:  "FATAL",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}).Println(StyleError.Sprint(msg))
}

// StartProgress starts the progress bar. Rendering failures are ignored:
// the bar is cosmetic.
func (p *PTermPresenter) StartProgress(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopBarUnsafe()
	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Migrating").
		Start()
	if err != nil {
		return
	}
	p.bar = bar
}

func (p *PTermPresenter) Advance(current string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil {
		return
	}
	p.bar.UpdateTitle(truncate("Migrating "+current, 40))
	p.bar.Increment()
}

func (p *PTermPresenter) StopProgress() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopBarUnsafe()
}

// Summary prints the statistics panel
func (p *PTermPresenter) Summary(summary RunSummary) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopBarUnsafe()
	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Success.Printf("%s complete.\n", summary.Outcome)

	content := fmt.Sprintf("%s Processed: %s\n", IconFiles,
		pterm.Cyan(fmt.Sprintf("%d/%d files", summary.Processed, summary.Total)))
	content += fmt.Sprintf("%s Duration: %s", IconTime, pterm.Green(formatDuration(summary.Duration)))

	pterm.DefaultBox.
		WithTitle("Run Statistics").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen)).
		Println(content)
}

func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopBarUnsafe()
	return nil
}

func (p *PTermPresenter) stopBarUnsafe() {
	if p.bar == nil {
		return
	}
	_, _ = p.bar.Stop()
	p.bar = nil
}
