// internal/platform/ui/presenter_test.go
package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
)

func TestParseUIMode(t *testing.T) {
	tests := []struct {
		input string
		mode  UIMode
		ok    bool
	}{
		{"", UIModePTerm, true},
		{"pterm", UIModePTerm, true},
		{" Plain ", UIModePlain, true},
		{"QUIET", UIModeQuiet, true},
		{"fancy", UIMode("fancy"), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, ok := ParseUIMode(tt.input)
			if mode != tt.mode || ok != tt.ok {
				t.Errorf("ParseUIMode(%q) = (%q, %v), expected (%q, %v)", tt.input, mode, ok, tt.mode, tt.ok)
			}
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer

	if _, ok := NewWithWriter(UIModeQuiet, &buf).(*NoopPresenter); !ok {
		t.Error("quiet mode should return NoopPresenter")
	}
	if _, ok := NewWithWriter(UIModePlain, &buf).(*PlainPresenter); !ok {
		t.Error("plain mode should return PlainPresenter")
	}
	if _, ok := NewWithWriter(UIModePTerm, &buf).(*PTermPresenter); !ok {
		t.Error("pterm mode should return PTermPresenter")
	}
}

func TestPlainPresenter_ShowConfig(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPresenter(&buf)

	p.ShowConfig(RunInfo{
		DryRun:   true,
		Root:     "/src",
		Dest:     "/out",
		Excludes: []string{"node_modules", "dist"},
		Mappings: []MappingRow{{Input: ".js", Output: ".txt"}, {Input: ".css", Output: ".css"}},
	})

	out := buf.String()
	for _, want := range []string{
		"[CONFIGURATION]",
		"Mode:       [DRY RUN - SIMULATION]",
		"Root:       /src",
		"Dest:       /out",
		"Excluding:  [node_modules, dist]",
		"   .js      -> .txt",
		"   .css     -> .css",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "GitIgnore") {
		t.Errorf("gitignore line should only appear when enabled:\n%s", out)
	}
}

func TestPlainPresenter_MessagesAndSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPresenter(&buf)

	p.Info("Found 3 files to process.")
	p.Warning("careful")
	p.Error("Root directory not found: /nope")
	p.StartProgress(3)
	p.Advance("a.js")
	p.Advance("b.js")
	p.StopProgress()
	p.Summary(RunSummary{Outcome: "Simulation", DryRun: true, Processed: 2, Total: 3})

	out := buf.String()
	for _, want := range []string{
		"[INFO] Found 3 files to process.",
		"[WARN] careful",
		"[FATAL] Root directory not found: /nope",
		"[SUCCESS] Simulation complete.",
		"Processed: 2/3 files.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}

	completed, total := p.Progress()
	if completed != 2 || total != 3 {
		t.Errorf("Expected (2, 3), got (%d, %d)", completed, total)
	}
}

func TestNoopPresenter(t *testing.T) {
	var p Presenter = NewNoopPresenter()
	p.ShowConfig(RunInfo{})
	p.StartProgress(10)
	p.Advance("x")
	p.StopProgress()
	p.Summary(RunSummary{})
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestPTermPresenter_Lifecycle(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	p := NewPTermPresenter()
	p.ShowConfig(RunInfo{Root: "/src", Dest: "/out", Mappings: []MappingRow{{".js", ".txt", "//"}}})
	p.StartProgress(2)
	p.Advance("a.js")
	p.Advance("a-very-long-file-name-that-needs-truncation.js")
	p.StopProgress()
	p.StopProgress()
	p.Error("boom")
	p.Summary(RunSummary{Outcome: "Operation", Processed: 2, Total: 2, Duration: time.Second})

	if p.bar != nil {
		t.Error("progress bar should be stopped")
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{125 * time.Second, "2m5s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("truncate long = %q", got)
	}
}
