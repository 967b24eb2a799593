// internal/platform/logx/logx_test.go
package logx

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	logger := New()
	if logger == nil {
		t.Fatal("New() should return a logger, got nil")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"dbg", LevelDebug},
		{"  debug  ", LevelDebug},
		{"info", LevelInfo},
		{"", LevelInfo},
		{"warn", LevelWarn},
		{"Warning", LevelWarn},
		{"err", LevelError},
		{"ERROR", LevelError},
		{"garbage", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKVPairs(t *testing.T) {
	tests := []struct {
		name     string
		input    []any
		expected []string
	}{
		{"empty input", []any{}, []string{}},
		{"single pair", []any{"key", "value"}, []string{"key=value"}},
		{"odd number of elements", []any{"key1", "value1", "key2"}, []string{"key1=value1", "key2=(missing)"}},
		{"numeric values", []any{"count", 42, "enabled", true}, []string{"count=42", "enabled=true"}},
		{"path with spaces is quoted", []any{"path", "my dir/a.js"}, []string{`path="my dir/a.js"`}},
		{"string slice", []any{"exclude", []string{"sub", "node_*"}}, []string{"exclude=[sub,node_*]"}},
		{"duration", []any{"elapsed", 1500 * time.Millisecond}, []string{"elapsed=1.5s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := kvPairs(tt.input...)
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %d pairs, got %d: %v", len(tt.expected), len(result), result)
			}
			for i, exp := range tt.expected {
				if result[i] != exp {
					t.Errorf("pair %d: expected %q, got %q", i, exp, result[i])
				}
			}
		})
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug)

	scoped := logger.With("component", "walker")
	scoped.Info("pruned directory", "dir", "node_modules")
	logger.Info("unscoped")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "component=walker") || !strings.Contains(lines[0], "dir=node_modules") {
		t.Errorf("scoped line missing fields: %s", lines[0])
	}
	if strings.Contains(lines[1], "component=walker") {
		t.Errorf("original logger should not inherit scope: %s", lines[1])
	}
}

func TestLogger_Tags(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug)

	logger.Debug("debug message", "key", "value")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Err(errors.New("boom"), "source", "a.js")

	output := buf.String()
	for _, want := range []string{"DBG debug message key=value", "INF info message", "WRN warning message", "ERR error=boom source=a.js"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestLogger_Err_Nil(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug)

	logger.Err(nil, "source", "a.js")

	if buf.Len() != 0 {
		t.Errorf("nil error should not log anything, got: %s", buf.String())
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level   Level
		visible []string
		hidden  []string
	}{
		{LevelDebug, []string{"DBG", "INF", "WRN", "ERR"}, nil},
		{LevelInfo, []string{"INF", "WRN", "ERR"}, []string{"DBG"}},
		{LevelWarn, []string{"WRN", "ERR"}, []string{"DBG", "INF"}},
		{LevelError, []string{"ERR"}, []string{"DBG", "INF", "WRN"}},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(&buf, tt.level)

			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Err(errors.New("e"))

			output := buf.String()
			for _, tag := range tt.visible {
				if !strings.Contains(output, tag) {
					t.Errorf("expected %s at level %v, got: %s", tag, tt.level, output)
				}
			}
			for _, tag := range tt.hidden {
				if strings.Contains(output, tag) {
					t.Errorf("did not expect %s at level %v, got: %s", tag, tt.level, output)
				}
			}
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelError)
	scoped := logger.With("component", "migrator")

	scoped.SetLevel(LevelDebug)
	scoped.Debug("now visible")

	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("expected debug line after SetLevel, got: %s", buf.String())
	}
}

func TestLogger_ThreadSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Info("concurrent", "n", n)
		}(i)
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 50 {
		t.Errorf("expected 50 lines, got %d", got)
	}
}
