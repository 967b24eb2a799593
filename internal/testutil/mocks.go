// internal/testutil/mocks.go
package testutil

import (
	"bytes"
	"sync"

	"flatsource/internal/platform/logx"
)

// LogBuffer collects logger output for assertions.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything written so far.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewCaptureLogger returns a debug-level logger writing into the returned buffer.
func NewCaptureLogger() (logx.Logger, *LogBuffer) {
	buf := &LogBuffer{}
	return logx.NewWithWriter(buf, logx.LevelDebug), buf
}

// NewSilentLogger returns a logger that only keeps errors and throws them away.
func NewSilentLogger() logx.Logger {
	return logx.NewWithWriter(&LogBuffer{}, logx.LevelError)
}
