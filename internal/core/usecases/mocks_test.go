// internal/core/usecases/mocks_test.go
package usecases

import (
	"sync"

	"flatsource/internal/platform/ui"
)

// recordingPresenter is a ui.Presenter that keeps every call for assertions
type recordingPresenter struct {
	mu        sync.Mutex
	config    *ui.RunInfo
	infos     []string
	warnings  []string
	errors    []string
	started   int
	advanced  []string
	stopped   int
	summaries []ui.RunSummary
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{}
}

func (r *recordingPresenter) ShowConfig(info ui.RunInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = &info
}

func (r *recordingPresenter) Info(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, msg)
}

func (r *recordingPresenter) Warning(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, msg)
}

func (r *recordingPresenter) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

func (r *recordingPresenter) StartProgress(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = total
}

func (r *recordingPresenter) Advance(current string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advanced = append(r.advanced, current)
}

func (r *recordingPresenter) StopProgress() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped++
}

func (r *recordingPresenter) Summary(summary ui.RunSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summaries = append(r.summaries, summary)
}

func (r *recordingPresenter) Close() error {
	return nil
}
