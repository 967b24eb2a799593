// internal/platform/ui/noop_presenter.go
package ui

// NoopPresenter produces no output. Used for quiet mode and headless runs.
type NoopPresenter struct{}

// NewNoopPresenter creates a presenter without output
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

func (n *NoopPresenter) ShowConfig(info RunInfo)    {}
func (n *NoopPresenter) Info(msg string)            {}
func (n *NoopPresenter) Warning(msg string)         {}
func (n *NoopPresenter) Error(msg string)           {}
func (n *NoopPresenter) StartProgress(total int)    {}
func (n *NoopPresenter) Advance(current string)     {}
func (n *NoopPresenter) StopProgress()              {}
func (n *NoopPresenter) Summary(summary RunSummary) {}

func (n *NoopPresenter) Close() error {
	return nil
}
