// internal/core/domain/state.go
package domain

// RunState is the lifecycle stage of a migration run.
type RunState string

const (
	RunStateConfiguring RunState = "configuring"
	RunStateValidating  RunState = "validating"
	RunStateCounting    RunState = "counting"
	RunStateProcessing  RunState = "processing"
	RunStateDone        RunState = "done"
	RunStateAborted     RunState = "aborted"
)

// IsValid reports whether s is a known state.
func (s RunState) IsValid() bool {
	switch s {
	case RunStateConfiguring, RunStateValidating, RunStateCounting,
		RunStateProcessing, RunStateDone, RunStateAborted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can happen.
func (s RunState) IsTerminal() bool {
	return s == RunStateDone || s == RunStateAborted
}

// CanTransitionTo reports whether next may follow s.
// Any non-terminal state may abort.
func (s RunState) CanTransitionTo(next RunState) bool {
	if s.IsTerminal() {
		return false
	}
	if next == RunStateAborted {
		return true
	}
	switch s {
	case RunStateConfiguring:
		return next == RunStateValidating
	case RunStateValidating:
		return next == RunStateCounting
	case RunStateCounting:
		// Zero matches ends the run without a processing pass.
		return next == RunStateProcessing || next == RunStateDone
	case RunStateProcessing:
		return next == RunStateDone
	default:
		return false
	}
}

// String returns the state name.
func (s RunState) String() string {
	return string(s)
}
