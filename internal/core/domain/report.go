package domain

import "time"

// StepStatus represents the lifecycle state of a pipeline step.
type StepStatus string

const (
	// StatusPending indicates the step is waiting for its dependencies.
	StatusPending StepStatus = "pending"
	// StatusRunning indicates the step is currently executing.
	StatusRunning StepStatus = "running"
	// StatusCompleted indicates the step finished successfully.
	StatusCompleted StepStatus = "completed"
	// StatusFailed indicates the step execution failed.
	StatusFailed StepStatus = "failed"
	// StatusSkipped indicates the step never ran because a dependency failed.
	StatusSkipped StepStatus = "skipped"
)

// IsTerminal reports whether the status is a final state.
func (s StepStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusSkipped:
		return true
	default:
		return false
	}
}

// StepReport is the persisted record of one step execution. Fingerprint
// covers the collaborator script bytes and the rendered environment, so a
// report identifies exactly what ran, not just that something ran.
type StepReport struct {
	StepName    string        `json:"step_name,omitzero"`
	Status      StepStatus    `json:"status,omitzero"`
	Fingerprint string        `json:"fingerprint,omitzero"`
	Duration    time.Duration `json:"duration,omitzero"`
	Timestamp   time.Time     `json:"timestamp,omitzero"`
	Error       string        `json:"error,omitzero"`
}
