package entity

// SessionStatus is the lifecycle state of one session's crawl run.
type SessionStatus string

const (
	StatusIdle          SessionStatus = "idle"
	StatusRunning       SessionStatus = "running"
	StatusStopRequested SessionStatus = "stop_requested"
	StatusCompleted     SessionStatus = "completed"
	StatusFailed        SessionStatus = "failed"
)

// Terminal reports whether the run can no longer make progress. A failed run
// counts as terminal so polling clients stop waiting; the failure itself is
// carried in the progress message.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Active reports whether a worker currently owns the run state.
func (s SessionStatus) Active() bool {
	return s == StatusRunning || s == StatusStopRequested
}

// RunSnapshot is the read-only projection of run state served to polling
// clients.
type RunSnapshot struct {
	Running   bool
	Progress  string
	Completed bool
	Count     int
}
