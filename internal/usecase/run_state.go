package usecase

import (
	"sync"

	"github.com/user/company-crawler/internal/entity"
)

// RunState is the mutable state of one session's crawl run. It is written
// only by the worker goroutine that owns the run and read concurrently by
// the polling endpoints, so every access goes through the lock.
type RunState struct {
	mu        sync.RWMutex
	sessionID string
	status    entity.SessionStatus
	progress  string
	results   []entity.CompanyRecord
	maxCount  int

	// done is the task handle the registry holds onto: closed by the worker
	// on every exit path.
	done chan struct{}
}

func newRunState(sessionID string, maxCount int) *RunState {
	return &RunState{
		sessionID: sessionID,
		status:    entity.StatusRunning,
		maxCount:  maxCount,
		done:      make(chan struct{}),
	}
}

// Done returns a channel closed when the worker exits.
func (s *RunState) Done() <-chan struct{} { return s.done }

// Snapshot is the read-only projection served to polling clients.
func (s *RunState) Snapshot() entity.RunSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.RunSnapshot{
		Running:   s.status.Active(),
		Progress:  s.progress,
		Completed: s.status.Terminal(),
		Count:     len(s.results),
	}
}

// Results returns a copy of the accepted records.
func (s *RunState) Results() []entity.CompanyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.CompanyRecord, len(s.results))
	copy(out, s.results)
	return out
}

func (s *RunState) active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status.Active()
}

// requestStop flips a running state to StopRequested. Reports whether there
// was an active run to stop. Settable once; repeated requests are no-ops.
func (s *RunState) requestStop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.status {
	case entity.StatusRunning:
		s.status = entity.StatusStopRequested
		return true
	case entity.StatusStopRequested:
		return true
	default:
		return false
	}
}

// stopObserved is the worker-side checkpoint poll.
func (s *RunState) stopObserved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status == entity.StatusStopRequested
}

// ceilingReached evaluates the result-count ceiling against accepted
// records. A ceiling of zero means unlimited.
func (s *RunState) ceilingReached() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxCount > 0 && len(s.results) >= s.maxCount
}

func (s *RunState) setProgress(message string) {
	s.mu.Lock()
	s.progress = message
	s.mu.Unlock()
}

func (s *RunState) appendResult(record entity.CompanyRecord) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, record)
	return len(s.results)
}

func (s *RunState) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

func (s *RunState) complete(message string) {
	s.mu.Lock()
	s.status = entity.StatusCompleted
	s.progress = message
	s.mu.Unlock()
}

func (s *RunState) fail(message string) {
	s.mu.Lock()
	s.status = entity.StatusFailed
	s.progress = message
	s.mu.Unlock()
}
