package usecase

import (
	"errors"
	"sync"

	"github.com/user/company-crawler/internal/entity"
)

var (
	ErrRunActive   = errors.New("a crawl run is already active for this session")
	ErrNoActiveRun = errors.New("no active crawl run for this session")
	ErrNoKeywords  = errors.New("keywords are empty")
)

// SessionRegistry maps session tokens to their run state and enforces one
// active run per session. Terminal runs stay addressable (for /results and
// /download) until the next start request replaces them.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*RunState
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*RunState)}
}

// Begin validates and installs a fresh RunState for sessionID, replacing any
// terminal previous run, and returns the state the worker should drive.
func (r *SessionRegistry) Begin(sessionID string, maxCount int) (*RunState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.sessions[sessionID]; ok && current.active() {
		return nil, ErrRunActive
	}
	state := newRunState(sessionID, maxCount)
	r.sessions[sessionID] = state
	return state, nil
}

// Stop requests cooperative cancellation of the session's active run.
func (r *SessionRegistry) Stop(sessionID string) error {
	r.mu.RLock()
	state, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok || !state.requestStop() {
		return ErrNoActiveRun
	}
	return nil
}

// Snapshot returns the session's run projection; the zero snapshot for an
// unknown session.
func (r *SessionRegistry) Snapshot(sessionID string) entity.RunSnapshot {
	r.mu.RLock()
	state, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return entity.RunSnapshot{}
	}
	return state.Snapshot()
}

// Results returns a copy of the session's accepted records.
func (r *SessionRegistry) Results(sessionID string) []entity.CompanyRecord {
	r.mu.RLock()
	state, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	return state.Results()
}
