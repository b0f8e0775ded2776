package server

import (
	"context"
	"sync"
	"time"

	"hirescreen/internal/config"
	hirescreenErrors "hirescreen/internal/errors"
	"hirescreen/internal/interview"
	"hirescreen/internal/observability"
)

// SessionStore keeps live interview sessions in memory and reaps the ones
// that have been idle past the configured timeout.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*interview.Session

	idleTimeout     time.Duration
	cleanupInterval time.Duration
	maxSessions     int

	done   chan struct{}
	closed bool

	// Observability is optional and wired in at server startup
	obsManager *observability.ObservabilityManager

	logger *hirescreenErrors.Logger
}

// NewSessionStore creates a store and starts the idle session reaper.
func NewSessionStore(cfg config.SessionConfig, logger *hirescreenErrors.Logger) *SessionStore {
	idleTimeout := cfg.IdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = 30 * time.Minute
	}
	cleanupInterval := cfg.CleanupInterval
	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}
	maxSessions := cfg.MaxSessions
	if maxSessions <= 0 {
		maxSessions = 1000
	}

	store := &SessionStore{
		sessions:        make(map[string]*interview.Session),
		idleTimeout:     idleTimeout,
		cleanupInterval: cleanupInterval,
		maxSessions:     maxSessions,
		done:            make(chan struct{}),
		logger:          logger,
	}

	go store.reapLoop()
	return store
}

// SetObservability wires session metrics. Call before serving traffic.
func (st *SessionStore) SetObservability(om *observability.ObservabilityManager) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.obsManager = om
}

// Add registers a new session. Fails when the store is at capacity.
func (st *SessionStore) Add(session *interview.Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.sessions) >= st.maxSessions {
		return hirescreenErrors.NewValidationError(
			hirescreenErrors.ErrCodeSessionLimit,
			"Maximum number of concurrent interview sessions reached",
			nil,
		).WithContext("max_sessions", st.maxSessions)
	}

	st.sessions[session.ID()] = session
	st.recordActiveLocked()
	return nil
}

// Get returns the session with the given id, or nil when unknown.
func (st *SessionStore) Get(id string) *interview.Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Remove deletes a session from the store.
func (st *SessionStore) Remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
	st.recordActiveLocked()
}

// Count returns the number of live sessions.
func (st *SessionStore) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Close stops the reaper goroutine.
func (st *SessionStore) Close() {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return
	}
	st.closed = true
	close(st.done)
}

// reapLoop periodically removes idle sessions
func (st *SessionStore) reapLoop() {
	ticker := time.NewTicker(st.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st.reap()
		case <-st.done:
			return
		}
	}
}

// reap removes every session idle longer than the configured timeout
func (st *SessionStore) reap() {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	expired := 0
	for id, session := range st.sessions {
		if now.Sub(session.LastActivity()) > st.idleTimeout {
			delete(st.sessions, id)
			expired++
			if st.obsManager != nil {
				st.obsManager.GetMetrics().RecordSessionExpired(context.Background(), st.obsManager)
			}
		}
	}

	if expired > 0 {
		st.recordActiveLocked()
		if st.logger != nil {
			st.logger.Info("Expired idle interview sessions",
				"expired", expired,
				"remaining", len(st.sessions))
		}
	}
}

// recordActiveLocked updates the active sessions gauge. Caller holds the lock.
func (st *SessionStore) recordActiveLocked() {
	if st.obsManager != nil {
		st.obsManager.GetMetrics().RecordActiveSessions(context.Background(), int64(len(st.sessions)), st.obsManager)
	}
}
