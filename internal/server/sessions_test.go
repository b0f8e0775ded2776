package server

import (
	"testing"
	"time"

	goerrors "errors"

	"hirescreen/internal/config"
	"hirescreen/internal/errors"
)

func newTestStore(cfg config.SessionConfig) *SessionStore {
	return NewSessionStore(cfg, errors.NewLogger(0))
}

func TestSessionStoreAddGetRemove(t *testing.T) {
	store := newTestStore(config.SessionConfig{})
	defer store.Close()

	session := newFakeSession()
	if err := store.Add(session); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := store.Get(session.ID()); got != session {
		t.Error("Get returned a different session")
	}
	if store.Count() != 1 {
		t.Errorf("Count = %d, want 1", store.Count())
	}

	store.Remove(session.ID())
	if store.Get(session.ID()) != nil {
		t.Error("session still present after Remove")
	}
	if store.Count() != 0 {
		t.Errorf("Count = %d, want 0", store.Count())
	}
}

func TestSessionStoreGetUnknown(t *testing.T) {
	store := newTestStore(config.SessionConfig{})
	defer store.Close()

	if store.Get("missing") != nil {
		t.Error("expected nil for unknown session id")
	}
}

func TestSessionStoreCapacity(t *testing.T) {
	store := newTestStore(config.SessionConfig{MaxSessions: 1})
	defer store.Close()

	if err := store.Add(newFakeSession()); err != nil {
		t.Fatalf("first Add: %v", err)
	}

	err := store.Add(newFakeSession())
	if err == nil {
		t.Fatal("expected capacity error")
	}

	var appErr *errors.AppError
	if !goerrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeSessionLimit {
		t.Errorf("error code = %s, want %s", appErr.Code, errors.ErrCodeSessionLimit)
	}
}

func TestSessionStoreReapsIdleSessions(t *testing.T) {
	store := newTestStore(config.SessionConfig{
		IdleTimeout:     time.Nanosecond,
		CleanupInterval: time.Hour, // reap manually
	})
	defer store.Close()

	session := newFakeSession()
	if err := store.Add(session); err != nil {
		t.Fatalf("Add: %v", err)
	}

	time.Sleep(time.Millisecond)
	store.reap()

	if store.Count() != 0 {
		t.Errorf("idle session survived reap, count = %d", store.Count())
	}
}

func TestSessionStoreCloseIdempotent(t *testing.T) {
	store := newTestStore(config.SessionConfig{})
	store.Close()
	store.Close()
}
