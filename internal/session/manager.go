package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"anonbot/internal/logger"
)

// Manager owns the user id -> session mapping and evicts sessions that
// have been idle longer than the TTL.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewManager constructs a Manager with the given abandonment TTL.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns a copy of the user's session, or an idle session if none
// exists or it has expired.
func (m *Manager) Get(userID int64) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[userID]
	if !ok || m.expired(sess) {
		return Session{State: StateIdle}
	}
	return *sess
}

// State returns the user's current dialogue state.
func (m *Manager) State(userID int64) State {
	return m.Get(userID).State
}

// InProgress reports whether the user has an active non-idle dialogue.
func (m *Manager) InProgress(userID int64) bool {
	return m.State(userID) != StateIdle
}

// SetState transitions the user to the given state, keeping any
// collected fields.
func (m *Manager) SetState(userID int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess := m.touch(userID)
	sess.State = st
}

// SetImage records the image reference collected during the post dialogue.
func (m *Manager) SetImage(userID int64, fileID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch(userID).ImageFileID = fileID
}

// ClearImage discards the collected image reference.
func (m *Manager) ClearImage(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch(userID).ImageFileID = ""
}

// SetTargetPost records the post a comment dialogue is aimed at.
func (m *Manager) SetTargetPost(userID, postID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch(userID).TargetPostID = postID
}

// Clear removes the user's session entirely, discarding partial data.
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// Sweep evicts all expired sessions and returns how many were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for id, sess := range m.sessions {
		if m.expired(sess) {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}

// RunJanitor sweeps expired sessions at the given interval until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				logger.Debug(ctx, logger.TG, "session.swept", slog.Int("evicted", n))
			}
		}
	}
}

func (m *Manager) touch(userID int64) *Session {
	sess, ok := m.sessions[userID]
	if !ok || m.expired(sess) {
		sess = &Session{State: StateIdle}
		m.sessions[userID] = sess
	}
	sess.UpdatedAt = m.now()
	return sess
}

func (m *Manager) expired(sess *Session) bool {
	return m.ttl > 0 && m.now().Sub(sess.UpdatedAt) > m.ttl
}
