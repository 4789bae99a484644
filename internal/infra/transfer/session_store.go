// Package transfer holds the infrastructure behind chunked asset transfer:
// the in-memory upload session table and the on-disk chunk store.
package transfer

import (
	"maps"
	"sync"
	"time"

	"taxiads/internal/domain/entity"
)

// SessionStore is the in-memory table of in-flight upload sessions, keyed by
// session token. Sessions are ephemeral; a restart aborts all uploads.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*entity.UploadSession
	now      func() time.Time
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*entity.UploadSession),
		now:      time.Now,
	}
}

// Put stores the session, replacing any prior session with the same token.
func (s *SessionStore) Put(session *entity.UploadSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.Token] = session
}

// Get returns a copy of the session so callers can read it without holding
// the store lock.
func (s *SessionStore) Get(token string) (*entity.UploadSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, false
	}

	return cloneSession(session), true
}

// MarkReceived records the chunk index as received and bumps the session's
// activity timestamp. Marking an already-received index is a no-op, so
// retried chunks stay idempotent. Returns the updated received count.
func (s *SessionStore) MarkReceived(token string, index int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return 0, false
	}

	session.Received[index] = struct{}{}
	session.LastActivityAt = s.now()

	return len(session.Received), true
}

// SetStatus transitions the session's status and bumps its activity timestamp.
func (s *SessionStore) SetStatus(token string, status entity.UploadStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return false
	}

	session.Status = status
	session.LastActivityAt = s.now()

	return true
}

// Delete removes the session. Idempotent.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}

// Snapshot returns copies of all sessions for monitoring.
func (s *SessionStore) Snapshot() []*entity.UploadSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]*entity.UploadSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, cloneSession(session))
	}

	return sessions
}

// PurgeIdle removes and returns sessions idle longer than ttl. Completing
// sessions are skipped so a merge in progress is never swept out from under
// its goroutine.
func (s *SessionStore) PurgeIdle(ttl time.Duration) []*entity.UploadSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	var purged []*entity.UploadSession
	for token, session := range s.sessions {
		if session.Status == entity.UploadStatusCompleting {
			continue
		}
		if session.LastActivityAt.Before(cutoff) {
			purged = append(purged, cloneSession(session))
			delete(s.sessions, token)
		}
	}

	return purged
}

func cloneSession(session *entity.UploadSession) *entity.UploadSession {
	cloned := *session
	cloned.Received = maps.Clone(session.Received)

	return &cloned
}
