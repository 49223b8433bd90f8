package services

import (
	"agrodirect/models"
	"agrodirect/repositories"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	deps     *SessionDeps
	idleTTL  time.Duration
	logger   *zap.Logger
}

func NewSessionStore(deps *SessionDeps, idleTTL time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		deps:     deps,
		idleTTL:  idleTTL,
		logger:   deps.Logger.Named("sessions"),
	}
}

func (s *SessionStore) Create(user *models.User) *Session {
	session := NewSession(user, s.deps)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info("session created", zap.String("session_id", session.ID), zap.Bool("guest", user == nil))
	return session
}

func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	session.touch(time.Now())
	return session, nil
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		session.Close()
	}
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep closes sessions idle since before now-idleTTL and returns how many
// were evicted.
func (s *SessionStore) Sweep(now time.Time) int {
	cutoff := now.Add(-s.idleTTL)

	s.mu.Lock()
	expired := []*Session{}
	for id, session := range s.sessions {
		if session.idleSince().Before(cutoff) {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}
	if len(expired) > 0 {
		s.logger.Info("evicted idle sessions", zap.Int("count", len(expired)))
	}
	return len(expired)
}

func (s *SessionStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(now)
		}
	}
}

// Close ends every session and waits for their background work.
func (s *SessionStore) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}

func (s *SessionStore) Orders() *repositories.OrderRepository {
	return s.deps.Orders
}
