package wizard

import (
	"sync"

	"github.com/google/uuid"
)

// Session wraps one user's controller. External calls inside a transition
// can suspend, so the lock keeps a double-submitted request from running
// two transitions at once.
type Session struct {
	ID   string
	mu   sync.Mutex
	ctrl *Controller
}

func (s *Session) Do(fn func(*Controller)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ctrl)
}

// SessionStore holds live wizard sessions in memory. Sessions are
// transient: restarting the process loses in-progress flows, the account
// shell is the only thing persisted mid-flow.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

func (s *SessionStore) Create(ctrl *Controller) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{
		ID:   uuid.New().String(),
		ctrl: ctrl,
	}
	s.sessions[session.ID] = session
	return session
}

func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	return session, ok
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
