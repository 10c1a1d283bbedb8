package game

import (
	"sync"
	"time"

	"github.com/GinYoshida/kanji-quize/internal/model"
	"github.com/GinYoshida/kanji-quize/internal/util"

	"github.com/google/uuid"
)

// Manager owns the in-memory sessions, keyed by id and scoped to the user
// who started them. Abandoned and idle sessions are swept periodically.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	cfg      Config
	idleTTL  time.Duration
}

func NewManager(cfg Config, idleTTL time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		idleTTL:  idleTTL,
	}
}

// Create starts a session over the given question sequence. The sequence
// may be empty, in which case the session is born complete.
func (m *Manager) Create(userID string, questions []model.QuizQuestion) *Session {
	session := NewSession(uuid.New().String(), userID, m.cfg)
	// a freshly constructed session is always in loading
	_ = session.Load(questions)

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	return session
}

// Get returns the session if it exists and belongs to the requester.
// A foreign session is indistinguishable from a missing one.
func (m *Manager) Get(id, userID string) (*Session, error) {
	m.mu.Lock()
	session, ok := m.sessions[id]
	m.mu.Unlock()

	if !ok || session.UserID != userID {
		return nil, util.ErrSessionNotFound
	}
	return session, nil
}

// Abandon terminates and drops the session.
func (m *Manager) Abandon(id, userID string) error {
	session, err := m.Get(id, userID)
	if err != nil {
		return err
	}
	session.Abandon()

	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// Remove drops a finished session without state checks.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Sweep abandons sessions idle longer than the TTL. Called from the app's
// background ticker.
func (m *Manager) Sweep() int {
	now := time.Now()

	m.mu.Lock()
	var stale []*Session
	for id, session := range m.sessions {
		if session.idleSince(now) > m.idleTTL {
			stale = append(stale, session)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, session := range stale {
		session.Abandon()
	}
	return len(stale)
}

// Count reports live sessions. Exposed for the health endpoint.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
