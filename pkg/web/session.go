package web

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lumenui/lumen/pkg/remote"
)

// Session is one connected client.
type Session struct {
	ID        string
	Doc       *remote.Document
	StartedAt time.Time
}

// SessionManager tracks live sessions in an LRU cache. When the cache
// overflows, the least recently added session is evicted and its connection
// closed.
type SessionManager struct {
	cache  *lru.Cache[string, *Session]
	logger *slog.Logger
}

// NewSessionManager creates a manager holding at most max sessions.
func NewSessionManager(max int, logger *slog.Logger) (*SessionManager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	m := &SessionManager{logger: logger}

	cache, err := lru.NewWithEvict(max, func(id string, s *Session) {
		m.logger.Info("session evicted", "session", id, "age", time.Since(s.StartedAt))
		s.Doc.Close()
	})
	if err != nil {
		return nil, err
	}
	m.cache = cache
	return m, nil
}

// Add registers a session under a fresh id.
func (m *SessionManager) Add(doc *remote.Document) *Session {
	s := &Session{
		ID:        newSessionID(),
		Doc:       doc,
		StartedAt: time.Now(),
	}
	m.cache.Add(s.ID, s)
	return s
}

// Remove drops a session. The evict callback closes its connection, which
// is idempotent when the caller already has.
func (m *SessionManager) Remove(id string) {
	m.cache.Remove(id)
}

// Get returns a session by id.
func (m *SessionManager) Get(id string) (*Session, bool) {
	return m.cache.Get(id)
}

// Len returns the number of live sessions.
func (m *SessionManager) Len() int {
	return m.cache.Len()
}

func newSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
