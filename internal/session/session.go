// Package session holds the admin bearer token between requests.
//
// A Session is the only way handlers read or write the token. It is created per request by
// middleware and reads its Store at use time.
package session

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Record is what a Store persists.
type Record struct {
	ID    string
	Token string
}

// Store persists one Record for the current visitor.
type Store interface {
	Load() (Record, bool)
	Save(Record) error
	Delete() error
}

// Session is the admin's client-side credential.
type Session struct {
	store Store
}

// New wraps store.
func New(store Store) *Session {
	return &Session{store: store}
}

// Token returns the stored bearer token.
func (s *Session) Token() (string, bool) {
	rec, ok := s.store.Load()
	if !ok || rec.Token == "" {
		return "", false
	}
	return rec.Token, true
}

// ID returns the local session id, or "" when nothing is stored.
func (s *Session) ID() string {
	rec, ok := s.store.Load()
	if !ok {
		return ""
	}
	return rec.ID
}

// Save stores token, keeping the current session id or minting a new one.
func (s *Session) Save(token string) error {
	rec, ok := s.store.Load()
	if !ok || rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.Token = token
	if err := s.store.Save(rec); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear discards the stored token.
func (s *Session) Clear() error {
	if err := s.store.Delete(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

const ctxKey = "admin_session"

// Attach puts s on the gin context.
func Attach(c *gin.Context, s *Session) {
	c.Set(ctxKey, s)
}

// FromContext returns the request's session. Requests that skipped the session middleware
// get an empty in-memory session.
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(ctxKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return New(&MemoryStore{})
}
