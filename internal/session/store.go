package session

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/bklyngarment/storefront/internal/auth"
)

// MemoryStore keeps the record in process. Used by tests and non-browser callers.
type MemoryStore struct {
	mu  sync.Mutex
	rec *Record
}

func (m *MemoryStore) Load() (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return Record{}, false
	}
	return *m.rec, true
}

func (m *MemoryStore) Save(r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = &r
	return nil
}

func (m *MemoryStore) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = nil
	return nil
}

// CookieOptions describe the session cookie.
type CookieOptions struct {
	Name   string
	MaxAge int // seconds
	Secure bool
}

// CookieStore keeps the record in a signed, HttpOnly cookie on one request.
type CookieStore struct {
	c      *gin.Context
	signer *auth.Signer
	opts   CookieOptions

	loaded bool
	rec    *Record
}

// NewCookieStore binds a store to the current request.
func NewCookieStore(c *gin.Context, signer *auth.Signer, opts CookieOptions) *CookieStore {
	return &CookieStore{c: c, signer: signer, opts: opts}
}

func (s *CookieStore) Load() (Record, bool) {
	if !s.loaded {
		s.loaded = true
		if raw, err := s.c.Cookie(s.opts.Name); err == nil && raw != "" {
			if claims, err := s.signer.Parse(raw); err == nil {
				s.rec = &Record{ID: claims.SessionID, Token: claims.Token}
			}
		}
	}
	if s.rec == nil {
		return Record{}, false
	}
	return *s.rec, true
}

func (s *CookieStore) Save(r Record) error {
	value, err := s.signer.Sign(r.ID, r.Token)
	if err != nil {
		return err
	}
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(s.opts.Name, value, s.opts.MaxAge, "/", "", s.opts.Secure, true)
	s.loaded = true
	s.rec = &r
	return nil
}

func (s *CookieStore) Delete() error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(s.opts.Name, "", -1, "/", "", s.opts.Secure, true)
	s.loaded = true
	s.rec = nil
	return nil
}
