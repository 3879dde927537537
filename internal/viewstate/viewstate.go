// Package viewstate keeps the admin dashboard lists per session between requests.
package viewstate

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bklyngarment/storefront/internal/models"
)

// ErrNotFound is returned when a session has no stored dashboard.
var ErrNotFound = errors.New("viewstate: not found")

// Dashboard is the snapshot of what an admin is looking at.
type Dashboard struct {
	Products []models.Product      `json:"products"`
	Lookbook []models.LookbookItem `json:"lookbook"`
	Videos   []models.Video        `json:"videos"`
	LoadedAt time.Time             `json:"loaded_at"`
}

// Store persists dashboards keyed by session id.
type Store interface {
	Get(ctx context.Context, sessionID string) (Dashboard, error)
	Put(ctx context.Context, sessionID string, d Dashboard) error
	Delete(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	dashboard Dashboard
	expires   time.Time
}

// MemoryStore is an in-process Store with a fixed TTL per entry.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryStore returns a MemoryStore. A zero ttl keeps entries until deleted.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (Dashboard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[sessionID]
	if !ok {
		return Dashboard{}, ErrNotFound
	}
	if !e.expires.IsZero() && m.now().After(e.expires) {
		delete(m.entries, sessionID)
		return Dashboard{}, ErrNotFound
	}
	return e.dashboard, nil
}

func (m *MemoryStore) Put(_ context.Context, sessionID string, d Dashboard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memoryEntry{dashboard: d}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}
	m.entries[sessionID] = e
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, sessionID)
	return nil
}
