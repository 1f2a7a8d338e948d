// Package session holds the storefront's only client-owned state: who
// is logged in, which cart lines are selected for the next checkout,
// and any rental-booking intent stashed before a login redirect.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"hardware-store/models"
)

var ErrNotFound = errors.New("session: not found")

type Session struct {
	ID        string      `json:"id"`
	User      models.User `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
}

type Store interface {
	SaveSession(ctx context.Context, s Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	DeleteSession(ctx context.Context, id string) error

	SaveSelection(ctx context.Context, userID int, sel models.Selection) error
	GetSelection(ctx context.Context, userID int) (models.Selection, error)

	SavePendingRental(ctx context.Context, intentID string, intent models.PendingRental) error
	// TakePendingRental returns the stashed intent and removes it, so a
	// booking intent is replayed at most once.
	TakePendingRental(ctx context.Context, intentID string) (*models.PendingRental, error)
}

// MemoryStore is the fallback when Redis is unreachable, and the store
// used in tests. Entries expire on read.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry[Session]
	selects  map[int]memoryEntry[models.Selection]
	pending  map[string]memoryEntry[models.PendingRental]
}

type memoryEntry[T any] struct {
	value     T
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry[Session]),
		selects:  make(map[int]memoryEntry[models.Selection]),
		pending:  make(map[string]memoryEntry[models.PendingRental]),
	}
}

func (m *MemoryStore) SaveSession(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = memoryEntry[Session]{value: s, expiresAt: time.Now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) GetSession(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.sessions[id]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(m.sessions, id)
		return nil, ErrNotFound
	}
	s := entry.value
	return &s, nil
}

func (m *MemoryStore) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) SaveSelection(_ context.Context, userID int, sel models.Selection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selects[userID] = memoryEntry[models.Selection]{value: copySelection(sel), expiresAt: time.Now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) GetSelection(_ context.Context, userID int) (models.Selection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.selects[userID]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(m.selects, userID)
		return models.Selection{}, ErrNotFound
	}
	return copySelection(entry.value), nil
}

// copySelection keeps callers and the store from sharing the selection
// maps. The Redis store gets the same isolation for free from its JSON
// round trip; without the copy here, a caller mutating the returned
// maps would write store-internal state outside the mutex.
func copySelection(sel models.Selection) models.Selection {
	out := models.Selection{
		Products: make(map[string]bool, len(sel.Products)),
		Rentals:  make(map[string]bool, len(sel.Rentals)),
	}
	for k, v := range sel.Products {
		out.Products[k] = v
	}
	for k, v := range sel.Rentals {
		out.Rentals[k] = v
	}
	return out
}

func (m *MemoryStore) SavePendingRental(_ context.Context, intentID string, intent models.PendingRental) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[intentID] = memoryEntry[models.PendingRental]{value: intent, expiresAt: time.Now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) TakePendingRental(_ context.Context, intentID string) (*models.PendingRental, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.pending[intentID]
	delete(m.pending, intentID)
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrNotFound
	}
	intent := entry.value
	return &intent, nil
}
