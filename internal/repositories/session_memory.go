package repositories

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// SessionMemoryRepository keeps conversion form state in process memory.
// Entries are stored encoded so callers never share a form between requests.
type SessionMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	exp     time.Duration
	now     func() time.Time
}

// NewSessionMemoryRepository creates an in-memory store with the given TTL.
func NewSessionMemoryRepository(expiration time.Duration) *SessionMemoryRepository {
	return &SessionMemoryRepository{
		entries: make(map[string]memoryEntry),
		exp:     expiration,
		now:     time.Now,
	}
}

// Get loads the form state stored under id.
func (r *SessionMemoryRepository) Get(_ context.Context, id string) (*models.ConversionForm, error) {
	r.mu.RLock()
	entry, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok || r.now().After(entry.expiresAt) {
		return nil, ErrSessionNotFound
	}

	var form models.ConversionForm
	if err := json.Unmarshal(entry.data, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

// Save stores the form state under its id and refreshes its expiration.
// Concurrent saves for one id overwrite each other; the last one wins.
func (r *SessionMemoryRepository) Save(_ context.Context, form *models.ConversionForm) error {
	data, err := json.Marshal(form)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[form.ID] = memoryEntry{
		data:      data,
		expiresAt: r.now().Add(r.exp),
	}
	return nil
}

// Delete removes the form state stored under id.
func (r *SessionMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, id)
	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (r *SessionMemoryRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, entry := range r.entries {
		if now.After(entry.expiresAt) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *SessionMemoryRepository) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Sweep()
		case <-ctx.Done():
			return
		}
	}
}
