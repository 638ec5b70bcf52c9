package favorites

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/BeAyanK/TechInfinite-User/internal/domain"
	"github.com/BeAyanK/TechInfinite-User/internal/storage"
)

// Manager holds one session's favorite flags. Absence of a product id
// is equivalent to false. Every toggle overwrites the sidecar mirror
// wholesale.
type Manager struct {
	mu    sync.RWMutex
	flags map[string]bool

	mirrorKey string
	sidecar   storage.Sidecar
}

func NewManager(mirrorKey string, sidecar storage.Sidecar) *Manager {
	return &Manager{
		flags:     make(map[string]bool),
		mirrorKey: mirrorKey,
		sidecar:   sidecar,
	}
}

// Load seeds the flags from the persisted mirror. Missing or corrupt
// state falls back to an empty set.
func (m *Manager) Load(ctx context.Context) {
	data, err := m.sidecar.Load(ctx, m.mirrorKey)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Printf("favorites mirror load error: %v", err)
		}
		return
	}

	flags := make(map[string]bool)
	if err := json.Unmarshal(data, &flags); err != nil {
		log.Printf("favorites mirror corrupt, starting empty: %v", err)
		return
	}

	m.mu.Lock()
	m.flags = flags
	m.mu.Unlock()
}

// Toggle flips the flag for a product and persists synchronously.
// Returns the new state. Two consecutive toggles restore the original.
func (m *Manager) Toggle(ctx context.Context, productID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.flags[productID] = !m.flags[productID]
	state := m.flags[productID]
	m.persist(ctx)
	return state
}

// IsFavorite reports the flag for a product, defaulting to false.
func (m *Manager) IsFavorite(productID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[productID]
}

// List filters a catalog snapshot to the favorited products, keeping
// the snapshot's order rather than favoriting order.
func (m *Manager) List(products []domain.Product) []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	favorites := make([]domain.Product, 0)
	for _, p := range products {
		if p.ID != "" && m.flags[p.ID] {
			favorites = append(favorites, p)
		}
	}
	return favorites
}

// Snapshot returns a copy of the flag map.
func (m *Manager) Snapshot() map[string]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]bool, len(m.flags))
	for id, flagged := range m.flags {
		out[id] = flagged
	}
	return out
}

// persist overwrites the sidecar mirror. Failures are logged, the
// in-memory set stays authoritative. Callers must hold the lock.
func (m *Manager) persist(ctx context.Context) {
	data, err := json.Marshal(m.flags)
	if err != nil {
		log.Printf("favorites mirror marshal error: %v", err)
		return
	}
	if err := m.sidecar.Save(ctx, m.mirrorKey, data); err != nil {
		log.Printf("favorites mirror save error: %v", err)
	}
}
