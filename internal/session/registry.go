package session

import (
	"context"
	"sync"

	"github.com/BeAyanK/TechInfinite-User/internal/cart"
	"github.com/BeAyanK/TechInfinite-User/internal/favorites"
	"github.com/BeAyanK/TechInfinite-User/internal/storage"
)

// Session bundles the per-browser state containers. One instance per
// session id for the lifetime of the process.
type Session struct {
	ID        string
	Cart      *cart.Manager
	Favorites *favorites.Manager

	loadOnce sync.Once
}

// Registry hands out sessions, constructing them lazily and loading
// their sidecar mirrors on first touch.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	sidecar storage.Sidecar
	orders  cart.OrderStore
}

func NewRegistry(sidecar storage.Sidecar, orders cart.OrderStore) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		sidecar:  sidecar,
		orders:   orders,
	}
}

// Get returns the session for an id, creating and seeding it if this
// is the first request the process has seen for that id.
func (r *Registry) Get(ctx context.Context, id string) *Session {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok {
		s = &Session{
			ID:        id,
			Cart:      cart.NewManager("cart:"+id, r.sidecar, r.orders),
			Favorites: favorites.NewManager("favorites:"+id, r.sidecar),
		}
		r.sessions[id] = s
	}
	r.mu.Unlock()

	// Mirror loads happen outside the registry lock; they may hit the
	// network when the sidecar is Redis.
	s.loadOnce.Do(func() {
		s.Cart.Load(ctx)
		s.Favorites.Load(ctx)
	})
	return s
}
