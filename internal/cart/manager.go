package cart

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/BeAyanK/TechInfinite-User/internal/domain"
	"github.com/BeAyanK/TechInfinite-User/internal/storage"
)

// OrderStore records a placed order in the external document store.
type OrderStore interface {
	CreateOrder(ctx context.Context, order domain.Order) error
}

// Identity is the caller's client-held auth state. The token is never
// verified here; an empty token simply means "not logged in".
type Identity struct {
	Token string
	Email string
}

// Manager holds one session's cart state. All mutations go through it
// and every mutation overwrites the sidecar mirror wholesale. The
// total is always recomputed from the line slice, never patched.
type Manager struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	visible bool

	mirrorKey string
	sidecar   storage.Sidecar
	orders    OrderStore
}

func NewManager(mirrorKey string, sidecar storage.Sidecar, orders OrderStore) *Manager {
	return &Manager{
		mirrorKey: mirrorKey,
		sidecar:   sidecar,
		orders:    orders,
	}
}

// Load seeds the cart from the persisted mirror. A missing or corrupt
// mirror yields an empty cart rather than an error.
func (m *Manager) Load(ctx context.Context) {
	data, err := m.sidecar.Load(ctx, m.mirrorKey)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Printf("cart mirror load error: %v", err)
		}
		return
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		log.Printf("cart mirror corrupt, starting empty: %v", err)
		return
	}

	m.mu.Lock()
	m.lines = lines
	m.mu.Unlock()
}

// Add inserts a new line with quantity 1, or bumps the quantity of the
// existing line for the same product. Display fields are copied from
// the product as given; a malformed product is accepted as-is.
func (m *Manager) Add(ctx context.Context, p domain.Product) domain.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.index(p.ID); i >= 0 {
		m.lines[i].Quantity++
	} else {
		m.lines = append(m.lines, domain.CartLine{
			ProductID: p.ID,
			Title:     p.Title,
			Price:     p.Price,
			ImageURL:  p.ImageURL,
			Quantity:  1,
		})
	}
	m.persist(ctx)
	return m.snapshot()
}

// Remove deletes the line for the product; no-op if absent.
func (m *Manager) Remove(ctx context.Context, productID string) domain.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.index(productID); i >= 0 {
		m.lines = append(m.lines[:i], m.lines[i+1:]...)
		m.persist(ctx)
	}
	return m.snapshot()
}

// Increase bumps the line's quantity by one; no-op if absent.
func (m *Manager) Increase(ctx context.Context, productID string) domain.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.index(productID); i >= 0 {
		m.lines[i].Quantity++
		m.persist(ctx)
	}
	return m.snapshot()
}

// Decrease lowers the line's quantity by one, removing the line when
// it would drop below one; no-op if absent.
func (m *Manager) Decrease(ctx context.Context, productID string) domain.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.index(productID); i >= 0 {
		if m.lines[i].Quantity <= 1 {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
		} else {
			m.lines[i].Quantity--
		}
		m.persist(ctx)
	}
	return m.snapshot()
}

// Clear empties the cart.
func (m *Manager) Clear(ctx context.Context) domain.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lines = nil
	m.persist(ctx)
	return m.snapshot()
}

// ToggleVisibility flips the cart panel flag. Pure UI state; the lines
// and the mirror are untouched.
func (m *Manager) ToggleVisibility() domain.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.visible = !m.visible
	return m.snapshot()
}

// Snapshot returns an immutable copy of the current cart state.
func (m *Manager) Snapshot() domain.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// PlaceOrder validates the checkout preconditions, submits an order
// snapshot to the store, and clears the cart only after the store
// confirms the write. On failure the cart is left untouched so the
// caller can retry the same order. The submission uses the snapshot
// taken here; the cart is deliberately not locked for the round-trip,
// so a concurrent edit is not reflected in the submitted order.
func (m *Manager) PlaceOrder(ctx context.Context, address, paymentMethod string, id Identity) (*domain.Order, error) {
	if id.Token == "" {
		return nil, ErrNotAuthenticated
	}
	if strings.TrimSpace(address) == "" {
		return nil, ErrNoAddress
	}

	m.mu.Lock()
	if len(m.lines) == 0 {
		m.mu.Unlock()
		return nil, ErrEmptyCart
	}
	snapshot := m.snapshot()
	m.mu.Unlock()

	user := id.Email
	if user == "" {
		user = "guest"
	}

	order := domain.Order{
		User:          user,
		Items:         snapshot.Lines,
		TotalAmount:   snapshot.TotalAmount,
		PaymentMethod: paymentMethod,
		OrderDate:     time.Now().UTC(),
		Status:        domain.OrderStatusPlaced,
	}

	if err := m.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.lines = nil
	m.mu.Unlock()
	if err := m.sidecar.Delete(ctx, m.mirrorKey); err != nil {
		log.Printf("cart mirror delete error: %v", err)
	}

	return &order, nil
}

// index returns the line position for a product id, or -1. Callers
// must hold the lock.
func (m *Manager) index(productID string) int {
	for i, line := range m.lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

// snapshot copies the lines and recomputes the total. Callers must
// hold the lock.
func (m *Manager) snapshot() domain.Cart {
	lines := make([]domain.CartLine, len(m.lines))
	copy(lines, m.lines)
	return domain.Cart{
		Lines:       lines,
		TotalAmount: Total(lines),
		Visible:     m.visible,
	}
}

// persist overwrites the sidecar mirror with the current line slice.
// Fire-and-forget: a write failure is logged, in-memory state stays
// authoritative. Callers must hold the lock.
func (m *Manager) persist(ctx context.Context) {
	data, err := json.Marshal(m.lines)
	if err != nil {
		log.Printf("cart mirror marshal error: %v", err)
		return
	}
	if err := m.sidecar.Save(ctx, m.mirrorKey, data); err != nil {
		log.Printf("cart mirror save error: %v", err)
	}
}

// Total sums price times quantity over the lines.
func Total(lines []domain.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
