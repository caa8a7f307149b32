package cart

import (
	"encoding/json"
	"log"
	"maps"
	"sync"

	"github.com/example/print-storefront/internal/money"
	"github.com/google/uuid"
)

// ProductRef identifies the underlying product of a cart line.
type ProductRef struct {
	Category  string `json:"category"`
	ProductID string `json:"product_id"`
}

// LineItem is one configured-product-plus-quantity entry in the cart.
// LineTotal = UnitPrice × Quantity holds after every mutation.
type LineItem struct {
	ID        string            `json:"id"`
	Product   ProductRef        `json:"product"`
	Name      string            `json:"name"`
	Options   map[string]string `json:"options"`
	Quantity  int               `json:"quantity"`
	UnitPrice float64           `json:"unit_price"`
	LineTotal float64           `json:"line_total"`
}

// State is a snapshot of the cart. Items keep insertion order, which only
// matters for display. IsOpen is a transient UI flag and is never persisted.
type State struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
	IsOpen     bool       `json:"is_open"`
}

// persistedState is the durable shape flushed after every mutation.
type persistedState struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}

// Store holds the authoritative set of items a session intends to purchase.
// Mutations are applied atomically relative to each other and each one is
// flushed through the persistence adapter.
type Store struct {
	mu          sync.Mutex
	state       State
	persistence Persistence
}

// NewStore creates a store and hydrates it from the persistence adapter.
// Hydration replays AddItem for each persisted line rather than restoring
// raw state, so persisted lines sharing product+options coalesce on reload.
// A corrupt blob is discarded and treated as an empty cart.
func NewStore(p Persistence) *Store {
	s := &Store{persistence: p}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	if s.persistence == nil {
		return
	}

	raw, err := s.persistence.Load()
	if err != nil {
		log.Printf("[Cart] Failed to load persisted cart: %v", err)
		return
	}
	if len(raw) == 0 {
		return
	}

	var saved persistedState
	if err := json.Unmarshal(raw, &saved); err != nil {
		log.Printf("[Cart] Discarding corrupt persisted cart: %v", err)
		if err := s.persistence.Clear(); err != nil {
			log.Printf("[Cart] Failed to clear corrupt cart blob: %v", err)
		}
		return
	}

	for _, item := range saved.Items {
		s.AddItem(item)
	}
}

// sameConfiguration reports whether two lines describe the same purchasable
// thing: identical product reference and order-independent deep-equal options.
func sameConfiguration(a, b LineItem) bool {
	return a.Product == b.Product && maps.Equal(a.Options, b.Options)
}

// AddItem appends a line, or folds the quantity into an existing line with
// an identical configuration. Always succeeds; callers are responsible for
// a sensible (≥1) quantity.
func (s *Store) AddItem(item LineItem) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.state.Items {
		if sameConfiguration(s.state.Items[i], item) {
			s.state.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.Options = maps.Clone(item.Options)
		s.state.Items = append(s.state.Items, item)
	}

	s.recompute()
	s.flush()
	return s.snapshot()
}

// UpdateQuantity sets the quantity of a line to max(0, quantity); a
// resulting quantity of 0 removes the line. Unknown IDs are a no-op.
func (s *Store) UpdateQuantity(id string, quantity int) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 0 {
		quantity = 0
	}

	for i := range s.state.Items {
		if s.state.Items[i].ID != id {
			continue
		}
		if quantity == 0 {
			s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
		} else {
			s.state.Items[i].Quantity = quantity
		}
		break
	}

	s.recompute()
	s.flush()
	return s.snapshot()
}

// RemoveItem deletes a line unconditionally; absent IDs are a no-op.
func (s *Store) RemoveItem(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].ID == id {
			s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
			break
		}
	}

	s.recompute()
	s.flush()
	return s.snapshot()
}

// Clear empties the cart and zeroes the totals.
func (s *Store) Clear() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Items = nil
	s.recompute()
	s.flush()
	return s.snapshot()
}

// ToggleOpen flips the transient visibility flag. No business effect, not
// persisted.
func (s *Store) ToggleOpen() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsOpen = !s.state.IsOpen
	return s.snapshot()
}

// SetOpen sets the transient visibility flag.
func (s *Store) SetOpen(open bool) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsOpen = open
	return s.snapshot()
}

// State returns a snapshot of the current cart.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// recompute restores the derived-field invariants after a mutation:
// each LineTotal, TotalItems and TotalPrice.
func (s *Store) recompute() {
	totalItems := 0
	totalPrice := 0.0
	for i := range s.state.Items {
		line := &s.state.Items[i]
		line.LineTotal = money.Round2(line.UnitPrice * float64(line.Quantity))
		totalItems += line.Quantity
		totalPrice += line.LineTotal
	}
	s.state.TotalItems = totalItems
	s.state.TotalPrice = money.Round2(totalPrice)
}

// flush serializes {items, totalItems, totalPrice} through the adapter.
// Persistence failures are logged, never surfaced to the mutation.
func (s *Store) flush() {
	if s.persistence == nil {
		return
	}

	raw, err := json.Marshal(persistedState{
		Items:      s.state.Items,
		TotalItems: s.state.TotalItems,
		TotalPrice: s.state.TotalPrice,
	})
	if err != nil {
		log.Printf("[Cart] Failed to serialize cart: %v", err)
		return
	}
	if err := s.persistence.Save(raw); err != nil {
		log.Printf("[Cart] Failed to persist cart: %v", err)
	}
}

// snapshot deep-copies the state so callers cannot alias internal slices
// or option maps.
func (s *Store) snapshot() State {
	out := s.state
	out.Items = make([]LineItem, len(s.state.Items))
	copy(out.Items, s.state.Items)
	for i := range out.Items {
		out.Items[i].Options = maps.Clone(out.Items[i].Options)
	}
	return out
}
