package order

import (
	"context"
	"sort"
	"sync"
)

// Store is the durable order store. Save inserts or replaces the whole
// record keyed by reference; Get returns ErrOrderNotFound for unknown
// references; List returns newest orders first.
type Store interface {
	Save(ctx context.Context, o *Order) error
	Get(ctx context.Context, reference string) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
}

// MemoryStore keeps orders in memory. The default store for local
// development and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]*Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string]*Order)}
}

func (s *MemoryStore) Save(_ context.Context, o *Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *o
	clone.Items = append([]Item(nil), o.Items...)
	clone.Payments = append([]PaymentRecord(nil), o.Payments...)
	s.orders[o.Reference] = &clone
	return nil
}

func (s *MemoryStore) Get(_ context.Context, reference string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.orders[reference]
	if !ok {
		return nil, ErrOrderNotFound
	}
	clone := *stored
	clone.Items = append([]Item(nil), stored.Items...)
	clone.Payments = append([]PaymentRecord(nil), stored.Payments...)
	return &clone, nil
}

func (s *MemoryStore) List(_ context.Context) ([]*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Order, 0, len(s.orders))
	for _, stored := range s.orders {
		clone := *stored
		clone.Items = append([]Item(nil), stored.Items...)
		clone.Payments = append([]PaymentRecord(nil), stored.Payments...)
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
