package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
)

// Ensure OrderStore implements the interfaces.
var (
	_ driven.OrderRepository = (*OrderStore)(nil)
	_ driven.OrderLister     = (*OrderStore)(nil)
)

// OrderStore is an in-memory implementation of driven.OrderRepository.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[int]domain.Order
}

// NewOrderStore creates a new in-memory order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[int]domain.Order),
	}
}

// Save stores or replaces an order by id.
func (s *OrderStore) Save(_ context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
	return nil
}

// List returns all orders ordered by id.
func (s *OrderStore) List(_ context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Order, 0, len(s.orders))
	for _, order := range s.orders {
		result = append(result, order)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
