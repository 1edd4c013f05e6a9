package adapters

import (
	"context"
	"sync"

	"go-commerce/internal/orders/domain"
)

// InMemoryOrderRepository implements OrderRepository over a keyed map.
// Save and GetByID are individually safe for concurrent use, but the
// read-modify-write sequence of a use case is not atomic.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

// NewInMemoryOrderRepository creates an empty in-memory repository
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[string]*domain.Order),
	}
}

// GetByID retrieves an order by ID
func (r *InMemoryOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, domain.NewErrorf(domain.KindOrderNotFound, "order %s not found", id)
	}
	return order, nil
}

// Save persists an order, inserting or replacing by ID
func (r *InMemoryOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID()] = order
	return nil
}

// Delete removes an order by ID
func (r *InMemoryOrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.orders, id)
	return nil
}

// Clear removes all orders
func (r *InMemoryOrderRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = make(map[string]*domain.Order)
}
