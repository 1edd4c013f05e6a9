package ports

import (
	"context"

	"go-commerce/internal/orders/domain"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// GetByID retrieves an order by ID
	GetByID(ctx context.Context, id string) (*domain.Order, error)

	// Save persists an order, inserting or replacing by ID
	Save(ctx context.Context, order *domain.Order) error

	// Delete removes an order by ID
	Delete(ctx context.Context, id string) error
}

// PaymentGateway defines the interface for charging and refunding orders
type PaymentGateway interface {
	// Charge charges the given amount against an order and returns a
	// transaction ID
	Charge(ctx context.Context, orderID string, amount domain.Money) (string, error)

	// Refund refunds a prior transaction
	Refund(ctx context.Context, transactionID string, amount domain.Money) error
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// PublishOrderCreated publishes an order created event
	PublishOrderCreated(ctx context.Context, order *domain.Order) error

	// PublishOrderPaid publishes an order paid event
	PublishOrderPaid(ctx context.Context, order *domain.Order, transactionID string) error

	// PublishOrderCancelled publishes an order cancelled event
	PublishOrderCancelled(ctx context.Context, order *domain.Order) error
}
