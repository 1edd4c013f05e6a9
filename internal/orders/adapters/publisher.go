package adapters

import (
	"context"

	"go-commerce/internal/orders/domain"
	"go-commerce/pkg/events"
	"go-commerce/pkg/logger"
	"go-commerce/pkg/rabbitmq"
)

// RabbitMQPublisher implements EventPublisher using RabbitMQ
type RabbitMQPublisher struct {
	publisher *rabbitmq.Publisher
	log       *logger.Logger
}

// NewRabbitMQPublisher creates a new RabbitMQ event publisher
func NewRabbitMQPublisher(publisher *rabbitmq.Publisher, log *logger.Logger) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		publisher: publisher,
		log:       log,
	}
}

// PublishOrderCreated publishes an order created event
func (p *RabbitMQPublisher) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, events.RoutingKeyOrderCreated, order, "")
}

// PublishOrderPaid publishes an order paid event
func (p *RabbitMQPublisher) PublishOrderPaid(ctx context.Context, order *domain.Order, transactionID string) error {
	return p.publish(ctx, events.RoutingKeyOrderPaid, order, transactionID)
}

// PublishOrderCancelled publishes an order cancelled event
func (p *RabbitMQPublisher) PublishOrderCancelled(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, events.RoutingKeyOrderCancelled, order, "")
}

func (p *RabbitMQPublisher) publish(ctx context.Context, routingKey string, order *domain.Order, transactionID string) error {
	traceID := logger.GetTraceID(ctx)

	event := events.NewOrderEvent(routingKey, traceID, events.OrderPayload{
		ID:            order.ID(),
		CustomerID:    order.CustomerID(),
		Status:        string(order.Status()),
		Total:         order.TotalAmount().String(),
		LineCount:     len(order.Lines()),
		TransactionID: transactionID,
		CreatedAt:     order.CreatedAt(),
		PaidAt:        order.PaidAt(),
	})

	return p.publisher.Publish(ctx, routingKey, event)
}
