package events

import "time"

// Exchange names
const (
	ExchangeOrders = "orders.events"
)

// Routing keys
const (
	RoutingKeyOrderCreated   = "order.created"
	RoutingKeyOrderPaid      = "order.paid"
	RoutingKeyOrderCancelled = "order.cancelled"
)

// OrderEvent is the versioned envelope for all order events
type OrderEvent struct {
	Version   string       `json:"version"`
	EventType string       `json:"event_type"`
	Timestamp time.Time    `json:"timestamp"`
	TraceID   string       `json:"trace_id"`
	Payload   OrderPayload `json:"payload"`
}

// OrderPayload contains order data
type OrderPayload struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	Status        string     `json:"status"`
	Total         string     `json:"total"`
	LineCount     int        `json:"line_count"`
	TransactionID string     `json:"transaction_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

// NewOrderEvent creates an event envelope for the given type
func NewOrderEvent(eventType, traceID string, payload OrderPayload) *OrderEvent {
	return &OrderEvent{
		Version:   "1.0",
		EventType: eventType,
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload:   payload,
	}
}
