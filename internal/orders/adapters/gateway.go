package adapters

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"go-commerce/internal/orders/domain"
)

// Transaction statuses recorded by the fake gateway
const (
	TransactionCompleted = "completed"
	TransactionRefunded  = "refunded"
)

// Transaction is one entry in the gateway's transaction log
type Transaction struct {
	OrderID      string
	Amount       domain.Money
	Status       string
	RefundAmount *domain.Money
}

// FakePaymentGateway implements PaymentGateway against an owned, injected
// transaction store. A fail mode simulates a gateway outage.
type FakePaymentGateway struct {
	mu           sync.Mutex
	transactions map[string]*Transaction
	failMode     bool
}

// NewFakePaymentGateway creates a fake gateway with an empty transaction log
func NewFakePaymentGateway() *FakePaymentGateway {
	return &FakePaymentGateway{
		transactions: make(map[string]*Transaction),
	}
}

// SetFailMode toggles the simulated outage
func (g *FakePaymentGateway) SetFailMode(fail bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failMode = fail
}

// Charge records a completed transaction and returns its ID
func (g *FakePaymentGateway) Charge(ctx context.Context, orderID string, amount domain.Money) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failMode {
		return "", domain.NewError(domain.KindGatewayUnavailable, "payment gateway is unavailable")
	}
	if !amount.IsPositive() {
		return "", domain.NewError(domain.KindPaymentRejected, "payment amount must be positive")
	}

	transactionID := uuid.New().String()
	g.transactions[transactionID] = &Transaction{
		OrderID: orderID,
		Amount:  amount,
		Status:  TransactionCompleted,
	}

	return transactionID, nil
}

// Refund marks a prior transaction as refunded
func (g *FakePaymentGateway) Refund(ctx context.Context, transactionID string, amount domain.Money) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	transaction, ok := g.transactions[transactionID]
	if !ok {
		return domain.NewErrorf(domain.KindTransactionNotFound, "transaction %s not found", transactionID)
	}

	transaction.Status = TransactionRefunded
	transaction.RefundAmount = &amount
	return nil
}

// Transaction returns a copy of the logged transaction, if any
func (g *FakePaymentGateway) Transaction(transactionID string) (Transaction, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	transaction, ok := g.transactions[transactionID]
	if !ok {
		return Transaction{}, false
	}
	return *transaction, true
}

// Transactions returns a snapshot of the transaction log keyed by
// transaction ID
func (g *FakePaymentGateway) Transactions() map[string]Transaction {
	g.mu.Lock()
	defer g.mu.Unlock()

	snapshot := make(map[string]Transaction, len(g.transactions))
	for id, transaction := range g.transactions {
		snapshot[id] = *transaction
	}
	return snapshot
}

// TransactionCount returns the number of logged transactions
func (g *FakePaymentGateway) TransactionCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.transactions)
}
