package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// DefaultCurrency is the currency of an empty order's total
const DefaultCurrency = "USD"

// Order is the aggregate root for order placement and payment. Lines and
// status are mutated only through its methods; the state machine is
// one-directional: Created -> Paid or Created -> Cancelled, both terminal.
type Order struct {
	id            string
	customerID    string
	lines         []OrderLine
	status        OrderStatus
	createdAt     time.Time
	paidAt        *time.Time
	transactionID string
}

// NewOrder creates an order in the Created state. An empty id is replaced
// with a generated one.
func NewOrder(id, customerID string) (*Order, error) {
	if customerID == "" {
		return nil, NewError(KindEmptyCustomerID, "customer id is required")
	}
	if id == "" {
		id = uuid.New().String()
	}
	return &Order{
		id:         id,
		customerID: customerID,
		status:     OrderStatusCreated,
		createdAt:  time.Now(),
	}, nil
}

// Restore rebuilds an order from persisted state, bypassing transition
// checks. Lines must share one currency, the same invariant AddLine
// enforces; a violation means the stored rows are corrupt. For repository
// use only.
func Restore(id, customerID string, lines []OrderLine, status OrderStatus, createdAt time.Time, paidAt *time.Time, transactionID string) (*Order, error) {
	for _, line := range lines {
		if line.Price().Currency() != lines[0].Price().Currency() {
			return nil, NewErrorf(KindCurrencyMismatch, "order lines are in %s, got %s", lines[0].Price().Currency(), line.Price().Currency())
		}
	}
	return &Order{
		id:            id,
		customerID:    customerID,
		lines:         append([]OrderLine(nil), lines...),
		status:        status,
		createdAt:     createdAt,
		paidAt:        paidAt,
		transactionID: transactionID,
	}, nil
}

// ID returns the order identifier
func (o *Order) ID() string {
	return o.id
}

// CustomerID returns the customer identifier
func (o *Order) CustomerID() string {
	return o.customerID
}

// Lines returns a copy of the line collection in insertion order
func (o *Order) Lines() []OrderLine {
	return append([]OrderLine(nil), o.lines...)
}

// Status returns the current order status
func (o *Order) Status() OrderStatus {
	return o.status
}

// CreatedAt returns the construction timestamp
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaidAt returns the payment timestamp, nil while unpaid
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// TransactionID returns the gateway transaction recorded at payment,
// empty while unpaid
func (o *Order) TransactionID() string {
	return o.transactionID
}

// IsEmpty reports whether the order has no lines
func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// IsPaid reports whether the order has been paid
func (o *Order) IsPaid() bool {
	return o.status == OrderStatusPaid
}

// TotalAmount returns the sum of all line totals. All lines share one
// currency, enforced at AddLine time.
func (o *Order) TotalAmount() Money {
	total := Zero(DefaultCurrency)
	if len(o.lines) > 0 {
		total = Zero(o.lines[0].Price().Currency())
	}
	for _, line := range o.lines {
		total, _ = total.Add(line.Total())
	}
	return total
}

// ensureModifiable rejects structural changes once the order left the
// Created state. Cancelled orders are terminal and reject edits too.
func (o *Order) ensureModifiable() error {
	if o.status != OrderStatusCreated {
		return NewErrorf(KindOrderNotModifiable, "cannot modify %s order", o.status)
	}
	return nil
}

// AddLine appends a line, or merges quantity into an existing line with the
// same product id. All lines must share one currency.
func (o *Order) AddLine(productID, productName string, quantity int, price Money) error {
	if err := o.ensureModifiable(); err != nil {
		return err
	}
	if len(o.lines) > 0 && o.lines[0].Price().Currency() != price.Currency() {
		return NewErrorf(KindCurrencyMismatch, "order lines are in %s, got %s", o.lines[0].Price().Currency(), price.Currency())
	}

	for i, line := range o.lines {
		if line.ProductID() == productID {
			merged, err := line.WithQuantity(line.Quantity() + quantity)
			if err != nil {
				return err
			}
			o.lines[i] = merged
			return nil
		}
	}

	line, err := NewOrderLine(productID, productName, quantity, price)
	if err != nil {
		return err
	}
	o.lines = append(o.lines, line)
	return nil
}

// RemoveLine drops the line matching the product id, a no-op if absent
func (o *Order) RemoveLine(productID string) error {
	if err := o.ensureModifiable(); err != nil {
		return err
	}
	kept := o.lines[:0]
	for _, line := range o.lines {
		if line.ProductID() != productID {
			kept = append(kept, line)
		}
	}
	o.lines = kept
	return nil
}

// UpdateQuantity replaces the quantity of the line matching the product id
func (o *Order) UpdateQuantity(productID string, newQuantity int) error {
	if err := o.ensureModifiable(); err != nil {
		return err
	}
	for i, line := range o.lines {
		if line.ProductID() == productID {
			updated, err := line.WithQuantity(newQuantity)
			if err != nil {
				return err
			}
			o.lines[i] = updated
			return nil
		}
	}
	return NewErrorf(KindProductNotFound, "product %s not found in order", productID)
}

// PrepareForPayment validates payment eligibility without mutating state.
// Callers charging an external gateway run this first and commit with
// CommitPaid only after the charge succeeds, so a gateway failure leaves
// the order in the Created state.
func (o *Order) PrepareForPayment() error {
	if o.status == OrderStatusPaid {
		return NewError(KindAlreadyPaid, "order is already paid")
	}
	if o.status == OrderStatusCancelled {
		return NewError(KindOrderCancelled, "cannot pay a cancelled order")
	}
	if len(o.lines) == 0 {
		return NewError(KindEmptyOrder, "cannot pay an empty order")
	}
	if !o.TotalAmount().IsPositive() {
		return NewError(KindNonPositiveTotal, "order total must be positive")
	}
	return nil
}

// CommitPaid transitions the order to Paid, stamping the payment time and
// the gateway transaction id
func (o *Order) CommitPaid(transactionID string) error {
	if err := o.PrepareForPayment(); err != nil {
		return err
	}
	now := time.Now()
	o.status = OrderStatusPaid
	o.paidAt = &now
	o.transactionID = transactionID
	return nil
}

// Pay is the single-step payment transition for callers without an
// external charge to coordinate
func (o *Order) Pay() error {
	return o.CommitPaid("")
}

// Cancel transitions the order to Cancelled. Paid orders cannot be
// cancelled.
func (o *Order) Cancel() error {
	if o.status == OrderStatusPaid {
		return NewError(KindOrderNotCancellable, "cannot cancel a paid order")
	}
	o.status = OrderStatusCancelled
	return nil
}
