package domain

import (
	"testing"
	"time"
)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	order, err := NewOrder("order-1", "cust-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return order
}

func addLine(t *testing.T, order *Order, productID string, quantity int, price string) {
	t.Helper()
	if err := order.AddLine(productID, productID, quantity, mustMoney(t, price, "USD")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestNewOrder_EmptyCustomerID(t *testing.T) {
	_, err := NewOrder("order-1", "")

	if !IsKind(err, KindEmptyCustomerID) {
		t.Errorf("expected EMPTY_CUSTOMER_ID, got %v", err)
	}
}

func TestNewOrder_GeneratesID(t *testing.T) {
	order, err := NewOrder("", "cust-1")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if order.ID() == "" {
		t.Error("expected a generated id")
	}
	if order.Status() != OrderStatusCreated {
		t.Errorf("expected status created, got %s", order.Status())
	}
}

func TestOrder_TotalAmount(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "laptop", 1, "899.99")
	addLine(t, order, "mouse", 2, "29.99")
	addLine(t, order, "keyboard", 1, "89.99")

	total := order.TotalAmount()

	if !total.Equals(mustMoney(t, "1089.96", "USD")) {
		t.Errorf("expected 1089.96 USD, got %s", total)
	}
}

func TestOrder_TotalAmountEmpty(t *testing.T) {
	order := newTestOrder(t)

	if !order.TotalAmount().IsZero() {
		t.Errorf("expected zero total, got %s", order.TotalAmount())
	}
}

func TestOrder_AddLineMergesQuantity(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "mouse", 2, "29.99")
	addLine(t, order, "mouse", 3, "29.99")

	lines := order.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity() != 5 {
		t.Errorf("expected quantity 5, got %d", lines[0].Quantity())
	}
}

func TestOrder_AddLineCurrencyMismatch(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "laptop", 1, "899.99")

	err := order.AddLine("book", "book", 1, mustMoney(t, "9.99", "EUR"))

	if !IsKind(err, KindCurrencyMismatch) {
		t.Errorf("expected CURRENCY_MISMATCH, got %v", err)
	}
}

func TestOrder_RemoveLine(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "laptop", 1, "899.99")
	addLine(t, order, "mouse", 2, "29.99")

	if err := order.RemoveLine("laptop"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := order.Lines()
	if len(lines) != 1 || lines[0].ProductID() != "mouse" {
		t.Errorf("expected only the mouse line to remain, got %d lines", len(lines))
	}

	// removing an absent product is a no-op
	if err := order.RemoveLine("absent"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestOrder_UpdateQuantity(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "mouse", 2, "29.99")

	if err := order.UpdateQuantity("mouse", 7); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if order.Lines()[0].Quantity() != 7 {
		t.Errorf("expected quantity 7, got %d", order.Lines()[0].Quantity())
	}
}

func TestOrder_UpdateQuantityUnknownProduct(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "mouse", 2, "29.99")

	err := order.UpdateQuantity("absent", 1)

	if !IsKind(err, KindProductNotFound) {
		t.Errorf("expected PRODUCT_NOT_FOUND, got %v", err)
	}
}

func TestOrder_PayEmptyOrder(t *testing.T) {
	order := newTestOrder(t)

	err := order.Pay()

	if !IsKind(err, KindEmptyOrder) {
		t.Errorf("expected EMPTY_ORDER, got %v", err)
	}
	if order.Status() != OrderStatusCreated {
		t.Errorf("expected status unchanged, got %s", order.Status())
	}
}

func TestOrder_PaySucceedsOnce(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "laptop", 1, "899.99")

	if err := order.Pay(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if order.Status() != OrderStatusPaid {
		t.Errorf("expected status paid, got %s", order.Status())
	}
	if order.PaidAt() == nil {
		t.Fatal("expected paidAt to be set")
	}

	firstPaidAt := *order.PaidAt()
	err := order.Pay()

	if !IsKind(err, KindAlreadyPaid) {
		t.Errorf("expected ALREADY_PAID, got %v", err)
	}
	if !order.PaidAt().Equal(firstPaidAt) {
		t.Error("expected paidAt unchanged after rejected second payment")
	}
}

func TestOrder_PaidOrderRejectsLineEdits(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "laptop", 1, "899.99")
	if err := order.Pay(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := order.AddLine("cable", "cable", 1, mustMoney(t, "19.99", "USD")); !IsKind(err, KindOrderNotModifiable) {
		t.Errorf("expected ORDER_NOT_MODIFIABLE on add, got %v", err)
	}
	if err := order.RemoveLine("laptop"); !IsKind(err, KindOrderNotModifiable) {
		t.Errorf("expected ORDER_NOT_MODIFIABLE on remove, got %v", err)
	}
	if err := order.UpdateQuantity("laptop", 2); !IsKind(err, KindOrderNotModifiable) {
		t.Errorf("expected ORDER_NOT_MODIFIABLE on update, got %v", err)
	}

	lines := order.Lines()
	if len(lines) != 1 || lines[0].Quantity() != 1 {
		t.Error("expected line collection unchanged")
	}
}

func TestOrder_CancelledOrderRejectsLineEdits(t *testing.T) {
	// Cancelled is terminal: edits are rejected the same way as on a
	// paid order.
	order := newTestOrder(t)
	addLine(t, order, "laptop", 1, "899.99")
	if err := order.Cancel(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := order.AddLine("cable", "cable", 1, mustMoney(t, "19.99", "USD")); !IsKind(err, KindOrderNotModifiable) {
		t.Errorf("expected ORDER_NOT_MODIFIABLE, got %v", err)
	}
}

func TestOrder_PayCancelledOrder(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "laptop", 1, "899.99")
	if err := order.Cancel(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := order.Pay()

	if !IsKind(err, KindOrderCancelled) {
		t.Errorf("expected ORDER_CANCELLED, got %v", err)
	}
}

func TestOrder_CancelPaidOrder(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "laptop", 1, "899.99")
	if err := order.Pay(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := order.Cancel()

	if !IsKind(err, KindOrderNotCancellable) {
		t.Errorf("expected ORDER_NOT_CANCELLABLE, got %v", err)
	}
	if order.Status() != OrderStatusPaid {
		t.Errorf("expected status paid, got %s", order.Status())
	}
}

func TestOrder_CancelCancelledOrderIsNoOp(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "laptop", 1, "899.99")
	if err := order.Cancel(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := order.Cancel()

	if err != nil {
		t.Errorf("expected cancelling a cancelled order to be a no-op, got %v", err)
	}
	if order.Status() != OrderStatusCancelled {
		t.Errorf("expected status cancelled, got %s", order.Status())
	}
}

func TestRestore_RebuildsOrder(t *testing.T) {
	line, _ := NewOrderLine("laptop", "Laptop", 1, mustMoney(t, "899.99", "USD"))
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	order, err := Restore("order-1", "cust-1", []OrderLine{line}, OrderStatusCreated, created, nil, "")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !order.TotalAmount().Equals(mustMoney(t, "899.99", "USD")) {
		t.Errorf("expected 899.99 USD, got %s", order.TotalAmount())
	}
	if !order.CreatedAt().Equal(created) {
		t.Error("expected createdAt to carry over")
	}
}

func TestRestore_MixedCurrencyLines(t *testing.T) {
	// Rows violating the single-currency invariant must fail loudly
	// instead of feeding a broken total into receipts and events.
	usdLine, _ := NewOrderLine("laptop", "Laptop", 1, mustMoney(t, "899.99", "USD"))
	eurLine, _ := NewOrderLine("book", "Book", 1, mustMoney(t, "9.99", "EUR"))

	_, err := Restore("order-1", "cust-1", []OrderLine{usdLine, eurLine}, OrderStatusCreated, time.Now(), nil, "")

	if !IsKind(err, KindCurrencyMismatch) {
		t.Errorf("expected CURRENCY_MISMATCH, got %v", err)
	}
}

func TestOrder_PrepareForPaymentDoesNotMutate(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "laptop", 1, "899.99")

	if err := order.PrepareForPayment(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if order.Status() != OrderStatusCreated {
		t.Errorf("expected status still created, got %s", order.Status())
	}
	if order.PaidAt() != nil {
		t.Error("expected paidAt unset")
	}
}

func TestOrder_CommitPaidRecordsTransaction(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "laptop", 1, "899.99")

	if err := order.CommitPaid("txn-123"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if order.TransactionID() != "txn-123" {
		t.Errorf("expected transaction txn-123, got %s", order.TransactionID())
	}
	if order.Status() != OrderStatusPaid {
		t.Errorf("expected status paid, got %s", order.Status())
	}
}

func TestOrder_LinesReturnsCopy(t *testing.T) {
	order := newTestOrder(t)
	addLine(t, order, "laptop", 1, "899.99")

	lines := order.Lines()
	lines[0], _ = lines[0].WithQuantity(99)

	if order.Lines()[0].Quantity() != 1 {
		t.Error("expected the aggregate's lines to be unaffected")
	}
}
