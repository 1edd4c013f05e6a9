package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustMoney(t *testing.T, amount, currency string) Money {
	t.Helper()
	m, err := NewMoneyFromString(amount, currency)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return m
}

func TestNewMoney_NegativeAmount(t *testing.T) {
	_, err := NewMoney(decimal.NewFromInt(-1), "USD")

	if !IsKind(err, KindNegativeAmount) {
		t.Errorf("expected NEGATIVE_AMOUNT, got %v", err)
	}
}

func TestNewMoney_EmptyCurrency(t *testing.T) {
	_, err := NewMoney(decimal.NewFromInt(10), "")

	if !IsKind(err, KindInvalidCurrency) {
		t.Errorf("expected INVALID_CURRENCY, got %v", err)
	}
}

func TestMoney_Add(t *testing.T) {
	a := mustMoney(t, "10.50", "USD")
	b := mustMoney(t, "2.25", "USD")

	sum, err := a.Add(b)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !sum.Equals(mustMoney(t, "12.75", "USD")) {
		t.Errorf("expected 12.75 USD, got %s", sum)
	}
	// operands are unchanged
	if !a.Equals(mustMoney(t, "10.50", "USD")) {
		t.Errorf("operand mutated: %s", a)
	}
}

func TestMoney_AddCurrencyMismatch(t *testing.T) {
	a := mustMoney(t, "10", "USD")
	b := mustMoney(t, "10", "EUR")

	_, err := a.Add(b)

	if !IsKind(err, KindCurrencyMismatch) {
		t.Errorf("expected CURRENCY_MISMATCH, got %v", err)
	}
}

func TestMoney_Subtract(t *testing.T) {
	a := mustMoney(t, "10", "USD")
	b := mustMoney(t, "4", "USD")

	diff, err := a.Subtract(b)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !diff.Equals(mustMoney(t, "6", "USD")) {
		t.Errorf("expected 6 USD, got %s", diff)
	}
}

func TestMoney_SubtractNegativeResult(t *testing.T) {
	a := mustMoney(t, "4", "USD")
	b := mustMoney(t, "10", "USD")

	_, err := a.Subtract(b)

	if !IsKind(err, KindNegativeAmount) {
		t.Errorf("expected NEGATIVE_AMOUNT, got %v", err)
	}
}

func TestMoney_Multiply(t *testing.T) {
	price := mustMoney(t, "29.99", "USD")

	total, err := price.Multiply(2)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !total.Equals(mustMoney(t, "59.98", "USD")) {
		t.Errorf("expected 59.98 USD, got %s", total)
	}
}

func TestMoney_MultiplyNegativeFactor(t *testing.T) {
	price := mustMoney(t, "10", "USD")

	_, err := price.Multiply(-1)

	if !IsKind(err, KindNegativeAmount) {
		t.Errorf("expected NEGATIVE_AMOUNT, got %v", err)
	}
}

func TestZero_Predicates(t *testing.T) {
	zero := Zero("USD")

	if !zero.IsZero() {
		t.Error("expected zero value to be zero")
	}
	if zero.IsPositive() {
		t.Error("expected zero value not to be positive")
	}
}

func TestMoney_String(t *testing.T) {
	m := mustMoney(t, "899.99", "USD")

	if m.String() != "899.99 USD" {
		t.Errorf("expected \"899.99 USD\", got %q", m.String())
	}
}

func TestMoney_Equals(t *testing.T) {
	a := mustMoney(t, "10", "USD")
	b := mustMoney(t, "10", "USD")
	c := mustMoney(t, "10", "EUR")

	if !a.Equals(b) {
		t.Error("expected equal amounts in the same currency to be equal")
	}
	if a.Equals(c) {
		t.Error("expected different currencies not to be equal")
	}
}
