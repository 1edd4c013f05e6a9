package domain

import (
	"github.com/shopspring/decimal"
)

// Money is an immutable value object: a non-negative decimal amount tagged
// with a currency code. All arithmetic returns a new instance.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates a Money value with validation
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, NewError(KindNegativeAmount, "amount cannot be negative")
	}
	if currency == "" {
		return Money{}, NewError(KindInvalidCurrency, "currency is required")
	}
	return Money{amount: amount, currency: currency}, nil
}

// NewMoneyFromString creates a Money value from a decimal string like "899.99"
func NewMoneyFromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, NewErrorf(KindInvalidAmount, "invalid amount %q", amount)
	}
	return NewMoney(d, currency)
}

// Zero returns the additive identity for the given currency
func Zero(currency string) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two amounts of the same currency
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, NewErrorf(KindCurrencyMismatch, "cannot add %s to %s", other.currency, m.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns the difference of two amounts of the same currency.
// A negative result violates the amount invariant and fails.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, NewErrorf(KindCurrencyMismatch, "cannot subtract %s from %s", other.currency, m.currency)
	}
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, NewError(KindNegativeAmount, "subtraction result cannot be negative")
	}
	return Money{amount: result, currency: m.currency}, nil
}

// Multiply returns the amount scaled by a non-negative factor
func (m Money) Multiply(factor int64) (Money, error) {
	if factor < 0 {
		return Money{}, NewError(KindNegativeAmount, "multiplication factor cannot be negative")
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(factor)), currency: m.currency}, nil
}

// IsZero reports whether the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly positive
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Equals reports whether two values have the same amount and currency
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders the value as "<amount> <currency>"
func (m Money) String() string {
	return m.amount.String() + " " + m.currency
}
