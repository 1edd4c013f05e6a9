package domain

import (
	"errors"
	"fmt"
)

// ErrorKind identifies a domain failure condition. The set is closed:
// callers branch on the kind, never on message text.
type ErrorKind string

const (
	// Validation kinds, raised by value object constructors and arithmetic
	KindNegativeAmount   ErrorKind = "NEGATIVE_AMOUNT"
	KindInvalidAmount    ErrorKind = "INVALID_AMOUNT"
	KindCurrencyMismatch ErrorKind = "CURRENCY_MISMATCH"
	KindInvalidCurrency  ErrorKind = "INVALID_CURRENCY"
	KindInvalidQuantity  ErrorKind = "INVALID_QUANTITY"
	KindInvalidProduct   ErrorKind = "INVALID_PRODUCT"
	KindEmptyCustomerID  ErrorKind = "EMPTY_CUSTOMER_ID"

	// State machine kinds, raised by Order's mutating methods
	KindAlreadyPaid         ErrorKind = "ALREADY_PAID"
	KindOrderCancelled      ErrorKind = "ORDER_CANCELLED"
	KindEmptyOrder          ErrorKind = "EMPTY_ORDER"
	KindNonPositiveTotal    ErrorKind = "NON_POSITIVE_TOTAL"
	KindOrderNotModifiable  ErrorKind = "ORDER_NOT_MODIFIABLE"
	KindOrderNotCancellable ErrorKind = "ORDER_NOT_CANCELLABLE"
	KindProductNotFound     ErrorKind = "PRODUCT_NOT_FOUND"

	// Orchestration kinds, raised by the use case and the payment gateway
	KindOrderNotFound       ErrorKind = "ORDER_NOT_FOUND"
	KindPaymentRejected     ErrorKind = "PAYMENT_REJECTED"
	KindGatewayUnavailable  ErrorKind = "GATEWAY_UNAVAILABLE"
	KindTransactionNotFound ErrorKind = "TRANSACTION_NOT_FOUND"
)

// Error is a typed domain rejection carrying a kind and a human-readable message
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError creates a domain error with the given kind
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewErrorf creates a domain error with a formatted message
func NewErrorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a domain error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind == kind
	}
	return false
}
