package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// CreditType distinguishes money lent to a customer from money paid back.
type CreditType string

const (
	CreditGiven     CreditType = "credit_given"
	PaymentReceived CreditType = "payment_received"
)

// CreditTransaction records one movement on a customer's outstanding credit.
//
// Currency is required at write time. Historical records imported from the
// old system default to NPR, the currency the old schema implicitly assumed.
type CreditTransaction struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	StaffID       string          `json:"staff_id"`
	Type          CreditType      `json:"transaction_type"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      Currency        `json:"currency"`
	ExchangeTxID  string          `json:"exchange_transaction_id,omitempty"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

var (
	ErrCreditCurrencyRequired = errors.New("credit transaction requires an explicit currency")
	ErrNoOutstandingCredit    = errors.New("customer has no outstanding credit")
)

// ClampPayment caps a requested payment at the customer's outstanding
// balance. A customer can never overpay into a negative balance through the
// credit path: the applied amount is min(requested, balance).
func ClampPayment(balance, requested decimal.Decimal) decimal.Decimal {
	if requested.Cmp(balance) > 0 {
		return balance
	}
	return requested
}

func (t CreditTransaction) Validate() error {
	if t.Type != CreditGiven && t.Type != PaymentReceived {
		return errors.New("transaction_type must be credit_given or payment_received")
	}
	if t.CustomerID == "" {
		return ErrCustomerRequired
	}
	if !t.Currency.Valid() {
		return ErrCreditCurrencyRequired
	}
	if t.Amount.Cmp(decimal.Zero) <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}
