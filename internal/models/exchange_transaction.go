package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of an exchange from the shop's point of view.
type TransactionType string

const (
	// Buy: the shop buys the counter currency, customer hands over from_currency
	// (typically INR) and receives to_currency (typically NPR).
	Buy TransactionType = "buy"
	// Sell: the shop sells the counter currency, customer pays from_currency
	// (typically NPR) and receives to_currency (typically INR).
	Sell TransactionType = "sell"
)

// PaymentMethod is how the customer's side of the exchange was settled.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

// ExchangeTransaction is one buy/sell event at the counter.
//
// ToAmount normally equals FromAmount × ExchangeRate, but the operator may
// override the computed amount ("adjust amount"), which breaks that identity
// on purpose. The ledger therefore always trusts the stored amounts, never
// the rate.
type ExchangeTransaction struct {
	ID                string          `json:"id"`
	StaffID           string          `json:"staff_id"`
	Type              TransactionType `json:"transaction_type"`
	FromCurrency      Currency        `json:"from_currency"`
	ToCurrency        Currency        `json:"to_currency"`
	FromAmount        decimal.Decimal `json:"from_amount"`
	ToAmount          decimal.Decimal `json:"to_amount"`
	ExchangeRate      decimal.Decimal `json:"exchange_rate"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	IsCredit          bool            `json:"is_credit"`
	IsPersonalAccount bool            `json:"is_personal_account"`
	CustomerID        string          `json:"customer_id,omitempty"`
	BankAccountID     string          `json:"bank_account_id,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

var (
	ErrExchangeNotFound  = errors.New("exchange transaction not found")
	ErrSameCurrency      = errors.New("from and to currency must differ")
	ErrUnknownCurrency   = errors.New("unknown currency")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrBankAccountNeeded = errors.New("online payment requires a bank account")
	ErrCustomerRequired  = errors.New("credit transaction requires a customer")
)

// Validate enforces the write-boundary rules. The ledger core itself assumes
// validated records and does not re-check.
func (t ExchangeTransaction) Validate() error {
	if t.Type != Buy && t.Type != Sell {
		return errors.New("transaction_type must be buy or sell")
	}
	if !t.FromCurrency.Valid() || !t.ToCurrency.Valid() {
		return ErrUnknownCurrency
	}
	if t.FromCurrency == t.ToCurrency {
		return ErrSameCurrency
	}
	if t.FromAmount.Cmp(decimal.Zero) <= 0 || t.ToAmount.Cmp(decimal.Zero) <= 0 {
		return ErrNonPositiveAmount
	}
	if t.PaymentMethod != PaymentCash && t.PaymentMethod != PaymentOnline {
		return errors.New("payment_method must be cash or online")
	}
	if t.PaymentMethod == PaymentOnline && !t.IsPersonalAccount && t.BankAccountID == "" {
		return ErrBankAccountNeeded
	}
	if t.IsCredit && t.CustomerID == "" {
		return ErrCustomerRequired
	}
	return nil
}
