package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Customer carries the running credit balance maintained as a side effect of
// credit_given / payment_received writes. The balance is mutated at write
// time, not recomputed from history.
type Customer struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone,omitempty"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrCreditLimitExceed = errors.New("credit limit exceeded")
)

// CanBorrow reports whether extending amount more credit stays within the
// customer's limit. A zero limit means no limit is enforced.
func (c Customer) CanBorrow(amount decimal.Decimal) bool {
	if c.CreditLimit.IsZero() {
		return true
	}
	return c.CreditBalance.Add(amount).Cmp(c.CreditLimit) <= 0
}
