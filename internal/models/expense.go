package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory groups deductions for reporting. The category never enters
// the reconciliation arithmetic.
type ExpenseCategory string

const (
	ExpenseEsewa      ExpenseCategory = "esewa"
	ExpenseBank       ExpenseCategory = "bank"
	ExpenseRemittance ExpenseCategory = "remittance"
	ExpenseGeneral    ExpenseCategory = "general"
)

// Expense is a deduction from the day's cash position.
//
// ExpenseDate is a calendar date chosen by the operator; it is deliberately
// decoupled from CreatedAt so a receipt entered the next morning still lands
// on the right business day.
type Expense struct {
	ID          string          `json:"id"`
	StaffID     string          `json:"staff_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    Currency        `json:"currency"`
	Category    ExpenseCategory `json:"category"`
	ExpenseDate time.Time       `json:"expense_date"`
	ReceiptRef  string          `json:"receipt_ref,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (e Expense) Validate() error {
	switch e.Category {
	case ExpenseEsewa, ExpenseBank, ExpenseRemittance, ExpenseGeneral:
	default:
		return errors.New("unknown expense category")
	}
	if !e.Currency.Valid() {
		return ErrUnknownCurrency
	}
	if e.Amount.Cmp(decimal.Zero) <= 0 {
		return ErrNonPositiveAmount
	}
	if e.ExpenseDate.IsZero() {
		return errors.New("expense_date is required")
	}
	return nil
}
