package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/smaite/karobar-ledger/internal/models"
)

// CreditTotals holds the day's credit movement sums for one currency.
type CreditTotals struct {
	Given    decimal.Decimal
	Received decimal.Decimal
}

// AggregateCredits sums credit_given and payment_received per currency.
// Credit is symmetric: a movement counts in its own declared currency on
// both sides of the ledger.
func AggregateCredits(credits []models.CreditTransaction) map[models.Currency]CreditTotals {
	totals := make(map[models.Currency]CreditTotals, len(models.Currencies))
	for _, c := range models.Currencies {
		totals[c] = CreditTotals{Given: decimal.Zero, Received: decimal.Zero}
	}
	for _, ct := range credits {
		t := totals[ct.Currency]
		switch ct.Type {
		case models.CreditGiven:
			t.Given = t.Given.Add(ct.Amount)
		case models.PaymentReceived:
			t.Received = t.Received.Add(ct.Amount)
		}
		totals[ct.Currency] = t
	}
	return totals
}

// AggregateExpenses sums the day's deductions per currency. Categories are a
// reporting concern only and do not change the arithmetic.
func AggregateExpenses(expenses []models.Expense) map[models.Currency]decimal.Decimal {
	totals := make(map[models.Currency]decimal.Decimal, len(models.Currencies))
	for _, c := range models.Currencies {
		totals[c] = decimal.Zero
	}
	for _, e := range expenses {
		totals[e.Currency] = totals[e.Currency].Add(e.Amount)
	}
	return totals
}
