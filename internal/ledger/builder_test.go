package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smaite/karobar-ledger/internal/interfaces"
	"github.com/smaite/karobar-ledger/internal/ledger"
	"github.com/smaite/karobar-ledger/internal/models"
)

var (
	day        = time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	dayStart   = day
	dayEnd     = day.AddDate(0, 0, 1)
	noon       = day.Add(12 * time.Hour)
)

// The worked reconciliation example: opening NPR 10000 / INR 5000, one sell
// of 1000 NPR cash for 625 INR, one general expense of 200 NPR, counted
// closing NPR of 10750.
func TestBuildReconciliationScenario(t *testing.T) {
	records := interfaces.DayRecords{
		Transactions: []models.ExchangeTransaction{
			{
				Type: models.Sell, FromCurrency: models.NPR, ToCurrency: models.INR,
				FromAmount: dec(1000), ToAmount: dec(625),
				PaymentMethod: models.PaymentCash, CreatedAt: noon,
			},
		},
		Expenses: []models.Expense{
			{Amount: dec(200), Currency: models.NPR, Category: models.ExpenseGeneral, ExpenseDate: day},
		},
		CashTracker: &models.CashTrackerRecord{
			OpeningNPR: dec(10000), OpeningINR: dec(5000),
			ClosingNPR: dec(10750), ClosingINR: dec(4375),
			IsClosed: true,
		},
	}

	snap := ledger.Build(day, dayStart, dayEnd, records)

	npr := snap.Currencies[models.NPR]
	assert.True(t, npr.Expected.Equal(dec(10800)), "expected NPR %s", npr.Expected)
	assert.True(t, npr.Actual.Equal(dec(10750)))
	// The shop is missing 50 NPR.
	assert.True(t, npr.Farak.Equal(dec(50)), "farak NPR %s", npr.Farak)

	inr := snap.Currencies[models.INR]
	assert.True(t, inr.Expected.Equal(dec(4375)), "expected INR %s", inr.Expected)
	assert.True(t, inr.Farak.IsZero())

	assert.True(t, snap.IsClosed)
}

// expected - opening must equal the signed sum of the bucket contributions:
// the formula is a pure linear combination with no hidden terms.
func TestBuildAdditivity(t *testing.T) {
	records := interfaces.DayRecords{
		Transactions: []models.ExchangeTransaction{
			{ // sell: +1000 NPR in, -625 INR out
				Type: models.Sell, FromCurrency: models.NPR, ToCurrency: models.INR,
				FromAmount: dec(1000), ToAmount: dec(625),
				PaymentMethod: models.PaymentCash, CreatedAt: noon,
			},
			{ // buy: +400 INR in, -640 NPR out
				Type: models.Buy, FromCurrency: models.INR, ToCurrency: models.NPR,
				FromAmount: dec(400), ToAmount: dec(640),
				PaymentMethod: models.PaymentCash, CreatedAt: noon,
			},
		},
		Credits: []models.CreditTransaction{
			{Type: models.CreditGiven, Amount: dec(300), Currency: models.NPR, CreatedAt: noon},
			{Type: models.PaymentReceived, Amount: dec(120), Currency: models.INR, CreatedAt: noon},
		},
		Expenses: []models.Expense{
			{Amount: dec(200), Currency: models.NPR, Category: models.ExpenseGeneral, ExpenseDate: day},
			{Amount: dec(75), Currency: models.INR, Category: models.ExpenseEsewa, ExpenseDate: day},
		},
		CashTracker: &models.CashTrackerRecord{
			OpeningNPR: dec(5000), OpeningINR: dec(3000),
		},
	}

	snap := ledger.Build(day, dayStart, dayEnd, records)

	for _, c := range models.Currencies {
		cl := snap.Currencies[c]
		contributions := cl.Exchange.ReceivedViaExchange.
			Add(cl.CreditReceived).
			Sub(cl.Exchange.PaidOutViaExchange).
			Sub(cl.Expenses).
			Sub(cl.CreditGiven)
		assert.True(t, cl.Expected.Sub(cl.Opening).Equal(contributions), "additivity %s", c)
	}

	// Hand-computed totals.
	assert.True(t, snap.Currencies[models.NPR].Expected.Equal(dec(5000+1000-640-200-300)))
	assert.True(t, snap.Currencies[models.INR].Expected.Equal(dec(3000+400+120-625-75)))
}

// A credit sale contributes its from_amount to received and the matching
// credit_given cancels it: no cash arrived, expected stays at opening.
func TestBuildCreditSaleCancelsOut(t *testing.T) {
	records := interfaces.DayRecords{
		Transactions: []models.ExchangeTransaction{
			{
				Type: models.Sell, FromCurrency: models.NPR, ToCurrency: models.INR,
				FromAmount: dec(2000), ToAmount: dec(1250),
				PaymentMethod: models.PaymentCash, IsCredit: true,
				CustomerID: "c1", CreatedAt: noon,
			},
		},
		Credits: []models.CreditTransaction{
			{Type: models.CreditGiven, Amount: dec(2000), Currency: models.NPR, CustomerID: "c1", CreatedAt: noon},
		},
		CashTracker: &models.CashTrackerRecord{OpeningNPR: dec(10000), OpeningINR: dec(5000)},
	}

	snap := ledger.Build(day, dayStart, dayEnd, records)

	assert.True(t, snap.Currencies[models.NPR].Expected.Equal(dec(10000)))
	assert.True(t, snap.Currencies[models.INR].Expected.Equal(dec(3750)))
}

// A day with no cash tracker starts from zero; that is permissiveness, not
// an error.
func TestBuildWithoutCashTracker(t *testing.T) {
	snap := ledger.Build(day, dayStart, dayEnd, interfaces.DayRecords{
		Expenses: []models.Expense{
			{Amount: dec(100), Currency: models.NPR, Category: models.ExpenseGeneral, ExpenseDate: day},
		},
	})

	assert.False(t, snap.IsClosed)
	npr := snap.Currencies[models.NPR]
	assert.True(t, npr.Opening.IsZero())
	assert.True(t, npr.Expected.Equal(dec(-100)))
	// Actual defaults to zero, so farak mirrors expected until close.
	assert.True(t, npr.Farak.Equal(dec(-100)))
}

func TestBuildReportRows(t *testing.T) {
	snap := ledger.Build(day, dayStart, dayEnd, interfaces.DayRecords{
		CashTracker: &models.CashTrackerRecord{OpeningNPR: dec(700), OpeningINR: dec(50)},
	})

	rows := snap.Currencies[models.NPR].Rows
	require.Len(t, rows, 10)
	assert.Equal(t, ledger.RowOpening, rows[0].Label)
	assert.True(t, rows[0].Amount.Equal(dec(700)))
	assert.Equal(t, ledger.RowHunuParne, rows[8].Label)
	assert.True(t, rows[8].Amount.Equal(snap.Currencies[models.NPR].Expected))
	assert.Equal(t, ledger.RowCha, rows[9].Label)
}

// Same inputs, same snapshot: the builder is pure.
func TestBuildIdempotent(t *testing.T) {
	records := interfaces.DayRecords{
		Transactions: []models.ExchangeTransaction{
			{
				Type: models.Sell, FromCurrency: models.NPR, ToCurrency: models.INR,
				FromAmount: dec(1000), ToAmount: dec(625),
				PaymentMethod: models.PaymentCash, CreatedAt: noon,
			},
		},
		CashTracker: &models.CashTrackerRecord{OpeningNPR: dec(10000), OpeningINR: dec(5000)},
	}

	first := ledger.Build(day, dayStart, dayEnd, records)
	second := ledger.Build(day, dayStart, dayEnd, records)
	assert.Equal(t, first, second)
}
