package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smaite/karobar-ledger/internal/interfaces"
	"github.com/smaite/karobar-ledger/internal/models"
)

// Report row labels. Nepali terms are the ones printed on the daily sheet;
// "Hunu Parne", "Cha" and "Farak" always name the computed expected, counted
// and difference totals.
const (
	RowOpening        = "Opening"
	RowSoldToShop     = "Sold To Shop"
	RowCashTake       = "Cash Take"
	RowOnlineTake     = "Online Take"
	RowNasta          = "Nasta (Expenses)"
	RowBoughtFromShop = "Bought From Shop"
	RowCreditGiven    = "Credit Given"
	RowCreditReceived = "Credit Received"
	RowHunuParne      = "Hunu Parne (Expected)"
	RowCha            = "Cha (Counted)"
)

// Build derives the daily ledger snapshot from one consistent set of day
// records. It is a pure function: same inputs, same snapshot.
//
// Per currency C:
//
//	expected(C) = opening(C) + receivedViaExchange(C) + creditReceived(C)
//	            - paidOutViaExchange(C) - expenses(C) - creditGiven(C)
//	farak(C)    = expected(C) - actual(C)
//
// A missing cash tracker record means the day simply starts from zero.
// Until the day is closed, actual is zero and farak must not be read as a
// discrepancy; IsClosed tells consumers which case they are in.
func Build(date, windowStart, windowEnd time.Time, records interfaces.DayRecords) models.LedgerSnapshot {
	exchange := ClassifyTransactions(records.Transactions)
	credits := AggregateCredits(records.Credits)
	expenses := AggregateExpenses(records.Expenses)

	tracker := records.CashTracker
	if tracker == nil {
		tracker = &models.CashTrackerRecord{
			OpeningNPR: decimal.Zero, OpeningINR: decimal.Zero,
			ClosingNPR: decimal.Zero, ClosingINR: decimal.Zero,
		}
	}

	snap := models.LedgerSnapshot{
		Date:        date,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		IsClosed:    tracker.IsClosed,
		Currencies:  make(map[models.Currency]models.CurrencyLedger, len(models.Currencies)),
	}

	for _, c := range models.Currencies {
		opening := tracker.Opening(c)
		actual := tracker.Closing(c)
		ex := exchange[c]
		cr := credits[c]
		spend := expenses[c]

		expected := opening.
			Add(ex.ReceivedViaExchange).
			Add(cr.Received).
			Sub(ex.PaidOutViaExchange).
			Sub(spend).
			Sub(cr.Given)

		snap.Currencies[c] = models.CurrencyLedger{
			Currency:       c,
			Opening:        opening,
			Exchange:       ex,
			CreditGiven:    cr.Given,
			CreditReceived: cr.Received,
			Expenses:       spend,
			Expected:       expected,
			Actual:         actual,
			Farak:          expected.Sub(actual),
			Rows: []models.ReportRow{
				{Label: RowOpening, Amount: opening},
				{Label: RowSoldToShop, Amount: ex.ReceivedViaExchange},
				{Label: RowCashTake, Amount: ex.CashReceived},
				{Label: RowOnlineTake, Amount: ex.OnlineReceived},
				{Label: RowNasta, Amount: spend},
				{Label: RowBoughtFromShop, Amount: ex.PaidOutViaExchange},
				{Label: RowCreditGiven, Amount: cr.Given},
				{Label: RowCreditReceived, Amount: cr.Received},
				{Label: RowHunuParne, Amount: expected},
				{Label: RowCha, Amount: actual},
			},
		}
	}

	return snap
}
