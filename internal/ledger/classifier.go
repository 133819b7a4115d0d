package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/smaite/karobar-ledger/internal/models"
)

// ClassifyTransactions folds the day's exchange transactions into the fixed
// per-currency bucket shape.
//
// Whatever the direction (buy or sell), the customer hands over from_currency
// and receives to_currency. Each transaction therefore contributes its
// from_amount to exactly one "received" bucket (in from_currency) and its
// to_amount to exactly one "paid" bucket (in to_currency).
func ClassifyTransactions(txs []models.ExchangeTransaction) map[models.Currency]models.ExchangeTotals {
	totals := newExchangeTotals()

	for _, tx := range txs {
		in := totals[tx.FromCurrency]
		in.ReceivedViaExchange = in.ReceivedViaExchange.Add(tx.FromAmount)

		switch tx.PaymentMethod {
		case models.PaymentOnline:
			in.OnlineReceived = in.OnlineReceived.Add(tx.FromAmount)
			if tx.IsPersonalAccount {
				// Landed in a staff wallet, not the shop account.
				in.StaffOwesPersonal = in.StaffOwesPersonal.Add(tx.FromAmount)
			}
		default:
			in.CashReceived = in.CashReceived.Add(tx.FromAmount)
		}
		totals[tx.FromCurrency] = in

		out := totals[tx.ToCurrency]
		out.PaidOutViaExchange = out.PaidOutViaExchange.Add(tx.ToAmount)
		totals[tx.ToCurrency] = out
	}

	return totals
}

func newExchangeTotals() map[models.Currency]models.ExchangeTotals {
	m := make(map[models.Currency]models.ExchangeTotals, len(models.Currencies))
	for _, c := range models.Currencies {
		m[c] = models.ExchangeTotals{
			ReceivedViaExchange: decimal.Zero,
			PaidOutViaExchange:  decimal.Zero,
			CashReceived:        decimal.Zero,
			OnlineReceived:      decimal.Zero,
			StaffOwesPersonal:   decimal.Zero,
		}
	}
	return m
}
