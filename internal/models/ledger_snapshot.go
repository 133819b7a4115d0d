package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeTotals is the fixed-shape per-currency output of the transaction
// classifier. Every exchange transaction contributes to exactly one
// "received" bucket in one currency and one "paid" bucket in the other.
type ExchangeTotals struct {
	// ReceivedViaExchange: this currency handed to the shop by customers.
	ReceivedViaExchange decimal.Decimal `json:"received_via_exchange"`
	// PaidOutViaExchange: this currency paid out to customers by the shop.
	PaidOutViaExchange decimal.Decimal `json:"paid_out_via_exchange"`
	// CashReceived: the cash portion of ReceivedViaExchange.
	CashReceived decimal.Decimal `json:"cash_received"`
	// OnlineReceived: the online (eSewa/bank) portion of ReceivedViaExchange.
	OnlineReceived decimal.Decimal `json:"online_received"`
	// StaffOwesPersonal: online receipts that landed in a staff member's
	// personal wallet instead of the shop account. The shop is owed this.
	StaffOwesPersonal decimal.Decimal `json:"staff_owes_personal"`
}

// ReportRow is one named line of the printable daily report.
type ReportRow struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CurrencyLedger is one currency's side of the daily ledger.
//
// Expected is the balance the drawer should hold ("Hunu Parne"), Actual the
// counted closing balance ("Cha"), Farak their difference. Farak is only
// meaningful once the day is closed; until then Actual is zero and Farak
// merely mirrors the expected total.
type CurrencyLedger struct {
	Currency       Currency        `json:"currency"`
	Opening        decimal.Decimal `json:"opening"`
	Exchange       ExchangeTotals  `json:"exchange"`
	CreditGiven    decimal.Decimal `json:"credit_given"`
	CreditReceived decimal.Decimal `json:"credit_received"`
	Expenses       decimal.Decimal `json:"expenses"`
	Expected       decimal.Decimal `json:"expected"`
	Actual         decimal.Decimal `json:"actual"`
	Farak          decimal.Decimal `json:"farak"`
	Rows           []ReportRow     `json:"rows"`
}

// LedgerSnapshot is the full output of one daily ledger computation. It is
// derived on demand and never persisted.
type LedgerSnapshot struct {
	Date        time.Time                   `json:"date"`
	WindowStart time.Time                   `json:"window_start"`
	WindowEnd   time.Time                   `json:"window_end"`
	IsClosed    bool                        `json:"is_closed"`
	Sequence    uint64                      `json:"sequence"`
	Currencies  map[Currency]CurrencyLedger `json:"currencies"`
}
