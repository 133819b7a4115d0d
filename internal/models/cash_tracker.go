package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashTrackerRecord is the one-per-day cash count: opening balances entered at
// day start, closing balances counted at day end. The denomination breakdown
// the totals came from is not persisted, only the reduced totals.
type CashTrackerRecord struct {
	ID         string          `json:"id"`
	StaffID    string          `json:"staff_id"`
	Date       time.Time       `json:"date"`
	OpeningNPR decimal.Decimal `json:"opening_npr"`
	OpeningINR decimal.Decimal `json:"opening_inr"`
	ClosingNPR decimal.Decimal `json:"closing_npr"`
	ClosingINR decimal.Decimal `json:"closing_inr"`
	IsClosed   bool            `json:"is_closed"`
	ClosedAt   *time.Time      `json:"closed_at,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// Opening returns the opening balance for the given currency.
func (r CashTrackerRecord) Opening(c Currency) decimal.Decimal {
	if c == INR {
		return r.OpeningINR
	}
	return r.OpeningNPR
}

// Closing returns the counted closing balance for the given currency.
// Zero until the day is closed.
func (r CashTrackerRecord) Closing(c Currency) decimal.Decimal {
	if c == INR {
		return r.ClosingINR
	}
	return r.ClosingNPR
}
