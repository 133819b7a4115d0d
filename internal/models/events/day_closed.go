package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayClosed is published when a staff member enters the counted closing
// balance and closes the business day.
type DayClosed struct {
	Date       string          `json:"date"` // YYYY-MM-DD
	StaffID    string          `json:"staff_id"`
	ClosingNPR decimal.Decimal `json:"closing_npr"`
	ClosingINR decimal.Decimal `json:"closing_inr"`
	FarakNPR   decimal.Decimal `json:"farak_npr"`
	FarakINR   decimal.Decimal `json:"farak_inr"`
	ClosedAt   time.Time       `json:"closed_at"`
}
