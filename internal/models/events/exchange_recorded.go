package events

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smaite/karobar-ledger/internal/models"
)

// ExchangeRecorded is published after an exchange transaction (and any
// attached credit movement) has been committed.
type ExchangeRecorded struct {
	TransactionID string                 `json:"transaction_id"`
	Type          models.TransactionType `json:"transaction_type"`
	FromCurrency  models.Currency        `json:"from_currency"`
	ToCurrency    models.Currency        `json:"to_currency"`
	FromAmount    decimal.Decimal        `json:"from_amount"`
	ToAmount      decimal.Decimal        `json:"to_amount"`
	IsCredit      bool                   `json:"is_credit"`
	StaffID       string                 `json:"staff_id"`
	OccurredAt    time.Time              `json:"occurred_at"`
}
