package interfaces

import (
	"context"
	"time"

	"github.com/smaite/karobar-ledger/internal/models"
)

// DayRecords bundles the four inputs of one daily ledger computation. A store
// must populate all four from a single consistent snapshot so that a write
// landing mid-computation cannot be half-visible.
type DayRecords struct {
	Transactions []models.ExchangeTransaction
	Credits      []models.CreditTransaction
	Expenses     []models.Expense
	CashTracker  *models.CashTrackerRecord // nil when no record exists for the date
}

// ShopStore is the persistence contract of the ledger engine. Implementations
// exist for postgres and in-memory storage.
//
//go:generate mockgen -destination=mocks/mock_shop_store.go -source=shop_store.go ShopStore
type ShopStore interface {
	// ReadDay returns transactions and credits whose created_at falls in
	// [start, end), expenses whose expense_date equals date, and the cash
	// tracker record for date, all read in one snapshot.
	ReadDay(ctx context.Context, date time.Time, start, end time.Time) (DayRecords, error)

	// RecordExchange persists an exchange transaction and, when credit is
	// non-nil, the attached credit movement plus the customer balance update,
	// as one atomic unit. Returns models.ErrCreditLimitExceed when the credit
	// would push the customer past their limit.
	RecordExchange(ctx context.Context, tx models.ExchangeTransaction, credit *models.CreditTransaction) error

	GetExchange(ctx context.Context, id string) (models.ExchangeTransaction, error)
	UpdateExchange(ctx context.Context, tx models.ExchangeTransaction) error
	DeleteExchange(ctx context.Context, id string) error

	// ApplyCreditPayment records a payment against a customer's outstanding
	// credit. The amount is clamped to the current balance inside the same
	// storage transaction that updates it; the returned record carries the
	// amount actually applied.
	ApplyCreditPayment(ctx context.Context, payment models.CreditTransaction) (models.CreditTransaction, error)

	SaveExpense(ctx context.Context, e models.Expense) error

	GetCustomer(ctx context.Context, id string) (models.Customer, error)
	SaveCustomer(ctx context.Context, c models.Customer) error

	GetCashTracker(ctx context.Context, date time.Time) (*models.CashTrackerRecord, error)
	SaveCashTracker(ctx context.Context, rec models.CashTrackerRecord) error
}
