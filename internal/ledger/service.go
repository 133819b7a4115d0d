package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/smaite/karobar-ledger/internal/daywindow"
	"github.com/smaite/karobar-ledger/internal/interfaces"
	"github.com/smaite/karobar-ledger/internal/models"
	"github.com/smaite/karobar-ledger/internal/models/events"
)

const (
	TopicExchangeRecorded = "exchange_recorded"
	TopicDayClosed        = "day_closed"
)

var (
	// ErrSuperseded is returned when a newer ledger computation started while
	// this one was reading. The stale result must be discarded, not shown.
	ErrSuperseded = errors.New("ledger computation superseded by a newer request")

	ErrNotAllowed = errors.New("actor role does not permit this operation")
)

// Service is the daily ledger engine. It owns the read/compute path
// (BuildDailyLedger) and the write paths whose effects the ledger aggregates.
type Service struct {
	store    interfaces.ShopStore
	events   interfaces.EventPublisher
	boundary daywindow.Boundary
	log      *logrus.Logger

	seq atomic.Uint64
}

// Option configures a Service.
type Option func(*Service)

// WithPublisher attaches an event publisher. Without one, events are skipped.
func WithPublisher(p interfaces.EventPublisher) Option {
	return func(s *Service) { s.events = p }
}

// WithBoundary overrides the default midnight day boundary.
func WithBoundary(b daywindow.Boundary) Option {
	return func(s *Service) { s.boundary = b }
}

// WithLogger overrides the default logger.
func WithLogger(l *logrus.Logger) Option {
	return func(s *Service) { s.log = l }
}

func NewService(store interfaces.ShopStore, opts ...Option) *Service {
	s := &Service{
		store:    store,
		boundary: daywindow.Midnight,
		log:      logrus.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildDailyLedger computes the LedgerSnapshot for a calendar date. All four
// inputs are read in one store snapshot, so a write landing mid-computation
// is either fully visible or not at all.
//
// When override is non-nil it replaces the stored cash tracker record, which
// lets the closing form preview Farak against not-yet-saved counted totals.
func (s *Service) BuildDailyLedger(ctx context.Context, date time.Time, override *models.CashTrackerRecord) (models.LedgerSnapshot, error) {
	seq := s.seq.Add(1)

	start, end := s.boundary.Window(date)
	records, err := s.store.ReadDay(ctx, date, start, end)
	if err != nil {
		return models.LedgerSnapshot{}, fmt.Errorf("could not read day records: %w", err)
	}

	// Last-write-wins guard: if a newer computation started while we were
	// reading, this result is stale and must not overwrite the newer one.
	if s.seq.Load() != seq {
		return models.LedgerSnapshot{}, ErrSuperseded
	}

	if override != nil {
		records.CashTracker = override
	}

	snap := Build(date, start, end, records)
	snap.Sequence = seq
	return snap, nil
}

// RecordExchange validates and persists an exchange transaction. For credit
// sales the transaction insert, credit_given row and customer balance update
// commit as one atomic unit.
func (s *Service) RecordExchange(ctx context.Context, actor models.Actor, tx models.ExchangeTransaction) (models.ExchangeTransaction, error) {
	now := time.Now()
	tx.ID = uuid.New().String()
	tx.StaffID = actor.ID
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := tx.Validate(); err != nil {
		return models.ExchangeTransaction{}, err
	}

	var credit *models.CreditTransaction
	if tx.IsCredit {
		// The customer takes to_currency now and still owes from_amount.
		credit = &models.CreditTransaction{
			ID:            uuid.New().String(),
			CustomerID:    tx.CustomerID,
			StaffID:       actor.ID,
			Type:          models.CreditGiven,
			Amount:        tx.FromAmount,
			Currency:      tx.FromCurrency,
			ExchangeTxID:  tx.ID,
			PaymentMethod: tx.PaymentMethod,
			CreatedAt:     now,
		}
		if err := credit.Validate(); err != nil {
			return models.ExchangeTransaction{}, err
		}
	}

	if err := s.store.RecordExchange(ctx, tx, credit); err != nil {
		return models.ExchangeTransaction{}, fmt.Errorf("could not record exchange: %w", err)
	}

	s.publish(TopicExchangeRecorded, events.ExchangeRecorded{
		TransactionID: tx.ID,
		Type:          tx.Type,
		FromCurrency:  tx.FromCurrency,
		ToCurrency:    tx.ToCurrency,
		FromAmount:    tx.FromAmount,
		ToAmount:      tx.ToAmount,
		IsCredit:      tx.IsCredit,
		StaffID:       tx.StaffID,
		OccurredAt:    now,
	})
	return tx, nil
}

// UpdateExchange replaces an existing transaction's fields. Owner and manager
// only. No history is kept.
func (s *Service) UpdateExchange(ctx context.Context, actor models.Actor, tx models.ExchangeTransaction) error {
	if !actor.CanEditTransactions() {
		return ErrNotAllowed
	}
	existing, err := s.store.GetExchange(ctx, tx.ID)
	if err != nil {
		return err
	}
	tx.CreatedAt = existing.CreatedAt
	tx.UpdatedAt = time.Now()
	if err := tx.Validate(); err != nil {
		return err
	}
	return s.store.UpdateExchange(ctx, tx)
}

// DeleteExchange removes a transaction. Owner only.
func (s *Service) DeleteExchange(ctx context.Context, actor models.Actor, id string) error {
	if !actor.CanDeleteTransactions() {
		return ErrNotAllowed
	}
	return s.store.DeleteExchange(ctx, id)
}

// ApplyCreditPayment records a customer paying down credit. The store clamps
// the applied amount to the outstanding balance; the returned record carries
// what was actually applied.
func (s *Service) ApplyCreditPayment(ctx context.Context, actor models.Actor, payment models.CreditTransaction) (models.CreditTransaction, error) {
	payment.ID = uuid.New().String()
	payment.StaffID = actor.ID
	payment.Type = models.PaymentReceived
	payment.CreatedAt = time.Now()
	if err := payment.Validate(); err != nil {
		return models.CreditTransaction{}, err
	}
	recorded, err := s.store.ApplyCreditPayment(ctx, payment)
	if err != nil {
		return models.CreditTransaction{}, err
	}
	return recorded, nil
}

// CreateCustomer registers a customer with a zero opening credit balance.
func (s *Service) CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	if c.Name == "" {
		return models.Customer{}, errors.New("customer name is required")
	}
	now := time.Now()
	c.ID = uuid.New().String()
	c.CreditBalance = decimal.Zero
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := s.store.SaveCustomer(ctx, c); err != nil {
		return models.Customer{}, fmt.Errorf("could not save customer: %w", err)
	}
	return c, nil
}

// GetCustomer loads a customer with their current credit balance.
func (s *Service) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	return s.store.GetCustomer(ctx, id)
}

// RecordExpense persists one deduction.
func (s *Service) RecordExpense(ctx context.Context, actor models.Actor, e models.Expense) (models.Expense, error) {
	e.ID = uuid.New().String()
	e.StaffID = actor.ID
	e.CreatedAt = time.Now()
	if err := e.Validate(); err != nil {
		return models.Expense{}, err
	}
	if err := s.store.SaveExpense(ctx, e); err != nil {
		return models.Expense{}, fmt.Errorf("could not save expense: %w", err)
	}
	return e, nil
}

// OpenDay saves the opening balances for a date. Re-opening an already
// tracked day overwrites the opening totals but keeps any closing state.
func (s *Service) OpenDay(ctx context.Context, actor models.Actor, date time.Time, rec models.CashTrackerRecord) (models.CashTrackerRecord, error) {
	existing, err := s.store.GetCashTracker(ctx, date)
	if err != nil {
		return models.CashTrackerRecord{}, err
	}
	if existing != nil {
		existing.OpeningNPR = rec.OpeningNPR
		existing.OpeningINR = rec.OpeningINR
		existing.Notes = rec.Notes
		rec = *existing
	} else {
		rec.ID = uuid.New().String()
	}
	rec.StaffID = actor.ID
	rec.Date = date
	if err := s.store.SaveCashTracker(ctx, rec); err != nil {
		return models.CashTrackerRecord{}, fmt.Errorf("could not save cash tracker: %w", err)
	}
	return rec, nil
}

// CloseDay stores the counted closing balances, flags the day closed and
// publishes the resulting Farak.
func (s *Service) CloseDay(ctx context.Context, actor models.Actor, date time.Time, closingNPR, closingINR decimal.Decimal, notes string) (models.LedgerSnapshot, error) {
	rec, err := s.store.GetCashTracker(ctx, date)
	if err != nil {
		return models.LedgerSnapshot{}, err
	}
	if rec == nil {
		rec = &models.CashTrackerRecord{ID: uuid.New().String(), Date: date}
	}
	now := time.Now()
	rec.StaffID = actor.ID
	rec.ClosingNPR = closingNPR
	rec.ClosingINR = closingINR
	rec.IsClosed = true
	rec.ClosedAt = &now
	if notes != "" {
		rec.Notes = notes
	}
	if err := s.store.SaveCashTracker(ctx, *rec); err != nil {
		return models.LedgerSnapshot{}, fmt.Errorf("could not save cash tracker: %w", err)
	}

	snap, err := s.BuildDailyLedger(ctx, date, nil)
	if err != nil {
		return models.LedgerSnapshot{}, err
	}

	s.publish(TopicDayClosed, events.DayClosed{
		Date:       date.Format(time.DateOnly),
		StaffID:    actor.ID,
		ClosingNPR: closingNPR,
		ClosingINR: closingINR,
		FarakNPR:   snap.Currencies[models.NPR].Farak,
		FarakINR:   snap.Currencies[models.INR].Farak,
		ClosedAt:   now,
	})
	return snap, nil
}

func (s *Service) publish(topic string, event any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(topic, event); err != nil {
		// Events are best-effort fan-out; the write already committed.
		s.log.WithFields(logrus.Fields{
			"module": "ledger",
			"topic":  topic,
		}).Error(err.Error())
	}
}
