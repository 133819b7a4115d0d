// Package memory is the in-memory ShopStore used by tests and local
// development. One mutex guards all state, which also gives ReadDay its
// snapshot consistency for free.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/smaite/karobar-ledger/internal/daywindow"
	"github.com/smaite/karobar-ledger/internal/interfaces"
	"github.com/smaite/karobar-ledger/internal/models"
)

type Store struct {
	mu           sync.Mutex
	transactions map[string]models.ExchangeTransaction
	credits      []models.CreditTransaction
	expenses     []models.Expense
	trackers     map[string]models.CashTrackerRecord // keyed by YYYY-MM-DD
	customers    map[string]models.Customer
}

func NewStore() *Store {
	return &Store{
		transactions: make(map[string]models.ExchangeTransaction),
		trackers:     make(map[string]models.CashTrackerRecord),
		customers:    make(map[string]models.Customer),
	}
}

func dateKey(date time.Time) string {
	return date.Format(time.DateOnly)
}

func (s *Store) ReadDay(ctx context.Context, date time.Time, start, end time.Time) (interfaces.DayRecords, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec interfaces.DayRecords
	for _, tx := range s.transactions {
		if inWindow(tx.CreatedAt, start, end) {
			rec.Transactions = append(rec.Transactions, tx)
		}
	}
	for _, ct := range s.credits {
		if inWindow(ct.CreatedAt, start, end) {
			rec.Credits = append(rec.Credits, ct)
		}
	}
	for _, e := range s.expenses {
		if daywindow.Midnight.SameDate(e.ExpenseDate, date) {
			rec.Expenses = append(rec.Expenses, e)
		}
	}
	if t, ok := s.trackers[dateKey(date)]; ok {
		copied := t
		rec.CashTracker = &copied
	}
	return rec, nil
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func (s *Store) RecordExchange(ctx context.Context, tx models.ExchangeTransaction, credit *models.CreditTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if credit != nil {
		customer, ok := s.customers[credit.CustomerID]
		if !ok {
			return models.ErrCustomerNotFound
		}
		if !customer.CanBorrow(credit.Amount) {
			return models.ErrCreditLimitExceed
		}
		customer.CreditBalance = customer.CreditBalance.Add(credit.Amount)
		customer.UpdatedAt = time.Now()
		// All three writes land under the same lock, or none do.
		s.customers[credit.CustomerID] = customer
		s.credits = append(s.credits, *credit)
	}
	s.transactions[tx.ID] = tx
	return nil
}

func (s *Store) GetExchange(ctx context.Context, id string) (models.ExchangeTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.transactions[id]
	if !ok {
		return models.ExchangeTransaction{}, models.ErrExchangeNotFound
	}
	return tx, nil
}

func (s *Store) UpdateExchange(ctx context.Context, tx models.ExchangeTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[tx.ID]; !ok {
		return models.ErrExchangeNotFound
	}
	s.transactions[tx.ID] = tx
	return nil
}

func (s *Store) DeleteExchange(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return models.ErrExchangeNotFound
	}
	delete(s.transactions, id)
	return nil
}

func (s *Store) ApplyCreditPayment(ctx context.Context, payment models.CreditTransaction) (models.CreditTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[payment.CustomerID]
	if !ok {
		return models.CreditTransaction{}, models.ErrCustomerNotFound
	}
	if customer.CreditBalance.IsZero() {
		return models.CreditTransaction{}, models.ErrNoOutstandingCredit
	}

	payment.Amount = models.ClampPayment(customer.CreditBalance, payment.Amount)
	customer.CreditBalance = customer.CreditBalance.Sub(payment.Amount)
	customer.UpdatedAt = time.Now()
	s.customers[payment.CustomerID] = customer
	s.credits = append(s.credits, payment)
	return payment, nil
}

func (s *Store) SaveExpense(ctx context.Context, e models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
	return nil
}

func (s *Store) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return models.Customer{}, models.ErrCustomerNotFound
	}
	return c, nil
}

func (s *Store) SaveCustomer(ctx context.Context, c models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
	return nil
}

func (s *Store) GetCashTracker(ctx context.Context, date time.Time) (*models.CashTrackerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trackers[dateKey(date)]
	if !ok {
		return nil, nil
	}
	copied := t
	return &copied, nil
}

func (s *Store) SaveCashTracker(ctx context.Context, rec models.CashTrackerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trackers[dateKey(rec.Date)] = rec
	return nil
}

// Compile-time check: Store implements the ShopStore interface.
var _ interfaces.ShopStore = (*Store)(nil)
