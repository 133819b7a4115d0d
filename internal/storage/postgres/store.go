// Package postgres is the production ShopStore on database/sql + lib/pq.
//
// ReadDay runs its four queries inside one repeatable-read transaction so
// every ledger computation sees a consistent snapshot. Multi-record writes
// (credit-backed exchanges, clamped credit payments) commit as single
// database transactions.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/smaite/karobar-ledger/internal/interfaces"
	"github.com/smaite/karobar-ledger/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects using a lib/pq connection string.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return NewStore(db), nil
}

const txColumns = `id, staff_id, transaction_type, from_currency, to_currency,
	from_amount, to_amount, exchange_rate, payment_method, is_credit,
	is_personal_account, customer_id, bank_account_id, notes, created_at, updated_at`

func (s *Store) ReadDay(ctx context.Context, date time.Time, start, end time.Time) (interfaces.DayRecords, error) {
	var rec interfaces.DayRecords

	dbTx, err := s.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return rec, err
	}
	defer dbTx.Rollback()

	rec.Transactions, err = s.listExchanges(ctx, dbTx, start, end)
	if err != nil {
		return rec, fmt.Errorf("list exchange transactions: %w", err)
	}
	rec.Credits, err = s.listCredits(ctx, dbTx, start, end)
	if err != nil {
		return rec, fmt.Errorf("list credit transactions: %w", err)
	}
	rec.Expenses, err = s.listExpenses(ctx, dbTx, date)
	if err != nil {
		return rec, fmt.Errorf("list expenses: %w", err)
	}
	rec.CashTracker, err = s.getCashTracker(ctx, dbTx, date)
	if err != nil {
		return rec, fmt.Errorf("get cash tracker: %w", err)
	}

	return rec, dbTx.Commit()
}

func (s *Store) listExchanges(ctx context.Context, dbTx *sql.Tx, start, end time.Time) ([]models.ExchangeTransaction, error) {
	query := `SELECT ` + txColumns + ` FROM exchange_transactions
	WHERE created_at >= $1 AND created_at < $2 ORDER BY created_at`

	rows, err := dbTx.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []models.ExchangeTransaction
	for rows.Next() {
		tx, err := scanExchange(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func scanExchange(row interface{ Scan(...any) error }) (models.ExchangeTransaction, error) {
	var tx models.ExchangeTransaction
	var customerID, bankAccountID, notes sql.NullString
	err := row.Scan(
		&tx.ID, &tx.StaffID, &tx.Type, &tx.FromCurrency, &tx.ToCurrency,
		&tx.FromAmount, &tx.ToAmount, &tx.ExchangeRate, &tx.PaymentMethod,
		&tx.IsCredit, &tx.IsPersonalAccount, &customerID, &bankAccountID,
		&notes, &tx.CreatedAt, &tx.UpdatedAt,
	)
	tx.CustomerID = customerID.String
	tx.BankAccountID = bankAccountID.String
	tx.Notes = notes.String
	return tx, err
}

func (s *Store) listCredits(ctx context.Context, dbTx *sql.Tx, start, end time.Time) ([]models.CreditTransaction, error) {
	const query = `SELECT id, customer_id, staff_id, transaction_type, amount, currency,
		exchange_transaction_id, payment_method, notes, created_at
	FROM credit_transactions
	WHERE created_at >= $1 AND created_at < $2 ORDER BY created_at`

	rows, err := dbTx.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var credits []models.CreditTransaction
	for rows.Next() {
		var ct models.CreditTransaction
		var exchangeTxID, notes sql.NullString
		if err := rows.Scan(
			&ct.ID, &ct.CustomerID, &ct.StaffID, &ct.Type, &ct.Amount,
			&ct.Currency, &exchangeTxID, &ct.PaymentMethod, &notes, &ct.CreatedAt,
		); err != nil {
			return nil, err
		}
		ct.ExchangeTxID = exchangeTxID.String
		ct.Notes = notes.String
		credits = append(credits, ct)
	}
	return credits, rows.Err()
}

func (s *Store) listExpenses(ctx context.Context, dbTx *sql.Tx, date time.Time) ([]models.Expense, error) {
	const query = `SELECT id, staff_id, description, amount, currency, category,
		expense_date, receipt_ref, notes, created_at
	FROM expenses WHERE expense_date = $1 ORDER BY created_at`

	rows, err := dbTx.QueryContext(ctx, query, date.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var receiptRef, notes sql.NullString
		if err := rows.Scan(
			&e.ID, &e.StaffID, &e.Description, &e.Amount, &e.Currency,
			&e.Category, &e.ExpenseDate, &receiptRef, &notes, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.ReceiptRef = receiptRef.String
		e.Notes = notes.String
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *Store) getCashTracker(ctx context.Context, q interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}, date time.Time) (*models.CashTrackerRecord, error) {
	const query = `SELECT id, staff_id, date, opening_npr, opening_inr,
		closing_npr, closing_inr, is_closed, closed_at, notes
	FROM cash_tracker WHERE date = $1 LIMIT 1`

	var rec models.CashTrackerRecord
	var closedAt sql.NullTime
	var notes sql.NullString
	err := q.QueryRowContext(ctx, query, date.Format(time.DateOnly)).Scan(
		&rec.ID, &rec.StaffID, &rec.Date, &rec.OpeningNPR, &rec.OpeningINR,
		&rec.ClosingNPR, &rec.ClosingINR, &rec.IsClosed, &closedAt, &notes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if closedAt.Valid {
		rec.ClosedAt = &closedAt.Time
	}
	rec.Notes = notes.String
	return &rec, nil
}

// RecordExchange inserts the transaction and, for credit sales, the credit
// row plus the customer balance update, in one database transaction. There
// is no partially-recorded state: either all three writes commit or none.
func (s *Store) RecordExchange(ctx context.Context, tx models.ExchangeTransaction, credit *models.CreditTransaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	if err = insertExchange(ctx, dbTx, tx); err != nil {
		return err
	}

	if credit != nil {
		var balance, limit decimal.Decimal
		balance, limit, err = lockCustomer(ctx, dbTx, credit.CustomerID)
		if err != nil {
			return err
		}
		probe := models.Customer{CreditBalance: balance, CreditLimit: limit}
		if !probe.CanBorrow(credit.Amount) {
			err = models.ErrCreditLimitExceed
			return err
		}
		if err = insertCredit(ctx, dbTx, *credit); err != nil {
			return err
		}
		const update = `UPDATE customers SET credit_balance = credit_balance + $1, updated_at = now() WHERE id = $2`
		if _, err = dbTx.ExecContext(ctx, update, credit.Amount, credit.CustomerID); err != nil {
			return err
		}
	}

	return dbTx.Commit()
}

func insertExchange(ctx context.Context, dbTx *sql.Tx, tx models.ExchangeTransaction) error {
	const query = `INSERT INTO exchange_transactions (` + txColumns + `)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`

	_, err := dbTx.ExecContext(ctx, query,
		tx.ID, tx.StaffID, tx.Type, tx.FromCurrency, tx.ToCurrency,
		tx.FromAmount, tx.ToAmount, tx.ExchangeRate, tx.PaymentMethod,
		tx.IsCredit, tx.IsPersonalAccount, nullable(tx.CustomerID),
		nullable(tx.BankAccountID), nullable(tx.Notes), tx.CreatedAt, tx.UpdatedAt)
	return err
}

func insertCredit(ctx context.Context, dbTx *sql.Tx, ct models.CreditTransaction) error {
	const query = `INSERT INTO credit_transactions
	(id, customer_id, staff_id, transaction_type, amount, currency,
	 exchange_transaction_id, payment_method, notes, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

	_, err := dbTx.ExecContext(ctx, query,
		ct.ID, ct.CustomerID, ct.StaffID, ct.Type, ct.Amount, ct.Currency,
		nullable(ct.ExchangeTxID), ct.PaymentMethod, nullable(ct.Notes), ct.CreatedAt)
	return err
}

func lockCustomer(ctx context.Context, dbTx *sql.Tx, id string) (balance, limit decimal.Decimal, err error) {
	const query = `SELECT credit_balance, credit_limit FROM customers WHERE id = $1 FOR UPDATE`
	err = dbTx.QueryRowContext(ctx, query, id).Scan(&balance, &limit)
	if err == sql.ErrNoRows {
		err = models.ErrCustomerNotFound
	}
	return balance, limit, err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *Store) GetExchange(ctx context.Context, id string) (models.ExchangeTransaction, error) {
	query := `SELECT ` + txColumns + ` FROM exchange_transactions WHERE id = $1`
	tx, err := scanExchange(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.ExchangeTransaction{}, fmt.Errorf("%s: %w", id, models.ErrExchangeNotFound)
	}
	return tx, err
}

func (s *Store) UpdateExchange(ctx context.Context, tx models.ExchangeTransaction) error {
	const query = `UPDATE exchange_transactions SET
		transaction_type=$2, from_currency=$3, to_currency=$4, from_amount=$5,
		to_amount=$6, exchange_rate=$7, payment_method=$8, is_credit=$9,
		is_personal_account=$10, customer_id=$11, bank_account_id=$12,
		notes=$13, updated_at=$14
	WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query,
		tx.ID, tx.Type, tx.FromCurrency, tx.ToCurrency, tx.FromAmount,
		tx.ToAmount, tx.ExchangeRate, tx.PaymentMethod, tx.IsCredit,
		tx.IsPersonalAccount, nullable(tx.CustomerID), nullable(tx.BankAccountID),
		nullable(tx.Notes), tx.UpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res, tx.ID)
}

func (s *Store) DeleteExchange(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM exchange_transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, models.ErrExchangeNotFound)
	}
	return nil
}

// ApplyCreditPayment clamps the payment to the outstanding balance and
// records it, all inside one transaction holding a row lock on the customer.
func (s *Store) ApplyCreditPayment(ctx context.Context, payment models.CreditTransaction) (models.CreditTransaction, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.CreditTransaction{}, err
	}
	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	balance, _, err := lockCustomer(ctx, dbTx, payment.CustomerID)
	if err != nil {
		return models.CreditTransaction{}, err
	}
	if balance.IsZero() {
		err = models.ErrNoOutstandingCredit
		return models.CreditTransaction{}, err
	}

	payment.Amount = models.ClampPayment(balance, payment.Amount)

	if err = insertCredit(ctx, dbTx, payment); err != nil {
		return models.CreditTransaction{}, err
	}
	const update = `UPDATE customers SET credit_balance = credit_balance - $1, updated_at = now() WHERE id = $2`
	if _, err = dbTx.ExecContext(ctx, update, payment.Amount, payment.CustomerID); err != nil {
		return models.CreditTransaction{}, err
	}
	if err = dbTx.Commit(); err != nil {
		return models.CreditTransaction{}, err
	}
	return payment, nil
}

func (s *Store) SaveExpense(ctx context.Context, e models.Expense) error {
	const query = `INSERT INTO expenses
	(id, staff_id, description, amount, currency, category, expense_date,
	 receipt_ref, notes, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.StaffID, e.Description, e.Amount, e.Currency, e.Category,
		e.ExpenseDate.Format(time.DateOnly), nullable(e.ReceiptRef),
		nullable(e.Notes), e.CreatedAt)
	return err
}

func (s *Store) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	const query = `SELECT id, name, phone, credit_balance, credit_limit, notes, created_at, updated_at
	FROM customers WHERE id = $1`

	var c models.Customer
	var phone, notes sql.NullString
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &phone, &c.CreditBalance, &c.CreditLimit,
		&notes, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Customer{}, models.ErrCustomerNotFound
	}
	c.Phone = phone.String
	c.Notes = notes.String
	return c, err
}

func (s *Store) SaveCustomer(ctx context.Context, c models.Customer) error {
	const query = `INSERT INTO customers
	(id, name, phone, credit_balance, credit_limit, notes, created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	ON CONFLICT (id) DO UPDATE SET
		name=EXCLUDED.name, phone=EXCLUDED.phone,
		credit_balance=EXCLUDED.credit_balance,
		credit_limit=EXCLUDED.credit_limit, notes=EXCLUDED.notes,
		updated_at=EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		c.ID, c.Name, nullable(c.Phone), c.CreditBalance, c.CreditLimit,
		nullable(c.Notes), c.CreatedAt, c.UpdatedAt)
	return err
}

func (s *Store) GetCashTracker(ctx context.Context, date time.Time) (*models.CashTrackerRecord, error) {
	return s.getCashTracker(ctx, s.db, date)
}

func (s *Store) SaveCashTracker(ctx context.Context, rec models.CashTrackerRecord) error {
	const query = `INSERT INTO cash_tracker
	(id, staff_id, date, opening_npr, opening_inr, closing_npr, closing_inr,
	 is_closed, closed_at, notes)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	ON CONFLICT (date) DO UPDATE SET
		staff_id=EXCLUDED.staff_id, opening_npr=EXCLUDED.opening_npr,
		opening_inr=EXCLUDED.opening_inr, closing_npr=EXCLUDED.closing_npr,
		closing_inr=EXCLUDED.closing_inr, is_closed=EXCLUDED.is_closed,
		closed_at=EXCLUDED.closed_at, notes=EXCLUDED.notes`

	var closedAt sql.NullTime
	if rec.ClosedAt != nil {
		closedAt = sql.NullTime{Time: *rec.ClosedAt, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.StaffID, rec.Date.Format(time.DateOnly),
		rec.OpeningNPR, rec.OpeningINR, rec.ClosingNPR, rec.ClosingINR,
		rec.IsClosed, closedAt, nullable(rec.Notes))
	return err
}

var _ interfaces.ShopStore = (*Store)(nil)
