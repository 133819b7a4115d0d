package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/smaite/karobar-ledger/internal/config"
	"github.com/smaite/karobar-ledger/internal/denomination"
	"github.com/smaite/karobar-ledger/internal/ledger"
	"github.com/smaite/karobar-ledger/internal/models"
)

// Handlers is the HTTP facade over the ledger engine.
type Handlers struct {
	svc *ledger.Service
	log *logrus.Logger
}

func NewHandlers(svc *ledger.Service, log *logrus.Logger) *Handlers {
	return &Handlers{svc: svc, log: log}
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type exchangeRequest struct {
	Type              models.TransactionType `json:"transaction_type" binding:"required"`
	FromCurrency      models.Currency        `json:"from_currency" binding:"required"`
	ToCurrency        models.Currency        `json:"to_currency" binding:"required"`
	FromAmount        decimal.Decimal        `json:"from_amount" binding:"required"`
	ToAmount          decimal.Decimal        `json:"to_amount" binding:"required"`
	ExchangeRate      decimal.Decimal        `json:"exchange_rate"`
	PaymentMethod     models.PaymentMethod   `json:"payment_method" binding:"required"`
	IsCredit          bool                   `json:"is_credit"`
	IsPersonalAccount bool                   `json:"is_personal_account"`
	CustomerID        string                 `json:"customer_id"`
	BankAccountID     string                 `json:"bank_account_id"`
	Notes             string                 `json:"notes"`
}

func (r exchangeRequest) toModel() models.ExchangeTransaction {
	return models.ExchangeTransaction{
		Type:              r.Type,
		FromCurrency:      r.FromCurrency,
		ToCurrency:        r.ToCurrency,
		FromAmount:        r.FromAmount,
		ToAmount:          r.ToAmount,
		ExchangeRate:      r.ExchangeRate,
		PaymentMethod:     r.PaymentMethod,
		IsCredit:          r.IsCredit,
		IsPersonalAccount: r.IsPersonalAccount,
		CustomerID:        r.CustomerID,
		BankAccountID:     r.BankAccountID,
		Notes:             r.Notes,
	}
}

func (h *Handlers) CreateTransaction(c *gin.Context) {
	var req exchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.svc.RecordExchange(c.Request.Context(), currentActor(c), req.toModel())
	if err != nil {
		h.fail(c, "CreateTransaction", err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (h *Handlers) UpdateTransaction(c *gin.Context) {
	var req exchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tx := req.toModel()
	tx.ID = c.Param("id")
	tx.StaffID = currentActor(c).ID

	if err := h.svc.UpdateExchange(c.Request.Context(), currentActor(c), tx); err != nil {
		h.fail(c, "UpdateTransaction", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handlers) DeleteTransaction(c *gin.Context) {
	if err := h.svc.DeleteExchange(c.Request.Context(), currentActor(c), c.Param("id")); err != nil {
		h.fail(c, "DeleteTransaction", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type creditPaymentRequest struct {
	CustomerID    string               `json:"customer_id" binding:"required"`
	Amount        decimal.Decimal      `json:"amount" binding:"required"`
	Currency      models.Currency      `json:"currency" binding:"required"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
	Notes         string               `json:"notes"`
}

func (h *Handlers) CreateCreditPayment(c *gin.Context) {
	var req creditPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recorded, err := h.svc.ApplyCreditPayment(c.Request.Context(), currentActor(c), models.CreditTransaction{
		CustomerID:    req.CustomerID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		h.fail(c, "CreateCreditPayment", err)
		return
	}
	c.JSON(http.StatusCreated, recorded)
}

type expenseRequest struct {
	Description string                 `json:"description" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Currency    models.Currency        `json:"currency" binding:"required"`
	Category    models.ExpenseCategory `json:"category" binding:"required"`
	ExpenseDate string                 `json:"expense_date" binding:"required"` // YYYY-MM-DD
	ReceiptRef  string                 `json:"receipt_ref"`
	Notes       string                 `json:"notes"`
}

func (h *Handlers) CreateExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.ParseInLocation(time.DateOnly, req.ExpenseDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expense_date must be YYYY-MM-DD"})
		return
	}

	expense, err := h.svc.RecordExpense(c.Request.Context(), currentActor(c), models.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Category:    req.Category,
		ExpenseDate: date,
		ReceiptRef:  req.ReceiptRef,
		Notes:       req.Notes,
	})
	if err != nil {
		h.fail(c, "CreateExpense", err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// cashRequest carries either ready totals or raw note counts; counts win
// when present and are reduced server-side.
type cashRequest struct {
	Date      string             `json:"date" binding:"required"` // YYYY-MM-DD
	NPR       decimal.Decimal    `json:"npr"`
	INR       decimal.Decimal    `json:"inr"`
	NPRCounts denomination.Count `json:"npr_counts"`
	INRCounts denomination.Count `json:"inr_counts"`
	Notes     string             `json:"notes"`
}

func (r cashRequest) totals() (date time.Time, npr, inr decimal.Decimal, err error) {
	date, err = time.ParseInLocation(time.DateOnly, r.Date, time.Local)
	if err != nil {
		return date, npr, inr, errors.New("date must be YYYY-MM-DD")
	}
	npr, inr = r.NPR, r.INR
	if len(r.NPRCounts) > 0 {
		npr, err = denomination.Total(r.NPRCounts, denomination.NPRFaceValues, "")
		if err != nil {
			return date, npr, inr, err
		}
	}
	if len(r.INRCounts) > 0 {
		inr, err = denomination.Total(r.INRCounts, denomination.INRFaceValues, denomination.CoinsKey)
		if err != nil {
			return date, npr, inr, err
		}
	}
	return date, npr, inr, nil
}

func (h *Handlers) OpenDay(c *gin.Context) {
	var req cashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, npr, inr, err := req.totals()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.svc.OpenDay(c.Request.Context(), currentActor(c), date, models.CashTrackerRecord{
		OpeningNPR: npr,
		OpeningINR: inr,
		Notes:      req.Notes,
	})
	if err != nil {
		h.fail(c, "OpenDay", err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *Handlers) CloseDay(c *gin.Context) {
	var req cashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, npr, inr, err := req.totals()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := h.svc.CloseDay(c.Request.Context(), currentActor(c), date, npr, inr, req.Notes)
	if err != nil {
		h.fail(c, "CloseDay", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handlers) DailyLedger(c *gin.Context) {
	raw := c.Query("date")
	date, err := time.ParseInLocation(time.DateOnly, raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter must be YYYY-MM-DD"})
		return
	}

	snap, err := h.svc.BuildDailyLedger(c.Request.Context(), date, nil)
	if err != nil {
		h.fail(c, "DailyLedger", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// DenominationBreakdown pre-fills the cash count form from a previously
// stored scalar total. Best-effort greedy split; it will not reproduce the
// note mix that was physically counted.
func (h *Handlers) DenominationBreakdown(c *gin.Context) {
	currency := models.Currency(c.Query("currency"))
	if !currency.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency must be NPR or INR"})
		return
	}
	total, err := decimal.NewFromString(c.Query("total"))
	if err != nil || total.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total must be a non-negative number"})
		return
	}

	counts := denomination.Breakdown(total, denomination.FaceValues(currency), currency == models.INR)
	c.JSON(http.StatusOK, gin.H{"currency": currency, "total": total, "counts": counts})
}

type customerRequest struct {
	Name        string          `json:"name" binding:"required"`
	Phone       string          `json:"phone"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Notes       string          `json:"notes"`
}

func (h *Handlers) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := h.svc.CreateCustomer(c.Request.Context(), models.Customer{
		Name:        req.Name,
		Phone:       req.Phone,
		CreditLimit: req.CreditLimit,
		Notes:       req.Notes,
	})
	if err != nil {
		h.fail(c, "CreateCustomer", err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *Handlers) GetCustomer(c *gin.Context) {
	customer, err := h.svc.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "GetCustomer", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// fail maps domain errors onto HTTP statuses.
func (h *Handlers) fail(c *gin.Context, funcName string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ledger.ErrNotAllowed):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrCustomerNotFound),
		errors.Is(err, models.ErrExchangeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ledger.ErrSuperseded):
		status = http.StatusConflict
	case errors.Is(err, models.ErrCreditLimitExceed),
		errors.Is(err, models.ErrNoOutstandingCredit):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrNonPositiveAmount),
		errors.Is(err, models.ErrSameCurrency),
		errors.Is(err, models.ErrUnknownCurrency),
		errors.Is(err, models.ErrBankAccountNeeded),
		errors.Is(err, models.ErrCustomerRequired),
		errors.Is(err, models.ErrCreditCurrencyRequired):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		config.LogError(h.log, "api", funcName, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
