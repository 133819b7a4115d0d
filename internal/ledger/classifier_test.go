package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/smaite/karobar-ledger/internal/ledger"
	"github.com/smaite/karobar-ledger/internal/models"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func sellNPR(from, to int64, method models.PaymentMethod, personal bool) models.ExchangeTransaction {
	return models.ExchangeTransaction{
		Type:              models.Sell,
		FromCurrency:      models.NPR,
		ToCurrency:        models.INR,
		FromAmount:        dec(from),
		ToAmount:          dec(to),
		PaymentMethod:     method,
		IsPersonalAccount: personal,
	}
}

func buyINR(from, to int64, method models.PaymentMethod) models.ExchangeTransaction {
	return models.ExchangeTransaction{
		Type:          models.Buy,
		FromCurrency:  models.INR,
		ToCurrency:    models.NPR,
		FromAmount:    dec(from),
		ToAmount:      dec(to),
		PaymentMethod: method,
	}
}

func TestClassifySellCash(t *testing.T) {
	totals := ledger.ClassifyTransactions([]models.ExchangeTransaction{
		sellNPR(1000, 625, models.PaymentCash, false),
	})

	npr := totals[models.NPR]
	assert.True(t, npr.ReceivedViaExchange.Equal(dec(1000)))
	assert.True(t, npr.CashReceived.Equal(dec(1000)))
	assert.True(t, npr.OnlineReceived.IsZero())
	assert.True(t, npr.StaffOwesPersonal.IsZero())
	assert.True(t, npr.PaidOutViaExchange.IsZero())

	inr := totals[models.INR]
	assert.True(t, inr.PaidOutViaExchange.Equal(dec(625)))
	assert.True(t, inr.ReceivedViaExchange.IsZero())
}

func TestClassifyBuyIsMirror(t *testing.T) {
	totals := ledger.ClassifyTransactions([]models.ExchangeTransaction{
		buyINR(625, 1000, models.PaymentCash),
	})

	inr := totals[models.INR]
	assert.True(t, inr.ReceivedViaExchange.Equal(dec(625)))
	assert.True(t, inr.CashReceived.Equal(dec(625)))

	npr := totals[models.NPR]
	assert.True(t, npr.PaidOutViaExchange.Equal(dec(1000)))
}

func TestClassifyOnlineAndPersonalAccount(t *testing.T) {
	totals := ledger.ClassifyTransactions([]models.ExchangeTransaction{
		sellNPR(2000, 1250, models.PaymentOnline, false),
		sellNPR(500, 312, models.PaymentOnline, true),
	})

	npr := totals[models.NPR]
	assert.True(t, npr.ReceivedViaExchange.Equal(dec(2500)))
	assert.True(t, npr.OnlineReceived.Equal(dec(2500)))
	assert.True(t, npr.CashReceived.IsZero())
	// Only the personal-wallet receipt is owed by staff.
	assert.True(t, npr.StaffOwesPersonal.Equal(dec(500)))
}

// Every transaction lands in exactly one "received" bucket and one "paid"
// bucket, and nothing is dropped or duplicated across the two currencies.
func TestBucketCompleteness(t *testing.T) {
	txs := []models.ExchangeTransaction{
		sellNPR(1000, 625, models.PaymentCash, false),
		sellNPR(3200, 2000, models.PaymentOnline, true),
		buyINR(625, 1000, models.PaymentCash),
		buyINR(8000, 12800, models.PaymentOnline),
	}
	totals := ledger.ClassifyTransactions(txs)

	wantReceived := map[models.Currency]decimal.Decimal{
		models.NPR: decimal.Zero, models.INR: decimal.Zero,
	}
	wantPaid := map[models.Currency]decimal.Decimal{
		models.NPR: decimal.Zero, models.INR: decimal.Zero,
	}
	for _, tx := range txs {
		wantReceived[tx.FromCurrency] = wantReceived[tx.FromCurrency].Add(tx.FromAmount)
		wantPaid[tx.ToCurrency] = wantPaid[tx.ToCurrency].Add(tx.ToAmount)
	}

	for _, c := range models.Currencies {
		got := totals[c]
		assert.True(t, got.ReceivedViaExchange.Equal(wantReceived[c]), "received %s", c)
		assert.True(t, got.PaidOutViaExchange.Equal(wantPaid[c]), "paid %s", c)
		// The cash/online split partitions the received total.
		assert.True(t, got.CashReceived.Add(got.OnlineReceived).Equal(got.ReceivedViaExchange),
			"cash+online != received for %s", c)
	}
}

func TestClassifyEmpty(t *testing.T) {
	totals := ledger.ClassifyTransactions(nil)
	for _, c := range models.Currencies {
		assert.True(t, totals[c].ReceivedViaExchange.IsZero())
		assert.True(t, totals[c].PaidOutViaExchange.IsZero())
	}
}
