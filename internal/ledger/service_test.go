package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smaite/karobar-ledger/internal/daywindow"
	"github.com/smaite/karobar-ledger/internal/interfaces"
	mock_interfaces "github.com/smaite/karobar-ledger/internal/interfaces/mocks"
	"github.com/smaite/karobar-ledger/internal/ledger"
	"github.com/smaite/karobar-ledger/internal/models"
)

var (
	owner = models.Actor{ID: "staff-1", Role: models.RoleOwner}
	staff = models.Actor{ID: "staff-2", Role: models.RoleStaff}
)

type capturedEvent struct {
	topic string
	event any
}

// fakePublisher records published events in order.
type fakePublisher struct {
	events []capturedEvent
	err    error
}

func (f *fakePublisher) Publish(topic string, event any) error {
	f.events = append(f.events, capturedEvent{topic: topic, event: event})
	return f.err
}

func TestBuildDailyLedgerUsesBoundaryWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_interfaces.NewMockShopStore(ctrl)
	boundary := daywindow.Boundary{DayEndHour: 2, Location: time.UTC}
	svc := ledger.NewService(store, ledger.WithBoundary(boundary))

	wantStart, wantEnd := boundary.Window(day)
	store.EXPECT().
		ReadDay(gomock.Any(), day, wantStart, wantEnd).
		Return(interfaces.DayRecords{
			CashTracker: &models.CashTrackerRecord{OpeningNPR: dec(500), OpeningINR: dec(100)},
		}, nil)

	snap, err := svc.BuildDailyLedger(context.Background(), day, nil)
	require.NoError(t, err)
	assert.Equal(t, wantStart, snap.WindowStart)
	assert.Equal(t, wantEnd, snap.WindowEnd)
	assert.True(t, snap.Currencies[models.NPR].Opening.Equal(dec(500)))
	assert.EqualValues(t, 1, snap.Sequence)
}

func TestBuildDailyLedgerOverrideTracker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_interfaces.NewMockShopStore(ctrl)
	svc := ledger.NewService(store)

	store.EXPECT().ReadDay(gomock.Any(), day, gomock.Any(), gomock.Any()).
		Return(interfaces.DayRecords{
			CashTracker: &models.CashTrackerRecord{OpeningNPR: dec(500)},
		}, nil)

	// The closing form previews farak against unsaved counted totals.
	override := &models.CashTrackerRecord{
		OpeningNPR: dec(500), ClosingNPR: dec(450), IsClosed: true,
	}
	snap, err := svc.BuildDailyLedger(context.Background(), day, override)
	require.NoError(t, err)
	assert.True(t, snap.IsClosed)
	assert.True(t, snap.Currencies[models.NPR].Farak.Equal(dec(50)))
}

func TestBuildDailyLedgerDiscardsStaleResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_interfaces.NewMockShopStore(ctrl)
	svc := ledger.NewService(store)

	release := make(chan struct{})
	firstReading := make(chan struct{})

	gomock.InOrder(
		// First request blocks mid-read until a newer one has started.
		store.EXPECT().ReadDay(gomock.Any(), day, gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, time.Time, time.Time, time.Time) (interfaces.DayRecords, error) {
				close(firstReading)
				<-release
				return interfaces.DayRecords{}, nil
			}),
		store.EXPECT().ReadDay(gomock.Any(), day, gomock.Any(), gomock.Any()).
			Return(interfaces.DayRecords{}, nil),
	)

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.BuildDailyLedger(context.Background(), day, nil)
		errCh <- err
	}()

	<-firstReading
	_, err := svc.BuildDailyLedger(context.Background(), day, nil)
	require.NoError(t, err)

	close(release)
	assert.ErrorIs(t, <-errCh, ledger.ErrSuperseded)
}

func TestRecordExchangeCashSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_interfaces.NewMockShopStore(ctrl)
	publisher := &fakePublisher{}
	svc := ledger.NewService(store, ledger.WithPublisher(publisher))

	store.EXPECT().
		RecordExchange(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil)

	tx, err := svc.RecordExchange(context.Background(), staff, models.ExchangeTransaction{
		Type: models.Sell, FromCurrency: models.NPR, ToCurrency: models.INR,
		FromAmount: dec(1000), ToAmount: dec(625),
		PaymentMethod: models.PaymentCash,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, staff.ID, tx.StaffID)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, ledger.TopicExchangeRecorded, publisher.events[0].topic)
}

func TestRecordExchangeCreditSaleBuildsCreditRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_interfaces.NewMockShopStore(ctrl)
	svc := ledger.NewService(store)

	var gotCredit *models.CreditTransaction
	store.EXPECT().
		RecordExchange(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ context.Context, tx models.ExchangeTransaction, credit *models.CreditTransaction) error {
			gotCredit = credit
			return nil
		})

	tx, err := svc.RecordExchange(context.Background(), staff, models.ExchangeTransaction{
		Type: models.Sell, FromCurrency: models.NPR, ToCurrency: models.INR,
		FromAmount: dec(2000), ToAmount: dec(1250),
		PaymentMethod: models.PaymentCash,
		IsCredit:      true, CustomerID: "cust-1",
	})
	require.NoError(t, err)

	require.NotNil(t, gotCredit)
	assert.Equal(t, models.CreditGiven, gotCredit.Type)
	assert.Equal(t, "cust-1", gotCredit.CustomerID)
	// The customer still owes the side they did not pay: from_amount in
	// from_currency.
	assert.True(t, gotCredit.Amount.Equal(dec(2000)))
	assert.Equal(t, models.NPR, gotCredit.Currency)
	assert.Equal(t, tx.ID, gotCredit.ExchangeTxID)
}

func TestRecordExchangeRejectsInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_interfaces.NewMockShopStore(ctrl)
	svc := ledger.NewService(store)

	tests := []struct {
		name string
		tx   models.ExchangeTransaction
		want error
	}{
		{
			name: "same currency",
			tx: models.ExchangeTransaction{
				Type: models.Sell, FromCurrency: models.NPR, ToCurrency: models.NPR,
				FromAmount: dec(100), ToAmount: dec(100), PaymentMethod: models.PaymentCash,
			},
			want: models.ErrSameCurrency,
		},
		{
			name: "non-positive amount",
			tx: models.ExchangeTransaction{
				Type: models.Sell, FromCurrency: models.NPR, ToCurrency: models.INR,
				FromAmount: dec(0), ToAmount: dec(100), PaymentMethod: models.PaymentCash,
			},
			want: models.ErrNonPositiveAmount,
		},
		{
			name: "online without bank account",
			tx: models.ExchangeTransaction{
				Type: models.Sell, FromCurrency: models.NPR, ToCurrency: models.INR,
				FromAmount: dec(100), ToAmount: dec(62), PaymentMethod: models.PaymentOnline,
			},
			want: models.ErrBankAccountNeeded,
		},
		{
			name: "credit without customer",
			tx: models.ExchangeTransaction{
				Type: models.Sell, FromCurrency: models.NPR, ToCurrency: models.INR,
				FromAmount: dec(100), ToAmount: dec(62), PaymentMethod: models.PaymentCash,
				IsCredit: true,
			},
			want: models.ErrCustomerRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordExchange(context.Background(), staff, tt.tx)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateExchangeRoleGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_interfaces.NewMockShopStore(ctrl)
	svc := ledger.NewService(store)

	err := svc.UpdateExchange(context.Background(), staff, models.ExchangeTransaction{ID: "tx-1"})
	assert.ErrorIs(t, err, ledger.ErrNotAllowed)

	err = svc.DeleteExchange(context.Background(), staff, "tx-1")
	assert.ErrorIs(t, err, ledger.ErrNotAllowed)

	manager := models.Actor{ID: "m-1", Role: models.RoleManager}
	err = svc.DeleteExchange(context.Background(), manager, "tx-1")
	assert.ErrorIs(t, err, ledger.ErrNotAllowed)

	store.EXPECT().DeleteExchange(gomock.Any(), "tx-1").Return(nil)
	assert.NoError(t, svc.DeleteExchange(context.Background(), owner, "tx-1"))
}

func TestCloseDayPublishesFarak(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_interfaces.NewMockShopStore(ctrl)
	publisher := &fakePublisher{}
	svc := ledger.NewService(store, ledger.WithPublisher(publisher), ledger.WithBoundary(daywindow.Boundary{Location: time.UTC}))

	tracker := models.CashTrackerRecord{
		ID: "ct-1", Date: day,
		OpeningNPR: dec(10000), OpeningINR: dec(5000),
	}
	store.EXPECT().GetCashTracker(gomock.Any(), day).Return(&tracker, nil)

	var saved models.CashTrackerRecord
	store.EXPECT().SaveCashTracker(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.CashTrackerRecord) error {
			saved = rec
			return nil
		})
	store.EXPECT().ReadDay(gomock.Any(), day, gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time, time.Time, time.Time) (interfaces.DayRecords, error) {
			return interfaces.DayRecords{CashTracker: &saved}, nil
		})

	snap, err := svc.CloseDay(context.Background(), owner, day, dec(9950), dec(5000), "")
	require.NoError(t, err)

	assert.True(t, saved.IsClosed)
	require.NotNil(t, saved.ClosedAt)
	assert.True(t, snap.Currencies[models.NPR].Farak.Equal(dec(50)))

	require.Len(t, publisher.events, 1)
	assert.Equal(t, ledger.TopicDayClosed, publisher.events[0].topic)
}

func TestRecordExpenseStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_interfaces.NewMockShopStore(ctrl)
	svc := ledger.NewService(store)

	boom := errors.New("disk full")
	store.EXPECT().SaveExpense(gomock.Any(), gomock.Any()).Return(boom)

	_, err := svc.RecordExpense(context.Background(), staff, models.Expense{
		Description: "tea", Amount: dec(50), Currency: models.NPR,
		Category: models.ExpenseGeneral, ExpenseDate: day,
	})
	assert.ErrorIs(t, err, boom)
}
