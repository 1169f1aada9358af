package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"busbooking/internal/domain"
	"busbooking/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	amountPaise int64
	currency    string
	receipt     string
	order       map[string]any
	err         error
}

func (f *fakeGateway) CreateOrder(amountPaise int64, currency, receipt string) (map[string]any, error) {
	f.amountPaise = amountPaise
	f.currency = currency
	f.receipt = receipt
	return f.order, f.err
}

func newPaymentService(t *testing.T, gw *fakeGateway) (PaymentService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	svc := PaymentService{
		Gateway:     gw,
		Secret:      "test-secret",
		OrderRepo:   repositories.PaymentOrderRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func TestCreateOrderConvertsToPaise(t *testing.T) {
	gw := &fakeGateway{order: map[string]any{"id": "order_abc", "status": "created"}}
	svc, mock, done := newPaymentService(t, gw)
	defer done()

	mock.ExpectExec("INSERT INTO payment_orders").
		WithArgs("order_abc", int64(12), int64(1), int64(50000), "INR", "receipt_1_12").
		WillReturnResult(sqlmock.NewResult(1, 1))

	order, err := svc.CreateOrder(1, 12, 500)
	require.NoError(t, err)

	assert.Equal(t, int64(50000), gw.amountPaise)
	assert.Equal(t, "INR", gw.currency)
	assert.Equal(t, "receipt_1_12", gw.receipt)
	assert.Equal(t, "order_abc", order["id"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderRejectsBadAmount(t *testing.T) {
	gw := &fakeGateway{}
	svc, _, done := newPaymentService(t, gw)
	defer done()

	_, err := svc.CreateOrder(1, 12, 0)
	assert.True(t, domain.IsValidation(err), "expected validation error, got %v", err)
}

func expectOwnedBooking(mock sqlmock.Sqlmock, bookingID, userID int64) {
	mock.ExpectQuery("SELECT id, user_id, bus_id, seat_id, is_paid").
		WithArgs(bookingID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "bus_id", "seat_id", "is_paid", "created_at"}).
			AddRow(bookingID, userID, 3, 7, false, "2026-01-01 09:00:00"))
}

func TestMarkPaidTrustedModeFlipsFlag(t *testing.T) {
	gw := &fakeGateway{}
	svc, mock, done := newPaymentService(t, gw)
	defer done()

	expectOwnedBooking(mock, 12, 1)
	mock.ExpectExec("UPDATE bookings SET is_paid = 1").
		WithArgs(int64(12), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.MarkPaid(1, 12, "", ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaidNotFoundForOtherUser(t *testing.T) {
	gw := &fakeGateway{}
	svc, mock, done := newPaymentService(t, gw)
	defer done()

	mock.ExpectQuery("SELECT id, user_id, bus_id, seat_id, is_paid").
		WithArgs(int64(12), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "bus_id", "seat_id", "is_paid", "created_at"}))

	err := svc.MarkPaid(2, 12, "", "")
	assert.True(t, domain.IsNotFound(err), "expected not found, got %v", err)
}

func TestMarkPaidVerifiesSignature(t *testing.T) {
	gw := &fakeGateway{}
	svc, mock, done := newPaymentService(t, gw)
	defer done()

	expectOwnedBooking(mock, 12, 1)
	mock.ExpectQuery("SELECT id, order_id, booking_id, user_id, amount_paise").
		WithArgs(int64(12), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "booking_id", "user_id", "amount_paise", "currency", "receipt"}).
			AddRow(1, "order_abc", 12, 1, 50000, "INR", "receipt_1_12"))
	mock.ExpectExec("UPDATE bookings SET is_paid = 1").
		WithArgs(int64(12), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mac := hmac.New(sha256.New, []byte("test-secret"))
	mac.Write([]byte("order_abc|pay_xyz"))
	sig := hex.EncodeToString(mac.Sum(nil))

	require.NoError(t, svc.MarkPaid(1, 12, "pay_xyz", sig))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaidRejectsBadSignature(t *testing.T) {
	gw := &fakeGateway{}
	svc, mock, done := newPaymentService(t, gw)
	defer done()

	expectOwnedBooking(mock, 12, 1)
	mock.ExpectQuery("SELECT id, order_id, booking_id, user_id, amount_paise").
		WithArgs(int64(12), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "booking_id", "user_id", "amount_paise", "currency", "receipt"}).
			AddRow(1, "order_abc", 12, 1, 50000, "INR", "receipt_1_12"))

	err := svc.MarkPaid(1, 12, "pay_xyz", "forged")
	assert.True(t, domain.IsValidation(err), "expected validation error, got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
