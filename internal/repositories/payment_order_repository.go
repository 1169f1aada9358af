package repositories

import (
	"database/sql"
	"errors"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

type PaymentOrderRepository struct {
	DB *sql.DB
}

func (r PaymentOrderRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PaymentOrderRepository) Create(o models.PaymentOrder) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO payment_orders (order_id, booking_id, user_id, amount_paise, currency, receipt, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`, o.OrderID, o.BookingID, o.UserID, o.AmountPaise, o.Currency, o.Receipt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByBookingIDForUser returns the most recent order recorded for the
// caller's booking.
func (r PaymentOrderRepository) GetByBookingIDForUser(bookingID, userID int64) (models.PaymentOrder, error) {
	var o models.PaymentOrder
	err := r.db().QueryRow(`
		SELECT id, order_id, booking_id, user_id, amount_paise, currency, receipt
		FROM payment_orders
		WHERE booking_id = ? AND user_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, bookingID, userID).Scan(&o.ID, &o.OrderID, &o.BookingID, &o.UserID, &o.AmountPaise, &o.Currency, &o.Receipt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PaymentOrder{}, domain.NotFoundError{Resource: "payment order", Err: err}
		}
		return models.PaymentOrder{}, err
	}
	return o, nil
}
