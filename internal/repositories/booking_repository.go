package repositories

import (
	"database/sql"
	"errors"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BookingRepository) Create(userID, busID, seatID int64) (models.Booking, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings (user_id, bus_id, seat_id, is_paid, created_at)
		VALUES (?, ?, ?, 0, NOW())
	`, userID, busID, seatID)
	if err != nil {
		return models.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, err
	}
	return models.Booking{
		ID:     id,
		UserID: userID,
		BusID:  busID,
		SeatID: seatID,
		IsPaid: false,
	}, nil
}

// ListByUser returns the user's bookings in insertion order.
func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT id, user_id, bus_id, seat_id, is_paid, COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM bookings
		WHERE user_id = ?
		ORDER BY id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.BusID, &b.SeatID, &b.IsPaid, &b.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByIDForUser fetches a booking only when it belongs to userID.
func (r BookingRepository) GetByIDForUser(id, userID int64) (models.Booking, error) {
	var b models.Booking
	err := r.db().QueryRow(`
		SELECT id, user_id, bus_id, seat_id, is_paid, COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM bookings
		WHERE id = ? AND user_id = ?
		LIMIT 1
	`, id, userID).Scan(&b.ID, &b.UserID, &b.BusID, &b.SeatID, &b.IsPaid, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, err
	}
	return b, nil
}

// MarkPaid flips is_paid for the caller's own booking. The owner filter
// sits in the WHERE clause so another user's booking id reads as absent.
func (r BookingRepository) MarkPaid(id, userID int64) error {
	res, err := r.db().Exec(`UPDATE bookings SET is_paid = 1 WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}
