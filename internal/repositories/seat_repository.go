package repositories

import (
	"database/sql"
	"errors"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

type SeatRepository struct {
	DB *sql.DB
}

func (r SeatRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SeatRepository) ListByBus(busID int64) ([]models.Seat, error) {
	rows, err := r.db().Query(`
		SELECT id, bus_id, seat_number, is_booked
		FROM seats
		WHERE bus_id = ?
		ORDER BY id ASC
	`, busID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Seat{}
	for rows.Next() {
		var s models.Seat
		if err := rows.Scan(&s.ID, &s.BusID, &s.SeatNumber, &s.IsBooked); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r SeatRepository) GetByID(id int64) (models.Seat, error) {
	var s models.Seat
	err := r.db().QueryRow(`
		SELECT id, bus_id, seat_number, is_booked
		FROM seats
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&s.ID, &s.BusID, &s.SeatNumber, &s.IsBooked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Seat{}, domain.NotFoundError{Resource: "seat", Err: err}
		}
		return models.Seat{}, err
	}
	return s, nil
}

// Reserve flips is_booked in a single conditional update so two
// concurrent requests can never both win the same seat. Zero affected
// rows means the seat is gone or already taken; the follow-up read
// tells which.
func (r SeatRepository) Reserve(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "seat_id", Msg: "invalid id"}
	}
	res, err := r.db().Exec(`UPDATE seats SET is_booked = 1 WHERE id = ? AND is_booked = 0`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 1 {
		return nil
	}

	var exists int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM seats WHERE id = ?`, id).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return domain.NotFoundError{Resource: "seat"}
	}
	return domain.ConflictError{Resource: "seat", Msg: "already booked"}
}

// Release reverts a reservation when booking creation fails after the
// seat flag was flipped.
func (r SeatRepository) Release(id int64) error {
	_, err := r.db().Exec(`UPDATE seats SET is_booked = 0 WHERE id = ?`, id)
	return err
}
