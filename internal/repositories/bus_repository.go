package repositories

import (
	"database/sql"
	"fmt"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain/models"
)

type BusRepository struct {
	DB *sql.DB
}

func (r BusRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const busColumns = `id, name, number, route_from, route_to, departure_date, departure_time, price_per_seat`

func (r BusRepository) List() ([]models.Bus, error) {
	rows, err := r.db().Query(`SELECT ` + busColumns + ` FROM buses ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Bus{}
	for rows.Next() {
		var b models.Bus
		if err := rows.Scan(&b.ID, &b.Name, &b.Number, &b.RouteFrom, &b.RouteTo,
			&b.DepartureDate, &b.DepartureTime, &b.PricePerSeat); err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BusRepository) GetByID(id int64) (models.Bus, error) {
	if id <= 0 {
		return models.Bus{}, fmt.Errorf("invalid bus id")
	}
	var b models.Bus
	err := r.db().QueryRow(`SELECT `+busColumns+` FROM buses WHERE id = ? LIMIT 1`, id).
		Scan(&b.ID, &b.Name, &b.Number, &b.RouteFrom, &b.RouteTo,
			&b.DepartureDate, &b.DepartureTime, &b.PricePerSeat)
	if err != nil {
		return models.Bus{}, err
	}
	return b, nil
}

// Create inserts the bus and, when seatCount > 0, generates seats 1..N.
func (r BusRepository) Create(b models.Bus, seatCount int) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO buses (name, number, route_from, route_to, departure_date, departure_time, price_per_seat, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, b.Name, b.Number, b.RouteFrom, b.RouteTo, b.DepartureDate, b.DepartureTime, b.PricePerSeat)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i := 1; i <= seatCount; i++ {
		if _, err := r.db().Exec(`
			INSERT INTO seats (bus_id, seat_number, is_booked) VALUES (?, ?, 0)
		`, id, fmt.Sprintf("%d", i)); err != nil {
			return id, fmt.Errorf("create seat %d: %w", i, err)
		}
	}
	return id, nil
}

func (r BusRepository) Update(id int64, b models.Bus) error {
	res, err := r.db().Exec(`
		UPDATE buses
		SET name = ?, number = ?, route_from = ?, route_to = ?, departure_date = ?, departure_time = ?, price_per_seat = ?, updated_at = NOW()
		WHERE id = ?
	`, b.Name, b.Number, b.RouteFrom, b.RouteTo, b.DepartureDate, b.DepartureTime, b.PricePerSeat, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the bus; seats go with it via FK cascade.
func (r BusRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM buses WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
