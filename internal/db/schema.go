package db

import (
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(191) NOT NULL DEFAULT '',
		username VARCHAR(191) NOT NULL,
		email VARCHAR(191) NOT NULL,
		phone VARCHAR(32) NOT NULL DEFAULT '',
		password_hash VARCHAR(191) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_username (username),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS buses (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(191) NOT NULL DEFAULT '',
		number VARCHAR(64) NOT NULL DEFAULT '',
		route_from VARCHAR(191) NOT NULL DEFAULT '',
		route_to VARCHAR(191) NOT NULL DEFAULT '',
		departure_date VARCHAR(10) NOT NULL DEFAULT '',
		departure_time VARCHAR(8) NOT NULL DEFAULT '',
		price_per_seat BIGINT NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS seats (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		bus_id BIGINT NOT NULL,
		seat_number VARCHAR(16) NOT NULL,
		is_booked TINYINT(1) NOT NULL DEFAULT 0,
		UNIQUE KEY uq_seats_bus_seat (bus_id, seat_number),
		CONSTRAINT fk_seats_bus FOREIGN KEY (bus_id) REFERENCES buses(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		bus_id BIGINT NOT NULL,
		seat_id BIGINT NOT NULL,
		is_paid TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_bookings_user (user_id),
		KEY idx_bookings_seat (seat_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS payment_orders (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		order_id VARCHAR(64) NOT NULL,
		booking_id BIGINT NOT NULL,
		user_id BIGINT NOT NULL,
		amount_paise BIGINT NOT NULL,
		currency VARCHAR(8) NOT NULL DEFAULT 'INR',
		receipt VARCHAR(191) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_payment_orders_order (order_id),
		KEY idx_payment_orders_booking (booking_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables the app needs. Statements are
// idempotent so this runs at every startup.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
