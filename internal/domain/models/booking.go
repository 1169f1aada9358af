package models

// Booking links a user to one seat on one bus. Immutable after creation
// except for IsPaid.
type Booking struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	BusID     int64  `json:"bus_id"`
	SeatID    int64  `json:"seat_id"`
	IsPaid    bool   `json:"is_paid"`
	CreatedAt string `json:"created_at,omitempty"`
}
