package models

// Bus holds route and schedule metadata. Seats belong to exactly one bus
// and are deleted with it.
type Bus struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Number        string `json:"number"`
	RouteFrom     string `json:"route_from"`
	RouteTo       string `json:"route_to"`
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`
	PricePerSeat  int64  `json:"price_per_seat"`
}

// Seat is a bookable unit on a bus. IsBooked flips only through the
// booking workflow.
type Seat struct {
	ID         int64  `json:"id"`
	BusID      int64  `json:"bus_id"`
	SeatNumber string `json:"seat_number"`
	IsBooked   bool   `json:"is_booked"`
}
