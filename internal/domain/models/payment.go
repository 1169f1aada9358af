package models

// PaymentOrder is the server-side record of an order created at the
// gateway, binding it to the booking it nominally pays for.
type PaymentOrder struct {
	ID          int64  `json:"id"`
	OrderID     string `json:"order_id"`
	BookingID   int64  `json:"booking_id"`
	UserID      int64  `json:"user_id"`
	AmountPaise int64  `json:"amount_paise"`
	Currency    string `json:"currency"`
	Receipt     string `json:"receipt"`
}
