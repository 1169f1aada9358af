package services

import (
	"fmt"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/payment"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

type PaymentService struct {
	Gateway     payment.Gateway
	Secret      string
	OrderRepo   repositories.PaymentOrderRepository
	BookingRepo repositories.BookingRepository
	RequestID   string
}

const currencyINR = "INR"

// CreateOrder asks the gateway for an order over the given rupee amount
// and records it server-side against the booking. The gateway order
// object is returned verbatim. The amount is not checked against any
// booking price; the gateway bills whatever the client asked for.
func (s PaymentService) CreateOrder(userID, bookingID, amountRupees int64) (map[string]any, error) {
	if amountRupees <= 0 {
		return nil, domain.ValidationError{Field: "amount", Msg: "must be positive"}
	}
	if bookingID <= 0 {
		return nil, domain.ValidationError{Field: "booking_id", Msg: "invalid id"}
	}

	amountPaise := utils.ToPaise(amountRupees)
	receipt := fmt.Sprintf("receipt_%d_%d", userID, bookingID)

	order, err := s.Gateway.CreateOrder(amountPaise, currencyINR, receipt)
	if err != nil {
		return nil, domain.InternalError{Msg: "gateway order creation failed", Err: err}
	}

	orderID, _ := order["id"].(string)
	if _, err := s.OrderRepo.Create(models.PaymentOrder{
		OrderID:     orderID,
		BookingID:   bookingID,
		UserID:      userID,
		AmountPaise: amountPaise,
		Currency:    currencyINR,
		Receipt:     receipt,
	}); err != nil {
		// The gateway order exists either way; losing the local record
		// only disables signature verification for this booking.
		utils.LogEvent(s.RequestID, "payment", "create_order", "failed to record order: "+err.Error())
	}

	utils.LogEvent(s.RequestID, "payment", "create_order",
		fmt.Sprintf("user_id=%d booking_id=%d amount_paise=%d order_id=%s", userID, bookingID, amountPaise, orderID))
	return order, nil
}

// MarkPaid flips is_paid on the caller's booking. When the client sends
// the checkout payment id and signature, the signature is verified
// against the recorded order before trusting the call. Without them the
// original trusting behavior is kept, logged loudly: nothing proves the
// payment actually happened.
func (s PaymentService) MarkPaid(userID, bookingID int64, paymentID, signature string) error {
	if bookingID <= 0 {
		return domain.ValidationError{Field: "booking_id", Msg: "invalid id"}
	}

	if _, err := s.BookingRepo.GetByIDForUser(bookingID, userID); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Msg: "failed to load booking", Err: err}
	}

	if paymentID != "" || signature != "" {
		order, err := s.OrderRepo.GetByBookingIDForUser(bookingID, userID)
		if err != nil {
			if domain.IsNotFound(err) {
				return domain.ValidationError{Field: "signature", Msg: "no order recorded for this booking"}
			}
			return domain.InternalError{Msg: "failed to load payment order", Err: err}
		}
		if !payment.VerifySignature(order.OrderID, paymentID, signature, s.Secret) {
			return domain.ValidationError{Field: "signature", Msg: "signature verification failed"}
		}
	} else {
		utils.LogEvent(s.RequestID, "payment", "mark_paid",
			fmt.Sprintf("booking_id=%d marked paid without gateway verification", bookingID))
	}

	if err := s.BookingRepo.MarkPaid(bookingID, userID); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Msg: "failed to mark booking paid", Err: err}
	}

	utils.LogEvent(s.RequestID, "payment", "mark_paid",
		fmt.Sprintf("user_id=%d booking_id=%d", userID, bookingID))
	return nil
}
