package services

import (
	"fmt"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

type BookingService struct {
	SeatRepo    repositories.SeatRepository
	BookingRepo repositories.BookingRepository
	RequestID   string
}

// BookSeat reserves the seat for the user and records the booking.
// The reservation is a single conditional update, so concurrent
// requests for the same seat resolve to exactly one winner.
func (s BookingService) BookSeat(userID, seatID int64) (models.Booking, error) {
	if err := s.SeatRepo.Reserve(seatID); err != nil {
		if domain.IsNotFound(err) || domain.IsConflict(err) || domain.IsValidation(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, domain.InternalError{Msg: "failed to reserve seat", Err: err}
	}

	seat, err := s.SeatRepo.GetByID(seatID)
	if err != nil {
		s.release(seatID)
		return models.Booking{}, domain.InternalError{Msg: "failed to load seat", Err: err}
	}

	booking, err := s.BookingRepo.Create(userID, seat.BusID, seat.ID)
	if err != nil {
		// Seat is flipped but has no booking; undo the flip so the
		// invariant (booked seat <=> one booking) survives the failure.
		s.release(seatID)
		return models.Booking{}, domain.InternalError{Msg: "failed to create booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "book_seat",
		fmt.Sprintf("user_id=%d seat_id=%d booking_id=%d", userID, seatID, booking.ID))
	return booking, nil
}

func (s BookingService) release(seatID int64) {
	if err := s.SeatRepo.Release(seatID); err != nil {
		utils.LogEvent(s.RequestID, "booking", "release",
			fmt.Sprintf("seat_id=%d left booked without a booking, manual fix needed: %v", seatID, err))
	}
}

// ListUserBookings returns targetID's bookings, but only to targetID.
func (s BookingService) ListUserBookings(callerID, targetID int64) ([]models.Booking, error) {
	if callerID != targetID {
		return nil, domain.UnauthorizedError{Msg: "cannot view another user's bookings"}
	}
	list, err := s.BookingRepo.ListByUser(targetID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list bookings", Err: err}
	}
	return list, nil
}
