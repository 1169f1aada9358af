package handlers

import (
	"net/http"

	"busbooking/internal/domain"
	"busbooking/internal/http/middleware"
	"busbooking/internal/repositories"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		SeatRepo:    repositories.SeatRepository{},
		BookingRepo: repositories.BookingRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

type bookSeatRequest struct {
	SeatID int64 `json:"seat_id" binding:"required"`
}

// POST /api/bookings
func BookSeat(c *gin.Context) {
	var req bookSeatRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := bookingService(c).BookSeat(middleware.GetUserID(c), req.SeatID)
	if err != nil {
		// Invalid seat id and already-booked both answer 400 on this
		// endpoint; clients retry with another seat either way.
		switch {
		case domain.IsNotFound(err):
			respondError(c, http.StatusBadRequest, "not_found", "invalid seat id", nil)
		case domain.IsConflict(err):
			respondError(c, http.StatusBadRequest, "conflict", "seat already booked", nil)
		default:
			RespondDomainError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GET /api/users/:id/bookings
func GetUserBookings(c *gin.Context) {
	targetID, ok := IDParamOrError(c, "id")
	if !ok {
		return
	}

	bookings, err := bookingService(c).ListUserBookings(middleware.GetUserID(c), targetID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id/e-ticket
func GetBookingETicket(c *gin.Context) {
	id, ok := IDParamOrError(c, "id")
	if !ok {
		return
	}

	svc := services.TicketService{
		BookingRepo: repositories.BookingRepository{},
		BusRepo:     repositories.BusRepository{},
		SeatRepo:    repositories.SeatRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateETicket(middleware.GetUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
