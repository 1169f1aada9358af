package services

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"busbooking/internal/domain"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

// TicketService renders a PDF e-ticket for a booking.
type TicketService struct {
	BookingRepo repositories.BookingRepository
	BusRepo     repositories.BusRepository
	SeatRepo    repositories.SeatRepository
	RequestID   string
}

type ticketData struct {
	BookingID  int64
	BusName    string
	BusNumber  string
	RouteFrom  string
	RouteTo    string
	TripDate   string
	TripTime   string
	SeatNumber string
	Price      int64
	IsPaid     bool
}

// GenerateETicket builds the PDF for the caller's own booking. Another
// user's booking id reads as not found.
func (s TicketService) GenerateETicket(userID, bookingID int64) ([]byte, string, error) {
	booking, err := s.BookingRepo.GetByIDForUser(bookingID, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, "", err
		}
		return nil, "", domain.InternalError{Msg: "failed to load booking", Err: err}
	}

	data := ticketData{BookingID: booking.ID, IsPaid: booking.IsPaid}
	if bus, err := s.BusRepo.GetByID(booking.BusID); err == nil {
		data.BusName = bus.Name
		data.BusNumber = bus.Number
		data.RouteFrom = bus.RouteFrom
		data.RouteTo = bus.RouteTo
		data.TripDate = bus.DepartureDate
		data.TripTime = bus.DepartureTime
		data.Price = bus.PricePerSeat
	}
	if seat, err := s.SeatRepo.GetByID(booking.SeatID); err == nil {
		data.SeatNumber = seat.SeatNumber
	}

	utils.LogEvent(s.RequestID, "ticket", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(data)
}

func buildETicketPDF(d ticketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	status := "UNPAID"
	if d.IsPaid {
		status = "PAID"
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Code : #%d", d.BookingID),
		fmt.Sprintf("Bus          : %s (%s)", safe(d.BusName, "-"), safe(d.BusNumber, "-")),
		fmt.Sprintf("Route        : %s -> %s", safe(d.RouteFrom, "-"), safe(d.RouteTo, "-")),
		fmt.Sprintf("Date/Time    : %s %s", safe(d.TripDate, "-"), safe(d.TripTime, "-")),
		fmt.Sprintf("Seat         : %s", safe(d.SeatNumber, "-")),
		fmt.Sprintf("Fare         : %s", utils.FormatINR(d.Price)),
		fmt.Sprintf("Payment      : %s", status),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger (one seat). Please show it at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d.pdf", d.BookingID)
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
