package services

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders PDF e-tickets for confirmed bookings.
type TicketService struct {
	Bookings  repositories.BookingRepository
	Routes    repositories.RouteRepository
	RequestID string
	Loader    func(int64) (ticketData, error)
}

type ticketData struct {
	BookingID     int64
	PassengerName string
	Email         string
	Seats         int
	Source        string
	Destination   string
	TravelDate    string
	DepartureTime string
	ArrivalTime   string
	BusName       string
	PricePerSeat  float64
}

func (s TicketService) GenerateETicket(bookingID int64) ([]byte, string, error) {
	data, err := s.loadTicketData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "ticket", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(data)
}

func (s TicketService) loadTicketData(bookingID int64) (ticketData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	booking, err := s.Bookings.GetByID(bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return ticketData{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return ticketData{}, domain.InternalError{Msg: "booking lookup failed", Err: err}
	}

	route, err := s.Routes.GetByID(booking.RouteID)
	if err != nil {
		return ticketData{}, domain.InternalError{Msg: "route lookup failed", Err: err}
	}

	return ticketData{
		BookingID:     booking.ID,
		PassengerName: booking.PassengerName,
		Email:         booking.Email,
		Seats:         booking.Seats,
		Source:        route.Source,
		Destination:   route.Destination,
		TravelDate:    route.TravelDate,
		DepartureTime: route.DepartureTime,
		ArrivalTime:   route.ArrivalTime,
		BusName:       route.BusName,
		PricePerSeat:  route.Price,
	}, nil
}

func buildETicketPDF(d ticketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS E-TICKET")
	pdf.Ln(12)

	total := d.PricePerSeat * float64(d.Seats)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger    : %s", safe(d.PassengerName, "-")),
		fmt.Sprintf("Email        : %s", safe(d.Email, "-")),
		fmt.Sprintf("Route        : %s -> %s", safe(d.Source, "-"), safe(d.Destination, "-")),
		fmt.Sprintf("Date         : %s", safe(d.TravelDate, "-")),
		fmt.Sprintf("Departure    : %s", safe(d.DepartureTime, "-")),
		fmt.Sprintf("Arrival      : %s", safe(d.ArrivalTime, "-")),
		fmt.Sprintf("Bus          : %s", safe(d.BusName, "-")),
		fmt.Sprintf("Seats        : %d", d.Seats),
		fmt.Sprintf("Fare         : %s per seat", utils.FormatINR(d.PricePerSeat)),
		fmt.Sprintf("Total        : %s", utils.FormatINR(total)),
		fmt.Sprintf("Booking Ref  : BKG-%d", d.BookingID),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: seats are unassigned; board with this ticket and any valid ID.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", d.BookingID, safeFilenamePart(d.PassengerName))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	out := strings.Builder{}
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}
	if out.Len() == 0 {
		return "ticket"
	}
	return out.String()
}
