package services

import (
	"strings"
	"testing"
)

func TestTicketServiceGenerate(t *testing.T) {
	loader := func(id int64) (ticketData, error) {
		return ticketData{
			BookingID:     id,
			PassengerName: "Tester",
			Email:         "tester@example.com",
			Seats:         2,
			Source:        "Bengaluru",
			Destination:   "Chennai",
			TravelDate:    "2025-01-15",
			DepartureTime: "08:30",
			ArrivalTime:   "14:00",
			BusName:       "Kaveri Express",
			PricePerSeat:  699,
		}, nil
	}

	svc := TicketService{Loader: loader}

	pdf, filename, err := svc.GenerateETicket(1)
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateETicket returned empty data")
	}
	if !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart("A. Kumar"); got != "A__Kumar" {
		t.Fatalf("unexpected sanitized name %q", got)
	}
	if got := safeFilenamePart("   "); got != "ticket" {
		t.Fatalf("blank name should fall back, got %q", got)
	}
}
