package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBookedSeatsSumsLedger(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COALESCE").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"booked"}).AddRow(17))

	repo := BookingRepository{DB: db}
	booked, err := repo.BookedSeats(3)
	if err != nil {
		t.Fatalf("BookedSeats error: %v", err)
	}
	if booked != 17 {
		t.Fatalf("expected 17 booked seats, got %d", booked)
	}
}

func TestListByRouteScansRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "route_id", "passenger_name", "email", "seats", "created_at"}).
			AddRow(1, 1, "A", "a@x.com", 2, "2025-01-10 09:00:00").
			AddRow(2, 1, "B", "b@x.com", 1, "2025-01-10 10:00:00"))

	repo := BookingRepository{DB: db}
	bookings, err := repo.ListByRoute(1)
	if err != nil {
		t.Fatalf("ListByRoute error: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if bookings[0].PassengerName != "A" || bookings[1].Seats != 1 {
		t.Fatalf("rows scanned incorrectly: %+v", bookings)
	}
}

func TestGetBookingByIDUnknown(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	repo := BookingRepository{DB: db}
	if _, err := repo.GetByID(42); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}
