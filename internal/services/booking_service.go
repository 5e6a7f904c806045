package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

// BookingService owns the only mutating operation on the ledger.
type BookingService struct {
	Routes    repositories.RouteRepository
	Bookings  repositories.BookingRepository
	DB        *sql.DB
	RequestID string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// Availability returns the remaining bookable seats for a route, always >= 0.
func (s BookingService) Availability(routeID int64) (int, error) {
	route, err := s.Routes.GetByID(routeID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.NotFoundError{Resource: "route", Err: err}
	}
	if err != nil {
		return 0, domain.InternalError{Msg: "route lookup failed", Err: err}
	}
	return availableSeats(s.Bookings, route)
}

// Book validates and commits a booking against current availability.
//
// The availability check and the insert run in one transaction that locks
// the route row first, so two concurrent bookings on the same route cannot
// both pass the check and oversell the bus.
func (s BookingService) Book(ctx context.Context, routeID int64, name, email string, seats int) (models.Booking, error) {
	if _, err := s.Routes.GetByID(routeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "route", Err: err}
		}
		return models.Booking{}, domain.InternalError{Msg: "route lookup failed", Err: err}
	}

	name = utils.TrimOrEmpty(name)
	email = utils.TrimOrEmpty(email)
	if name == "" || email == "" {
		return models.Booking{}, domain.ValidationError{Msg: "missing contact info"}
	}
	if seats < 1 {
		return models.Booking{}, domain.ValidationError{Field: "seats", Msg: "invalid seat count"}
	}

	tx, err := s.db().BeginTx(ctx, nil)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "could not start booking transaction", Err: err}
	}

	total, err := s.Routes.TotalSeatsTx(ctx, tx, routeID)
	if err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "route", Err: err}
		}
		return models.Booking{}, domain.InternalError{Msg: "route lock failed", Err: err}
	}

	booked, err := s.Bookings.BookedSeatsTx(ctx, tx, routeID)
	if err != nil {
		_ = tx.Rollback()
		return models.Booking{}, domain.InternalError{Msg: "availability lookup failed", Err: err}
	}

	available := total - booked
	if available < 0 {
		available = 0
	}
	if seats > available {
		_ = tx.Rollback()
		return models.Booking{}, domain.ValidationError{Field: "seats", Msg: "insufficient availability"}
	}

	booking := models.Booking{
		RouteID:       routeID,
		PassengerName: name,
		Email:         email,
		Seats:         seats,
	}
	if err := s.Bookings.CreateTx(ctx, tx, &booking); err != nil {
		_ = tx.Rollback()
		return models.Booking{}, domain.InternalError{Msg: "booking insert failed", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Msg: "booking commit failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d route_id=%d seats=%d", booking.ID, routeID, seats))
	return booking, nil
}
