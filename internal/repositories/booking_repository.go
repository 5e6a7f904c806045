package repositories

import (
	"context"
	"database/sql"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain/models"
)

const bookingColumns = `id, route_id, passenger_name, email, seats,
	DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s')`

// BookingRepository wraps DB access for the append-only bookings ledger.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanBooking(row interface{ Scan(dest ...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.RouteID, &b.PassengerName, &b.Email, &b.Seats, &b.CreatedAt)
	return b, err
}

// GetByID loads one booking. Returns sql.ErrNoRows when the id is unknown.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	return scanBooking(row)
}

// ListByRoute returns the ledger entries for one route, oldest first.
func (r BookingRepository) ListByRoute(routeID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE route_id=?
		ORDER BY id ASC`, routeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// BookedSeats sums the seats booked against a route; zero bookings sum to 0.
func (r BookingRepository) BookedSeats(routeID int64) (int, error) {
	var booked int
	err := r.db().QueryRow(
		`SELECT COALESCE(SUM(seats), 0) FROM bookings WHERE route_id=?`, routeID,
	).Scan(&booked)
	return booked, err
}

// BookedSeatsTx is BookedSeats inside the booking transaction, so the sum
// is read under the same route lock as the insert that follows it.
func (r BookingRepository) BookedSeatsTx(ctx context.Context, tx *sql.Tx, routeID int64) (int, error) {
	var booked int
	err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(seats), 0) FROM bookings WHERE route_id=?`, routeID,
	).Scan(&booked)
	return booked, err
}

// CreateTx appends a booking within the caller's transaction. The id and
// the server-assigned created_at are populated on the provided record.
func (r BookingRepository) CreateTx(ctx context.Context, tx *sql.Tx, b *models.Booking) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (route_id, passenger_name, email, seats) VALUES (?, ?, ?, ?)`,
		b.RouteID, b.PassengerName, b.Email, b.Seats,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id

	// query back the created_at default assigned by the server
	return tx.QueryRowContext(ctx,
		`SELECT DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s') FROM bookings WHERE id=?`, id,
	).Scan(&b.CreatedAt)
}
