package repositories

import (
	"context"
	"database/sql"
	"strings"

	intconfig "busbooking/internal/config"
	"busbooking/internal/domain/models"
)

// routeColumns formats DATE/TIME columns as the strings the domain model
// carries, so callers never juggle driver-specific time types.
const routeColumns = `id, source, destination,
	DATE_FORMAT(travel_date, '%Y-%m-%d'),
	TIME_FORMAT(departure_time, '%H:%i'),
	TIME_FORMAT(arrival_time, '%H:%i'),
	price, total_seats, bus_name`

// RouteRepository wraps DB access for the bus_routes catalog.
type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanRoute(row interface{ Scan(dest ...any) error }) (models.Route, error) {
	var rt models.Route
	err := row.Scan(
		&rt.ID, &rt.Source, &rt.Destination,
		&rt.TravelDate, &rt.DepartureTime, &rt.ArrivalTime,
		&rt.Price, &rt.TotalSeats, &rt.BusName,
	)
	return rt, err
}

// GetByID loads one route. Returns sql.ErrNoRows when the id is unknown.
func (r RouteRepository) GetByID(id int64) (models.Route, error) {
	row := r.db().QueryRow(`SELECT `+routeColumns+` FROM bus_routes WHERE id=? LIMIT 1`, id)
	return scanRoute(row)
}

// Search matches case-insensitively on source/destination and exactly on
// the travel date, ordered by departure time ascending.
func (r RouteRepository) Search(source, destination, date string) ([]models.Route, error) {
	rows, err := r.db().Query(`
		SELECT `+routeColumns+`
		FROM bus_routes
		WHERE LOWER(source) = ? AND LOWER(destination) = ? AND travel_date = ?
		ORDER BY departure_time ASC`,
		strings.ToLower(source), strings.ToLower(destination), date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRoutes(rows)
}

// ListAll returns the whole catalog ordered for the admin view.
func (r RouteRepository) ListAll() ([]models.Route, error) {
	rows, err := r.db().Query(`
		SELECT ` + routeColumns + `
		FROM bus_routes
		ORDER BY travel_date ASC, departure_time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRoutes(rows)
}

func collectRoutes(rows *sql.Rows) ([]models.Route, error) {
	out := []models.Route{}
	for rows.Next() {
		rt, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

// CityNames returns the deduplicated union of catalog sources and
// destinations. UNION already removes duplicates server-side.
func (r RouteRepository) CityNames() ([]string, error) {
	rows, err := r.db().Query(`
		SELECT source FROM bus_routes
		UNION
		SELECT destination FROM bus_routes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, err
		}
		out = append(out, city)
	}
	return out, rows.Err()
}

// Create appends a new route and returns it with its assigned id.
func (r RouteRepository) Create(rt models.Route) (models.Route, error) {
	res, err := r.db().Exec(`
		INSERT INTO bus_routes (source, destination, travel_date, departure_time, arrival_time, price, total_seats, bus_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rt.Source, rt.Destination, rt.TravelDate, rt.DepartureTime, rt.ArrivalTime,
		rt.Price, rt.TotalSeats, rt.BusName,
	)
	if err != nil {
		return models.Route{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Route{}, err
	}
	rt.ID = id
	return rt, nil
}

// Exists reports whether a route with identical source, destination,
// travel date and departure time is already present (seed dedup).
func (r RouteRepository) Exists(source, destination, date, departure string) (bool, error) {
	var id int64
	err := r.db().QueryRow(`
		SELECT id FROM bus_routes
		WHERE source=? AND destination=? AND travel_date=? AND departure_time=?
		LIMIT 1`,
		source, destination, date, departure,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// TotalSeatsTx reads a route's capacity under a row lock so concurrent
// bookings on the same route serialize until the caller commits.
func (r RouteRepository) TotalSeatsTx(ctx context.Context, tx *sql.Tx, id int64) (int, error) {
	var total int
	err := tx.QueryRowContext(ctx,
		`SELECT total_seats FROM bus_routes WHERE id=? FOR UPDATE`, id,
	).Scan(&total)
	return total, err
}
