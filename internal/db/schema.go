package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"
)

type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

const createBusRoutes = `
CREATE TABLE IF NOT EXISTS bus_routes (
	id             BIGINT AUTO_INCREMENT PRIMARY KEY,
	source         VARCHAR(80)  NOT NULL,
	destination    VARCHAR(80)  NOT NULL,
	travel_date    DATE         NOT NULL,
	departure_time TIME         NOT NULL,
	arrival_time   TIME         NOT NULL,
	price          DOUBLE       NOT NULL DEFAULT 0,
	total_seats    INT          NOT NULL DEFAULT 40,
	bus_name       VARCHAR(100) NOT NULL DEFAULT 'Express Bus'
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

const createBookings = `
CREATE TABLE IF NOT EXISTS bookings (
	id             BIGINT AUTO_INCREMENT PRIMARY KEY,
	route_id       BIGINT       NOT NULL,
	passenger_name VARCHAR(120) NOT NULL,
	email          VARCHAR(120) NOT NULL,
	seats          INT          NOT NULL,
	created_at     DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT fk_bookings_route FOREIGN KEY (route_id) REFERENCES bus_routes(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// EnsureSchema creates the catalog and ledger tables when missing.
// Routes and bookings are append-only, so no migrations beyond creation exist.
func EnsureSchema(dbh *sql.DB) error {
	for _, stmt := range []string{createBusRoutes, createBookings} {
		if _, err := dbh.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)

	if err != nil {
		// bad connection -> false, caller handles
		if errors.Is(err, driver.ErrBadConn) {
			return false
		}
		return false
	}
	return name.Valid && name.String != ""
}

func HasColumn(q QueryRower, table, column string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column).Scan(&name)

	if err != nil {
		if errors.Is(err, driver.ErrBadConn) {
			return false
		}
		return false
	}
	return name.Valid && name.String != ""
}
