package services

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

// fallbackCities pre-populates the search form even on an empty catalog.
var fallbackCities = []string{
	"Bengaluru", "Chennai", "Hyderabad", "Mumbai", "Pune", "Delhi", "Jaipur",
}

// RouteAvailability is a catalog entry together with its live seat count.
type RouteAvailability struct {
	models.Route
	AvailableSeats int `json:"available_seats"`
}

// CatalogService serves the read side of the catalog: search, suggestions,
// route details and the admin listing.
type CatalogService struct {
	Routes    repositories.RouteRepository
	Bookings  repositories.BookingRepository
	RequestID string
}

// Search filters the catalog by source, destination and travel date.
// City inputs are trimmed and matched case-insensitively; the date must
// parse as YYYY-MM-DD or no search runs at all.
func (s CatalogService) Search(source, destination, date string) ([]RouteAvailability, error) {
	source = utils.NormalizeSpace(source)
	destination = utils.NormalizeSpace(destination)

	parsed, err := utils.ParseDate(date)
	if err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "invalid travel date, expected YYYY-MM-DD", Err: err}
	}

	routes, err := s.Routes.Search(source, destination, utils.FormatDate(parsed))
	if err != nil {
		return nil, domain.InternalError{Msg: "route search failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "catalog", "search",
		fmt.Sprintf("source=%s destination=%s date=%s hits=%d", source, destination, utils.FormatDate(parsed), len(routes)))
	return s.withAvailability(routes)
}

// CitySuggestions merges the distinct catalog cities with the fixed
// fallback set, deduplicated and sorted.
func (s CatalogService) CitySuggestions() ([]string, error) {
	names, err := s.Routes.CityNames()
	if err != nil {
		return nil, domain.InternalError{Msg: "city lookup failed", Err: err}
	}

	seen := map[string]bool{}
	merged := []string{}
	for _, c := range append(names, fallbackCities...) {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		merged = append(merged, c)
	}
	sort.Strings(merged)
	return merged, nil
}

// GetRoute returns one catalog entry with its current availability.
func (s CatalogService) GetRoute(id int64) (RouteAvailability, error) {
	route, err := s.Routes.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return RouteAvailability{}, domain.NotFoundError{Resource: "route", Err: err}
	}
	if err != nil {
		return RouteAvailability{}, domain.InternalError{Msg: "route lookup failed", Err: err}
	}

	available, err := availableSeats(s.Bookings, route)
	if err != nil {
		return RouteAvailability{}, err
	}
	return RouteAvailability{Route: route, AvailableSeats: available}, nil
}

// ListAll returns the whole catalog ordered by travel date then departure
// time, with availability per route, for the admin view.
func (s CatalogService) ListAll() ([]RouteAvailability, error) {
	routes, err := s.Routes.ListAll()
	if err != nil {
		return nil, domain.InternalError{Msg: "route listing failed", Err: err}
	}
	return s.withAvailability(routes)
}

// BookingsForRoute returns the ledger entries behind a route's
// availability figure, for the admin view.
func (s CatalogService) BookingsForRoute(routeID int64) ([]models.Booking, error) {
	if _, err := s.Routes.GetByID(routeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "route", Err: err}
		}
		return nil, domain.InternalError{Msg: "route lookup failed", Err: err}
	}

	bookings, err := s.Bookings.ListByRoute(routeID)
	if err != nil {
		return nil, domain.InternalError{Msg: "ledger lookup failed", Err: err}
	}
	return bookings, nil
}

func (s CatalogService) withAvailability(routes []models.Route) ([]RouteAvailability, error) {
	out := make([]RouteAvailability, 0, len(routes))
	for _, rt := range routes {
		available, err := availableSeats(s.Bookings, rt)
		if err != nil {
			return nil, err
		}
		out = append(out, RouteAvailability{Route: rt, AvailableSeats: available})
	}
	return out, nil
}

// availableSeats derives remaining capacity fresh from the ledger,
// floored at 0 so oversold historical data never reports negative seats.
func availableSeats(ledger repositories.BookingRepository, rt models.Route) (int, error) {
	booked, err := ledger.BookedSeats(rt.ID)
	if err != nil {
		return 0, domain.InternalError{Msg: "availability lookup failed", Err: err}
	}
	available := rt.TotalSeats - booked
	if available < 0 {
		available = 0
	}
	return available, nil
}
