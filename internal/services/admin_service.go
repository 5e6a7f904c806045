package services

import (
	"fmt"
	"strconv"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

const (
	defaultTotalSeats = 40
	defaultBusName    = "Express Bus"
)

// RouteInput carries the raw admin form fields before coercion.
type RouteInput struct {
	Source      string
	Destination string
	Date        string
	Departure   string
	Arrival     string
	Price       string
	TotalSeats  string
	BusName     string
}

// AdminService appends entries to the route catalog.
type AdminService struct {
	Routes    repositories.RouteRepository
	RequestID string
}

// AddRoute validates date/time fields strictly and coerces the numeric
// fields leniently: an absent or unparseable price becomes 0 and an absent
// seat count becomes 40, matching the permissive admin form behavior.
func (s AdminService) AddRoute(in RouteInput) (models.Route, error) {
	date, err := utils.ParseDate(in.Date)
	if err != nil {
		return models.Route{}, domain.ValidationError{Msg: "invalid date/time format", Err: err}
	}
	departure, err := utils.ParseClock(in.Departure)
	if err != nil {
		return models.Route{}, domain.ValidationError{Msg: "invalid date/time format", Err: err}
	}
	arrival, err := utils.ParseClock(in.Arrival)
	if err != nil {
		return models.Route{}, domain.ValidationError{Msg: "invalid date/time format", Err: err}
	}

	busName := utils.NormalizeSpace(in.BusName)
	if busName == "" {
		busName = defaultBusName
	}

	route := models.Route{
		Source:        utils.NormalizeSpace(in.Source),
		Destination:   utils.NormalizeSpace(in.Destination),
		TravelDate:    utils.FormatDate(date),
		DepartureTime: departure.Format("15:04"),
		ArrivalTime:   arrival.Format("15:04"),
		Price:         coercePrice(in.Price),
		TotalSeats:    coerceSeats(in.TotalSeats),
		BusName:       busName,
	}

	created, err := s.Routes.Create(route)
	if err != nil {
		return models.Route{}, domain.InternalError{Msg: "route insert failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "admin", "add_route",
		fmt.Sprintf("route_id=%d %s->%s %s", created.ID, created.Source, created.Destination, created.TravelDate))
	return created, nil
}

// SeedSampleRoutes inserts the fixture catalog for today, skipping any
// fixture already present with identical source/destination/date/departure.
// Returns the number of routes actually inserted.
func (s AdminService) SeedSampleRoutes() (int, error) {
	today := utils.Today()
	fixtures := []models.Route{
		{Source: "Bengaluru", Destination: "Chennai", TravelDate: today, DepartureTime: "08:30", ArrivalTime: "14:00", Price: 699, TotalSeats: 40, BusName: "Kaveri Express"},
		{Source: "Bengaluru", Destination: "Hyderabad", TravelDate: today, DepartureTime: "21:00", ArrivalTime: "06:00", Price: 999, TotalSeats: 42, BusName: "Night Rider"},
		{Source: "Mumbai", Destination: "Pune", TravelDate: today, DepartureTime: "07:00", ArrivalTime: "09:30", Price: 299, TotalSeats: 36, BusName: "Deccan Queen"},
		{Source: "Delhi", Destination: "Jaipur", TravelDate: today, DepartureTime: "06:15", ArrivalTime: "11:00", Price: 549, TotalSeats: 45, BusName: "Pink City Cruiser"},
	}

	added := 0
	for _, f := range fixtures {
		exists, err := s.Routes.Exists(f.Source, f.Destination, f.TravelDate, f.DepartureTime)
		if err != nil {
			return added, domain.InternalError{Msg: "seed lookup failed", Err: err}
		}
		if exists {
			continue
		}
		if _, err := s.Routes.Create(f); err != nil {
			return added, domain.InternalError{Msg: "seed insert failed", Err: err}
		}
		added++
	}

	utils.LogEvent(s.RequestID, "admin", "seed", fmt.Sprintf("inserted=%d", added))
	return added, nil
}

func coercePrice(raw string) float64 {
	v, err := strconv.ParseFloat(utils.TrimOrEmpty(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func coerceSeats(raw string) int {
	v, err := strconv.Atoi(utils.TrimOrEmpty(raw))
	if err != nil || v < 0 {
		return defaultTotalSeats
	}
	return v
}
