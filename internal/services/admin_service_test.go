package services

import (
	"testing"

	"busbooking/internal/domain"
	"busbooking/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAddRouteRejectsInvalidDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := AdminService{Routes: repositories.RouteRepository{DB: db}}
	_, err = svc.AddRoute(RouteInput{
		Source:      "Goa",
		Destination: "Panaji",
		Date:        "2024-13-40",
		Departure:   "10:00",
		Arrival:     "13:30",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("invalid date must not create a route: %v", err)
	}
}

func TestAddRouteRejectsInvalidClock(t *testing.T) {
	svc := AdminService{}
	_, err := svc.AddRoute(RouteInput{
		Source:      "Goa",
		Destination: "Panaji",
		Date:        "2025-05-01",
		Departure:   "25:99",
		Arrival:     "13:30",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddRouteLenientDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bus_routes").
		WithArgs("Goa", "Panaji", "2025-05-01", "10:00", "13:30", 0.0, 40, "Express Bus").
		WillReturnResult(sqlmock.NewResult(7, 1))

	svc := AdminService{Routes: repositories.RouteRepository{DB: db}}
	route, err := svc.AddRoute(RouteInput{
		Source:      " Goa ",
		Destination: "Panaji",
		Date:        "2025-05-01",
		Departure:   "10:00",
		Arrival:     "13:30",
		Price:       "not-a-number",
		TotalSeats:  "",
		BusName:     "  ",
	})
	if err != nil {
		t.Fatalf("add route error: %v", err)
	}
	if route.ID != 7 {
		t.Fatalf("route id not assigned, got %d", route.ID)
	}
	if route.Price != 0 || route.TotalSeats != 40 || route.BusName != "Express Bus" {
		t.Fatalf("lenient defaults not applied: %+v", route)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeedSkipsExistingFixtures(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// first fixture already present, remaining three inserted
	mock.ExpectQuery("SELECT id FROM bus_routes").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	for i := 0; i < 3; i++ {
		mock.ExpectQuery("SELECT id FROM bus_routes").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectExec("INSERT INTO bus_routes").
			WillReturnResult(sqlmock.NewResult(int64(i+2), 1))
	}

	svc := AdminService{Routes: repositories.RouteRepository{DB: db}}
	added, err := svc.SeedSampleRoutes()
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}
	if added != 3 {
		t.Fatalf("expected 3 fixtures inserted, got %d", added)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCoerceHelpers(t *testing.T) {
	if got := coercePrice("699.5"); got != 699.5 {
		t.Fatalf("coercePrice parse failed, got %v", got)
	}
	if got := coercePrice(""); got != 0 {
		t.Fatalf("blank price should coerce to 0, got %v", got)
	}
	if got := coercePrice("-10"); got != 0 {
		t.Fatalf("negative price should coerce to 0, got %v", got)
	}
	if got := coerceSeats("36"); got != 36 {
		t.Fatalf("coerceSeats parse failed, got %d", got)
	}
	if got := coerceSeats("abc"); got != 40 {
		t.Fatalf("unparseable seats should default to 40, got %d", got)
	}
	if got := coerceSeats("-5"); got != 40 {
		t.Fatalf("negative seats should default to 40, got %d", got)
	}
}
