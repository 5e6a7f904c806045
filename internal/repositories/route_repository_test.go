package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSearchScansOrderedRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("WHERE LOWER").WithArgs("mumbai", "pune", "2025-02-01").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "source", "destination", "travel_date", "departure_time", "arrival_time",
			"price", "total_seats", "bus_name",
		}).
			AddRow(1, "Mumbai", "Pune", "2025-02-01", "07:00", "09:30", 299.0, 36, "Deccan Queen").
			AddRow(2, "Mumbai", "Pune", "2025-02-01", "12:00", "14:30", 349.0, 40, "Express Bus"))

	repo := RouteRepository{DB: db}
	routes, err := repo.Search("Mumbai", "Pune", "2025-02-01")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(routes))
	}
	if routes[0].DepartureTime != "07:00" || routes[1].BusName != "Express Bus" {
		t.Fatalf("rows scanned incorrectly: %+v", routes)
	}
}

func TestExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM bus_routes").
		WithArgs("Mumbai", "Pune", "2025-02-01", "07:00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("SELECT id FROM bus_routes").
		WithArgs("Mumbai", "Pune", "2025-02-01", "12:00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := RouteRepository{DB: db}

	found, err := repo.Exists("Mumbai", "Pune", "2025-02-01", "07:00")
	if err != nil || !found {
		t.Fatalf("expected existing fixture to be found, got %v / %v", found, err)
	}

	found, err = repo.Exists("Mumbai", "Pune", "2025-02-01", "12:00")
	if err != nil || found {
		t.Fatalf("expected missing fixture to report false, got %v / %v", found, err)
	}
}
