package models

// Route is a scheduled bus offering between two cities on a specific date.
// Routes are immutable once created and are never updated or deleted.
type Route struct {
	ID            int64   `json:"id"`
	Source        string  `json:"source"`
	Destination   string  `json:"destination"`
	TravelDate    string  `json:"travel_date"`    // YYYY-MM-DD
	DepartureTime string  `json:"departure_time"` // HH:MM
	ArrivalTime   string  `json:"arrival_time"`   // HH:MM
	Price         float64 `json:"price"`
	TotalSeats    int     `json:"total_seats"`
	BusName       string  `json:"bus_name"`
}
