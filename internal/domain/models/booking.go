package models

// Booking is a confirmed reservation of one or more seats on a Route.
// Bookings are append-only; there is no cancellation flow, so a route's
// remaining availability is always total seats minus the ledger sum.
type Booking struct {
	ID            int64  `json:"id"`
	RouteID       int64  `json:"route_id"`
	PassengerName string `json:"passenger_name"`
	Email         string `json:"email"`
	Seats         int    `json:"seats"`
	CreatedAt     string `json:"created_at"` // YYYY-MM-DD HH:MM:SS
}
