package handlers

import (
	"net/http"

	"busbooking/internal/http/middleware"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /admin — full catalog ordered by travel date then departure time.
func ListRoutes(c *gin.Context) {
	svc := services.CatalogService{RequestID: middleware.GetRequestID(c)}
	routes, err := svc.ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// GET /admin/route/:id/bookings — the ledger behind one route.
func ListRouteBookings(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	svc := services.CatalogService{RequestID: middleware.GetRequestID(c)}
	bookings, err := svc.BookingsForRoute(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"route_id": id, "bookings": bookings})
}

// POST /admin — append a route to the catalog.
func CreateRoute(c *gin.Context) {
	in := services.RouteInput{
		Source:      c.PostForm("source"),
		Destination: c.PostForm("destination"),
		Date:        c.PostForm("date"),
		Departure:   c.PostForm("departure"),
		Arrival:     c.PostForm("arrival"),
		Price:       c.PostForm("price"),
		TotalSeats:  c.PostForm("total_seats"),
		BusName:     c.PostForm("bus_name"),
	}

	svc := services.AdminService{RequestID: middleware.GetRequestID(c)}
	route, err := svc.AddRoute(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"route": route})
}
