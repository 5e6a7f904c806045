package handlers

import (
	"net/http"
	"strconv"

	"busbooking/internal/http/middleware"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /book/:id — book seats on a route.
//
// The seats field goes through the service untouched when numeric; a
// non-numeric value is passed through as 0 so the seat-count validation
// rejects it rather than masking it with a default.
func CreateBooking(c *gin.Context) {
	routeID, ok := idParam(c)
	if !ok {
		return
	}

	name := c.PostForm("name")
	email := c.PostForm("email")
	seats, _ := strconv.Atoi(c.DefaultPostForm("seats", "1"))

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.Book(c.Request.Context(), routeID, name, email, seats)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// GET /booking/:id/e-ticket — inline PDF e-ticket for a booking.
func GetBookingETicket(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	svc := services.TicketService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateETicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
