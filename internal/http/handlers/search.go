package handlers

import (
	"net/http"

	"busbooking/internal/http/middleware"
	"busbooking/internal/services"
	"busbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET / — search form data: city suggestions plus today's date.
func SearchForm(c *gin.Context) {
	svc := services.CatalogService{RequestID: middleware.GetRequestID(c)}

	cities, err := svc.CitySuggestions()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cities": cities,
		"today":  utils.Today(),
	})
}

// POST / — search the catalog by source, destination and travel date.
func SearchRoutes(c *gin.Context) {
	source := c.PostForm("source")
	destination := c.PostForm("destination")
	date := c.PostForm("date")

	svc := services.CatalogService{RequestID: middleware.GetRequestID(c)}
	routes, err := svc.Search(source, destination, date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source":      utils.NormalizeSpace(source),
		"destination": utils.NormalizeSpace(destination),
		"travel_date": utils.TrimOrEmpty(date),
		"routes":      routes,
	})
}
