package handlers

import (
	"net/http"

	"busbooking/internal/http/middleware"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /route/:id — one route with its live availability.
func GetRouteDetail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	svc := services.CatalogService{RequestID: middleware.GetRequestID(c)}
	route, err := svc.GetRoute(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"route": route})
}
