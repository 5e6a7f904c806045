package handlers

import (
	"net/http"

	intconfig "busbooking/internal/config"
	intdb "busbooking/internal/db"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "bus booking backend running"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database unreachable: " + err.Error()})
		return
	}

	for _, table := range []string{"bus_routes", "bookings"} {
		if !intdb.HasTable(intconfig.DB, table) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing table: " + table})
			return
		}
	}
	if !intdb.HasColumn(intconfig.DB, "bookings", "route_id") {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "bookings table missing route_id column"})
		return
	}

	var routes int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM bus_routes").Scan(&routes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "routes_in_db": routes})
}
