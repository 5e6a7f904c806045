package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses the :id path segment; responds 400 and returns false on
// anything that is not a positive integer.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "invalid id parameter", nil)
		return 0, false
	}
	return id, true
}
