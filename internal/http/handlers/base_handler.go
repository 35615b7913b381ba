// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbot/internal/planner"
)

type errorResponse struct {
	Error any `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlannerError maps a typed failure record to an HTTP status. Transport
// and parse failures both point upstream, so both map to 502; the record's
// kind tells the caller which one it was.
func writePlannerError(c *gin.Context, err error) {
	var record *planner.ErrorRecord
	if errors.As(err, &record) {
		writeJSON(c, http.StatusBadGateway, errorResponse{Error: record})
		return
	}
	writeError(c, http.StatusInternalServerError, "internal error")
}
