package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogcms/api/internal/apperr"
)

// respondError maps a typed error to its status and message; anything
// untyped becomes a 500 with a generic message (details stay in the logs).
func (h HandlerSet) respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}

	h.log.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}
