package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondError serializes every failure as {"error": message}. AppErrors keep
// their mapped status; anything else is an internal error and the raw message
// stays out of the response body.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	ErrorLogger.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
