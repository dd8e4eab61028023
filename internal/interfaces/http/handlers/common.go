// internal/interfaces/http/handlers/common.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/your-org/restaurant-backend/internal/interfaces/http/middleware"
	"github.com/your-org/restaurant-backend/internal/pkg/apperror"
)

// respondError maps domain errors to HTTP responses
func respondError(c *gin.Context, err error) {
	var validationErr *apperror.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": validationErr.Error(),
		})
		return
	}

	var notFoundErr *apperror.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": notFoundErr.Error(),
		})
		return
	}

	var partialErr *apperror.PartialFailureError
	if errors.As(err, &partialErr) {
		// The primary effect stood; report a warning, not a failure
		c.JSON(http.StatusMultiStatus, gin.H{
			"warning": partialErr.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}

// requireUserID pulls the account id set by the auth middleware
func requireUserID(c *gin.Context) (uint, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return 0, false
	}
	return userID, true
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
		})
		return 0, false
	}
	return uint(id), true
}
