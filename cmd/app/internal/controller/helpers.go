package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"serenity-backend/internal/imgur"
	"serenity-backend/internal/service"
	"serenity-backend/utilities"
)

// currentUser reads the authenticated user id, answering 401 when absent.
func currentUser(c *gin.Context) (uint, bool) {
	uid, ok := utilities.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	return uid, true
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailInUse),
		errors.Is(err, service.ErrTherapistSuspended):
		return http.StatusConflict
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrPasswordTooLong),
		errors.Is(err, service.ErrTooManyAnswers),
		errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrEmptyEntry),
		errors.Is(err, service.ErrInvalidDuration),
		errors.Is(err, imgur.ErrEmptyImage),
		errors.Is(err, imgur.ErrImageTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, imgur.ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps err to a status. Unexpected errors are logged and hidden.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		utilities.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
