package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lostfound-market/internal/marketerrors"
	"lostfound-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseID reads a positive integer path parameter
func ParseID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w - %s must be a positive integer", marketerrors.ErrValidation, name)
	}
	return id, nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, marketerrors.ErrAuctionEnded):
		return http.StatusGone, "auction has ended"
	case errors.Is(err, marketerrors.ErrAuth):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, marketerrors.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, marketerrors.ErrCollegeIDTaken):
		return http.StatusConflict, "college ID already registered"
	case errors.Is(err, marketerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, marketerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, marketerrors.ErrNotFound):
		return http.StatusNotFound, "not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
