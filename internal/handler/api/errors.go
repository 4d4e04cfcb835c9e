package api

import (
	"log/slog"
	"net/http"

	"luxora-booking/internal/handler/httperr"
	"luxora-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// First match wins, so more specific sentinels come before generic ones.
var errorMappings = []errorMapping{
	{errs.ErrInvalidDateFormat, http.StatusBadRequest, httperr.CodeInvalidDateFormat, "Invalid date format. Use YYYY-MM-DD"},
	{errs.ErrInvalidDateRange, http.StatusBadRequest, httperr.CodeInvalidDateRange, "Check-in must be in the future and check-out must be after check-in"},
	{errs.ErrRoomTypeNotFound, http.StatusNotFound, httperr.CodeRoomTypeNotFound, "Room type not found"},
	{errs.ErrCapacityExceeded, http.StatusConflict, httperr.CodeCapacityExceeded, "Room no longer available"},
	{errs.ErrBookingNotFound, http.StatusNotFound, httperr.CodeBookingNotFound, "Booking not found"},
	{errs.ErrBookingAlreadyCancelled, http.StatusConflict, httperr.CodeBookingAlreadyCancelled, "Booking is already cancelled"},
	{errs.ErrCodeSpaceExhausted, http.StatusServiceUnavailable, httperr.CodeCodeSpaceExhausted, "Could not assign a booking code, please retry"},
	{errs.ErrRoomNotFound, http.StatusNotFound, httperr.CodeRoomNotFound, "Room not found"},
	{errs.ErrUserNotFound, http.StatusUnauthorized, httperr.CodeUnauthorized, "Account no longer exists"},
	{errs.ErrEmailAlreadyRegistered, http.StatusConflict, httperr.CodeEmailAlreadyRegistered, "Email already registered"},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, httperr.CodeInvalidCredentials, "Invalid email or password"},
	{errs.ErrDomainValidation, http.StatusBadRequest, httperr.CodeValidationFailed, "Invalid request"},
}

// respondError writes the error body for a use case failure. Unknown errors
// become 500 INTERNAL without leaking their text.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.code, m.message, nil)
			return
		}
	}
	slog.Error("unhandled use case error",
		"path", c.FullPath(),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 5))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal error", nil)
}

func respondBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid request", err.Error())
}

func respondUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, httperr.CodeUnauthorized, "Unauthorized", nil)
}

var errUnauthenticated = errs.New("request is not authenticated")
