package httperr

import (
	"github.com/gin-gonic/gin"
)

// Stable error codes returned in the "code" field of every error body.
const (
	CodeInvalidDateFormat       = "INVALID_DATE_FORMAT"
	CodeInvalidDateRange        = "INVALID_DATE_RANGE"
	CodeRoomTypeNotFound        = "ROOM_TYPE_NOT_FOUND"
	CodeCapacityExceeded        = "CAPACITY_EXCEEDED"
	CodeBookingNotFound         = "BOOKING_NOT_FOUND"
	CodeBookingAlreadyCancelled = "BOOKING_ALREADY_CANCELLED"
	CodeCodeSpaceExhausted      = "CODE_SPACE_EXHAUSTED"
	CodeValidationFailed        = "VALIDATION_FAILED"
	CodeRoomNotFound            = "ROOM_NOT_FOUND"
	CodeEmailAlreadyRegistered  = "EMAIL_ALREADY_REGISTERED"
	CodeInvalidCredentials      = "INVALID_CREDENTIALS"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeInternal                = "INTERNAL"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status: status,
		Error:  ErrorBody{Code: code, Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
