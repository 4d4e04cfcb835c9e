package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"luxora-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errRouteUnknown = errors.New("route not found")
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

// NotFound renders unknown routes with the common error body.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errRouteUnknown, "NOT_FOUND", "Not found", nil)
	}
}

func internalError() httperr.Response {
	return httperr.Response{
		Status: http.StatusInternalServerError,
		Error:  httperr.ErrorBody{Code: httperr.CodeInternal, Message: "Internal server error"},
	}
}
