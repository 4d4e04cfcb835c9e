//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"luxora-booking/internal/handler/httperr"
	"luxora-booking/internal/handler/middleware"
	"luxora-booking/internal/pkg/jwt"
	"luxora-booking/tests/common/httptest"
	usecasemock "luxora-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	auth := middleware.NewAuthMiddleware(validator)

	echo := func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "user_id": id.String()})
	}

	r := gin.New()
	r.GET("/required", auth.RequireAuth(), echo)
	r.GET("/optional", auth.OptionalAuth(), echo)
	return r, validator
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token sets the user", func(t *testing.T) {
		r, validator := newRouter(t)
		validator.EXPECT().ValidateToken("good-token").Return(userID, nil)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/required", nil, "good-token")

		var body map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, true, body["authenticated"])
		assert.Equal(t, userID.String(), body["user_id"])
	})

	t.Run("missing token", func(t *testing.T) {
		r, _ := newRouter(t)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/required", nil, "")

		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, httperr.CodeUnauthorized)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejected token", func(t *testing.T) {
		for _, cause := range []error{jwt.ErrInvalidToken, jwt.ErrExpiredToken} {
			r, validator := newRouter(t)
			validator.EXPECT().ValidateToken("bad-token").Return(uuid.Nil, cause)

			w := httptest.PerformRequest(t, r, http.MethodGet, "/required", nil, "bad-token")

			httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
		}
	})
}

func TestOptionalAuth(t *testing.T) {
	t.Run("no token is anonymous", func(t *testing.T) {
		r, _ := newRouter(t)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/optional", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, false, body["authenticated"])
	})

	t.Run("invalid token is ignored", func(t *testing.T) {
		r, validator := newRouter(t)
		validator.EXPECT().ValidateToken("bad-token").Return(uuid.Nil, jwt.ErrInvalidToken)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/optional", nil, "bad-token")

		var body map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, false, body["authenticated"])
	})

	t.Run("valid token sets the user", func(t *testing.T) {
		r, validator := newRouter(t)
		userID := uuid.New()
		validator.EXPECT().ValidateToken("good-token").Return(userID, nil)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/optional", nil, "good-token")

		var body map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
	})
}
