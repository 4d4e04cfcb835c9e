//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"luxora-booking/internal/handler/dto/request"
	"luxora-booking/tests/common/dbtest"
	"luxora-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	httptest.DecodeResponseBody(t, w, &body)
	require.NotEmpty(t, body.AccessToken, "access token missing from login response")

	return body.AccessToken
}

// CreateAndLogin inserts an account with dbtest.DefaultPassword and logs it in.
func CreateAndLogin(t *testing.T, db dbtest.Conn, router *gin.Engine, email string) (uuid.UUID, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email)
	return userID, LoginUser(t, router, email, dbtest.DefaultPassword)
}
