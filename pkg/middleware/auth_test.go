package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"efiling-system/pkg/service"
	"efiling-system/pkg/utils"
)

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour, zap.NewNop())
	mw := NewAuthMiddleware(jwtSvc, zap.NewNop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := mw.Auth(func(c echo.Context) error {
		reached = true
		userID, err := utils.GetUserIDFromCtx(c.Request().Context())
		require.NoError(t, err)
		assert.Equal(t, uint64(7), userID)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, reached
}

func validTokens(t *testing.T) (string, string) {
	t.Helper()
	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour, zap.NewNop())
	access, refresh, err := jwtSvc.GenerateTokens(7, 2, "SE-NORTH")
	require.NoError(t, err)
	return access, refresh
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, reached := runAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuth_MalformedHeader(t *testing.T) {
	rec, reached := runAuth(t, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuth_ValidAccessToken(t *testing.T) {
	access, _ := validTokens(t)
	rec, reached := runAuth(t, "Bearer "+access)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	_, refresh := validTokens(t)
	rec, reached := runAuth(t, "Bearer "+refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuth_GarbageTokenRejected(t *testing.T) {
	rec, reached := runAuth(t, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}
