package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"airline-warehouse/internal/auth"
	"airline-warehouse/internal/shared/config"
	"airline-warehouse/internal/shared/cookies"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler() *SessionHandler {
	return NewSessionHandler(cookies.NewJar(config.AuthConfig{TokenExpiration: time.Hour}, "http://localhost:3000"))
}

func TestLoginSetsCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	token, err := auth.GenerateJWT("ops", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	newHandler().Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	set := rec.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, cookies.AuthCookieName, set[0].Name)
	assert.Equal(t, token, set[0].Value)
	assert.Contains(t, rec.Body.String(), `"role":"admin"`)
}

func TestLoginRejectsMissingOrInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	for _, header := range []string{"", "Bearer ", "Bearer forged", "Token abc"} {
		req := httptest.NewRequest(http.MethodPost, "/auth/session", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		newHandler().Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
		assert.Empty(t, rec.Result().Cookies(), header)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler().Logout(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	set := rec.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, -1, set[0].MaxAge)

	rec = httptest.NewRecorder()
	newHandler().Logout(rec, httptest.NewRequest(http.MethodGet, "/auth/logout", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
