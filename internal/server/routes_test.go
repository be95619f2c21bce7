package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"airline-warehouse/internal/analytics"
	"airline-warehouse/internal/auth"
	"airline-warehouse/internal/generator"
	serverHandlers "airline-warehouse/internal/server/handlers"
	"airline-warehouse/internal/shared/config"
	"airline-warehouse/internal/shared/cookies"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(seed int64) generator.Config {
	return generator.Config{
		Flights:           30,
		Customers:         20,
		StartDate:         time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2024, 8, 7, 0, 0, 0, 0, time.UTC),
		Routes:            25,
		BookingsPerFlight: 1,
		Seed:              &seed,
	}
}

func setup(t *testing.T, loaded bool) (*http.ServeMux, *analytics.Service) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := analytics.NewService(nil, time.Minute, logger)
	if loaded {
		ds, err := generator.Generate(testConfig(8), logger)
		require.NoError(t, err)
		service.Replace(ds)
	}
	jar := cookies.NewJar(config.AuthConfig{TokenExpiration: time.Hour}, "http://localhost:3000")
	return NewRoutes(nil, service, testConfig(9), jar, logger).Setup(), service
}

func TestHealth(t *testing.T) {
	mux, service := setup(t, true)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/server/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body serverHandlers.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	info, err := service.Info()
	require.NoError(t, err)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "disabled", body.Database)
	assert.Equal(t, info.RunID, body.RunID)
}

func TestHealthBeforeFirstDataset(t *testing.T) {
	mux, _ := setup(t, false)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/server/health", nil))

	var body serverHandlers.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "starting", body.Status)
	assert.Empty(t, body.RunID)
}

func TestPublicRoutes(t *testing.T) {
	mux, _ := setup(t, true)

	for _, path := range []string{
		"/api/dashboard",
		"/api/segments?q=gold",
		"/api/flights",
		"/api/revenue",
		"/api/tables",
		"/api/tables/dim_airport",
		"/api/datasets/current",
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestDatasetRegenerationRequiresAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	mux, service := setup(t, true)
	before, err := service.Info()
	require.NoError(t, err)

	post := func(token string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/datasets", strings.NewReader(`{"seed": 77}`))
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, post(""))

	viewer, err := auth.GenerateJWT("analyst", auth.RoleViewer, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, post(viewer))

	after, err := service.Info()
	require.NoError(t, err)
	assert.Equal(t, before.RunID, after.RunID)

	admin, err := auth.GenerateJWT("ops", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, post(admin))

	after, err = service.Info()
	require.NoError(t, err)
	assert.NotEqual(t, before.RunID, after.RunID)
	assert.Equal(t, int64(77), after.Seed)
}

func TestSessionCookieAuthorizesRegeneration(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	mux, _ := setup(t, true)

	admin, err := auth.GenerateJWT("ops", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)

	login := httptest.NewRequest(http.MethodPost, "/auth/session", nil)
	login.Header.Set("Authorization", "Bearer "+admin)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, login)
	require.Equal(t, http.StatusOK, rec.Code)
	session := rec.Result().Cookies()
	require.Len(t, session, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/datasets", strings.NewReader(`{"flights": 10}`))
	req.AddCookie(session[0])
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
