package response

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"airline-warehouse/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMapsTypeToStatus(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cases := []struct {
		err    error
		status int
	}{
		{errors.Validation("limit must be between 10 and 100"), http.StatusBadRequest},
		{errors.NotFoundf("table %q not found", "dim_crew"), http.StatusNotFound},
		{errors.Unauthorized("missing token"), http.StatusUnauthorized},
		{errors.Forbidden("admin access required"), http.StatusForbidden},
		{errors.MethodNotAllowed(http.MethodDelete), http.StatusMethodNotAllowed},
		{errors.RateLimited("rate limit exceeded"), http.StatusTooManyRequests},
		{errors.WrapExternal("cache unavailable", io.ErrUnexpectedEOF), http.StatusServiceUnavailable},
		{errors.Internalf("load factor out of range"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/tables", nil)
		rec := httptest.NewRecorder()

		Error(rec, req, logger, tc.err)

		assert.Equal(t, tc.status, rec.Code, tc.err.Error())

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, string(errors.GetType(tc.err)), body.Error)
		assert.Equal(t, tc.status, body.Code)
	}
}

func TestServerFaultsHideCause(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cause := stderrors.New("dial tcp 10.0.0.5:5432: connection refused")

	cases := []struct {
		err     error
		message string
	}{
		{errors.WrapExternal("warehouse database unavailable", cause), "warehouse database unavailable"},
		{errors.WrapInternal("dataset failed consistency check", cause), "dataset failed consistency check"},
		{cause, http.StatusText(http.StatusInternalServerError)},
		{errors.WrapValidation("invalid JSON body", cause), "invalid JSON body: " + cause.Error()},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		Error(rec, httptest.NewRequest(http.MethodPost, "/api/datasets", nil), logger, tc.err)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tc.message, body.Message)
		assert.Equal(t, StatusCode(tc.err), rec.Code)
	}
}

func TestStatusCodeDefaultsToInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusCode(&errors.AppError{Type: "unknown"}))
	assert.Equal(t, http.StatusServiceUnavailable, StatusCode(errors.WrapExternal("cache", io.EOF)))
}

func TestSuccessWithoutBody(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSuccessWritesJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, http.StatusOK, map[string]int{"rows": 3})

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"rows":3}`, rec.Body.String())
}
