package response

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"airline-warehouse/internal/shared/errors"
)

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type errorClass struct {
	status int
	level  slog.Level
	// clientFault errors echo their full chain to the caller; server-side
	// ones only show the top message so driver and network details stay in
	// the log.
	clientFault bool
}

var classes = map[errors.ErrorType]errorClass{
	errors.ErrorTypeValidation:       {http.StatusBadRequest, slog.LevelDebug, true},
	errors.ErrorTypeNotFound:         {http.StatusNotFound, slog.LevelDebug, true},
	errors.ErrorTypeMethodNotAllowed: {http.StatusMethodNotAllowed, slog.LevelDebug, true},
	errors.ErrorTypeUnauthorized:     {http.StatusUnauthorized, slog.LevelWarn, true},
	errors.ErrorTypeForbidden:        {http.StatusForbidden, slog.LevelWarn, true},
	errors.ErrorTypeRateLimited:      {http.StatusTooManyRequests, slog.LevelWarn, true},
	errors.ErrorTypeExternal:         {http.StatusServiceUnavailable, slog.LevelError, false},
	errors.ErrorTypeInternal:         {http.StatusInternalServerError, slog.LevelError, false},
}

func classify(errorType errors.ErrorType) errorClass {
	if c, ok := classes[errorType]; ok {
		return c
	}
	return classes[errors.ErrorTypeInternal]
}

// StatusCode is the HTTP status an error is reported with.
func StatusCode(err error) int {
	return classify(errors.GetType(err)).status
}

// Error logs err with request context and writes it as an ErrorResponse.
// Handlers return errors upward; this is where they get logged.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	errorType := errors.GetType(err)
	class := classify(errorType)

	logger.Log(r.Context(), class.level, "Request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
		"error_type", errorType,
		"status_code", class.status,
		"error", err,
	)

	message := err.Error()
	if !class.clientFault {
		message = topMessage(err)
	}
	writeJSON(w, class.status, ErrorResponse{Error: string(errorType), Message: message, Code: class.status})
}

func topMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return http.StatusText(http.StatusInternalServerError)
}

// Success writes data as JSON. A nil data writes only the status.
func Success(w http.ResponseWriter, statusCode int, data any) {
	if data == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		return
	}
	writeJSON(w, statusCode, data)
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	// The status line is already out; an encoding failure can only be dropped.
	_ = json.NewEncoder(w).Encode(body)
}
