package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"airline-warehouse/internal/auth"
	"airline-warehouse/internal/shared/cookies"
	"airline-warehouse/internal/shared/errors"
	"airline-warehouse/internal/shared/response"
)

type SessionResponse struct {
	Subject   string    `json:"subject"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionHandler moves a bearer token into the HttpOnly auth cookie so the
// browser dashboard can call admin endpoints, and clears it on logout.
type SessionHandler struct {
	jar *cookies.Jar
}

func NewSessionHandler(jar *cookies.Jar) *SessionHandler {
	return &SessionHandler{jar: jar}
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "login", "remote_addr", r.RemoteAddr)

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		response.Error(w, r, logger, errors.Unauthorized("bearer token required"))
		return
	}
	token = strings.TrimSpace(token)

	claims, err := auth.ValidateJWT(token)
	if err != nil {
		response.Error(w, r, logger, errors.Unauthorized("invalid token"))
		return
	}

	h.jar.Set(w, token)
	logger.Info("Session started", "subject", claims.Subject, "role", claims.Role)

	resp := SessionResponse{Subject: claims.Subject, Role: claims.Role}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	response.Success(w, http.StatusOK, resp)
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "logout", "remote_addr", r.RemoteAddr)

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	h.jar.Clear(w)
	logger.Debug("Session cleared")

	response.Success(w, http.StatusOK, map[string]string{"status": "logged_out"})
}
