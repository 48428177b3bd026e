package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Login failures carry a message meant for the user.
	var ae *domain.AuthError
	if errors.As(err, &ae) {
		if errors.Is(err, domain.ErrInvalidInput) {
			return http.StatusBadRequest, ae.Error()
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return http.StatusUnauthorized, ae.Error()
		}
		var be *domain.BackendError
		if errors.As(err, &be) && be.Status >= 400 && be.Status < 500 {
			return be.Status, ae.Error()
		}
		return http.StatusBadGateway, ae.Error()
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, domain.DisplayMessage(err, "not signed in")
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, domain.DisplayMessage(err, "access forbidden")
	case errors.Is(err, domain.ErrProtectedRole):
		return http.StatusConflict, "role is protected"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, domain.DisplayMessage(err, "not found")
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, domain.DisplayMessage(err, err.Error())
	case errors.Is(err, domain.ErrBackendUnavailable):
		log.Warn().Err(err).Str("path", c.Path()).Msg("backend unavailable")
		return http.StatusBadGateway, domain.DisplayMessage(err, "backend unavailable")
	}

	// Any other backend answer is relayed with its message.
	var be *domain.BackendError
	if errors.As(err, &be) {
		code := be.Status
		if code < 400 || code > 499 {
			code = http.StatusBadGateway
		}
		return code, domain.DisplayMessage(err, "backend request failed")
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
