package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrProtectedRole      = errors.New("role is protected")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
)

// User-facing login messages.
const (
	MsgLoginFailed         = "Login gagal. Silakan coba lagi."
	MsgCredentialsRequired = "Email dan password harus diisi"
)

// AuthError is a login failure carrying a message fit for display.
// Message is the backend-supplied text when there was one.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return MsgLoginFailed
	}
	return e.Message
}

func (e *AuthError) Unwrap() error { return e.Err }

// BackendError is a non-2xx answer from the REST backend.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// Is lets callers test backend errors against the domain sentinels.
func (e *BackendError) Is(target error) bool {
	switch target {
	case ErrNotAuthenticated:
		return e.Status == 401
	case ErrInvalidInput:
		return e.Status == 400 || e.Status == 422
	case ErrForbidden:
		return e.Status == 403
	case ErrNotFound:
		return e.Status == 404
	case ErrBackendUnavailable:
		return e.Status >= 500
	}
	return false
}

// DisplayMessage picks a human-readable message for err, falling back to
// fallback when err carries nothing better.
func DisplayMessage(err error, fallback string) string {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Error()
	}
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return fallback
}
