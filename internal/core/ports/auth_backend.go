package ports

import (
	"context"
	"time"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
)

// LoginResult is what the backend hands back for valid credentials.
type LoginResult struct {
	AccessToken string
	User        *domain.User
}

// AuthBackend exchanges credentials with the REST backend.
type AuthBackend interface {
	// Login returns a *domain.AuthError when the backend rejects the
	// credentials; any other error is a transport failure.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Logout invalidates the token currently held by the client.
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*domain.User, error)
}

// TokenInspector reads the expiry of an access token. ok is false when the
// token carries no readable expiry (opaque tokens).
type TokenInspector interface {
	Expiry(token string) (exp time.Time, ok bool)
}
