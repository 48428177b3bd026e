package ports

import (
	"context"
	"errors"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
)

// ErrNoCredentials is returned by CredentialVault.Load when nothing is persisted.
var ErrNoCredentials = errors.New("no persisted credentials")

// KeyValueStore is the persistent string store backing the device session.
// Get reports found=false for a missing key without an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// Credentials is the persisted token + user snapshot pair.
type Credentials struct {
	AccessToken string
	User        *domain.User
}

// CredentialVault persists the session credentials.
type CredentialVault interface {
	Load(ctx context.Context) (*Credentials, error)
	Save(ctx context.Context, creds Credentials) error
	Clear(ctx context.Context) error
}

// TokenSource yields the access token to attach to backend requests. An
// empty token with a nil error means "send the request anonymously".
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// PreferenceStore keeps device-local flags that survive logout.
type PreferenceStore interface {
	OnboardingSeen(ctx context.Context) (bool, error)
	MarkOnboardingSeen(ctx context.Context) error
	InstallationID(ctx context.Context) (string, error)
}
