// Package vault persists the session credentials and device preferences on
// top of any ports.KeyValueStore. Token and user snapshot may be sealed with
// NaCl secretbox; device preferences are always stored in the clear.
package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

// Storage keys. They match the keys the mobile app used so an exported
// store can be read back.
const (
	KeyAccessToken    = "access_token"
	KeyUser           = "user"
	KeyOnboardingSeen = "hasSeenOnboarding"
	KeyInstallationID = "installation_id"
)

var errIncomplete = errors.New("vault: token and user snapshot are out of step")

// Vault implements ports.CredentialVault, ports.TokenSource and
// ports.PreferenceStore.
type Vault struct {
	kv     ports.KeyValueStore
	sealer sealer
}

type Option func(*Vault)

// WithSealKey seals the token and user snapshot with key.
func WithSealKey(key *[keySize]byte) Option {
	return func(v *Vault) { v.sealer = sealer{key: key} }
}

func New(kv ports.KeyValueStore, opts ...Option) *Vault {
	v := &Vault{kv: kv}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Load returns ports.ErrNoCredentials when neither key is present. A token
// without a user (or the reverse), an unopenable seal or an unparsable user
// are all reported as errors.
func (v *Vault) Load(ctx context.Context) (*ports.Credentials, error) {
	token, hasToken, err := v.kv.Get(ctx, KeyAccessToken)
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	rawUser, hasUser, err := v.kv.Get(ctx, KeyUser)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !hasToken && !hasUser {
		return nil, ports.ErrNoCredentials
	}
	if !hasToken || !hasUser {
		return nil, errIncomplete
	}

	if token, err = v.sealer.open(token); err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	if rawUser, err = v.sealer.open(rawUser); err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, fmt.Errorf("parse user snapshot: %w", err)
	}
	return &ports.Credentials{AccessToken: token, User: &user}, nil
}

// Save writes the user snapshot first and the token last, so a crash in
// between leaves a snapshot without a token, which Load rejects.
func (v *Vault) Save(ctx context.Context, creds ports.Credentials) error {
	if creds.AccessToken == "" || creds.User == nil {
		return fmt.Errorf("save credentials: %w", domain.ErrInvalidInput)
	}
	raw, err := json.Marshal(creds.User)
	if err != nil {
		return fmt.Errorf("encode user snapshot: %w", err)
	}

	sealedUser, err := v.sealer.seal(string(raw))
	if err != nil {
		return err
	}
	sealedToken, err := v.sealer.seal(creds.AccessToken)
	if err != nil {
		return err
	}

	if err := v.kv.Set(ctx, KeyUser, sealedUser); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	if err := v.kv.Set(ctx, KeyAccessToken, sealedToken); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Clear removes token and user snapshot. Device preferences are kept.
func (v *Vault) Clear(ctx context.Context) error {
	if err := v.kv.Delete(ctx, KeyAccessToken, KeyUser); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// AccessToken returns the stored token, or "" when signed out.
func (v *Vault) AccessToken(ctx context.Context) (string, error) {
	token, ok, err := v.kv.Get(ctx, KeyAccessToken)
	if err != nil || !ok {
		return "", err
	}
	return v.sealer.open(token)
}

func (v *Vault) OnboardingSeen(ctx context.Context) (bool, error) {
	value, ok, err := v.kv.Get(ctx, KeyOnboardingSeen)
	if err != nil {
		return false, fmt.Errorf("load onboarding flag: %w", err)
	}
	return ok && value == "true", nil
}

func (v *Vault) MarkOnboardingSeen(ctx context.Context) error {
	if err := v.kv.Set(ctx, KeyOnboardingSeen, "true"); err != nil {
		return fmt.Errorf("save onboarding flag: %w", err)
	}
	return nil
}

// InstallationID returns the device's stable id, generating one on first use.
func (v *Vault) InstallationID(ctx context.Context) (string, error) {
	id, ok, err := v.kv.Get(ctx, KeyInstallationID)
	if err != nil {
		return "", fmt.Errorf("load installation id: %w", err)
	}
	if ok && id != "" {
		return id, nil
	}
	id = uuid.NewString()
	if err := v.kv.Set(ctx, KeyInstallationID, id); err != nil {
		return "", fmt.Errorf("save installation id: %w", err)
	}
	return id, nil
}

var (
	_ ports.CredentialVault = (*Vault)(nil)
	_ ports.TokenSource     = (*Vault)(nil)
	_ ports.PreferenceStore = (*Vault)(nil)
)
