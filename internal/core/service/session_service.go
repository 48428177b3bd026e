package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
	"github.com/bemapp/orgadmin-shell/internal/pkg/metrics"
)

// SessionService implements ports.SessionService. Restore, Login and Logout
// are serialised by opMu so their writes to the vault never interleave;
// readers only take stateMu.
type SessionService struct {
	backend   ports.AuthBackend
	vault     ports.CredentialVault
	inspector ports.TokenInspector
	now       func() time.Time
	log       zerolog.Logger

	opMu    sync.Mutex
	stateMu sync.RWMutex
	state   domain.Session
}

// SessionOption customises a SessionService.
type SessionOption func(*SessionService)

// WithTokenInspector makes Restore discard tokens whose expiry has passed.
func WithTokenInspector(in ports.TokenInspector) SessionOption {
	return func(s *SessionService) { s.inspector = in }
}

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) SessionOption {
	return func(s *SessionService) { s.now = now }
}

func NewSessionService(backend ports.AuthBackend, vault ports.CredentialVault, log zerolog.Logger, opts ...SessionOption) *SessionService {
	s := &SessionService{
		backend: backend,
		vault:   vault,
		now:     time.Now,
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore loads the persisted credentials. Any failure yields the empty
// session; it never returns an error.
func (s *SessionService) Restore(ctx context.Context) domain.Session {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	creds, err := s.vault.Load(ctx)
	switch {
	case errors.Is(err, ports.ErrNoCredentials):
		metrics.SessionRestoresTotal.WithLabelValues("empty").Inc()
		return s.reset()
	case err != nil || creds.User == nil || creds.AccessToken == "":
		s.log.Warn().Err(err).Msg("restore: unreadable credentials, starting signed out")
		s.clearVault(ctx)
		metrics.SessionRestoresTotal.WithLabelValues("corrupt").Inc()
		return s.reset()
	}

	if s.expired(creds.AccessToken) {
		s.log.Info().Msg("restore: persisted token expired")
		s.clearVault(ctx)
		metrics.SessionRestoresTotal.WithLabelValues("expired").Inc()
		return s.reset()
	}

	metrics.SessionRestoresTotal.WithLabelValues("restored").Inc()
	s.log.Info().Int64("user_id", creds.User.ID).Msg("session restored")
	return s.set(domain.Session{User: creds.User, Authenticated: true})
}

// Login exchanges credentials with the backend and persists the result.
// Failures come back as *domain.AuthError and leave the session as it was.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_input").Inc()
		return nil, &domain.AuthError{Message: domain.MsgCredentialsRequired, Err: domain.ErrInvalidInput}
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		var ae *domain.AuthError
		if errors.As(err, &ae) {
			metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
			s.log.Info().Str("email", email).Msg("login rejected")
			return nil, ae
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Str("email", email).Msg("login failed")
		return nil, &domain.AuthError{Message: domain.DisplayMessage(err, domain.MsgLoginFailed), Err: err}
	}

	if res.AccessToken == "" || res.User == nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, &domain.AuthError{Err: domain.ErrInvalidCredentials}
	}

	if err := s.vault.Save(ctx, ports.Credentials{AccessToken: res.AccessToken, User: res.User}); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Msg("login: persisting credentials failed")
		s.clearVault(ctx)
		s.reset()
		return nil, &domain.AuthError{Err: err}
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int64("user_id", res.User.ID).Strs("roles", res.User.Roles).Msg("login succeeded")
	s.set(domain.Session{User: res.User, Authenticated: true})
	return res.User.Clone(), nil
}

// Logout invalidates the token on the backend when one is stored, then
// clears local state unconditionally. Calling it repeatedly is harmless.
func (s *SessionService) Logout(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	result := "skipped"
	if s.hasStoredToken(ctx) {
		if err := s.backend.Logout(ctx); err != nil {
			result = "failed"
			s.log.Warn().Err(err).Msg("logout: backend invalidation failed, clearing locally")
		} else {
			result = "ok"
		}
	}
	metrics.LogoutsTotal.WithLabelValues(result).Inc()

	s.clearVault(ctx)
	s.reset()
	s.log.Info().Msg("logged out")
}

// Current returns a copy of the session.
func (s *SessionService) Current() domain.Session {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return domain.Session{User: s.state.User.Clone(), Authenticated: s.state.Authenticated}
}

func (s *SessionService) HasRole(name string) bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state.User.HasRole(name)
}

func (s *SessionService) HasAnyRole(names ...string) bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state.User.HasAnyRole(names...)
}

func (s *SessionService) PrimaryRole() (string, bool) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state.User.PrimaryRole()
}

func (s *SessionService) expired(token string) bool {
	if s.inspector == nil {
		return false
	}
	exp, ok := s.inspector.Expiry(token)
	return ok && !s.now().Before(exp)
}

func (s *SessionService) hasStoredToken(ctx context.Context) bool {
	creds, err := s.vault.Load(ctx)
	if err == nil {
		return creds.AccessToken != ""
	}
	// An unreadable vault may still hold a token the backend knows about.
	return !errors.Is(err, ports.ErrNoCredentials)
}

func (s *SessionService) clearVault(ctx context.Context) {
	if err := s.vault.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("clearing persisted credentials failed")
	}
}

func (s *SessionService) set(next domain.Session) domain.Session {
	s.stateMu.Lock()
	s.state = domain.Session{User: next.User.Clone(), Authenticated: next.Authenticated}
	s.stateMu.Unlock()
	return next
}

func (s *SessionService) reset() domain.Session {
	return s.set(domain.Session{})
}

var _ ports.SessionService = (*SessionService)(nil)
