package backend

import (
	"context"
	"errors"
	"net/http"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login posts the credentials. A rejection (success=false, or 400/401/422)
// is returned as *domain.AuthError wrapping domain.ErrInvalidCredentials and
// carrying the backend's message.
func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/login", nil, loginRequest{Email: email, Password: password})
	if err != nil {
		var be *domain.BackendError
		if errors.As(err, &be) && isRejection(be.Status) {
			return nil, &domain.AuthError{Message: be.Message, Err: domain.ErrInvalidCredentials}
		}
		return nil, err
	}

	res := &ports.LoginResult{AccessToken: env.AccessToken, User: env.User}
	if res.AccessToken == "" || res.User == nil {
		var nested struct {
			AccessToken string       `json:"access_token"`
			User        *domain.User `json:"user"`
		}
		if err := decodeData(env, "/login", &nested); err != nil {
			return nil, err
		}
		if res.AccessToken == "" {
			res.AccessToken = nested.AccessToken
		}
		if res.User == nil {
			res.User = nested.User
		}
	}
	if res.AccessToken == "" || res.User == nil {
		return nil, &domain.AuthError{Message: env.Message, Err: domain.ErrInvalidCredentials}
	}
	return res, nil
}

// Logout invalidates the current token on the backend.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/logout", nil, nil)
	return err
}

// Me fetches the authenticated user.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	env, err := c.get(ctx, "/me", nil, &user)
	if err != nil {
		return nil, err
	}
	if user.ID == 0 && env.User != nil {
		return env.User, nil
	}
	return &user, nil
}

func isRejection(status int) bool {
	return status == http.StatusBadRequest ||
		status == http.StatusUnauthorized ||
		status == http.StatusUnprocessableEntity ||
		(status >= 200 && status <= 299)
}

var _ ports.AuthBackend = (*Client)(nil)
