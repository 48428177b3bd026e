package service

import (
	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

// authorize returns the caller's primary role once it is authenticated and,
// when allowed is non-nil, passes the capability check.
func authorize(sessions ports.SessionService, allowed func(primary string) bool) (string, error) {
	s := sessions.Current()
	if !s.Authenticated {
		return "", domain.ErrNotAuthenticated
	}
	primary, ok := domain.PrimaryRole(s.Roles())
	if !ok {
		return "", domain.ErrForbidden
	}
	if allowed != nil && !allowed(primary) {
		return primary, domain.ErrForbidden
	}
	return primary, nil
}
