package ports

import (
	"context"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
)

// SessionService owns the authenticated user for the lifetime of the process.
type SessionService interface {
	Restore(ctx context.Context) domain.Session
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context)
	Current() domain.Session
	HasRole(name string) bool
	HasAnyRole(names ...string) bool
	PrimaryRole() (string, bool)
}

// NavigationView is everything the presentation layer needs to lay out the
// shell for the current session.
type NavigationView struct {
	Authenticated bool                 `json:"authenticated"`
	User          *domain.User         `json:"user,omitempty"`
	PrimaryRole   string               `json:"primary_role,omitempty"`
	InitialScreen domain.ScreenID      `json:"initial_screen"`
	LandingScreen domain.ScreenID      `json:"landing_screen"`
	LegacyScreen  domain.ScreenID      `json:"legacy_screen"`
	Tabs          []string             `json:"tabs"`
	Sections      []domain.MenuSection `json:"sections"`
	Capabilities  domain.Capabilities  `json:"capabilities"`
}

// NavigationService resolves the shell layout from the session.
type NavigationService interface {
	View(ctx context.Context) NavigationView
	MarkOnboardingSeen(ctx context.Context) error
}
