package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

// NavigationService turns the current session into a NavigationView.
type NavigationService struct {
	sessions ports.SessionService
	prefs    ports.PreferenceStore
	log      zerolog.Logger
}

func NewNavigationService(sessions ports.SessionService, prefs ports.PreferenceStore, log zerolog.Logger) *NavigationService {
	return &NavigationService{sessions: sessions, prefs: prefs, log: log}
}

// View resolves the layout for the current session. An unreadable onboarding
// flag is treated as "already seen" so a store outage never traps the user
// on the onboarding screen.
func (n *NavigationService) View(ctx context.Context) ports.NavigationView {
	session := n.sessions.Current()

	seen, err := n.prefs.OnboardingSeen(ctx)
	if err != nil {
		n.log.Warn().Err(err).Msg("reading onboarding flag failed")
		seen = true
	}

	primary, _ := domain.PrimaryRole(session.Roles())
	if !session.Authenticated {
		primary = ""
	}

	view := ports.NavigationView{
		Authenticated: session.Authenticated,
		User:          session.User,
		PrimaryRole:   primary,
		InitialScreen: domain.InitialScreen(session, seen),
		LandingScreen: domain.LandingScreen(session.Roles()),
		LegacyScreen:  domain.DashboardKindFor(primary).LegacyScreen(),
		Tabs:          domain.DashboardTabs(primary),
		Sections:      domain.VisibleMenuSections(primary),
		Capabilities:  domain.CapabilitiesFor(primary),
	}
	if !session.Authenticated {
		view.LandingScreen = domain.ScreenLogin
	}
	if view.Sections == nil {
		view.Sections = []domain.MenuSection{}
	}
	return view
}

func (n *NavigationService) MarkOnboardingSeen(ctx context.Context) error {
	return n.prefs.MarkOnboardingSeen(ctx)
}

var _ ports.NavigationService = (*NavigationService)(nil)
