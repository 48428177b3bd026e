package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
)

func TestNavigationService_View_Anonymous(t *testing.T) {
	nav := NewNavigationService(&fixedSessions{}, &stubPrefs{seen: true}, zerolog.Nop())

	view := nav.View(context.Background())
	if view.Authenticated || view.PrimaryRole != "" {
		t.Fatalf("expected anonymous view, got %+v", view)
	}
	if view.InitialScreen != domain.ScreenLogin || view.LandingScreen != domain.ScreenLogin {
		t.Fatalf("anonymous should land on login, got %s/%s", view.InitialScreen, view.LandingScreen)
	}
	if len(view.Sections) != 0 || view.Capabilities != (domain.Capabilities{}) {
		t.Fatalf("anonymous should see nothing: %+v", view)
	}
}

func TestNavigationService_View_Onboarding(t *testing.T) {
	nav := NewNavigationService(sessionAs(domain.RoleMember), &stubPrefs{}, zerolog.Nop())

	if got := nav.View(context.Background()).InitialScreen; got != domain.ScreenOnboarding {
		t.Fatalf("expected onboarding first, got %s", got)
	}
	if err := nav.MarkOnboardingSeen(context.Background()); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if got := nav.View(context.Background()).InitialScreen; got != domain.ScreenDashboard {
		t.Fatalf("expected dashboard after onboarding, got %s", got)
	}
}

func TestNavigationService_View_PrefsErrorSkipsOnboarding(t *testing.T) {
	nav := NewNavigationService(sessionAs(domain.RoleMember), &stubPrefs{seenErr: errors.New("boom")}, zerolog.Nop())

	if got := nav.View(context.Background()).InitialScreen; got != domain.ScreenDashboard {
		t.Fatalf("expected dashboard, got %s", got)
	}
}

func TestNavigationService_View_Minister(t *testing.T) {
	nav := NewNavigationService(sessionAs(domain.RoleMinister), &stubPrefs{seen: true}, zerolog.Nop())

	view := nav.View(context.Background())
	if view.PrimaryRole != domain.RoleMinister {
		t.Fatalf("primary = %q", view.PrimaryRole)
	}
	if view.LandingScreen != domain.ScreenDashboard || view.LegacyScreen != domain.ScreenMinisterDashboard {
		t.Fatalf("landing = %s legacy = %s", view.LandingScreen, view.LegacyScreen)
	}
	if !view.Capabilities.ReviewProposals || view.Capabilities.CreateAnnouncement {
		t.Fatalf("unexpected capabilities: %+v", view.Capabilities)
	}
	if len(view.Sections) != 2 {
		t.Fatalf("minister should see user + proposal sections, got %d", len(view.Sections))
	}
}
