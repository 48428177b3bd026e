package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/api/handler"
	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

type routerSessions struct{ session domain.Session }

func (s *routerSessions) Restore(context.Context) domain.Session { return s.session }
func (s *routerSessions) Login(context.Context, string, string) (*domain.User, error) {
	return nil, &domain.AuthError{Message: "Invalid credentials", Err: domain.ErrInvalidCredentials}
}
func (s *routerSessions) Logout(context.Context)      { s.session = domain.Session{} }
func (s *routerSessions) Current() domain.Session     { return s.session }
func (s *routerSessions) HasRole(n string) bool       { return s.session.User.HasRole(n) }
func (s *routerSessions) HasAnyRole(n ...string) bool { return s.session.User.HasAnyRole(n...) }
func (s *routerSessions) PrimaryRole() (string, bool) { return s.session.User.PrimaryRole() }

type routerNav struct{}

func (routerNav) View(context.Context) ports.NavigationView { return ports.NavigationView{} }
func (routerNav) MarkOnboardingSeen(context.Context) error  { return nil }

type routerAnnouncements struct{ deleted int }

func (*routerAnnouncements) List(context.Context, int) ([]domain.Announcement, error) {
	return []domain.Announcement{{ID: 1}}, nil
}
func (*routerAnnouncements) UnreadCount(context.Context) (int, error) { return 0, nil }
func (*routerAnnouncements) Create(context.Context, ports.AnnouncementInput) (*domain.Announcement, error) {
	return &domain.Announcement{}, nil
}
func (a *routerAnnouncements) Delete(context.Context, int64) error {
	a.deleted++
	return nil
}

func newTestRouter(session domain.Session) (*routerAnnouncements, http.Handler) {
	ann := &routerAnnouncements{}
	e := NewRouter(Dependencies{
		Sessions:      &routerSessions{session: session},
		Navigation:    routerNav{},
		Announcements: ann,
		Health:        map[string]handler.Pinger{},
		Registerer:    prometheus.NewRegistry(),
	}, zerolog.Nop())
	return ann, e
}

func signedInAs(role string) domain.Session {
	return domain.Session{User: &domain.User{ID: 1, Roles: []string{role}}, Authenticated: true}
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RequiresSession(t *testing.T) {
	_, h := newTestRouter(domain.Session{})

	rec := serve(h, http.MethodGet, "/announcements", "")
	if rec.Code != http.StatusUnauthorized || !strings.Contains(rec.Body.String(), `"error"`) {
		t.Fatalf("expected 401 envelope, got %d %s", rec.Code, rec.Body.String())
	}
	if rec := serve(h, http.MethodGet, "/session", ""); rec.Code != http.StatusOK {
		t.Fatalf("/session should be public, got %d", rec.Code)
	}
}

func TestRouter_LoginRejected(t *testing.T) {
	_, h := newTestRouter(domain.Session{})

	rec := serve(h, http.MethodPost, "/session/login", `{"email":"a@b.c","password":"x"}`)
	if rec.Code != http.StatusUnauthorized || strings.TrimSpace(rec.Body.String()) != `{"error":"Invalid credentials"}` {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_DeleteAnnouncementRBAC(t *testing.T) {
	ann, h := newTestRouter(signedInAs(domain.RoleViceBEM))
	if rec := serve(h, http.MethodDelete, "/announcements/4", ""); rec.Code != http.StatusForbidden {
		t.Fatalf("vice president: expected 403, got %d", rec.Code)
	}

	ann2, h2 := newTestRouter(signedInAs(domain.RoleSuperAdmin))
	if rec := serve(h2, http.MethodDelete, "/announcements/4", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("super admin: expected 204, got %d", rec.Code)
	}
	if ann.deleted != 0 || ann2.deleted != 1 {
		t.Fatalf("deletes = %d/%d", ann.deleted, ann2.deleted)
	}
}

func TestRouter_ReviewRequiresCapability(t *testing.T) {
	_, h := newTestRouter(signedInAs(domain.RoleMember))
	if rec := serve(h, http.MethodPatch, "/proposals/1/status", `{"status_id":2}`); rec.Code != http.StatusForbidden {
		t.Fatalf("member: expected 403, got %d", rec.Code)
	}
}

func TestRouter_OpsEndpoints(t *testing.T) {
	_, h := newTestRouter(domain.Session{})
	for _, path := range []string{"/health", "/health/ready", "/metrics"} {
		if rec := serve(h, http.MethodGet, path, ""); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
