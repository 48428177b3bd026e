package service

import (
	"context"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

// fixedSessions is a read-only SessionService pinned to one session.
type fixedSessions struct {
	session domain.Session
}

func sessionAs(roles ...string) *fixedSessions {
	return &fixedSessions{session: domain.Session{
		User:          &domain.User{ID: 42, Name: "Tester", Roles: roles},
		Authenticated: true,
	}}
}

func (f *fixedSessions) Restore(context.Context) domain.Session { return f.session }
func (f *fixedSessions) Login(context.Context, string, string) (*domain.User, error) {
	return f.session.User, nil
}
func (f *fixedSessions) Logout(context.Context)      { f.session = domain.Session{} }
func (f *fixedSessions) Current() domain.Session     { return f.session }
func (f *fixedSessions) HasRole(name string) bool    { return f.session.User.HasRole(name) }
func (f *fixedSessions) HasAnyRole(n ...string) bool { return f.session.User.HasAnyRole(n...) }
func (f *fixedSessions) PrimaryRole() (string, bool) { return f.session.User.PrimaryRole() }

var _ ports.SessionService = (*fixedSessions)(nil)

type stubPrefs struct {
	seen    bool
	seenErr error
	marked  int
	instID  string
}

func (p *stubPrefs) OnboardingSeen(context.Context) (bool, error) { return p.seen, p.seenErr }
func (p *stubPrefs) MarkOnboardingSeen(context.Context) error {
	p.marked++
	p.seen = true
	return nil
}
func (p *stubPrefs) InstallationID(context.Context) (string, error) { return p.instID, nil }
