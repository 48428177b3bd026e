package handler

import (
	"context"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

type stubSessionService struct {
	session     domain.Session
	loginFn     func(ctx context.Context, email, password string) (*domain.User, error)
	logoutCalls int
}

func (s *stubSessionService) Restore(context.Context) domain.Session { return s.session }

func (s *stubSessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) Logout(context.Context) {
	s.logoutCalls++
	s.session = domain.Session{}
}

func (s *stubSessionService) Current() domain.Session     { return s.session }
func (s *stubSessionService) HasRole(n string) bool       { return s.session.User.HasRole(n) }
func (s *stubSessionService) HasAnyRole(n ...string) bool { return s.session.User.HasAnyRole(n...) }
func (s *stubSessionService) PrimaryRole() (string, bool) { return s.session.User.PrimaryRole() }

type stubNavigation struct {
	view   ports.NavigationView
	marked int
}

func (n *stubNavigation) View(context.Context) ports.NavigationView { return n.view }
func (n *stubNavigation) MarkOnboardingSeen(context.Context) error {
	n.marked++
	return nil
}

type stubAnnouncementService struct {
	created []ports.AnnouncementInput
	err     error
}

func (s *stubAnnouncementService) List(context.Context, int) ([]domain.Announcement, error) {
	return nil, s.err
}

func (s *stubAnnouncementService) UnreadCount(context.Context) (int, error) { return 3, s.err }

func (s *stubAnnouncementService) Create(_ context.Context, in ports.AnnouncementInput) (*domain.Announcement, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, in)
	return &domain.Announcement{ID: 1, Title: in.Title, Content: in.Content, Type: in.Type}, nil
}

func (s *stubAnnouncementService) Delete(context.Context, int64) error { return s.err }

type stubDeviceService struct {
	queued bool
	tokens []string
}

func (s *stubDeviceService) Register(_ context.Context, token, platform string) bool {
	s.tokens = append(s.tokens, token+"/"+platform)
	return s.queued
}

type stubProposalService struct {
	updates []string
	err     error
	lastQ   domain.PageQuery
}

func (s *stubProposalService) List(_ context.Context, q domain.PageQuery) ([]domain.Proposal, error) {
	s.lastQ = q
	return nil, s.err
}

func (s *stubProposalService) Statuses(context.Context) ([]domain.ProposalStatus, error) {
	return []domain.ProposalStatus{{ID: 2, Label: "Disetujui"}}, s.err
}

func (s *stubProposalService) UpdateStatus(_ context.Context, id, statusID int64, note string) (*domain.Proposal, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updates = append(s.updates, note)
	return &domain.Proposal{ID: id, StatusID: statusID, Note: note}, nil
}

type stubRoleService struct {
	deleted []int64
	err     error
}

func (s *stubRoleService) List(context.Context) ([]domain.RoleRecord, error) {
	return []domain.RoleRecord{{ID: 1, Name: domain.RoleSuperAdmin}}, s.err
}

func (s *stubRoleService) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubDirectoryService struct {
	lastQ domain.PageQuery
	err   error
}

func (s *stubDirectoryService) Ministries(context.Context) ([]domain.Ministry, error) {
	return nil, s.err
}

func (s *stubDirectoryService) ProgramKerja(_ context.Context, q domain.PageQuery) ([]domain.ProgramKerja, error) {
	s.lastQ = q
	return nil, s.err
}

func (s *stubDirectoryService) Users(_ context.Context, q domain.PageQuery) ([]domain.User, error) {
	s.lastQ = q
	return nil, s.err
}

func (s *stubDirectoryService) ActivityLogs(_ context.Context, q domain.PageQuery) ([]domain.ActivityLog, domain.PageMeta, error) {
	s.lastQ = q
	return nil, domain.PageMeta{CurrentPage: q.Page, LastPage: 4, Total: 70}, s.err
}

func (s *stubDirectoryService) Stats(context.Context) (domain.DashboardStats, error) {
	return domain.DashboardStats{"total_proposals": 12}, s.err
}
