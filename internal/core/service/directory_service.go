package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

// DirectoryService exposes the organisation listings. Each listing is gated
// on the menu screen that shows it.
type DirectoryService struct {
	sessions ports.SessionService
	backend  ports.DirectoryBackend
	log      zerolog.Logger
}

func NewDirectoryService(sessions ports.SessionService, backend ports.DirectoryBackend, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{sessions: sessions, backend: backend, log: log}
}

func screenGate(screen domain.ScreenID) func(string) bool {
	return func(primary string) bool { return domain.CanAccess(primary, screen) }
}

func (s *DirectoryService) Ministries(ctx context.Context) ([]domain.Ministry, error) {
	if _, err := authorize(s.sessions, nil); err != nil {
		return nil, err
	}
	return s.backend.ListMinistries(ctx)
}

func (s *DirectoryService) ProgramKerja(ctx context.Context, q domain.PageQuery) ([]domain.ProgramKerja, error) {
	if _, err := authorize(s.sessions, screenGate(domain.ScreenProgramKerjaManagement)); err != nil {
		return nil, err
	}
	return s.backend.ListProgramKerja(ctx, normalisePage(q))
}

func (s *DirectoryService) Users(ctx context.Context, q domain.PageQuery) ([]domain.User, error) {
	if _, err := authorize(s.sessions, screenGate(domain.ScreenUserManagement)); err != nil {
		return nil, err
	}
	return s.backend.ListUsers(ctx, normalisePage(q))
}

func (s *DirectoryService) ActivityLogs(ctx context.Context, q domain.PageQuery) ([]domain.ActivityLog, domain.PageMeta, error) {
	if _, err := authorize(s.sessions, screenGate(domain.ScreenActivityLog)); err != nil {
		return nil, domain.PageMeta{}, err
	}
	return s.backend.ListActivityLogs(ctx, normalisePage(q))
}

// Stats feeds the dashboard counters; it is open to every recognised role.
func (s *DirectoryService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	if _, err := authorize(s.sessions, domain.IsKnownRole); err != nil {
		return nil, err
	}
	return s.backend.DashboardStats(ctx)
}

func normalisePage(q domain.PageQuery) domain.PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

var _ ports.DirectoryService = (*DirectoryService)(nil)
