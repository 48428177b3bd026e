package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

var announcementTypes = []string{
	domain.AnnouncementInfo,
	domain.AnnouncementImportant,
	domain.AnnouncementWarning,
	domain.AnnouncementEvent,
}

type AnnouncementService struct {
	sessions ports.SessionService
	backend  ports.AnnouncementBackend
	log      zerolog.Logger
}

func NewAnnouncementService(sessions ports.SessionService, backend ports.AnnouncementBackend, log zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{sessions: sessions, backend: backend, log: log}
}

func (s *AnnouncementService) List(ctx context.Context, page int) ([]domain.Announcement, error) {
	if _, err := authorize(s.sessions, nil); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return s.backend.ListAnnouncements(ctx, page)
}

func (s *AnnouncementService) UnreadCount(ctx context.Context) (int, error) {
	if _, err := authorize(s.sessions, nil); err != nil {
		return 0, err
	}
	return s.backend.AnnouncementUnreadCount(ctx)
}

// Create publishes an announcement. Type defaults to info.
func (s *AnnouncementService) Create(ctx context.Context, in ports.AnnouncementInput) (*domain.Announcement, error) {
	primary, err := authorize(s.sessions, domain.CanCreateAnnouncement)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" || in.Content == "" {
		return nil, fmt.Errorf("create announcement: title and content are required: %w", domain.ErrInvalidInput)
	}
	if in.Type == "" {
		in.Type = domain.AnnouncementInfo
	}
	if !slices.Contains(announcementTypes, in.Type) {
		return nil, fmt.Errorf("create announcement: unknown type %q: %w", in.Type, domain.ErrInvalidInput)
	}

	created, err := s.backend.CreateAnnouncement(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	s.log.Info().Int64("announcement_id", created.ID).Str("role", primary).Msg("announcement created")
	return created, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	primary, err := authorize(s.sessions, domain.CanDeleteAnnouncement)
	if err != nil {
		return err
	}
	if err := s.backend.DeleteAnnouncement(ctx, id); err != nil {
		return fmt.Errorf("delete announcement %d: %w", id, err)
	}
	s.log.Info().Int64("announcement_id", id).Str("role", primary).Msg("announcement deleted")
	return nil
}

var _ ports.AnnouncementService = (*AnnouncementService)(nil)
