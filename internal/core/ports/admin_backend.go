package ports

import (
	"context"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
)

// AnnouncementInput carries a new announcement.
type AnnouncementInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// AnnouncementBackend is the announcement board on the REST backend.
type AnnouncementBackend interface {
	ListAnnouncements(ctx context.Context, page int) ([]domain.Announcement, error)
	AnnouncementUnreadCount(ctx context.Context) (int, error)
	CreateAnnouncement(ctx context.Context, in AnnouncementInput) (*domain.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int64) error
}

// ProposalBackend covers the proposal review workflow.
type ProposalBackend interface {
	ListProposals(ctx context.Context, q domain.PageQuery) ([]domain.Proposal, error)
	ProposalStatuses(ctx context.Context) ([]domain.ProposalStatus, error)
	UpdateProposalStatus(ctx context.Context, id, statusID int64, note string) (*domain.Proposal, error)
}

// RoleBackend covers role administration.
type RoleBackend interface {
	ListRoles(ctx context.Context) ([]domain.RoleRecord, error)
	GetRole(ctx context.Context, id int64) (*domain.RoleRecord, error)
	DeleteRole(ctx context.Context, id int64) error
}

// DeviceBackend registers push notification tokens.
type DeviceBackend interface {
	SaveDeviceToken(ctx context.Context, token, platform, installationID string) error
}

// DirectoryBackend covers the read-only organisation listings.
type DirectoryBackend interface {
	ListMinistries(ctx context.Context) ([]domain.Ministry, error)
	ListProgramKerja(ctx context.Context, q domain.PageQuery) ([]domain.ProgramKerja, error)
	ListUsers(ctx context.Context, q domain.PageQuery) ([]domain.User, error)
	ListActivityLogs(ctx context.Context, q domain.PageQuery) ([]domain.ActivityLog, domain.PageMeta, error)
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
}
