package ports

import (
	"context"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
)

// AnnouncementService gates the announcement board on the session's role.
type AnnouncementService interface {
	List(ctx context.Context, page int) ([]domain.Announcement, error)
	UnreadCount(ctx context.Context) (int, error)
	Create(ctx context.Context, in AnnouncementInput) (*domain.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

// ProposalService gates proposal review on the session's role.
type ProposalService interface {
	List(ctx context.Context, q domain.PageQuery) ([]domain.Proposal, error)
	Statuses(ctx context.Context) ([]domain.ProposalStatus, error)
	UpdateStatus(ctx context.Context, id, statusID int64, note string) (*domain.Proposal, error)
}

// RoleService gates role administration on the session's role.
type RoleService interface {
	List(ctx context.Context) ([]domain.RoleRecord, error)
	Delete(ctx context.Context, id int64) error
}

// DeviceService registers the device for push notifications in the background.
type DeviceService interface {
	Register(ctx context.Context, token, platform string) bool
}

// DirectoryService gates the organisation listings on the session's role.
type DirectoryService interface {
	Ministries(ctx context.Context) ([]domain.Ministry, error)
	ProgramKerja(ctx context.Context, q domain.PageQuery) ([]domain.ProgramKerja, error)
	Users(ctx context.Context, q domain.PageQuery) ([]domain.User, error)
	ActivityLogs(ctx context.Context, q domain.PageQuery) ([]domain.ActivityLog, domain.PageMeta, error)
	Stats(ctx context.Context) (domain.DashboardStats, error)
}
