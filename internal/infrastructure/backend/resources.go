package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

func (c *Client) ListAnnouncements(ctx context.Context, page int) ([]domain.Announcement, error) {
	var out []domain.Announcement
	_, err := c.get(ctx, "/announcements", pageQuery(domain.PageQuery{Page: page}), &out)
	return out, err
}

func (c *Client) AnnouncementUnreadCount(ctx context.Context) (int, error) {
	env, err := c.get(ctx, "/announcements/unread-count", nil, nil)
	if err != nil {
		return 0, err
	}
	return env.Count, nil
}

func (c *Client) CreateAnnouncement(ctx context.Context, in ports.AnnouncementInput) (*domain.Announcement, error) {
	env, err := c.do(ctx, http.MethodPost, "/announcements", nil, in)
	if err != nil {
		return nil, err
	}
	out := domain.Announcement{Title: in.Title, Content: in.Content, Type: in.Type}
	return &out, decodeData(env, "/announcements", &out)
}

func (c *Client) DeleteAnnouncement(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/announcements/%d", id), nil, nil)
	return err
}

func (c *Client) ListProposals(ctx context.Context, q domain.PageQuery) ([]domain.Proposal, error) {
	var out []domain.Proposal
	_, err := c.get(ctx, "/proposals", pageQuery(q), &out)
	return out, err
}

func (c *Client) ProposalStatuses(ctx context.Context) ([]domain.ProposalStatus, error) {
	var out []domain.ProposalStatus
	_, err := c.get(ctx, "/proposals/statuses", nil, &out)
	return out, err
}

type statusUpdate struct {
	StatusID int64   `json:"status_id"`
	Note     *string `json:"keterangan"`
}

func (c *Client) UpdateProposalStatus(ctx context.Context, id, statusID int64, note string) (*domain.Proposal, error) {
	body := statusUpdate{StatusID: statusID}
	if note != "" {
		body.Note = &note
	}
	path := fmt.Sprintf("/proposals/%d/status", id)
	env, err := c.do(ctx, http.MethodPatch, path, nil, body)
	if err != nil {
		return nil, err
	}
	out := domain.Proposal{ID: id, StatusID: statusID, Note: note}
	return &out, decodeData(env, path, &out)
}

func (c *Client) ListRoles(ctx context.Context) ([]domain.RoleRecord, error) {
	var out []domain.RoleRecord
	_, err := c.get(ctx, "/roles", nil, &out)
	return out, err
}

func (c *Client) GetRole(ctx context.Context, id int64) (*domain.RoleRecord, error) {
	var out domain.RoleRecord
	if _, err := c.get(ctx, fmt.Sprintf("/roles/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRole(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/roles/%d", id), nil, nil)
	return err
}

func (c *Client) ListMinistries(ctx context.Context) ([]domain.Ministry, error) {
	var out []domain.Ministry
	_, err := c.get(ctx, "/ministries", nil, &out)
	return out, err
}

func (c *Client) ListProgramKerja(ctx context.Context, q domain.PageQuery) ([]domain.ProgramKerja, error) {
	var out []domain.ProgramKerja
	_, err := c.get(ctx, "/program-kerja", pageQuery(q), &out)
	return out, err
}

func (c *Client) ListUsers(ctx context.Context, q domain.PageQuery) ([]domain.User, error) {
	var out []domain.User
	_, err := c.get(ctx, "/users", pageQuery(q), &out)
	return out, err
}

func (c *Client) ListActivityLogs(ctx context.Context, q domain.PageQuery) ([]domain.ActivityLog, domain.PageMeta, error) {
	var out []domain.ActivityLog
	env, err := c.get(ctx, "/activity-logs", pageQuery(q), &out)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	meta := domain.PageMeta{CurrentPage: q.Page, LastPage: q.Page}
	if env.Meta != nil {
		meta = *env.Meta
	}
	return out, meta, nil
}

func (c *Client) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	out := domain.DashboardStats{}
	_, err := c.get(ctx, "/dashboard/stats", nil, &out)
	return out, err
}

type deviceTokenRequest struct {
	Token          string `json:"token"`
	Platform       string `json:"platform"`
	InstallationID string `json:"installation_id,omitempty"`
}

func (c *Client) SaveDeviceToken(ctx context.Context, token, platform, installationID string) error {
	_, err := c.do(ctx, http.MethodPost, "/device-token", nil, deviceTokenRequest{
		Token:          token,
		Platform:       platform,
		InstallationID: installationID,
	})
	return err
}

var (
	_ ports.AnnouncementBackend = (*Client)(nil)
	_ ports.ProposalBackend     = (*Client)(nil)
	_ ports.RoleBackend         = (*Client)(nil)
	_ ports.DirectoryBackend    = (*Client)(nil)
	_ ports.DeviceBackend       = (*Client)(nil)
)
