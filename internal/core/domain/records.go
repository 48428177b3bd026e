package domain

import "time"

// Announcement types accepted by the backend.
const (
	AnnouncementInfo      = "info"
	AnnouncementImportant = "important"
	AnnouncementWarning   = "warning"
	AnnouncementEvent     = "event"
)

// Program kerja statuses used by the backend forms.
const (
	ProgramNotStarted = "Belum Mulai"
	ProgramOngoing    = "Sedang Berjalan"
	ProgramDone       = "Selesai"
	ProgramPostponed  = "Ditunda"
)

// Announcement is an entry on the announcement board.
type Announcement struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Proposal is a document routed through the review workflow.
type Proposal struct {
	ID             int64   `json:"id"`
	Title          string  `json:"judul"`
	Description    string  `json:"deskripsi,omitempty"`
	Budget         float64 `json:"anggaran,omitempty"`
	Status         string  `json:"status,omitempty"`
	StatusID       int64   `json:"status_id,omitempty"`
	Note           string  `json:"keterangan,omitempty"`
	MinistryID     *int64  `json:"ministry_id,omitempty"`
	Ministry       string  `json:"ministry,omitempty"`
	Submitter      string  `json:"user,omitempty"`
	SubmissionDate string  `json:"tanggal_pengajuan,omitempty"`
}

// ProposalStatus is one selectable review outcome.
type ProposalStatus struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// ProgramKerja is a tracked work program.
type ProgramKerja struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nama_program"`
	Description string  `json:"deskripsi,omitempty"`
	MinistryID  *int64  `json:"ministry_id,omitempty"`
	Ministry    string  `json:"ministry,omitempty"`
	Status      string  `json:"status"`
	StartDate   string  `json:"tanggal_mulai,omitempty"`
	EndDate     string  `json:"tanggal_selesai,omitempty"`
	Budget      float64 `json:"anggaran,omitempty"`
}

// Ministry is a departmental unit (kementerian).
type Ministry struct {
	ID          int64  `json:"id"`
	Name        string `json:"nama"`
	Description string `json:"deskripsi,omitempty"`
	UsersCount  int    `json:"users_count"`
}

// RoleRecord is a role as administered on the backend, as opposed to the
// role names carried on a User.
type RoleRecord struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	UsersCount  int      `json:"users_count"`
	Permissions []string `json:"permissions,omitempty"`
}

// ActivityLog is one audit trail entry.
type ActivityLog struct {
	ID           int64     `json:"id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	User         string    `json:"user,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PageQuery selects a page of a listing. Page is 1-based.
type PageQuery struct {
	Page       int
	Search     string
	MinistryID *int64
	Type       string
}

// PageMeta is the pagination block some listings carry.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
}

// HasMore reports whether another page follows.
func (m PageMeta) HasMore() bool { return m.CurrentPage < m.LastPage }

// DashboardStats is the counter block shown on the admin dashboard. Keys are
// backend-defined.
type DashboardStats map[string]any
