package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

type stubAnnouncementBackend struct {
	created []ports.AnnouncementInput
	deleted []int64
	listErr error
}

func (b *stubAnnouncementBackend) ListAnnouncements(_ context.Context, page int) ([]domain.Announcement, error) {
	if b.listErr != nil {
		return nil, b.listErr
	}
	return []domain.Announcement{{ID: int64(page), Title: "Rapat"}}, nil
}

func (b *stubAnnouncementBackend) AnnouncementUnreadCount(context.Context) (int, error) {
	return 2, nil
}

func (b *stubAnnouncementBackend) CreateAnnouncement(_ context.Context, in ports.AnnouncementInput) (*domain.Announcement, error) {
	b.created = append(b.created, in)
	return &domain.Announcement{ID: 10, Title: in.Title, Content: in.Content, Type: in.Type}, nil
}

func (b *stubAnnouncementBackend) DeleteAnnouncement(_ context.Context, id int64) error {
	b.deleted = append(b.deleted, id)
	return nil
}

func TestAnnouncementService_Create_Allowed(t *testing.T) {
	backend := &stubAnnouncementBackend{}
	svc := NewAnnouncementService(sessionAs(domain.RoleTreasurer), backend, zerolog.Nop())

	got, err := svc.Create(context.Background(), ports.AnnouncementInput{Title: " Rapat ", Content: "Jam 10"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.Type != domain.AnnouncementInfo || backend.created[0].Title != "Rapat" {
		t.Fatalf("unexpected announcement: %+v / %+v", got, backend.created)
	}
}

func TestAnnouncementService_Create_Forbidden(t *testing.T) {
	backend := &stubAnnouncementBackend{}
	for _, role := range []string{domain.RoleMinister, domain.RoleMember, domain.RolePresident, domain.RoleAdmin} {
		svc := NewAnnouncementService(sessionAs(role), backend, zerolog.Nop())
		_, err := svc.Create(context.Background(), ports.AnnouncementInput{Title: "x", Content: "y"})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("%s: expected ErrForbidden, got %v", role, err)
		}
	}
	if len(backend.created) != 0 {
		t.Fatalf("backend must not be called")
	}
}

func TestAnnouncementService_Create_Validation(t *testing.T) {
	svc := NewAnnouncementService(sessionAs(domain.RoleSuperAdmin), &stubAnnouncementBackend{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.AnnouncementInput{Title: "  "}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.AnnouncementInput{Title: "a", Content: "b", Type: "gossip"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for type, got %v", err)
	}
}

func TestAnnouncementService_Delete(t *testing.T) {
	backend := &stubAnnouncementBackend{}

	viceSvc := NewAnnouncementService(sessionAs(domain.RoleViceBEM), backend, zerolog.Nop())
	if err := viceSvc.Delete(context.Background(), 5); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("vice president must not delete, got %v", err)
	}

	presSvc := NewAnnouncementService(sessionAs(domain.RolePresidentBEM), backend, zerolog.Nop())
	if err := presSvc.Delete(context.Background(), 5); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(backend.deleted) != 1 || backend.deleted[0] != 5 {
		t.Fatalf("unexpected deletes: %v", backend.deleted)
	}
}

func TestAnnouncementService_RequiresSession(t *testing.T) {
	svc := NewAnnouncementService(&fixedSessions{}, &stubAnnouncementBackend{}, zerolog.Nop())

	if _, err := svc.List(context.Background(), 1); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := svc.UnreadCount(context.Background()); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestAnnouncementService_List_NormalisesPage(t *testing.T) {
	svc := NewAnnouncementService(sessionAs(domain.RoleMember), &stubAnnouncementBackend{}, zerolog.Nop())

	items, err := svc.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ID != 1 {
		t.Fatalf("expected page 1, got %+v", items)
	}
}
