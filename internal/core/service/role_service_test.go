package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
)

type stubRoleBackend struct {
	roles   map[int64]domain.RoleRecord
	deleted []int64
}

func newStubRoleBackend() *stubRoleBackend {
	return &stubRoleBackend{roles: map[int64]domain.RoleRecord{
		1: {ID: 1, Name: domain.RoleSuperAdmin},
		2: {ID: 2, Name: domain.RoleTreasurer},
	}}
}

func (b *stubRoleBackend) ListRoles(context.Context) ([]domain.RoleRecord, error) {
	out := make([]domain.RoleRecord, 0, len(b.roles))
	for _, r := range b.roles {
		out = append(out, r)
	}
	return out, nil
}

func (b *stubRoleBackend) GetRole(_ context.Context, id int64) (*domain.RoleRecord, error) {
	r, ok := b.roles[id]
	if !ok {
		return nil, &domain.BackendError{Status: 404}
	}
	return &r, nil
}

func (b *stubRoleBackend) DeleteRole(_ context.Context, id int64) error {
	b.deleted = append(b.deleted, id)
	delete(b.roles, id)
	return nil
}

func TestRoleService_List_OnlySuperAdmin(t *testing.T) {
	backend := newStubRoleBackend()

	if _, err := NewRoleService(sessionAs(domain.RoleAdmin), backend, zerolog.Nop()).List(context.Background()); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("admin should not manage roles, got %v", err)
	}
	roles, err := NewRoleService(sessionAs(domain.RoleSuperAdmin), backend, zerolog.Nop()).List(context.Background())
	if err != nil || len(roles) != 2 {
		t.Fatalf("list: %v %v", roles, err)
	}
}

func TestRoleService_Delete_ProtectedRole(t *testing.T) {
	backend := newStubRoleBackend()
	svc := NewRoleService(sessionAs(domain.RoleSuperAdmin), backend, zerolog.Nop())

	if err := svc.Delete(context.Background(), 1); !errors.Is(err, domain.ErrProtectedRole) {
		t.Fatalf("expected ErrProtectedRole, got %v", err)
	}
	if len(backend.deleted) != 0 {
		t.Fatalf("protected role must not be deleted")
	}
}

func TestRoleService_Delete(t *testing.T) {
	backend := newStubRoleBackend()
	svc := NewRoleService(sessionAs(domain.RoleSuperAdmin), backend, zerolog.Nop())

	if err := svc.Delete(context.Background(), 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
