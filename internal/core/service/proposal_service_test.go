package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
)

type stubProposalBackend struct {
	lastQuery domain.PageQuery
	updates   int
	updateErr error
}

func (b *stubProposalBackend) ListProposals(_ context.Context, q domain.PageQuery) ([]domain.Proposal, error) {
	b.lastQuery = q
	return []domain.Proposal{{ID: 1, Title: "Seminar"}}, nil
}

func (b *stubProposalBackend) ProposalStatuses(context.Context) ([]domain.ProposalStatus, error) {
	return []domain.ProposalStatus{{ID: 1, Label: "Pending"}, {ID: 2, Label: "Disetujui"}}, nil
}

func (b *stubProposalBackend) UpdateProposalStatus(_ context.Context, id, statusID int64, note string) (*domain.Proposal, error) {
	b.updates++
	if b.updateErr != nil {
		return nil, b.updateErr
	}
	return &domain.Proposal{ID: id, StatusID: statusID, Note: note}, nil
}

func TestProposalService_UpdateStatus_MemberForbidden(t *testing.T) {
	backend := &stubProposalBackend{}
	svc := NewProposalService(sessionAs(domain.RoleMember), backend, zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), 1, 2, ""); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if backend.updates != 0 {
		t.Fatalf("backend must not be called")
	}
}

func TestProposalService_UpdateStatus_Minister(t *testing.T) {
	backend := &stubProposalBackend{}
	svc := NewProposalService(sessionAs(domain.RoleMinister), backend, zerolog.Nop())

	got, err := svc.UpdateStatus(context.Background(), 9, 2, "lengkapi RAB")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.StatusID != 2 || got.Note != "lengkapi RAB" {
		t.Fatalf("unexpected proposal: %+v", got)
	}
}

func TestProposalService_UpdateStatus_WrapsBackendError(t *testing.T) {
	backend := &stubProposalBackend{updateErr: &domain.BackendError{Status: 404, Message: "Proposal tidak ditemukan"}}
	svc := NewProposalService(sessionAs(domain.RoleSuperAdmin), backend, zerolog.Nop())

	_, err := svc.UpdateStatus(context.Background(), 9, 2, "")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProposalService_UpdateStatus_RequiresStatus(t *testing.T) {
	svc := NewProposalService(sessionAs(domain.RoleSuperAdmin), &stubProposalBackend{}, zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), 9, 0, ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProposalService_List(t *testing.T) {
	backend := &stubProposalBackend{}
	svc := NewProposalService(sessionAs(domain.RoleMember), backend, zerolog.Nop())

	if _, err := svc.List(context.Background(), domain.PageQuery{Search: "seminar"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if backend.lastQuery.Page != 1 || backend.lastQuery.Search != "seminar" {
		t.Fatalf("unexpected query: %+v", backend.lastQuery)
	}
}
