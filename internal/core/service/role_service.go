package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

type RoleService struct {
	sessions ports.SessionService
	backend  ports.RoleBackend
	log      zerolog.Logger
}

func NewRoleService(sessions ports.SessionService, backend ports.RoleBackend, log zerolog.Logger) *RoleService {
	return &RoleService{sessions: sessions, backend: backend, log: log}
}

func (s *RoleService) List(ctx context.Context) ([]domain.RoleRecord, error) {
	if _, err := authorize(s.sessions, domain.CanManageRoles); err != nil {
		return nil, err
	}
	return s.backend.ListRoles(ctx)
}

// Delete removes a role record. Protected roles are refused before the
// backend is contacted.
func (s *RoleService) Delete(ctx context.Context, id int64) error {
	if _, err := authorize(s.sessions, domain.CanManageRoles); err != nil {
		return err
	}

	role, err := s.backend.GetRole(ctx, id)
	if err != nil {
		return fmt.Errorf("delete role %d: %w", id, err)
	}
	if domain.IsProtectedRole(role.Name) {
		return fmt.Errorf("delete role %q: %w", role.Name, domain.ErrProtectedRole)
	}

	if err := s.backend.DeleteRole(ctx, id); err != nil {
		return fmt.Errorf("delete role %q: %w", role.Name, err)
	}
	s.log.Info().Int64("role_id", id).Str("role", role.Name).Msg("role deleted")
	return nil
}

var _ ports.RoleService = (*RoleService)(nil)
