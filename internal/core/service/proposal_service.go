package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

type ProposalService struct {
	sessions ports.SessionService
	backend  ports.ProposalBackend
	log      zerolog.Logger
}

func NewProposalService(sessions ports.SessionService, backend ports.ProposalBackend, log zerolog.Logger) *ProposalService {
	return &ProposalService{sessions: sessions, backend: backend, log: log}
}

func (s *ProposalService) List(ctx context.Context, q domain.PageQuery) ([]domain.Proposal, error) {
	if _, err := authorize(s.sessions, nil); err != nil {
		return nil, err
	}
	return s.backend.ListProposals(ctx, normalisePage(q))
}

func (s *ProposalService) Statuses(ctx context.Context) ([]domain.ProposalStatus, error) {
	if _, err := authorize(s.sessions, nil); err != nil {
		return nil, err
	}
	return s.backend.ProposalStatuses(ctx)
}

// UpdateStatus records a review decision on a proposal.
func (s *ProposalService) UpdateStatus(ctx context.Context, id, statusID int64, note string) (*domain.Proposal, error) {
	primary, err := authorize(s.sessions, domain.CanReviewProposals)
	if err != nil {
		return nil, err
	}
	if statusID <= 0 {
		return nil, fmt.Errorf("review proposal %d: status is required: %w", id, domain.ErrInvalidInput)
	}

	updated, err := s.backend.UpdateProposalStatus(ctx, id, statusID, note)
	if err != nil {
		return nil, fmt.Errorf("review proposal %d: %w", id, err)
	}
	s.log.Info().Int64("proposal_id", id).Int64("status_id", statusID).Str("role", primary).Msg("proposal reviewed")
	return updated, nil
}

var _ ports.ProposalService = (*ProposalService)(nil)
