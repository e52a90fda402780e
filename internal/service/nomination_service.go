package service

import (
	"context"

	"club-elections/internal/domain"
	"club-elections/internal/repository"
	apperrors "club-elections/pkg/errors"

	"go.uber.org/zap"
)

// NominationService tracks candidacy proposals and their acceptance state.
type NominationService struct {
	nominations repository.NominationRepository
	logger      *zap.Logger
}

func NewNominationService(nominations repository.NominationRepository, logger *zap.Logger) *NominationService {
	return &NominationService{
		nominations: nominations,
		logger:      logger,
	}
}

// Submit records a new nomination in the pending state. Self-nomination is
// allowed, as is nominating the same member for the same position more than
// once; each accepted nomination becomes its own ballot option.
func (s *NominationService) Submit(ctx context.Context, req *domain.SubmitNominationRequest) (int, error) {
	if req.Nominator <= 0 || req.Nominee <= 0 || req.Position <= 0 {
		return 0, apperrors.NewValidationError("nominator, nominee and position are required", nil)
	}

	id, err := s.nominations.Create(ctx, req.Nominator, req.Nominee, req.Position)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, apperrors.NewValidationError("position or member does not exist", nil)
		}
		return 0, apperrors.NewInternalError("failed to create nomination", err)
	}

	s.logger.Info("nomination submitted",
		zap.Int("nomination_id", id),
		zap.Int("nominator", req.Nominator),
		zap.Int("nominee", req.Nominee),
		zap.Int("position", req.Position))
	return id, nil
}

// Respond records the nominee's accept/decline decision. Responding to a
// nomination that already has a response overwrites it: last write wins,
// with no audit trail.
func (s *NominationService) Respond(ctx context.Context, nominationID int, req *domain.RespondNominationRequest) error {
	if req.Accepted == nil {
		return apperrors.NewValidationError("accepted is required", nil)
	}

	found, err := s.nominations.SetAccepted(ctx, nominationID, *req.Accepted)
	if err != nil {
		return apperrors.NewInternalError("failed to update nomination", err)
	}
	if !found {
		return apperrors.NewNotFoundError("nomination not found")
	}

	s.logger.Info("nomination response recorded",
		zap.Int("nomination_id", nominationID),
		zap.Bool("accepted", *req.Accepted))
	return nil
}

// ListPendingForMember returns nominations awaiting the member's response,
// ordered by nomination deadline ascending.
func (s *NominationService) ListPendingForMember(ctx context.Context, memberID int) ([]domain.PendingNomination, error) {
	nominations, err := s.nominations.ListPendingForNominee(ctx, memberID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list pending nominations", err)
	}
	if nominations == nil {
		nominations = []domain.PendingNomination{}
	}
	return nominations, nil
}

// ListForElection returns all nominations for positions contested in the
// election, regardless of state.
func (s *NominationService) ListForElection(ctx context.Context, electionID int) ([]domain.ElectionNomination, error) {
	nominations, err := s.nominations.ListForElection(ctx, electionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list nominations", err)
	}
	if nominations == nil {
		nominations = []domain.ElectionNomination{}
	}
	return nominations, nil
}
