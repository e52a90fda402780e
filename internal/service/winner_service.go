package service

import (
	"context"

	"club-elections/internal/domain"
	"club-elections/internal/repository"
	apperrors "club-elections/pkg/errors"

	"go.uber.org/zap"
)

// WinnerService records declared winners. A declared winner suppresses
// future ballot generation for that position.
type WinnerService struct {
	ballots repository.BallotRepository
	winners repository.WinnerRepository
	logger  *zap.Logger
}

func NewWinnerService(
	ballots repository.BallotRepository,
	winners repository.WinnerRepository,
	logger *zap.Logger,
) *WinnerService {
	return &WinnerService{
		ballots: ballots,
		winners: winners,
		logger:  logger,
	}
}

// Declare records the winner for the position the ballot contests. The
// declaration is an administrative action: no check is made that the member
// appears among the ballot's candidates. Each position can have at most one
// winner; a second declaration is a conflict.
func (s *WinnerService) Declare(ctx context.Context, ballotID int, req *domain.DeclareWinnerRequest) (int, error) {
	if req.MemberID <= 0 {
		return 0, apperrors.NewValidationError("member_id is required", nil)
	}

	ballot, err := s.ballots.GetByID(ctx, ballotID)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to get ballot", err)
	}
	if ballot == nil {
		return 0, apperrors.NewNotFoundError("ballot not found")
	}

	id, err := s.winners.Create(ctx, req.MemberID, ballot.PositionID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.NewConflictError("winner already declared for this position")
		}
		if isForeignKeyViolation(err) {
			return 0, apperrors.NewValidationError("member does not exist", nil)
		}
		return 0, apperrors.NewInternalError("failed to declare winner", err)
	}

	s.logger.Info("winner declared",
		zap.Int("winner_id", id),
		zap.Int("ballot_id", ballotID),
		zap.Int("position_id", ballot.PositionID),
		zap.Int("member_id", req.MemberID))
	return id, nil
}

// ListForElection returns the declared winners of positions contested in the
// election, ordered by ballot order.
func (s *WinnerService) ListForElection(ctx context.Context, electionID int) ([]domain.ElectionWinner, error) {
	winners, err := s.winners.ListForElection(ctx, electionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list winners", err)
	}
	if winners == nil {
		winners = []domain.ElectionWinner{}
	}
	return winners, nil
}
