package service

import (
	"context"
	"time"

	"club-elections/internal/domain"
	"club-elections/internal/repository"
	apperrors "club-elections/pkg/errors"

	"go.uber.org/zap"
)

// BallotService derives ballots from accepted nominations. One ballot is
// opened per contested position that has at least one accepted nomination,
// no declared winner, and no ballot already open.
type BallotService struct {
	elections   repository.ElectionRepository
	nominations repository.NominationRepository
	ballots     repository.BallotRepository
	winners     repository.WinnerRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewBallotService(
	elections repository.ElectionRepository,
	nominations repository.NominationRepository,
	ballots repository.BallotRepository,
	winners repository.WinnerRepository,
	logger *zap.Logger,
	now func() time.Time,
) *BallotService {
	if now == nil {
		now = time.Now
	}
	return &BallotService{
		elections:   elections,
		nominations: nominations,
		ballots:     ballots,
		winners:     winners,
		logger:      logger,
		now:         now,
	}
}

// Generate walks the election's contested positions in ballot order and opens
// a ballot for each position that still qualifies. Generation is skip-based
// so re-running it after more nominations are accepted is safe: positions
// with a declared winner or an already-open ballot are passed over.
//
// Each position is its own unit of consistency. A failure persisting one
// ballot is logged and does not stop the remaining positions; ballots already
// committed stay committed.
func (s *BallotService) Generate(ctx context.Context, electionID int) (*domain.GenerateBallotsResponse, error) {
	positions, err := s.elections.ContestedPositions(ctx, electionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load contested positions", err)
	}
	if len(positions) == 0 {
		return nil, apperrors.NewValidationError("no positions for election", nil)
	}

	response := &domain.GenerateBallotsResponse{Ballots: []domain.BallotSummary{}}

	for _, position := range positions {
		log := s.logger.With(
			zap.Int("election_id", electionID),
			zap.Int("position_id", position.ID),
			zap.String("position", position.Title))

		won, err := s.winners.ExistsForPosition(ctx, position.ID)
		if err != nil {
			log.Error("winner check failed, skipping position", zap.Error(err))
			continue
		}
		if won {
			log.Debug("position already has a declared winner, skipping")
			continue
		}

		open, err := s.ballots.ExistsForPosition(ctx, electionID, position.ID)
		if err != nil {
			log.Error("ballot check failed, skipping position", zap.Error(err))
			continue
		}
		if open {
			log.Debug("ballot already open for position, skipping")
			continue
		}

		nominationIDs, err := s.nominations.AcceptedIDsForPosition(ctx, electionID, position.ID)
		if err != nil {
			log.Error("accepted nomination lookup failed, skipping position", zap.Error(err))
			continue
		}
		if len(nominationIDs) == 0 {
			log.Debug("no accepted nominations for position, skipping")
			continue
		}

		ballotID, err := s.ballots.CreateWithOptions(ctx, electionID, position.ID, s.now(), nominationIDs)
		if err != nil {
			if isUniqueViolation(err) {
				// Lost a race with a concurrent generation run; the
				// position is covered either way.
				log.Warn("concurrent run already created this ballot, skipping")
				continue
			}
			log.Error("failed to persist ballot, continuing with remaining positions", zap.Error(err))
			continue
		}

		log.Info("ballot created",
			zap.Int("ballot_id", ballotID),
			zap.Int("candidates", len(nominationIDs)))

		response.Ballots = append(response.Ballots, domain.BallotSummary{
			BallotID:     ballotID,
			Position:     position.Title,
			OptionsCount: len(nominationIDs),
		})
	}

	return response, nil
}

// ListForMember returns every ballot annotated with whether the member has
// voted on it.
func (s *BallotService) ListForMember(ctx context.Context, memberID int) ([]domain.MemberBallot, error) {
	ballots, err := s.ballots.ListForMember(ctx, memberID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list ballots", err)
	}
	if ballots == nil {
		ballots = []domain.MemberBallot{}
	}
	return ballots, nil
}

// GetDetail returns one ballot with its candidate options.
func (s *BallotService) GetDetail(ctx context.Context, ballotID int) (*domain.BallotDetail, error) {
	detail, err := s.ballots.GetDetail(ctx, ballotID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get ballot", err)
	}
	if detail == nil {
		return nil, apperrors.NewNotFoundError("ballot not found")
	}
	if detail.Options == nil {
		detail.Options = []domain.BallotOption{}
	}
	return detail, nil
}
