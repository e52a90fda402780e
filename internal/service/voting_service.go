package service

import (
	"context"
	"time"

	"club-elections/internal/domain"
	"club-elections/internal/repository"
	apperrors "club-elections/pkg/errors"

	"go.uber.org/zap"
)

// VotingService is the voting ledger: it records one final vote per
// (member, ballot) pair and tallies results on demand.
type VotingService struct {
	votes   repository.VoteRepository
	ballots repository.BallotRepository
	cache   *CacheService
	logger  *zap.Logger
	now     func() time.Time
}

func NewVotingService(
	votes repository.VoteRepository,
	ballots repository.BallotRepository,
	cache *CacheService,
	logger *zap.Logger,
	now func() time.Time,
) *VotingService {
	if now == nil {
		now = time.Now
	}
	return &VotingService{
		votes:   votes,
		ballots: ballots,
		cache:   cache,
		logger:  logger,
		now:     now,
	}
}

// CastVote records a member's choice on a ballot. The check-then-insert
// sequence is backed by the (ballot, member) uniqueness constraint, so two
// concurrent casts cannot both land: the loser's insert surfaces as a
// conflict just like a pre-check hit.
func (s *VotingService) CastVote(ctx context.Context, req *domain.CastVoteRequest) (int, error) {
	if req.MemberID <= 0 || req.BallotID <= 0 || req.BallotOptionID <= 0 {
		return 0, apperrors.NewValidationError("member_id, ballot_id and ballot_option_id are required", nil)
	}

	if s.cache.HasVotedMarker(ctx, req.MemberID, req.BallotID) {
		return 0, apperrors.NewConflictError("already voted on this ballot")
	}

	voted, err := s.votes.HasVoted(ctx, req.BallotID, req.MemberID)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to check existing vote", err)
	}
	if voted {
		s.cache.MarkVoted(ctx, req.MemberID, req.BallotID)
		return 0, apperrors.NewConflictError("already voted on this ballot")
	}

	id, err := s.votes.Create(ctx, req.BallotID, req.MemberID, req.BallotOptionID, s.now())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.NewConflictError("already voted on this ballot")
		}
		if isForeignKeyViolation(err) {
			return 0, apperrors.NewNotFoundError("ballot or ballot option not found")
		}
		return 0, apperrors.NewInternalError("failed to record vote", err)
	}

	s.cache.MarkVoted(ctx, req.MemberID, req.BallotID)

	s.logger.Info("vote cast",
		zap.Int("vote_id", id),
		zap.Int("ballot_id", req.BallotID),
		zap.Int("member_id", req.MemberID))
	return id, nil
}

// GetResults tallies a ballot: per-candidate counts ordered by votes
// descending then surname, with the total counted independently as a guard
// against votes referencing missing options.
func (s *VotingService) GetResults(ctx context.Context, ballotID int) (*domain.BallotResults, error) {
	ballot, err := s.ballots.GetByID(ctx, ballotID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get ballot", err)
	}
	if ballot == nil {
		return nil, apperrors.NewNotFoundError("ballot not found")
	}

	return s.cache.GetResultsWithCache(ctx, ballotID, s.tallyResults)
}

func (s *VotingService) tallyResults(ctx context.Context, ballotID int) (*domain.BallotResults, error) {
	results, err := s.votes.Results(ctx, ballotID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to tally results", err)
	}
	if results == nil {
		results = []domain.CandidateResult{}
	}

	total, err := s.votes.TotalVotes(ctx, ballotID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count votes", err)
	}

	return &domain.BallotResults{
		Results:    results,
		TotalVotes: total,
	}, nil
}
