package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"club-elections/internal/domain"
	apperrors "club-elections/pkg/errors"
	redispkg "club-elections/pkg/redis"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *CacheService) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := redispkg.NewClient("redis://"+mr.Addr(), "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewCacheService(client, zap.NewNop())
}

func noCache() *CacheService {
	return NewCacheService(nil, zap.NewNop())
}

func TestVotingService_CastVote_Success(t *testing.T) {
	var gotBallot, gotMember, gotOption int
	votes := &voteRepoStub{
		createFn: func(ctx context.Context, ballotID, memberID, ballotOptionID int, castAt time.Time) (int, error) {
			gotBallot, gotMember, gotOption = ballotID, memberID, ballotOptionID
			assert.Equal(t, fixedNow(), castAt)
			return 42, nil
		},
	}

	svc := NewVotingService(votes, &ballotRepoStub{}, noCache(), zap.NewNop(), fixedNow)

	id, err := svc.CastVote(context.Background(), &domain.CastVoteRequest{
		MemberID:       7,
		BallotID:       3,
		BallotOptionID: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, id)
	assert.Equal(t, 3, gotBallot)
	assert.Equal(t, 7, gotMember)
	assert.Equal(t, 12, gotOption)
}

func TestVotingService_CastVote_MissingFields(t *testing.T) {
	svc := NewVotingService(&voteRepoStub{}, &ballotRepoStub{}, noCache(), zap.NewNop(), fixedNow)

	tests := []struct {
		name string
		req  *domain.CastVoteRequest
	}{
		{"zero member", &domain.CastVoteRequest{BallotID: 1, BallotOptionID: 1}},
		{"zero ballot", &domain.CastVoteRequest{MemberID: 1, BallotOptionID: 1}},
		{"zero option", &domain.CastVoteRequest{MemberID: 1, BallotID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CastVote(context.Background(), tt.req)
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.StatusCode)
		})
	}
}

func TestVotingService_CastVote_SecondVoteConflicts(t *testing.T) {
	voted := false
	votes := &voteRepoStub{
		hasVotedFn: func(ctx context.Context, ballotID, memberID int) (bool, error) {
			return voted, nil
		},
		createFn: func(ctx context.Context, ballotID, memberID, ballotOptionID int, castAt time.Time) (int, error) {
			voted = true
			return 1, nil
		},
	}

	svc := NewVotingService(votes, &ballotRepoStub{}, noCache(), zap.NewNop(), fixedNow)

	req := &domain.CastVoteRequest{MemberID: 7, BallotID: 3, BallotOptionID: 12}
	_, err := svc.CastVote(context.Background(), req)
	require.NoError(t, err)

	// Second cast, even for a different option, is rejected.
	req.BallotOptionID = 13
	_, err = svc.CastVote(context.Background(), req)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.StatusCode)
}

func TestVotingService_CastVote_RaceLoserConflicts(t *testing.T) {
	// Pre-check sees no vote, but the insert loses the race and hits the
	// (ballot, member) uniqueness constraint.
	votes := &voteRepoStub{
		createFn: func(ctx context.Context, ballotID, memberID, ballotOptionID int, castAt time.Time) (int, error) {
			return 0, &pgconn.PgError{Code: "23505"}
		},
	}

	svc := NewVotingService(votes, &ballotRepoStub{}, noCache(), zap.NewNop(), fixedNow)

	_, err := svc.CastVote(context.Background(), &domain.CastVoteRequest{MemberID: 7, BallotID: 3, BallotOptionID: 12})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.StatusCode)
}

func TestVotingService_CastVote_UnknownBallotNotFound(t *testing.T) {
	votes := &voteRepoStub{
		createFn: func(ctx context.Context, ballotID, memberID, ballotOptionID int, castAt time.Time) (int, error) {
			return 0, &pgconn.PgError{Code: "23503"}
		},
	}

	svc := NewVotingService(votes, &ballotRepoStub{}, noCache(), zap.NewNop(), fixedNow)

	_, err := svc.CastVote(context.Background(), &domain.CastVoteRequest{MemberID: 7, BallotID: 999, BallotOptionID: 12})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestVotingService_CastVote_MarkerShortCircuitsDatabase(t *testing.T) {
	_, cache := newTestCache(t)

	dbChecks := 0
	votes := &voteRepoStub{
		hasVotedFn: func(ctx context.Context, ballotID, memberID int) (bool, error) {
			dbChecks++
			return false, nil
		},
		createFn: func(ctx context.Context, ballotID, memberID, ballotOptionID int, castAt time.Time) (int, error) {
			return 1, nil
		},
	}

	svc := NewVotingService(votes, &ballotRepoStub{}, cache, zap.NewNop(), fixedNow)

	req := &domain.CastVoteRequest{MemberID: 7, BallotID: 3, BallotOptionID: 12}
	_, err := svc.CastVote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, dbChecks)

	// The marker written on the first cast answers the second without
	// touching the database.
	_, err = svc.CastVote(context.Background(), req)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.StatusCode)
	assert.Equal(t, 1, dbChecks)
}

func TestVotingService_GetResults_UnknownBallot(t *testing.T) {
	svc := NewVotingService(&voteRepoStub{}, &ballotRepoStub{}, noCache(), zap.NewNop(), fixedNow)

	_, err := svc.GetResults(context.Background(), 404)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestVotingService_GetResults_TotalIsIndependentOfRows(t *testing.T) {
	ballots := &ballotRepoStub{
		getByIDFn: func(ctx context.Context, ballotID int) (*domain.Ballot, error) {
			return &domain.Ballot{ID: ballotID, ElectionID: 1, PositionID: 10}, nil
		},
	}
	votes := &voteRepoStub{
		resultsFn: func(ctx context.Context, ballotID int) ([]domain.CandidateResult, error) {
			return []domain.CandidateResult{
				{CandidateID: 1, CandidateName: "Jordan Chen", VoteCount: 5},
				{CandidateID: 2, CandidateName: "Sam Patel", VoteCount: 2},
				{CandidateID: 3, CandidateName: "Riley Okafor", VoteCount: 0},
			}, nil
		},
		totalVotesFn: func(ctx context.Context, ballotID int) (int, error) {
			// One more than the per-candidate rows sum to, as when a vote
			// references an option outside the tally.
			return 8, nil
		},
	}

	svc := NewVotingService(votes, ballots, noCache(), zap.NewNop(), fixedNow)

	results, err := svc.GetResults(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, results.Results, 3)
	assert.Equal(t, 8, results.TotalVotes)
	assert.Equal(t, "Jordan Chen", results.Results[0].CandidateName)
	assert.Equal(t, 0, results.Results[2].VoteCount)
}

func TestVotingService_GetResults_CachedUntilNextVote(t *testing.T) {
	_, cache := newTestCache(t)

	tallies := 0
	ballots := &ballotRepoStub{
		getByIDFn: func(ctx context.Context, ballotID int) (*domain.Ballot, error) {
			return &domain.Ballot{ID: ballotID, ElectionID: 1, PositionID: 10}, nil
		},
	}
	votes := &voteRepoStub{
		resultsFn: func(ctx context.Context, ballotID int) ([]domain.CandidateResult, error) {
			tallies++
			return []domain.CandidateResult{{CandidateID: 1, CandidateName: "Jordan Chen", VoteCount: tallies}}, nil
		},
		totalVotesFn: func(ctx context.Context, ballotID int) (int, error) {
			return tallies, nil
		},
		createFn: func(ctx context.Context, ballotID, memberID, ballotOptionID int, castAt time.Time) (int, error) {
			return 1, nil
		},
	}

	svc := NewVotingService(votes, ballots, cache, zap.NewNop(), fixedNow)

	first, err := svc.GetResults(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalVotes)

	// Second read is served from cache.
	second, err := svc.GetResults(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, second.TotalVotes)
	assert.Equal(t, 1, tallies)

	// Casting a vote invalidates the cached tally.
	_, err = svc.CastVote(context.Background(), &domain.CastVoteRequest{MemberID: 7, BallotID: 3, BallotOptionID: 12})
	require.NoError(t, err)

	third, err := svc.GetResults(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, third.TotalVotes)
	assert.Equal(t, 2, tallies)
}
