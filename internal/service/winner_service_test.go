package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"club-elections/internal/domain"
	apperrors "club-elections/pkg/errors"
)

func presidentBallot() *ballotRepoStub {
	return &ballotRepoStub{
		getByIDFn: func(ctx context.Context, ballotID int) (*domain.Ballot, error) {
			return &domain.Ballot{ID: ballotID, ElectionID: 1, PositionID: 10}, nil
		},
	}
}

func TestWinnerService_Declare_RecordsBallotPosition(t *testing.T) {
	var gotMember, gotPosition int
	winners := &winnerRepoStub{
		createFn: func(ctx context.Context, memberID, positionID int) (int, error) {
			gotMember, gotPosition = memberID, positionID
			return 9, nil
		},
	}

	svc := NewWinnerService(presidentBallot(), winners, zap.NewNop())

	id, err := svc.Declare(context.Background(), 3, &domain.DeclareWinnerRequest{MemberID: 7})
	require.NoError(t, err)
	assert.Equal(t, 9, id)
	assert.Equal(t, 7, gotMember)
	assert.Equal(t, 10, gotPosition)
}

func TestWinnerService_Declare_MissingMember(t *testing.T) {
	svc := NewWinnerService(presidentBallot(), &winnerRepoStub{}, zap.NewNop())

	_, err := svc.Declare(context.Background(), 3, &domain.DeclareWinnerRequest{})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestWinnerService_Declare_UnknownBallot(t *testing.T) {
	svc := NewWinnerService(&ballotRepoStub{}, &winnerRepoStub{}, zap.NewNop())

	_, err := svc.Declare(context.Background(), 404, &domain.DeclareWinnerRequest{MemberID: 7})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestWinnerService_Declare_SecondDeclarationConflicts(t *testing.T) {
	winners := &winnerRepoStub{
		createFn: func(ctx context.Context, memberID, positionID int) (int, error) {
			return 0, &pgconn.PgError{Code: "23505"}
		},
	}

	svc := NewWinnerService(presidentBallot(), winners, zap.NewNop())

	_, err := svc.Declare(context.Background(), 3, &domain.DeclareWinnerRequest{MemberID: 8})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.StatusCode)
}

func TestWinnerService_ListForElection_EmptyIsNotNil(t *testing.T) {
	svc := NewWinnerService(&ballotRepoStub{}, &winnerRepoStub{}, zap.NewNop())

	winners, err := svc.ListForElection(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, winners)
	assert.Empty(t, winners)
}
