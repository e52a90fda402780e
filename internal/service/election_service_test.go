package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"club-elections/internal/domain"
	apperrors "club-elections/pkg/errors"
)

func newElectionService(terms *termRepoStub, positions *positionRepoStub, elections *electionRepoStub) *ElectionService {
	if terms == nil {
		terms = &termRepoStub{}
	}
	if positions == nil {
		positions = &positionRepoStub{}
	}
	if elections == nil {
		elections = &electionRepoStub{}
	}
	return NewElectionService(terms, positions, elections, zap.NewNop())
}

func TestElectionService_CreateTerm(t *testing.T) {
	tests := []struct {
		name       string
		req        *domain.CreateTermRequest
		wantStatus int
	}{
		{
			name: "valid term",
			req:  &domain.CreateTermRequest{Name: "Fall 2025", StartDate: "2025-09-01", EndDate: "2025-12-15"},
		},
		{
			name: "single day term",
			req:  &domain.CreateTermRequest{Name: "Summit", StartDate: "2025-09-01", EndDate: "2025-09-01"},
		},
		{
			name:       "missing name",
			req:        &domain.CreateTermRequest{StartDate: "2025-09-01", EndDate: "2025-12-15"},
			wantStatus: 400,
		},
		{
			name:       "malformed start date",
			req:        &domain.CreateTermRequest{Name: "Fall 2025", StartDate: "09/01/2025", EndDate: "2025-12-15"},
			wantStatus: 400,
		},
		{
			name:       "end precedes start",
			req:        &domain.CreateTermRequest{Name: "Fall 2025", StartDate: "2025-12-15", EndDate: "2025-09-01"},
			wantStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := &termRepoStub{
				createFn: func(ctx context.Context, name string, start, end time.Time) (int, error) {
					return 7, nil
				},
			}
			svc := newElectionService(terms, nil, nil)

			id, err := svc.CreateTerm(context.Background(), tt.req)
			if tt.wantStatus != 0 {
				var appErr *apperrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 7, id)
		})
	}
}

func TestElectionService_DeleteTerm_ReferencedByElection(t *testing.T) {
	terms := &termRepoStub{
		deleteFn: func(ctx context.Context, id int) (bool, error) {
			return false, &pgconn.PgError{Code: "23503"}
		},
	}
	svc := newElectionService(terms, nil, nil)

	err := svc.DeleteTerm(context.Background(), 1)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.StatusCode)
}

func TestElectionService_DeleteTerm_NotFound(t *testing.T) {
	svc := newElectionService(nil, nil, nil)

	err := svc.DeleteTerm(context.Background(), 404)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestElectionService_CreatePosition(t *testing.T) {
	positions := &positionRepoStub{
		createFn: func(ctx context.Context, title string, ballotOrder int) (int, error) {
			return 3, nil
		},
	}
	svc := newElectionService(nil, positions, nil)

	id, err := svc.CreatePosition(context.Background(), &domain.CreatePositionRequest{Title: "President", BallotOrder: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	_, err = svc.CreatePosition(context.Background(), &domain.CreatePositionRequest{BallotOrder: 1})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode)

	_, err = svc.CreatePosition(context.Background(), &domain.CreatePositionRequest{Title: "President"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestElectionService_CreateElection(t *testing.T) {
	validReq := func() *domain.CreateElectionRequest {
		return &domain.CreateElectionRequest{
			TermID:     1,
			Positions:  []int{10, 20},
			Date:       "2025-10-01",
			NominateBy: "2025-09-20",
		}
	}

	tests := []struct {
		name       string
		mutate     func(*domain.CreateElectionRequest)
		termExists bool
		wantStatus int
	}{
		{
			name:       "valid election",
			mutate:     func(r *domain.CreateElectionRequest) {},
			termExists: true,
		},
		{
			name:       "missing term",
			mutate:     func(r *domain.CreateElectionRequest) { r.TermID = 0 },
			wantStatus: 400,
		},
		{
			name:       "empty positions",
			mutate:     func(r *domain.CreateElectionRequest) { r.Positions = nil },
			wantStatus: 400,
		},
		{
			name:       "malformed date",
			mutate:     func(r *domain.CreateElectionRequest) { r.Date = "Oct 1" },
			termExists: true,
			wantStatus: 400,
		},
		{
			name:       "unknown term",
			mutate:     func(r *domain.CreateElectionRequest) {},
			termExists: false,
			wantStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := &termRepoStub{
				existsFn: func(ctx context.Context, id int) (bool, error) {
					return tt.termExists, nil
				},
			}
			elections := &electionRepoStub{
				createFn: func(ctx context.Context, termID int, positionIDs []int, date, nominateBy time.Time) (int, error) {
					assert.Equal(t, []int{10, 20}, positionIDs)
					return 5, nil
				},
			}
			svc := newElectionService(terms, nil, elections)

			req := validReq()
			tt.mutate(req)

			id, err := svc.CreateElection(context.Background(), req)
			if tt.wantStatus != 0 {
				var appErr *apperrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, id)
		})
	}
}

func TestElectionService_GetElection_NotFound(t *testing.T) {
	svc := newElectionService(nil, nil, nil)

	_, err := svc.GetElection(context.Background(), 404)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestElectionService_DeleteElection_BlockedByBallots(t *testing.T) {
	elections := &electionRepoStub{
		deleteFn: func(ctx context.Context, id int) (bool, error) {
			return false, &pgconn.PgError{Code: "23503"}
		},
	}
	svc := newElectionService(nil, nil, elections)

	err := svc.DeleteElection(context.Background(), 1)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.StatusCode)
}

func TestElectionService_ListElections_EmptyIsNotNil(t *testing.T) {
	svc := newElectionService(nil, nil, nil)

	elections, err := svc.ListElections(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, elections)
	assert.Empty(t, elections)
}
