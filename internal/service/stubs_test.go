package service

import (
	"context"
	"time"

	"club-elections/internal/domain"
)

// Repository stubs backed by function fields. Unset fields return zero values
// so each test only wires the calls it cares about.

type termRepoStub struct {
	createFn func(ctx context.Context, name string, start, end time.Time) (int, error)
	listFn   func(ctx context.Context) ([]domain.Term, error)
	existsFn func(ctx context.Context, id int) (bool, error)
	deleteFn func(ctx context.Context, id int) (bool, error)
}

func (s *termRepoStub) Create(ctx context.Context, name string, start, end time.Time) (int, error) {
	if s.createFn == nil {
		return 0, nil
	}
	return s.createFn(ctx, name, start, end)
}

func (s *termRepoStub) List(ctx context.Context) ([]domain.Term, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *termRepoStub) Exists(ctx context.Context, id int) (bool, error) {
	if s.existsFn == nil {
		return false, nil
	}
	return s.existsFn(ctx, id)
}

func (s *termRepoStub) Delete(ctx context.Context, id int) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id)
}

type positionRepoStub struct {
	createFn func(ctx context.Context, title string, ballotOrder int) (int, error)
	listFn   func(ctx context.Context) ([]domain.Position, error)
	deleteFn func(ctx context.Context, id int) (bool, error)
}

func (s *positionRepoStub) Create(ctx context.Context, title string, ballotOrder int) (int, error) {
	if s.createFn == nil {
		return 0, nil
	}
	return s.createFn(ctx, title, ballotOrder)
}

func (s *positionRepoStub) List(ctx context.Context) ([]domain.Position, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *positionRepoStub) Delete(ctx context.Context, id int) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id)
}

type electionRepoStub struct {
	createFn             func(ctx context.Context, termID int, positionIDs []int, date, nominateBy time.Time) (int, error)
	listFn               func(ctx context.Context) ([]domain.ElectionSummary, error)
	getByIDFn            func(ctx context.Context, id int) (*domain.ElectionDetail, error)
	contestedPositionsFn func(ctx context.Context, electionID int) ([]domain.Position, error)
	deleteFn             func(ctx context.Context, id int) (bool, error)
}

func (s *electionRepoStub) Create(ctx context.Context, termID int, positionIDs []int, date, nominateBy time.Time) (int, error) {
	if s.createFn == nil {
		return 0, nil
	}
	return s.createFn(ctx, termID, positionIDs, date, nominateBy)
}

func (s *electionRepoStub) List(ctx context.Context) ([]domain.ElectionSummary, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *electionRepoStub) GetByID(ctx context.Context, id int) (*domain.ElectionDetail, error) {
	if s.getByIDFn == nil {
		return nil, nil
	}
	return s.getByIDFn(ctx, id)
}

func (s *electionRepoStub) ContestedPositions(ctx context.Context, electionID int) ([]domain.Position, error) {
	if s.contestedPositionsFn == nil {
		return nil, nil
	}
	return s.contestedPositionsFn(ctx, electionID)
}

func (s *electionRepoStub) Delete(ctx context.Context, id int) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id)
}

type nominationRepoStub struct {
	createFn                func(ctx context.Context, nominatorID, nomineeID, positionID int) (int, error)
	setAcceptedFn           func(ctx context.Context, id int, accepted bool) (bool, error)
	listPendingForNomineeFn func(ctx context.Context, memberID int) ([]domain.PendingNomination, error)
	listForElectionFn       func(ctx context.Context, electionID int) ([]domain.ElectionNomination, error)
	acceptedIDsFn           func(ctx context.Context, electionID, positionID int) ([]int, error)
}

func (s *nominationRepoStub) Create(ctx context.Context, nominatorID, nomineeID, positionID int) (int, error) {
	if s.createFn == nil {
		return 0, nil
	}
	return s.createFn(ctx, nominatorID, nomineeID, positionID)
}

func (s *nominationRepoStub) SetAccepted(ctx context.Context, id int, accepted bool) (bool, error) {
	if s.setAcceptedFn == nil {
		return false, nil
	}
	return s.setAcceptedFn(ctx, id, accepted)
}

func (s *nominationRepoStub) ListPendingForNominee(ctx context.Context, memberID int) ([]domain.PendingNomination, error) {
	if s.listPendingForNomineeFn == nil {
		return nil, nil
	}
	return s.listPendingForNomineeFn(ctx, memberID)
}

func (s *nominationRepoStub) ListForElection(ctx context.Context, electionID int) ([]domain.ElectionNomination, error) {
	if s.listForElectionFn == nil {
		return nil, nil
	}
	return s.listForElectionFn(ctx, electionID)
}

func (s *nominationRepoStub) AcceptedIDsForPosition(ctx context.Context, electionID, positionID int) ([]int, error) {
	if s.acceptedIDsFn == nil {
		return nil, nil
	}
	return s.acceptedIDsFn(ctx, electionID, positionID)
}

type ballotRepoStub struct {
	existsForPositionFn func(ctx context.Context, electionID, positionID int) (bool, error)
	createWithOptionsFn func(ctx context.Context, electionID, positionID int, createdAt time.Time, nominationIDs []int) (int, error)
	getByIDFn           func(ctx context.Context, ballotID int) (*domain.Ballot, error)
	getDetailFn         func(ctx context.Context, ballotID int) (*domain.BallotDetail, error)
	listForMemberFn     func(ctx context.Context, memberID int) ([]domain.MemberBallot, error)
}

func (s *ballotRepoStub) ExistsForPosition(ctx context.Context, electionID, positionID int) (bool, error) {
	if s.existsForPositionFn == nil {
		return false, nil
	}
	return s.existsForPositionFn(ctx, electionID, positionID)
}

func (s *ballotRepoStub) CreateWithOptions(ctx context.Context, electionID, positionID int, createdAt time.Time, nominationIDs []int) (int, error) {
	if s.createWithOptionsFn == nil {
		return 0, nil
	}
	return s.createWithOptionsFn(ctx, electionID, positionID, createdAt, nominationIDs)
}

func (s *ballotRepoStub) GetByID(ctx context.Context, ballotID int) (*domain.Ballot, error) {
	if s.getByIDFn == nil {
		return nil, nil
	}
	return s.getByIDFn(ctx, ballotID)
}

func (s *ballotRepoStub) GetDetail(ctx context.Context, ballotID int) (*domain.BallotDetail, error) {
	if s.getDetailFn == nil {
		return nil, nil
	}
	return s.getDetailFn(ctx, ballotID)
}

func (s *ballotRepoStub) ListForMember(ctx context.Context, memberID int) ([]domain.MemberBallot, error) {
	if s.listForMemberFn == nil {
		return nil, nil
	}
	return s.listForMemberFn(ctx, memberID)
}

type voteRepoStub struct {
	hasVotedFn   func(ctx context.Context, ballotID, memberID int) (bool, error)
	createFn     func(ctx context.Context, ballotID, memberID, ballotOptionID int, castAt time.Time) (int, error)
	resultsFn    func(ctx context.Context, ballotID int) ([]domain.CandidateResult, error)
	totalVotesFn func(ctx context.Context, ballotID int) (int, error)
}

func (s *voteRepoStub) HasVoted(ctx context.Context, ballotID, memberID int) (bool, error) {
	if s.hasVotedFn == nil {
		return false, nil
	}
	return s.hasVotedFn(ctx, ballotID, memberID)
}

func (s *voteRepoStub) Create(ctx context.Context, ballotID, memberID, ballotOptionID int, castAt time.Time) (int, error) {
	if s.createFn == nil {
		return 0, nil
	}
	return s.createFn(ctx, ballotID, memberID, ballotOptionID, castAt)
}

func (s *voteRepoStub) Results(ctx context.Context, ballotID int) ([]domain.CandidateResult, error) {
	if s.resultsFn == nil {
		return nil, nil
	}
	return s.resultsFn(ctx, ballotID)
}

func (s *voteRepoStub) TotalVotes(ctx context.Context, ballotID int) (int, error) {
	if s.totalVotesFn == nil {
		return 0, nil
	}
	return s.totalVotesFn(ctx, ballotID)
}

type winnerRepoStub struct {
	existsForPositionFn func(ctx context.Context, positionID int) (bool, error)
	createFn            func(ctx context.Context, memberID, positionID int) (int, error)
	listForElectionFn   func(ctx context.Context, electionID int) ([]domain.ElectionWinner, error)
}

func (s *winnerRepoStub) ExistsForPosition(ctx context.Context, positionID int) (bool, error) {
	if s.existsForPositionFn == nil {
		return false, nil
	}
	return s.existsForPositionFn(ctx, positionID)
}

func (s *winnerRepoStub) Create(ctx context.Context, memberID, positionID int) (int, error) {
	if s.createFn == nil {
		return 0, nil
	}
	return s.createFn(ctx, memberID, positionID)
}

func (s *winnerRepoStub) ListForElection(ctx context.Context, electionID int) ([]domain.ElectionWinner, error) {
	if s.listForElectionFn == nil {
		return nil, nil
	}
	return s.listForElectionFn(ctx, electionID)
}
