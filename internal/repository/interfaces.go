package repository

import (
	"context"
	"time"

	"club-elections/internal/domain"
)

// TermRepository defines storage operations for academic terms.
type TermRepository interface {
	// Create inserts a term and returns its id.
	Create(ctx context.Context, name string, start, end time.Time) (int, error)

	// List returns all terms ordered by start date descending.
	List(ctx context.Context) ([]domain.Term, error)

	// Exists reports whether the term id is present.
	Exists(ctx context.Context, id int) (bool, error)

	// Delete removes a term. Returns false if the id was absent.
	Delete(ctx context.Context, id int) (bool, error)
}

// PositionRepository defines storage operations for officer positions.
type PositionRepository interface {
	// Create inserts a position and returns its id.
	Create(ctx context.Context, title string, ballotOrder int) (int, error)

	// List returns all positions ordered by ballot order.
	List(ctx context.Context) ([]domain.Position, error)

	// Delete removes a position. Returns false if the id was absent.
	Delete(ctx context.Context, id int) (bool, error)
}

// ElectionRepository defines storage operations for elections and the
// election-position join rows.
type ElectionRepository interface {
	// Create inserts an election plus one join row per contested position,
	// in a single transaction, and returns the election id.
	Create(ctx context.Context, termID int, positionIDs []int, date, nominateBy time.Time) (int, error)

	// List returns all elections with term name and concatenated position
	// titles, ordered by voting date descending.
	List(ctx context.Context) ([]domain.ElectionSummary, error)

	// GetByID returns one election with its contested positions expanded,
	// or nil if absent.
	GetByID(ctx context.Context, id int) (*domain.ElectionDetail, error)

	// ContestedPositions returns the positions contested in an election,
	// ordered by ballot order.
	ContestedPositions(ctx context.Context, electionID int) ([]domain.Position, error)

	// Delete removes an election; join rows cascade. Returns false if the
	// id was absent.
	Delete(ctx context.Context, id int) (bool, error)
}

// NominationRepository defines storage operations for nominations.
type NominationRepository interface {
	// Create inserts a pending nomination and returns its id.
	Create(ctx context.Context, nominatorID, nomineeID, positionID int) (int, error)

	// SetAccepted records the accept/decline response, overwriting any
	// previous response. Returns false if the nomination was absent.
	SetAccepted(ctx context.Context, id int, accepted bool) (bool, error)

	// ListPendingForNominee returns pending nominations where the member is
	// the nominee, ordered by nomination deadline ascending.
	ListPendingForNominee(ctx context.Context, memberID int) ([]domain.PendingNomination, error)

	// ListForElection returns all nominations for positions contested in an
	// election, ordered by ballot order then nominee surname.
	ListForElection(ctx context.Context, electionID int) ([]domain.ElectionNomination, error)

	// AcceptedIDsForPosition returns ids of accepted nominations for one
	// position scoped to one election.
	AcceptedIDsForPosition(ctx context.Context, electionID, positionID int) ([]int, error)
}

// BallotRepository defines storage operations for ballots and their options.
type BallotRepository interface {
	// ExistsForPosition reports whether a ballot already exists for the
	// (election, position) pair.
	ExistsForPosition(ctx context.Context, electionID, positionID int) (bool, error)

	// CreateWithOptions inserts a ballot plus one option per nomination,
	// in a single transaction, and returns the ballot id.
	CreateWithOptions(ctx context.Context, electionID, positionID int, createdAt time.Time, nominationIDs []int) (int, error)

	// GetByID returns a ballot row, or nil if absent.
	GetByID(ctx context.Context, ballotID int) (*domain.Ballot, error)

	// GetDetail returns a ballot with its candidate options, or nil if absent.
	GetDetail(ctx context.Context, ballotID int) (*domain.BallotDetail, error)

	// ListForMember returns all ballots annotated with whether the member
	// has voted on each.
	ListForMember(ctx context.Context, memberID int) ([]domain.MemberBallot, error)
}

// VoteRepository defines storage operations for the voting ledger.
type VoteRepository interface {
	// HasVoted reports whether a vote exists for the (ballot, member) pair.
	HasVoted(ctx context.Context, ballotID, memberID int) (bool, error)

	// Create inserts a vote and returns its id. The (ballot, member)
	// uniqueness constraint turns a lost race into an error.
	Create(ctx context.Context, ballotID, memberID, ballotOptionID int, castAt time.Time) (int, error)

	// Results returns per-candidate tallies for a ballot, zero-vote
	// candidates included, ordered by count descending then surname.
	Results(ctx context.Context, ballotID int) ([]domain.CandidateResult, error)

	// TotalVotes counts all votes on a ballot, independent of Results.
	TotalVotes(ctx context.Context, ballotID int) (int, error)
}

// WinnerRepository defines storage operations for declared winners.
type WinnerRepository interface {
	// ExistsForPosition reports whether a winner has been declared for the
	// position.
	ExistsForPosition(ctx context.Context, positionID int) (bool, error)

	// Create inserts a winner row and returns its id.
	Create(ctx context.Context, memberID, positionID int) (int, error)

	// ListForElection returns winners of positions contested in an
	// election, ordered by ballot order.
	ListForElection(ctx context.Context, electionID int) ([]domain.ElectionWinner, error)
}
