package repository

import (
	"context"
	"fmt"
	"time"

	"club-elections/internal/domain"
	"club-elections/pkg/database"

	"github.com/jackc/pgx/v5"
)

type PostgresBallotRepository struct {
	db *database.PostgresDB
}

func NewBallotRepository(db *database.PostgresDB) *PostgresBallotRepository {
	return &PostgresBallotRepository{db: db}
}

func (r *PostgresBallotRepository) ExistsForPosition(ctx context.Context, electionID, positionID int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM ballots WHERE election_id = $1 AND position_id = $2
		)
	`

	if err := r.db.Pool.QueryRow(ctx, query, electionID, positionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ballot existence: %w", err)
	}

	return exists, nil
}

// CreateWithOptions inserts the ballot and its options in one transaction.
// This is the per-position unit of consistency for ballot generation: either
// the whole ballot lands or none of it does.
func (r *PostgresBallotRepository) CreateWithOptions(ctx context.Context, electionID, positionID int, createdAt time.Time, nominationIDs []int) (int, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int
	query := `
		INSERT INTO ballots (election_id, position_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := tx.QueryRow(ctx, query, electionID, positionID, createdAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create ballot: %w", err)
	}

	for _, nominationID := range nominationIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO ballot_options (ballot_id, nomination_id) VALUES ($1, $2)`,
			id, nominationID)
		if err != nil {
			return 0, fmt.Errorf("failed to create ballot option for nomination %d: %w", nominationID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit ballot: %w", err)
	}

	return id, nil
}

func (r *PostgresBallotRepository) GetByID(ctx context.Context, ballotID int) (*domain.Ballot, error) {
	var ballot domain.Ballot
	query := `
		SELECT id, election_id, position_id, created_at
		FROM ballots
		WHERE id = $1
	`

	err := r.db.Pool.QueryRow(ctx, query, ballotID).Scan(
		&ballot.ID,
		&ballot.ElectionID,
		&ballot.PositionID,
		&ballot.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ballot: %w", err)
	}

	return &ballot, nil
}

func (r *PostgresBallotRepository) GetDetail(ctx context.Context, ballotID int) (*domain.BallotDetail, error) {
	var detail domain.BallotDetail
	query := `
		SELECT b.id, p.title,
		       to_char(e.election_date, 'YYYY-MM-DD'),
		       t.name
		FROM ballots b
		JOIN positions p ON p.id = b.position_id
		JOIN elections e ON e.id = b.election_id
		JOIN terms t ON t.id = e.term_id
		WHERE b.id = $1
	`

	err := r.db.Pool.QueryRow(ctx, query, ballotID).Scan(
		&detail.BallotID,
		&detail.PositionTitle,
		&detail.ElectionDate,
		&detail.TermName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ballot detail: %w", err)
	}

	optionsQuery := `
		SELECT bo.id, n.nominee_id,
		       m.first_name || ' ' || m.last_name
		FROM ballot_options bo
		JOIN nominations n ON n.id = bo.nomination_id
		JOIN members m ON m.id = n.nominee_id
		WHERE bo.ballot_id = $1
		ORDER BY m.last_name ASC, bo.id ASC
	`

	rows, err := r.db.Pool.Query(ctx, optionsQuery, ballotID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ballot options: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var opt domain.BallotOption
		if err := rows.Scan(&opt.OptionID, &opt.CandidateID, &opt.CandidateName); err != nil {
			return nil, fmt.Errorf("failed to scan ballot option: %w", err)
		}
		detail.Options = append(detail.Options, opt)
	}

	return &detail, rows.Err()
}

func (r *PostgresBallotRepository) ListForMember(ctx context.Context, memberID int) ([]domain.MemberBallot, error) {
	query := `
		SELECT b.id, p.title,
		       to_char(e.election_date, 'YYYY-MM-DD'),
		       t.name,
		       v.id IS NOT NULL
		FROM ballots b
		JOIN positions p ON p.id = b.position_id
		JOIN elections e ON e.id = b.election_id
		JOIN terms t ON t.id = e.term_id
		LEFT JOIN votes v ON v.ballot_id = b.id AND v.member_id = $1
		ORDER BY e.election_date DESC, p.ballot_order ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ballots for member: %w", err)
	}
	defer rows.Close()

	var ballots []domain.MemberBallot
	for rows.Next() {
		var b domain.MemberBallot
		err := rows.Scan(&b.BallotID, &b.PositionTitle, &b.ElectionDate, &b.TermName, &b.HasVoted)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member ballot: %w", err)
		}
		ballots = append(ballots, b)
	}

	return ballots, rows.Err()
}
