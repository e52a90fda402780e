package repository

import (
	"context"
	"fmt"
	"time"

	"club-elections/internal/domain"
	"club-elections/pkg/database"
)

type PostgresVoteRepository struct {
	db *database.PostgresDB
}

func NewVoteRepository(db *database.PostgresDB) *PostgresVoteRepository {
	return &PostgresVoteRepository{db: db}
}

func (r *PostgresVoteRepository) HasVoted(ctx context.Context, ballotID, memberID int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM votes WHERE ballot_id = $1 AND member_id = $2
		)
	`

	if err := r.db.Pool.QueryRow(ctx, query, ballotID, memberID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}

	return exists, nil
}

func (r *PostgresVoteRepository) Create(ctx context.Context, ballotID, memberID, ballotOptionID int, castAt time.Time) (int, error) {
	var id int
	query := `
		INSERT INTO votes (ballot_id, member_id, ballot_option_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query, ballotID, memberID, ballotOptionID, castAt).Scan(&id)
	if err != nil {
		// Constraint violations surface here; the service maps them.
		return 0, fmt.Errorf("failed to create vote: %w", err)
	}

	return id, nil
}

// Results tallies votes grouped by ballot option so a candidate nominated
// twice appears once per option, exactly as the ballot presents them.
func (r *PostgresVoteRepository) Results(ctx context.Context, ballotID int) ([]domain.CandidateResult, error) {
	query := `
		SELECT n.nominee_id,
		       m.first_name || ' ' || m.last_name,
		       COUNT(v.id)
		FROM ballot_options bo
		JOIN nominations n ON n.id = bo.nomination_id
		JOIN members m ON m.id = n.nominee_id
		LEFT JOIN votes v ON v.ballot_option_id = bo.id
		WHERE bo.ballot_id = $1
		GROUP BY bo.id, n.nominee_id, m.first_name, m.last_name
		ORDER BY COUNT(v.id) DESC, m.last_name ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, ballotID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ballot results: %w", err)
	}
	defer rows.Close()

	var results []domain.CandidateResult
	for rows.Next() {
		var res domain.CandidateResult
		if err := rows.Scan(&res.CandidateID, &res.CandidateName, &res.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan candidate result: %w", err)
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

func (r *PostgresVoteRepository) TotalVotes(ctx context.Context, ballotID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM votes WHERE ballot_id = $1`

	if err := r.db.Pool.QueryRow(ctx, query, ballotID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}

	return count, nil
}
