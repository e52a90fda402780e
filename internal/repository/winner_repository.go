package repository

import (
	"context"
	"fmt"

	"club-elections/internal/domain"
	"club-elections/pkg/database"
)

type PostgresWinnerRepository struct {
	db *database.PostgresDB
}

func NewWinnerRepository(db *database.PostgresDB) *PostgresWinnerRepository {
	return &PostgresWinnerRepository{db: db}
}

func (r *PostgresWinnerRepository) ExistsForPosition(ctx context.Context, positionID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM winners WHERE position_id = $1)`

	if err := r.db.Pool.QueryRow(ctx, query, positionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check winner existence: %w", err)
	}

	return exists, nil
}

func (r *PostgresWinnerRepository) Create(ctx context.Context, memberID, positionID int) (int, error) {
	var id int
	query := `
		INSERT INTO winners (member_id, position_id)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := r.db.Pool.QueryRow(ctx, query, memberID, positionID).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create winner: %w", err)
	}

	return id, nil
}

func (r *PostgresWinnerRepository) ListForElection(ctx context.Context, electionID int) ([]domain.ElectionWinner, error) {
	query := `
		SELECT p.title,
		       m.first_name || ' ' || m.last_name
		FROM winners w
		JOIN election_positions ep ON ep.position_id = w.position_id AND ep.election_id = $1
		JOIN positions p ON p.id = w.position_id
		JOIN members m ON m.id = w.member_id
		ORDER BY p.ballot_order ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list winners: %w", err)
	}
	defer rows.Close()

	var winners []domain.ElectionWinner
	for rows.Next() {
		var w domain.ElectionWinner
		if err := rows.Scan(&w.PositionTitle, &w.WinnerName); err != nil {
			return nil, fmt.Errorf("failed to scan winner: %w", err)
		}
		winners = append(winners, w)
	}

	return winners, rows.Err()
}
