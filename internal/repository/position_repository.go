package repository

import (
	"context"
	"fmt"

	"club-elections/internal/domain"
	"club-elections/pkg/database"
)

type PostgresPositionRepository struct {
	db *database.PostgresDB
}

func NewPositionRepository(db *database.PostgresDB) *PostgresPositionRepository {
	return &PostgresPositionRepository{db: db}
}

func (r *PostgresPositionRepository) Create(ctx context.Context, title string, ballotOrder int) (int, error) {
	var id int
	query := `
		INSERT INTO positions (title, ballot_order)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := r.db.Pool.QueryRow(ctx, query, title, ballotOrder).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create position: %w", err)
	}

	return id, nil
}

func (r *PostgresPositionRepository) List(ctx context.Context) ([]domain.Position, error) {
	query := `
		SELECT id, title, ballot_order
		FROM positions
		ORDER BY ballot_order ASC, title ASC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []domain.Position
	for rows.Next() {
		var pos domain.Position
		if err := rows.Scan(&pos.ID, &pos.Title, &pos.BallotOrder); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, pos)
	}

	return positions, rows.Err()
}

func (r *PostgresPositionRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete position: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
