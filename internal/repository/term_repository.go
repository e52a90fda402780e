package repository

import (
	"context"
	"fmt"
	"time"

	"club-elections/internal/domain"
	"club-elections/pkg/database"
)

type PostgresTermRepository struct {
	db *database.PostgresDB
}

func NewTermRepository(db *database.PostgresDB) *PostgresTermRepository {
	return &PostgresTermRepository{db: db}
}

func (r *PostgresTermRepository) Create(ctx context.Context, name string, start, end time.Time) (int, error) {
	var id int
	query := `
		INSERT INTO terms (name, start_date, end_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := r.db.Pool.QueryRow(ctx, query, name, start, end).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create term: %w", err)
	}

	return id, nil
}

func (r *PostgresTermRepository) List(ctx context.Context) ([]domain.Term, error) {
	query := `
		SELECT id, name,
		       to_char(start_date, 'YYYY-MM-DD'),
		       to_char(end_date, 'YYYY-MM-DD')
		FROM terms
		ORDER BY start_date DESC, name ASC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list terms: %w", err)
	}
	defer rows.Close()

	var terms []domain.Term
	for rows.Next() {
		var term domain.Term
		if err := rows.Scan(&term.ID, &term.Name, &term.StartDate, &term.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan term: %w", err)
		}
		terms = append(terms, term)
	}

	return terms, rows.Err()
}

func (r *PostgresTermRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM terms WHERE id = $1)`

	if err := r.db.Pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check term existence: %w", err)
	}

	return exists, nil
}

func (r *PostgresTermRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM terms WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete term: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
