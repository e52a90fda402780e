package repository

import (
	"context"
	"fmt"
	"time"

	"club-elections/internal/domain"
	"club-elections/pkg/database"

	"github.com/jackc/pgx/v5"
)

type PostgresElectionRepository struct {
	db *database.PostgresDB
}

func NewElectionRepository(db *database.PostgresDB) *PostgresElectionRepository {
	return &PostgresElectionRepository{db: db}
}

// Create inserts the election and its join rows in one transaction so a
// half-created election never becomes visible.
func (r *PostgresElectionRepository) Create(ctx context.Context, termID int, positionIDs []int, date, nominateBy time.Time) (int, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int
	query := `
		INSERT INTO elections (term_id, election_date, nominate_by)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := tx.QueryRow(ctx, query, termID, date, nominateBy).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create election: %w", err)
	}

	for _, positionID := range positionIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO election_positions (election_id, position_id) VALUES ($1, $2)`,
			id, positionID)
		if err != nil {
			return 0, fmt.Errorf("failed to add position %d to election: %w", positionID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit election: %w", err)
	}

	return id, nil
}

func (r *PostgresElectionRepository) List(ctx context.Context) ([]domain.ElectionSummary, error) {
	query := `
		SELECT e.id, t.name,
		       to_char(e.election_date, 'YYYY-MM-DD'),
		       to_char(e.nominate_by, 'YYYY-MM-DD'),
		       COALESCE(string_agg(p.title, ', ' ORDER BY p.ballot_order), '')
		FROM elections e
		JOIN terms t ON t.id = e.term_id
		LEFT JOIN election_positions ep ON ep.election_id = e.id
		LEFT JOIN positions p ON p.id = ep.position_id
		GROUP BY e.id, t.name, e.election_date, e.nominate_by
		ORDER BY e.election_date DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list elections: %w", err)
	}
	defer rows.Close()

	var elections []domain.ElectionSummary
	for rows.Next() {
		var e domain.ElectionSummary
		if err := rows.Scan(&e.ID, &e.TermName, &e.Date, &e.NominateBy, &e.Positions); err != nil {
			return nil, fmt.Errorf("failed to scan election: %w", err)
		}
		elections = append(elections, e)
	}

	return elections, rows.Err()
}

func (r *PostgresElectionRepository) GetByID(ctx context.Context, id int) (*domain.ElectionDetail, error) {
	var detail domain.ElectionDetail
	query := `
		SELECT e.id, e.term_id, t.name,
		       to_char(e.election_date, 'YYYY-MM-DD'),
		       to_char(e.nominate_by, 'YYYY-MM-DD')
		FROM elections e
		JOIN terms t ON t.id = e.term_id
		WHERE e.id = $1
	`

	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.TermID,
		&detail.TermName,
		&detail.Date,
		&detail.NominateBy,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get election: %w", err)
	}

	positions, err := r.ContestedPositions(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Positions = positions

	return &detail, nil
}

func (r *PostgresElectionRepository) ContestedPositions(ctx context.Context, electionID int) ([]domain.Position, error) {
	query := `
		SELECT p.id, p.title, p.ballot_order
		FROM election_positions ep
		JOIN positions p ON p.id = ep.position_id
		WHERE ep.election_id = $1
		ORDER BY p.ballot_order ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contested positions: %w", err)
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

func (r *PostgresElectionRepository) Delete(ctx context.Context, id int) (bool, error) {
	// election_positions rows go with the election via ON DELETE CASCADE;
	// nominations are position-scoped and survive.
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM elections WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete election: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
