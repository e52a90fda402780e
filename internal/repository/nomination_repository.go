package repository

import (
	"context"
	"fmt"

	"club-elections/internal/domain"
	"club-elections/pkg/database"
)

type PostgresNominationRepository struct {
	db *database.PostgresDB
}

func NewNominationRepository(db *database.PostgresDB) *PostgresNominationRepository {
	return &PostgresNominationRepository{db: db}
}

func (r *PostgresNominationRepository) Create(ctx context.Context, nominatorID, nomineeID, positionID int) (int, error) {
	var id int
	query := `
		INSERT INTO nominations (nominator_id, nominee_id, position_id, accepted)
		VALUES ($1, $2, $3, NULL)
		RETURNING id
	`

	if err := r.db.Pool.QueryRow(ctx, query, nominatorID, nomineeID, positionID).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create nomination: %w", err)
	}

	return id, nil
}

// SetAccepted overwrites the response state regardless of the current one;
// accepting or declining twice is last-write-wins.
func (r *PostgresNominationRepository) SetAccepted(ctx context.Context, id int, accepted bool) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE nominations SET accepted = $2 WHERE id = $1`,
		id, accepted)
	if err != nil {
		return false, fmt.Errorf("failed to update nomination: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *PostgresNominationRepository) ListPendingForNominee(ctx context.Context, memberID int) ([]domain.PendingNomination, error) {
	query := `
		SELECT n.id, p.title,
		       nominator.first_name || ' ' || nominator.last_name,
		       t.name,
		       to_char(e.nominate_by, 'YYYY-MM-DD')
		FROM nominations n
		JOIN positions p ON p.id = n.position_id
		JOIN members nominator ON nominator.id = n.nominator_id
		JOIN election_positions ep ON ep.position_id = n.position_id
		JOIN elections e ON e.id = ep.election_id
		JOIN terms t ON t.id = e.term_id
		WHERE n.nominee_id = $1 AND n.accepted IS NULL
		ORDER BY e.nominate_by ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending nominations: %w", err)
	}
	defer rows.Close()

	var nominations []domain.PendingNomination
	for rows.Next() {
		var nom domain.PendingNomination
		err := rows.Scan(&nom.ID, &nom.PositionTitle, &nom.NominatorName, &nom.TermName, &nom.NominateBy)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending nomination: %w", err)
		}
		nominations = append(nominations, nom)
	}

	return nominations, rows.Err()
}

func (r *PostgresNominationRepository) ListForElection(ctx context.Context, electionID int) ([]domain.ElectionNomination, error) {
	query := `
		SELECT n.id, n.position_id, p.title,
		       nominee.first_name || ' ' || nominee.last_name,
		       nominator.first_name || ' ' || nominator.last_name,
		       n.accepted
		FROM nominations n
		JOIN election_positions ep ON ep.position_id = n.position_id AND ep.election_id = $1
		JOIN positions p ON p.id = n.position_id
		JOIN members nominee ON nominee.id = n.nominee_id
		JOIN members nominator ON nominator.id = n.nominator_id
		ORDER BY p.ballot_order ASC, nominee.last_name ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list nominations for election: %w", err)
	}
	defer rows.Close()

	var nominations []domain.ElectionNomination
	for rows.Next() {
		var nom domain.ElectionNomination
		err := rows.Scan(&nom.ID, &nom.PositionID, &nom.PositionTitle, &nom.NomineeName, &nom.NominatorName, &nom.Accepted)
		if err != nil {
			return nil, fmt.Errorf("failed to scan nomination: %w", err)
		}
		nominations = append(nominations, nom)
	}

	return nominations, rows.Err()
}

func (r *PostgresNominationRepository) AcceptedIDsForPosition(ctx context.Context, electionID, positionID int) ([]int, error) {
	query := `
		SELECT n.id
		FROM nominations n
		JOIN election_positions ep ON ep.position_id = n.position_id AND ep.election_id = $1
		WHERE n.position_id = $2 AND n.accepted = TRUE
		ORDER BY n.id ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, electionID, positionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accepted nominations: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan nomination id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
