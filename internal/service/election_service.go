package service

import (
	"context"
	"time"

	"club-elections/internal/domain"
	"club-elections/internal/repository"
	apperrors "club-elections/pkg/errors"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// ElectionService covers election administration: terms, positions, and the
// elections binding them.
type ElectionService struct {
	terms     repository.TermRepository
	positions repository.PositionRepository
	elections repository.ElectionRepository
	logger    *zap.Logger
}

func NewElectionService(
	terms repository.TermRepository,
	positions repository.PositionRepository,
	elections repository.ElectionRepository,
	logger *zap.Logger,
) *ElectionService {
	return &ElectionService{
		terms:     terms,
		positions: positions,
		elections: elections,
		logger:    logger,
	}
}

// CreateTerm validates and stores a new academic term.
func (s *ElectionService) CreateTerm(ctx context.Context, req *domain.CreateTermRequest) (int, error) {
	if req.Name == "" || req.StartDate == "" || req.EndDate == "" {
		return 0, apperrors.NewValidationError("name, start_date and end_date are required", nil)
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return 0, apperrors.NewValidationError("start_date must be YYYY-MM-DD", nil)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return 0, apperrors.NewValidationError("end_date must be YYYY-MM-DD", nil)
	}
	if end.Before(start) {
		return 0, apperrors.NewValidationError("end_date must not precede start_date", nil)
	}

	id, err := s.terms.Create(ctx, req.Name, start, end)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to create term", err)
	}

	s.logger.Info("term created", zap.Int("term_id", id), zap.String("name", req.Name))
	return id, nil
}

func (s *ElectionService) ListTerms(ctx context.Context) ([]domain.Term, error) {
	terms, err := s.terms.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list terms", err)
	}
	if terms == nil {
		terms = []domain.Term{}
	}
	return terms, nil
}

// DeleteTerm removes a term unless elections still reference it.
func (s *ElectionService) DeleteTerm(ctx context.Context, id int) error {
	found, err := s.terms.Delete(ctx, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewReferentialConflictError("term is referenced by existing elections")
		}
		return apperrors.NewInternalError("failed to delete term", err)
	}
	if !found {
		return apperrors.NewNotFoundError("term not found")
	}

	s.logger.Info("term deleted", zap.Int("term_id", id))
	return nil
}

// CreatePosition validates and stores a new officer position.
func (s *ElectionService) CreatePosition(ctx context.Context, req *domain.CreatePositionRequest) (int, error) {
	if req.Title == "" {
		return 0, apperrors.NewValidationError("title is required", nil)
	}
	if req.BallotOrder <= 0 {
		return 0, apperrors.NewValidationError("ballot_order must be a positive integer", nil)
	}

	id, err := s.positions.Create(ctx, req.Title, req.BallotOrder)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to create position", err)
	}

	s.logger.Info("position created", zap.Int("position_id", id), zap.String("title", req.Title))
	return id, nil
}

func (s *ElectionService) ListPositions(ctx context.Context) ([]domain.Position, error) {
	positions, err := s.positions.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list positions", err)
	}
	if positions == nil {
		positions = []domain.Position{}
	}
	return positions, nil
}

// DeletePosition removes a position unless nominations, elections, ballots or
// winners still reference it.
func (s *ElectionService) DeletePosition(ctx context.Context, id int) error {
	found, err := s.positions.Delete(ctx, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewReferentialConflictError("position is referenced by nominations or elections")
		}
		return apperrors.NewInternalError("failed to delete position", err)
	}
	if !found {
		return apperrors.NewNotFoundError("position not found")
	}

	s.logger.Info("position deleted", zap.Int("position_id", id))
	return nil
}

// CreateElection binds a term to a set of contested positions.
func (s *ElectionService) CreateElection(ctx context.Context, req *domain.CreateElectionRequest) (int, error) {
	if req.TermID <= 0 {
		return 0, apperrors.NewValidationError("term_id is required", nil)
	}
	if len(req.Positions) == 0 {
		return 0, apperrors.NewValidationError("at least one position is required", nil)
	}
	if req.Date == "" || req.NominateBy == "" {
		return 0, apperrors.NewValidationError("date and nominate_by are required", nil)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return 0, apperrors.NewValidationError("date must be YYYY-MM-DD", nil)
	}
	nominateBy, err := time.Parse(dateLayout, req.NominateBy)
	if err != nil {
		return 0, apperrors.NewValidationError("nominate_by must be YYYY-MM-DD", nil)
	}

	exists, err := s.terms.Exists(ctx, req.TermID)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to check term", err)
	}
	if !exists {
		return 0, apperrors.NewValidationError("term does not exist", nil)
	}

	id, err := s.elections.Create(ctx, req.TermID, req.Positions, date, nominateBy)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, apperrors.NewValidationError("one or more positions do not exist", nil)
		}
		if isUniqueViolation(err) {
			return 0, apperrors.NewValidationError("duplicate position in election", nil)
		}
		return 0, apperrors.NewInternalError("failed to create election", err)
	}

	s.logger.Info("election created",
		zap.Int("election_id", id),
		zap.Int("term_id", req.TermID),
		zap.Int("positions", len(req.Positions)))
	return id, nil
}

func (s *ElectionService) ListElections(ctx context.Context) ([]domain.ElectionSummary, error) {
	elections, err := s.elections.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list elections", err)
	}
	if elections == nil {
		elections = []domain.ElectionSummary{}
	}
	return elections, nil
}

func (s *ElectionService) GetElection(ctx context.Context, id int) (*domain.ElectionDetail, error) {
	detail, err := s.elections.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get election", err)
	}
	if detail == nil {
		return nil, apperrors.NewNotFoundError("election not found")
	}
	return detail, nil
}

// DeleteElection removes an election and its position join rows. Nominations
// are position-scoped and are left untouched.
func (s *ElectionService) DeleteElection(ctx context.Context, id int) error {
	found, err := s.elections.Delete(ctx, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewReferentialConflictError("election is referenced by existing ballots")
		}
		return apperrors.NewInternalError("failed to delete election", err)
	}
	if !found {
		return apperrors.NewNotFoundError("election not found")
	}

	s.logger.Info("election deleted", zap.Int("election_id", id))
	return nil
}
