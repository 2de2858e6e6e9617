package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"consensus-api/internal/domain"
	"consensus-api/internal/dto"
	"consensus-api/internal/metrics"
	"consensus-api/internal/repository"
	"consensus-api/internal/response"
)

// SubmissionService defines the interface for collecting and reading responses
type SubmissionService interface {
	HasSubmitted(ctx context.Context, session domain.Session, formID, roundID uuid.UUID) (bool, error)
	GetMyResponse(ctx context.Context, session domain.Session, formID, roundID uuid.UUID) (*dto.MyResponseResult, error)
	Submit(ctx context.Context, session domain.Session, formID, roundID uuid.UUID, answers map[string]interface{}) (*dto.SubmitResult, error)
	SubmitToActive(ctx context.Context, session domain.Session, formID uuid.UUID, answers map[string]interface{}) (*dto.SubmitResult, error)
	ListResponses(ctx context.Context, session domain.Session, formID, roundID uuid.UUID) ([]*dto.ResponseResponse, error)
	ListAllResponses(ctx context.Context, session domain.Session, formID uuid.UUID) ([]*dto.RoundResponsesResponse, error)
	ListRevisions(ctx context.Context, session domain.Session, formID uuid.UUID) ([]*dto.ResponseRevisionResponse, error)
}

type submissionServiceImpl struct {
	tx           repository.Transactor
	roundRepo    repository.RoundRepository
	responseRepo repository.ResponseRepository
	guard        accessGuard
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewSubmissionService creates a new instance of SubmissionService
func NewSubmissionService(
	tx repository.Transactor,
	formRepo repository.FormRepository,
	membershipRepo repository.MembershipRepository,
	roundRepo repository.RoundRepository,
	responseRepo repository.ResponseRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) SubmissionService {
	return &submissionServiceImpl{
		tx:           tx,
		roundRepo:    roundRepo,
		responseRepo: responseRepo,
		guard:        newAccessGuard(formRepo, membershipRepo),
		metrics:      m,
		logger:       logger,
	}
}

// roundOf loads roundID and checks it belongs to formID
func (s *submissionServiceImpl) roundOf(ctx context.Context, formID, roundID uuid.UUID) (*domain.Round, error) {
	round, err := s.roundRepo.FindByID(ctx, roundID)
	if err != nil {
		return nil, internalError("Failed to load round", err)
	}
	if round == nil || round.FormID != formID {
		return nil, response.NewAppError(response.ErrCodeRoundClosedOrMissing, "Round not found", "")
	}
	return round, nil
}

func (s *submissionServiceImpl) HasSubmitted(ctx context.Context, session domain.Session, formID, roundID uuid.UUID) (bool, error) {
	if _, _, err := s.guard.readable(ctx, session, formID); err != nil {
		return false, err
	}
	if _, err := s.roundOf(ctx, formID, roundID); err != nil {
		return false, err
	}
	exists, err := s.responseRepo.ExistsByRoundAndUser(ctx, roundID, session.UserID)
	if err != nil {
		return false, internalError("Failed to check submission", err)
	}
	return exists, nil
}

func (s *submissionServiceImpl) GetMyResponse(ctx context.Context, session domain.Session, formID, roundID uuid.UUID) (*dto.MyResponseResult, error) {
	if _, _, err := s.guard.readable(ctx, session, formID); err != nil {
		return nil, err
	}
	if _, err := s.roundOf(ctx, formID, roundID); err != nil {
		return nil, err
	}
	resp, err := s.responseRepo.FindByRoundAndUser(ctx, roundID, session.UserID)
	if err != nil {
		return nil, internalError("Failed to load response", err)
	}
	if resp == nil {
		return &dto.MyResponseResult{HasSubmitted: false}, nil
	}
	converted := dto.ToResponseResponse(resp)
	return &dto.MyResponseResult{HasSubmitted: true, Response: &converted}, nil
}

// Submit stores the caller's answers for the round, overwriting any earlier submission.
// Closed rounds still accept late answers.
func (s *submissionServiceImpl) Submit(ctx context.Context, session domain.Session, formID, roundID uuid.UUID, answers map[string]interface{}) (*dto.SubmitResult, error) {
	form, _, err := s.guard.readable(ctx, session, formID)
	if err != nil {
		return nil, err
	}
	round, err := s.roundOf(ctx, formID, roundID)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, session, form, round, answers)
}

// SubmitToActive submits to whichever round is active right now
func (s *submissionServiceImpl) SubmitToActive(ctx context.Context, session domain.Session, formID uuid.UUID, answers map[string]interface{}) (*dto.SubmitResult, error) {
	form, _, err := s.guard.readable(ctx, session, formID)
	if err != nil {
		return nil, err
	}
	round, err := s.roundRepo.FindActiveByForm(ctx, formID)
	if err != nil {
		return nil, internalError("Failed to load active round", err)
	}
	if round == nil {
		return nil, response.NewAppError(response.ErrCodeNoActiveRound, "No active round", "")
	}
	return s.store(ctx, session, form, round, answers)
}

func (s *submissionServiceImpl) store(ctx context.Context, session domain.Session, form *domain.Form, round *domain.Round, answers map[string]interface{}) (*dto.SubmitResult, error) {
	if answers == nil {
		return nil, response.NewValidationError("Answers are required", "")
	}
	encoded, err := json.Marshal(answers)
	if err != nil {
		return nil, response.NewValidationError("Answers must be JSON encodable", err.Error())
	}
	snapshot := domain.EncodeQuestions(round.EffectiveQuestions(form))

	var (
		stored  *domain.Response
		created bool
	)
	err = s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		responses := s.responseRepo.WithTx(tx)
		var err error
		stored, created, err = responses.Upsert(ctx, &domain.Response{
			FormID:           form.ID,
			RoundID:          round.ID,
			UserID:           session.UserID,
			Answers:          datatypes.JSON(encoded),
			QuestionSnapshot: snapshot,
		})
		if err != nil {
			return err
		}
		return responses.AppendRevision(ctx, &domain.ResponseRevision{
			FormID:           form.ID,
			RoundID:          round.ID,
			UserID:           session.UserID,
			Answers:          datatypes.JSON(encoded),
			QuestionSnapshot: snapshot,
		})
	})
	if err != nil {
		return nil, internalError("Failed to save response", err)
	}

	s.metrics.IncrementResponseSubmitted(created)
	s.logger.Info("Response submitted",
		zap.String("form_id", form.ID.String()),
		zap.String("round_id", round.ID.String()),
		zap.String("user_id", session.UserID.String()),
		zap.Bool("created", created),
		zap.Bool("round_active", round.IsActive),
	)

	return &dto.SubmitResult{Response: dto.ToResponseResponse(stored), Created: created}, nil
}

func (s *submissionServiceImpl) ListResponses(ctx context.Context, session domain.Session, formID, roundID uuid.UUID) ([]*dto.ResponseResponse, error) {
	if _, err := s.guard.owned(ctx, session, formID); err != nil {
		return nil, err
	}
	if _, err := s.roundOf(ctx, formID, roundID); err != nil {
		return nil, err
	}
	responses, err := s.responseRepo.ListByRound(ctx, roundID)
	if err != nil {
		return nil, internalError("Failed to list responses", err)
	}
	result := make([]*dto.ResponseResponse, 0, len(responses))
	for _, r := range responses {
		converted := dto.ToResponseResponse(r)
		result = append(result, &converted)
	}
	return result, nil
}

// ListAllResponses groups every response of the form under its round, in round order
func (s *submissionServiceImpl) ListAllResponses(ctx context.Context, session domain.Session, formID uuid.UUID) ([]*dto.RoundResponsesResponse, error) {
	form, err := s.guard.owned(ctx, session, formID)
	if err != nil {
		return nil, err
	}
	rounds, err := s.roundRepo.ListByForm(ctx, formID)
	if err != nil {
		return nil, internalError("Failed to list rounds", err)
	}
	responses, err := s.responseRepo.ListByForm(ctx, formID)
	if err != nil {
		return nil, internalError("Failed to list responses", err)
	}

	byRound := make(map[uuid.UUID][]dto.ResponseResponse, len(rounds))
	for _, r := range responses {
		byRound[r.RoundID] = append(byRound[r.RoundID], dto.ToResponseResponse(r))
	}

	result := make([]*dto.RoundResponsesResponse, 0, len(rounds))
	for _, round := range rounds {
		grouped := byRound[round.ID]
		if grouped == nil {
			grouped = []dto.ResponseResponse{}
		}
		result = append(result, &dto.RoundResponsesResponse{
			Round:     dto.ToRoundResponse(round, form),
			Responses: grouped,
		})
	}
	return result, nil
}

// ListRevisions returns the append-only submission history of the form
func (s *submissionServiceImpl) ListRevisions(ctx context.Context, session domain.Session, formID uuid.UUID) ([]*dto.ResponseRevisionResponse, error) {
	if _, err := s.guard.owned(ctx, session, formID); err != nil {
		return nil, err
	}
	revisions, err := s.responseRepo.ListRevisionsByForm(ctx, formID)
	if err != nil {
		return nil, internalError("Failed to list revisions", err)
	}
	result := make([]*dto.ResponseRevisionResponse, 0, len(revisions))
	for _, r := range revisions {
		converted := dto.ToResponseRevisionResponse(r)
		result = append(result, &converted)
	}
	return result, nil
}
