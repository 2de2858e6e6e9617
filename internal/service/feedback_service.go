package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"consensus-api/internal/database"
	"consensus-api/internal/domain"
	"consensus-api/internal/dto"
	"consensus-api/internal/metrics"
	"consensus-api/internal/repository"
	"consensus-api/internal/response"
)

// FeedbackService defines the interface for closing feedback about the process
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, session domain.Session, formID uuid.UUID, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error)
	ListFeedback(ctx context.Context, session domain.Session) ([]*dto.FeedbackResponse, error)
}

type feedbackServiceImpl struct {
	feedbackRepo repository.FeedbackRepository
	roundRepo    repository.RoundRepository
	guard        accessGuard
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewFeedbackService creates a new instance of FeedbackService
func NewFeedbackService(
	formRepo repository.FormRepository,
	membershipRepo repository.MembershipRepository,
	roundRepo repository.RoundRepository,
	feedbackRepo repository.FeedbackRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		roundRepo:    roundRepo,
		guard:        newAccessGuard(formRepo, membershipRepo),
		metrics:      m,
		logger:       logger,
	}
}

// SubmitFeedback records one feedback entry per user, once a synthesis is visible to them
func (s *feedbackServiceImpl) SubmitFeedback(ctx context.Context, session domain.Session, formID uuid.UUID, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error) {
	if _, _, err := s.guard.readable(ctx, session, formID); err != nil {
		return nil, err
	}

	current, err := currentRound(ctx, s.roundRepo, formID)
	if err != nil {
		return nil, internalError("Failed to load round", err)
	}
	if current == nil || !current.HasSynthesis() {
		return nil, response.NewValidationError("Feedback opens once a synthesis is published", "")
	}

	exists, err := s.feedbackRepo.ExistsByUser(ctx, session.UserID)
	if err != nil {
		return nil, internalError("Failed to check feedback", err)
	}
	if exists {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Feedback already submitted", "")
	}

	feedback := &domain.FeedbackSubmission{
		UserID:            session.UserID,
		FormID:            formID,
		Accuracy:          req.Accuracy,
		Influence:         req.Influence,
		FurtherThoughts:   req.FurtherThoughts,
		Usability:         req.Usability,
		SynthesisSnapshot: current.Synthesis,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Feedback already submitted", "")
		}
		return nil, internalError("Failed to save feedback", err)
	}

	s.metrics.IncrementFeedbackSubmitted()
	s.logger.Info("Feedback submitted",
		zap.String("form_id", formID.String()),
		zap.String("user_id", session.UserID.String()),
	)

	resp := dto.ToFeedbackResponse(feedback)
	return &resp, nil
}

// ListFeedback returns every feedback entry, newest first
func (s *feedbackServiceImpl) ListFeedback(ctx context.Context, session domain.Session) ([]*dto.FeedbackResponse, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}
	entries, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, internalError("Failed to list feedback", err)
	}
	result := make([]*dto.FeedbackResponse, 0, len(entries))
	for _, f := range entries {
		resp := dto.ToFeedbackResponse(f)
		result = append(result, &resp)
	}
	return result, nil
}
