package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"consensus-api/internal/client"
	"consensus-api/internal/config"
	"consensus-api/internal/domain"
	"consensus-api/internal/dto"
	"consensus-api/internal/metrics"
	"consensus-api/internal/notify"
	"consensus-api/internal/repository"
	"consensus-api/internal/response"
)

// SynthesisService defines the interface for drafting and publishing round syntheses
type SynthesisService interface {
	PushSynthesis(ctx context.Context, session domain.Session, formID, roundID uuid.UUID, html string, expectedRevision *int) (*dto.RoundResponse, error)
	PushLatestSynthesis(ctx context.Context, session domain.Session, formID uuid.UUID, html string, expectedRevision *int) (*dto.RoundResponse, error)
	GenerateSynthesis(ctx context.Context, session domain.Session, formID, roundID uuid.UUID, model string) (*dto.SynthesisDraftResponse, error)
	CompileSynthesis(ctx context.Context, session domain.Session, formID, roundID uuid.UUID) (*dto.SynthesisDraftResponse, error)
}

type synthesisServiceImpl struct {
	roundRepo    repository.RoundRepository
	responseRepo repository.ResponseRepository
	guard        accessGuard
	publisher    notify.Publisher
	generator    client.TextGenerator
	genCfg       config.GenerationConfig
	metrics      *metrics.Metrics
	logger       *zap.Logger
	now          func() time.Time
}

// NewSynthesisService creates a new instance of SynthesisService
func NewSynthesisService(
	formRepo repository.FormRepository,
	membershipRepo repository.MembershipRepository,
	roundRepo repository.RoundRepository,
	responseRepo repository.ResponseRepository,
	publisher notify.Publisher,
	generator client.TextGenerator,
	genCfg config.GenerationConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) SynthesisService {
	return &synthesisServiceImpl{
		roundRepo:    roundRepo,
		responseRepo: responseRepo,
		guard:        newAccessGuard(formRepo, membershipRepo),
		publisher:    publisher,
		generator:    generator,
		genCfg:       genCfg,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *synthesisServiceImpl) roundOf(ctx context.Context, formID, roundID uuid.UUID) (*domain.Round, error) {
	round, err := s.roundRepo.FindByID(ctx, roundID)
	if err != nil {
		return nil, internalError("Failed to load round", err)
	}
	if round == nil || round.FormID != formID {
		return nil, response.NewAppError(response.ErrCodeRoundClosedOrMissing, "Round not found", "")
	}
	return round, nil
}

// PushSynthesis overwrites the round's synthesis and notifies subscribers.
// Empty html retracts the synthesis and is broadcast the same way.
func (s *synthesisServiceImpl) PushSynthesis(ctx context.Context, session domain.Session, formID, roundID uuid.UUID, html string, expectedRevision *int) (*dto.RoundResponse, error) {
	form, err := s.guard.owned(ctx, session, formID)
	if err != nil {
		return nil, err
	}
	round, err := s.roundOf(ctx, formID, roundID)
	if err != nil {
		return nil, err
	}
	return s.push(ctx, form, round, html, expectedRevision)
}

// PushLatestSynthesis targets the active round, or the most recent one when none is active
func (s *synthesisServiceImpl) PushLatestSynthesis(ctx context.Context, session domain.Session, formID uuid.UUID, html string, expectedRevision *int) (*dto.RoundResponse, error) {
	form, err := s.guard.owned(ctx, session, formID)
	if err != nil {
		return nil, err
	}
	round, err := currentRound(ctx, s.roundRepo, formID)
	if err != nil {
		return nil, internalError("Failed to load round", err)
	}
	if round == nil {
		return nil, response.NewAppError(response.ErrCodeNoActiveRound, "Form has no rounds yet", "")
	}
	return s.push(ctx, form, round, html, expectedRevision)
}

func (s *synthesisServiceImpl) push(ctx context.Context, form *domain.Form, round *domain.Round, html string, expectedRevision *int) (*dto.RoundResponse, error) {
	if strings.TrimSpace(html) == "" {
		html = ""
	}

	updated, err := s.roundRepo.UpdateSynthesis(ctx, round.ID, html, expectedRevision, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrRevisionMismatch) && updated != nil {
			return nil, response.NewAppError(response.ErrCodeSynthesisConflict,
				"Synthesis was changed by someone else",
				fmt.Sprintf("current revision is %d", updated.SynthesisRevision))
		}
		return nil, internalError("Failed to save synthesis", err)
	}
	if updated == nil {
		return nil, response.NewAppError(response.ErrCodeRoundClosedOrMissing, "Round not found", "")
	}

	retraction := html == ""
	s.metrics.IncrementSynthesisPushed(retraction)
	s.logger.Info("Synthesis pushed",
		zap.String("form_id", form.ID.String()),
		zap.String("round_id", updated.ID.String()),
		zap.Int("revision", updated.SynthesisRevision),
		zap.Bool("retraction", retraction),
	)

	event := notify.NewSummaryUpdated(form.ID, updated.ID, updated.RoundNumber, updated.SynthesisRevision, updated.Synthesis)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish synthesis update",
			zap.String("form_id", form.ID.String()),
			zap.String("round_id", updated.ID.String()),
			zap.Error(err),
		)
	}

	resp := dto.ToRoundResponse(updated, form)
	return &resp, nil
}

// GenerateSynthesis asks the text generator for a draft. Nothing is stored.
func (s *synthesisServiceImpl) GenerateSynthesis(ctx context.Context, session domain.Session, formID, roundID uuid.UUID, model string) (*dto.SynthesisDraftResponse, error) {
	form, err := s.guard.owned(ctx, session, formID)
	if err != nil {
		return nil, err
	}
	round, err := s.roundOf(ctx, formID, roundID)
	if err != nil {
		return nil, err
	}

	questions := round.EffectiveQuestions(form)
	if len(questions) == 0 {
		return nil, response.NewAppError(response.ErrCodeEmptyQuestionSet, "Round has no questions", "")
	}
	responses, err := s.responseRepo.ListByRound(ctx, round.ID)
	if err != nil {
		return nil, internalError("Failed to list responses", err)
	}
	if len(responses) == 0 {
		return nil, response.NewValidationError("No responses to summarize", "")
	}

	model = strings.TrimSpace(model)
	if model == "" {
		model = s.genCfg.DefaultModel
	}

	markdown, err := s.generator.Generate(ctx, client.GenerationRequest{
		Model:     model,
		System:    synthesisSystemPrompt,
		Prompt:    buildSynthesisPrompt(questions, responses),
		MaxTokens: s.genCfg.MaxTokens,
	})
	if err != nil {
		s.metrics.IncrementSynthesisGenerated("failure")
		s.logger.Warn("Synthesis generation failed",
			zap.String("form_id", formID.String()),
			zap.String("round_id", roundID.String()),
			zap.String("model", model),
			zap.Error(err),
		)
		return nil, response.NewAppError(response.ErrCodeGenerationFailure, "Failed to generate synthesis", err.Error())
	}

	rendered, err := renderMarkdown(markdown)
	if err != nil {
		s.metrics.IncrementSynthesisGenerated("failure")
		return nil, response.NewAppError(response.ErrCodeGenerationFailure, "Failed to render generated synthesis", err.Error())
	}
	s.metrics.IncrementSynthesisGenerated("success")

	return &dto.SynthesisDraftResponse{
		FormID:  formID,
		RoundID: roundID,
		HTML:    rendered,
		Model:   model,
		Source:  dto.DraftSourceGenerated,
	}, nil
}

// CompileSynthesis builds a plain digest of the round's answers without calling out
func (s *synthesisServiceImpl) CompileSynthesis(ctx context.Context, session domain.Session, formID, roundID uuid.UUID) (*dto.SynthesisDraftResponse, error) {
	form, err := s.guard.owned(ctx, session, formID)
	if err != nil {
		return nil, err
	}
	round, err := s.roundOf(ctx, formID, roundID)
	if err != nil {
		return nil, err
	}
	responses, err := s.responseRepo.ListByRound(ctx, round.ID)
	if err != nil {
		return nil, internalError("Failed to list responses", err)
	}

	return &dto.SynthesisDraftResponse{
		FormID:  formID,
		RoundID: roundID,
		HTML:    compileDigest(round.EffectiveQuestions(form), responses),
		Source:  dto.DraftSourceCompiled,
	}, nil
}
