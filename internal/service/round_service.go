package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"consensus-api/internal/database"
	"consensus-api/internal/domain"
	"consensus-api/internal/dto"
	"consensus-api/internal/metrics"
	"consensus-api/internal/repository"
	"consensus-api/internal/response"
)

// RoundService defines the interface for the round lifecycle
type RoundService interface {
	OpenNextRound(ctx context.Context, session domain.Session, formID uuid.UUID, questions []string) (*dto.RoundResponse, error)
	CloseRound(ctx context.Context, session domain.Session, formID uuid.UUID) (*dto.RoundResponse, error)
	GetActiveRound(ctx context.Context, session domain.Session, formID uuid.UUID) (*dto.RoundResponse, error)
	ListRounds(ctx context.Context, session domain.Session, formID uuid.UUID) ([]*dto.RoundResponse, error)
	RepairActiveRounds(ctx context.Context) (*dto.RepairResult, error)
}

type roundServiceImpl struct {
	tx        repository.Transactor
	formRepo  repository.FormRepository
	roundRepo repository.RoundRepository
	guard     accessGuard
	metrics   *metrics.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewRoundService creates a new instance of RoundService
func NewRoundService(
	tx repository.Transactor,
	formRepo repository.FormRepository,
	membershipRepo repository.MembershipRepository,
	roundRepo repository.RoundRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) RoundService {
	return &roundServiceImpl{
		tx:        tx,
		formRepo:  formRepo,
		roundRepo: roundRepo,
		guard:     newAccessGuard(formRepo, membershipRepo),
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// OpenNextRound closes whatever round is active and opens round max+1.
// nil questions inherit the previous round's effective questions, or the form's base set
// for the first round. A non-nil list is cleaned and must keep at least one entry.
func (s *roundServiceImpl) OpenNextRound(ctx context.Context, session domain.Session, formID uuid.UUID, questions []string) (*dto.RoundResponse, error) {
	form, err := s.guard.owned(ctx, session, formID)
	if err != nil {
		return nil, err
	}

	var cleaned []string
	if questions != nil {
		cleaned = domain.CleanQuestions(questions)
		if len(cleaned) == 0 {
			return nil, response.NewAppError(response.ErrCodeEmptyQuestionSet, "Add at least one question", "")
		}
	}

	var (
		opened *domain.Round
		closed int64
	)
	for attempt := 0; attempt < 2; attempt++ {
		opened, closed, err = s.openInTx(ctx, formID, cleaned)
		if err == nil || !database.IsUniqueViolation(err) {
			break
		}
		s.logger.Warn("Round open raced with another transition, retrying",
			zap.String("form_id", formID.String()),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Form not found", "")
		}
		return nil, internalError("Failed to open round", err)
	}

	s.metrics.IncrementRoundOpened()
	for i := int64(0); i < closed; i++ {
		s.metrics.IncrementRoundClosed()
	}
	s.logger.Info("Round opened",
		zap.String("form_id", formID.String()),
		zap.String("round_id", opened.ID.String()),
		zap.Int("round_number", opened.RoundNumber),
		zap.Int64("closed_rounds", closed),
	)

	resp := dto.ToRoundResponse(opened, form)
	return &resp, nil
}

func (s *roundServiceImpl) openInTx(ctx context.Context, formID uuid.UUID, questions []string) (*domain.Round, int64, error) {
	var (
		opened *domain.Round
		closed int64
	)
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		forms := s.formRepo.WithTx(tx)
		rounds := s.roundRepo.WithTx(tx)

		form, err := forms.LockByID(ctx, formID)
		if err != nil {
			return err
		}
		latest, err := rounds.FindLatestByForm(ctx, formID)
		if err != nil {
			return err
		}

		now := s.now()
		closed, err = rounds.DeactivateActive(ctx, formID, now)
		if err != nil {
			return err
		}

		round := &domain.Round{
			FormID:      formID,
			RoundNumber: 1,
			IsActive:    true,
		}
		switch {
		case questions != nil:
			round.Questions = domain.EncodeQuestions(questions)
		case latest != nil:
			round.Questions = domain.EncodeQuestions(latest.EffectiveQuestions(form))
		default:
			round.Questions = domain.EncodeQuestions(form.BaseQuestions())
		}
		if latest != nil {
			round.RoundNumber = latest.RoundNumber + 1
			round.PreviousRoundSynthesis = latest.Synthesis
		}

		if err := rounds.Create(ctx, round); err != nil {
			return err
		}
		opened = round
		return nil
	})
	return opened, closed, err
}

// CloseRound deactivates the form's active round
func (s *roundServiceImpl) CloseRound(ctx context.Context, session domain.Session, formID uuid.UUID) (*dto.RoundResponse, error) {
	form, err := s.guard.owned(ctx, session, formID)
	if err != nil {
		return nil, err
	}

	var closedRound *domain.Round
	err = s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		rounds := s.roundRepo.WithTx(tx)
		if _, err := s.formRepo.WithTx(tx).LockByID(ctx, formID); err != nil {
			return err
		}
		active, err := rounds.FindActiveByForm(ctx, formID)
		if err != nil {
			return err
		}
		if active == nil {
			return response.NewAppError(response.ErrCodeNoActiveRound, "No active round", "")
		}
		if _, err := rounds.DeactivateActive(ctx, formID, s.now()); err != nil {
			return err
		}
		closedRound, err = rounds.FindByID(ctx, active.ID)
		return err
	})
	if err != nil {
		var appErr *response.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, internalError("Failed to close round", err)
	}

	s.metrics.IncrementRoundClosed()
	s.logger.Info("Round closed",
		zap.String("form_id", formID.String()),
		zap.Int("round_number", closedRound.RoundNumber),
	)

	resp := dto.ToRoundResponse(closedRound, form)
	return &resp, nil
}

// GetActiveRound returns the active round, or nil when the form has none
func (s *roundServiceImpl) GetActiveRound(ctx context.Context, session domain.Session, formID uuid.UUID) (*dto.RoundResponse, error) {
	form, _, err := s.guard.readable(ctx, session, formID)
	if err != nil {
		return nil, err
	}
	active, err := s.roundRepo.FindActiveByForm(ctx, formID)
	if err != nil {
		return nil, internalError("Failed to load active round", err)
	}
	if active == nil {
		return nil, nil
	}
	resp := dto.ToRoundResponse(active, form)
	return &resp, nil
}

func (s *roundServiceImpl) ListRounds(ctx context.Context, session domain.Session, formID uuid.UUID) ([]*dto.RoundResponse, error) {
	form, _, err := s.guard.readable(ctx, session, formID)
	if err != nil {
		return nil, err
	}
	rounds, err := s.roundRepo.ListByForm(ctx, formID)
	if err != nil {
		return nil, internalError("Failed to list rounds", err)
	}
	result := make([]*dto.RoundResponse, 0, len(rounds))
	for _, r := range rounds {
		resp := dto.ToRoundResponse(r, form)
		result = append(result, &resp)
	}
	return result, nil
}

// RepairActiveRounds keeps only the highest numbered active round of every form
// that somehow holds more than one
func (s *roundServiceImpl) RepairActiveRounds(ctx context.Context) (*dto.RepairResult, error) {
	formIDs, err := s.roundRepo.FindFormsWithMultipleActive(ctx)
	if err != nil {
		return nil, internalError("Failed to scan active rounds", err)
	}

	result := &dto.RepairResult{}
	for _, formID := range formIDs {
		var repaired int64
		err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
			rounds := s.roundRepo.WithTx(tx)
			keep, err := rounds.FindActiveByForm(ctx, formID)
			if err != nil || keep == nil {
				return err
			}
			repaired, err = rounds.DeactivateAllExcept(ctx, formID, keep.ID, s.now())
			return err
		})
		if err != nil {
			s.logger.Error("Failed to repair active rounds", zap.String("form_id", formID.String()), zap.Error(err))
			continue
		}
		if repaired > 0 {
			result.FormsRepaired++
			result.RoundsRepaired += repaired
			s.logger.Warn("Closed stray active rounds",
				zap.String("form_id", formID.String()),
				zap.Int64("rounds", repaired),
			)
		}
	}
	s.metrics.AddRoundsRepaired(int(result.RoundsRepaired))
	return result, nil
}

// currentRound is the active round, else the latest closed one, else nil
func currentRound(ctx context.Context, rounds repository.RoundRepository, formID uuid.UUID) (*domain.Round, error) {
	active, err := rounds.FindActiveByForm(ctx, formID)
	if err != nil || active != nil {
		return active, err
	}
	return rounds.FindLatestByForm(ctx, formID)
}
