package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
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

const (
	joinCodeDigits   = 5
	joinCodeAttempts = 10
)

// FormService defines the interface for form administration
type FormService interface {
	CreateForm(ctx context.Context, session domain.Session, req *dto.CreateFormRequest) (*dto.FormResponse, error)
	GetForm(ctx context.Context, session domain.Session, formID uuid.UUID) (*dto.FormResponse, error)
	UpdateForm(ctx context.Context, session domain.Session, formID uuid.UUID, req *dto.UpdateFormRequest) (*dto.FormResponse, error)
	DeleteForm(ctx context.Context, session domain.Session, formID uuid.UUID) error
	ListMembers(ctx context.Context, session domain.Session, formID uuid.UUID) ([]*dto.MemberResponse, error)
}

type formServiceImpl struct {
	formRepo       repository.FormRepository
	membershipRepo repository.MembershipRepository
	guard          accessGuard
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewFormService creates a new instance of FormService
func NewFormService(
	formRepo repository.FormRepository,
	membershipRepo repository.MembershipRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) FormService {
	return &formServiceImpl{
		formRepo:       formRepo,
		membershipRepo: membershipRepo,
		guard:          newAccessGuard(formRepo, membershipRepo),
		metrics:        m,
		logger:         logger,
	}
}

// CreateForm creates a form without any round. The first round is opened explicitly.
func (s *formServiceImpl) CreateForm(ctx context.Context, session domain.Session, req *dto.CreateFormRequest) (*dto.FormResponse, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	questions := domain.CleanQuestions(req.Questions)
	if len(questions) == 0 {
		return nil, response.NewAppError(response.ErrCodeEmptyQuestionSet, "Add at least one question", "")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, response.NewValidationError("Title is required", "")
	}

	allowJoin := true
	if req.AllowJoin != nil {
		allowJoin = *req.AllowJoin
	}

	var joinCode string
	if req.JoinCode != nil && strings.TrimSpace(*req.JoinCode) != "" {
		joinCode = strings.TrimSpace(*req.JoinCode)
		exists, err := s.formRepo.JoinCodeExists(ctx, joinCode)
		if err != nil {
			return nil, internalError("Failed to check join code", err)
		}
		if exists {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Join code is already in use", "")
		}
	} else {
		code, err := s.generateJoinCode(ctx)
		if err != nil {
			return nil, err
		}
		joinCode = code
	}

	form := &domain.Form{
		OwnerID:   session.UserID,
		Title:     title,
		Questions: domain.EncodeQuestions(questions),
		JoinCode:  joinCode,
		AllowJoin: allowJoin,
	}
	if err := s.formRepo.Create(ctx, form); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Join code is already in use", "")
		}
		return nil, internalError("Failed to create form", err)
	}

	s.logger.Info("Form created",
		zap.String("form_id", form.ID.String()),
		zap.String("owner_id", session.UserID.String()),
		zap.Int("questions", len(questions)),
	)

	resp := dto.ToFormResponse(form)
	return &resp, nil
}

func (s *formServiceImpl) generateJoinCode(ctx context.Context) (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < joinCodeDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	for attempt := 0; attempt < joinCodeAttempts; attempt++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", internalError("Failed to generate join code", err)
		}
		code := fmt.Sprintf("%0*d", joinCodeDigits, n.Int64())
		exists, err := s.formRepo.JoinCodeExists(ctx, code)
		if err != nil {
			return "", internalError("Failed to check join code", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", response.NewAppError(response.ErrCodeInternal, "Failed to generate a unique join code", "")
}

// GetForm returns a form the caller owns or belongs to
func (s *formServiceImpl) GetForm(ctx context.Context, session domain.Session, formID uuid.UUID) (*dto.FormResponse, error) {
	form, _, err := s.guard.readable(ctx, session, formID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToFormResponse(form)
	return &resp, nil
}

// UpdateForm changes the title, base questions or join policy of an owned form
func (s *formServiceImpl) UpdateForm(ctx context.Context, session domain.Session, formID uuid.UUID, req *dto.UpdateFormRequest) (*dto.FormResponse, error) {
	form, err := s.guard.owned(ctx, session, formID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.NewValidationError("Title must not be empty", "")
		}
		form.Title = title
	}
	if req.Questions != nil {
		questions := domain.CleanQuestions(req.Questions)
		if len(questions) == 0 {
			return nil, response.NewAppError(response.ErrCodeEmptyQuestionSet, "Add at least one question", "")
		}
		form.Questions = domain.EncodeQuestions(questions)
	}
	if req.AllowJoin != nil {
		form.AllowJoin = *req.AllowJoin
	}
	form.UpdatedAt = time.Now()

	if err := s.formRepo.Update(ctx, form); err != nil {
		return nil, internalError("Failed to update form", err)
	}

	resp := dto.ToFormResponse(form)
	return &resp, nil
}

// DeleteForm removes an owned form together with its rounds, responses and memberships
func (s *formServiceImpl) DeleteForm(ctx context.Context, session domain.Session, formID uuid.UUID) error {
	if _, err := s.guard.owned(ctx, session, formID); err != nil {
		return err
	}
	if err := s.formRepo.DeleteCascade(ctx, formID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Form not found", "")
		}
		return internalError("Failed to delete form", err)
	}
	s.logger.Info("Form deleted", zap.String("form_id", formID.String()))
	return nil
}

// ListMembers returns every participant that joined an owned form
func (s *formServiceImpl) ListMembers(ctx context.Context, session domain.Session, formID uuid.UUID) ([]*dto.MemberResponse, error) {
	if _, err := s.guard.owned(ctx, session, formID); err != nil {
		return nil, err
	}
	members, err := s.membershipRepo.ListByForm(ctx, formID)
	if err != nil {
		return nil, internalError("Failed to list members", err)
	}
	result := make([]*dto.MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, &dto.MemberResponse{UserID: m.UserID, JoinedAt: m.CreatedAt})
	}
	return result, nil
}
