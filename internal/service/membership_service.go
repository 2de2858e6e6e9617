package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"consensus-api/internal/domain"
	"consensus-api/internal/dto"
	"consensus-api/internal/metrics"
	"consensus-api/internal/repository"
	"consensus-api/internal/response"
)

// MembershipService defines the interface for join code redemption and form listing
type MembershipService interface {
	Redeem(ctx context.Context, session domain.Session, joinCode string) (*dto.MembershipResponse, error)
	ListForms(ctx context.Context, session domain.Session) ([]*dto.FormSummaryResponse, error)
	IsMember(ctx context.Context, formID, userID uuid.UUID) (bool, error)
	SubscribableForms(ctx context.Context, session domain.Session) ([]uuid.UUID, error)
}

type membershipServiceImpl struct {
	formRepo       repository.FormRepository
	membershipRepo repository.MembershipRepository
	roundRepo      repository.RoundRepository
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewMembershipService creates a new instance of MembershipService
func NewMembershipService(
	formRepo repository.FormRepository,
	membershipRepo repository.MembershipRepository,
	roundRepo repository.RoundRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) MembershipService {
	return &membershipServiceImpl{
		formRepo:       formRepo,
		membershipRepo: membershipRepo,
		roundRepo:      roundRepo,
		metrics:        m,
		logger:         logger,
	}
}

// Redeem joins the caller to the form behind joinCode. Redeeming twice is a no-op.
func (s *membershipServiceImpl) Redeem(ctx context.Context, session domain.Session, joinCode string) (*dto.MembershipResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(joinCode)
	if code == "" {
		s.metrics.IncrementMembershipRedeemed("invalid_code")
		return nil, response.NewAppError(response.ErrCodeInvalidCode, "Form not found or closed", "")
	}

	form, err := s.formRepo.FindByJoinCode(ctx, code)
	if err != nil {
		return nil, internalError("Failed to look up join code", err)
	}
	if form == nil || !form.AllowJoin {
		s.metrics.IncrementMembershipRedeemed("invalid_code")
		return nil, response.NewAppError(response.ErrCodeInvalidCode, "Form not found or closed", "")
	}

	membership, created, err := s.membershipRepo.CreateIfAbsent(ctx, &domain.Membership{
		FormID: form.ID,
		UserID: session.UserID,
	})
	if err != nil {
		return nil, internalError("Failed to join form", err)
	}

	if created {
		s.metrics.IncrementMembershipRedeemed("joined")
		s.logger.Info("Participant joined form",
			zap.String("form_id", form.ID.String()),
			zap.String("user_id", session.UserID.String()),
		)
	} else {
		s.metrics.IncrementMembershipRedeemed("already_member")
	}

	return &dto.MembershipResponse{
		FormID:   form.ID,
		UserID:   session.UserID,
		Title:    form.Title,
		Created:  created,
		JoinedAt: membership.CreatedAt,
	}, nil
}

// ListForms returns owned forms for admins and joined forms for everyone else
func (s *membershipServiceImpl) ListForms(ctx context.Context, session domain.Session) ([]*dto.FormSummaryResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	var (
		forms []*domain.Form
		err   error
	)
	if session.IsAdmin {
		forms, err = s.formRepo.FindByOwner(ctx, session.UserID)
	} else {
		var ids []uuid.UUID
		ids, err = s.membershipRepo.FormIDsByUser(ctx, session.UserID)
		if err == nil {
			forms, err = s.formRepo.FindByIDs(ctx, ids)
		}
	}
	if err != nil {
		return nil, internalError("Failed to list forms", err)
	}

	ids := make([]uuid.UUID, 0, len(forms))
	for _, f := range forms {
		ids = append(ids, f.ID)
	}
	counts, err := s.membershipRepo.CountByForms(ctx, ids)
	if err != nil {
		return nil, internalError("Failed to count participants", err)
	}
	current, err := s.roundRepo.FindCurrentByForms(ctx, ids)
	if err != nil {
		return nil, internalError("Failed to load rounds", err)
	}

	result := make([]*dto.FormSummaryResponse, 0, len(forms))
	for _, f := range forms {
		summary := &dto.FormSummaryResponse{
			ID:               f.ID,
			Title:            f.Title,
			Questions:        f.BaseQuestions(),
			AllowJoin:        f.AllowJoin,
			ParticipantCount: counts[f.ID],
			CreatedAt:        f.CreatedAt,
		}
		if session.IsAdmin {
			summary.JoinCode = f.JoinCode
		}
		if round, ok := current[f.ID]; ok && round.IsActive {
			summary.CurrentRound = round.RoundNumber
		}
		result = append(result, summary)
	}
	return result, nil
}

func (s *membershipServiceImpl) IsMember(ctx context.Context, formID, userID uuid.UUID) (bool, error) {
	return s.membershipRepo.Exists(ctx, formID, userID)
}

// SubscribableForms lists the forms whose notifications the session may receive.
// A nil slice with no error means every form (admins).
func (s *membershipServiceImpl) SubscribableForms(ctx context.Context, session domain.Session) ([]uuid.UUID, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if session.IsAdmin {
		return nil, nil
	}
	ids, err := s.membershipRepo.FormIDsByUser(ctx, session.UserID)
	if err != nil {
		return nil, internalError("Failed to list memberships", err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}
