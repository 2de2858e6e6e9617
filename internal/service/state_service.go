package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"consensus-api/internal/domain"
	"consensus-api/internal/dto"
	"consensus-api/internal/repository"
	"consensus-api/internal/response"
)

// ParticipantStateService derives what a participant should currently see for a form
type ParticipantStateService interface {
	GetState(ctx context.Context, session domain.Session, formID uuid.UUID) (*dto.ParticipantStateResponse, error)
}

type participantStateServiceImpl struct {
	formRepo       repository.FormRepository
	membershipRepo repository.MembershipRepository
	roundRepo      repository.RoundRepository
	responseRepo   repository.ResponseRepository
}

// NewParticipantStateService creates a new instance of ParticipantStateService
func NewParticipantStateService(
	formRepo repository.FormRepository,
	membershipRepo repository.MembershipRepository,
	roundRepo repository.RoundRepository,
	responseRepo repository.ResponseRepository,
) ParticipantStateService {
	return &participantStateServiceImpl{
		formRepo:       formRepo,
		membershipRepo: membershipRepo,
		roundRepo:      roundRepo,
		responseRepo:   responseRepo,
	}
}

// GetState never denies a signed-in caller: a non-member simply gets needs_join
// and nothing else about the form.
func (s *participantStateServiceImpl) GetState(ctx context.Context, session domain.Session, formID uuid.UUID) (*dto.ParticipantStateResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	isMember, err := s.membershipRepo.Exists(ctx, formID, session.UserID)
	if err != nil {
		return nil, internalError("Failed to verify membership", err)
	}
	if !isMember {
		return &dto.ParticipantStateResponse{
			FormID: formID,
			State:  string(domain.DeriveParticipantState(false, nil, nil)),
		}, nil
	}

	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewForbiddenError(formNotAvailable, "")
		}
		return nil, internalError("Failed to load form", err)
	}

	current, err := currentRound(ctx, s.roundRepo, formID)
	if err != nil {
		return nil, internalError("Failed to load round", err)
	}

	result := &dto.ParticipantStateResponse{FormID: formID}
	var mine *domain.Response
	if current != nil {
		mine, err = s.responseRepo.FindByRoundAndUser(ctx, current.ID, session.UserID)
		if err != nil {
			return nil, internalError("Failed to load response", err)
		}
		round := dto.ToRoundResponse(current, form)
		result.Round = &round
		result.PreviousRoundSynthesis = current.PreviousRoundSynthesis
		result.Synthesis = current.Synthesis
		if mine != nil {
			converted := dto.ToResponseResponse(mine)
			result.MyResponse = &converted
		}
	}
	result.State = string(domain.DeriveParticipantState(true, current, mine))
	return result, nil
}
