package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"consensus-api/internal/domain"
	"consensus-api/internal/repository"
	"consensus-api/internal/response"
)

// formNotAvailable is the single denial participants get, whether or not the form exists
const formNotAvailable = "form not available"

// accessGuard resolves a form and checks whether the session may see or administer it
type accessGuard struct {
	formRepo       repository.FormRepository
	membershipRepo repository.MembershipRepository
}

func newAccessGuard(formRepo repository.FormRepository, membershipRepo repository.MembershipRepository) accessGuard {
	return accessGuard{formRepo: formRepo, membershipRepo: membershipRepo}
}

func requireSession(session domain.Session) error {
	if !session.Valid() {
		return response.NewUnauthorizedError("Authentication required")
	}
	return nil
}

// readable returns the form when the caller owns it or is a member of it.
// Anyone else gets the generic denial.
func (g accessGuard) readable(ctx context.Context, session domain.Session, formID uuid.UUID) (*domain.Form, bool, error) {
	if err := requireSession(session); err != nil {
		return nil, false, err
	}

	form, err := g.formRepo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if session.IsAdmin {
				return nil, false, response.NewNotFoundError("Form not found", "")
			}
			return nil, false, response.NewForbiddenError(formNotAvailable, "")
		}
		return nil, false, response.NewAppError(response.ErrCodeInternal, "Failed to load form", err.Error())
	}

	if session.IsAdmin && form.OwnerID == session.UserID {
		return form, true, nil
	}

	isMember, err := g.membershipRepo.Exists(ctx, formID, session.UserID)
	if err != nil {
		return nil, false, response.NewAppError(response.ErrCodeInternal, "Failed to verify membership", err.Error())
	}
	if !isMember {
		return nil, false, response.NewForbiddenError(formNotAvailable, "")
	}
	return form, false, nil
}

// owned returns the form when the caller is an admin who owns it
func (g accessGuard) owned(ctx context.Context, session domain.Session, formID uuid.UUID) (*domain.Form, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if !session.IsAdmin {
		return nil, response.NewForbiddenError("Admin access required", "")
	}

	form, err := g.formRepo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Form not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load form", err.Error())
	}
	if form.OwnerID != session.UserID {
		return nil, response.NewForbiddenError("Form is owned by another administrator", "")
	}
	return form, nil
}

func requireAdmin(session domain.Session) error {
	if err := requireSession(session); err != nil {
		return err
	}
	if !session.IsAdmin {
		return response.NewForbiddenError("Admin access required", "")
	}
	return nil
}

func internalError(message string, err error) error {
	return response.NewAppError(response.ErrCodeInternal, message, err.Error())
}
