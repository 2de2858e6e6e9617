package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"consensus-api/internal/domain"
)

// ErrRevisionMismatch is returned by UpdateSynthesis when the expected revision is stale
var ErrRevisionMismatch = errors.New("synthesis revision mismatch")

// RoundRepository defines the interface for round data access
type RoundRepository interface {
	WithTx(tx *gorm.DB) RoundRepository
	Create(ctx context.Context, round *domain.Round) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Round, error)
	FindActiveByForm(ctx context.Context, formID uuid.UUID) (*domain.Round, error)
	FindLatestByForm(ctx context.Context, formID uuid.UUID) (*domain.Round, error)
	FindCurrentByForms(ctx context.Context, formIDs []uuid.UUID) (map[uuid.UUID]*domain.Round, error)
	ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Round, error)
	DeactivateActive(ctx context.Context, formID uuid.UUID, closedAt time.Time) (int64, error)
	UpdateSynthesis(ctx context.Context, id uuid.UUID, html string, expectedRevision *int, at time.Time) (*domain.Round, error)
	FindFormsWithMultipleActive(ctx context.Context) ([]uuid.UUID, error)
	DeactivateAllExcept(ctx context.Context, formID, keepID uuid.UUID, closedAt time.Time) (int64, error)
}

type roundRepositoryImpl struct {
	db *gorm.DB
}

// NewRoundRepository creates a new instance of RoundRepository
func NewRoundRepository(db *gorm.DB) RoundRepository {
	return &roundRepositoryImpl{db: db}
}

func (r *roundRepositoryImpl) WithTx(tx *gorm.DB) RoundRepository {
	return &roundRepositoryImpl{db: tx}
}

func (r *roundRepositoryImpl) Create(ctx context.Context, round *domain.Round) error {
	return r.db.WithContext(ctx).Create(round).Error
}

// FindByID returns nil, nil when the round does not exist
func (r *roundRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	var round domain.Round
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&round).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &round, nil
}

// FindActiveByForm returns the active round with the highest round_number, or nil.
// Ordering makes the highest round win if storage ever holds two active rows.
func (r *roundRepositoryImpl) FindActiveByForm(ctx context.Context, formID uuid.UUID) (*domain.Round, error) {
	var rounds []*domain.Round
	if err := r.db.WithContext(ctx).
		Where("form_id = ? AND is_active = ?", formID, true).
		Order("round_number DESC").
		Limit(1).
		Find(&rounds).Error; err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, nil
	}
	return rounds[0], nil
}

// FindLatestByForm returns the round with the highest round_number, or nil
func (r *roundRepositoryImpl) FindLatestByForm(ctx context.Context, formID uuid.UUID) (*domain.Round, error) {
	var rounds []*domain.Round
	if err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("round_number DESC").
		Limit(1).
		Find(&rounds).Error; err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, nil
	}
	return rounds[0], nil
}

// FindCurrentByForms returns, per form, the active round or else the latest one
func (r *roundRepositoryImpl) FindCurrentByForms(ctx context.Context, formIDs []uuid.UUID) (map[uuid.UUID]*domain.Round, error) {
	current := make(map[uuid.UUID]*domain.Round, len(formIDs))
	if len(formIDs) == 0 {
		return current, nil
	}
	var rounds []*domain.Round
	if err := r.db.WithContext(ctx).
		Where("form_id IN ?", formIDs).
		Order("round_number ASC").
		Find(&rounds).Error; err != nil {
		return nil, err
	}
	for _, round := range rounds {
		existing, ok := current[round.FormID]
		switch {
		case !ok:
			current[round.FormID] = round
		case round.IsActive:
			current[round.FormID] = round
		case !existing.IsActive:
			current[round.FormID] = round
		}
	}
	return current, nil
}

func (r *roundRepositoryImpl) ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Round, error) {
	var rounds []*domain.Round
	if err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("round_number ASC").
		Find(&rounds).Error; err != nil {
		return nil, err
	}
	return rounds, nil
}

// DeactivateActive closes every active round of the form and returns how many were closed
func (r *roundRepositoryImpl) DeactivateActive(ctx context.Context, formID uuid.UUID, closedAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&domain.Round{}).
		Where("form_id = ? AND is_active = ?", formID, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"closed_at":  closedAt,
			"updated_at": closedAt,
		})
	return result.RowsAffected, result.Error
}

// UpdateSynthesis overwrites the synthesis and bumps its revision in one statement.
// With expectedRevision set the update only applies when the stored revision matches,
// otherwise ErrRevisionMismatch is returned. A missing round yields nil, nil.
func (r *roundRepositoryImpl) UpdateSynthesis(ctx context.Context, id uuid.UUID, html string, expectedRevision *int, at time.Time) (*domain.Round, error) {
	query := r.db.WithContext(ctx).Model(&domain.Round{}).Where("id = ?", id)
	if expectedRevision != nil {
		query = query.Where("synthesis_revision = ?", *expectedRevision)
	}
	result := query.Updates(map[string]interface{}{
		"synthesis":            html,
		"synthesis_revision":   gorm.Expr("synthesis_revision + 1"),
		"synthesis_updated_at": at,
		"updated_at":           at,
	})
	if result.Error != nil {
		return nil, result.Error
	}

	round, err := r.FindByID(ctx, id)
	if err != nil || round == nil {
		return round, err
	}
	if result.RowsAffected == 0 {
		return round, ErrRevisionMismatch
	}
	return round, nil
}

// FindFormsWithMultipleActive lists forms that violate the single active round rule
func (r *roundRepositoryImpl) FindFormsWithMultipleActive(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&domain.Round{}).
		Where("is_active = ?", true).
		Group("form_id").
		Having("COUNT(*) > 1").
		Pluck("form_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// DeactivateAllExcept closes every active round of the form other than keepID
func (r *roundRepositoryImpl) DeactivateAllExcept(ctx context.Context, formID, keepID uuid.UUID, closedAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&domain.Round{}).
		Where("form_id = ? AND is_active = ? AND id <> ?", formID, true, keepID).
		Updates(map[string]interface{}{
			"is_active":  false,
			"closed_at":  closedAt,
			"updated_at": closedAt,
		})
	return result.RowsAffected, result.Error
}
