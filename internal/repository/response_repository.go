package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"consensus-api/internal/domain"
)

// ResponseRepository defines the interface for response data access
type ResponseRepository interface {
	WithTx(tx *gorm.DB) ResponseRepository
	Upsert(ctx context.Context, response *domain.Response) (*domain.Response, bool, error)
	AppendRevision(ctx context.Context, revision *domain.ResponseRevision) error
	FindByRoundAndUser(ctx context.Context, roundID, userID uuid.UUID) (*domain.Response, error)
	ExistsByRoundAndUser(ctx context.Context, roundID, userID uuid.UUID) (bool, error)
	ListByRound(ctx context.Context, roundID uuid.UUID) ([]*domain.Response, error)
	ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error)
	ListRevisionsByForm(ctx context.Context, formID uuid.UUID) ([]*domain.ResponseRevision, error)
}

type responseRepositoryImpl struct {
	db *gorm.DB
}

// NewResponseRepository creates a new instance of ResponseRepository
func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepositoryImpl{db: db}
}

func (r *responseRepositoryImpl) WithTx(tx *gorm.DB) ResponseRepository {
	return &responseRepositoryImpl{db: tx}
}

// Upsert inserts the response or, when (round_id, user_id) exists, overwrites its
// answers and question snapshot in place. It returns the stored row and whether
// the call created it.
func (r *responseRepositoryImpl) Upsert(ctx context.Context, response *domain.Response) (*domain.Response, bool, error) {
	if response.ID == uuid.Nil {
		response.ID = uuid.New()
	}
	candidateID := response.ID

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "round_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answers", "question_snapshot", "updated_at"}),
	}).Create(response).Error; err != nil {
		return nil, false, err
	}

	stored, err := r.FindByRoundAndUser(ctx, response.RoundID, response.UserID)
	if err != nil {
		return nil, false, err
	}
	if stored == nil {
		return nil, false, gorm.ErrRecordNotFound
	}
	return stored, stored.ID == candidateID, nil
}

func (r *responseRepositoryImpl) AppendRevision(ctx context.Context, revision *domain.ResponseRevision) error {
	return r.db.WithContext(ctx).Create(revision).Error
}

// FindByRoundAndUser returns nil, nil when the user has not submitted
func (r *responseRepositoryImpl) FindByRoundAndUser(ctx context.Context, roundID, userID uuid.UUID) (*domain.Response, error) {
	var response domain.Response
	if err := r.db.WithContext(ctx).
		Where("round_id = ? AND user_id = ?", roundID, userID).
		First(&response).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &response, nil
}

func (r *responseRepositoryImpl) ExistsByRoundAndUser(ctx context.Context, roundID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Response{}).
		Where("round_id = ? AND user_id = ?", roundID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *responseRepositoryImpl) ListByRound(ctx context.Context, roundID uuid.UUID) ([]*domain.Response, error) {
	var responses []*domain.Response
	if err := r.db.WithContext(ctx).
		Where("round_id = ?", roundID).
		Order("created_at ASC").
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepositoryImpl) ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error) {
	var responses []*domain.Response
	if err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("created_at ASC").
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepositoryImpl) ListRevisionsByForm(ctx context.Context, formID uuid.UUID) ([]*domain.ResponseRevision, error) {
	var revisions []*domain.ResponseRevision
	if err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("created_at ASC").
		Find(&revisions).Error; err != nil {
		return nil, err
	}
	return revisions, nil
}
