package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"consensus-api/internal/domain"
)

// FeedbackRepository defines the interface for feedback data access
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.FeedbackSubmission) error
	ExistsByUser(ctx context.Context, userID uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*domain.FeedbackSubmission, error)
}

type feedbackRepositoryImpl struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new instance of FeedbackRepository
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepositoryImpl{db: db}
}

func (r *feedbackRepositoryImpl) Create(ctx context.Context, feedback *domain.FeedbackSubmission) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepositoryImpl) ExistsByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.FeedbackSubmission{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *feedbackRepositoryImpl) List(ctx context.Context) ([]*domain.FeedbackSubmission, error) {
	var feedback []*domain.FeedbackSubmission
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
