package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"consensus-api/internal/domain"
)

// MembershipRepository defines the interface for membership data access
type MembershipRepository interface {
	CreateIfAbsent(ctx context.Context, membership *domain.Membership) (*domain.Membership, bool, error)
	Find(ctx context.Context, formID, userID uuid.UUID) (*domain.Membership, error)
	Exists(ctx context.Context, formID, userID uuid.UUID) (bool, error)
	ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Membership, error)
	FormIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	CountByForms(ctx context.Context, formIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type membershipRepositoryImpl struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new instance of MembershipRepository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepositoryImpl{db: db}
}

// CreateIfAbsent inserts the membership unless (form_id, user_id) already exists
// and returns the stored row. created is false when the row was already there.
func (r *membershipRepositoryImpl) CreateIfAbsent(ctx context.Context, membership *domain.Membership) (*domain.Membership, bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "form_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(membership)
	if result.Error != nil {
		return nil, false, result.Error
	}

	stored, err := r.Find(ctx, membership.FormID, membership.UserID)
	if err != nil {
		return nil, false, err
	}
	if stored == nil {
		return nil, false, gorm.ErrRecordNotFound
	}
	return stored, result.RowsAffected > 0, nil
}

// Find returns nil, nil when the user is not a member
func (r *membershipRepositoryImpl) Find(ctx context.Context, formID, userID uuid.UUID) (*domain.Membership, error) {
	var membership domain.Membership
	if err := r.db.WithContext(ctx).
		Where("form_id = ? AND user_id = ?", formID, userID).
		First(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &membership, nil
}

func (r *membershipRepositoryImpl) Exists(ctx context.Context, formID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Membership{}).
		Where("form_id = ? AND user_id = ?", formID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *membershipRepositoryImpl) ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Membership, error) {
	var memberships []*domain.Membership
	if err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("created_at ASC").
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *membershipRepositoryImpl) FormIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&domain.Membership{}).
		Where("user_id = ?", userID).
		Pluck("form_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

type formCount struct {
	FormID uuid.UUID
	Count  int64
}

// CountByForms returns the participant count per form; forms without members are absent
func (r *membershipRepositoryImpl) CountByForms(ctx context.Context, formIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(formIDs))
	if len(formIDs) == 0 {
		return counts, nil
	}
	var rows []formCount
	if err := r.db.WithContext(ctx).Model(&domain.Membership{}).
		Select("form_id, COUNT(*) AS count").
		Where("form_id IN ?", formIDs).
		Group("form_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.FormID] = row.Count
	}
	return counts, nil
}
