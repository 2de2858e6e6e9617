package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"consensus-api/internal/domain"
)

// FormRepository defines the interface for form data access
type FormRepository interface {
	WithTx(tx *gorm.DB) FormRepository
	Create(ctx context.Context, form *domain.Form) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	FindByJoinCode(ctx context.Context, code string) (*domain.Form, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Form, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Form, error)
	FindAll(ctx context.Context) ([]*domain.Form, error)
	JoinCodeExists(ctx context.Context, code string) (bool, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	Update(ctx context.Context, form *domain.Form) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type formRepositoryImpl struct {
	db *gorm.DB
}

// NewFormRepository creates a new instance of FormRepository
func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepositoryImpl{db: db}
}

func (r *formRepositoryImpl) WithTx(tx *gorm.DB) FormRepository {
	return &formRepositoryImpl{db: tx}
}

func (r *formRepositoryImpl) Create(ctx context.Context, form *domain.Form) error {
	return r.db.WithContext(ctx).Create(form).Error
}

// FindByID returns gorm.ErrRecordNotFound when the form does not exist
func (r *formRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	var form domain.Form
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&form).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

// FindByJoinCode returns nil, nil when no form uses the code
func (r *formRepositoryImpl) FindByJoinCode(ctx context.Context, code string) (*domain.Form, error) {
	var form domain.Form
	if err := r.db.WithContext(ctx).Where("join_code = ?", code).First(&form).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &form, nil
}

func (r *formRepositoryImpl) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Form, error) {
	var forms []*domain.Form
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *formRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Form, error) {
	var forms []*domain.Form
	if len(ids) == 0 {
		return forms, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("created_at DESC").
		Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *formRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Form, error) {
	var forms []*domain.Form
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *formRepositoryImpl) JoinCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Form{}).Where("join_code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// LockByID loads the form with a row lock so round transitions on one form serialize.
// Must be called on a repository bound to a transaction.
func (r *formRepositoryImpl) LockByID(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	var form domain.Form
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&form).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

// Update persists the editable fields (title, base questions, allow_join)
func (r *formRepositoryImpl) Update(ctx context.Context, form *domain.Form) error {
	return r.db.WithContext(ctx).Model(&domain.Form{}).
		Where("id = ?", form.ID).
		Updates(map[string]interface{}{
			"title":      form.Title,
			"questions":  form.Questions,
			"allow_join": form.AllowJoin,
			"updated_at": form.UpdatedAt,
		}).Error
}

// DeleteCascade removes the form and everything that hangs off it in one transaction
func (r *formRepositoryImpl) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []interface{}{
			&domain.ResponseRevision{},
			&domain.Response{},
			&domain.FeedbackSubmission{},
			&domain.Round{},
			&domain.Membership{},
		}
		for _, model := range steps {
			if err := tx.Where("form_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		result := tx.Where("id = ?", id).Delete(&domain.Form{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
