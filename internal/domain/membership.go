package domain

import "github.com/google/uuid"

// Membership grants a participant access to a form's rounds
type Membership struct {
	BaseModel
	FormID uuid.UUID `gorm:"type:uuid;not null;index:idx_memberships_form_id;uniqueIndex:uq_memberships_form_user" json:"form_id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_memberships_user_id;uniqueIndex:uq_memberships_form_user" json:"user_id"`
}

// TableName specifies the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
