package domain

import "github.com/google/uuid"

// FeedbackSubmission is a participant's closing feedback. One per user, never updated.
type FeedbackSubmission struct {
	BaseModel
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_feedback_submissions_user" json:"user_id"`
	FormID            uuid.UUID `gorm:"type:uuid;not null;index:idx_feedback_submissions_form_id" json:"form_id"`
	Accuracy          string    `gorm:"type:text" json:"accuracy"`
	Influence         string    `gorm:"type:text" json:"influence"`
	FurtherThoughts   string    `gorm:"type:text" json:"further_thoughts"`
	Usability         string    `gorm:"type:text" json:"usability"`
	SynthesisSnapshot string    `gorm:"type:text" json:"synthesis_snapshot"`
}

// TableName specifies the table name for FeedbackSubmission
func (FeedbackSubmission) TableName() string {
	return "feedback_submissions"
}
