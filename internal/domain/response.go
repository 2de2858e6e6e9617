package domain

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Response holds one participant's answers for one round.
// Exactly one row exists per (round, user); resubmission overwrites it.
type Response struct {
	BaseModel
	FormID           uuid.UUID      `gorm:"type:uuid;not null;index:idx_responses_form_id" json:"form_id"`
	RoundID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_responses_round_user,priority:1" json:"round_id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_responses_round_user,priority:2;index:idx_responses_user_id" json:"user_id"`
	Answers          datatypes.JSON `gorm:"type:jsonb;not null" json:"answers"`
	QuestionSnapshot datatypes.JSON `gorm:"type:jsonb" json:"question_snapshot"`
}

// TableName specifies the table name for Response
func (Response) TableName() string {
	return "responses"
}

// AnswerMap decodes the stored answers, keeping every key
func (r *Response) AnswerMap() map[string]interface{} {
	answers := map[string]interface{}{}
	if len(r.Answers) > 0 {
		_ = json.Unmarshal(r.Answers, &answers)
	}
	return answers
}

// Snapshot decodes the question set the answers were collected under
func (r *Response) Snapshot() []string {
	return decodeQuestions(r.QuestionSnapshot)
}

// ResponseRevision is an append-only record of every submit call
type ResponseRevision struct {
	BaseModel
	FormID           uuid.UUID      `gorm:"type:uuid;not null;index:idx_response_revisions_form_id" json:"form_id"`
	RoundID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_response_revisions_round_id" json:"round_id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null" json:"user_id"`
	Answers          datatypes.JSON `gorm:"type:jsonb;not null" json:"answers"`
	QuestionSnapshot datatypes.JSON `gorm:"type:jsonb" json:"question_snapshot"`
}

// TableName specifies the table name for ResponseRevision
func (ResponseRevision) TableName() string {
	return "response_revisions"
}
