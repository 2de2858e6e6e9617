package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Round is one question/answer/synthesis iteration of a form.
// At most one round per form has IsActive set; the partial unique index
// uq_rounds_form_active enforces it in storage.
type Round struct {
	BaseModel
	FormID                 uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_rounds_form_number,priority:1;uniqueIndex:uq_rounds_form_active,where:is_active = true" json:"form_id"`
	RoundNumber            int            `gorm:"not null;uniqueIndex:uq_rounds_form_number,priority:2" json:"round_number"`
	Questions              datatypes.JSON `gorm:"type:jsonb" json:"questions"`
	Synthesis              string         `gorm:"type:text;not null;default:''" json:"synthesis"`
	SynthesisRevision      int            `gorm:"not null;default:0" json:"synthesis_revision"`
	SynthesisUpdatedAt     *time.Time     `json:"synthesis_updated_at"`
	PreviousRoundSynthesis string         `gorm:"type:text;not null;default:''" json:"previous_round_synthesis"`
	IsActive               bool           `gorm:"not null;default:false;index:idx_rounds_is_active" json:"is_active"`
	ClosedAt               *time.Time     `json:"closed_at"`
}

// TableName specifies the table name for Round
func (Round) TableName() string {
	return "rounds"
}

// RoundQuestions decodes the round's own question list, which may be empty
func (r *Round) RoundQuestions() []string {
	return decodeQuestions(r.Questions)
}

// EffectiveQuestions returns the round's questions, falling back to the form's base set
func (r *Round) EffectiveQuestions(form *Form) []string {
	if qs := r.RoundQuestions(); len(qs) > 0 {
		return qs
	}
	if form == nil {
		return []string{}
	}
	return form.BaseQuestions()
}

// HasSynthesis reports whether a non-empty synthesis is published
func (r *Round) HasSynthesis() bool {
	return r.Synthesis != ""
}
