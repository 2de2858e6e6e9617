package domain

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Form is an administrator-owned questionnaire that participants join by code
type Form struct {
	BaseModel
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_forms_owner_id" json:"owner_id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title"`
	Questions datatypes.JSON `gorm:"type:jsonb" json:"questions"`
	JoinCode  string         `gorm:"type:varchar(16);not null;uniqueIndex:uq_forms_join_code" json:"join_code"`
	AllowJoin bool           `gorm:"not null" json:"allow_join"`
}

// TableName specifies the table name for Form
func (Form) TableName() string {
	return "forms"
}

// BaseQuestions decodes the form's base question set
func (f *Form) BaseQuestions() []string {
	return decodeQuestions(f.Questions)
}

// CleanQuestions trims every entry and drops the blank ones, keeping order
func CleanQuestions(questions []string) []string {
	cleaned := make([]string, 0, len(questions))
	for _, q := range questions {
		if q = strings.TrimSpace(q); q != "" {
			cleaned = append(cleaned, q)
		}
	}
	return cleaned
}

// EncodeQuestions converts a question list into its stored JSON form
func EncodeQuestions(questions []string) datatypes.JSON {
	if questions == nil {
		questions = []string{}
	}
	data, _ := json.Marshal(questions)
	return datatypes.JSON(data)
}

func decodeQuestions(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var questions []string
	if err := json.Unmarshal(raw, &questions); err != nil {
		return []string{}
	}
	return questions
}
