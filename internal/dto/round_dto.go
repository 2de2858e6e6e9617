package dto

import (
	"time"

	"github.com/google/uuid"
)

// OpenRoundRequest represents the request to open the next round
// @Description questions omitted or null inherits the previous round's questions (or the form's base set).
// @Description An explicit list is trimmed and blank entries dropped; an empty result is rejected.
type OpenRoundRequest struct {
	Questions []string `json:"questions" example:"What should we try next?"`
}

// RoundResponse represents a round with its effective questions
type RoundResponse struct {
	ID                     uuid.UUID  `json:"roundId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	FormID                 uuid.UUID  `json:"formId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	RoundNumber            int        `json:"roundNumber" example:"2"`
	Questions              []string   `json:"questions"`
	IsActive               bool       `json:"isActive" example:"true"`
	Synthesis              string     `json:"synthesis" example:"<p>Most of the team agreed...</p>"`
	SynthesisRevision      int        `json:"synthesisRevision" example:"3"`
	SynthesisUpdatedAt     *time.Time `json:"synthesisUpdatedAt,omitempty" example:"2024-01-15T14:20:00Z"`
	PreviousRoundSynthesis string     `json:"previousRoundSynthesis" example:"<p>Round one summary</p>"`
	CreatedAt              time.Time  `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	ClosedAt               *time.Time `json:"closedAt,omitempty" example:"2024-01-15T12:00:00Z"`
}

// RepairResult reports how many stray active rounds were closed
type RepairResult struct {
	FormsRepaired  int   `json:"formsRepaired"`
	RoundsRepaired int64 `json:"roundsRepaired"`
}
