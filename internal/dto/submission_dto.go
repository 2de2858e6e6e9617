package dto

import (
	"time"

	"github.com/google/uuid"
)

// SubmitResponseRequest carries answers keyed q1..qN by question position
// @Description Unknown keys are stored as-is
type SubmitResponseRequest struct {
	Answers map[string]interface{} `json:"answers" binding:"required"`
}

// ResponseResponse represents one participant's answers for one round
type ResponseResponse struct {
	ID               uuid.UUID              `json:"responseId" example:"c3d4e5f6-a7b8-9012-cdef-123456789012"`
	FormID           uuid.UUID              `json:"formId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	RoundID          uuid.UUID              `json:"roundId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	UserID           uuid.UUID              `json:"userId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	Answers          map[string]interface{} `json:"answers"`
	QuestionSnapshot []string               `json:"questionSnapshot"`
	CreatedAt        time.Time              `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt        time.Time              `json:"updatedAt" example:"2024-01-15T14:20:00Z"`
}

// SubmitResult is returned by submit; created is false when an earlier answer was overwritten
type SubmitResult struct {
	Response ResponseResponse `json:"response"`
	Created  bool             `json:"created" example:"true"`
}

// MyResponseResult tells the caller whether they answered a round, and what
type MyResponseResult struct {
	HasSubmitted bool              `json:"hasSubmitted" example:"true"`
	Response     *ResponseResponse `json:"response,omitempty"`
}

// RoundResponsesResponse groups a round with every response collected in it
type RoundResponsesResponse struct {
	Round     RoundResponse      `json:"round"`
	Responses []ResponseResponse `json:"responses"`
}

// ResponseRevisionResponse is one entry of the submission audit trail
type ResponseRevisionResponse struct {
	ID               uuid.UUID              `json:"revisionId"`
	RoundID          uuid.UUID              `json:"roundId"`
	UserID           uuid.UUID              `json:"userId"`
	Answers          map[string]interface{} `json:"answers"`
	QuestionSnapshot []string               `json:"questionSnapshot"`
	SubmittedAt      time.Time              `json:"submittedAt"`
}
