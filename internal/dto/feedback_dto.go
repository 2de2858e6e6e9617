package dto

import (
	"time"

	"github.com/google/uuid"
)

// SubmitFeedbackRequest is a participant's closing feedback about the process
type SubmitFeedbackRequest struct {
	Accuracy        string `json:"accuracy" binding:"max=5000" example:"The synthesis matched my view"`
	Influence       string `json:"influence" binding:"max=5000" example:"It changed my second answer"`
	FurtherThoughts string `json:"furtherThoughts" binding:"max=5000"`
	Usability       string `json:"usability" binding:"max=5000"`
}

// FeedbackResponse represents a stored feedback submission
type FeedbackResponse struct {
	ID                uuid.UUID `json:"feedbackId"`
	UserID            uuid.UUID `json:"userId"`
	FormID            uuid.UUID `json:"formId"`
	Accuracy          string    `json:"accuracy"`
	Influence         string    `json:"influence"`
	FurtherThoughts   string    `json:"furtherThoughts"`
	Usability         string    `json:"usability"`
	SynthesisSnapshot string    `json:"synthesisSnapshot"`
	CreatedAt         time.Time `json:"createdAt"`
}
