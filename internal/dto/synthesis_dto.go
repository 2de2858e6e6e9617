package dto

import "github.com/google/uuid"

// Synthesis draft sources
const (
	DraftSourceGenerated = "generated"
	DraftSourceCompiled  = "compiled"
)

// PushSynthesisRequest publishes (or, with empty html, retracts) a round synthesis
// @Description expectedRevision is optional; when set, a stale value is rejected with SYNTHESIS_CONFLICT
type PushSynthesisRequest struct {
	HTML             string `json:"html" example:"<p>Most of the team agreed...</p>"`
	ExpectedRevision *int   `json:"expectedRevision,omitempty" example:"2"`
}

// GenerateSynthesisRequest selects the model used for a generated draft
type GenerateSynthesisRequest struct {
	Model string `json:"model,omitempty" example:"openai/gpt-4o-mini"`
}

// SynthesisDraftResponse is an unpublished synthesis draft
type SynthesisDraftResponse struct {
	FormID  uuid.UUID `json:"formId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	RoundID uuid.UUID `json:"roundId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	HTML    string    `json:"html" example:"<p>Most of the team agreed...</p>"`
	Model   string    `json:"model,omitempty" example:"openai/gpt-4o-mini"`
	Source  string    `json:"source" example:"generated"`
}
