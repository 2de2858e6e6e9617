package dto

import "github.com/google/uuid"

// ParticipantStateResponse is everything a participant client needs to render a form
// @Description state is one of needs_join, awaiting_round, filling, reviewing, awaiting_synthesis, viewing
type ParticipantStateResponse struct {
	FormID                 uuid.UUID         `json:"formId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	State                  string            `json:"state" example:"filling"`
	Round                  *RoundResponse    `json:"round,omitempty"`
	PreviousRoundSynthesis string            `json:"previousRoundSynthesis"`
	Synthesis              string            `json:"synthesis"`
	MyResponse             *ResponseResponse `json:"myResponse,omitempty"`
}
