package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateFormRequest represents the request to create a new form
// @Description Request body for creating a form. Blank questions are dropped; at least one must remain.
// @Description joinCode is generated when omitted. allowJoin defaults to true.
type CreateFormRequest struct {
	Title     string   `json:"title" binding:"required,min=1,max=255" example:"Team retrospective"`
	Questions []string `json:"questions" binding:"required" example:"What went well?,What should change?"`
	JoinCode  *string  `json:"joinCode,omitempty" binding:"omitempty,min=3,max=16" example:"48213"`
	AllowJoin *bool    `json:"allowJoin,omitempty" example:"true"`
}

// UpdateFormRequest represents the request to update a form. All fields are optional.
type UpdateFormRequest struct {
	Title     *string  `json:"title,omitempty" binding:"omitempty,min=1,max=255" example:"Team retrospective (Q2)"`
	Questions []string `json:"questions,omitempty" example:"What went well?"`
	AllowJoin *bool    `json:"allowJoin,omitempty" example:"false"`
}

// FormResponse represents a form
type FormResponse struct {
	ID        uuid.UUID `json:"formId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	OwnerID   uuid.UUID `json:"ownerId" example:"b2c3d4e5-f6a7-8901-bcde-f12345678901"`
	Title     string    `json:"title" example:"Team retrospective"`
	Questions []string  `json:"questions"`
	JoinCode  string    `json:"joinCode" example:"48213"`
	AllowJoin bool      `json:"allowJoin" example:"true"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-15T14:20:00Z"`
}

// FormSummaryResponse is one entry of the form list
// @Description currentRound is the number of the active round, or 0 when none is active
type FormSummaryResponse struct {
	ID               uuid.UUID `json:"formId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Title            string    `json:"title" example:"Team retrospective"`
	Questions        []string  `json:"questions"`
	JoinCode         string    `json:"joinCode,omitempty" example:"48213"`
	AllowJoin        bool      `json:"allowJoin" example:"true"`
	ParticipantCount int64     `json:"participantCount" example:"12"`
	CurrentRound     int       `json:"currentRound" example:"2"`
	CreatedAt        time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}

// MemberResponse represents a participant who redeemed the form's join code
type MemberResponse struct {
	UserID   uuid.UUID `json:"userId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	JoinedAt time.Time `json:"joinedAt" example:"2024-01-15T10:30:00Z"`
}

// JoinFormRequest represents a join code redemption
type JoinFormRequest struct {
	Code string `json:"code" binding:"required" example:"48213"`
}

// MembershipResponse is returned after a successful redemption
type MembershipResponse struct {
	FormID   uuid.UUID `json:"formId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	UserID   uuid.UUID `json:"userId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	Title    string    `json:"title" example:"Team retrospective"`
	Created  bool      `json:"created" example:"true"`
	JoinedAt time.Time `json:"joinedAt" example:"2024-01-15T10:30:00Z"`
}
