package domain

import "github.com/google/uuid"

// Session is the caller identity resolved from a bearer credential
type Session struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// Valid reports whether the session identifies a user
func (s Session) Valid() bool {
	return s.UserID != uuid.Nil
}
