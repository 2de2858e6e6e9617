package dto

import (
	"time"

	"github.com/google/uuid"
)

// ExportDocument is the serialized archive of a form and all its responses
type ExportDocument struct {
	Form       FormResponse             `json:"form"`
	Rounds     []RoundResponsesResponse `json:"rounds"`
	ExportedAt time.Time                `json:"exportedAt"`
}

// ExportResponse describes where an export ended up
// @Description When object storage is configured the document is uploaded and objectUrl/downloadUrl are set.
// @Description Otherwise the document is returned inline.
type ExportResponse struct {
	FormID      uuid.UUID       `json:"formId"`
	ObjectKey   string          `json:"objectKey,omitempty" example:"exports/forms/539167fb-b599-41ba-9ead-344a6d0b3a2f/20240115T103000Z.json"`
	ObjectURL   string          `json:"objectUrl,omitempty"`
	DownloadURL string          `json:"downloadUrl,omitempty"`
	Document    *ExportDocument `json:"document,omitempty"`
}
