package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventSummaryUpdated is broadcast whenever a round's synthesis is pushed.
// An empty HTML payload means the synthesis was retracted.
const EventSummaryUpdated = "summary_updated"

// Event is a notification tagged with the form and round it concerns.
// Receivers dedupe on (RoundID, Revision).
type Event struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	FormID      uuid.UUID `json:"formId"`
	RoundID     uuid.UUID `json:"roundId"`
	RoundNumber int       `json:"roundNumber"`
	Revision    int       `json:"revision"`
	HTML        string    `json:"html"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// NewSummaryUpdated builds a summary_updated event
func NewSummaryUpdated(formID, roundID uuid.UUID, roundNumber, revision int, html string) Event {
	return Event{
		ID:          uuid.New(),
		Type:        EventSummaryUpdated,
		FormID:      formID,
		RoundID:     roundID,
		RoundNumber: roundNumber,
		Revision:    revision,
		HTML:        html,
		OccurredAt:  time.Now().UTC(),
	}
}

// Publisher fans an event out to subscribers. Delivery is best effort.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Filter selects which forms a subscriber hears about
type Filter struct {
	all   bool
	forms map[uuid.UUID]struct{}
}

// AllForms matches every event
func AllForms() Filter {
	return Filter{all: true}
}

// OnlyForms matches events for the given forms; with no IDs it matches nothing
func OnlyForms(ids ...uuid.UUID) Filter {
	forms := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		forms[id] = struct{}{}
	}
	return Filter{forms: forms}
}

func (f Filter) Matches(formID uuid.UUID) bool {
	if f.all {
		return true
	}
	_, ok := f.forms[formID]
	return ok
}
