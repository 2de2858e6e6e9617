package domain

// ParticipantState is the UI mode a participant should be in for a form
type ParticipantState string

const (
	StateNeedsJoin         ParticipantState = "needs_join"
	StateAwaitingRound     ParticipantState = "awaiting_round"
	StateFilling           ParticipantState = "filling"
	StateReviewing         ParticipantState = "reviewing"
	StateAwaitingSynthesis ParticipantState = "awaiting_synthesis"
	StateViewing           ParticipantState = "viewing"
)

// DeriveParticipantState maps membership, the form's current round and the
// caller's response for that round onto a single participant state.
// current is the active round, or the latest closed round when none is active.
func DeriveParticipantState(isMember bool, current *Round, response *Response) ParticipantState {
	if !isMember {
		return StateNeedsJoin
	}
	if current == nil {
		return StateAwaitingRound
	}
	if current.HasSynthesis() {
		return StateViewing
	}
	if current.IsActive {
		if response == nil {
			return StateFilling
		}
		return StateReviewing
	}
	if response == nil {
		return StateAwaitingRound
	}
	return StateAwaitingSynthesis
}
