package dto

import "consensus-api/internal/domain"

// ToFormResponse converts a domain form
func ToFormResponse(f *domain.Form) FormResponse {
	return FormResponse{
		ID:        f.ID,
		OwnerID:   f.OwnerID,
		Title:     f.Title,
		Questions: f.BaseQuestions(),
		JoinCode:  f.JoinCode,
		AllowJoin: f.AllowJoin,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// ToRoundResponse converts a domain round, resolving its effective questions against form
func ToRoundResponse(r *domain.Round, form *domain.Form) RoundResponse {
	return RoundResponse{
		ID:                     r.ID,
		FormID:                 r.FormID,
		RoundNumber:            r.RoundNumber,
		Questions:              r.EffectiveQuestions(form),
		IsActive:               r.IsActive,
		Synthesis:              r.Synthesis,
		SynthesisRevision:      r.SynthesisRevision,
		SynthesisUpdatedAt:     r.SynthesisUpdatedAt,
		PreviousRoundSynthesis: r.PreviousRoundSynthesis,
		CreatedAt:              r.CreatedAt,
		ClosedAt:               r.ClosedAt,
	}
}

func ToResponseResponse(r *domain.Response) ResponseResponse {
	return ResponseResponse{
		ID:               r.ID,
		FormID:           r.FormID,
		RoundID:          r.RoundID,
		UserID:           r.UserID,
		Answers:          r.AnswerMap(),
		QuestionSnapshot: r.Snapshot(),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func ToResponseRevisionResponse(r *domain.ResponseRevision) ResponseRevisionResponse {
	resp := domain.Response{Answers: r.Answers, QuestionSnapshot: r.QuestionSnapshot}
	return ResponseRevisionResponse{
		ID:               r.ID,
		RoundID:          r.RoundID,
		UserID:           r.UserID,
		Answers:          resp.AnswerMap(),
		QuestionSnapshot: resp.Snapshot(),
		SubmittedAt:      r.CreatedAt,
	}
}

func ToFeedbackResponse(f *domain.FeedbackSubmission) FeedbackResponse {
	return FeedbackResponse{
		ID:                f.ID,
		UserID:            f.UserID,
		FormID:            f.FormID,
		Accuracy:          f.Accuracy,
		Influence:         f.Influence,
		FurtherThoughts:   f.FurtherThoughts,
		Usability:         f.Usability,
		SynthesisSnapshot: f.SynthesisSnapshot,
		CreatedAt:         f.CreatedAt,
	}
}
