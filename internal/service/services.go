package service

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"consensus-api/internal/client"
	"consensus-api/internal/config"
	"consensus-api/internal/metrics"
	"consensus-api/internal/notify"
	"consensus-api/internal/repository"
)

// Dependencies are the collaborators shared by every service
type Dependencies struct {
	DB         *gorm.DB
	Publisher  notify.Publisher
	Generator  client.TextGenerator
	Generation config.GenerationConfig
	Store      client.ObjectStore // nil exports inline
	Metrics    *metrics.Metrics
	Logger     *zap.Logger
}

// Services groups the service layer for the router and background jobs
type Services struct {
	Forms       FormService
	Memberships MembershipService
	Rounds      RoundService
	Submissions SubmissionService
	Synthesis   SynthesisService
	States      ParticipantStateService
	Feedback    FeedbackService
	Exports     ExportService
}

// NewServices wires repositories into every service
func NewServices(deps Dependencies) *Services {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tx := repository.NewTransactor(deps.DB)
	formRepo := repository.NewFormRepository(deps.DB)
	membershipRepo := repository.NewMembershipRepository(deps.DB)
	roundRepo := repository.NewRoundRepository(deps.DB)
	responseRepo := repository.NewResponseRepository(deps.DB)
	feedbackRepo := repository.NewFeedbackRepository(deps.DB)

	submissions := NewSubmissionService(tx, formRepo, membershipRepo, roundRepo, responseRepo, deps.Metrics, logger)

	return &Services{
		Forms:       NewFormService(formRepo, membershipRepo, deps.Metrics, logger),
		Memberships: NewMembershipService(formRepo, membershipRepo, roundRepo, deps.Metrics, logger),
		Rounds:      NewRoundService(tx, formRepo, membershipRepo, roundRepo, deps.Metrics, logger),
		Submissions: submissions,
		Synthesis: NewSynthesisService(formRepo, membershipRepo, roundRepo, responseRepo,
			deps.Publisher, deps.Generator, deps.Generation, deps.Metrics, logger),
		States:   NewParticipantStateService(formRepo, membershipRepo, roundRepo, responseRepo),
		Feedback: NewFeedbackService(formRepo, membershipRepo, roundRepo, feedbackRepo, deps.Metrics, logger),
		Exports:  NewExportService(formRepo, membershipRepo, submissions, deps.Store, logger),
	}
}
