package router

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"consensus-api/internal/handler"
	"consensus-api/internal/metrics"
	"consensus-api/internal/middleware"
	"consensus-api/internal/notify"
	"consensus-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB          *gorm.DB
	Redis       *redis.Client // optional, readiness only
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer // defaults to the global registry
	Services    *service.Services
	Hub         *notify.Hub
	JWTSecret   string
	BasePath    string
	CORSOrigins string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	metricsHandler := gin.WrapH(promhttp.Handler())
	if cfg.Gatherer != nil {
		metricsHandler = gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)

	// Ops endpoints answer at the root and under the base path
	basePath := strings.TrimRight(cfg.BasePath, "/")
	for _, prefix := range uniquePrefixes(basePath) {
		ops := r.Group(prefix)
		ops.GET("/health", healthHandler.Health)
		ops.GET("/ready", healthHandler.Ready)
		ops.GET("/metrics", metricsHandler)
		ops.GET("/swagger/*any", swaggerHandler)
	}

	api := r.Group(basePath)

	svc := cfg.Services
	if svc == nil {
		return r
	}

	formHandler := handler.NewFormHandler(svc.Forms, svc.Memberships, svc.States, logger)
	roundHandler := handler.NewRoundHandler(svc.Rounds, logger)
	submissionHandler := handler.NewSubmissionHandler(svc.Submissions, logger)
	synthesisHandler := handler.NewSynthesisHandler(svc.Synthesis, logger)
	feedbackHandler := handler.NewFeedbackHandler(svc.Feedback, logger)
	exportHandler := handler.NewExportHandler(svc.Exports, logger)

	// The websocket handshake carries its token in the query string
	if cfg.Hub != nil {
		wsHandler := handler.NewWSHandler(cfg.Hub, svc.Memberships, cfg.JWTSecret, logger)
		api.GET("/ws", wsHandler.HandleWebSocket)
	}

	authed := api.Group("")
	authed.Use(middleware.Auth(cfg.JWTSecret))
	{
		forms := authed.Group("/forms")
		{
			forms.POST("/join", formHandler.JoinForm)
			forms.GET("", formHandler.ListForms)
			forms.POST("", formHandler.CreateForm)
			forms.GET("/:formId", formHandler.GetForm)
			forms.PATCH("/:formId", formHandler.UpdateForm)
			forms.DELETE("/:formId", formHandler.DeleteForm)
			forms.GET("/:formId/members", formHandler.ListMembers)
			forms.GET("/:formId/state", formHandler.GetState)
			forms.GET("/:formId/export", exportHandler.ExportResponses)

			// Rounds
			forms.GET("/:formId/rounds", roundHandler.ListRounds)
			forms.POST("/:formId/rounds", roundHandler.OpenRound)
			forms.GET("/:formId/rounds/active", roundHandler.GetActiveRound)
			forms.POST("/:formId/rounds/active/close", roundHandler.CloseRound)

			// Responses
			forms.POST("/:formId/responses", submissionHandler.SubmitToActive)
			forms.GET("/:formId/responses", submissionHandler.ListAllResponses)
			forms.GET("/:formId/responses/revisions", submissionHandler.ListRevisions)
			forms.PUT("/:formId/rounds/:roundId/responses/me", submissionHandler.Submit)
			forms.GET("/:formId/rounds/:roundId/responses/me", submissionHandler.GetMyResponse)
			forms.GET("/:formId/rounds/:roundId/responses/me/status", submissionHandler.HasSubmitted)
			forms.GET("/:formId/rounds/:roundId/responses", submissionHandler.ListResponses)

			// Synthesis
			forms.PUT("/:formId/synthesis", synthesisHandler.PushLatestSynthesis)
			forms.PUT("/:formId/rounds/:roundId/synthesis", synthesisHandler.PushSynthesis)
			forms.POST("/:formId/rounds/:roundId/synthesis/generate", synthesisHandler.GenerateSynthesis)
			forms.POST("/:formId/rounds/:roundId/synthesis/compile", synthesisHandler.CompileSynthesis)

			forms.POST("/:formId/feedback", feedbackHandler.SubmitFeedback)
		}

		authed.GET("/feedback", feedbackHandler.ListFeedback)
	}

	return r
}

func uniquePrefixes(basePath string) []string {
	if basePath == "" {
		return []string{""}
	}
	return []string{"", basePath}
}
