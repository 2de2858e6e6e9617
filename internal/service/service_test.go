package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"consensus-api/internal/client"
	"consensus-api/internal/config"
	"consensus-api/internal/database"
	"consensus-api/internal/domain"
	"consensus-api/internal/dto"
	"consensus-api/internal/metrics"
	"consensus-api/internal/notify"
	"consensus-api/internal/response"
)

// recordingPublisher keeps every published event
type recordingPublisher struct {
	mu     sync.Mutex
	events []notify.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event notify.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Events() []notify.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]notify.Event(nil), p.events...)
}

// stubGenerator returns a canned reply and records the last request
type stubGenerator struct {
	reply string
	err   error
	last  client.GenerationRequest
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, req client.GenerationRequest) (string, error) {
	g.calls++
	g.last = req
	return g.reply, g.err
}

type testEnv struct {
	db          *gorm.DB
	metrics     *metrics.Metrics
	publisher   *recordingPublisher
	generator   *stubGenerator
	store       *client.MockObjectStore
	forms       FormService
	memberships MembershipService
	rounds      RoundService
	submissions SubmissionService
	synthesis   SynthesisService
	states      ParticipantStateService
	feedback    FeedbackService
	exports     ExportService
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.New(database.Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func newTestEnvWithPublisher(t *testing.T, publisher notify.Publisher) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	logger := zap.NewNop()
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), logger)

	env := &testEnv{
		db:        db,
		metrics:   m,
		generator: &stubGenerator{reply: "**Consensus** reached"},
		store:     client.NewMockObjectStore(),
	}
	if rec, ok := publisher.(*recordingPublisher); ok {
		env.publisher = rec
	}

	services := NewServices(Dependencies{
		DB:         db,
		Publisher:  publisher,
		Generator:  env.generator,
		Generation: config.GenerationConfig{DefaultModel: "default/model", MaxTokens: 512},
		Store:      env.store,
		Metrics:    m,
		Logger:     logger,
	})
	env.forms = services.Forms
	env.memberships = services.Memberships
	env.rounds = services.Rounds
	env.submissions = services.Submissions
	env.synthesis = services.Synthesis
	env.states = services.States
	env.feedback = services.Feedback
	env.exports = services.Exports
	return env
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithPublisher(t, &recordingPublisher{})
}

func adminSession() domain.Session {
	return domain.Session{UserID: uuid.New(), IsAdmin: true}
}

func participantSession() domain.Session {
	return domain.Session{UserID: uuid.New()}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// createTestForm creates a form with the given questions and join code
func (e *testEnv) createTestForm(t *testing.T, admin domain.Session, code string, questions ...string) *dto.FormResponse {
	t.Helper()
	form, err := e.forms.CreateForm(context.Background(), admin, &dto.CreateFormRequest{
		Title:     "Retrospective",
		Questions: questions,
		JoinCode:  strPtr(code),
	})
	require.NoError(t, err)
	return form
}

// join redeems code for the participant
func (e *testEnv) join(t *testing.T, participant domain.Session, code string) {
	t.Helper()
	_, err := e.memberships.Redeem(context.Background(), participant, code)
	require.NoError(t, err)
}

func (e *testEnv) activeRoundCount(t *testing.T, formID uuid.UUID) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&domain.Round{}).
		Where("form_id = ? AND is_active = ?", formID, true).
		Count(&count).Error)
	return count
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, response.IsCode(err, code), "expected %s, got %v", code, err)
}
