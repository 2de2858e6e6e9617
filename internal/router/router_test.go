package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"consensus-api/internal/client"
	"consensus-api/internal/config"
	"consensus-api/internal/database"
	"consensus-api/internal/dto"
	"consensus-api/internal/metrics"
	"consensus-api/internal/notify"
	"consensus-api/internal/response"
	"consensus-api/internal/service"
)

const testSecret = "router-secret"

type testServer struct {
	router   *gin.Engine
	registry *prometheus.Registry
	hub      *notify.Hub
}

// setupTestRouter wires the full stack on an in-memory database
func setupTestRouter(t *testing.T, basePath string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.New(database.Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	logger := zap.NewNop()
	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(registry, logger)

	hub := notify.NewHub(logger, m, 8)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	services := service.NewServices(service.Dependencies{
		DB:         db,
		Publisher:  hub,
		Generator:  client.NewTextGenerator(config.GenerationConfig{}, logger, m),
		Generation: config.GenerationConfig{DefaultModel: "test/model"},
		Store:      client.NewMockObjectStore(),
		Metrics:    m,
		Logger:     logger,
	})

	r := Setup(Config{
		DB:          db,
		Logger:      logger,
		Metrics:     m,
		Gatherer:    registry,
		Services:    services,
		Hub:         hub,
		JWTSecret:   testSecret,
		BasePath:    basePath,
		CORSOrigins: "http://localhost:3000",
	})
	return &testServer{router: r, registry: registry, hub: hub}
}

func token(t *testing.T, userID uuid.UUID, admin bool) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userID.String(),
		"is_admin": admin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (s *testServer) do(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(raw)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, into))
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Error.Code
}

func TestOpsEndpoints_RootAndBasePath(t *testing.T) {
	s := setupTestRouter(t, "/api")

	for _, path := range []string{"/health", "/api/health", "/ready", "/api/ready"} {
		w := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	for _, path := range []string{"/metrics", "/api/metrics"} {
		w := s.do(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Contains(t, w.Body.String(), "consensus_service_forms_total")
	}
}

func TestAPIRequiresAuthentication(t *testing.T) {
	s := setupTestRouter(t, "/api")

	w := s.do(t, http.MethodGet, "/api/forms", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.ErrCodeUnauthorized, errorCode(t, w))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRoundLifecycleOverHTTP(t *testing.T) {
	s := setupTestRouter(t, "/api")
	admin := token(t, uuid.New(), true)
	alice := token(t, uuid.New(), false)
	bob := token(t, uuid.New(), false)

	// Admin creates a form; no round yet
	w := s.do(t, http.MethodPost, "/api/forms", admin, dto.CreateFormRequest{
		Title:     "Offsite",
		Questions: []string{"Where should we go?", " "},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var form dto.FormResponse
	decode(t, w, &form)
	assert.Equal(t, []string{"Where should we go?"}, form.Questions)
	require.Len(t, form.JoinCode, 5)
	formPath := "/api/forms/" + form.ID.String()

	// Participants cannot administer
	w = s.do(t, http.MethodPost, formPath+"/rounds", alice, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Bad join code, then a real one twice
	w = s.do(t, http.MethodPost, "/api/forms/join", alice, dto.JoinFormRequest{Code: "00000x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrCodeInvalidCode, errorCode(t, w))

	for i := 0; i < 2; i++ {
		w = s.do(t, http.MethodPost, "/api/forms/join", alice, dto.JoinFormRequest{Code: form.JoinCode})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	w = s.do(t, http.MethodPost, "/api/forms/join", bob, dto.JoinFormRequest{Code: form.JoinCode})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, formPath+"/members", admin, nil)
	var members []dto.MemberResponse
	decode(t, w, &members)
	assert.Len(t, members, 2)

	// Submitting before any round opens
	w = s.do(t, http.MethodPost, formPath+"/responses", alice, dto.SubmitResponseRequest{Answers: map[string]interface{}{"q1": "Beach"}})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, response.ErrCodeNoActiveRound, errorCode(t, w))

	// Round 1
	w = s.do(t, http.MethodPost, formPath+"/rounds", admin, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var round1 dto.RoundResponse
	decode(t, w, &round1)
	assert.Equal(t, 1, round1.RoundNumber)

	w = s.do(t, http.MethodPost, formPath+"/responses", alice, dto.SubmitResponseRequest{Answers: map[string]interface{}{"q1": "Beach"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = s.do(t, http.MethodPut, formPath+"/rounds/"+round1.ID.String()+"/responses/me", alice, dto.SubmitResponseRequest{Answers: map[string]interface{}{"q1": "Mountains"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, formPath+"/rounds/"+round1.ID.String()+"/responses", admin, nil)
	var responses []dto.ResponseResponse
	decode(t, w, &responses)
	require.Len(t, responses, 1)
	assert.Equal(t, "Mountains", responses[0].Answers["q1"])

	// Compile and publish a synthesis
	w = s.do(t, http.MethodPost, formPath+"/rounds/"+round1.ID.String()+"/synthesis/compile", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var draft dto.SynthesisDraftResponse
	decode(t, w, &draft)
	assert.Contains(t, draft.HTML, "Mountains")

	w = s.do(t, http.MethodPut, formPath+"/synthesis", admin, dto.PushSynthesisRequest{HTML: draft.HTML})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stale := 0
	w = s.do(t, http.MethodPut, formPath+"/synthesis", admin, dto.PushSynthesisRequest{HTML: "<p>late</p>", ExpectedRevision: &stale})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, response.ErrCodeSynthesisConflict, errorCode(t, w))

	// Generation is unconfigured in tests
	w = s.do(t, http.MethodPost, formPath+"/rounds/"+round1.ID.String()+"/synthesis/generate", admin, nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	// Round 2 carries the synthesis forward
	w = s.do(t, http.MethodPost, formPath+"/rounds", admin, dto.OpenRoundRequest{Questions: []string{"Which month?"}})
	require.Equal(t, http.StatusCreated, w.Code)
	var round2 dto.RoundResponse
	decode(t, w, &round2)
	assert.Equal(t, 2, round2.RoundNumber)
	assert.Equal(t, draft.HTML, round2.PreviousRoundSynthesis)

	w = s.do(t, http.MethodGet, formPath+"/state", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var state dto.ParticipantStateResponse
	decode(t, w, &state)
	require.NotNil(t, state.Round)
	assert.Equal(t, round2.ID, state.Round.ID)
	assert.Equal(t, draft.HTML, state.PreviousRoundSynthesis)

	w = s.do(t, http.MethodGet, formPath+"/rounds", alice, nil)
	var rounds []dto.RoundResponse
	decode(t, w, &rounds)
	require.Len(t, rounds, 2)
	assert.False(t, rounds[0].IsActive)
	assert.True(t, rounds[1].IsActive)

	w = s.do(t, http.MethodPost, formPath+"/rounds/active/close", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodPost, formPath+"/rounds/active/close", admin, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Export lands in object storage
	w = s.do(t, http.MethodGet, formPath+"/export", admin, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var export dto.ExportResponse
	decode(t, w, &export)
	assert.NotEmpty(t, export.ObjectKey)
	assert.NotEmpty(t, export.DownloadURL)

	w = s.do(t, http.MethodGet, formPath+"/responses/revisions", admin, nil)
	var revisions []dto.ResponseRevisionResponse
	decode(t, w, &revisions)
	assert.Len(t, revisions, 2)

	w = s.do(t, http.MethodDelete, formPath, admin, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(t, http.MethodGet, formPath, admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsRecordedForAPIRoutes(t *testing.T) {
	s := setupTestRouter(t, "/api")
	admin := token(t, uuid.New(), true)

	w := s.do(t, http.MethodGet, "/api/forms", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	families, err := s.registry.Gather()
	require.NoError(t, err)
	found := false
	for _, mf := range families {
		if mf.GetName() != "consensus_service_http_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "endpoint" && label.GetValue() == "/api/forms" {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "expected an http_requests_total sample for /api/forms")
}
