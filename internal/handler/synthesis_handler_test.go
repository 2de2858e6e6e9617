package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"consensus-api/internal/domain"
	"consensus-api/internal/dto"
	"consensus-api/internal/response"
)

// MockSynthesisService is a mock implementation of SynthesisService
type MockSynthesisService struct {
	PushSynthesisFunc       func(ctx context.Context, session domain.Session, formID, roundID uuid.UUID, html string, expectedRevision *int) (*dto.RoundResponse, error)
	PushLatestSynthesisFunc func(ctx context.Context, session domain.Session, formID uuid.UUID, html string, expectedRevision *int) (*dto.RoundResponse, error)
	GenerateSynthesisFunc   func(ctx context.Context, session domain.Session, formID, roundID uuid.UUID, model string) (*dto.SynthesisDraftResponse, error)
	CompileSynthesisFunc    func(ctx context.Context, session domain.Session, formID, roundID uuid.UUID) (*dto.SynthesisDraftResponse, error)
}

func (m *MockSynthesisService) PushSynthesis(ctx context.Context, session domain.Session, formID, roundID uuid.UUID, html string, expectedRevision *int) (*dto.RoundResponse, error) {
	if m.PushSynthesisFunc != nil {
		return m.PushSynthesisFunc(ctx, session, formID, roundID, html, expectedRevision)
	}
	return &dto.RoundResponse{}, nil
}

func (m *MockSynthesisService) PushLatestSynthesis(ctx context.Context, session domain.Session, formID uuid.UUID, html string, expectedRevision *int) (*dto.RoundResponse, error) {
	if m.PushLatestSynthesisFunc != nil {
		return m.PushLatestSynthesisFunc(ctx, session, formID, html, expectedRevision)
	}
	return &dto.RoundResponse{}, nil
}

func (m *MockSynthesisService) GenerateSynthesis(ctx context.Context, session domain.Session, formID, roundID uuid.UUID, model string) (*dto.SynthesisDraftResponse, error) {
	if m.GenerateSynthesisFunc != nil {
		return m.GenerateSynthesisFunc(ctx, session, formID, roundID, model)
	}
	return &dto.SynthesisDraftResponse{}, nil
}

func (m *MockSynthesisService) CompileSynthesis(ctx context.Context, session domain.Session, formID, roundID uuid.UUID) (*dto.SynthesisDraftResponse, error) {
	if m.CompileSynthesisFunc != nil {
		return m.CompileSynthesisFunc(ctx, session, formID, roundID)
	}
	return &dto.SynthesisDraftResponse{}, nil
}

func setupSynthesisRouter(session domain.Session, svc *MockSynthesisService) http.Handler {
	h := NewSynthesisHandler(svc, zap.NewNop())
	r := newTestRouter(session)
	r.PUT("/forms/:formId/synthesis", h.PushLatestSynthesis)
	r.PUT("/forms/:formId/rounds/:roundId/synthesis", h.PushSynthesis)
	r.POST("/forms/:formId/rounds/:roundId/synthesis/generate", h.GenerateSynthesis)
	r.POST("/forms/:formId/rounds/:roundId/synthesis/compile", h.CompileSynthesis)
	return r
}

func TestSynthesisHandler_PushPassesExpectedRevision(t *testing.T) {
	var gotHTML string
	var gotRevision *int
	svc := &MockSynthesisService{
		PushSynthesisFunc: func(ctx context.Context, session domain.Session, formID, roundID uuid.UUID, html string, expectedRevision *int) (*dto.RoundResponse, error) {
			gotHTML = html
			gotRevision = expectedRevision
			return &dto.RoundResponse{ID: roundID, FormID: formID, Synthesis: html, SynthesisRevision: 3}, nil
		},
	}
	rev := 2
	path := "/forms/" + uuid.NewString() + "/rounds/" + uuid.NewString() + "/synthesis"

	w := performRequest(setupSynthesisRouter(adminSession(), svc), http.MethodPut, path, dto.PushSynthesisRequest{HTML: "<p>x</p>", ExpectedRevision: &rev})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "<p>x</p>", gotHTML)
	require.NotNil(t, gotRevision)
	assert.Equal(t, 2, *gotRevision)
	var round dto.RoundResponse
	decodeData(t, w, &round)
	assert.Equal(t, 3, round.SynthesisRevision)
}

func TestSynthesisHandler_PushLatest_EmptyRetracts(t *testing.T) {
	called := false
	svc := &MockSynthesisService{
		PushLatestSynthesisFunc: func(ctx context.Context, session domain.Session, formID uuid.UUID, html string, expectedRevision *int) (*dto.RoundResponse, error) {
			called = true
			assert.Equal(t, "", html)
			assert.Nil(t, expectedRevision)
			return &dto.RoundResponse{FormID: formID}, nil
		},
	}

	w := performRequest(setupSynthesisRouter(adminSession(), svc), http.MethodPut, "/forms/"+uuid.NewString()+"/synthesis", `{"html":""}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestSynthesisHandler_Conflict(t *testing.T) {
	svc := &MockSynthesisService{
		PushLatestSynthesisFunc: func(ctx context.Context, session domain.Session, formID uuid.UUID, html string, expectedRevision *int) (*dto.RoundResponse, error) {
			return nil, response.NewAppError(response.ErrCodeSynthesisConflict, "Synthesis was updated concurrently", "current revision is 4")
		},
	}

	w := performRequest(setupSynthesisRouter(adminSession(), svc), http.MethodPut, "/forms/"+uuid.NewString()+"/synthesis", `{"html":"<p>x</p>","expectedRevision":1}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, response.ErrCodeSynthesisConflict, decodeError(t, w).Error.Code)
}

func TestSynthesisHandler_Generate(t *testing.T) {
	base := "/forms/" + uuid.NewString() + "/rounds/" + uuid.NewString() + "/synthesis/generate"

	t.Run("model is optional", func(t *testing.T) {
		var gotModel string
		svc := &MockSynthesisService{
			GenerateSynthesisFunc: func(ctx context.Context, session domain.Session, formID, roundID uuid.UUID, model string) (*dto.SynthesisDraftResponse, error) {
				gotModel = model
				return &dto.SynthesisDraftResponse{HTML: "<p>draft</p>", Source: dto.DraftSourceGenerated}, nil
			},
		}
		router := setupSynthesisRouter(adminSession(), svc)

		w := performRequest(router, http.MethodPost, base, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "", gotModel)

		w = performRequest(router, http.MethodPost, base, dto.GenerateSynthesisRequest{Model: "some/model"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "some/model", gotModel)
	})

	t.Run("upstream failure is a bad gateway", func(t *testing.T) {
		svc := &MockSynthesisService{
			GenerateSynthesisFunc: func(ctx context.Context, session domain.Session, formID, roundID uuid.UUID, model string) (*dto.SynthesisDraftResponse, error) {
				return nil, response.NewAppError(response.ErrCodeGenerationFailure, "Failed to generate synthesis", "completion API returned 500")
			},
		}

		w := performRequest(setupSynthesisRouter(adminSession(), svc), http.MethodPost, base, nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, response.ErrCodeGenerationFailure, decodeError(t, w).Error.Code)
	})
}

func TestSynthesisHandler_Compile(t *testing.T) {
	svc := &MockSynthesisService{
		CompileSynthesisFunc: func(ctx context.Context, session domain.Session, formID, roundID uuid.UUID) (*dto.SynthesisDraftResponse, error) {
			return &dto.SynthesisDraftResponse{FormID: formID, RoundID: roundID, HTML: "<p>No responses yet</p>", Source: dto.DraftSourceCompiled}, nil
		},
	}

	w := performRequest(setupSynthesisRouter(adminSession(), svc), http.MethodPost, "/forms/"+uuid.NewString()+"/rounds/"+uuid.NewString()+"/synthesis/compile", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var draft dto.SynthesisDraftResponse
	decodeData(t, w, &draft)
	assert.Equal(t, dto.DraftSourceCompiled, draft.Source)
}
