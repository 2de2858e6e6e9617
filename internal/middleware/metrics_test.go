package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"consensus-api/internal/metrics"
	"consensus-api/internal/response"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.Counter.GetValue()
}

func setupMetricsRouter(m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics(m))
	return router
}

func TestMetricsMiddleware_RecordsRoutePattern(t *testing.T) {
	m := newTestMetrics()
	router := setupMetricsRouter(m)
	router.GET("/api/forms/:formId/rounds", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/api/forms/:formId/rounds", func(c *gin.Context) { c.Status(http.StatusConflict) })

	for _, id := range []string{"a", "b", "c"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/forms/"+id+"/rounds", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/forms/x/rounds", nil))
	require.Equal(t, http.StatusConflict, w.Code)

	assert.Equal(t, 3.0, counterValue(t, m.HTTPRequestsTotal.WithLabelValues("GET", "/api/forms/:formId/rounds", "2xx")))
	assert.Equal(t, 1.0, counterValue(t, m.HTTPRequestsTotal.WithLabelValues("POST", "/api/forms/:formId/rounds", "4xx")))
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	m := newTestMetrics()
	router := setupMetricsRouter(m)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1.0, counterValue(t, m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "4xx")))
}

func TestMetricsMiddleware_ExcludedEndpoints(t *testing.T) {
	m := newTestMetrics()
	router := setupMetricsRouter(m)
	for _, p := range []string{"/metrics", "/health", "/ready", "/api/ws"} {
		router.GET(p, func(c *gin.Context) { c.Status(http.StatusOK) })
	}

	for _, p := range []string{"/metrics", "/health", "/ready", "/api/ws"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0.0, counterValue(t, m.HTTPRequestsTotal.WithLabelValues("GET", p, "2xx")), p)
	}
}

func TestMetricsMiddleware_RecordsErrorCodes(t *testing.T) {
	m := newTestMetrics()
	router := setupMetricsRouter(m)
	router.POST("/api/forms/:formId/responses", func(c *gin.Context) {
		response.SendError(c, http.StatusConflict, response.ErrCodeNoActiveRound, "No active round")
	})
	router.GET("/api/forms/:formId", func(c *gin.Context) {
		response.SendSuccess(c, http.StatusOK, gin.H{})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/forms/x/responses", nil))
		require.Equal(t, http.StatusConflict, w.Code)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/forms/x", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 2.0, counterValue(t, m.APIErrorsTotal.WithLabelValues("/api/forms/:formId/responses", response.ErrCodeNoActiveRound)))
	assert.Equal(t, 0.0, counterValue(t, m.APIErrorsTotal.WithLabelValues("/api/forms/:formId", response.ErrCodeNoActiveRound)))
}
