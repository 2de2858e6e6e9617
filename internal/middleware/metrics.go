package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"consensus-api/internal/metrics"
	"consensus-api/internal/response"
)

// Metrics returns a middleware that records HTTP metrics and the error code of failed requests
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip ops endpoints and the websocket upgrade
		if metrics.ShouldSkipEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		// route pattern keeps label cardinality bounded
		route := c.FullPath()
		m.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))

		if code := c.GetString(response.ErrorCodeKey); code != "" {
			m.RecordAPIError(route, code)
		}
	}
}
