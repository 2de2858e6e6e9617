package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCode(t *testing.T) {
	err := NewAppError(ErrCodeNoActiveRound, "no active round", "")
	assert.True(t, IsCode(err, ErrCodeNoActiveRound))
	assert.True(t, IsCode(fmt.Errorf("wrapped: %w", err), ErrCodeNoActiveRound))
	assert.False(t, IsCode(err, ErrCodeNotFound))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrCodeNotFound))
}

func TestSendError_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("requestId", "req-1")

	SendError(c, http.StatusBadRequest, ErrCodeInvalidCode, "invalid join code")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCodeInvalidCode, body.Error.Code)
	assert.Equal(t, "invalid join code", body.Error.Message)
	assert.Equal(t, "req-1", body.RequestID)
}
