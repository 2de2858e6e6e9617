package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"consensus-api/internal/config"
	"consensus-api/internal/metrics"
)

// ErrGenerationUnavailable is returned when no API key is configured
var ErrGenerationUnavailable = errors.New("text generation is not configured")

// GenerationRequest is a single-turn completion request
type GenerationRequest struct {
	Model     string
	System    string
	Prompt    string
	MaxTokens int
}

// TextGenerator produces text for a prompt with the given model
type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// chatCompletionClient talks to any OpenAI compatible chat completions API (OpenRouter by default)
type chatCompletionClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewTextGenerator creates a chat completions client from configuration
func NewTextGenerator(cfg config.GenerationConfig, logger *zap.Logger, m *metrics.Metrics) TextGenerator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &chatCompletionClient{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    m,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends one non-streaming completion request and returns the first choice's content
func (c *chatCompletionClient) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	if c.apiKey == "" {
		return "", ErrGenerationUnavailable
	}

	body := chatCompletionRequest{Model: req.Model, MaxTokens: req.MaxTokens}
	if req.System != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.System})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.Prompt})

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	c.metrics.RecordExternalAPICall("/chat/completions", http.MethodPost, statusCode, duration, err)

	if err != nil {
		c.logger.Error("Completion request failed",
			zap.String("model", req.Model),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	var decoded chatCompletionResponse
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(raw))
		if decodeErr == nil && decoded.Error != nil && decoded.Error.Message != "" {
			msg = decoded.Error.Message
		}
		c.logger.Warn("Completion API returned non-success status",
			zap.Int("status_code", resp.StatusCode),
			zap.String("model", req.Model),
			zap.String("message", msg),
		)
		return "", fmt.Errorf("completion API returned %d: %s", resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", decodeErr)
	}
	if decoded.Error != nil && decoded.Error.Message != "" {
		return "", fmt.Errorf("completion API error: %s", decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("completion API returned no choices")
	}

	c.logger.Info("Completion generated",
		zap.String("model", req.Model),
		zap.Duration("duration", duration),
		zap.String("finish_reason", decoded.Choices[0].FinishReason),
	)
	return decoded.Choices[0].Message.Content, nil
}
