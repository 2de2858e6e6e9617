package client

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockObjectStore implements ObjectStore in memory for tests without AWS credentials
type MockObjectStore struct {
	Bucket string

	// Optional function overrides for custom test behavior
	UploadFunc     func(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	PresignGetFunc func(ctx context.Context, key string, ttl time.Duration) (string, error)

	mu      sync.Mutex
	Objects map[string][]byte
}

// NewMockObjectStore creates a new mock object store
func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{
		Bucket:  "test-bucket",
		Objects: make(map[string][]byte),
	}
}

func (m *MockObjectStore) ExportKey(formID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("exports/forms/%s/%s.json", formID, at.UTC().Format("20060102T150405Z"))
}

func (m *MockObjectStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, body, contentType)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.Objects[key] = data
	m.mu.Unlock()
	return fmt.Sprintf("https://%s.s3.mock.amazonaws.com/%s", m.Bucket, key), nil
}

func (m *MockObjectStore) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if m.PresignGetFunc != nil {
		return m.PresignGetFunc(ctx, key, ttl)
	}
	return fmt.Sprintf("https://%s.s3.mock.amazonaws.com/%s?X-Amz-Expires=%d", m.Bucket, key, int(ttl.Seconds())), nil
}

// Object returns the stored bytes for key
func (m *MockObjectStore) Object(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Objects[key]
	return data, ok
}
