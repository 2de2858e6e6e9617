package client

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "consensus-api/internal/config"
)

func TestNewS3Client_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     appConfig.S3Config
		wantErr string
	}{
		{"missing bucket", appConfig.S3Config{Region: "us-east-1"}, "bucket is required"},
		{"missing region", appConfig.S3Config{Bucket: "b"}, "region is required"},
		{"endpoint without keys", appConfig.S3Config{Bucket: "b", Region: "us-east-1", Endpoint: "http://minio:9000"}, "access key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewS3Client(context.Background(), &tt.cfg)
			assert.Nil(t, client)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestS3Client_KeysAndURLs(t *testing.T) {
	client, err := NewS3Client(context.Background(), &appConfig.S3Config{
		Bucket:    "exports",
		Region:    "us-east-1",
		AccessKey: "minio",
		SecretKey: "minio123",
		Endpoint:  "http://localhost:9000/",
	})
	require.NoError(t, err)

	formID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	at := time.Date(2024, 3, 5, 14, 7, 9, 0, time.FixedZone("KST", 9*3600))
	key := client.ExportKey(formID, at)
	assert.Equal(t, "exports/forms/11111111-2222-3333-4444-555555555555/20240305T050709Z.json", key)
	assert.Equal(t, "http://localhost:9000/exports/"+key, client.objectURL(key))

	aws := &S3Client{bucket: "b", region: "eu-west-1"}
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com/k", aws.objectURL("k"))
}

func TestS3Client_PresignGet(t *testing.T) {
	client, err := NewS3Client(context.Background(), &appConfig.S3Config{
		Bucket:    "exports",
		Region:    "us-east-1",
		AccessKey: "minio",
		SecretKey: "minio123",
		Endpoint:  "http://localhost:9000",
	})
	require.NoError(t, err)

	url, err := client.PresignGet(context.Background(), "exports/forms/x.json", 15*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "localhost:9000/exports/exports/forms/x.json")
	assert.Contains(t, url, "X-Amz-Signature")
}
