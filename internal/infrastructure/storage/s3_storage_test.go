package storage

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dealerdesk/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func testStorageConfig() *config.StorageConfig {
	return &config.StorageConfig{
		Bucket:       "test-bucket",
		AccessKey:    "test-key",
		SecretKey:    "test-secret",
		Region:       "us-east-1",
		Endpoint:     "http://localhost:9000",
		UsePathStyle: true,
	}
}

func TestNewS3ObjectStorage_Validation(t *testing.T) {
	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	tests := []struct {
		name    string
		mutate  func(c *config.StorageConfig)
		wantErr string
	}{
		{"missing bucket", func(c *config.StorageConfig) { c.Bucket = "" }, "bucket is required"},
		{"missing access key", func(c *config.StorageConfig) { c.AccessKey = "" }, "access key is required"},
		{"missing secret key", func(c *config.StorageConfig) { c.SecretKey = "" }, "secret key is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testStorageConfig()
			tt.mutate(cfg)
			_, err := NewS3ObjectStorage(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("valid config creates storage", func(t *testing.T) {
		storage, err := NewS3ObjectStorage(testStorageConfig())
		require.NoError(t, err)
		assert.Equal(t, "test-bucket", storage.GetBucket())
		assert.Equal(t, 15*time.Minute, storage.presignExpiration)
	})
}

func TestNewS3ObjectStorage_Endpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		useSSL   bool
		want     string
	}{
		{"kept when scheme present", "http://minio:9000", false, "http://minio:9000"},
		{"http added without SSL", "minio:9000", false, "http://minio:9000"},
		{"https added with SSL", "minio:9000", true, "https://minio:9000"},
		{"empty uses the AWS default", "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testStorageConfig()
			cfg.Endpoint = tt.endpoint
			cfg.UseSSL = tt.useSSL
			storage, err := NewS3ObjectStorage(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, storage.endpoint)
		})
	}
}

func TestS3ObjectStorageOptions(t *testing.T) {
	logger := zaptest.NewLogger(t)
	storage, err := NewS3ObjectStorage(testStorageConfig(), WithLogger(logger), WithPresignExpiration(time.Hour))
	require.NoError(t, err)
	assert.Same(t, logger, storage.logger)
	assert.Equal(t, time.Hour, storage.presignExpiration)
}

func TestS3ObjectStorage_ObjectURL(t *testing.T) {
	ctx := context.Background()

	t.Run("public base URL", func(t *testing.T) {
		cfg := testStorageConfig()
		cfg.PublicBaseURL = "https://cdn.dealer.test/"
		storage, err := NewS3ObjectStorage(cfg)
		require.NoError(t, err)

		u, err := storage.ObjectURL(ctx, "companies/1/logo.webp")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.dealer.test/companies/1/logo.webp", u)
	})

	t.Run("presigned when no public base URL", func(t *testing.T) {
		storage, err := NewS3ObjectStorage(testStorageConfig())
		require.NoError(t, err)

		u, err := storage.ObjectURL(ctx, "companies/1/logo.webp")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(u, "http://localhost:9000/test-bucket/companies/1/logo.webp"), u)
		assert.Contains(t, u, "X-Amz-Signature=")
	})

	t.Run("empty key", func(t *testing.T) {
		storage, err := NewS3ObjectStorage(testStorageConfig())
		require.NoError(t, err)
		_, err = storage.ObjectURL(ctx, "")
		assert.Error(t, err)
	})
}

func TestS3ObjectStorage_GenerateDownloadURL(t *testing.T) {
	storage, err := NewS3ObjectStorage(testStorageConfig())
	require.NoError(t, err)

	u, expiresAt, err := storage.GenerateDownloadURL(context.Background(), "a/b.webp", 0)
	require.NoError(t, err)
	assert.Contains(t, u, "test-bucket")
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	_, _, err = storage.GenerateDownloadURL(context.Background(), "", time.Minute)
	assert.Error(t, err)
}

func TestS3ObjectStorage_EmptyKeys(t *testing.T) {
	storage, err := NewS3ObjectStorage(testStorageConfig())
	require.NoError(t, err)
	ctx := context.Background()

	assert.ErrorContains(t, storage.Upload(ctx, "", []byte("x"), "text/plain"), "storage key is required")
	assert.ErrorContains(t, storage.DeleteObject(ctx, ""), "storage key is required")
	exists, err := storage.ObjectExists(ctx, "")
	assert.ErrorContains(t, err, "storage key is required")
	assert.False(t, exists)
}

// Set STORAGE_INTEGRATION=1 with MinIO on localhost:9000 (minioadmin/minioadmin) to run.
func TestIntegration_UploadAndDelete(t *testing.T) {
	if os.Getenv("STORAGE_INTEGRATION") == "" {
		t.Skip("set STORAGE_INTEGRATION=1 to run against a local S3-compatible store")
	}

	cfg := testStorageConfig()
	cfg.Bucket = "dealerdesk-integration"
	cfg.AccessKey = "minioadmin"
	cfg.SecretKey = "minioadmin"
	storage, err := NewS3ObjectStorage(cfg, WithLogger(zap.NewNop()))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, storage.EnsureBucket(ctx))
	require.NoError(t, storage.EnsureBucket(ctx))

	key := "integration/logo.webp"
	require.NoError(t, storage.Upload(ctx, key, []byte("RIFF"), WebPContentType))

	exists, err := storage.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, storage.DeleteObject(ctx, key))
	exists, err = storage.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}
