package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryObjectStorage(t *testing.T) {
	s := NewMemoryObjectStorage("http://localhost:8080/images/")
	ctx := context.Background()

	data := []byte("webp-bytes")
	require.NoError(t, s.Upload(ctx, "companies/1/logo.webp", data, WebPContentType))
	data[0] = 'X'

	stored, contentType, ok := s.Get("companies/1/logo.webp")
	require.True(t, ok)
	assert.Equal(t, "webp-bytes", string(stored), "upload keeps its own copy")
	assert.Equal(t, WebPContentType, contentType)

	u, err := s.ObjectURL(ctx, "companies/1/logo.webp")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/images/companies/1/logo.webp", u)

	require.NoError(t, s.DeleteObject(ctx, "companies/1/logo.webp"))
	require.NoError(t, s.DeleteObject(ctx, "companies/1/logo.webp"))
	assert.Zero(t, s.Len())

	assert.Error(t, s.Upload(ctx, "", nil, ""))
	_, err = s.ObjectURL(ctx, "")
	assert.Error(t, err)
}

func TestMemoryObjectStorage_DefaultBaseURL(t *testing.T) {
	u, err := NewMemoryObjectStorage("").ObjectURL(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "memory://images/k", u)
}
