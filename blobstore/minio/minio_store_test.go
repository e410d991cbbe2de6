package minio

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/hupe1980/clusterkit/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelName(t *testing.T) {
	tests := []struct {
		key, prefix, want string
	}{
		{"data/a.csv", "data/", "a.csv"},
		{"data/a.csv", "data", "a.csv"},
		{"a.csv", "", "a.csv"},
		{"data/", "data/", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, relName(tt.key, tt.prefix), tt.key)
	}
}

func TestMapError(t *testing.T) {
	err := mapError("k", minio.ErrorResponse{Code: "NoSuchKey"})
	assert.True(t, errors.Is(err, blobstore.ErrNotFound))

	err = mapError("k", minio.ErrorResponse{Code: "AccessDenied"})
	assert.False(t, errors.Is(err, blobstore.ErrNotFound))
}

func TestNew_InvalidEndpoint(t *testing.T) {
	_, err := New(Config{Endpoint: "http://bad endpoint"}, "b", "")
	require.Error(t, err)
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	bucket := "test-clusterkit"

	store, err := New(Config{
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	}, bucket, "test-prefix/")
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	if _, err := store.client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := store.client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, store.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	data := []byte("1.1,1,a\n1.4,2,b\n")
	require.NoError(t, store.Put(ctx, "points.csv", data))

	blob, err := store.Open(ctx, "points.csv")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	got, err := io.ReadAll(blobstore.NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, data, got)
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "points.csv")

	_, err = store.Open(ctx, "missing.csv")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	_ = store.client.RemoveObject(ctx, bucket, "test-prefix/points.csv", minio.RemoveObjectOptions{})
}
