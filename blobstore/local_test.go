package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	data := []byte("1.1,1,a\n1.4,2,b\n")
	require.NoError(t, store.Put(ctx, "points.csv", data))
	require.NoError(t, store.Put(ctx, "mnist/labels.idx", []byte{0, 0, 8, 1}))

	// Verify file exists on disk
	_, err := os.Stat(filepath.Join(tmpDir, "points.csv"))
	require.NoError(t, err)

	blob, err := store.Open(ctx, "points.csv")
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 3)
	n, err := blob.ReadAt(buf, 4)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "1,a", string(buf))

	all, err := io.ReadAll(NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, data, all)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"mnist/labels.idx", "points.csv"}, names)

	names, err = store.List(ctx, "mnist/")
	require.NoError(t, err)
	assert.Equal(t, []string{"mnist/labels.idx"}, names)
}

func TestLocalStore_Overwrite(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "report.json", []byte("old")))
	require.NoError(t, store.Put(ctx, "report.json", []byte("new!")))

	got, err := ReadAll(ctx, store, "report.json")
	require.NoError(t, err)
	assert.Equal(t, "new!", string(got))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"report.json"}, names)
}

func TestLocalStore_NotFound(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, err := store.Open(context.Background(), "missing.idx")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = ReadAll(context.Background(), store, "missing.idx")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStore_EmptyBlob(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "empty", nil))

	got, err := ReadAll(ctx, store, "empty")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalStore_Cancelled(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Open(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Put(ctx, "x", nil), context.Canceled)
}
