package blobstore

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	src := []byte("hello")
	require.NoError(t, store.Put(ctx, "a/1", src))
	require.NoError(t, store.Put(ctx, "b/2", []byte("world")))

	// Put copies its input.
	src[0] = 'j'

	blob, err := store.Open(ctx, "a/1")
	require.NoError(t, err)
	defer blob.Close()
	assert.Equal(t, int64(5), blob.Size())

	got, err := io.ReadAll(NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	buf := make([]byte, 4)
	n, err := blob.ReadAt(buf, 3)
	assert.Equal(t, 2, n)
	assert.Equal(t, io.EOF, err)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/1", "b/2"}, names)

	names, err = store.List(ctx, "b/")
	require.NoError(t, err)
	assert.Equal(t, []string{"b/2"}, names)

	_, err = store.Open(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
