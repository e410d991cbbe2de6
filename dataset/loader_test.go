package dataset

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/hupe1980/clusterkit/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loadEvent struct {
	kind    string
	records int
	bytes   int64
	err     error
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []loadEvent
}

func (r *fakeRecorder) RecordLoad(kind string, records int, bytes int64, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, loadEvent{kind, records, bytes, err})
}

func newStore(t *testing.T, blobs map[string][]byte) blobstore.BlobStore {
	t.Helper()
	store := blobstore.NewMemoryStore()
	for name, data := range blobs {
		require.NoError(t, store.Put(context.Background(), name, data))
	}
	return store
}

func TestLoader_Images(t *testing.T) {
	images := idxImages(1, 2, []byte{0, 100}, []byte{255, 50}, []byte{51, 0})
	store := newStore(t, map[string][]byte{
		"train-images.gz": gzipBytes(t, images),
		"train-labels":    idxLabels(5, 0, 5),
	})

	rec := &fakeRecorder{}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	loader := NewLoader(store, WithRecorder(rec), WithLogger(logger))
	ctx := context.Background()

	ds, err := loader.LoadImages(ctx, "train-images.gz")
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	// Features are normalized on load.
	assert.Equal(t, []float64{0, 1}, ds.Record(0).Features)
	assert.Equal(t, []float64{1, 0.5}, ds.Record(1).Features)
	assert.Equal(t, []float64{0.2, 0}, ds.Record(2).Features)

	require.NoError(t, loader.LoadLabels(ctx, ds, "train-labels"))
	assert.Equal(t, 2, ds.CountClasses())
	assert.Equal(t, 5, ds.Record(0).Label)
	assert.Equal(t, 1, ds.Record(1).EnumeratedLabel)

	require.Len(t, rec.events, 2)
	assert.Equal(t, KindImages, rec.events[0].kind)
	assert.Equal(t, 3, rec.events[0].records)
	assert.Equal(t, KindLabels, rec.events[1].kind)
	assert.NoError(t, rec.events[1].err)

	assert.Contains(t, logs.String(), "compression=gzip")
	assert.Contains(t, logs.String(), "msg=loaded")
}

func TestLoader_CSV(t *testing.T) {
	store := newStore(t, map[string][]byte{
		"points.csv": zstdBytes(t, []byte("1;1;a\n1.5;2;a\n8;8;b\n")),
	})

	ds, err := NewLoader(store).LoadCSV(context.Background(), "points.csv", ";")
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"a", "b"}, ds.ClassNames())

	pts, err := ds.Points(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, pts[1].X)
}

func TestLoader_FileNotFound(t *testing.T) {
	rec := &fakeRecorder{}
	loader := NewLoader(blobstore.NewMemoryStore(), WithRecorder(rec))

	_, err := loader.LoadImages(context.Background(), "missing.idx")
	require.Error(t, err)

	var fnf *FileNotFoundError
	require.ErrorAs(t, err, &fnf)
	assert.Equal(t, "missing.idx", fnf.Name)
	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.True(t, errors.Is(err, blobstore.ErrNotFound))

	err = loader.LoadLabels(context.Background(), New(), "missing-labels")
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = loader.LoadCSV(context.Background(), "missing.csv", ",")
	assert.ErrorIs(t, err, ErrFileNotFound)

	require.Len(t, rec.events, 3)
	assert.Error(t, rec.events[0].err)
}

func TestLoader_LocalStore(t *testing.T) {
	dir := t.TempDir()
	store := blobstore.NewLocalStore(dir)
	require.NoError(t, store.Put(context.Background(), "mnist/images.lz4", lz4Bytes(t, idxImages(2, 1, []byte{1, 2}))))

	ds, err := NewLoader(store).LoadImages(context.Background(), "mnist/images.lz4")
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 2}, ds.Record(0).Raw)

	_, err = NewLoader(store).LoadImages(context.Background(), "mnist/labels")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoader_DecodeError(t *testing.T) {
	store := newStore(t, map[string][]byte{"labels": idxLabels(1, 2)})

	_, err := NewLoader(store).LoadImages(context.Background(), "labels")
	var bm *ErrBadMagic
	require.ErrorAs(t, err, &bm)
	assert.Contains(t, err.Error(), "load labels")
}

func TestLoader_MemoryLimit(t *testing.T) {
	store := newStore(t, map[string][]byte{"big": idxImages(4, 4, make([]byte, 16))})

	_, err := NewLoader(store, WithMemoryLimit(8)).LoadImages(context.Background(), "big")
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)

	_, err = NewLoader(store, WithMemoryLimit(1024)).LoadImages(context.Background(), "big")
	assert.NoError(t, err)
}

func TestLoader_MemoryLimitChargesDecodedSize(t *testing.T) {
	packed := gzipBytes(t, idxImages(100, 100, make([]byte, 100*100)))
	require.Less(t, len(packed), 1024)
	store := newStore(t, map[string][]byte{"big.gz": packed})

	_, err := NewLoader(store, WithMemoryLimit(1024)).LoadImages(context.Background(), "big.gz")
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)

	ds, err := NewLoader(store, WithMemoryLimit(1<<20)).LoadImages(context.Background(), "big.gz")
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
}

func TestLoader_InvalidHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, []uint32{ImageMagic, 1 << 22, 0, 0}))
	store := newStore(t, map[string][]byte{"empty-dims": buf.Bytes()})

	_, err := NewLoader(store).LoadImages(context.Background(), "empty-dims")
	var ih *ErrInvalidHeader
	assert.ErrorAs(t, err, &ih)
}

func TestLoader_IOLimit(t *testing.T) {
	store := newStore(t, map[string][]byte{"a.csv": []byte("1,2,x\n")})

	ds, err := NewLoader(store, WithIOLimit(1<<20), WithMaxConcurrentLoads(2)).LoadCSV(context.Background(), "a.csv", ",")
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
}

func TestLoader_Cancelled(t *testing.T) {
	store := newStore(t, map[string][]byte{"a.csv": []byte("1,2,x\n")})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(store).LoadCSV(ctx, "a.csv", ",")
	assert.ErrorIs(t, err, context.Canceled)
}
