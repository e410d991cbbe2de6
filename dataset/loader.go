package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hupe1980/clusterkit/blobstore"
	"github.com/hupe1980/clusterkit/internal/resource"
)

// Load kinds passed to Recorder.
const (
	KindImages = "images"
	KindLabels = "labels"
	KindCSV    = "csv"
)

// Recorder observes completed loads.
type Recorder interface {
	RecordLoad(kind string, records int, bytes int64, duration time.Duration, err error)
}

// NoopRecorder discards all observations.
type NoopRecorder struct{}

// RecordLoad implements Recorder.
func (NoopRecorder) RecordLoad(string, int, int64, time.Duration, error) {}

// LoaderOption configures a Loader.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	logger   *slog.Logger
	recorder Recorder
	limits   resource.Config
}

// WithLogger sets the logger. Loads are logged at debug level, failures at
// warn level.
func WithLogger(l *slog.Logger) LoaderOption {
	return func(o *loaderOptions) { o.logger = l }
}

// WithRecorder sets the load observer.
func WithRecorder(r Recorder) LoaderOption {
	return func(o *loaderOptions) { o.recorder = r }
}

// WithMemoryLimit bounds the memory held by loads in flight. Every load
// reserves its blob size; image loads add the decoded size announced by the
// idx header before reading any pixels, so compressed inputs are charged for
// what they expand to. CSV loads are charged the blob size only. A load that
// would exceed the limit fails with ErrMemoryLimitExceeded.
func WithMemoryLimit(bytes int64) LoaderOption {
	return func(o *loaderOptions) { o.limits.MemoryLimitBytes = bytes }
}

// WithMaxConcurrentLoads bounds the number of loads running at once.
// Additional loads wait for a free slot.
func WithMaxConcurrentLoads(n int64) LoaderOption {
	return func(o *loaderOptions) { o.limits.MaxConcurrentLoads = n }
}

// WithIOLimit caps read throughput in bytes per second.
func WithIOLimit(bytesPerSec int64) LoaderOption {
	return func(o *loaderOptions) { o.limits.IOLimitBytesPerSec = bytesPerSec }
}

// Loader reads datasets from a blob store.
// It is safe for concurrent use.
type Loader struct {
	store    blobstore.BlobStore
	rc       *resource.Controller
	logger   *slog.Logger
	recorder Recorder
}

// NewLoader returns a Loader reading from store.
func NewLoader(store blobstore.BlobStore, opts ...LoaderOption) *Loader {
	o := loaderOptions{
		logger:   slog.New(slog.DiscardHandler),
		recorder: NoopRecorder{},
		limits:   resource.Config{MaxConcurrentLoads: 4},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Loader{
		store:    store,
		rc:       resource.NewController(o.limits),
		logger:   o.logger,
		recorder: o.recorder,
	}
}

// LoadImages reads an idx image file and normalizes its features.
func (l *Loader) LoadImages(ctx context.Context, name string) (*Dataset, error) {
	var ds *Dataset
	err := l.load(ctx, KindImages, name, func(r io.Reader, res *resource.Reservation) (int, error) {
		var err error
		if ds, err = decodeImages(r, res.Grow); err != nil {
			return 0, err
		}
		if err = ds.Normalize(); err != nil {
			return 0, err
		}
		return ds.Len(), nil
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// LoadLabels reads an idx label file into ds.
func (l *Loader) LoadLabels(ctx context.Context, ds *Dataset, name string) error {
	return l.load(ctx, KindLabels, name, func(r io.Reader, _ *resource.Reservation) (int, error) {
		if err := DecodeLabels(r, ds); err != nil {
			return 0, err
		}
		return ds.Len(), nil
	})
}

// LoadCSV reads a delimited file.
func (l *Loader) LoadCSV(ctx context.Context, name, delimiter string) (*Dataset, error) {
	var ds *Dataset
	err := l.load(ctx, KindCSV, name, func(r io.Reader, _ *resource.Reservation) (int, error) {
		var err error
		if ds, err = DecodeCSV(r, delimiter); err != nil {
			return 0, err
		}
		return ds.Len(), nil
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}

type decodeFunc func(r io.Reader, res *resource.Reservation) (int, error)

func (l *Loader) load(ctx context.Context, kind, name string, decode decodeFunc) (err error) {
	start := time.Now()
	var (
		records int
		size    int64
	)
	defer func() {
		l.recorder.RecordLoad(kind, records, size, time.Since(start), err)
		if err != nil {
			l.logger.WarnContext(ctx, "load failed", "kind", kind, "name", name, "error", err)
			return
		}
		l.logger.DebugContext(ctx, "loaded", "kind", kind, "name", name,
			"records", records, "bytes", size, "duration", time.Since(start))
	}()

	if err = ctx.Err(); err != nil {
		return err
	}
	if !l.rc.TryAcquireLoad() {
		l.logger.DebugContext(ctx, "waiting for load slot", "kind", kind, "name", name,
			"active", l.rc.Stats().ActiveLoads)
		if err = l.rc.AcquireLoad(ctx); err != nil {
			return err
		}
	}
	defer l.rc.ReleaseLoad()

	blob, err := l.store.Open(ctx, name)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return &FileNotFoundError{Name: name, Err: err}
		}
		return fmt.Errorf("dataset: open %s: %w", name, err)
	}
	defer blob.Close()

	size = blob.Size()
	res, err := l.rc.Reserve(size)
	if err != nil {
		return fmt.Errorf("dataset: %s: %w", name, err)
	}
	defer res.Release()

	src := resource.NewRateLimitedReader(ctx, blobstore.NewReader(blob), l.rc)
	r, c, closeFn, err := Decompress(src)
	if err != nil {
		return fmt.Errorf("dataset: %s: %w", name, err)
	}
	defer closeFn()

	if c != CompressionNone {
		l.logger.DebugContext(ctx, "decompressing", "name", name, "compression", c.String())
	}

	records, err = decode(r, res)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	return nil
}
