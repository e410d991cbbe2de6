package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"path"
	"strings"

	"github.com/hupe1980/clusterkit"
	"github.com/hupe1980/clusterkit/blobstore"
	"github.com/hupe1980/clusterkit/codec"
	"github.com/hupe1980/clusterkit/dataset"
	"github.com/hupe1980/clusterkit/distance"
	"github.com/hupe1980/clusterkit/internal/kmeans"
	"github.com/hupe1980/clusterkit/model"
	"github.com/hupe1980/clusterkit/report"
)

// The built-in sample used when no input is given.
var (
	samplePoints = []clusterkit.Point{
		{X: 1.1, Y: 1}, {X: 1.4, Y: 2}, {X: 3.8, Y: 7}, {X: 5.0, Y: 8}, {X: 4.3, Y: 6},
		{X: 8, Y: 5.0}, {X: 6, Y: 8.5}, {X: 3, Y: 2.0}, {X: 9, Y: 6}, {X: 9.1, Y: 4},
	}
	sampleCentroids = []clusterkit.Point{{X: 1, Y: 1}, {X: 3, Y: 4}, {X: 8, Y: 8}}
)

func runCluster(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig("cluster", args, stderr)
	if err != nil {
		return err
	}
	if err := loadEnv(cfg.EnvFile); err != nil {
		return err
	}

	logger, err := cfg.logger(stderr)
	if err != nil {
		return err
	}
	m, err := newMetrics()
	if err != nil {
		return err
	}
	if cfg.Metrics {
		defer m.dump(stderr)
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	c, ok := codec.ByName(cfg.Codec)
	if !ok {
		return fmt.Errorf("unknown codec %q (have %v)", cfg.Codec, codec.Names())
	}

	points, init, err := clusterInput(ctx, cfg, logger, m)
	if err != nil {
		return err
	}
	if init == nil {
		init, err = sampleInit(points, cfg.K, cfg.Seed)
		if err != nil {
			return err
		}
	}

	opts, err := engineOptions(cfg, logger, m)
	if err != nil {
		return err
	}

	eng, err := clusterkit.New(len(init), points, opts...)
	if err != nil {
		return err
	}
	res, err := eng.ClusterData(ctx, init)
	if err != nil {
		return err
	}

	ropts := []report.Option{report.WithCodec(c)}
	if cfg.Indent {
		ropts = append(ropts, report.WithIndent())
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, res, format, ropts...); err != nil {
		return err
	}

	if cfg.Out == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}

	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	name := reportName(cfg.Out, format)
	if err := store.Put(ctx, name, buf.Bytes()); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %s after %d iterations, report written to %s\n", res.State, format, res.Iterations, name)
	return nil
}

// reportName completes -out: a trailing slash names a directory that gets
// "report" plus the format's extension, and a bare name gets the extension.
func reportName(out string, format report.Format) string {
	switch {
	case strings.HasSuffix(out, "/"):
		return out + "report" + format.Ext()
	case path.Ext(out) == "":
		return out + format.Ext()
	default:
		return out
	}
}

// clusterInput returns the points to cluster and, for the built-in sample
// only, its initial centroids.
func clusterInput(ctx context.Context, cfg Config, logger *clusterkit.Logger, m *metrics) ([]clusterkit.Point, []clusterkit.Point, error) {
	var init []clusterkit.Point
	if cfg.Init != "" {
		ps, err := model.ParsePoints(cfg.Init)
		if err != nil {
			return nil, nil, fmt.Errorf("-init: %w", err)
		}
		init = ps
	}

	switch {
	case cfg.Points != "":
		ps, err := model.ParsePoints(cfg.Points)
		if err != nil {
			return nil, nil, fmt.Errorf("-points: %w", err)
		}
		return ps, init, nil

	case cfg.CSV != "":
		store, err := openStore(ctx, cfg.Store)
		if err != nil {
			return nil, nil, err
		}
		loader := newLoader(store, cfg, logger, m)
		ds, err := loader.LoadCSV(ctx, cfg.CSV, cfg.Delimiter)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Normalize {
			if err := ds.Normalize(); err != nil {
				return nil, nil, err
			}
		}
		ps, err := ds.Points(cfg.XCol, cfg.YCol)
		if err != nil {
			return nil, nil, err
		}
		return ps, init, nil

	default:
		if init == nil && cfg.K == len(sampleCentroids) {
			init = sampleCentroids
		}
		return samplePoints, init, nil
	}
}

func sampleInit(points []clusterkit.Point, k int, seed uint64) ([]clusterkit.Point, error) {
	if k <= 0 {
		return nil, clusterkit.ErrInvalidK
	}
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	init := kmeans.SampleCentroids(points, k, rng)
	if init == nil {
		return nil, fmt.Errorf("cannot sample %d centroids from %d points", k, len(points))
	}
	return init, nil
}

func engineOptions(cfg Config, logger *clusterkit.Logger, m *metrics) ([]clusterkit.Option, error) {
	policy, err := clusterkit.ParseEmptyClusterPolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}
	metric, err := distance.ParseMetric(cfg.Metric)
	if err != nil {
		return nil, err
	}

	return []clusterkit.Option{
		clusterkit.WithMaxIterations(cfg.MaxIter),
		clusterkit.WithTolerance(cfg.Tolerance),
		clusterkit.WithWorkers(cfg.Workers),
		clusterkit.WithEmptyClusterPolicy(policy),
		clusterkit.WithMetric(metric),
		clusterkit.WithLogger(logger),
		clusterkit.WithMetricsCollector(m.collector),
	}, nil
}

func newLoader(store blobstore.BlobStore, cfg Config, logger *clusterkit.Logger, m *metrics) *dataset.Loader {
	return dataset.NewLoader(store,
		dataset.WithLogger(logger.Logger),
		dataset.WithRecorder(m.collector),
		dataset.WithMemoryLimit(cfg.MemoryLimit),
		dataset.WithIOLimit(cfg.IOLimit),
	)
}
