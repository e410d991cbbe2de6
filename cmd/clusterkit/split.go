package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hupe1980/clusterkit/dataset"
)

func runSplit(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig("split", args, stderr)
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

	var opts []dataset.SplitOption
	if cfg.Seed != 0 {
		opts = append(opts, dataset.WithSeed(cfg.Seed))
	}
	splitter, err := dataset.NewSplitter(dataset.Fractions{
		Train:      cfg.Train,
		Test:       cfg.Test,
		Validation: cfg.Validation,
	}, opts...)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	loader := newLoader(store, cfg, logger, m)

	var ds *dataset.Dataset
	switch {
	case cfg.Images != "":
		if ds, err = loader.LoadImages(ctx, cfg.Images); err != nil {
			return err
		}
		if cfg.Labels != "" {
			if err := loader.LoadLabels(ctx, ds, cfg.Labels); err != nil {
				return err
			}
		}
	case cfg.CSV != "":
		if ds, err = loader.LoadCSV(ctx, cfg.CSV, cfg.Delimiter); err != nil {
			return err
		}
		if err := ds.Normalize(); err != nil {
			return err
		}
	default:
		return errors.New("split needs -images or -csv")
	}

	classes := ds.CountClasses()
	sp := splitter.Split(ds)

	tw := tabwriter.NewWriter(stdout, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "records:\t%d\n", ds.Len())
	fmt.Fprintf(tw, "features:\t%d\n", ds.FeatureLen())
	fmt.Fprintf(tw, "classes:\t%d\n", classes)
	fmt.Fprintf(tw, "train:\t%d\n", len(sp.Train))
	fmt.Fprintf(tw, "test:\t%d\n", len(sp.Test))
	fmt.Fprintf(tw, "validation:\t%d\n", len(sp.Validation))
	fmt.Fprintf(tw, "unassigned:\t%d\n", len(sp.Unassigned()))
	if err := tw.Flush(); err != nil {
		return err
	}

	if cfg.Print {
		return sp.WriteText(stdout, ds)
	}
	return nil
}
