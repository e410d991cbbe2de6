// Command clusterkit clusters 2-D points and splits labelled datasets.
//
// Usage:
//
//	clusterkit cluster [flags]   run k-means and print a report
//	clusterkit split [flags]     load a dataset and sample train/test/validation subsets
//
// Run "clusterkit <command> -h" for the flags of each command. Flags can be
// collected in a YAML file passed with -config; flags given on the command
// line override it. A .env file in the working directory (or -env) is loaded
// before the store is opened.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "clusterkit:", err)
		}
		os.Exit(2)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errors.New("missing command")
	}

	switch args[0] {
	case "cluster":
		return runCluster(ctx, args[1:], stdout, stderr)
	case "split":
		return runSplit(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `usage: clusterkit <command> [flags]

commands:
  cluster   run k-means over inline points, a CSV file or the built-in sample
  split     load idx or CSV data and sample train/test/validation subsets`)
}
