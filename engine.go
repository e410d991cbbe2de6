package clusterkit

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/hupe1980/clusterkit/distance"
	"github.com/hupe1980/clusterkit/internal/kmeans"
)

// ClusterEngine partitions a fixed point set into k clusters.
//
// Membership is kept as one cluster label per input point, so every point
// belongs to exactly one cluster at all times. Before the first assignment
// pass every point carries label 0.
//
// A ClusterEngine is not safe for concurrent use.
type ClusterEngine struct {
	k      int
	points []Point
	labels []int

	centroids     []Point
	state         State
	iterations    int
	passes        int
	lastChanged   int
	displacements []float64

	dist distance.Func
	opts options
}

// New creates a ClusterEngine for k clusters over points.
// The points are copied; the caller's slice is never modified.
func New(k int, points []Point, optFns ...Option) (*ClusterEngine, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}

	o := applyOptions(optFns)
	if o.maxIterations < 0 {
		return nil, ErrInvalidMaxIterations
	}
	if o.tolerance < 0 || math.IsNaN(o.tolerance) {
		return nil, ErrInvalidTolerance
	}
	if o.workers < 0 {
		return nil, ErrInvalidWorkers
	}

	dist, err := distance.Provider(o.metric)
	if err != nil {
		return nil, fmt.Errorf("clusterkit: %w", err)
	}

	return &ClusterEngine{
		k:      k,
		points: slices.Clone(points),
		labels: make([]int, len(points)),
		state:  StateUninitialized,
		dist:   dist,
		opts:   o,
	}, nil
}

// ClusterData seeds the centroids with initialCentroids, runs an assignment
// pass, then alternates recompute and assignment passes until the centroids
// converge or the iteration budget is spent.
//
// Reaching the iteration budget is not an error: the returned Result carries
// StateIterationLimitReached and a usable partition.
func (e *ClusterEngine) ClusterData(ctx context.Context, initialCentroids []Point) (*Result, error) {
	start := time.Now()
	res, err := e.clusterData(ctx, initialCentroids)
	e.opts.metricsCollector.RecordRun(e.k, len(e.points), e.iterations, e.state, time.Since(start), err)
	e.opts.logger.LogRun(ctx, e.iterations, e.state, err)
	return res, err
}

func (e *ClusterEngine) clusterData(ctx context.Context, initialCentroids []Point) (*Result, error) {
	if len(initialCentroids) != e.k {
		return nil, &ErrCentroidCount{Expected: e.k, Actual: len(initialCentroids)}
	}
	for i, c := range initialCentroids {
		if !finite(c.X) || !finite(c.Y) {
			return nil, &ErrInvalidCentroid{Index: i, Point: c}
		}
	}

	e.centroids = slices.Clone(initialCentroids)
	e.iterations = 0
	e.passes = 0
	e.displacements = nil

	if err := e.assign(ctx); err != nil {
		return nil, err
	}
	e.state = StateAssigned

	converged := false
	for e.iterations < e.opts.maxIterations {
		converged = e.computeMeans(ctx)
		if converged {
			break
		}
		if err := e.assign(ctx); err != nil {
			return nil, err
		}
	}

	if converged {
		e.state = StateConverged
	} else {
		e.state = StateIterationLimitReached
	}

	return e.Result(), nil
}

// Step runs one recompute pass followed by one assignment pass and reports
// whether the recompute left every centroid within the tolerance.
func (e *ClusterEngine) Step(ctx context.Context) (bool, error) {
	if e.state == StateUninitialized {
		return false, ErrNotInitialized
	}

	converged := e.computeMeans(ctx)
	if err := e.assign(ctx); err != nil {
		return false, err
	}

	if converged {
		e.state = StateConverged
	} else {
		e.state = StateAssigned
	}
	return converged, nil
}

func (e *ClusterEngine) assign(ctx context.Context) error {
	changed, err := kmeans.Assign(ctx, e.points, e.centroids, e.labels, e.dist, e.opts.workers)
	e.passes++
	e.opts.logger.LogAssign(ctx, e.passes, changed, err)
	if err != nil {
		return err
	}
	e.lastChanged = changed
	return nil
}

// computeMeans moves every centroid to the mean of its members and reports
// whether none of them moved beyond the tolerance.
func (e *ClusterEngine) computeMeans(ctx context.Context) bool {
	next, counts := kmeans.Means(e.points, e.labels, e.centroids)

	empty := false
	for j, c := range counts {
		if c == 0 {
			empty = true
			e.opts.logger.LogEmptyCluster(ctx, j, e.opts.emptyPolicy)
		}
	}

	reseeded := false
	if empty && e.opts.emptyPolicy == EmptyClusterReseedFarthest {
		reseeded = len(kmeans.ReseedEmpty(e.points, e.labels, next, counts, e.dist)) > 0
	}

	displacement := distance.MeanSquaredDisplacement(e.centroids, next)
	converged := !reseeded && kmeans.Converged(e.centroids, next, e.opts.tolerance)

	e.centroids = next
	e.iterations++
	e.displacements = append(e.displacements, displacement)

	e.opts.logger.LogIteration(ctx, e.iterations, displacement, converged)
	e.opts.metricsCollector.RecordIteration(e.iterations, displacement, e.lastChanged)

	return converged
}

// ClosestCentroid returns the index of the centroid nearest to p, or -1
// before ClusterData has run. Ties resolve to the lowest index.
func (e *ClusterEngine) ClosestCentroid(p Point) int {
	return kmeans.Closest(p, e.centroids, e.dist)
}

// FindClosestCentroids returns the indices of the n centroids nearest to p,
// nearest first.
func (e *ClusterEngine) FindClosestCentroids(p Point, n int) []int {
	return kmeans.FindClosest(p, e.centroids, n, e.dist)
}

// K returns the number of clusters.
func (e *ClusterEngine) K() int { return e.k }

// Len returns the number of points.
func (e *ClusterEngine) Len() int { return len(e.points) }

// State returns the current lifecycle state.
func (e *ClusterEngine) State() State { return e.state }

// Iterations returns the number of recompute passes run so far.
func (e *ClusterEngine) Iterations() int { return e.iterations }

// Centroids returns a copy of the current centroids.
func (e *ClusterEngine) Centroids() []Point { return slices.Clone(e.centroids) }

// Labels returns a copy of the per-point cluster labels.
func (e *ClusterEngine) Labels() []int { return slices.Clone(e.labels) }

// Displacements returns the mean squared centroid displacement of every
// recompute pass so far.
func (e *ClusterEngine) Displacements() []float64 { return slices.Clone(e.displacements) }

// Clusters groups the points by label. Members keep input order.
func (e *ClusterEngine) Clusters() [][]Point {
	clusters := make([][]Point, e.k)
	for i, p := range e.points {
		c := e.labels[i]
		clusters[c] = append(clusters[c], p)
	}
	return clusters
}

// Result returns a snapshot of the current partition.
func (e *ClusterEngine) Result() *Result {
	return &Result{
		Centroids:     e.Centroids(),
		Clusters:      e.Clusters(),
		Labels:        e.Labels(),
		Iterations:    e.iterations,
		State:         e.state,
		Displacements: e.Displacements(),
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
