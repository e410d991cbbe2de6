package kmeans

import (
	"context"
	"math/rand/v2"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/clusterkit/distance"
	"github.com/hupe1980/clusterkit/model"
)

// minParallelPoints is the smallest input that is split across workers.
const minParallelPoints = 1024

// Closest returns the index of the centroid nearest to p.
// Ties resolve to the lowest index.
func Closest(p model.Point, centroids []model.Point, dist distance.Func) int {
	if len(centroids) == 0 {
		return -1
	}

	best := 0
	minDist := dist(p, centroids[0])
	for j := 1; j < len(centroids); j++ {
		if d := dist(p, centroids[j]); d < minDist {
			minDist = d
			best = j
		}
	}

	return best
}

type centroidDist struct {
	id   int
	dist float64
}

// FindClosest returns the indices of the n centroids nearest to p, nearest first.
func FindClosest(p model.Point, centroids []model.Point, n int, dist distance.Func) []int {
	k := len(centroids)
	if n > k {
		n = k
	}
	if n <= 0 {
		return nil
	}

	dists := make([]centroidDist, k)
	for i, c := range centroids {
		dists[i] = centroidDist{id: i, dist: dist(p, c)}
	}

	sort.SliceStable(dists, func(i, j int) bool {
		return dists[i].dist < dists[j].dist
	})

	result := make([]int, n)
	for i := 0; i < n; i++ {
		result[i] = dists[i].id
	}

	return result
}

// Assign writes the nearest centroid of every point into labels and
// returns how many labels changed.
//
// With workers > 1 the points are split into contiguous chunks that are
// labelled concurrently. Assign returns only after every chunk is done.
func Assign(ctx context.Context, points, centroids []model.Point, labels []int, dist distance.Func, workers int) (int, error) {
	n := len(points)
	if workers <= 1 || n < minParallelPoints {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return assignRange(points, centroids, labels, dist, 0, n), nil
	}

	chunk := (n + workers - 1) / workers
	changed := make([]int, workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			changed[w] = assignRange(points, centroids, labels, dist, start, end)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, c := range changed {
		total += c
	}
	return total, nil
}

func assignRange(points, centroids []model.Point, labels []int, dist distance.Func, start, end int) int {
	changed := 0
	for i := start; i < end; i++ {
		best := Closest(points[i], centroids, dist)
		if labels[i] != best {
			labels[i] = best
			changed++
		}
	}
	return changed
}

// Means computes the mean of every cluster's members.
// Clusters without members keep their entry from prev.
// It returns the new centroids and the member count per cluster.
func Means(points []model.Point, labels []int, prev []model.Point) ([]model.Point, []int) {
	k := len(prev)
	xs := make([][]float64, k)
	ys := make([][]float64, k)
	for i, p := range points {
		c := labels[i]
		xs[c] = append(xs[c], p.X)
		ys[c] = append(ys[c], p.Y)
	}

	next := make([]model.Point, k)
	counts := make([]int, k)
	for j := 0; j < k; j++ {
		counts[j] = len(xs[j])
		if counts[j] == 0 {
			next[j] = prev[j]
			continue
		}
		next[j] = model.Point{X: stat.Mean(xs[j], nil), Y: stat.Mean(ys[j], nil)}
	}

	return next, counts
}

// ReseedEmpty moves the centroid of every empty cluster onto the point
// farthest from its own centroid. Only points in clusters with more than
// one member and a non-zero distance to their centroid qualify, and each
// point is used at most once. A cluster without a candidate keeps its
// centroid. Returns the indices of the reseeded clusters. counts is updated
// in place.
func ReseedEmpty(points []model.Point, labels []int, centroids []model.Point, counts []int, dist distance.Func) []int {
	var reseeded []int
	used := make(map[int]struct{})

	for j := range centroids {
		if counts[j] != 0 {
			continue
		}

		// A point sitting on its centroid would duplicate it and lose
		// every tie in the next assignment pass.
		far := -1
		farDist := 0.0
		for i, p := range points {
			if _, ok := used[i]; ok {
				continue
			}
			owner := labels[i]
			if counts[owner] <= 1 {
				continue
			}
			if d := dist(p, centroids[owner]); d > farDist {
				farDist = d
				far = i
			}
		}

		if far < 0 {
			continue
		}

		used[far] = struct{}{}
		counts[labels[far]]--
		counts[j]++
		centroids[j] = points[far]
		reseeded = append(reseeded, j)
	}

	return reseeded
}

// Converged reports whether every centroid moved by at most tolerance,
// measured as squared Euclidean displacement.
func Converged(prev, next []model.Point, tolerance float64) bool {
	for j := range prev {
		if distance.SquaredEuclidean(prev[j], next[j]) > tolerance {
			return false
		}
	}
	return true
}

// SampleCentroids picks k distinct input points as initial centroids.
// Returns nil if there are fewer than k points.
func SampleCentroids(points []model.Point, k int, rng *rand.Rand) []model.Point {
	n := len(points)
	if k <= 0 || n < k {
		return nil
	}

	var perm []int
	if rng != nil {
		perm = rng.Perm(n)
	} else {
		perm = rand.Perm(n)
	}

	centroids := make([]model.Point, k)
	for i := 0; i < k; i++ {
		centroids[i] = points[perm[i]]
	}

	return centroids
}
