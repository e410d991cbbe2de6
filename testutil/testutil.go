package testutil

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/hupe1980/clusterkit/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: newRand(seed),
		seed: seed,
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = newRand(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Rand returns a new *rand.Rand seeded from r.
func (r *RNG) Rand() *rand.Rand {
	r.mu.Lock()
	defer r.mu.Unlock()
	return newRand(r.rand.Uint64())
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// UniformPoints returns num points with both coordinates uniform in [lo, hi).
func (r *RNG) UniformPoints(num int, lo, hi float64) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]model.Point, num)
	for i := range pts {
		pts[i] = model.P(lo+r.rand.Float64()*(hi-lo), lo+r.rand.Float64()*(hi-lo))
	}
	return pts
}

// ClusteredPoints generates num points around clusters centers spaced on a
// circle of radius 10*clusters. Each point gets Gaussian noise with the
// given spread. Point i belongs to center i%clusters.
func (r *RNG) ClusteredPoints(num, clusters int, spread float64) ([]model.Point, []model.Point) {
	centers := make([]model.Point, clusters)
	radius := 10 * float64(clusters)
	for c := range centers {
		angle := 2 * math.Pi * float64(c) / float64(clusters)
		centers[c] = model.P(radius*math.Cos(angle), radius*math.Sin(angle))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]model.Point, num)
	for i := range pts {
		c := centers[i%clusters]
		pts[i] = model.P(c.X+r.rand.NormFloat64()*spread, c.Y+r.rand.NormFloat64()*spread)
	}
	return pts, centers
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.rand.UintN(256))
	}
	return b
}

// NearestLabels returns the index of the nearest center for every point by
// brute force, ties going to the lower index.
func NearestLabels(points, centers []model.Point) []int {
	labels := make([]int, len(points))
	for i, p := range points {
		best := math.Inf(1)
		for c, ctr := range centers {
			dx, dy := p.X-ctr.X, p.Y-ctr.Y
			if d := dx*dx + dy*dy; d < best {
				best = d
				labels[i] = c
			}
		}
	}
	return labels
}
