package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/RoaringBitmap/roaring/v2"
)

// Fractions are the shares of a dataset sampled into each subset.
type Fractions struct {
	Train      float64
	Test       float64
	Validation float64
}

// DefaultFractions samples 10% training, 7.5% test and 0.5% validation
// records. The remaining 82.5% are reported by Split.Unassigned.
var DefaultFractions = Fractions{Train: 0.1, Test: 0.075, Validation: 0.005}

// FullFractions covers every record: 80% training, 10% test, 10% validation.
var FullFractions = Fractions{Train: 0.8, Test: 0.1, Validation: 0.1}

// Sum returns the total share.
func (f Fractions) Sum() float64 { return f.Train + f.Test + f.Validation }

func (f Fractions) validate() error {
	for _, v := range []float64{f.Train, f.Test, f.Validation} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidFractions
		}
	}
	if f.Sum() > 1+1e-9 {
		return ErrInvalidFractions
	}
	return nil
}

// SplitOption configures a Splitter.
type SplitOption func(*Splitter)

// WithSeed makes sampling reproducible.
func WithSeed(seed uint64) SplitOption {
	return func(s *Splitter) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// Splitter samples disjoint training, test and validation subsets without
// replacement. A Splitter is not safe for concurrent use.
type Splitter struct {
	fractions Fractions
	rng       *rand.Rand
}

// NewSplitter returns a Splitter for the given fractions. Without WithSeed
// every Split draws a different sample.
func NewSplitter(f Fractions, opts ...SplitOption) (*Splitter, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	s := &Splitter{fractions: f}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s, nil
}

// Fractions returns the configured fractions.
func (s *Splitter) Fractions() Fractions { return s.fractions }

// Split holds record indices into the dataset that was split.
type Split struct {
	Train      []int
	Test       []int
	Validation []int

	n        int
	assigned *roaring.Bitmap
}

// Split samples subsets of floor(n*fraction) records each.
func (s *Splitter) Split(ds *Dataset) *Split {
	n := ds.Len()
	trainN := int(float64(n) * s.fractions.Train)
	testN := int(float64(n) * s.fractions.Test)
	validN := int(float64(n) * s.fractions.Validation)

	// Rounding can push the sum past n when the fractions sum to 1.
	validN = max(0, min(validN, n-trainN-testN))

	perm := s.rng.Perm(n)
	sp := &Split{
		Train:      perm[:trainN:trainN],
		Test:       perm[trainN : trainN+testN : trainN+testN],
		Validation: perm[trainN+testN : trainN+testN+validN : trainN+testN+validN],
		n:          n,
		assigned:   roaring.New(),
	}
	for _, idx := range perm[:trainN+testN+validN] {
		sp.assigned.Add(uint32(idx))
	}
	return sp
}

// Assigned returns the number of records in any subset.
func (sp *Split) Assigned() int { return int(sp.assigned.GetCardinality()) }

// Unassigned returns the sorted indices of records in no subset.
func (sp *Split) Unassigned() []int {
	rest := roaring.Flip(sp.assigned, 0, uint64(sp.n))
	out := make([]int, 0, rest.GetCardinality())
	it := rest.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Contains reports whether record i was sampled into any subset.
func (sp *Split) Contains(i int) bool {
	return i >= 0 && sp.assigned.Contains(uint32(i))
}

// WriteText prints each subset under a "<Name> Data:" heading, one record
// per line as its features with three decimals followed by "-> label".
// ds must be the dataset the split was sampled from.
func (sp *Split) WriteText(w io.Writer, ds *Dataset) error {
	bw := bufio.NewWriter(w)
	subsets := []struct {
		name    string
		indices []int
	}{
		{"Training", sp.Train},
		{"Test", sp.Test},
		{"Validation", sp.Validation},
	}
	for _, sub := range subsets {
		fmt.Fprintf(bw, "%s Data:\n", sub.name)
		for _, i := range sub.indices {
			r := &ds.records[i]
			for _, v := range r.Features {
				fmt.Fprintf(bw, "%.3f,", v)
			}
			fmt.Fprintf(bw, " -> %d\n", r.Label)
		}
	}
	return bw.Flush()
}
