package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalize rescales every feature column to [0,1] with global min-max
// scaling: v' = (v-min)/(max-min). A constant column yields NaN, which is
// stored as 0.
//
// Raw bytes are the source when present, otherwise the current Features.
// Every record must have the same number of features.
func (d *Dataset) Normalize() error {
	if len(d.records) == 0 {
		return nil
	}

	width := d.FeatureLen()
	cols := make([][]float64, width)
	for j := range cols {
		cols[j] = make([]float64, len(d.records))
	}

	for i, r := range d.records {
		src := r.source()
		if len(src) != width {
			return &ErrFeatureLength{Index: i, Want: width, Got: len(src)}
		}
		for j, v := range src {
			cols[j][i] = v
		}
	}

	lo := make([]float64, width)
	hi := make([]float64, width)
	for j, col := range cols {
		lo[j] = floats.Min(col)
		hi[j] = floats.Max(col)
	}

	for i := range d.records {
		out := make([]float64, width)
		for j := range out {
			v := (cols[j][i] - lo[j]) / (hi[j] - lo[j])
			if math.IsNaN(v) {
				v = 0
			}
			out[j] = v
		}
		d.records[i].Features = out
	}
	return nil
}

func (r *Record) source() []float64 {
	if len(r.Raw) > 0 {
		out := make([]float64, len(r.Raw))
		for i, b := range r.Raw {
			out[i] = float64(b)
		}
		return out
	}
	return r.Features
}
