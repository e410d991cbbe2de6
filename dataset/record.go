package dataset

import (
	"slices"

	"github.com/hupe1980/clusterkit/model"
)

// Record is one labelled sample.
//
// Raw holds byte-valued features as read from idx files and is nil for
// delimited input. Features holds real-valued features: parsed values for
// delimited input, normalized values once Normalize has run.
type Record struct {
	Raw             []uint8
	Features        []float64
	Label           int
	EnumeratedLabel int
	ClassVector     []int
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	return Record{
		Raw:             slices.Clone(r.Raw),
		Features:        slices.Clone(r.Features),
		Label:           r.Label,
		EnumeratedLabel: r.EnumeratedLabel,
		ClassVector:     slices.Clone(r.ClassVector),
	}
}

// Dataset is an ordered collection of records.
type Dataset struct {
	records    []Record
	classNames []string
	classes    int
	rows, cols int
}

// New returns a Dataset holding copies of records.
func New(records ...Record) *Dataset {
	ds := &Dataset{records: make([]Record, 0, len(records))}
	for _, r := range records {
		ds.records = append(ds.records, r.Clone())
	}
	return ds
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Record returns a copy of the i-th record.
func (d *Dataset) Record(i int) Record { return d.records[i].Clone() }

// Records returns copies of all records.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	for i, r := range d.records {
		out[i] = r.Clone()
	}
	return out
}

// Subset returns copies of the records at the given indices, in order.
func (d *Dataset) Subset(indices []int) []Record {
	out := make([]Record, len(indices))
	for i, idx := range indices {
		out[i] = d.records[idx].Clone()
	}
	return out
}

// Append adds a copy of r.
func (d *Dataset) Append(r Record) {
	d.records = append(d.records, r.Clone())
}

// FeatureLen returns the feature vector length of the first record, or 0
// for an empty dataset.
func (d *Dataset) FeatureLen() int {
	if len(d.records) == 0 {
		return 0
	}
	if n := len(d.records[0].Raw); n > 0 {
		return n
	}
	return len(d.records[0].Features)
}

// ImageSize returns the rows and columns from the idx header, or zeros for
// delimited input.
func (d *Dataset) ImageSize() (rows, cols int) { return d.rows, d.cols }

// ClassNames returns the class names of delimited input indexed by label.
func (d *Dataset) ClassNames() []string { return slices.Clone(d.classNames) }

// ClassCount returns the number of classes found by CountClasses, or the
// number of distinct class names for delimited input.
func (d *Dataset) ClassCount() int { return d.classes }

// CountClasses enumerates the distinct labels in first-seen order, stores
// the enumerated label and a one-hot class vector on every record and
// returns the number of classes.
func (d *Dataset) CountClasses() int {
	enum := make(map[int]int)
	for i := range d.records {
		r := &d.records[i]
		e, ok := enum[r.Label]
		if !ok {
			e = len(enum)
			enum[r.Label] = e
		}
		r.EnumeratedLabel = e
	}

	d.classes = len(enum)
	for i := range d.records {
		r := &d.records[i]
		r.ClassVector = make([]int, d.classes)
		r.ClassVector[r.EnumeratedLabel] = 1
	}
	return d.classes
}

// Points projects two feature columns into 2-D points, one per record.
func (d *Dataset) Points(xcol, ycol int) ([]model.Point, error) {
	if len(d.records) == 0 {
		return nil, ErrEmptyDataset
	}

	points := make([]model.Point, len(d.records))
	for i, r := range d.records {
		x, err := r.feature(i, xcol)
		if err != nil {
			return nil, err
		}
		y, err := r.feature(i, ycol)
		if err != nil {
			return nil, err
		}
		points[i] = model.P(x, y)
	}
	return points, nil
}

// feature returns column c, preferring real-valued features over raw bytes.
func (r *Record) feature(index, c int) (float64, error) {
	if len(r.Features) > 0 {
		if c < 0 || c >= len(r.Features) {
			return 0, &ErrColumnOutOfRange{Index: index, Column: c, Len: len(r.Features)}
		}
		return r.Features[c], nil
	}
	if c < 0 || c >= len(r.Raw) {
		return 0, &ErrColumnOutOfRange{Index: index, Column: c, Len: len(r.Raw)}
	}
	return float64(r.Raw[c]), nil
}
