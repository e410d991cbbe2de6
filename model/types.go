package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a pair of real-valued coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// P is a shorthand constructor for Point.
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns the point in "[x,y]" form.
func (p Point) String() string {
	return "[" + strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64) + "]"
}

// Points is an ordered sequence of points.
type Points []Point

// Clone returns a copy of ps that does not share backing storage.
func (ps Points) Clone() Points {
	if ps == nil {
		return nil
	}
	out := make(Points, len(ps))
	copy(out, ps)
	return out
}

// Xs returns the x coordinates of ps.
func (ps Points) Xs() []float64 {
	xs := make([]float64, len(ps))
	for i, p := range ps {
		xs[i] = p.X
	}
	return xs
}

// Ys returns the y coordinates of ps.
func (ps Points) Ys() []float64 {
	ys := make([]float64, len(ps))
	for i, p := range ps {
		ys[i] = p.Y
	}
	return ys
}

// ParsePoint parses "x,y" into a Point. Surrounding spaces are ignored.
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("parse point %q: missing comma", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Point{}, fmt.Errorf("parse x of %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Point{}, fmt.Errorf("parse y of %q: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}

// ParsePoints parses a semicolon separated list of "x,y" pairs.
// Empty entries are skipped.
func ParsePoints(s string) (Points, error) {
	var out Points
	for _, tok := range strings.Split(s, ";") {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		p, err := ParsePoint(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
