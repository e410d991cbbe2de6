package clusterkit

import (
	"fmt"

	"github.com/hupe1980/clusterkit/model"
)

// Point is a pair of real-valued coordinates.
type Point = model.Point

// P is shorthand for Point{X: x, Y: y}.
func P(x, y float64) Point { return model.P(x, y) }

// State is the lifecycle state of a ClusterEngine.
type State int

const (
	// StateUninitialized means no assignment pass has run yet.
	StateUninitialized State = iota
	// StateAssigned means points are assigned and refinement is in progress.
	StateAssigned
	// StateConverged means the last recompute moved no centroid beyond the tolerance.
	StateConverged
	// StateIterationLimitReached means the iteration budget ran out before convergence.
	StateIterationLimitReached
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateAssigned:
		return "assigned"
	case StateConverged:
		return "converged"
	case StateIterationLimitReached:
		return "iteration-limit-reached"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	for c := StateUninitialized; c <= StateIterationLimitReached; c++ {
		if c.String() == string(text) {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("clusterkit: unknown state %q", text)
}
