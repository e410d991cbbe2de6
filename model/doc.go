// Package model defines the value types shared by the clustering engine,
// the dataset loader and the report writers.
//
//   - Point: an immutable (x, y) pair of real-valued coordinates
//   - Points: an ordered sequence of Point values
package model
