package clusterkit

import (
	"bufio"
	"fmt"
	"io"
)

// Result is the outcome of a ClusterData call.
type Result struct {
	// Centroids holds one centroid per cluster index.
	Centroids []Point `json:"centroids"`
	// Clusters holds the members of each cluster in input order.
	Clusters [][]Point `json:"clusters"`
	// Labels maps each input point index to its cluster.
	Labels []int `json:"labels"`
	// Iterations is the number of recompute passes that ran.
	Iterations int `json:"iterations"`
	// State is StateConverged or StateIterationLimitReached.
	State State `json:"state"`
	// Displacements holds the mean squared centroid displacement per pass.
	Displacements []float64 `json:"displacements"`
}

// Converged reports whether the run ended by convergence.
func (r *Result) Converged() bool {
	return r.State == StateConverged
}

// WriteText prints every cluster as a "Cluster: <k>" line followed by its
// members in " [x,y] " form.
func (r *Result) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for k, members := range r.Clusters {
		fmt.Fprintf(bw, "Cluster: %d\n", k)
		for _, p := range members {
			fmt.Fprintf(bw, " %s ", p)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
