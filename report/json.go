package report

import (
	"io"

	"github.com/hupe1980/clusterkit"
	"github.com/hupe1980/clusterkit/codec"
)

// Document is the JSON form of a clustering result.
type Document struct {
	K             int              `json:"k"`
	State         clusterkit.State `json:"state"`
	Converged     bool             `json:"converged"`
	Iterations    int              `json:"iterations"`
	Clusters      []Cluster        `json:"clusters"`
	Labels        []int            `json:"labels"`
	Displacements []float64        `json:"displacements"`
}

// Cluster is one cluster of a Document.
type Cluster struct {
	Index    int                `json:"index"`
	Centroid clusterkit.Point   `json:"centroid"`
	Size     int                `json:"size"`
	Members  []clusterkit.Point `json:"members"`
}

// NewDocument builds a Document from res.
func NewDocument(res *clusterkit.Result) Document {
	doc := Document{
		K:             len(res.Centroids),
		State:         res.State,
		Converged:     res.Converged(),
		Iterations:    res.Iterations,
		Clusters:      make([]Cluster, len(res.Centroids)),
		Labels:        res.Labels,
		Displacements: res.Displacements,
	}
	for i, c := range res.Centroids {
		var members []clusterkit.Point
		if i < len(res.Clusters) {
			members = res.Clusters[i]
		}
		if members == nil {
			members = []clusterkit.Point{}
		}
		doc.Clusters[i] = Cluster{Index: i, Centroid: c, Size: len(members), Members: members}
	}
	if doc.Labels == nil {
		doc.Labels = []int{}
	}
	if doc.Displacements == nil {
		doc.Displacements = []float64{}
	}
	return doc
}

func writeJSON(w io.Writer, res *clusterkit.Result, o options) error {
	doc := NewDocument(res)

	var (
		b   []byte
		err error
	)
	if ind, ok := o.codec.(codec.Indenter); ok && o.indent {
		b, err = ind.MarshalIndent(doc, "", "  ")
	} else {
		b, err = o.codec.Marshal(doc)
	}
	if err != nil {
		return err
	}

	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
