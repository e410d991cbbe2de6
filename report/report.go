// Package report renders clustering results as text, JSON or an HTML page
// of charts.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/clusterkit"
	"github.com/hupe1980/clusterkit/codec"
)

// Format selects the report encoding.
type Format int

const (
	// FormatText is the "Cluster: <k>" listing.
	FormatText Format = iota
	// FormatJSON is a Document encoded by the configured codec.
	FormatJSON
	// FormatHTML is a self-contained page with scatter, size and
	// displacement charts.
	FormatHTML
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatHTML:
		return "html"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the conventional file extension including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// ParseFormat parses "text", "json" or "html".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "html":
		return FormatHTML, nil
	default:
		return 0, fmt.Errorf("report: unknown format %q", s)
	}
}

// Option configures Write.
type Option func(*options)

type options struct {
	codec  codec.Codec
	indent bool
	title  string
}

// WithCodec sets the JSON codec. Defaults to codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) { o.codec = c }
}

// WithIndent pretty-prints JSON when the codec supports it.
func WithIndent() Option {
	return func(o *options) { o.indent = true }
}

// WithTitle sets the HTML page title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// Write renders res to w.
func Write(w io.Writer, res *clusterkit.Result, format Format, opts ...Option) error {
	o := options{
		codec: codec.Default,
		title: "k-means clustering",
	}
	for _, fn := range opts {
		fn(&o)
	}

	switch format {
	case FormatText:
		return res.WriteText(w)
	case FormatJSON:
		return writeJSON(w, res, o)
	case FormatHTML:
		return writeHTML(w, res, o)
	default:
		return fmt.Errorf("report: unknown format %v", format)
	}
}
