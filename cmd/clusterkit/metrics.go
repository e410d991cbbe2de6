package main

import (
	"fmt"
	"io"

	"github.com/hupe1980/clusterkit/metrics/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

type metrics struct {
	reg       *prom.Registry
	collector *prometheus.Collector
}

func newMetrics() (*metrics, error) {
	reg := prom.NewRegistry()
	c, err := prometheus.NewCollector(reg)
	if err != nil {
		return nil, err
	}
	return &metrics{reg: reg, collector: c}, nil
}

// dump writes the registry in the Prometheus text exposition format.
func (m *metrics) dump(w io.Writer) {
	families, err := m.reg.Gather()
	if err != nil {
		fmt.Fprintln(w, "metrics:", err)
		return
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			fmt.Fprintln(w, "metrics:", err)
			return
		}
	}
}
