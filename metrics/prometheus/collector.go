// Package prometheus exports clustering and dataset-load metrics through
// the Prometheus client library.
//
//	reg := prom.NewRegistry()
//	c, err := prometheus.NewCollector(reg)
//	eng, err := clusterkit.New(k, points, clusterkit.WithMetricsCollector(c))
//	loader := dataset.NewLoader(store, dataset.WithRecorder(c))
package prometheus

import (
	"time"

	"github.com/hupe1980/clusterkit"
	"github.com/hupe1980/clusterkit/dataset"
	prom "github.com/prometheus/client_golang/prometheus"
)

var (
	_ clusterkit.MetricsCollector = (*Collector)(nil)
	_ dataset.Recorder            = (*Collector)(nil)
)

// Collector implements clusterkit.MetricsCollector and dataset.Recorder.
type Collector struct {
	runs             *prom.CounterVec
	runDuration      *prom.HistogramVec
	runIterations    prom.Histogram
	iterations       prom.Counter
	reassigned       prom.Counter
	lastDisplacement prom.Gauge
	loads            *prom.CounterVec
	loadDuration     *prom.HistogramVec
	loadBytes        *prom.CounterVec
	loadRecords      *prom.CounterVec
}

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prom.Registerer) (*Collector, error) {
	c := &Collector{
		runs: prom.NewCounterVec(prom.CounterOpts{
			Name: "clusterkit_runs_total",
			Help: "Total clustering runs by terminal state",
		}, []string{"state"}),
		runDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "clusterkit_run_duration_seconds",
			Help:    "Duration of clustering runs",
			Buckets: prom.DefBuckets,
		}, []string{"status"}),
		runIterations: prom.NewHistogram(prom.HistogramOpts{
			Name:    "clusterkit_run_iterations",
			Help:    "Recompute passes per clustering run",
			Buckets: prom.LinearBuckets(1, 2, 10),
		}),
		iterations: prom.NewCounter(prom.CounterOpts{
			Name: "clusterkit_iterations_total",
			Help: "Total centroid recompute passes",
		}),
		reassigned: prom.NewCounter(prom.CounterOpts{
			Name: "clusterkit_reassigned_points_total",
			Help: "Total points that changed cluster during assignment",
		}),
		lastDisplacement: prom.NewGauge(prom.GaugeOpts{
			Name: "clusterkit_last_displacement",
			Help: "Mean squared centroid displacement of the latest recompute pass",
		}),
		loads: prom.NewCounterVec(prom.CounterOpts{
			Name: "clusterkit_dataset_loads_total",
			Help: "Total dataset loads",
		}, []string{"kind", "status"}),
		loadDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "clusterkit_dataset_load_duration_seconds",
			Help:    "Duration of dataset loads",
			Buckets: prom.DefBuckets,
		}, []string{"kind"}),
		loadBytes: prom.NewCounterVec(prom.CounterOpts{
			Name: "clusterkit_dataset_load_bytes_total",
			Help: "Total blob bytes read by dataset loads",
		}, []string{"kind"}),
		loadRecords: prom.NewCounterVec(prom.CounterOpts{
			Name: "clusterkit_dataset_load_records_total",
			Help: "Total records decoded by dataset loads",
		}, []string{"kind"}),
	}

	for _, m := range []prom.Collector{
		c.runs, c.runDuration, c.runIterations, c.iterations, c.reassigned,
		c.lastDisplacement, c.loads, c.loadDuration, c.loadBytes, c.loadRecords,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordIteration implements clusterkit.MetricsCollector.
func (c *Collector) RecordIteration(_ int, displacement float64, changed int) {
	c.iterations.Inc()
	c.reassigned.Add(float64(changed))
	c.lastDisplacement.Set(displacement)
}

// RecordRun implements clusterkit.MetricsCollector.
func (c *Collector) RecordRun(_, _, iterations int, state clusterkit.State, d time.Duration, err error) {
	if err != nil {
		c.runs.WithLabelValues("error").Inc()
		c.runDuration.WithLabelValues("error").Observe(d.Seconds())
		return
	}
	c.runs.WithLabelValues(state.String()).Inc()
	c.runDuration.WithLabelValues("success").Observe(d.Seconds())
	c.runIterations.Observe(float64(iterations))
}

// RecordLoad implements dataset.Recorder.
func (c *Collector) RecordLoad(kind string, records int, bytes int64, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.loads.WithLabelValues(kind, status).Inc()
	c.loadDuration.WithLabelValues(kind).Observe(d.Seconds())
	c.loadBytes.WithLabelValues(kind).Add(float64(bytes))
	c.loadRecords.WithLabelValues(kind).Add(float64(records))
}
