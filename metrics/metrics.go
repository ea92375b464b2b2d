// Package metrics exposes Prometheus collectors for dataset loads and
// dashboard pipeline runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DatasetLoads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "carsales",
		Name:      "dataset_loads_total",
		Help:      "Dataset source reads by result.",
	}, []string{"result"})

	DatasetRows = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "carsales",
		Name:      "dataset_rows",
		Help:      "Rows in the most recently loaded dataset.",
	})

	PipelineRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "carsales",
		Name:      "pipeline_runs_total",
		Help:      "Filter and summary recomputations.",
	})

	EmptyViews = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "carsales",
		Name:      "empty_views_total",
		Help:      "Recomputations that produced an empty chart view.",
	}, []string{"view"})
)

func init() {
	prometheus.MustRegister(DatasetLoads, DatasetRows, PipelineRuns, EmptyViews)
}

// ObserveLoad records one source read.
func ObserveLoad(ok bool, rows int) {
	if !ok {
		DatasetLoads.WithLabelValues("error").Inc()
		return
	}
	DatasetLoads.WithLabelValues("ok").Inc()
	DatasetRows.Set(float64(rows))
}

// ObserveRun records one pipeline run and the chart views it left empty.
func ObserveRun(emptyViews ...string) {
	PipelineRuns.Inc()
	for _, v := range emptyViews {
		EmptyViews.WithLabelValues(v).Inc()
	}
}
