// Package metrics exposes per-run counters in Prometheus text format.
// A one-shot CLI has no listener to scrape, so the counters are
// written to a textfile-collector file instead.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"reclaim/internal/session"
)

// Run holds the metrics for one cleanup run, registered on a private
// registry so repeated runs in tests never collide.
type Run struct {
	registry *prometheus.Registry

	// FilesMovedTotal counts files moved to trash
	FilesMovedTotal prometheus.Counter

	// BytesFreedTotal counts bytes reclaimed
	BytesFreedTotal prometheus.Counter

	// FilesSkippedTotal counts files the operator skipped
	FilesSkippedTotal prometheus.Counter

	// FilesKeptTotal counts files kept, including failed moves
	FilesKeptTotal prometheus.Counter

	// MoveErrorsTotal counts failed trash moves
	MoveErrorsTotal prometheus.Counter

	// LastRunTimestamp records when the run finished
	LastRunTimestamp prometheus.Gauge
}

func NewRun() *Run {
	r := &Run{registry: prometheus.NewRegistry()}

	r.FilesMovedTotal = newCounter("reclaim_files_moved_total",
		"Total files moved to trash.")
	r.BytesFreedTotal = newCounter("reclaim_bytes_freed_total",
		"Total bytes reclaimed by moving files to trash.")
	r.FilesSkippedTotal = newCounter("reclaim_files_skipped_total",
		"Total files skipped by the operator.")
	r.FilesKeptTotal = newCounter("reclaim_files_kept_total",
		"Total files kept, including failed moves.")
	r.MoveErrorsTotal = newCounter("reclaim_move_errors_total",
		"Total trash moves that failed.")
	r.LastRunTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "reclaim_last_run_timestamp",
		Help: "Unix timestamp of the last completed run.",
	})

	r.registry.MustRegister(
		r.FilesMovedTotal,
		r.BytesFreedTotal,
		r.FilesSkippedTotal,
		r.FilesKeptTotal,
		r.MoveErrorsTotal,
		r.LastRunTimestamp,
	)
	return r
}

func newCounter(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
}

// ObserveSummary loads the session counters into the run metrics and
// stamps the completion time.
func (r *Run) ObserveSummary(sum session.Summary, moveErrors int) {
	r.FilesMovedTotal.Add(float64(sum.Moved))
	r.BytesFreedTotal.Add(float64(sum.BytesFreed))
	r.FilesSkippedTotal.Add(float64(sum.Skipped))
	r.FilesKeptTotal.Add(float64(sum.Kept))
	r.MoveErrorsTotal.Add(float64(moveErrors))
	r.LastRunTimestamp.Set(float64(time.Now().Unix()))
}

// WriteTextfile persists the run metrics for the node_exporter
// textfile collector.
func (r *Run) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
