package stage

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts what a Sandbox did.
type Metrics struct {
	filesStaged  prometheus.Counter
	filesSkipped prometheus.Counter
	conflicts    prometheus.Counter
	bytesWritten prometheus.Counter
	writeErrors  prometheus.Counter
}

// NewMetrics creates the staging counters and registers them with reg when
// it is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		filesStaged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "soundcook_stage_files_total",
			Help: "Files copied into the sandbox",
		}),
		filesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "soundcook_stage_skipped_total",
			Help: "Files already staged from the same source",
		}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "soundcook_stage_conflicts_total",
			Help: "Attempts to stage a different source to an occupied path",
		}),
		bytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "soundcook_stage_bytes_total",
			Help: "Bytes written into the sandbox",
		}),
		writeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "soundcook_stage_errors_total",
			Help: "Files that could not be read or written",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.filesStaged, m.filesSkipped, m.conflicts, m.bytesWritten, m.writeErrors)
	}
	return m
}
