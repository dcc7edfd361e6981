package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/LegacyCodeHQ/soundcook/cmd/internal/project"
	"github.com/LegacyCodeHQ/soundcook/cooker"
	"github.com/LegacyCodeHQ/soundcook/stage"
	"github.com/prometheus/client_golang/prometheus"
)

// cookReport is published after every cook.
type cookReport struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Platform  string    `json:"platform"`
	Events    int       `json:"events"`
	AuxBuses  int       `json:"auxBuses"`
	Sharesets int       `json:"sharesets"`
	Failed    int       `json:"failed"`
	Staged    int       `json:"staged"`
	Errors    []string  `json:"errors,omitempty"`
}

// recooker cooks the project into a fresh sandbox on every call. Calls are
// serialized.
type recooker struct {
	project *project.Project
	root    string
	prefix  string
	metrics *stage.Metrics
	broker  *broker
	out     io.Writer

	mu     sync.Mutex
	nextID int64
}

func newRecooker(p *project.Project, root, prefix string, reg prometheus.Registerer, b *broker, out io.Writer) *recooker {
	return &recooker{
		project: p,
		root:    root,
		prefix:  prefix,
		metrics: stage.NewMetrics(reg),
		broker:  b,
		out:     out,
	}
}

// cook optionally reloads the metadata, cooks every asset and publishes
// the report. A failed reload keeps the previous snapshot and skips the
// cook.
func (r *recooker) cook(ctx context.Context, rebuild bool) cookReport {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	report := cookReport{
		ID:        r.nextID,
		Timestamp: time.Now().UTC(),
		Platform:  r.project.DB.Platform(),
	}

	if rebuild {
		if err := r.project.DB.Rebuild(ctx); err != nil {
			report.Errors = errorLines(err)
			fmt.Fprintf(r.out, "Metadata reload failed: %v\n", err)
			r.publish(report)
			return report
		}
	}

	// Staged paths are remembered per sandbox, so a new one lets changed
	// files be copied again.
	sandbox := stage.New(r.root,
		stage.WithPrefix(r.prefix),
		stage.WithLogger(r.project.Logger),
		stage.WithMetrics(r.metrics))
	summary, err := r.project.Cooker.CookAll(ctx, sandbox, cooker.Selection{})

	report.Events = summary.Events
	report.AuxBuses = summary.AuxBuses
	report.Sharesets = summary.Sharesets
	report.Failed = summary.Failed
	report.Staged = len(sandbox.Staged())
	report.Errors = errorLines(err)

	fmt.Fprintf(r.out, "Cooked %d events, %d aux buses and %d sharesets (%d files staged, %d failed)\n",
		report.Events, report.AuxBuses, report.Sharesets, report.Staged, report.Failed)
	r.publish(report)
	return report
}

func (r *recooker) publish(report cookReport) {
	data, err := json.Marshal(report)
	if err != nil {
		fmt.Fprintf(r.out, "failed to encode cook report: %v\n", err)
		return
	}
	r.broker.publish(string(data))
}

// errorLines flattens joined errors into one message each.
func errorLines(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var lines []string
		for _, e := range joined.Unwrap() {
			lines = append(lines, errorLines(e)...)
		}
		return lines
	}
	return []string{err.Error()}
}
