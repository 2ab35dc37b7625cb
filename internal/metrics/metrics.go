package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "meowmatch"

type Metrics struct {
	Matches    *prometheus.CounterVec
	Commits    *prometheus.CounterVec
	Rejections *prometheus.CounterVec
	Reaped     *prometheus.CounterVec

	CommitDuration prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Matches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_attempts_total",
			Help:      "Match attempts by outcome",
		}, []string{"role", "outcome"}),

		Commits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commits_total",
			Help:      "Interview commits by result",
		}, []string{"result"}),

		Rejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Interviews torn down before they happened",
		}, []string{"reason"}),

		Reaped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reaped_total",
			Help:      "Items retired by the expiry reaper",
		}, []string{"kind"}),

		CommitDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "commit_duration_seconds",
			Help:      "Duration of interview commits including locking",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// NewNop returns metrics registered nowhere.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) ObserveCommit(started time.Time, result string) {
	m.CommitDuration.Observe(time.Since(started).Seconds())
	m.Commits.WithLabelValues(result).Inc()
}
