package ladder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors a Processor updates.
type Metrics struct {
	WordsAdded        prometheus.Counter
	DuplicatesSkipped prometheus.Counter
	LoadFailures      prometheus.Counter
	Precomputations   prometheus.Counter
	PrecomputeSeconds prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		WordsAdded: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wordladder",
			Name:      "words_added_total",
			Help:      "Words added to the graph as new vertices.",
		}),
		DuplicatesSkipped: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wordladder",
			Name:      "duplicate_words_total",
			Help:      "Words skipped because they were already present.",
		}),
		LoadFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wordladder",
			Name:      "load_failures_total",
			Help:      "Population attempts whose word source could not be read.",
		}),
		Precomputations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wordladder",
			Name:      "precomputations_total",
			Help:      "Full all-pairs path precomputations run.",
		}),
		PrecomputeSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wordladder",
			Name:      "precompute_duration_seconds",
			Help:      "Duration of one all-pairs precomputation.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}
