package anagram

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the work done by anagram searches. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	solutions prometheus.Counter
	visits    prometheus.Counter
	searches  *prometheus.CounterVec
	duration  prometheus.Histogram
}

// NewMetrics creates the search metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		solutions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "anagram",
			Name:      "solutions_total",
			Help:      "Anagrams emitted by completed or interrupted searches.",
		}),
		visits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "anagram",
			Name:      "trie_visits_total",
			Help:      "Trie nodes entered while searching.",
		}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "anagram",
			Name:      "searches_total",
			Help:      "Searches run, by how they ended.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "anagram",
			Name:      "search_duration_seconds",
			Help:      "Wall time of a search.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	reg.MustRegister(m.solutions, m.visits, m.searches, m.duration)
	return m
}

func (m *Metrics) observeSearch(outcome string, solutions, visits int, seconds float64) {
	if m == nil {
		return
	}
	m.solutions.Add(float64(solutions))
	m.visits.Add(float64(visits))
	m.searches.WithLabelValues(outcome).Inc()
	m.duration.Observe(seconds)
}
