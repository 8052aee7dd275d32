/* metrics.go
 * Contains the prometheus collectors for player lookups and reports. All methods are safe to call on a nil *Metrics,
 * so packages can record without checking whether metrics are enabled
 * Authors: Zachary Bower
 */

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wahoo"

// Report results
const (
	ReportOK       = "ok"
	ReportNotFound = "not_found"
	ReportError    = "error"
)

type Metrics struct {
	playerLookups  *prometheus.CounterVec
	lookupDuration prometheus.Histogram
	reports        *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		playerLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_lookups_total",
			Help:      "Overbuff profile lookups by result.",
		}, []string{"result"}),
		lookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "player_lookup_duration_seconds",
			Help:      "Time taken to fetch and parse an Overbuff profile.",
			Buckets:   prometheus.DefBuckets,
		}),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Team reports built, by kind and result.",
		}, []string{"kind", "result"}),
	}

	reg.MustRegister(m.playerLookups, m.lookupDuration, m.reports)
	return m
}

func (m *Metrics) ObservePlayerLookup(ok bool, d time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.playerLookups.WithLabelValues(result).Inc()
	m.lookupDuration.Observe(d.Seconds())
}

// ObserveReport counts a report request. kind is what the report was asked for, such as "round" or "search"
func (m *Metrics) ObserveReport(kind string, result string) {
	if m == nil {
		return
	}
	m.reports.WithLabelValues(kind, result).Inc()
}
