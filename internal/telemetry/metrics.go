package telemetry

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for notification dispatch results.
const (
	OutcomeSent    = "sent"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// Metrics aggregates the service's prometheus collectors plus an in-process
// snapshot counter set the dispatch-summary scheduler reads. The prometheus
// side is for scraping; the atomic side avoids gathering the registry just
// to log an hourly summary.
type Metrics struct {
	webhookRequests     *prometheus.CounterVec
	notifications       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	sentCount           atomic.Int64
	skippedCount        atomic.Int64
	failedCount         atomic.Int64
	rejectedCount       atomic.Int64
	lastSummarySnapshot atomic.Pointer[Snapshot]
}

// Snapshot is a point-in-time view of dispatch counters.
type Snapshot struct {
	Sent     int64
	Skipped  int64
	Failed   int64
	Rejected int64
}

// New registers the service collectors on the provided registerer and
// returns the Metrics handle. Passing prometheus.DefaultRegisterer wires
// them to the default /metrics exposition.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		webhookRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_requests_total",
				Help: "Inbound webhook requests by response status",
			},
			[]string{"status"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_total",
				Help: "Outbound notification attempts by outcome",
			},
			[]string{"outcome"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"handler", "method"},
		),
	}

	reg.MustRegister(m.webhookRequests, m.notifications, m.requestDuration)
	return m
}

// ObserveWebhook records an inbound webhook response status.
func (m *Metrics) ObserveWebhook(status int) {
	m.webhookRequests.WithLabelValues(strconv.Itoa(status)).Inc()
	if status == 403 {
		m.rejectedCount.Add(1)
	}
}

// ObserveNotification records a dispatch outcome.
func (m *Metrics) ObserveNotification(outcome string) {
	m.notifications.WithLabelValues(outcome).Inc()

	switch outcome {
	case OutcomeSent:
		m.sentCount.Add(1)
	case OutcomeSkipped:
		m.skippedCount.Add(1)
	case OutcomeFailed:
		m.failedCount.Add(1)
	}
}

// ObserveDuration records a handler latency sample.
func (m *Metrics) ObserveDuration(handler, method string, d time.Duration) {
	m.requestDuration.WithLabelValues(handler, method).Observe(d.Seconds())
}

// SnapshotDelta returns the counters accumulated since the previous call.
// Used by the summary scheduler so each report covers one interval.
func (m *Metrics) SnapshotDelta() Snapshot {
	current := Snapshot{
		Sent:     m.sentCount.Load(),
		Skipped:  m.skippedCount.Load(),
		Failed:   m.failedCount.Load(),
		Rejected: m.rejectedCount.Load(),
	}

	previous := m.lastSummarySnapshot.Swap(&current)
	if previous == nil {
		return current
	}

	return Snapshot{
		Sent:     current.Sent - previous.Sent,
		Skipped:  current.Skipped - previous.Skipped,
		Failed:   current.Failed - previous.Failed,
		Rejected: current.Rejected - previous.Rejected,
	}
}
