package metrics

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Labels are static key/value pairs attached to every exported metric.
type Labels map[string]string

// Collector aggregates counters from negotiation runs. All methods are
// safe for concurrent use.
type Collector struct {
	labels Labels
	start  time.Time

	negotiationsStarted atomic.Uint64
	negotiationsFailed  atomic.Uint64
	suitesOffered       atomic.Uint64
	compressionOffered  atomic.Uint64
	privateSuppressed   atomic.Uint64
}

// NewCollector creates a collector with the given static labels.
func NewCollector(labels Labels) *Collector {
	c := &Collector{
		labels: make(Labels, len(labels)),
		start:  time.Now(),
	}
	for k, v := range labels {
		c.labels[k] = v
	}
	return c
}

// NegotiationStarted records the start of a negotiation run.
func (c *Collector) NegotiationStarted() { c.negotiationsStarted.Add(1) }

// NegotiationFailed records a negotiation that produced no acceptable
// algorithms.
func (c *Collector) NegotiationFailed() { c.negotiationsFailed.Add(1) }

// RecordSuitesOffered records the number of cipher suites that survived
// filtering.
func (c *Collector) RecordSuitesOffered(n int) {
	if n > 0 {
		c.suitesOffered.Add(uint64(n))
	}
}

// RecordCompressionOffered records the number of compression methods that
// survived filtering.
func (c *Collector) RecordCompressionOffered(n int) {
	if n > 0 {
		c.compressionOffered.Add(uint64(n))
	}
}

// RecordPrivateSuppressed records a private-range algorithm skipped
// because the session did not permit it.
func (c *Collector) RecordPrivateSuppressed() { c.privateSuppressed.Add(1) }

// Snapshot is a point-in-time copy of the collector's counters.
type Snapshot struct {
	NegotiationsStarted uint64
	NegotiationsFailed  uint64
	SuitesOffered       uint64
	CompressionOffered  uint64
	PrivateSuppressed   uint64
	Uptime              time.Duration
}

// Snapshot returns a copy of the current counter values.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		NegotiationsStarted: c.negotiationsStarted.Load(),
		NegotiationsFailed:  c.negotiationsFailed.Load(),
		SuitesOffered:       c.suitesOffered.Load(),
		CompressionOffered:  c.compressionOffered.Load(),
		PrivateSuppressed:   c.privateSuppressed.Load(),
		Uptime:              time.Since(c.start),
	}
}

// --- Global Collector ---

var (
	globalCollector     *Collector
	globalCollectorOnce sync.Once
)

// Global returns the process-wide collector.
func Global() *Collector {
	globalCollectorOnce.Do(func() {
		globalCollector = NewCollector(nil)
	})
	return globalCollector
}

// --- Prometheus Export ---

// PrometheusExporter renders a collector's counters in the Prometheus
// text exposition format.
type PrometheusExporter struct {
	collector *Collector
	namespace string
}

// NewPrometheusExporter creates an exporter. The namespace prefixes every
// metric name.
func NewPrometheusExporter(c *Collector, namespace string) *PrometheusExporter {
	if namespace == "" {
		namespace = "tlsalg"
	}
	return &PrometheusExporter{collector: c, namespace: namespace}
}

// Render returns the metrics in Prometheus text format.
func (e *PrometheusExporter) Render() string {
	snap := e.collector.Snapshot()
	labels := e.labelString()

	var b strings.Builder
	e.counter(&b, "negotiations_started_total", "Negotiation runs started.", labels, snap.NegotiationsStarted)
	e.counter(&b, "negotiations_failed_total", "Negotiation runs that found no acceptable algorithms.", labels, snap.NegotiationsFailed)
	e.counter(&b, "suites_offered_total", "Cipher suites that survived filtering.", labels, snap.SuitesOffered)
	e.counter(&b, "compression_offered_total", "Compression methods that survived filtering.", labels, snap.CompressionOffered)
	e.counter(&b, "private_suppressed_total", "Private-range algorithms skipped by policy.", labels, snap.PrivateSuppressed)

	name := e.namespace + "_uptime_seconds"
	fmt.Fprintf(&b, "# HELP %s Time since the collector was created.\n", name)
	fmt.Fprintf(&b, "# TYPE %s gauge\n", name)
	fmt.Fprintf(&b, "%s%s %f\n", name, labels, snap.Uptime.Seconds())
	return b.String()
}

func (e *PrometheusExporter) counter(b *strings.Builder, suffix, help, labels string, v uint64) {
	name := e.namespace + "_" + suffix
	fmt.Fprintf(b, "# HELP %s %s\n", name, help)
	fmt.Fprintf(b, "# TYPE %s counter\n", name)
	fmt.Fprintf(b, "%s%s %d\n", name, labels, v)
}

func (e *PrometheusExporter) labelString() string {
	if len(e.collector.labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.collector.labels))
	for k := range e.collector.labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%q", k, e.collector.labels[k])
	}
	return "{" + strings.Join(pairs, ",") + "}"
}

// Handler returns an http.Handler serving the metrics.
func (e *PrometheusExporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		fmt.Fprint(w, e.Render())
	})
}
