// Package metrics counts WAF calls, retries and errors. Counters live on a
// private Prometheus registry so the CLI can dump them at exit and tests can
// read them back without touching global state.
package metrics

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Laisky/errors/v2"
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gurre/waf-regional/wafregional"
)

const namespace = "wafregional"

// Metrics implements wafregional.Recorder.
type Metrics struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	retries  *prometheus.CounterVec
	latency  *prometheus.HistogramVec

	mu        sync.Mutex
	perAction map[string]int64

	changesApplied int64
	changesSkipped int64
	corruptCount   int64
	startTime      time.Time
}

var _ wafregional.Recorder = (*Metrics)(nil)

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "Completed WAF Regional calls by action.",
		}, []string{"action"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Failed WAF Regional calls by action and error code.",
		}, []string{"action", "code"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retries_total",
			Help:      "Retried attempts by action.",
		}, []string{"action"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "call_duration_seconds",
			Help:      "Wall time of a call including retries.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"action"}),
		perAction: make(map[string]int64),
		startTime: time.Now(),
	}
	m.registry.MustRegister(m.calls, m.errors, m.retries, m.latency)
	return m
}

// Registry exposes the collectors, e.g. for promhttp.HandlerFor.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveCall records one finished call.
func (m *Metrics) ObserveCall(action string, d time.Duration, err error) {
	m.calls.WithLabelValues(action).Inc()
	m.latency.WithLabelValues(action).Observe(d.Seconds())
	if err != nil {
		m.errors.WithLabelValues(action, errorCode(err)).Inc()
	}

	m.mu.Lock()
	m.perAction[action]++
	m.mu.Unlock()
}

// ObserveRetry records one retried attempt.
func (m *Metrics) ObserveRetry(action string) {
	m.retries.WithLabelValues(action).Inc()
}

func (m *Metrics) RecordApplied() {
	atomic.AddInt64(&m.changesApplied, 1)
}

// RecordSkipped records n lines passed over because an earlier run applied them.
func (m *Metrics) RecordSkipped(n int64) {
	atomic.AddInt64(&m.changesSkipped, n)
}

func (m *Metrics) RecordCorrupt() {
	atomic.AddInt64(&m.corruptCount, 1)
}

func errorCode(err error) string {
	var apiErr *wafregional.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return "transport"
}

// Report is the summary printed at the end of a CLI run.
type Report struct {
	StartTime      time.Time        `json:"startTime"`
	EndTime        time.Time        `json:"endTime"`
	Duration       time.Duration    `json:"duration"`
	TotalCalls     int64            `json:"totalCalls"`
	Calls          map[string]int64 `json:"calls,omitempty"`
	Errors         map[string]int64 `json:"errors,omitempty"`
	Retries        int64            `json:"retries"`
	ChangesApplied int64            `json:"changesApplied"`
	ChangesSkipped int64            `json:"changesSkipped"`
	CorruptCount   int64            `json:"corruptCount"`
}

// GenerateReport snapshots the counters.
func (m *Metrics) GenerateReport() Report {
	endTime := time.Now()
	r := Report{
		StartTime:      m.startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(m.startTime),
		Calls:          make(map[string]int64),
		Errors:         make(map[string]int64),
		ChangesApplied: atomic.LoadInt64(&m.changesApplied),
		ChangesSkipped: atomic.LoadInt64(&m.changesSkipped),
		CorruptCount:   atomic.LoadInt64(&m.corruptCount),
	}

	m.mu.Lock()
	for action, n := range m.perAction {
		r.Calls[action] = n
		r.TotalCalls += n
	}
	m.mu.Unlock()

	families, err := m.registry.Gather()
	if err != nil {
		return r
	}
	for _, mf := range families {
		switch mf.GetName() {
		case namespace + "_errors_total":
			for _, metric := range mf.GetMetric() {
				for _, label := range metric.GetLabel() {
					if label.GetName() == "code" {
						r.Errors[label.GetValue()] += int64(metric.GetCounter().GetValue())
					}
				}
			}
		case namespace + "_retries_total":
			for _, metric := range mf.GetMetric() {
				r.Retries += int64(metric.GetCounter().GetValue())
			}
		}
	}
	return r
}

func (r Report) MarshalJSON() ([]byte, error) {
	type Alias Report
	return json.Marshal(&struct {
		Alias
		Duration string `json:"duration"`
	}{
		Alias:    Alias(r),
		Duration: r.Duration.String(),
	})
}

func (r Report) String() string {
	s := fmt.Sprintf(
		"Completed in %s\n"+
			"Calls: %d (retries: %d)\n"+
			"Changes applied: %d, skipped: %d, corrupt: %d",
		r.Duration,
		r.TotalCalls,
		r.Retries,
		r.ChangesApplied,
		r.ChangesSkipped,
		r.CorruptCount,
	)
	if len(r.Errors) > 0 {
		codes := make([]string, 0, len(r.Errors))
		for code := range r.Errors {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			s += fmt.Sprintf("\n  %s: %d", code, r.Errors[code])
		}
	}
	return s
}
