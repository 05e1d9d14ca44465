// Package metrics exposes Prometheus instrumentation for the directory.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the application and HTTP layers report to.
type Recorder interface {
	RecordOperation(op string, err error)
	SetUsers(n int)
	RecordHTTPRequest(method, route string, status int, d time.Duration)
}

// Collector implements Recorder with Prometheus collectors.
type Collector struct {
	operations *prometheus.CounterVec
	users      prometheus.Gauge
	httpDur    *prometheus.HistogramVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "user_directory_operations_total",
			Help: "Directory operations by operation and result.",
		}, []string{"op", "result"}),
		users: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "user_directory_users",
			Help: "Number of users currently stored.",
		}),
		httpDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "user_directory_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(c.operations, c.users, c.httpDur)
	return c
}

// RecordOperation counts op under the result label derived from err.
func (c *Collector) RecordOperation(op string, err error) {
	c.operations.WithLabelValues(op, Result(err)).Inc()
}

func (c *Collector) SetUsers(n int) {
	c.users.Set(float64(n))
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	c.httpDur.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the gatherer in the Prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything. Used when metrics are disabled.
type Nop struct{}

func (Nop) RecordOperation(string, error)                         {}
func (Nop) SetUsers(int)                                          {}
func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
