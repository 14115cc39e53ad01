// Package metrics exposes watchdog counters for prometheus scraping in
// watch mode.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once     sync.Once
	registry *Registry
)

// Registry holds all watchdog metrics.
type Registry struct {
	CyclesTotal     prometheus.Counter
	ProbeFailures   prometheus.Counter
	Remediations    *prometheus.CounterVec // by action: radio_on, connection_up
	Recoveries      prometheus.Counter
	DeviceState     prometheus.Gauge
	RadioEnabled    prometheus.Gauge
	LastCycleUnix   prometheus.Gauge
	LastProbeOK     prometheus.Gauge
	ProbeDurationMs prometheus.Histogram
}

// Get returns the global metrics registry, creating it if necessary.
func Get() *Registry {
	once.Do(func() {
		registry = newRegistry()
	})
	return registry
}

func newRegistry() *Registry {
	r := &Registry{}

	r.CyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wifiwatch_cycles_total",
		Help: "Total watchdog check cycles run",
	})

	r.ProbeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wifiwatch_probe_failures_total",
		Help: "Total reachability probe failures",
	})

	r.Remediations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wifiwatch_remediations_total",
		Help: "Total remediation actions taken",
	}, []string{"action"})

	r.Recoveries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wifiwatch_recoveries_total",
		Help: "Total cycles where connectivity was restored",
	})

	r.DeviceState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wifiwatch_device_state",
		Help: "NetworkManager device state code (10/20/30/100)",
	})

	r.RadioEnabled = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wifiwatch_radio_enabled",
		Help: "Whether the WiFi radio is administratively enabled",
	})

	r.LastCycleUnix = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wifiwatch_last_cycle_timestamp_seconds",
		Help: "Unix time of the last completed cycle",
	})

	r.LastProbeOK = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wifiwatch_last_probe_success",
		Help: "Whether the last reachability probe succeeded",
	})

	r.ProbeDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wifiwatch_probe_duration_milliseconds",
		Help:    "Reachability probe duration",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	return r
}

// Handler returns the HTTP handler for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve starts a metrics listener on addr. Blocks; run in a goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	return http.ListenAndServe(addr, mux)
}
