package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the dashboard's collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	scansStarted      prometheus.Counter
	scansStopped      prometheus.Counter
	batchesGenerated  prometheus.Counter
	signalsByStatus   *prometheus.CounterVec // label: status
	suspiciousAlerts  prometheus.Counter
	alertTests        *prometheus.CounterVec // label: result
	reportsDownloaded prometheus.Counter
	meanSuspicion     prometheus.Gauge
	peakSuspicion     prometheus.Gauge
	scanning          prometheus.Gauge
	baseFrequency     prometheus.Gauge
}

// New creates the collectors on a private registry, so several instances
// can coexist in tests.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		scansStarted: f.NewCounter(prometheus.CounterOpts{
			Name: "minerradar_scans_started_total",
			Help: "Scans started",
		}),
		scansStopped: f.NewCounter(prometheus.CounterOpts{
			Name: "minerradar_scans_stopped_total",
			Help: "Scans stopped",
		}),
		batchesGenerated: f.NewCounter(prometheus.CounterOpts{
			Name: "minerradar_batches_generated_total",
			Help: "Detection batches generated",
		}),
		signalsByStatus: f.NewCounterVec(prometheus.CounterOpts{
			Name: "minerradar_signals_total",
			Help: "Detected signals by report status",
		}, []string{"status"}),
		suspiciousAlerts: f.NewCounter(prometheus.CounterOpts{
			Name: "minerradar_suspicious_alerts_total",
			Help: "Suspicious signal notifications raised",
		}),
		alertTests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "minerradar_alert_tests_total",
			Help: "Test alerts by outcome",
		}, []string{"result"}),
		reportsDownloaded: f.NewCounter(prometheus.CounterOpts{
			Name: "minerradar_reports_downloaded_total",
			Help: "Reports downloaded",
		}),
		meanSuspicion: f.NewGauge(prometheus.GaugeOpts{
			Name: "minerradar_last_batch_mean_suspicion",
			Help: "Mean suspicion level of the latest batch",
		}),
		peakSuspicion: f.NewGauge(prometheus.GaugeOpts{
			Name: "minerradar_last_batch_peak_suspicion",
			Help: "Highest suspicion level of the latest batch",
		}),
		scanning: f.NewGauge(prometheus.GaugeOpts{
			Name: "minerradar_scanning",
			Help: "1 while a scan is active",
		}),
		baseFrequency: f.NewGauge(prometheus.GaugeOpts{
			Name: "minerradar_base_frequency_mhz",
			Help: "Base frequency of the latest scan",
		}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ScanStarted(freq float64) {
	if m == nil {
		return
	}
	m.scansStarted.Inc()
	m.scanning.Set(1)
	m.baseFrequency.Set(freq)
}

func (m *Metrics) ScanStopped() {
	if m == nil {
		return
	}
	m.scansStopped.Inc()
	m.scanning.Set(0)
}

// BatchGenerated records a new batch. statuses holds the report status of
// each signal; mean is skipped when it is NaN.
func (m *Metrics) BatchGenerated(statuses []string, mean, peak float64) {
	if m == nil {
		return
	}
	m.batchesGenerated.Inc()
	for _, s := range statuses {
		m.signalsByStatus.WithLabelValues(s).Inc()
	}
	if !math.IsNaN(mean) {
		m.meanSuspicion.Set(mean)
	}
	m.peakSuspicion.Set(peak)
}

func (m *Metrics) SuspiciousAlert() {
	if m == nil {
		return
	}
	m.suspiciousAlerts.Inc()
}

// AlertTested records a test alert; result is "sent" or the guard that
// stopped it.
func (m *Metrics) AlertTested(result string) {
	if m == nil {
		return
	}
	m.alertTests.WithLabelValues(result).Inc()
}

func (m *Metrics) ReportDownloaded() {
	if m == nil {
		return
	}
	m.reportsDownloaded.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown", "error", err)
		}
	}()

	logger.Info("serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving metrics on %s: %w", addr, err)
	}
	return nil
}
