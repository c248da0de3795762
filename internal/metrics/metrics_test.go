package metrics

import (
	"math"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Record(t *testing.T) {
	m := New()

	m.ScanStarted(900)
	m.BatchGenerated([]string{"normal", "suspicious", "highly suspicious"}, 70.5, 92)
	m.SuspiciousAlert()
	m.ScanStopped()
	m.AlertTested("sent")
	m.AlertTested("email missing")
	m.ReportDownloaded()

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"scans started", testutil.ToFloat64(m.scansStarted), 1},
		{"scans stopped", testutil.ToFloat64(m.scansStopped), 1},
		{"batches", testutil.ToFloat64(m.batchesGenerated), 1},
		{"suspicious signals", testutil.ToFloat64(m.signalsByStatus.WithLabelValues("suspicious")), 1},
		{"alerts", testutil.ToFloat64(m.suspiciousAlerts), 1},
		{"alert tests sent", testutil.ToFloat64(m.alertTests.WithLabelValues("sent")), 1},
		{"reports", testutil.ToFloat64(m.reportsDownloaded), 1},
		{"mean", testutil.ToFloat64(m.meanSuspicion), 70.5},
		{"peak", testutil.ToFloat64(m.peakSuspicion), 92},
		{"scanning", testutil.ToFloat64(m.scanning), 0},
		{"frequency", testutil.ToFloat64(m.baseFrequency), 900},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestMetrics_NaNMeanKeepsPrevious(t *testing.T) {
	m := New()
	m.BatchGenerated(nil, 60, 60)
	m.BatchGenerated(nil, math.NaN(), 0)

	if got := testutil.ToFloat64(m.meanSuspicion); got != 60 {
		t.Errorf("mean = %v, want 60", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ScanStarted(900)
	m.ScanStopped()
	m.BatchGenerated([]string{"normal"}, 1, 1)
	m.SuspiciousAlert()
	m.AlertTested("sent")
	m.ReportDownloaded()
	if m.Registry() != nil {
		t.Error("nil metrics should have no registry")
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ScanStarted(1200)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "minerradar_scans_started_total 1") {
		t.Errorf("expected scans counter in exposition, got:\n%s", body)
	}
	if !strings.Contains(body, "minerradar_base_frequency_mhz 1200") {
		t.Errorf("expected frequency gauge in exposition")
	}
}
