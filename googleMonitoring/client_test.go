package googlemonitoring

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newLocalClient(t *testing.T) *MonitoringClient {
	t.Helper()
	client, err := NewMonitoringClient(context.Background(), "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRecordCounterKeepsLabelOrder(t *testing.T) {
	client := newLocalClient(t)

	for i := 0; i < 20; i++ {
		client.RecordCounter("check_requests", map[string]string{"provider": "gemini", "status": "ok"}, 1)
	}
	client.RecordCounter("check_requests", map[string]string{"status": "error", "provider": "gemini"}, 1)

	mfs, err := client.Registry().Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if len(mfs) != 1 {
		t.Fatalf("expected one metric family, got %d", len(mfs))
	}

	totals := map[string]float64{}
	for _, m := range mfs[0].Metric {
		labels := map[string]string{}
		for _, l := range m.Label {
			labels[l.GetName()] = l.GetValue()
		}
		if labels["provider"] != "gemini" {
			t.Errorf("labels were mixed up: %v", labels)
		}
		totals[labels["status"]] = m.Counter.GetValue()
	}
	if totals["ok"] != 20 || totals["error"] != 1 {
		t.Errorf("unexpected totals %v", totals)
	}
}

func TestRecordTimer(t *testing.T) {
	client := newLocalClient(t)

	client.RecordTimer("check_latency_seconds", map[string]string{"provider": "mock"}, 250*time.Millisecond)
	client.RecordTimer("check_latency_seconds", map[string]string{"provider": "mock"}, 750*time.Millisecond)

	mfs, err := client.Registry().Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	histogram := mfs[0].Metric[0].Histogram
	if histogram.GetSampleCount() != 2 || histogram.GetSampleSum() != 1 {
		t.Errorf("unexpected histogram count=%d sum=%f", histogram.GetSampleCount(), histogram.GetSampleSum())
	}
}

func TestPushMetricsDisabledWithoutProject(t *testing.T) {
	client := newLocalClient(t)

	if client.PushEnabled() {
		t.Fatal("expected push to be disabled")
	}
	if err := client.PushMetrics(context.Background()); !errors.Is(err, errPushDisabled) {
		t.Errorf("expected errPushDisabled, got %v", err)
	}
}
