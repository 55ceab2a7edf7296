package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMetricKeysCoverEnvelope(t *testing.T) {
	if len(MetricKeys) != 4 {
		t.Fatalf("expected 4 metric keys, got %d", len(MetricKeys))
	}
	seen := make(map[MetricKey]struct{}, len(MetricKeys))
	for _, k := range MetricKeys {
		if _, dup := seen[k]; dup {
			t.Fatalf("duplicate metric key %q", k)
		}
		seen[k] = struct{}{}
	}
}

func TestIndexReportJSONShape(t *testing.T) {
	report := IndexReport{
		TotalScore: 42,
		RawScore:   42,
		MaxScore:   100,
		Timestamp:  time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		NextUpdate: time.Date(2026, 3, 2, 12, 10, 0, 0, time.UTC),
		Metrics: map[MetricKey]SubScoreResult{
			MetricPoverty: {Score: 11, Summary: "S&P -4.2%", Details: map[string]any{}},
		},
	}

	raw, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	for _, field := range []string{"totalScore", "rawScore", "maxScore", "timestamp", "nextUpdate", "metrics"} {
		if _, ok := decoded[field]; !ok {
			t.Fatalf("envelope missing field %q: %s", field, raw)
		}
	}
	if _, ok := decoded["status"]; ok {
		t.Fatalf("empty status should be omitted: %s", raw)
	}
}
