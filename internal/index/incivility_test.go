package index

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIncivilityTopTier(t *testing.T) {
	// 45 occurrences against a baseline of 20 is 225%: top tier, 20 points.
	news := &newsStub{text: strings.Repeat("אלימות ", 45)}

	e := NewIncivilityEvaluator(testTracer(), news, DefaultConfig().Incivility)
	result := e.Evaluate(context.Background(), time.Now())

	if result.Score != 20 {
		t.Fatalf("expected top tier score 20 at 225%%, got %d", result.Score)
	}
	if result.Summary != "extreme level" {
		t.Fatalf("unexpected status: %q", result.Summary)
	}
	if result.Details["count"] != 45 {
		t.Fatalf("expected count 45 in details, got %v", result.Details["count"])
	}
}

func TestIncivilityBoundaryIsExclusive(t *testing.T) {
	// Exactly 150% must fall to the 120% tier, not the 150% one.
	news := &newsStub{text: strings.Repeat("שוד ", 30)}

	e := NewIncivilityEvaluator(testTracer(), news, DefaultConfig().Incivility)
	result := e.Evaluate(context.Background(), time.Now())

	if result.Score != 12 {
		t.Fatalf("expected 12 points at exactly 150%%, got %d", result.Score)
	}
}

func TestIncivilityZeroMatches(t *testing.T) {
	news := &newsStub{text: "nothing relevant in this feed"}

	e := NewIncivilityEvaluator(testTracer(), news, DefaultConfig().Incivility)
	result := e.Evaluate(context.Background(), time.Now())

	if result.Score != 0 {
		t.Fatalf("expected score 0 with no matches, got %d", result.Score)
	}
	if result.Summary != "normal level" {
		t.Fatalf("expected normal label, got %q", result.Summary)
	}
}

func TestIncivilityFetchFailureFallback(t *testing.T) {
	news := &newsStub{err: errors.New("feed unreachable")}

	e := NewIncivilityEvaluator(testTracer(), news, DefaultConfig().Incivility)
	result := e.Evaluate(context.Background(), time.Now())

	if result.Score != 0 {
		t.Fatalf("expected fallback score 0, got %d", result.Score)
	}
	if result.Summary != "no data" {
		t.Fatalf("expected error label, got %q", result.Summary)
	}
	if result.Quote == "" {
		t.Fatal("fallback must still carry the fixed quote")
	}
}
