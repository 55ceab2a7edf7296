package index

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"redemption-index/internal/domain"
)

func TestDiscourseCountsProximityMatchesEitherOrder(t *testing.T) {
	news := &newsStub{text: "חרדים תחת ביקורת חריפה\nמחאה נגד חרדים בירושלים\nכתבה על מזג האוויר\n"}

	e := NewDiscourseEvaluator(testTracer(), news, DefaultConfig().Discourse)
	result := e.Evaluate(context.Background(), time.Now())

	if result.Score != 2 {
		t.Fatalf("expected 2 proximity matches, got %d (%+v)", result.Score, result.Details)
	}
	if result.Summary != "relatively quiet" {
		t.Fatalf("unexpected label for 2 articles: %q", result.Summary)
	}
}

func TestDiscourseDoesNotMatchAcrossLines(t *testing.T) {
	// Keyword and community on different fragments: no co-occurrence.
	news := &newsStub{text: "חרדים בכותרת אחת\nביקורת בכותרת אחרת"}

	e := NewDiscourseEvaluator(testTracer(), news, DefaultConfig().Discourse)
	result := e.Evaluate(context.Background(), time.Now())

	if result.Score != 0 {
		t.Fatalf("expected no cross-line matches, got %d", result.Score)
	}
}

func TestDiscourseDirectCountCapped(t *testing.T) {
	line := "חרדים ביקורת\n"
	news := &newsStub{text: strings.Repeat(line, 40)}

	e := NewDiscourseEvaluator(testTracer(), news, DefaultConfig().Discourse)
	result := e.Evaluate(context.Background(), time.Now())

	if result.Score != domain.MaxSubScore {
		t.Fatalf("expected direct count capped at %d, got %d", domain.MaxSubScore, result.Score)
	}
	if result.Summary != "intense criticism" {
		t.Fatalf("unexpected label at cap: %q", result.Summary)
	}
	if result.Details["articles"] != 40 {
		t.Fatalf("details should keep the uncapped count, got %v", result.Details["articles"])
	}
}

func TestDiscourseLabelThresholds(t *testing.T) {
	cases := []struct {
		articles int
		label    string
	}{
		{18, "intense criticism"},
		{12, "sharp criticism"},
		{7, "significant criticism"},
		{3, "mild criticism"},
		{0, "relatively quiet"},
	}
	for _, tc := range cases {
		news := &newsStub{text: strings.Repeat("חרדים מחאה\n", tc.articles)}
		e := NewDiscourseEvaluator(testTracer(), news, DefaultConfig().Discourse)
		result := e.Evaluate(context.Background(), time.Now())
		if result.Summary != tc.label {
			t.Fatalf("articles=%d: expected %q, got %q", tc.articles, tc.label, result.Summary)
		}
	}
}

func TestDiscourseFetchFailureFallback(t *testing.T) {
	news := &newsStub{err: errors.New("feed down")}

	e := NewDiscourseEvaluator(testTracer(), news, DefaultConfig().Discourse)
	result := e.Evaluate(context.Background(), time.Now())

	if result.Score != 0 || result.Summary != "no data" {
		t.Fatalf("expected zero-score fallback, got %d %q", result.Score, result.Summary)
	}
}
