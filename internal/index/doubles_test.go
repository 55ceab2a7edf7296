package index

import (
	"context"
	"errors"
	"time"

	"redemption-index/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

func testTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("test")
}

// quoteStub serves canned quotes per symbol; missing symbols fail like a
// dead upstream.
type quoteStub struct {
	quotes map[string]*domain.Quote
	calls  int
}

func (s *quoteStub) FetchQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	s.calls++
	quote, ok := s.quotes[symbol]
	if !ok {
		return nil, errors.New("upstream unavailable")
	}
	return quote, nil
}

type newsStub struct {
	text  string
	err   error
	calls int
}

func (s *newsStub) Search(ctx context.Context, query string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

type viewsStub struct {
	views int
	err   error
	calls int
}

func (s *viewsStub) DailyViews(ctx context.Context, article string, day time.Time) (int, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.views, nil
}

type calendarStub struct {
	events []domain.CalendarEvent
	err    error
	calls  int
}

func (s *calendarStub) TodayEvents(ctx context.Context, day time.Time) ([]domain.CalendarEvent, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.events, nil
}

// flatQuote builds a quote whose closes window averages to avg and whose
// current price deviates from it by deviationPct.
func flatQuote(symbol string, avg, deviationPct float64) *domain.Quote {
	return &domain.Quote{
		Symbol:  symbol,
		Current: avg * (1 + deviationPct/100),
		Closes:  []float64{avg, avg, avg},
	}
}
