package index

import (
	"context"
	"log"
	"strings"
	"time"

	"redemption-index/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// CalendarFetcher supplies holiday-calendar entries for one day.
type CalendarFetcher interface {
	TodayEvents(ctx context.Context, day time.Time) ([]domain.CalendarEvent, error)
}

// BlackoutCheck decides whether scoring is suppressed for the given
// instant: the weekly rest day, the eve of it past the cutoff hour, or a
// calendar holiday. The calendar lookup fails open; an unreachable feed
// never blocks the index from computing.
type BlackoutCheck struct {
	tracer   trace.Tracer
	calendar CalendarFetcher
	cfg      BlackoutConfig
}

func NewBlackoutCheck(tracer trace.Tracer, calendar CalendarFetcher, cfg BlackoutConfig) *BlackoutCheck {
	return &BlackoutCheck{tracer: tracer, calendar: calendar, cfg: cfg}
}

// Check runs against an injected now so tests can pin weekday and hour.
func (b *BlackoutCheck) Check(ctx context.Context, now time.Time) domain.BlackoutState {
	ctx, span := b.tracer.Start(ctx, "index.blackout-check")
	defer span.End()

	if now.Weekday() == b.cfg.RestDay {
		return domain.BlackoutState{Suppressed: true, Reason: b.cfg.RestReason}
	}
	if now.Weekday() == b.cfg.EveDay && now.Hour() >= b.cfg.CutoffHour {
		return domain.BlackoutState{Suppressed: true, Reason: b.cfg.RestReason}
	}

	if b.calendar == nil {
		return domain.BlackoutState{}
	}

	events, err := b.calendar.TodayEvents(ctx, now)
	if err != nil {
		log.Printf("blackout: calendar lookup failed, staying normal: %v", err)
		return domain.BlackoutState{}
	}

	today := now.Format("2006-01-02")
	for _, event := range events {
		if !strings.HasPrefix(event.Date, today) {
			continue
		}
		switch {
		case event.Category == "holiday" && event.YomTov:
			return domain.BlackoutState{Suppressed: true, Reason: "Chag Sameach: " + event.Title}
		case event.Category == "candles" && now.Hour() >= b.cfg.CutoffHour:
			return domain.BlackoutState{Suppressed: true, Reason: "Erev Chag: " + event.Title}
		}
	}

	return domain.BlackoutState{}
}
