package provider

import (
	"context"
	"net/url"
	"time"

	"redemption-index/internal/domain"
	"redemption-index/internal/fetch"

	"go.opentelemetry.io/otel/trace"
)

const hebcalBaseURL = "https://www.hebcal.com"

// Jerusalem geoname, used for candle-lighting times.
const hebcalGeonameID = "281184"

// HebcalProvider fetches holiday and candle-lighting entries from the
// Hebcal JSON API for a single day.
type HebcalProvider struct {
	fetcher *fetch.Client
	baseURL string
	tracer  trace.Tracer
}

func NewHebcalProvider(tracer trace.Tracer, fetcher *fetch.Client) *HebcalProvider {
	return &HebcalProvider{
		fetcher: fetcher,
		baseURL: hebcalBaseURL,
		tracer:  tracer,
	}
}

// TodayEvents returns the calendar entries dated on day.
func (p *HebcalProvider) TodayEvents(ctx context.Context, day time.Time) ([]domain.CalendarEvent, error) {
	ctx, span := p.tracer.Start(ctx, "hebcal.today-events")
	defer span.End()

	dateKey := day.Format("2006-01-02")
	params := url.Values{}
	params.Set("v", "1")
	params.Set("cfg", "json")
	params.Set("maj", "on")
	params.Set("min", "on")
	params.Set("c", "on")
	params.Set("geo", "geoname")
	params.Set("geonameid", hebcalGeonameID)
	params.Set("start", dateKey)
	params.Set("end", dateKey)

	calURL := p.baseURL + "/hebcal?" + params.Encode()

	var payload struct {
		Items []domain.CalendarEvent `json:"items"`
	}
	if err := p.fetcher.GetJSON(ctx, "hebcal", calURL, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}
