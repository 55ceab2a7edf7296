package provider

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"redemption-index/internal/domain"
	"redemption-index/internal/fetch"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider fetches chart quotes (current price + a window of daily
// closes) from the Yahoo Finance v8 chart endpoint.
type YahooProvider struct {
	fetcher *fetch.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewYahooProvider creates a provider rate limited to 10 requests per
// minute (one token every 6 seconds) against the shared chart host.
func NewYahooProvider(tracer trace.Tracer, fetcher *fetch.Client) *YahooProvider {
	return &YahooProvider{
		fetcher: fetcher,
		baseURL: yahooBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(10, 6*time.Second),
	}
}

// FetchQuote returns the current market price and the 1-month daily close
// window for one symbol. Null closes are filtered out.
func (p *YahooProvider) FetchQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	ctx, span := p.tracer.Start(ctx, "yahoo.fetch-quote",
		trace.WithAttributes(attribute.String("symbol", symbol)))
	defer span.End()

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	chartURL := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1mo", p.baseURL, url.PathEscape(symbol))

	var payload struct {
		Chart struct {
			Result []struct {
				Meta struct {
					RegularMarketPrice float64 `json:"regularMarketPrice"`
					PreviousClose      float64 `json:"previousClose"`
				} `json:"meta"`
				Indicators struct {
					Quote []struct {
						Close []*float64 `json:"close"`
					} `json:"quote"`
				} `json:"indicators"`
			} `json:"result"`
		} `json:"chart"`
	}
	if err := p.fetcher.GetJSON(ctx, "yahoo:"+symbol, chartURL, &payload); err != nil {
		return nil, err
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo chart for %s has no result", symbol)
	}

	result := payload.Chart.Result[0]
	quote := &domain.Quote{
		Symbol:  symbol,
		Current: result.Meta.RegularMarketPrice,
	}
	if len(result.Indicators.Quote) > 0 {
		for _, close := range result.Indicators.Quote[0].Close {
			if close == nil {
				continue
			}
			quote.Closes = append(quote.Closes, *close)
		}
	}
	return quote, nil
}
