package fantasy

import (
	"context"
	"time"

	"github.com/jgrizzled/fantasy-portfolio-analysis/yahoo"
)

// YahooProvider serves daily closes from the Yahoo Finance chart API.
type YahooProvider struct {
	client *yahoo.Client
}

// NewYahooProvider wraps a chart API client as a price provider.
func NewYahooProvider(client *yahoo.Client) *YahooProvider {
	return &YahooProvider{client: client}
}

// Name implements PriceProvider.
func (p *YahooProvider) Name() string { return "yahoo" }

// Daily implements PriceProvider. The window is sent as New York midnight
// instants, and each returned bar is mapped back to its New York trading
// day, so a late session never bleeds into the next calendar day.
func (p *YahooProvider) Daily(ctx context.Context, ticker string, from, to Date) (*History[float64], error) {
	bars, err := p.client.Daily(ctx, ticker, time.Unix(from.Unix(), 0), time.Unix(to.Unix(), 0))
	if err != nil {
		return nil, err
	}
	prices := &History[float64]{}
	for _, bar := range bars {
		prices.Append(NewDate(bar.Day.In(marketTZ).Date()), bar.AdjClose)
	}
	return prices, nil
}

// Latest returns the most recent traded price for a ticker.
func (p *YahooProvider) Latest(ctx context.Context, ticker string) (float64, error) {
	return p.client.Latest(ctx, ticker)
}
