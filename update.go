package fantasy

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jgrizzled/fantasy-portfolio-analysis/logging"
	"github.com/jgrizzled/fantasy-portfolio-analysis/pricedb"
)

// This file contains functions to bring the price cache up to date and
// load it into a Market.

// fetchConcurrency caps parallel provider requests.
const fetchConcurrency = 4

// UpdatePrices makes sure the cache covers every ticker the league names
// over its horizon, fetching what is missing, and returns the loaded
// market.
func UpdatePrices(ctx context.Context, db *pricedb.DB, provider PriceProvider, l *League) (*Market, error) {
	horizon, err := l.Horizon()
	if err != nil {
		return nil, err
	}
	return FetchPrices(ctx, db, provider, l.Currency(), l.Tickers(), horizon)
}

// FetchPrices covers [r.From-1, r.To) in the cache for each ticker and
// loads the closes into a market.
//
// The leading extra day seeds the forward fill when From is not a trading
// day. The window stops before today, closes run through yesterday at
// most since today's is not final until the session ends. Tickers are
// fetched concurrently; the first failure cancels the rest, already
// stored closes stay cached.
func FetchPrices(ctx context.Context, db *pricedb.DB, provider PriceProvider, currency string, tickers []string, r Range) (*Market, error) {
	log := logging.WithComponent("update")

	end := r.To
	if today := Today(); end.After(today) {
		end = today
	}
	start := r.From.Add(-1)
	if !start.Before(end) {
		return nil, fmt.Errorf("nothing to fetch between %s and %s", r.From, end)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for _, ticker := range tickers {
		g.Go(func() error {
			return fetchTicker(ctx, db, provider, log, ticker, start, end)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	market := NewMarket(currency)
	for _, ticker := range tickers {
		prices, err := db.Prices(ctx, ticker, start.Unix(), end.Unix())
		if err != nil {
			return nil, err
		}
		if len(prices) == 0 {
			return nil, fmt.Errorf("no prices for %q between %s and %s", ticker, start, end)
		}
		for _, p := range prices {
			market.Add(ticker, DateOfUnix(p.Date), p.Close)
		}
	}
	return market, nil
}

// fetchTicker fills the cache for one ticker over [start, end) unless a
// previous fetch already covers it.
func fetchTicker(ctx context.Context, db *pricedb.DB, provider PriceProvider, log zerolog.Logger, ticker string, start, end Date) error {
	covered, err := db.Covered(ctx, ticker, start.Unix(), end.Unix())
	if err != nil {
		return err
	}
	if covered {
		log.Debug().Str("ticker", ticker).Msg("cache hit")
		return nil
	}

	prices, err := provider.Daily(ctx, ticker, start, end)
	if err != nil {
		return fmt.Errorf("fetch %q: %w", ticker, err)
	}

	rows := make([]pricedb.Price, 0, prices.Len())
	for day, close := range prices.Values() {
		rows = append(rows, pricedb.Price{Date: day.Unix(), Close: close})
	}
	if err := db.Store(ctx, ticker, start.Unix(), end.Unix(), rows); err != nil {
		return err
	}
	log.Info().
		Str("ticker", ticker).
		Str("provider", provider.Name()).
		Int("days", len(rows)).
		Msg("fetched closes")
	return nil
}
