package fantasy

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// PriceProvider fetches daily adjusted closes for one ticker. Windows are
// half open: a provider asked for [from, to) never returns a close dated
// on or after 'to'.
type PriceProvider interface {
	// Name identifies the provider in logs and errors.
	Name() string
	// Daily returns the closes for each trading day in [from, to). An
	// empty history is not an error, some windows hold no trading days.
	Daily(ctx context.Context, ticker string, from, to Date) (*History[float64], error)
}

// Chain tries each provider in turn and returns the first non-empty
// answer. Failures only surface when no provider served the ticker.
type Chain []PriceProvider

// Name lists the chained providers.
func (c Chain) Name() string {
	names := make([]string, 0, len(c))
	for _, p := range c {
		names = append(names, p.Name())
	}
	return strings.Join(names, ",")
}

// Daily implements PriceProvider over the whole chain.
func (c Chain) Daily(ctx context.Context, ticker string, from, to Date) (*History[float64], error) {
	var errs error
	for _, p := range c {
		prices, err := p.Daily(ctx, ticker, from, to)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		if prices.Len() > 0 {
			return prices, nil
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("no provider served %q: %w", ticker, errs)
	}
	return &History[float64]{}, nil
}

// Offline returns a provider that refuses to fetch. Cache-only runs use it
// so that an uncovered window fails with a clear message instead of a
// network call.
func Offline() PriceProvider { return offline{} }

type offline struct{}

func (offline) Name() string { return "offline" }

func (offline) Daily(_ context.Context, ticker string, from, to Date) (*History[float64], error) {
	return nil, fmt.Errorf("offline, %s is not cached between %s and %s", ticker, from, to.Add(-1))
}
