package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Bar is one daily candle, reduced to what the replays need. Day is the
// bar's opening timestamp in the exchange's timezone.
type Bar struct {
	Day      time.Time
	AdjClose float64
}

// Daily fetches the daily adjusted closes for a symbol between the two
// instants. The window is half open: bars at or after 'to' are excluded.
// Splits and dividends are folded into the adjusted close.
func (c *Client) Daily(ctx context.Context, symbol string, from, to time.Time) ([]Bar, error) {
	query := url.Values{}
	query.Set("period1", strconv.FormatInt(from.Unix(), 10))
	query.Set("period2", strconv.FormatInt(to.Unix(), 10))
	query.Set("interval", "1d")
	query.Set("events", "div,split")

	var resp chartResponse
	if err := c.get(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), query, &resp); err != nil {
		return nil, fmt.Errorf("get chart %s: %w", symbol, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart %s: %s: %s", symbol, resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("chart %s: empty result", symbol)
	}

	result := resp.Chart.Result[0]
	closes := result.adjcloses()
	bars := make([]Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		day := time.Unix(ts, 0)
		if !day.Before(to) {
			continue
		}
		bars = append(bars, Bar{Day: day, AdjClose: *closes[i]})
	}

	c.logger.Debug().
		Str("symbol", symbol).
		Int("bars", len(bars)).
		Msg("fetched daily closes")
	return bars, nil
}
