package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// latestPath extracts the live price from the chart envelope without
// binding to the whole schema.
const latestPath = "$.chart.result[0].meta.regularMarketPrice"

// Latest fetches the most recent traded price for a symbol. During market
// hours this is the live price, otherwise the last close.
func (c *Client) Latest(ctx context.Context, symbol string) (float64, error) {
	query := url.Values{}
	query.Set("interval", "1d")
	query.Set("range", "1d")

	body, err := c.doWithRetry(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), query)
	if err != nil {
		return 0, fmt.Errorf("get quote %s: %w", symbol, err)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return 0, fmt.Errorf("quote %s: unmarshal response: %w", symbol, err)
	}
	v, err := jsonpath.Get(latestPath, doc)
	if err != nil {
		return 0, fmt.Errorf("quote %s: no market price in response: %w", symbol, err)
	}
	price, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("quote %s: market price is %T, want number", symbol, v)
	}
	return price, nil
}
