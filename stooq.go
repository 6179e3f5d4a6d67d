package fantasy

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StooqProvider serves daily closes from stooq.com's CSV endpoint. It is
// the fallback when the chart API refuses a ticker: no key, no auth, but
// closes are split adjusted only, dividends are not folded in.
type StooqProvider struct {
	baseURL string
	client  *http.Client
}

// NewStooqProvider returns a provider against the public stooq endpoint.
func NewStooqProvider() *StooqProvider {
	return &StooqProvider{
		baseURL: "https://stooq.com",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name implements PriceProvider.
func (p *StooqProvider) Name() string { return "stooq" }

// Daily implements PriceProvider. Stooq's d2 parameter is inclusive, so
// the half open window is narrowed by one day before asking.
func (p *StooqProvider) Daily(ctx context.Context, ticker string, from, to Date) (*History[float64], error) {
	addr := fmt.Sprintf("%s/q/d/l/?s=%s&d1=%s&d2=%s&i=d",
		p.baseURL, url.QueryEscape(stooqSymbol(ticker)),
		from.Format("20060102"), to.Add(-1).Format("20060102"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %q: %s", ticker, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response for %q: %w", ticker, err)
	}

	// Unknown symbols come back as a plain "No data" body, not an error
	// status.
	text := strings.TrimSpace(string(body))
	if text == "" || strings.HasPrefix(text, "No data") {
		return &History[float64]{}, nil
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv for %q: %w", ticker, err)
	}

	prices := &History[float64]{}
	for i, rec := range records {
		if i == 0 || len(rec) < 5 {
			continue // header, or a truncated row
		}
		day, err := time.Parse(DateFormat, rec[0])
		if err != nil {
			return nil, fmt.Errorf("parse csv for %q line %d: bad date %q", ticker, i+1, rec[0])
		}
		close, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, fmt.Errorf("parse csv for %q line %d: bad close %q", ticker, i+1, rec[4])
		}
		prices.Append(NewDate(day.Date()), close)
	}
	return prices, nil
}

// stooqSymbol maps a chart API ticker to stooq's convention: lowercase,
// with a ".us" suffix for plain US listings.
func stooqSymbol(ticker string) string {
	s := strings.ToLower(ticker)
	if !strings.Contains(s, ".") {
		s += ".us"
	}
	return s
}
