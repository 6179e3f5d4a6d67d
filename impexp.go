package fantasy

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jgrizzled/fantasy-portfolio-analysis/pricedb"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and be easy to merge into a
// cache, so a league can share one price history through git instead of
// hammering the providers from every player's machine.

// ImportPrices merges closes from 'r' in the import/export format into the
// cache, and returns how many closes were read.
//
// The format is a JSONL file, one line per ticker: a JSON object whose
// property 'ticker' names the symbol and whose property 'history' is an
// object mapping days to closes.
//
// Each imported ticker's day span is recorded as fetched, so a later
// update does not refetch what the import already brought.
func ImportPrices(ctx context.Context, r io.Reader, db *pricedb.DB) (int, error) {
	type jticker struct {
		Ticker  string             `json:"ticker"`
		History map[string]float64 `json:"history"`
	}

	count := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jt jticker
		if err := json.Unmarshal(line, &jt); err != nil {
			return count, fmt.Errorf("cannot parse line for price import format: %q: %w", string(line), err)
		}
		if err := ValidateTicker(jt.Ticker); err != nil {
			return count, fmt.Errorf("cannot import prices: %w", err)
		}

		var first, last Date
		rows := make([]pricedb.Price, 0, len(jt.History))
		for day, close := range jt.History {
			d, err := ParseDate(day)
			if err != nil {
				return count, fmt.Errorf("cannot import prices for %q: %w", jt.Ticker, err)
			}
			if first.IsZero() || d.Before(first) {
				first = d
			}
			if d.After(last) {
				last = d
			}
			rows = append(rows, pricedb.Price{Date: d.Unix(), Close: close})
		}
		if len(rows) == 0 {
			continue
		}
		if err := db.Store(ctx, jt.Ticker, first.Unix(), last.Add(1).Unix(), rows); err != nil {
			return count, err
		}
		count += len(rows)
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("error reading import stream: %w", err)
	}
	return count, nil
}

// ExportPrices writes every cached close to 'w' in the import/export
// format, tickers in alphabetical order.
func ExportPrices(ctx context.Context, w io.Writer, db *pricedb.DB) error {
	type jticker struct {
		Ticker  string             `json:"ticker"`
		History map[string]float64 `json:"history"`
	}

	tickers, err := db.Tickers(ctx)
	if err != nil {
		return err
	}
	for _, ticker := range tickers {
		prices, err := db.All(ctx, ticker)
		if err != nil {
			return err
		}

		jt := jticker{Ticker: ticker, History: make(map[string]float64, len(prices))}
		for _, p := range prices {
			jt.History[DateOfUnix(p.Date).String()] = p.Close
		}

		data, err := json.Marshal(jt)
		if err != nil {
			return fmt.Errorf("cannot marshal prices for %q: %w", ticker, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write price export format: %w", err)
		}
	}
	return nil
}
