package pricedb

import (
	"context"
	"fmt"
)

// Price is one cached close. Date is Unix seconds of the trading day's
// midnight, New York time.
type Price struct {
	Date  int64
	Close float64
}

// Covered reports whether [start, end) has already been fetched for a
// ticker. A recorded fetch alone is not enough: a range that covered no
// actual closes is treated as a miss, so a provider outage that returned
// nothing gets retried instead of cached forever.
func (d *DB) Covered(ctx context.Context, ticker string, start, end int64) (bool, error) {
	var fetched int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM fetches WHERE ticker = ? AND "start" <= ? AND "end" >= ?`,
		ticker, start, end).Scan(&fetched)
	if err != nil {
		return false, fmt.Errorf("pricedb: covered query failed: %w", err)
	}
	if fetched == 0 {
		return false, nil
	}

	var rows int
	err = d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM prices WHERE ticker = ? AND date >= ? AND date < ?`,
		ticker, start, end).Scan(&rows)
	if err != nil {
		return false, fmt.Errorf("pricedb: covered query failed: %w", err)
	}
	return rows > 0, nil
}

// Prices returns the cached closes for a ticker over [start, end), in
// date order.
func (d *DB) Prices(ctx context.Context, ticker string, start, end int64) ([]Price, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT date, close FROM prices WHERE ticker = ? AND date >= ? AND date < ? ORDER BY date`,
		ticker, start, end)
	if err != nil {
		return nil, fmt.Errorf("pricedb: prices query failed: %w", err)
	}
	defer rows.Close()

	var prices []Price
	for rows.Next() {
		var p Price
		if err := rows.Scan(&p.Date, &p.Close); err != nil {
			return nil, fmt.Errorf("pricedb: prices scan failed: %w", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pricedb: prices query failed: %w", err)
	}
	return prices, nil
}

// Store caches a fetch's closes and, when it produced any, records the
// range as fetched. Re-storing a day a prior fetch already wrote keeps
// the first close, adjusted series rarely agree to the last bit.
func (d *DB) Store(ctx context.Context, ticker string, start, end int64, prices []Price) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("pricedb: store failed: %w", err)
	}
	defer tx.Rollback()

	for _, p := range prices {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO prices (ticker, date, close) VALUES (?, ?, ?)`,
			ticker, p.Date, p.Close); err != nil {
			return fmt.Errorf("pricedb: store price failed: %w", err)
		}
	}

	if len(prices) > 0 {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO fetches (ticker, "start", "end") VALUES (?, ?, ?)`,
			ticker, start, end); err != nil {
			return fmt.Errorf("pricedb: store fetch failed: %w", err)
		}
	}

	return tx.Commit()
}

// Tickers returns every ticker with at least one cached close, sorted.
func (d *DB) Tickers(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT DISTINCT ticker FROM prices ORDER BY ticker`)
	if err != nil {
		return nil, fmt.Errorf("pricedb: tickers query failed: %w", err)
	}
	defer rows.Close()

	var tickers []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("pricedb: tickers scan failed: %w", err)
		}
		tickers = append(tickers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pricedb: tickers query failed: %w", err)
	}
	return tickers, nil
}

// All returns every cached close for a ticker, in date order.
func (d *DB) All(ctx context.Context, ticker string) ([]Price, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT date, close FROM prices WHERE ticker = ? ORDER BY date`, ticker)
	if err != nil {
		return nil, fmt.Errorf("pricedb: prices query failed: %w", err)
	}
	defer rows.Close()

	var prices []Price
	for rows.Next() {
		var p Price
		if err := rows.Scan(&p.Date, &p.Close); err != nil {
			return nil, fmt.Errorf("pricedb: prices scan failed: %w", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pricedb: prices query failed: %w", err)
	}
	return prices, nil
}
