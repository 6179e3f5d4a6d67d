package pricedb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "prices.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

// day returns the Unix seconds of the trading day's midnight, New York
// time, the key format the cache stores.
func day(t *testing.T, value string) int64 {
	t.Helper()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	parsed, err := time.ParseInLocation("2006-01-02", value, ny)
	require.NoError(t, err)
	return parsed.Unix()
}

func TestOpen_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.sqlite")

	db, err := Open(path)
	require.NoError(t, err)

	var version int
	require.NoError(t, db.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, schemaVersion, version)
	require.NoError(t, db.Close())

	// Reopening an existing cache must not re-run the migration.
	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	tickers, err := db.Tickers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tickers)
}

func TestStore_CoverageLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	start, end := day(t, "2024-01-02"), day(t, "2024-01-10")

	covered, err := db.Covered(ctx, "SPY", start, end)
	require.NoError(t, err)
	assert.False(t, covered, "empty cache claims coverage")

	rows := []Price{
		{Date: day(t, "2024-01-02"), Close: 468.30},
		{Date: day(t, "2024-01-03"), Close: 466.14},
		{Date: day(t, "2024-01-04"), Close: 464.60},
	}
	require.NoError(t, db.Store(ctx, "SPY", start, end, rows))

	covered, err = db.Covered(ctx, "SPY", start, end)
	require.NoError(t, err)
	assert.True(t, covered, "stored range is not covered")

	// A narrower window inside the fetched range is covered too.
	covered, err = db.Covered(ctx, "SPY", day(t, "2024-01-03"), day(t, "2024-01-05"))
	require.NoError(t, err)
	assert.True(t, covered)

	// A wider window is not, the extra days were never fetched.
	covered, err = db.Covered(ctx, "SPY", start, day(t, "2024-01-20"))
	require.NoError(t, err)
	assert.False(t, covered)

	// Neither is another ticker.
	covered, err = db.Covered(ctx, "TLT", start, end)
	require.NoError(t, err)
	assert.False(t, covered)
}

func TestCovered_NeedsActualCloses(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// A fetch across January whose closes stop on the 4th. The tail of
	// the range holds a coverage claim but no data.
	rows := []Price{
		{Date: day(t, "2024-01-02"), Close: 468.30},
		{Date: day(t, "2024-01-03"), Close: 466.14},
		{Date: day(t, "2024-01-04"), Close: 464.60},
	}
	require.NoError(t, db.Store(ctx, "SPY", day(t, "2024-01-02"), day(t, "2024-01-31"), rows))

	covered, err := db.Covered(ctx, "SPY", day(t, "2024-01-10"), day(t, "2024-01-20"))
	require.NoError(t, err)
	assert.False(t, covered, "a window with no closes must read as a miss so it gets refetched")
}

func TestStore_EmptyFetchNotRecorded(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	start, end := day(t, "2024-01-02"), day(t, "2024-01-10")

	require.NoError(t, db.Store(ctx, "GONE", start, end, nil))

	covered, err := db.Covered(ctx, "GONE", start, end)
	require.NoError(t, err)
	assert.False(t, covered, "an empty fetch must not be cached as coverage")
}

func TestStore_KeepsFirstClose(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	start, end := day(t, "2024-01-02"), day(t, "2024-01-03")

	require.NoError(t, db.Store(ctx, "SPY", start, end, []Price{{Date: start, Close: 468.30}}))
	require.NoError(t, db.Store(ctx, "SPY", start, end, []Price{{Date: start, Close: 999.99}}))

	prices, err := db.All(ctx, "SPY")
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, 468.30, prices[0].Close, "a re-store must not rewrite an already cached close")
}

func TestPrices_WindowOrdered(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// Insertion order is no promise of date order.
	rows := []Price{
		{Date: day(t, "2024-01-04"), Close: 464.60},
		{Date: day(t, "2024-01-02"), Close: 468.30},
		{Date: day(t, "2024-01-03"), Close: 466.14},
	}
	require.NoError(t, db.Store(ctx, "SPY", day(t, "2024-01-02"), day(t, "2024-01-05"), rows))

	prices, err := db.Prices(ctx, "SPY", day(t, "2024-01-02"), day(t, "2024-01-04"))
	require.NoError(t, err)
	require.Len(t, prices, 2, "the end of the window is exclusive")
	assert.Equal(t, day(t, "2024-01-02"), prices[0].Date)
	assert.Equal(t, day(t, "2024-01-03"), prices[1].Date)
}

func TestTickers_Sorted(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	start, end := day(t, "2024-01-02"), day(t, "2024-01-03")

	require.NoError(t, db.Store(ctx, "TLT", start, end, []Price{{Date: start, Close: 98.87}}))
	require.NoError(t, db.Store(ctx, "SPY", start, end, []Price{{Date: start, Close: 468.30}}))

	tickers, err := db.Tickers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"SPY", "TLT"}, tickers)
}
