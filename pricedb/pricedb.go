// Package pricedb caches daily closes in a local SQLite file, so a season
// replay hits the network once per ticker and range, not once per run.
//
// Days are stored as Unix seconds of midnight, New York time. Ranges are
// half open: a stored fetch for [start, end) promises every close the
// provider had for days start through end-1.
package pricedb

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go driver
)

const schemaVersion = 1

// DB is the price cache.
type DB struct {
	db *sql.DB
}

// Open initializes the cache at the given path, creating the schema when
// needed. The PRAGMAs ride the DSN so they apply to every connection in
// the pool.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		path, (5 * time.Second).Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("pricedb: open failed: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA analysis_limit=1000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pricedb: pragma failed: %w", err)
	}

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pricedb: migration failed: %w", err)
	}
	return d, nil
}

func (d *DB) migrate() error {
	var currentVersion int
	err := d.db.QueryRow("PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return err
	}

	if currentVersion >= schemaVersion {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	schema := `
	CREATE TABLE IF NOT EXISTS fetches (
		ticker TEXT NOT NULL,
		"start" INTEGER NOT NULL,
		"end" INTEGER NOT NULL,
		PRIMARY KEY (ticker, "start", "end")
	);

	CREATE TABLE IF NOT EXISTS prices (
		ticker TEXT NOT NULL,
		date INTEGER NOT NULL,
		close REAL NOT NULL,
		PRIMARY KEY (ticker, date)
	);
	`

	if _, err := tx.Exec(schema); err != nil {
		return err
	}

	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return err
	}

	return tx.Commit()
}

// Close runs the optimizer over the gathered statistics and closes the
// file.
func (d *DB) Close() error {
	if _, err := d.db.Exec("PRAGMA optimize"); err != nil {
		_ = d.db.Close()
		return fmt.Errorf("pricedb: optimize failed: %w", err)
	}
	return d.db.Close()
}
