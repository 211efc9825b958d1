package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB is the click-session ledger, kept next to the settings document. Every
// caller treats it as best-effort telemetry: a missing or broken ledger never
// stops the clicker.
type DB struct {
	conn *sql.DB
}

// Open opens the ledger and initializes the schema.
func Open(configDir string) (*DB, error) {
	dbPath := filepath.Join(configDir, "lazyfinger.db")

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps session inserts from blocking reads.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

// Close closes the ledger.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at DATETIME NOT NULL,
		duration_ms INTEGER NOT NULL,
		clicks INTEGER NOT NULL,

		-- Settings snapshot at cycle entry
		mouse_button TEXT NOT NULL,
		click_type TEXT NOT NULL,
		interval_ms INTEGER NOT NULL,

		-- 'completed' when a fixed repeat count ran out, 'stopped' otherwise
		stop_reason TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_started_at ON sessions(started_at);
	`

	_, err := db.conn.Exec(schema)
	return err
}
