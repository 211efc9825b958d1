package storage

import (
	"fmt"
	"time"
)

// Stop reasons recorded per session.
const (
	ReasonCompleted = "completed"
	ReasonStopped   = "stopped"
)

// Session is one click cycle from Start to Stop.
type Session struct {
	StartedAt   time.Time
	Duration    time.Duration
	Clicks      int
	MouseButton string
	ClickType   string
	IntervalMs  int
	StopReason  string
}

// Totals aggregates the ledger for display.
type Totals struct {
	Sessions    int
	TotalClicks int64
	TotalTimeMs int64
}

// InsertSession records a finished cycle.
func (db *DB) InsertSession(s Session) error {
	_, err := db.conn.Exec(`
		INSERT INTO sessions (started_at, duration_ms, clicks, mouse_button, click_type, interval_ms, stop_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.StartedAt.UTC(), s.Duration.Milliseconds(), s.Clicks,
		s.MouseButton, s.ClickType, s.IntervalMs, s.StopReason,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// GetTotals returns the all-time aggregates.
func (db *DB) GetTotals() (*Totals, error) {
	var t Totals
	err := db.conn.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(clicks), 0),
			COALESCE(SUM(duration_ms), 0)
		FROM sessions`,
	).Scan(&t.Sessions, &t.TotalClicks, &t.TotalTimeMs)
	if err != nil {
		return nil, fmt.Errorf("failed to query totals: %w", err)
	}
	return &t, nil
}

// GetRecentSessions returns the newest sessions, most recent first.
func (db *DB) GetRecentSessions(limit int) ([]Session, error) {
	rows, err := db.conn.Query(`
		SELECT started_at, duration_ms, clicks, mouse_button, click_type, interval_ms, stop_reason
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var durationMs int64
		if err := rows.Scan(&s.StartedAt, &durationMs, &s.Clicks, &s.MouseButton, &s.ClickType, &s.IntervalMs, &s.StopReason); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.Duration = time.Duration(durationMs) * time.Millisecond
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
