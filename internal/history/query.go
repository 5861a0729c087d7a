package history

import (
	"database/sql"
	"time"
)

const entryColumns = `
	SELECT id, session_id, timestamp, action, path, file_name, location,
	       size, tier, reason, recommendation, error_message, created_at
	FROM outcomes
`

// Recent returns the N most recent outcome rows.
func (h *DB) Recent(limit int) ([]Entry, error) {
	return h.queryEntries(entryColumns+`
	ORDER BY timestamp DESC
	LIMIT ?
	`, limit)
}

// ByAction returns rows filtered by action label.
func (h *DB) ByAction(action string) ([]Entry, error) {
	return h.queryEntries(entryColumns+`
	WHERE action = ?
	ORDER BY timestamp DESC
	`, action)
}

// ByTier returns rows filtered by risk tier name.
func (h *DB) ByTier(tier string) ([]Entry, error) {
	return h.queryEntries(entryColumns+`
	WHERE tier = ?
	ORDER BY timestamp DESC
	`, tier)
}

// BySession returns every row recorded under one session id.
func (h *DB) BySession(sessionID string) ([]Entry, error) {
	return h.queryEntries(entryColumns+`
	WHERE session_id = ?
	ORDER BY id
	`, sessionID)
}

// Largest returns the N largest moved files.
func (h *DB) Largest(limit int) ([]Entry, error) {
	return h.queryEntries(entryColumns+`
	WHERE action = 'MOVE'
	ORDER BY size DESC
	LIMIT ?
	`, limit)
}

// Stats holds aggregated counters over a time window.
type Stats struct {
	Moved      int
	MoveFailed int
	Kept       int
	Skipped    int
	DryRun     int
	BytesFreed int64
	Sessions   int
}

// StatsSince aggregates outcome counts over the last N days.
func (h *DB) StatsSince(days int) (Stats, error) {
	since := time.Now().AddDate(0, 0, -days)
	var s Stats

	rows, err := h.db.Query(`
	SELECT action, COUNT(*), COALESCE(SUM(size), 0)
	FROM outcomes
	WHERE timestamp >= ?
	GROUP BY action
	`, since)
	if err != nil {
		return s, err
	}
	defer rows.Close()

	for rows.Next() {
		var action string
		var count int
		var size int64
		if err := rows.Scan(&action, &count, &size); err != nil {
			return s, err
		}
		switch action {
		case "MOVE":
			s.Moved = count
			s.BytesFreed = size
		case "MOVE_FAILED":
			s.MoveFailed = count
		case "KEEP":
			s.Kept = count
		case "SKIP":
			s.Skipped = count
		case "DRY_RUN":
			s.DryRun = count
		}
	}
	if err := rows.Err(); err != nil {
		return s, err
	}

	err = h.db.QueryRow(`
	SELECT COUNT(DISTINCT session_id) FROM outcomes WHERE timestamp >= ?
	`, since).Scan(&s.Sessions)
	return s, err
}

func (h *DB) queryEntries(query string, args ...any) ([]Entry, error) {
	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var fileName, location, reason, recommendation, errMsg sql.NullString
		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.Timestamp, &e.Action, &e.Path,
			&fileName, &location, &e.Size, &e.Tier,
			&reason, &recommendation, &errMsg, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.FileName = fileName.String
		e.Location = location.String
		e.Reason = reason.String
		e.Recommendation = recommendation.String
		e.ErrorMessage = errMsg.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
