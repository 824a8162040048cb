package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/paiid/paiid/pkg/models"
)

// snapshotKey matches the browser cache key the dashboard used before
// moving to SQLite, kept for a familiar upgrade path.
const snapshotKey = "paiid-market-data"

// PutSnapshot stores the market snapshot with the given write time,
// replacing any previous snapshot.
func (db *DB) PutSnapshot(snap models.MarketSnapshot, now time.Time) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO snapshots (key, data, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, fetched_at = excluded.fetched_at
	`, snapshotKey, string(data), formatTime(now))
	if err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	return nil
}

// GetSnapshot returns the cached snapshot if it was written within
// SnapshotTTL of now. Older or missing snapshots yield ErrNotFound.
func (db *DB) GetSnapshot(now time.Time) (models.MarketSnapshot, error) {
	var data, fetchedAt string
	row := db.QueryRow("SELECT data, fetched_at FROM snapshots WHERE key = ?", snapshotKey)
	if err := row.Scan(&data, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return models.MarketSnapshot{}, ErrNotFound
		}
		return models.MarketSnapshot{}, fmt.Errorf("get snapshot: %w", err)
	}

	written, err := parseTime(fetchedAt)
	if err != nil {
		return models.MarketSnapshot{}, fmt.Errorf("parse snapshot time: %w", err)
	}
	if now.Sub(written) > SnapshotTTL {
		return models.MarketSnapshot{}, ErrNotFound
	}

	var snap models.MarketSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return models.MarketSnapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, nil
}
