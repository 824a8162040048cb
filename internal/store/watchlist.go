package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/paiid/paiid/pkg/models"
)

// ListWatchlists returns all watchlists ordered by creation time.
func (db *DB) ListWatchlists() ([]models.Watchlist, error) {
	rows, err := db.Query(`
		SELECT id, name, symbols, created_at
		FROM watchlists ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list watchlists: %w", err)
	}
	defer rows.Close()

	var lists []models.Watchlist
	for rows.Next() {
		w, err := scanWatchlist(rows.Scan)
		if err != nil {
			return nil, err
		}
		lists = append(lists, w)
	}
	return lists, rows.Err()
}

// GetWatchlist returns the watchlist with the given ID.
func (db *DB) GetWatchlist(id string) (models.Watchlist, error) {
	row := db.QueryRow(`
		SELECT id, name, symbols, created_at
		FROM watchlists WHERE id = ?
	`, id)
	w, err := scanWatchlist(row.Scan)
	if err == sql.ErrNoRows {
		return models.Watchlist{}, ErrNotFound
	}
	return w, err
}

// PutWatchlist inserts or replaces a watchlist.
func (db *DB) PutWatchlist(w models.Watchlist) error {
	symbols, err := json.Marshal(w.Symbols)
	if err != nil {
		return fmt.Errorf("marshal symbols: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO watchlists (id, name, symbols, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			symbols = excluded.symbols
	`, w.ID, w.Name, string(symbols), formatTime(w.CreatedAt))
	if err != nil {
		return fmt.Errorf("put watchlist: %w", err)
	}
	return nil
}

// DeleteWatchlist removes a watchlist. Deleting a missing list is not
// an error.
func (db *DB) DeleteWatchlist(id string) error {
	if _, err := db.Exec("DELETE FROM watchlists WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete watchlist: %w", err)
	}
	return nil
}

func scanWatchlist(scan func(...any) error) (models.Watchlist, error) {
	var w models.Watchlist
	var symbols, createdAt string
	if err := scan(&w.ID, &w.Name, &symbols, &createdAt); err != nil {
		return models.Watchlist{}, err
	}
	if err := json.Unmarshal([]byte(symbols), &w.Symbols); err != nil {
		return models.Watchlist{}, fmt.Errorf("unmarshal symbols: %w", err)
	}
	if t, err := parseTime(createdAt); err == nil {
		w.CreatedAt = t
	}
	return w, nil
}
