package store

import (
	"database/sql"
	"fmt"

	"github.com/paiid/paiid/pkg/models"
)

// GetProfile returns the stored profile, or the default profile when
// none has been saved yet.
func (db *DB) GetProfile() (models.Profile, error) {
	var p models.Profile
	var setupComplete int
	var updatedAt string

	row := db.QueryRow(`
		SELECT display_name, risk_tolerance, trading_mode, setup_complete, updated_at
		FROM profile WHERE id = 1
	`)
	err := row.Scan(&p.DisplayName, &p.RiskTolerance, &p.TradingMode, &setupComplete, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.DefaultProfile(), nil
		}
		return models.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	p.SetupComplete = setupComplete != 0
	if t, err := parseTime(updatedAt); err == nil {
		p.UpdatedAt = t
	}
	return p, nil
}

// SetProfile stores the profile, replacing any previous one.
func (db *DB) SetProfile(p models.Profile) error {
	setupComplete := 0
	if p.SetupComplete {
		setupComplete = 1
	}

	_, err := db.Exec(`
		INSERT INTO profile (id, display_name, risk_tolerance, trading_mode, setup_complete, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			display_name = excluded.display_name,
			risk_tolerance = excluded.risk_tolerance,
			trading_mode = excluded.trading_mode,
			setup_complete = excluded.setup_complete,
			updated_at = excluded.updated_at
	`, p.DisplayName, string(p.RiskTolerance), string(p.TradingMode), setupComplete, formatTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}
