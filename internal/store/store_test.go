package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/paiid/paiid/pkg/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "paiid.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testSnapshot() models.MarketSnapshot {
	return models.MarketSnapshot{
		Dow:    models.IndexQuote{Last: 44910.54, ChangePercent: 0.42},
		Nasdaq: models.IndexQuote{Last: 21732.11, ChangePercent: -0.18},
		Status: models.MarketStatus{
			IsOpen:      true,
			State:       models.MarketOpen,
			Description: "Regular trading hours",
		},
		FetchedAt: time.Date(2026, 8, 24, 14, 30, 0, 0, time.UTC),
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Migrate(); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()

	if err := db.PutSnapshot(testSnapshot(), now); err != nil {
		t.Fatalf("PutSnapshot failed: %v", err)
	}

	got, err := db.GetSnapshot(now)
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if got.Dow.Last != 44910.54 || got.Nasdaq.ChangePercent != -0.18 {
		t.Errorf("snapshot mismatch: %+v", got)
	}
	if got.Status.State != models.MarketOpen {
		t.Errorf("status state = %q, want open", got.Status.State)
	}
}

func TestSnapshotTTL(t *testing.T) {
	db := setupTestDB(t)
	written := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	if err := db.PutSnapshot(testSnapshot(), written); err != nil {
		t.Fatalf("PutSnapshot failed: %v", err)
	}

	// One minute before expiry the snapshot is still served.
	if _, err := db.GetSnapshot(written.Add(24*time.Hour - time.Minute)); err != nil {
		t.Errorf("snapshot at T+23h59m should hit, got %v", err)
	}

	// One minute past expiry it is a cache miss.
	_, err := db.GetSnapshot(written.Add(24*time.Hour + time.Minute))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("snapshot at T+24h01m should miss with ErrNotFound, got %v", err)
	}
}

func TestSnapshotMissingIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	if _, err := db.GetSnapshot(time.Now()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSnapshotOverwrite(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()

	if err := db.PutSnapshot(testSnapshot(), now.Add(-time.Hour)); err != nil {
		t.Fatalf("first put: %v", err)
	}
	updated := testSnapshot()
	updated.Dow.Last = 45001.00
	if err := db.PutSnapshot(updated, now); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, err := db.GetSnapshot(now)
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if got.Dow.Last != 45001.00 {
		t.Errorf("expected overwritten snapshot, got %+v", got)
	}
}

func TestProfileDefaultWhenUnset(t *testing.T) {
	db := setupTestDB(t)

	p, err := db.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if p.SetupComplete {
		t.Error("fresh profile must not be setup-complete")
	}
	if p.TradingMode != models.ModePaper {
		t.Errorf("fresh profile mode = %q, want paper", p.TradingMode)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	want := models.Profile{
		DisplayName:   "Jordan",
		RiskTolerance: models.RiskAggressive,
		TradingMode:   models.ModeLive,
		SetupComplete: true,
		UpdatedAt:     time.Now().UTC().Truncate(time.Second),
	}
	if err := db.SetProfile(want); err != nil {
		t.Fatalf("SetProfile failed: %v", err)
	}

	got, err := db.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.DisplayName != want.DisplayName || got.RiskTolerance != want.RiskTolerance {
		t.Errorf("profile mismatch: got %+v, want %+v", got, want)
	}
	if !got.SetupComplete || got.TradingMode != models.ModeLive {
		t.Errorf("flags mismatch: %+v", got)
	}

	// Saving again replaces the single row.
	want.DisplayName = "Sam"
	if err := db.SetProfile(want); err != nil {
		t.Fatalf("second SetProfile failed: %v", err)
	}
	got, _ = db.GetProfile()
	if got.DisplayName != "Sam" {
		t.Errorf("expected replaced profile, got %q", got.DisplayName)
	}
}

func TestWatchlistCRUD(t *testing.T) {
	db := setupTestDB(t)

	w := models.Watchlist{
		ID:        "wl-tech",
		Name:      "Tech",
		Symbols:   []string{"AAPL", "MSFT", "NVDA"},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := db.PutWatchlist(w); err != nil {
		t.Fatalf("PutWatchlist failed: %v", err)
	}

	got, err := db.GetWatchlist("wl-tech")
	if err != nil {
		t.Fatalf("GetWatchlist failed: %v", err)
	}
	if got.Name != "Tech" || len(got.Symbols) != 3 || got.Symbols[2] != "NVDA" {
		t.Errorf("watchlist mismatch: %+v", got)
	}

	// Update symbols in place.
	w.Symbols = append(w.Symbols, "AMD")
	if err := db.PutWatchlist(w); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ = db.GetWatchlist("wl-tech")
	if len(got.Symbols) != 4 {
		t.Errorf("expected 4 symbols after update, got %d", len(got.Symbols))
	}

	lists, err := db.ListWatchlists()
	if err != nil {
		t.Fatalf("ListWatchlists failed: %v", err)
	}
	if len(lists) != 1 {
		t.Errorf("expected 1 watchlist, got %d", len(lists))
	}

	if err := db.DeleteWatchlist("wl-tech"); err != nil {
		t.Fatalf("DeleteWatchlist failed: %v", err)
	}
	if _, err := db.GetWatchlist("wl-tech"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again is a no-op.
	if err := db.DeleteWatchlist("wl-tech"); err != nil {
		t.Errorf("second delete errored: %v", err)
	}
}
