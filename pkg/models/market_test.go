package models

import "testing"

func TestMarketStateValid(t *testing.T) {
	valid := []MarketState{MarketOpen, MarketPremarket, MarketPostmarket, MarketClosed}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []MarketState{"", "halted", "OPEN"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestWorkflowNameLines(t *testing.T) {
	w := Workflow{Name: "Active\nPositions"}

	lines := w.NameLines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Active" || lines[1] != "Positions" {
		t.Errorf("unexpected lines: %v", lines)
	}

	if got := w.FlatName(); got != "Active Positions" {
		t.Errorf("expected flat name 'Active Positions', got %q", got)
	}
}

func TestWorkflowNameLinesSingle(t *testing.T) {
	w := Workflow{Name: "Backtesting"}
	lines := w.NameLines()
	if len(lines) != 1 || lines[0] != "Backtesting" {
		t.Errorf("unexpected lines: %v", lines)
	}
}
