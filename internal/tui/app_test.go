package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paiid/paiid/internal/bus"
	"github.com/paiid/paiid/internal/workflow"
	"github.com/paiid/paiid/pkg/models"
)

func testApp() *App {
	a := NewApp(Deps{
		Registry: workflow.NewRegistry(),
		Bus:      bus.New(),
	})
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return a
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppOwnsSelection(t *testing.T) {
	a := testApp()

	if a.selectedID != "" {
		t.Fatalf("initial selection = %q, want none", a.selectedID)
	}

	// Rotate hover to the first wedge, then select it.
	a.Update(tea.KeyMsg{Type: tea.KeyRight})
	if a.menu.Machine().HoveredID() != "morning-routine" {
		t.Fatalf("hovered = %q", a.menu.Machine().HoveredID())
	}

	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if a.selectedID != "morning-routine" {
		t.Fatalf("selected = %q, want morning-routine", a.selectedID)
	}
	// The menu mirrors the app-owned selection.
	if a.menu.Machine().SelectedID() != "morning-routine" {
		t.Error("menu does not mirror selection")
	}
	if a.panels["morning-routine"] == nil {
		t.Error("expected a panel for the selected workflow")
	}
}

func TestAppEscReturnsToOverview(t *testing.T) {
	a := testApp()

	a.Update(keyRunes("3"))
	if a.selectedID != "execute-trade" {
		t.Fatalf("number jump selected %q, want execute-trade", a.selectedID)
	}

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if a.selectedID != "" {
		t.Errorf("esc left selection at %q", a.selectedID)
	}
	if a.menu.Machine().SelectedID() != "" {
		t.Error("menu still shows a selection after esc")
	}
}

func TestAppNumberZeroIsTenth(t *testing.T) {
	a := testApp()

	a.Update(keyRunes("0"))
	if a.selectedID != "settings" {
		t.Errorf("key 0 selected %q, want settings", a.selectedID)
	}
}

func TestAppSnapshotEventReachesHub(t *testing.T) {
	a := testApp()

	snap := sampleSnapshot()
	a.Update(busEventMsg{event: bus.SnapshotEvent{Snapshot: snap}, ok: true})

	if !a.menu.hasSnap {
		t.Fatal("snapshot event did not reach the menu")
	}
	if a.menu.snapshot.Dow.Last != snap.Dow.Last {
		t.Errorf("menu snapshot = %+v", a.menu.snapshot)
	}
}

func TestAppToastEvent(t *testing.T) {
	a := testApp()

	a.Update(busEventMsg{event: bus.ToastEvent{Level: bus.ToastError, Message: "order failed"}, ok: true})
	if a.toasts.Len() != 1 {
		t.Errorf("toast count = %d, want 1", a.toasts.Len())
	}
}

func TestAppOrderPlacedUpdatesFooter(t *testing.T) {
	a := testApp()

	a.Update(busEventMsg{event: bus.OrderPlacedEvent{Order: models.Order{Symbol: "SPY"}}, ok: true})
	if !strings.Contains(a.footer.View(""), "order placed: SPY") {
		t.Fatal("footer does not show the order outcome")
	}

	// Navigating clears the persistent status line.
	a.Update(keyRunes("1"))
	if strings.Contains(a.footer.View(a.selectedID), "order placed") {
		t.Error("footer message survived navigation")
	}
}

func TestAppConfigReloadAdjustsCadence(t *testing.T) {
	a := testApp()

	a.Update(busEventMsg{event: bus.ConfigReloadedEvent{
		RefreshRate:     50 * time.Millisecond,
		MonitorInterval: 5 * time.Second,
	}, ok: true})

	if a.refreshRate != 50*time.Millisecond {
		t.Errorf("refresh rate = %v, want 50ms", a.refreshRate)
	}
	if a.monitorInterval != 5*time.Second {
		t.Errorf("monitor interval = %v, want 5s", a.monitorInterval)
	}
}

func TestAppViewRenders(t *testing.T) {
	a := testApp()
	if a.View() == "" {
		t.Error("overview view is empty")
	}

	a.Update(keyRunes("1"))
	if a.View() == "" {
		t.Error("panel view is empty")
	}
}
