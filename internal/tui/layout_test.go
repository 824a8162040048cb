package tui

import "testing"

func TestLayoutMemoized(t *testing.T) {
	l := NewLayoutManager(120, 40)

	first := l.Calculate()
	for i := 0; i < 5; i++ {
		if got := l.Calculate(); got != first {
			t.Fatalf("repeat Calculate returned %+v, want %+v", got, first)
		}
	}
	if l.Builds() != 1 {
		t.Errorf("builds = %d, equal inputs must not rebuild", l.Builds())
	}

	// Same width re-applied is still a cache hit.
	l.SetSize(120, 40)
	l.Calculate()
	if l.Builds() != 1 {
		t.Errorf("builds = %d after identical SetSize", l.Builds())
	}

	// A real change rebuilds once.
	l.SetSize(90, 40)
	l.Calculate()
	if l.Builds() != 2 {
		t.Errorf("builds = %d after size change, want 2", l.Builds())
	}
}

func TestLayoutCompactThreshold(t *testing.T) {
	l := NewLayoutManager(99, 40)
	dims := l.Calculate()
	if !dims.Compact {
		t.Error("width 99 should select compact layout")
	}
	if dims.PanelWidth != 0 {
		t.Errorf("compact panel width = %d, want 0", dims.PanelWidth)
	}

	l.SetSize(100, 40)
	dims = l.Calculate()
	if dims.Compact {
		t.Error("width 100 should select regular layout")
	}
	if dims.PanelWidth <= 0 {
		t.Errorf("regular panel width = %d, want > 0", dims.PanelWidth)
	}
	if dims.MenuWidth+dims.PanelWidth != 100 {
		t.Errorf("menu %d + panel %d != width 100", dims.MenuWidth, dims.PanelWidth)
	}
}

func TestLayoutCompactMenuCapped(t *testing.T) {
	l := NewLayoutManager(90, 60)
	dims := l.Calculate()
	if dims.MenuWidth > 60 {
		t.Errorf("compact menu width = %d, want <= 60", dims.MenuWidth)
	}
	// 90% of 60 cells is 54, under the cap.
	l.SetSize(60, 60)
	dims = l.Calculate()
	if dims.MenuWidth != 54 {
		t.Errorf("menu width = %d, want 54 (90%% of 60)", dims.MenuWidth)
	}
}

func TestLayoutMenuFitsContentHeight(t *testing.T) {
	l := NewLayoutManager(200, 20)
	dims := l.Calculate()
	if dims.MenuHeight > dims.ContentHeight {
		t.Errorf("menu height %d exceeds content height %d", dims.MenuHeight, dims.ContentHeight)
	}
}
