package tui

// compactThreshold is the terminal width below which the dashboard
// switches to the compact layout: the menu fills most of the width and
// detail panels take over the whole screen instead of sitting beside it.
const compactThreshold = 100

// Dimensions holds calculated sizes for the menu and detail panel.
type Dimensions struct {
	// MenuWidth is the radial menu width in cells.
	MenuWidth int
	// MenuHeight is the radial menu height in cells.
	MenuHeight int
	// PanelWidth is the detail panel width, 0 in compact layout.
	PanelWidth int
	// ContentHeight is the height available below header and above footer.
	ContentHeight int
	// Compact reports whether the compact layout is active.
	Compact bool
}

// layoutKey is the memoization key: layouts are rebuilt only when the
// compact flag or the viewport size actually changes.
type layoutKey struct {
	compact bool
	width   int
	height  int
}

// LayoutManager calculates dashboard dimensions from the terminal size.
// Results are memoized so repeated size messages with equal dimensions
// do not rebuild the layout.
type LayoutManager struct {
	totalWidth   int
	totalHeight  int
	headerHeight int
	footerHeight int

	cachedKey  layoutKey
	cached     Dimensions
	haveCached bool
	builds     int
}

// NewLayoutManager creates a LayoutManager with the given terminal size.
func NewLayoutManager(width, height int) *LayoutManager {
	return &LayoutManager{
		totalWidth:   width,
		totalHeight:  height,
		headerHeight: 9, // margin + logo + subtitle + padding
		footerHeight: 1,
	}
}

// SetSize updates the terminal dimensions.
func (l *LayoutManager) SetSize(width, height int) {
	l.totalWidth = width
	l.totalHeight = height
}

// Compact reports whether the current width selects the compact layout.
func (l *LayoutManager) Compact() bool {
	return l.totalWidth < compactThreshold
}

// Calculate returns the dimensions for the current terminal size.
func (l *LayoutManager) Calculate() Dimensions {
	key := layoutKey{compact: l.Compact(), width: l.totalWidth, height: l.totalHeight}
	if l.haveCached && key == l.cachedKey {
		return l.cached
	}

	l.builds++
	dims := l.build(key)
	l.cachedKey = key
	l.cached = dims
	l.haveCached = true
	return dims
}

func (l *LayoutManager) build(key layoutKey) Dimensions {
	contentHeight := key.height - l.headerHeight - l.footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	const (
		menuWidthRegular = 64
		menuWidthMax     = 60 // compact cap
		panelMinWidth    = 40
		menuMinWidth     = 30
	)

	var dims Dimensions
	dims.Compact = key.compact
	dims.ContentHeight = contentHeight

	if key.compact {
		// Menu fills 90% of the width, capped. Panels replace the
		// menu full-screen instead of sitting beside it.
		menuW := key.width * 9 / 10
		if menuW > menuWidthMax {
			menuW = menuWidthMax
		}
		if menuW < menuMinWidth {
			menuW = menuMinWidth
		}
		dims.MenuWidth = menuW
		dims.PanelWidth = 0
	} else {
		menuW := menuWidthRegular
		if key.width-menuW < panelMinWidth {
			menuW = key.width - panelMinWidth
			if menuW < menuMinWidth {
				menuW = menuMinWidth
			}
		}
		dims.MenuWidth = menuW
		dims.PanelWidth = key.width - menuW
	}

	// Terminal cells are roughly twice as tall as wide; halving the
	// height keeps the wheel circular.
	dims.MenuHeight = dims.MenuWidth / 2
	if dims.MenuHeight > contentHeight {
		dims.MenuHeight = contentHeight
		dims.MenuWidth = contentHeight * 2
	}

	return dims
}

// Builds returns how many times a layout was actually rebuilt.
func (l *LayoutManager) Builds() int {
	return l.builds
}

// TotalWidth returns the current terminal width.
func (l *LayoutManager) TotalWidth() int {
	return l.totalWidth
}

// TotalHeight returns the current terminal height.
func (l *LayoutManager) TotalHeight() int {
	return l.totalHeight
}

// HeaderHeight returns the height reserved for the header.
func (l *LayoutManager) HeaderHeight() int {
	return l.headerHeight
}

// FooterHeight returns the height reserved for the footer.
func (l *LayoutManager) FooterHeight() int {
	return l.footerHeight
}
