package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paiid/paiid/internal/radial"
	"github.com/paiid/paiid/pkg/models"
)

// Menu renders the radial workflow wheel and routes hover and selection
// input through the interaction machine. Selection itself is owned by
// the App; the menu only reports clicks and mirrors the owner's choice.
type Menu struct {
	workflows []models.Workflow
	machine   *radial.Machine

	width    int
	height   int
	snapshot models.MarketSnapshot
	hasSnap  bool
}

// NewMenu creates a Menu over the workflow registry entries.
func NewMenu(workflows []models.Workflow) *Menu {
	return &Menu{
		workflows: workflows,
		machine:   radial.NewMachine(workflows),
		width:     64,
		height:    32,
	}
}

// Machine exposes the interaction machine for callback wiring.
func (m *Menu) Machine() *radial.Machine {
	return m.machine
}

// SetSize sets the menu's cell dimensions.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetSelected mirrors the App-owned selection into the machine.
func (m *Menu) SetSelected(id string) {
	m.machine.SetSelected(id)
}

// SetSnapshot updates the hub's live market overlay.
func (m *Menu) SetSnapshot(snap models.MarketSnapshot) {
	m.snapshot = snap
	m.hasSnap = true
}

// HandleKey processes a key message while the menu has focus.
func (m *Menu) HandleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "left", "h":
		m.machine.HoverPrev()
	case "right", "l":
		m.machine.HoverNext()
	case "enter", " ":
		if id := m.machine.HoveredID(); id != "" {
			m.machine.Click(id)
		}
	case "esc":
		m.machine.ClickHub()
	default:
		// Number keys jump straight to a wedge: 1-9, 0 is the tenth.
		s := msg.String()
		if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			i := int(s[0] - '1')
			if s[0] == '0' {
				i = 9
			}
			if i >= 0 && i < len(m.workflows) {
				m.machine.HoverEnter(m.workflows[i].ID)
				m.machine.Click(m.workflows[i].ID)
			}
		}
	}
}

// HandleMouse hit-tests mouse motion and clicks against the wheel.
func (m *Menu) HandleMouse(msg tea.MouseMsg, originCol, originRow int) {
	layout := m.layout()
	r := m.raster(layout)

	col := msg.X - originCol
	row := msg.Y - originRow
	p := r.CanvasPoint(layout, col, row)

	seg, over := layout.SegmentAt(p, m.machine.HoveredID(), m.machine.SelectedID())

	switch msg.Action {
	case tea.MouseActionMotion:
		if over {
			m.machine.HoverEnter(seg.ID)
		} else {
			m.machine.HoverLeave(m.machine.HoveredID())
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if over {
			m.machine.Click(seg.ID)
		} else if layout.HubAt(p) {
			m.machine.ClickHub()
		}
	}
}

func (m *Menu) layout() radial.Layout {
	// The raster maps a square canvas onto the cell grid; use the
	// width as the canvas size so growth units stay meaningful.
	return radial.Compute(m.workflows, float64(m.width))
}

func (m *Menu) raster(layout radial.Layout) *radial.Raster {
	return radial.NewRaster(
		layout, m.workflows,
		m.machine.HoveredID(), m.machine.SelectedID(),
		m.width, m.height,
		m.hubLines(),
	)
}

// hubLines builds the live market overlay for the wheel center.
func (m *Menu) hubLines() []radial.HubLine {
	if !m.hasSnap {
		return []radial.HubLine{{Text: "PaiiD"}, {Text: "loading...", Color: "240"}}
	}

	lines := []radial.HubLine{
		{Text: fmt.Sprintf("DOW %s", formatIndex(m.snapshot.Dow))},
		{Text: formatChange(m.snapshot.Dow), Color: changeColor(m.snapshot.Dow)},
		{Text: fmt.Sprintf("NDQ %s", formatIndex(m.snapshot.Nasdaq))},
		{Text: formatChange(m.snapshot.Nasdaq), Color: changeColor(m.snapshot.Nasdaq)},
	}

	badge := radial.HubLine{Text: strings.ToUpper(string(m.snapshot.Status.State))}
	switch m.snapshot.Status.State {
	case models.MarketOpen:
		badge.Color = "28"
	case models.MarketPremarket, models.MarketPostmarket:
		badge.Color = "214"
	default:
		badge.Color = "196"
	}
	return append(lines, badge)
}

func formatIndex(q models.IndexQuote) string {
	if q.Last == 0 {
		return "--"
	}
	return fmt.Sprintf("%.0f", q.Last)
}

func formatChange(q models.IndexQuote) string {
	if q.Last == 0 {
		return ""
	}
	arrow := "▲"
	if q.ChangePercent < 0 {
		arrow = "▼"
	}
	return fmt.Sprintf("%s %.2f%%", arrow, q.ChangePercent)
}

func changeColor(q models.IndexQuote) string {
	if q.ChangePercent < 0 {
		return "196"
	}
	return "28"
}

// View renders the wheel to a styled string.
func (m *Menu) View() string {
	layout := m.layout()
	r := m.raster(layout)

	var b strings.Builder
	for row := 0; row < r.Height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderRow(r, row))
	}
	return b.String()
}

// renderRow styles one raster row, batching runs of identical style so
// the output stays compact.
func renderRow(r *radial.Raster, row int) string {
	var b strings.Builder
	var run []rune
	var runColor string
	var runBold bool

	flush := func() {
		if len(run) == 0 {
			return
		}
		text := string(run)
		if runColor == "" && !runBold {
			b.WriteString(text)
		} else {
			style := lipgloss.NewStyle()
			if runColor != "" {
				style = style.Foreground(lipgloss.Color(runColor))
			}
			if runBold {
				style = style.Bold(true)
			}
			b.WriteString(style.Render(text))
		}
		run = run[:0]
	}

	for col := 0; col < r.Width; col++ {
		c := r.At(col, row)
		if c.Color != runColor || c.Bold != runBold {
			flush()
			runColor = c.Color
			runBold = c.Bold
		}
		run = append(run, c.Rune)
	}
	flush()
	return b.String()
}
