package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paiid/paiid/internal/trade"
	"github.com/paiid/paiid/pkg/models"
)

// positionsMsg carries fetched positions.
type positionsMsg struct {
	positions []models.Position
	err       error
}

// PositionsPanel lists open positions with unrealized P&L.
type PositionsPanel struct {
	client *trade.Client

	positions []models.Position
	loading   bool
	errText   string
	width     int

	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	rowStyle    lipgloss.Style
	gainStyle   lipgloss.Style
	lossStyle   lipgloss.Style
	errStyle    lipgloss.Style
}

// NewPositionsPanel creates the positions view.
func NewPositionsPanel(client *trade.Client) *PositionsPanel {
	return &PositionsPanel{
		client: client,

		titleStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		headerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Underline(true),
		rowStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		gainStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		lossStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		errStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// SetWidth sets the panel width.
func (p *PositionsPanel) SetWidth(width int) {
	p.width = width
}

// Refresh fetches positions from the backend.
func (p *PositionsPanel) Refresh() tea.Cmd {
	if p.loading {
		return nil
	}
	p.loading = true
	client := p.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		positions, err := client.Positions(ctx)
		return positionsMsg{positions: positions, err: err}
	}
}

// Update handles panel input.
func (p *PositionsPanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case positionsMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
		} else {
			p.errText = ""
			p.positions = msg.positions
		}
		return nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			return p.Refresh()
		}
	}
	return nil
}

// View renders the positions table.
func (p *PositionsPanel) View() string {
	rows := []string{p.titleStyle.Render("Active Positions"), ""}

	if p.loading {
		rows = append(rows, "loading...")
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}
	if p.errText != "" {
		rows = append(rows, p.errStyle.Render(p.errText))
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}
	if len(p.positions) == 0 {
		rows = append(rows, "No open positions. Press r to refresh.")
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	rows = append(rows, p.headerStyle.Render(fmt.Sprintf("%-7s %9s %10s %10s %11s", "SYMBOL", "QTY", "AVG", "LAST", "P&L")))

	var total float64
	for _, pos := range p.positions {
		pnlStyle := p.gainStyle
		if pos.UnrealizedPnL < 0 {
			pnlStyle = p.lossStyle
		}
		line := fmt.Sprintf("%-7s %9.1f %10.2f %10.2f ", pos.Symbol, pos.Quantity, pos.AvgPrice, pos.Last)
		rows = append(rows, p.rowStyle.Render(line)+pnlStyle.Render(fmt.Sprintf("%+11.2f", pos.UnrealizedPnL)))
		total += pos.UnrealizedPnL
	}

	totalStyle := p.gainStyle
	if total < 0 {
		totalStyle = p.lossStyle
	}
	rows = append(rows, "", p.headerStyle.Render("Total ")+totalStyle.Render(fmt.Sprintf("%+.2f", total)))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
