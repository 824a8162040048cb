package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/paiid/paiid/internal/marketdata"
	"github.com/paiid/paiid/internal/store"
	"github.com/paiid/paiid/pkg/models"
)

// watchlistQuotesMsg carries refreshed quotes for the active watchlist.
type watchlistQuotesMsg struct {
	quotes map[string]models.StockInfo
	err    error
}

// WatchlistPanel shows saved watchlists with live quotes, used by the
// market scanner workflow.
type WatchlistPanel struct {
	store   store.WatchlistStore
	quotes  *marketdata.Client
	nameInp textinput.Model

	lists    []models.Watchlist
	active   int
	quoteMap map[string]models.StockInfo
	adding   bool
	errText  string
	width    int

	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	rowStyle    lipgloss.Style
	gainStyle   lipgloss.Style
	lossStyle   lipgloss.Style
	errStyle    lipgloss.Style
}

// NewWatchlistPanel creates the watchlist view.
func NewWatchlistPanel(st store.WatchlistStore, quotes *marketdata.Client) *WatchlistPanel {
	nameInp := textinput.New()
	nameInp.Placeholder = "AAPL MSFT NVDA"
	nameInp.CharLimit = 120
	nameInp.Width = 40

	p := &WatchlistPanel{
		store:   st,
		quotes:  quotes,
		nameInp: nameInp,

		titleStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		headerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Underline(true),
		rowStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		gainStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		lossStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		errStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
	p.reload()
	return p
}

// SetWidth sets the panel width.
func (p *WatchlistPanel) SetWidth(width int) {
	p.width = width
}

// reload reads the watchlists from the store.
func (p *WatchlistPanel) reload() {
	lists, err := p.store.ListWatchlists()
	if err != nil {
		p.errText = err.Error()
		return
	}
	p.errText = ""
	p.lists = lists
	if p.active >= len(p.lists) {
		p.active = 0
	}
}

// Refresh fetches quotes for the active watchlist's symbols.
func (p *WatchlistPanel) Refresh() tea.Cmd {
	if len(p.lists) == 0 || p.quotes == nil {
		return nil
	}
	symbols := p.lists[p.active].Symbols
	client := p.quotes
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		quotes := make(map[string]models.StockInfo, len(symbols))
		for _, sym := range symbols {
			info, err := client.StockInfo(ctx, sym)
			if err != nil {
				return watchlistQuotesMsg{err: err}
			}
			quotes[sym] = info
		}
		return watchlistQuotesMsg{quotes: quotes}
	}
}

// Update handles panel input.
func (p *WatchlistPanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case watchlistQuotesMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
		} else {
			p.errText = ""
			p.quoteMap = msg.quotes
		}
		return nil

	case tea.KeyMsg:
		if p.adding {
			switch msg.String() {
			case "enter":
				p.saveNew()
				return p.Refresh()
			case "esc":
				p.adding = false
				p.nameInp.SetValue("")
				return nil
			}
			var cmd tea.Cmd
			p.nameInp, cmd = p.nameInp.Update(msg)
			return cmd
		}

		switch msg.String() {
		case "left", "h":
			if len(p.lists) > 0 {
				p.active = (p.active + len(p.lists) - 1) % len(p.lists)
				return p.Refresh()
			}
		case "right", "l":
			if len(p.lists) > 0 {
				p.active = (p.active + 1) % len(p.lists)
				return p.Refresh()
			}
		case "n":
			p.adding = true
			p.nameInp.Focus()
		case "d":
			p.deleteActive()
		case "r":
			return p.Refresh()
		}
	}
	return nil
}

// saveNew creates a watchlist from the space-separated symbol input.
func (p *WatchlistPanel) saveNew() {
	fields := strings.Fields(strings.ToUpper(p.nameInp.Value()))
	p.adding = false
	p.nameInp.SetValue("")
	if len(fields) == 0 {
		return
	}

	w := models.Watchlist{
		ID:        uuid.New().String(),
		Name:      fmt.Sprintf("Scan %d", len(p.lists)+1),
		Symbols:   fields,
		CreatedAt: time.Now(),
	}
	if err := p.store.PutWatchlist(w); err != nil {
		p.errText = err.Error()
		return
	}
	p.reload()
	p.active = len(p.lists) - 1
}

func (p *WatchlistPanel) deleteActive() {
	if len(p.lists) == 0 {
		return
	}
	if err := p.store.DeleteWatchlist(p.lists[p.active].ID); err != nil {
		p.errText = err.Error()
		return
	}
	p.reload()
}

// View renders the active watchlist.
func (p *WatchlistPanel) View() string {
	rows := []string{p.titleStyle.Render("Market Scanner"), ""}

	if p.adding {
		rows = append(rows, "Symbols: "+p.nameInp.View(), "", "enter save │ esc cancel")
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	if len(p.lists) == 0 {
		rows = append(rows, "No watchlists. Press n to create one.")
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	active := p.lists[p.active]
	rows = append(rows, p.headerStyle.Render(fmt.Sprintf("%s (%d/%d)", active.Name, p.active+1, len(p.lists))), "")

	for _, sym := range active.Symbols {
		info, ok := p.quoteMap[sym]
		if !ok {
			rows = append(rows, p.rowStyle.Render(fmt.Sprintf("%-7s %10s", sym, "--")))
			continue
		}
		chStyle := p.gainStyle
		if info.ChangePercent < 0 {
			chStyle = p.lossStyle
		}
		rows = append(rows, p.rowStyle.Render(fmt.Sprintf("%-7s %10.2f ", sym, info.Last))+chStyle.Render(fmt.Sprintf("%+6.2f%%", info.ChangePercent)))
	}

	if p.errText != "" {
		rows = append(rows, "", p.errStyle.Render(p.errText))
	}
	rows = append(rows, "", "←/→ lists │ n new │ d delete │ r refresh")

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
