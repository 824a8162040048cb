package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paiid/paiid/internal/bus"
	"github.com/paiid/paiid/internal/trade"
	"github.com/paiid/paiid/pkg/models"
)

// orderResultMsg carries the outcome of an order submission.
type orderResultMsg struct {
	order models.Order
	err   error
}

// TradePanel is the order ticket form.
type TradePanel struct {
	client *trade.Client
	bus    *bus.Bus

	symbol   textinput.Model
	quantity textinput.Model
	limit    textinput.Model
	side     models.OrderSide
	otype    models.OrderType
	mode     models.TradingMode

	focus      int
	submitting bool
	status     string
	statusOK   bool
	width      int

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
	okStyle    lipgloss.Style
	errStyle   lipgloss.Style
}

// NewTradePanel creates the order ticket form.
func NewTradePanel(client *trade.Client, mode models.TradingMode, b *bus.Bus) *TradePanel {
	symbol := textinput.New()
	symbol.Placeholder = "SPY"
	symbol.CharLimit = 7
	symbol.Width = 10
	symbol.Focus()

	quantity := textinput.New()
	quantity.Placeholder = "10"
	quantity.CharLimit = 10
	quantity.Width = 10

	limit := textinput.New()
	limit.Placeholder = "0.00"
	limit.CharLimit = 12
	limit.Width = 12

	if mode == "" {
		mode = models.ModePaper
	}

	return &TradePanel{
		client:   client,
		bus:      b,
		symbol:   symbol,
		quantity: quantity,
		limit:    limit,
		side:     models.SideBuy,
		otype:    models.OrderMarket,
		mode:     mode,

		titleStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		labelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		valueStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		okStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		errStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// SetMode updates the live/paper routing from the profile.
func (p *TradePanel) SetMode(mode models.TradingMode) {
	p.mode = mode
}

// SetWidth sets the panel width.
func (p *TradePanel) SetWidth(width int) {
	p.width = width
}

// fieldCount is the number of focusable inputs: symbol, quantity, limit.
const tradeFieldCount = 3

// Update handles panel input.
func (p *TradePanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case orderResultMsg:
		p.submitting = false
		if msg.err != nil {
			p.status = msg.err.Error()
			p.statusOK = false
			if p.bus != nil {
				p.bus.Publish(bus.ToastEvent{Level: bus.ToastError, Message: "order failed: " + msg.err.Error()})
			}
		} else {
			p.status = fmt.Sprintf("%s %s x%.0f accepted (%s)", msg.order.Side, msg.order.Symbol, msg.order.Quantity, msg.order.ID[:8])
			p.statusOK = true
			if p.bus != nil {
				p.bus.Publish(bus.OrderPlacedEvent{Order: msg.order})
			}
		}
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			p.setFocus((p.focus + 1) % tradeFieldCount)
			return nil
		case "shift+tab", "up":
			p.setFocus((p.focus + tradeFieldCount - 1) % tradeFieldCount)
			return nil
		case "ctrl+s":
			p.toggleSide()
			return nil
		case "ctrl+t":
			p.toggleType()
			return nil
		case "enter":
			return p.submit()
		}
	}

	var cmd tea.Cmd
	switch p.focus {
	case 0:
		p.symbol, cmd = p.symbol.Update(msg)
	case 1:
		p.quantity, cmd = p.quantity.Update(msg)
	case 2:
		p.limit, cmd = p.limit.Update(msg)
	}
	return cmd
}

func (p *TradePanel) setFocus(i int) {
	p.focus = i
	p.symbol.Blur()
	p.quantity.Blur()
	p.limit.Blur()
	switch i {
	case 0:
		p.symbol.Focus()
	case 1:
		p.quantity.Focus()
	case 2:
		p.limit.Focus()
	}
}

func (p *TradePanel) toggleSide() {
	if p.side == models.SideBuy {
		p.side = models.SideSell
	} else {
		p.side = models.SideBuy
	}
}

func (p *TradePanel) toggleType() {
	if p.otype == models.OrderMarket {
		p.otype = models.OrderLimit
	} else {
		p.otype = models.OrderMarket
	}
}

// submit validates and sends the ticket. Validation errors show inline
// without a network round trip.
func (p *TradePanel) submit() tea.Cmd {
	if p.submitting {
		return nil
	}

	ticket := trade.Ticket{
		Symbol:     p.symbol.Value(),
		Side:       p.side,
		Type:       p.otype,
		Quantity:   p.quantity.Value(),
		LimitPrice: p.limit.Value(),
		Mode:       p.mode,
	}
	if _, err := ticket.Validate(); err != nil {
		p.status = err.Error()
		p.statusOK = false
		return nil
	}

	p.submitting = true
	p.status = "submitting..."
	p.statusOK = true

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		order, err := p.client.Submit(ctx, ticket)
		return orderResultMsg{order: order, err: err}
	}
}

// View renders the ticket form.
func (p *TradePanel) View() string {
	rows := []string{
		p.titleStyle.Render("Execute Trade"),
		"",
		p.labelStyle.Render("Symbol    ") + p.symbol.View(),
		p.labelStyle.Render("Quantity  ") + p.quantity.View(),
	}

	if p.otype == models.OrderLimit {
		rows = append(rows, p.labelStyle.Render("Limit     ")+p.limit.View())
	}

	rows = append(rows,
		"",
		p.labelStyle.Render("Side ^s   ")+p.valueStyle.Render(string(p.side)),
		p.labelStyle.Render("Type ^t   ")+p.valueStyle.Render(string(p.otype)),
		p.labelStyle.Render("Mode      ")+p.valueStyle.Render(string(p.mode)),
	)

	if p.status != "" {
		style := p.errStyle
		if p.statusOK {
			style = p.okStyle
		}
		rows = append(rows, "", style.Render(p.status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
