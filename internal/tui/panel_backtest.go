package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paiid/paiid/internal/backtest"
	"github.com/paiid/paiid/internal/bus"
)

// backtestResultMsg carries a completed backtest run.
type backtestResultMsg struct {
	result backtest.Result
	err    error
}

// strategies cycled by the form, in display order.
var strategyOrder = []string{"rsi_reversal", "macd_cross", "bollinger_band", "buy_hold"}

// BacktestPanel is the backtest form and results view.
type BacktestPanel struct {
	client *backtest.Client
	bus    *bus.Bus

	symbol  textinput.Model
	start   textinput.Model
	end     textinput.Model
	capital textinput.Model

	strategyIdx int
	focus       int
	running     bool
	status      string
	result      *backtest.Result
	width       int

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
	goodStyle  lipgloss.Style
	badStyle   lipgloss.Style
}

// NewBacktestPanel creates the backtest form.
func NewBacktestPanel(client *backtest.Client, b *bus.Bus) *BacktestPanel {
	symbol := textinput.New()
	symbol.Placeholder = "SPY"
	symbol.CharLimit = 7
	symbol.Width = 10
	symbol.Focus()

	start := textinput.New()
	start.Placeholder = "2024-01-02"
	start.CharLimit = 10
	start.Width = 12

	end := textinput.New()
	end.Placeholder = "2024-12-31"
	end.CharLimit = 10
	end.Width = 12

	capital := textinput.New()
	capital.Placeholder = "10000"
	capital.CharLimit = 12
	capital.Width = 12

	return &BacktestPanel{
		client:  client,
		bus:     b,
		symbol:  symbol,
		start:   start,
		end:     end,
		capital: capital,

		titleStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		labelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		valueStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		goodStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		badStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// SetWidth sets the panel width.
func (p *BacktestPanel) SetWidth(width int) {
	p.width = width
}

const backtestFieldCount = 4

// Update handles panel input.
func (p *BacktestPanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case backtestResultMsg:
		p.running = false
		if msg.err != nil {
			p.status = msg.err.Error()
			p.result = nil
			if p.bus != nil {
				p.bus.Publish(bus.ToastEvent{Level: bus.ToastError, Message: "backtest failed: " + msg.err.Error()})
			}
		} else {
			p.status = ""
			r := msg.result
			p.result = &r
			if p.bus != nil {
				p.bus.Publish(bus.ToastEvent{
					Level:   bus.ToastSuccess,
					Message: fmt.Sprintf("backtest complete: %s %+.2f%%", r.Symbol, r.TotalReturnPct),
				})
			}
		}
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			p.setFocus((p.focus + 1) % backtestFieldCount)
			return nil
		case "shift+tab", "up":
			p.setFocus((p.focus + backtestFieldCount - 1) % backtestFieldCount)
			return nil
		case "ctrl+s":
			p.strategyIdx = (p.strategyIdx + 1) % len(strategyOrder)
			return nil
		case "enter":
			return p.run()
		}
	}

	var cmd tea.Cmd
	switch p.focus {
	case 0:
		p.symbol, cmd = p.symbol.Update(msg)
	case 1:
		p.start, cmd = p.start.Update(msg)
	case 2:
		p.end, cmd = p.end.Update(msg)
	case 3:
		p.capital, cmd = p.capital.Update(msg)
	}
	return cmd
}

func (p *BacktestPanel) setFocus(i int) {
	p.focus = i
	p.symbol.Blur()
	p.start.Blur()
	p.end.Blur()
	p.capital.Blur()
	switch i {
	case 0:
		p.symbol.Focus()
	case 1:
		p.start.Focus()
	case 2:
		p.end.Focus()
	case 3:
		p.capital.Focus()
	}
}

// run validates and launches the backtest. Invalid requests show inline
// without reaching the backend.
func (p *BacktestPanel) run() tea.Cmd {
	if p.running {
		return nil
	}

	req := backtest.Request{
		Symbol:         p.symbol.Value(),
		Strategy:       strategyOrder[p.strategyIdx],
		StartDate:      p.start.Value(),
		EndDate:        p.end.Value(),
		InitialCapital: p.capital.Value(),
	}
	if _, _, err := req.Validate(); err != nil {
		p.status = err.Error()
		return nil
	}

	p.running = true
	p.status = "running..."

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		result, err := p.client.Run(ctx, req)
		return backtestResultMsg{result: result, err: err}
	}
}

// View renders the form and, once available, the result summary.
func (p *BacktestPanel) View() string {
	rows := []string{
		p.titleStyle.Render("Backtesting"),
		"",
		p.labelStyle.Render("Symbol       ") + p.symbol.View(),
		p.labelStyle.Render("Strategy ^s  ") + p.valueStyle.Render(strategyOrder[p.strategyIdx]),
		p.labelStyle.Render("Start        ") + p.start.View(),
		p.labelStyle.Render("End          ") + p.end.View(),
		p.labelStyle.Render("Capital      ") + p.capital.View(),
	}

	if p.status != "" {
		rows = append(rows, "", p.badStyle.Render(p.status))
	}

	if p.result != nil {
		r := p.result
		returnStyle := p.goodStyle
		if r.TotalReturnPct < 0 {
			returnStyle = p.badStyle
		}
		ind := r.Indicators
		rows = append(rows,
			"",
			p.titleStyle.Render(fmt.Sprintf("%s / %s", r.Symbol, r.Strategy)),
			p.labelStyle.Render("Total return  ")+returnStyle.Render(fmt.Sprintf("%+.2f%%", r.TotalReturnPct)),
			p.labelStyle.Render("Max drawdown  ")+p.valueStyle.Render(fmt.Sprintf("%.2f%%", r.MaxDrawdownPct)),
			p.labelStyle.Render("Win rate      ")+p.valueStyle.Render(fmt.Sprintf("%.1f%%", r.WinRatePct)),
			p.labelStyle.Render("Trades        ")+p.valueStyle.Render(fmt.Sprintf("%d", r.TradeCount)),
			"",
			p.labelStyle.Render("RSI           ")+p.valueStyle.Render(fmt.Sprintf("%5.1f  ", ind.RSI))+p.signalBadge(backtest.RSISignal(ind.RSI)),
			p.labelStyle.Render("MACD hist     ")+p.valueStyle.Render(fmt.Sprintf("%5.2f  ", ind.MACDHistogram))+p.signalBadge(backtest.MACDSignal(ind.MACDHistogram)),
			p.labelStyle.Render("%B            ")+p.valueStyle.Render(fmt.Sprintf("%5.2f  ", ind.PercentB))+p.signalBadge(backtest.BollingerSignal(ind.PercentB)),
		)
		if spark := sparkline(r.EquityCurve, equitysparkWidth); spark != "" {
			rows = append(rows, "", p.labelStyle.Render("Equity        ")+p.valueStyle.Render(spark))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// signalBadge renders an indicator classification colored by direction.
func (p *BacktestPanel) signalBadge(s backtest.Signal) string {
	switch s {
	case backtest.SignalBuy:
		return p.goodStyle.Render(string(s))
	case backtest.SignalSell:
		return p.badStyle.Render(string(s))
	default:
		return p.labelStyle.Render(string(s))
	}
}

// equitysparkWidth caps the equity sparkline cell width.
const equitysparkWidth = 32

const equitysparkRunes = "▁▂▃▄▅▆▇█"

// sparkline renders the equity curve as one row of block runes, scaled
// between the curve's minimum and maximum. Curves longer than width are
// downsampled.
func sparkline(points []backtest.EquityPoint, width int) string {
	if len(points) == 0 || width <= 0 {
		return ""
	}

	lo, hi := points[0].Equity, points[0].Equity
	for _, pt := range points[1:] {
		if pt.Equity < lo {
			lo = pt.Equity
		}
		if pt.Equity > hi {
			hi = pt.Equity
		}
	}

	runes := []rune(equitysparkRunes)
	n := len(points)
	if n > width {
		n = width
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		pt := points[i*len(points)/n]
		level := 0
		if hi > lo {
			level = int((pt.Equity - lo) / (hi - lo) * float64(len(runes)-1))
		}
		b.WriteRune(runes[level])
	}
	return b.String()
}
