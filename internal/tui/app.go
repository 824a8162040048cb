// Package tui implements the PaiiD terminal dashboard: the radial
// workflow menu with its live market hub, and the per-workflow detail
// panels.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/paiid/paiid/internal/ai"
	"github.com/paiid/paiid/internal/backtest"
	"github.com/paiid/paiid/internal/bus"
	"github.com/paiid/paiid/internal/config"
	"github.com/paiid/paiid/internal/logging"
	"github.com/paiid/paiid/internal/marketdata"
	"github.com/paiid/paiid/internal/store"
	"github.com/paiid/paiid/internal/trade"
	"github.com/paiid/paiid/internal/workflow"
	"github.com/paiid/paiid/pkg/models"
)

// Panel is a workflow detail view.
type Panel interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Deps bundles the services the dashboard is built over.
type Deps struct {
	Config   *config.Config
	Registry *workflow.Registry
	Bus      *bus.Bus
	Market   *marketdata.Client
	Poller   *marketdata.Poller
	Trade    *trade.Client
	Backtest *backtest.Client
	Chat     *ai.Session

	// Persistence ports; the SQLite store satisfies both.
	Profiles   store.ProfileStore
	Watchlists store.WatchlistStore
}

// busEventMsg wraps a bus event for the update loop.
type busEventMsg struct {
	event bus.Event
	ok    bool
}

// tickMsg drives toast expiry and periodic redraw.
type tickMsg time.Time

// monitorMsg drives periodic refresh of open position views.
type monitorMsg time.Time

// App is the root bubbletea model. It owns the workflow selection; the
// menu only reports clicks and mirrors the owner's choice.
type App struct {
	deps Deps
	log  *logrus.Entry

	header *Header
	footer *Footer
	menu   *Menu
	toasts *ToastStack
	layout *LayoutManager

	selectedID string
	panels     map[string]Panel

	// Cadence overrides from a config hot reload; zero means use the
	// startup config.
	refreshRate     time.Duration
	monitorInterval time.Duration

	events      <-chan bus.Event
	unsubscribe func()

	menuOriginCol int
	menuOriginRow int
	quitting      bool
}

// NewApp creates the dashboard model.
func NewApp(deps Deps) *App {
	workflows := deps.Registry.List()

	a := &App{
		deps:   deps,
		log:    logging.NewLogger("tui"),
		header: NewHeader(),
		footer: NewFooter(),
		menu:   NewMenu(workflows),
		toasts: NewToastStack(),
		layout: NewLayoutManager(80, 24),

		panels: make(map[string]Panel),
	}

	// Selection is owned here: the machine reports clicks, the app
	// decides, and the menu mirrors the result.
	a.menu.Machine().OnSelect(a.setSelected)

	a.events, a.unsubscribe = deps.Bus.Subscribe()
	return a
}

// setSelected is the selection callback: "" (hub) returns to the overview.
func (a *App) setSelected(id string) {
	a.selectedID = id
	a.menu.SetSelected(id)
	a.footer.ClearMessage()
	if id != "" {
		a.log.WithField("workflow", id).Debug("workflow selected")
	}
}

// Init starts the event pump and tick cadences.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.waitForEvent(), a.tick(), a.monitorTick())
}

// waitForEvent blocks on the bus subscription.
func (a *App) waitForEvent() tea.Cmd {
	events := a.events
	return func() tea.Msg {
		e, ok := <-events
		return busEventMsg{event: e, ok: ok}
	}
}

func (a *App) tick() tea.Cmd {
	interval := 250 * time.Millisecond
	if a.deps.Config != nil && a.deps.Config.TUI.RefreshRate > 0 {
		interval = a.deps.Config.TUI.RefreshRate
	}
	if a.refreshRate > 0 {
		interval = a.refreshRate
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) monitorTick() tea.Cmd {
	interval := 30 * time.Second
	if a.deps.Config != nil && a.deps.Config.Poll.MonitorInterval > 0 {
		interval = a.deps.Config.Poll.MonitorInterval
	}
	if a.monitorInterval > 0 {
		interval = a.monitorInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return monitorMsg(t)
	})
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.layout.SetSize(msg.Width, msg.Height)
		a.applyLayout()
		return a, nil

	case tickMsg:
		a.toasts.Expire()
		return a, a.tick()

	case monitorMsg:
		cmds := []tea.Cmd{a.monitorTick()}
		for _, p := range a.panels {
			if cmd := a.entryCmd(p); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return a, tea.Batch(cmds...)

	case busEventMsg:
		if !msg.ok {
			return a, nil
		}
		a.handleEvent(msg.event)
		return a, a.waitForEvent()

	case tea.MouseMsg:
		if a.selectedID == "" {
			before := a.selectedID
			a.menu.HandleMouse(msg, a.menuOriginCol, a.menuOriginRow)
			if a.selectedID != before && a.selectedID != "" {
				return a, a.openPanel(a.selectedID)
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Async panel results are routed to every open panel; each panel
	// ignores messages that are not its own.
	var cmds []tea.Cmd
	for _, p := range a.panels {
		if cmd := p.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		a.quitting = true
		a.unsubscribe()
		return a, tea.Quit
	case "esc":
		if a.selectedID != "" {
			a.setSelected("")
			return a, nil
		}
		a.menu.HandleKey(msg)
		return a, nil
	}

	if a.selectedID == "" {
		if msg.String() == "q" {
			a.quitting = true
			a.unsubscribe()
			return a, tea.Quit
		}
		before := a.selectedID
		a.menu.HandleKey(msg)
		if a.selectedID != before && a.selectedID != "" {
			return a, a.openPanel(a.selectedID)
		}
		return a, nil
	}

	panel := a.panels[a.selectedID]
	if panel == nil {
		return a, nil
	}
	return a, panel.Update(msg)
}

// openPanel lazily builds the panel for a workflow and returns its
// entry command (initial data fetch, if any).
func (a *App) openPanel(id string) tea.Cmd {
	if p, ok := a.panels[id]; ok {
		return a.entryCmd(p)
	}

	var p Panel
	switch id {
	case "execute-trade":
		p = NewTradePanel(a.deps.Trade, a.currentMode(), a.deps.Bus)
	case "backtesting":
		p = NewBacktestPanel(a.deps.Backtest, a.deps.Bus)
	case "ai-recommendations":
		p = NewChatPanel(a.deps.Chat)
	case "active-positions", "pnl-dashboard":
		p = NewPositionsPanel(a.deps.Trade)
	case "market-scanner":
		if a.deps.Watchlists != nil {
			p = NewWatchlistPanel(a.deps.Watchlists, a.deps.Market)
		}
	case "settings":
		if a.deps.Profiles != nil {
			p = NewSettingsPanel(a.deps.Profiles, a.deps.Bus)
		}
	default:
		if w, ok := a.deps.Registry.Get(id); ok {
			p = NewInfoPanel(w)
		}
	}
	if p == nil {
		return nil
	}
	a.panels[id] = p
	a.applyLayout()
	return a.entryCmd(p)
}

func (a *App) entryCmd(p Panel) tea.Cmd {
	switch panel := p.(type) {
	case *PositionsPanel:
		return panel.Refresh()
	case *WatchlistPanel:
		return panel.Refresh()
	}
	return nil
}

func (a *App) currentMode() models.TradingMode {
	if a.deps.Profiles != nil {
		if profile, err := a.deps.Profiles.GetProfile(); err == nil {
			return profile.TradingMode
		}
	}
	return models.ModePaper
}

// handleEvent applies a bus event to the UI.
func (a *App) handleEvent(e bus.Event) {
	switch e := e.(type) {
	case bus.SnapshotEvent:
		a.menu.SetSnapshot(e.Snapshot)
	case bus.ToastEvent:
		a.toasts.Push(e.Level, e.Message)
		a.footer.SetMessage(e.Message, e.Level != bus.ToastError)
	case bus.ProfileUpdatedEvent:
		if p, ok := a.panels["execute-trade"].(*TradePanel); ok {
			p.SetMode(e.Profile.TradingMode)
		}
		a.toasts.Push(bus.ToastSuccess, "profile updated")
	case bus.OrderPlacedEvent:
		a.toasts.Push(bus.ToastSuccess, "order placed: "+e.Order.Symbol)
		a.footer.SetMessage("order placed: "+e.Order.Symbol, true)
	case bus.ConfigReloadedEvent:
		a.refreshRate = e.RefreshRate
		a.monitorInterval = e.MonitorInterval
	}
}

// applyLayout pushes the memoized dimensions into the components.
func (a *App) applyLayout() {
	dims := a.layout.Calculate()

	a.header.SetWidth(a.layout.TotalWidth())
	a.footer.SetWidth(a.layout.TotalWidth())
	a.menu.SetSize(dims.MenuWidth, dims.MenuHeight)

	a.menuOriginCol = (a.layout.TotalWidth() - dims.MenuWidth) / 2
	if !dims.Compact && a.selectedID != "" {
		a.menuOriginCol = 0
	}
	a.menuOriginRow = a.layout.HeaderHeight()

	panelWidth := dims.PanelWidth
	if dims.Compact {
		panelWidth = a.layout.TotalWidth()
	}
	for _, p := range a.panels {
		switch panel := p.(type) {
		case *TradePanel:
			panel.SetWidth(panelWidth)
		case *BacktestPanel:
			panel.SetWidth(panelWidth)
		case *ChatPanel:
			panel.SetSize(panelWidth, dims.ContentHeight)
		case *PositionsPanel:
			panel.SetWidth(panelWidth)
		case *WatchlistPanel:
			panel.SetWidth(panelWidth)
		case *SettingsPanel:
			panel.SetWidth(panelWidth)
		case *InfoPanel:
			panel.SetWidth(panelWidth)
		}
	}
}

// View renders the dashboard.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	dims := a.layout.Calculate()

	var body string
	switch {
	case a.selectedID == "":
		body = lipgloss.NewStyle().
			Width(a.layout.TotalWidth()).
			Align(lipgloss.Center).
			Render(a.menu.View())

	case dims.Compact:
		// Compact: the panel takes over the whole content area.
		body = a.panelView()

	default:
		menu := a.menu.View()
		panel := lipgloss.NewStyle().
			Width(dims.PanelWidth - 2).
			PaddingLeft(2).
			Render(a.panelView())
		body = lipgloss.JoinHorizontal(lipgloss.Top, menu, panel)
	}

	sections := []string{a.header.View(), body}
	if t := a.toasts.View(); t != "" {
		sections = append(sections, t)
	}
	sections = append(sections, a.footer.View(a.selectedID))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) panelView() string {
	p := a.panels[a.selectedID]
	if p == nil {
		return ""
	}
	return p.View()
}
