package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paiid/paiid/internal/bus"
	"github.com/paiid/paiid/internal/store"
	"github.com/paiid/paiid/pkg/models"
)

// riskOrder is the cycle order for the risk tolerance setting.
var riskOrder = []models.RiskTolerance{
	models.RiskConservative,
	models.RiskModerate,
	models.RiskAggressive,
}

// SettingsPanel edits the user profile.
type SettingsPanel struct {
	store store.ProfileStore
	bus   *bus.Bus

	profile models.Profile
	name    textinput.Model
	editing bool
	status  string
	failed  bool
	width   int

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
	okStyle    lipgloss.Style
	errStyle   lipgloss.Style
}

// NewSettingsPanel creates the settings view over the profile store.
func NewSettingsPanel(st store.ProfileStore, b *bus.Bus) *SettingsPanel {
	name := textinput.New()
	name.CharLimit = 40
	name.Width = 24

	p := &SettingsPanel{
		store: st,
		bus:   b,
		name:  name,

		titleStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		labelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		valueStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		okStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		errStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}

	profile, err := st.GetProfile()
	if err != nil {
		profile = models.DefaultProfile()
		p.status = err.Error()
		p.failed = true
	}
	p.profile = profile
	p.name.SetValue(profile.DisplayName)
	return p
}

// Profile returns the current profile.
func (p *SettingsPanel) Profile() models.Profile {
	return p.profile
}

// SetWidth sets the panel width.
func (p *SettingsPanel) SetWidth(width int) {
	p.width = width
}

// Update handles panel input.
func (p *SettingsPanel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if p.editing {
		switch keyMsg.String() {
		case "enter", "esc":
			p.editing = false
			p.name.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.name, cmd = p.name.Update(keyMsg)
		return cmd
	}

	switch keyMsg.String() {
	case "n":
		p.editing = true
		p.name.Focus()
	case "t":
		p.cycleRisk()
	case "m":
		p.toggleMode()
	case "enter":
		p.save()
	}
	return nil
}

func (p *SettingsPanel) cycleRisk() {
	for i, r := range riskOrder {
		if r == p.profile.RiskTolerance {
			p.profile.RiskTolerance = riskOrder[(i+1)%len(riskOrder)]
			return
		}
	}
	p.profile.RiskTolerance = models.RiskModerate
}

func (p *SettingsPanel) toggleMode() {
	if p.profile.TradingMode == models.ModePaper {
		p.profile.TradingMode = models.ModeLive
	} else {
		p.profile.TradingMode = models.ModePaper
	}
}

// save persists the profile and announces the change on the bus.
func (p *SettingsPanel) save() {
	p.profile.DisplayName = p.name.Value()
	p.profile.SetupComplete = true
	p.profile.UpdatedAt = time.Now()

	if err := p.store.SetProfile(p.profile); err != nil {
		p.status = err.Error()
		p.failed = true
		return
	}

	p.status = "profile saved"
	p.failed = false
	if p.bus != nil {
		p.bus.Publish(bus.ProfileUpdatedEvent{Profile: p.profile})
	}
}

// View renders the settings form.
func (p *SettingsPanel) View() string {
	nameView := p.valueStyle.Render(p.name.Value())
	if p.editing {
		nameView = p.name.View()
	}

	rows := []string{
		p.titleStyle.Render("Settings"),
		"",
		p.labelStyle.Render("Name n       ") + nameView,
		p.labelStyle.Render("Risk t       ") + p.valueStyle.Render(string(p.profile.RiskTolerance)),
		p.labelStyle.Render("Mode m       ") + p.valueStyle.Render(string(p.profile.TradingMode)),
		"",
		p.labelStyle.Render("enter save"),
	}

	if p.status != "" {
		style := p.okStyle
		if p.failed {
			style = p.errStyle
		}
		rows = append(rows, "", style.Render(p.status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
