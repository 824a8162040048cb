package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paiid/paiid/pkg/models"
)

// InfoPanel is the placeholder view for workflows whose features live
// entirely in the backend (morning routine, news, strategy builder).
type InfoPanel struct {
	workflow models.Workflow
	width    int

	titleStyle lipgloss.Style
	bodyStyle  lipgloss.Style
}

// NewInfoPanel creates an info view for the workflow.
func NewInfoPanel(w models.Workflow) *InfoPanel {
	return &InfoPanel{
		workflow: w,

		titleStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(w.Color)),
		bodyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}

// SetWidth sets the panel width.
func (p *InfoPanel) SetWidth(width int) {
	p.width = width
}

// Update implements Panel; the info view has no interactive state.
func (p *InfoPanel) Update(msg tea.Msg) tea.Cmd {
	return nil
}

// View renders the workflow summary.
func (p *InfoPanel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		p.titleStyle.Render(p.workflow.Icon+" "+p.workflow.FlatName()),
		"",
		p.bodyStyle.Render(p.workflow.Description),
	)
}
