package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paiid/paiid/internal/ai"
)

// chatReplyMsg carries the assistant's reply.
type chatReplyMsg struct {
	reply string
	err   error
}

// ChatPanel is the AI recommendations conversation view.
type ChatPanel struct {
	session *ai.Session

	input   textinput.Model
	waiting bool
	errText string
	width   int
	height  int

	titleStyle     lipgloss.Style
	userStyle      lipgloss.Style
	assistantStyle lipgloss.Style
	errStyle       lipgloss.Style
}

// NewChatPanel creates the chat view over an AI session.
func NewChatPanel(session *ai.Session) *ChatPanel {
	input := textinput.New()
	input.Placeholder = "Ask about markets, positions, strategies..."
	input.CharLimit = 500
	input.Width = 50
	input.Focus()

	return &ChatPanel{
		session: session,
		input:   input,

		titleStyle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		userStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		assistantStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		errStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// SetSize sets the panel dimensions.
func (p *ChatPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = width - 4
}

// Update handles panel input.
func (p *ChatPanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case chatReplyMsg:
		p.waiting = false
		if msg.err != nil {
			p.errText = msg.err.Error()
		} else {
			p.errText = ""
		}
		return nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return p.send()
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *ChatPanel) send() tea.Cmd {
	if p.waiting {
		return nil
	}
	text := strings.TrimSpace(p.input.Value())
	if text == "" {
		return nil
	}

	p.input.SetValue("")
	p.waiting = true
	p.errText = ""

	session := p.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		reply, err := session.Send(ctx, text)
		return chatReplyMsg{reply: reply, err: err}
	}
}

// View renders the transcript and input line.
func (p *ChatPanel) View() string {
	rows := []string{p.titleStyle.Render("AI Recommendations"), ""}

	history := p.session.History()
	// Show the most recent turns that fit the panel.
	maxLines := p.height - 6
	if maxLines < 4 {
		maxLines = 4
	}
	start := 0
	if len(history) > maxLines {
		start = len(history) - maxLines
	}
	for _, m := range history[start:] {
		if m.Role == "user" {
			rows = append(rows, p.userStyle.Render("you> ")+m.Content)
		} else {
			rows = append(rows, p.assistantStyle.Render(m.Content))
		}
	}

	if p.waiting {
		rows = append(rows, p.assistantStyle.Render("thinking..."))
	}
	if p.errText != "" {
		rows = append(rows, p.errStyle.Render(p.errText))
	}

	rows = append(rows, "", p.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
