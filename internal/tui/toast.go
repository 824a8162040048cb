package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/paiid/paiid/internal/bus"
)

// toastTTL is how long a toast stays on screen.
const toastTTL = 4 * time.Second

// toast is one visible notification.
type toast struct {
	level   bus.ToastLevel
	message string
	expires time.Time
}

// ToastStack holds the visible toasts, newest last.
type ToastStack struct {
	toasts []toast
	now    func() time.Time

	infoStyle    lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

// NewToastStack creates an empty ToastStack.
func NewToastStack() *ToastStack {
	return &ToastStack{
		now: time.Now,

		infoStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")),

		successStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")).
			Bold(true),

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// Push adds a toast.
func (s *ToastStack) Push(level bus.ToastLevel, message string) {
	s.toasts = append(s.toasts, toast{
		level:   level,
		message: message,
		expires: s.now().Add(toastTTL),
	})
}

// Expire drops toasts past their TTL. Called on each UI tick.
func (s *ToastStack) Expire() {
	now := s.now()
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.expires.After(now) {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
}

// Len returns the number of visible toasts.
func (s *ToastStack) Len() int {
	return len(s.toasts)
}

// View renders the visible toasts, one per line.
func (s *ToastStack) View() string {
	if len(s.toasts) == 0 {
		return ""
	}
	var out string
	for i, t := range s.toasts {
		var line string
		switch t.level {
		case bus.ToastSuccess:
			line = s.successStyle.Render("✓ " + t.message)
		case bus.ToastError:
			line = s.errorStyle.Render("✗ " + t.message)
		default:
			line = s.infoStyle.Render("ℹ " + t.message)
		}
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}
