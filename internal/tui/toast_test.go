package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/paiid/paiid/internal/bus"
)

func TestToastExpiry(t *testing.T) {
	now := time.Now()
	s := NewToastStack()
	s.now = func() time.Time { return now }

	s.Push(bus.ToastInfo, "first")
	s.Push(bus.ToastSuccess, "second")
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}

	now = now.Add(toastTTL - time.Second)
	s.Expire()
	if s.Len() != 2 {
		t.Errorf("len = %d before TTL, want 2", s.Len())
	}

	now = now.Add(2 * time.Second)
	s.Expire()
	if s.Len() != 0 {
		t.Errorf("len = %d after TTL, want 0", s.Len())
	}
}

func TestToastView(t *testing.T) {
	s := NewToastStack()
	if s.View() != "" {
		t.Error("empty stack should render nothing")
	}

	s.Push(bus.ToastError, "order rejected")
	view := s.View()
	if !strings.Contains(view, "order rejected") {
		t.Errorf("view = %q", view)
	}
}
