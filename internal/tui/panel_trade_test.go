package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/paiid/paiid/internal/bus"
	"github.com/paiid/paiid/pkg/models"
)

func TestTradeAcceptedOrderAnnouncedOnBus(t *testing.T) {
	b := bus.New()
	events, unsubscribe := b.Subscribe()
	defer unsubscribe()

	p := NewTradePanel(nil, models.ModePaper, b)
	order := models.Order{
		ID:       "a1b2c3d4e5",
		Symbol:   "SPY",
		Side:     models.SideBuy,
		Quantity: 10,
	}
	p.Update(orderResultMsg{order: order})

	select {
	case e := <-events:
		placed, ok := e.(bus.OrderPlacedEvent)
		if !ok {
			t.Fatalf("event = %T, want OrderPlacedEvent", e)
		}
		if placed.Order.Symbol != "SPY" {
			t.Errorf("order symbol = %q, want SPY", placed.Order.Symbol)
		}
	default:
		t.Fatal("accepted order published no event")
	}

	if !strings.Contains(p.View(), "accepted") {
		t.Error("panel does not show the accepted status")
	}
}

func TestTradeFailedOrderPublishesErrorToast(t *testing.T) {
	b := bus.New()
	events, unsubscribe := b.Subscribe()
	defer unsubscribe()

	p := NewTradePanel(nil, models.ModePaper, b)
	p.Update(orderResultMsg{err: errors.New("order rejected: insufficient funds")})

	select {
	case e := <-events:
		toast, ok := e.(bus.ToastEvent)
		if !ok {
			t.Fatalf("event = %T, want ToastEvent", e)
		}
		if toast.Level != bus.ToastError {
			t.Errorf("toast level = %q, want error", toast.Level)
		}
		if !strings.Contains(toast.Message, "insufficient funds") {
			t.Errorf("toast message = %q", toast.Message)
		}
	default:
		t.Fatal("failed order published no toast")
	}
}
