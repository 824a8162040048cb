package trade

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/paiid/paiid/pkg/models"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("component", "test")
}

func TestSubmitPaperOrder(t *testing.T) {
	var received models.Order
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/proxy/api/trade/paper" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode order: %v", err)
		}
		w.Write([]byte(`{"status": "accepted"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	order, err := c.Submit(context.Background(), validTicket())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if order.ID == "" {
		t.Error("expected a generated order ID")
	}
	if received.ID != order.ID {
		t.Errorf("backend received ID %q, want %q", received.ID, order.ID)
	}
	if received.Symbol != "AAPL" {
		t.Errorf("backend received symbol %q", received.Symbol)
	}
	if order.SubmittedAt.IsZero() {
		t.Error("expected SubmittedAt to be set")
	}
}

func TestSubmitLiveOrderRoute(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"status": "accepted"}`))
	}))
	defer srv.Close()

	tk := validTicket()
	tk.Mode = models.ModeLive

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	if _, err := c.Submit(context.Background(), tk); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if path != "/api/proxy/api/trade/execute" {
		t.Errorf("live order routed to %q", path)
	}
}

func TestSubmitInvalidTicketSkipsNetwork(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	tk := validTicket()
	tk.Quantity = "0"

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	if _, err := c.Submit(context.Background(), tk); err == nil {
		t.Error("expected validation error")
	}
	if hits != 0 {
		t.Errorf("backend hit %d times for invalid ticket, want 0", hits)
	}
}

func TestSubmitRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"status": "rejected", "message": "insufficient buying power"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	_, err := c.Submit(context.Background(), validTicket())
	if err == nil {
		t.Fatal("expected rejection error")
	}
	if got := err.Error(); got != "order rejected: insufficient buying power" {
		t.Errorf("error = %q", got)
	}
}

func TestPositions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/proxy/api/portfolio/positions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`[{"symbol": "AAPL", "quantity": 10, "avg_price": 220.5, "last": 231.4, "unrealized_pnl": 109}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	positions, err := c.Positions(context.Background())
	if err != nil {
		t.Fatalf("Positions failed: %v", err)
	}
	if len(positions) != 1 || positions[0].Symbol != "AAPL" {
		t.Errorf("positions = %+v", positions)
	}
}
