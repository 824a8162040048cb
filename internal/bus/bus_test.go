package bus

import (
	"testing"
	"time"

	"github.com/paiid/paiid/pkg/models"
)

func TestPublishSubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe()
	defer unsub()

	b.Publish(ToastEvent{Level: ToastSuccess, Message: "order filled"})

	select {
	case e := <-ch:
		toast, ok := e.(ToastEvent)
		if !ok {
			t.Fatalf("expected ToastEvent, got %T", e)
		}
		if toast.Level != ToastSuccess || toast.Message != "order filled" {
			t.Errorf("unexpected toast: %+v", toast)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestMultipleSubscribers(t *testing.T) {
	b := New()
	ch1, unsub1 := b.Subscribe()
	ch2, unsub2 := b.Subscribe()
	defer unsub1()
	defer unsub2()

	b.Publish(SnapshotEvent{Snapshot: models.MarketSnapshot{Dow: models.IndexQuote{Last: 44910}}})

	for i, ch := range []<-chan Event{ch1, ch2} {
		select {
		case e := <-ch:
			snap, ok := e.(SnapshotEvent)
			if !ok {
				t.Fatalf("subscriber %d: expected SnapshotEvent, got %T", i, e)
			}
			if snap.Snapshot.Dow.Last != 44910 {
				t.Errorf("subscriber %d: unexpected snapshot %+v", i, snap)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d: timed out", i)
		}
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe()

	unsub()

	if _, open := <-ch; open {
		t.Error("channel must be closed after unsubscribe")
	}

	// Publishing after unsubscribe must not panic.
	b.Publish(ToastEvent{Level: ToastInfo, Message: "ignored"})

	// Double unsubscribe is a no-op.
	unsub()
}

func TestPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	b := New()
	_, unsub := b.Subscribe() // never drained
	defer unsub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*4; i++ {
			b.Publish(ToastEvent{Level: ToastInfo, Message: "tick"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
