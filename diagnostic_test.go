package dispatchx_test

import (
	"testing"

	. "github.com/comalice/dispatchx"
)

type recordingSink struct {
	events []string
}

func (s *recordingSink) ListenerPanic(event string, payload any, recovered any) {
	s.events = append(s.events, event)
}

func TestNopSinkDiscards(t *testing.T) {
	var sink NopSink
	sink.ListenerPanic("x", nil, "boom") // must not panic
}

func TestLoggingSinkDelegates(t *testing.T) {
	inner := &recordingSink{}
	sink := NewLoggingSink(inner)

	sink.ListenerPanic("x", nil, "boom")
	if len(inner.events) != 1 || inner.events[0] != "x" {
		t.Errorf("inner sink got %v", inner.events)
	}
}

func TestLoggingSinkWithoutInner(t *testing.T) {
	sink := NewLoggingSink(nil)
	sink.ListenerPanic("x", nil, "boom") // log-only, must not panic
}

func TestChannelSinkForwards(t *testing.T) {
	ch := make(chan Failure, 1)
	sink := NewChannelSink(ch)

	sink.ListenerPanic("x", 7, "boom")

	select {
	case f := <-ch:
		if f.Event != "x" || f.Payload != 7 || f.Recovered != "boom" {
			t.Errorf("unexpected failure %+v", f)
		}
	default:
		t.Fatal("failure never forwarded")
	}
}

func TestChannelSinkDropsOnBackpressure(t *testing.T) {
	ch := make(chan Failure) // unbuffered, nobody ever receives
	sink := NewChannelSink(ch)

	// Returning at all proves the send did not block.
	sink.ListenerPanic("x", nil, "boom")

	select {
	case f := <-ch:
		t.Fatalf("failure %+v was delivered with no receiver ready", f)
	default:
	}
}

func TestChannelSinkClose(t *testing.T) {
	ch := make(chan Failure)
	sink := NewChannelSink(ch)
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}
	if _, open := <-ch; open {
		t.Error("channel still open after Close")
	}
}
