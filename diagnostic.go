// Diagnostic sinks: the out-of-band channel for listener failures.
//
// Emit swallows listener panics so one misbehaving subscriber cannot break
// emission for the rest; the only way such failures surface is through the
// DiagnosticSink injected at construction time.
package dispatchx

import "log"

// DiagnosticSink receives listener failures captured during emission. Sinks
// must not panic; they run inline on the emitting goroutine.
type DiagnosticSink interface {
	// ListenerPanic is called once per panicking listener with the event
	// name, the payload that was being delivered, and the recovered value.
	ListenerPanic(event string, payload any, recovered any)
}

// NopSink discards every failure. It is the default sink.
type NopSink struct{}

func (NopSink) ListenerPanic(event string, payload any, recovered any) {}

// LoggingSink logs each failure with the standard library logger, then
// delegates to an inner sink.
type LoggingSink struct {
	inner DiagnosticSink
}

// NewLoggingSink creates a LoggingSink wrapping the given inner sink. A nil
// inner sink means log-only.
func NewLoggingSink(inner DiagnosticSink) *LoggingSink {
	return &LoggingSink{inner: inner}
}

func (s *LoggingSink) ListenerPanic(event string, payload any, recovered any) {
	log.Printf("dispatchx: listener panic on %q: %v", event, recovered)
	if s.inner != nil {
		s.inner.ListenerPanic(event, payload, recovered)
	}
}

// Failure bundles one captured listener failure for channel delivery.
type Failure struct {
	Event     string
	Payload   any
	Recovered any
}

// ChannelSink forwards failures to a Go channel. Non-blocking send with drop
// on backpressure, so a slow consumer never stalls emission.
type ChannelSink struct {
	ch chan<- Failure
}

// NewChannelSink creates a ChannelSink with the given output channel. The
// channel should be buffered if failures must not be dropped under load.
func NewChannelSink(ch chan<- Failure) *ChannelSink {
	return &ChannelSink{ch: ch}
}

func (s *ChannelSink) ListenerPanic(event string, payload any, recovered any) {
	select {
	case s.ch <- Failure{Event: event, Payload: payload, Recovered: recovered}:
	default:
		// Non-blocking drop
	}
}

// Close closes the output channel.
func (s *ChannelSink) Close() error {
	close(s.ch)
	return nil
}
