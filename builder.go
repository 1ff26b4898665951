package dispatchx

import (
	"fmt"
)

// EmitterBuilder provides a fluent API for declaring an emitter's allow-list
// and initial registrations up front instead of wiring them call by call.
// Nothing is validated until Build, and no partially configured Emitter ever
// escapes a failed Build.
type EmitterBuilder struct {
	allowed []string
	restr   bool
	sink    DiagnosticSink
	regs    []registration
}

type registration struct {
	event string
	fn    Listener
	once  bool
}

// NewBuilder creates a new builder for declaring an Emitter.
func NewBuilder() *EmitterBuilder {
	return &EmitterBuilder{}
}

// Allow restricts the emitter to the given event names. Multiple calls
// accumulate. Calling Allow at least once, even with no names, switches the
// emitter into restricted mode.
func (b *EmitterBuilder) Allow(events ...string) *EmitterBuilder {
	b.restr = true
	b.allowed = append(b.allowed, events...)
	return b
}

// WithDiagnostic sets the sink for listener failures.
func (b *EmitterBuilder) WithDiagnostic(sink DiagnosticSink) *EmitterBuilder {
	b.sink = sink
	return b
}

// On declares a listener registration performed at Build time.
func (b *EmitterBuilder) On(event string, fn Listener) *EmitterBuilder {
	b.regs = append(b.regs, registration{event: event, fn: fn})
	return b
}

// Once declares a once-listener registration performed at Build time.
func (b *EmitterBuilder) Once(event string, fn Listener) *EmitterBuilder {
	b.regs = append(b.regs, registration{event: event, fn: fn, once: true})
	return b
}

// Build validates the accumulated configuration, constructs the Emitter, and
// performs the declared registrations in declaration order. The first error
// wins.
func (b *EmitterBuilder) Build() (*Emitter, error) {
	opts := []Option{WithDiagnostic(b.sink)}
	if b.restr {
		opts = append(opts, WithAllowedEvents(b.allowed...))
	}

	em, err := New(opts...)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	for _, reg := range b.regs {
		if reg.once {
			err = em.Once(reg.event, reg.fn)
		} else {
			err = em.On(reg.event, reg.fn)
		}
		if err != nil {
			return nil, fmt.Errorf("build: %w", err)
		}
	}

	return em, nil
}
