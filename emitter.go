package dispatchx

import (
	"fmt"

	"github.com/comalice/dispatchx/internal/core"
	"github.com/comalice/dispatchx/internal/primitives"
)

// Emitter is the standalone dispatcher. It owns a private listener registry
// keyed by event name; insertion order is significant and is the emission
// order. The zero value is not usable; construct with New, NewBuilder,
// FromConfig, or Compose.
type Emitter struct {
	engine  *core.Engine
	allowed map[string]struct{} // nil = unrestricted, fixed at construction
}

// New creates an empty Emitter. Options are validated before the Emitter
// accepts any operation; a malformed allow-list fails with
// ErrInvalidArgument.
func New(opts ...Option) (*Emitter, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	if err := primitives.ValidateAllowedEvents(s.allowedEvents); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	em := &Emitter{
		allowed: primitives.AllowSet(s.allowedEvents),
	}

	// Adapt the public sink to the engine's handler signature.
	var engineOpts []core.Option
	if s.sink != nil {
		sink := s.sink
		engineOpts = append(engineOpts, core.WithPanicHandler(
			func(evt primitives.Event, recovered any) {
				sink.ListenerPanic(evt.Name, evt.Payload, recovered)
			}))
	}
	em.engine = core.NewEngine(engineOpts...)

	return em, nil
}

// checkEvent runs the shared name validation plus the allow-list check every
// named operation performs before touching state.
func (em *Emitter) checkEvent(event string) error {
	if err := primitives.ValidateEventName(event); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if em.allowed != nil {
		if _, ok := em.allowed[event]; !ok {
			return fmt.Errorf("%w: %q", ErrEventNotAllowed, event)
		}
	}
	return nil
}

// On registers fn for the event. Registering the same func twice yields two
// independent registrations that both fire.
func (em *Emitter) On(event string, fn Listener) error {
	if err := em.checkEvent(event); err != nil {
		return fmt.Errorf("on: %w", err)
	}
	if fn == nil {
		return fmt.Errorf("on %q: %w: nil listener", event, ErrInvalidArgument)
	}
	em.engine.Add(event, core.Listener(fn), false)
	return nil
}

// Once registers fn to fire at most one time total. The registration is
// removed before the listener runs, so re-registration from inside the
// listener cannot double-fire it within the same pass.
func (em *Emitter) Once(event string, fn Listener) error {
	if err := em.checkEvent(event); err != nil {
		return fmt.Errorf("once: %w", err)
	}
	if fn == nil {
		return fmt.Errorf("once %q: %w: nil listener", event, ErrInvalidArgument)
	}
	em.engine.Add(event, core.Listener(fn), true)
	return nil
}

// Off removes every registration of fn for the event, pruning the event key
// when its sequence empties. Unknown events and unregistered funcs are a
// silent no-op.
func (em *Emitter) Off(event string, fn Listener) error {
	if err := em.checkEvent(event); err != nil {
		return fmt.Errorf("off: %w", err)
	}
	if fn == nil {
		return fmt.Errorf("off %q: %w: nil listener", event, ErrInvalidArgument)
	}
	em.engine.Remove(event, core.Listener(fn))
	return nil
}

// OffAll clears the named events, or the entire registry when called with no
// arguments. Bulk clearing is a cleanup operation and so is exempt from the
// allow-list check, but named arguments must still be non-empty strings.
func (em *Emitter) OffAll(events ...string) error {
	for _, event := range events {
		if err := primitives.ValidateEventName(event); err != nil {
			return fmt.Errorf("offall: %w: %v", ErrInvalidArgument, err)
		}
	}
	em.engine.RemoveAll(events...)
	return nil
}

// Emit synchronously delivers the event to every listener registered at the
// moment the call begins, in registration order, on the caller's goroutine.
// At most one payload value may be supplied; omitting it delivers the
// NoPayload marker. Listener panics are reported to the DiagnosticSink and
// never propagate to the caller. Emitting with zero listeners is a no-op.
func (em *Emitter) Emit(event string, payload ...any) error {
	if err := em.checkEvent(event); err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	if len(payload) > 1 {
		return fmt.Errorf("emit %q: %w: at most one payload value", event, ErrInvalidArgument)
	}

	p := NoPayload
	if len(payload) == 1 {
		p = payload[0]
	}
	em.engine.Emit(primitives.NewEvent(event, p))
	return nil
}

// HasListeners reports whether at least one listener (once or not) is
// currently registered for the event.
func (em *Emitter) HasListeners(event string) (bool, error) {
	if err := em.checkEvent(event); err != nil {
		return false, fmt.Errorf("haslisteners: %w", err)
	}
	return em.engine.Has(event), nil
}

// ListenerCount returns the number of registrations currently held for the
// event.
func (em *Emitter) ListenerCount(event string) (int, error) {
	if err := em.checkEvent(event); err != nil {
		return 0, fmt.Errorf("listenercount: %w", err)
	}
	return em.engine.Count(event), nil
}

var _ Dispatcher = (*Emitter)(nil)
