// Package dispatchx is a synchronous publish/subscribe event-dispatch
// library. Independent components register interest in named events, receive
// payloads when those events are emitted, and deregister later.
//
// An Emitter can be constructed directly with New, declaratively with
// NewBuilder or FromConfig, or its capability set can be composed onto a
// pre-existing value with Compose. Runtime behavior is identical regardless
// of construction path.
//
// Delivery is purely synchronous: Emit runs every listener to completion, in
// registration order, on the caller's goroutine before returning. A
// listener's panic never aborts emission and never reaches the Emit caller;
// failures surface only through an injected DiagnosticSink.
package dispatchx

import (
	"github.com/comalice/dispatchx/internal/primitives"
)

// Listener is a registered callable. It receives the emission payload (or
// the NoPayload marker) as its sole argument.
type Listener func(payload any)

// NoPayload is the explicit absent-value marker a listener receives when the
// event was emitted without a payload, so "emitted with nil" and "emitted
// with nothing" stay distinguishable.
var NoPayload = primitives.NoPayload

// Dispatcher is the capability set shared by every construction path. The
// six operation names are reserved: Compose refuses targets that already
// declare any of them.
type Dispatcher interface {
	// On appends a listener for the event. Registering the same func twice
	// yields two independent registrations that both fire.
	On(event string, fn Listener) error

	// Once appends a listener that fires at most one time total, then is
	// removed before any subsequent emission considers it.
	Once(event string, fn Listener) error

	// Off removes every registration of fn for the event. Unknown events and
	// unregistered funcs are a silent no-op.
	Off(event string, fn Listener) error

	// OffAll clears the named events, or every event when called with no
	// arguments. Exempt from the allow-list check.
	OffAll(events ...string) error

	// Emit synchronously invokes the event's listeners in registration
	// order, passing payload (or NoPayload when omitted) to each. Emitting
	// an event with no listeners is a well-defined no-op.
	Emit(event string, payload ...any) error

	// HasListeners reports whether at least one listener is currently
	// registered for the event.
	HasListeners(event string) (bool, error)
}
