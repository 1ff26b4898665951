// Package core provides the runtime core tier of the event-dispatch engine.
// This includes the listener registry, registration-order bookkeeping, the
// snapshot emission loop, and once-listener removal.
// Stdlib-only implementation.
// Pluggable diagnostics are forward-declared here and implemented at the API
// tier.
package core

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/comalice/dispatchx/internal/primitives"
)

// Listener is a registered callable. It receives the emission payload (or
// the primitives.NoPayload marker) as its sole argument.
type Listener func(payload any)

// PanicHandler is called when a listener panics during emission. It receives
// the event being delivered and the value passed to panic().
type PanicHandler func(evt primitives.Event, recovered any)

// record is one registration. The same func registered twice yields two
// independent records; removal matches records by func identity, not record
// identity.
type record struct {
	fn    Listener
	ptr   uintptr
	once  bool
	fired atomic.Bool // once-records only: guards at-most-one invocation
}

// Option applies configuration to an Engine via functional options.
type Option func(*Engine)

// WithPanicHandler configures the Engine with a custom PanicHandler for
// listener failures. Nil restores the default discard behavior.
func WithPanicHandler(h PanicHandler) Option {
	return func(e *Engine) {
		e.onPanic = h
	}
}

// Engine owns the per-event listener registry and implements the emission
// algorithm. Every key present in the registry maps to a non-empty sequence;
// emptied sequences are pruned on removal so queries cannot observe a
// "present but empty" event.
//
// The registry is guarded by a RWMutex so concurrent misuse cannot corrupt
// it, but delivery is always synchronous on the emitting goroutine.
type Engine struct {
	mu        sync.RWMutex
	listeners map[string][]*record
	onPanic   PanicHandler
}

// NewEngine creates an empty Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		listeners: make(map[string][]*record),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// funcPtr is the identity used to match a listener on removal. Two distinct
// closures created from the same literal share a code pointer, which matches
// the reference-equality contract closely enough for func values in Go: a
// caller removes exactly the func value it registered.
func funcPtr(fn Listener) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// Add appends a listener record for the event. Registration order is
// preserved and is the emission order.
func (e *Engine) Add(event string, fn Listener, once bool) {
	rec := &record{fn: fn, ptr: funcPtr(fn), once: once}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[event] = append(e.listeners[event], rec)
}

// Remove deletes every record for the event whose func is identical to fn.
// Removing an unknown event or an unregistered func is a no-op. Emptied
// sequences are pruned.
func (e *Engine) Remove(event string, fn Listener) {
	ptr := funcPtr(fn)

	e.mu.Lock()
	defer e.mu.Unlock()

	recs := e.listeners[event]
	if len(recs) == 0 {
		return
	}

	kept := recs[:0]
	for _, rec := range recs {
		if rec.ptr != ptr {
			kept = append(kept, rec)
		}
	}

	if len(kept) == 0 {
		delete(e.listeners, event)
		return
	}
	e.listeners[event] = kept
}

// RemoveAll clears the named events, or the entire registry when called with
// no arguments.
func (e *Engine) RemoveAll(events ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(events) == 0 {
		e.listeners = make(map[string][]*record)
		return
	}
	for _, event := range events {
		delete(e.listeners, event)
	}
}

// Has reports whether at least one record is currently registered for the
// event.
func (e *Engine) Has(event string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[event]) > 0
}

// Count returns the number of records currently registered for the event.
func (e *Engine) Count(event string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[event])
}

// Emit delivers the event to every listener registered at the moment the
// call begins, in registration order, on the caller's goroutine.
//
// The loop iterates a point-in-time snapshot: listeners added during the
// pass do not fire in it, and listeners removed during the pass may still
// fire if already snapshotted. A once-record is taken out of the live
// registry before its listener runs, so re-registration from inside the
// listener (or a nested Emit) cannot double-fire it. A panicking listener is
// reported to the PanicHandler and never prevents later listeners from
// running.
func (e *Engine) Emit(evt primitives.Event) {
	e.mu.RLock()
	snapshot := make([]*record, len(e.listeners[evt.Name]))
	copy(snapshot, e.listeners[evt.Name])
	e.mu.RUnlock()

	for _, rec := range snapshot {
		if rec.once {
			if !rec.fired.CompareAndSwap(false, true) {
				continue
			}
			e.removeRecord(evt.Name, rec)
		}
		e.invoke(rec.fn, evt)
	}
}

// invoke runs one listener with panic isolation.
func (e *Engine) invoke(fn Listener, evt primitives.Event) {
	defer func() {
		if r := recover(); r != nil {
			if e.onPanic != nil {
				e.onPanic(evt, r)
			}
		}
	}()
	fn(evt.Payload)
}

// removeRecord deletes one specific record, pruning the event key if the
// sequence empties. Matches by record identity so sibling registrations of
// the same func are untouched.
func (e *Engine) removeRecord(event string, target *record) {
	e.mu.Lock()
	defer e.mu.Unlock()

	recs := e.listeners[event]
	for i, rec := range recs {
		if rec == target {
			recs = append(recs[:i], recs[i+1:]...)
			break
		}
	}

	if len(recs) == 0 {
		delete(e.listeners, event)
		return
	}
	e.listeners[event] = recs
}
