package core

import (
	"testing"

	"github.com/comalice/dispatchx/internal/primitives"
)

func emit(e *Engine, event string, payload any) {
	e.Emit(primitives.NewEvent(event, payload))
}

func TestEmitInRegistrationOrder(t *testing.T) {
	e := NewEngine()

	var order []int
	e.Add("x", func(payload any) { order = append(order, 1) }, false)
	e.Add("x", func(payload any) { order = append(order, 2) }, false)
	e.Add("x", func(payload any) { order = append(order, 3) }, false)

	emit(e, "x", nil)

	if len(order) != 3 {
		t.Fatalf("got %d invocations want 3", len(order))
	}
	for i, v := range order {
		if v != i+1 {
			t.Errorf("position %d: got listener %d", i, v)
		}
	}
}

func TestEmitPassesPayload(t *testing.T) {
	e := NewEngine()

	var got any
	e.Add("x", func(payload any) { got = payload }, false)

	type payload struct{ v int }
	emit(e, "x", payload{v: 1})

	p, ok := got.(payload)
	if !ok || p.v != 1 {
		t.Errorf("got payload %v (%T) want {v:1}", got, got)
	}
}

func TestEmitNoListenersIsNoop(t *testing.T) {
	e := NewEngine()
	emit(e, "missing", nil) // must not panic
}

func TestOnceFiresAtMostOnce(t *testing.T) {
	e := NewEngine()

	var calls int
	e.Add("x", func(payload any) { calls++ }, true)

	emit(e, "x", nil)
	emit(e, "x", nil)

	if calls != 1 {
		t.Errorf("got %d calls want 1", calls)
	}
	if e.Has("x") {
		t.Error("once-record not removed from registry")
	}
}

func TestOnceRemovedBeforeItRuns(t *testing.T) {
	e := NewEngine()

	// A nested emission from inside the once-listener must not see the
	// record again.
	var calls int
	var fn Listener
	fn = func(payload any) {
		calls++
		emit(e, "x", nil)
	}
	e.Add("x", fn, true)

	emit(e, "x", nil)

	if calls != 1 {
		t.Errorf("got %d calls want 1", calls)
	}
}

func TestOnceReregisterDuringOwnInvocation(t *testing.T) {
	e := NewEngine()

	var calls int
	var fn Listener
	fn = func(payload any) {
		calls++
		e.Add("x", fn, true)
	}
	e.Add("x", fn, true)

	emit(e, "x", nil)
	if calls != 1 {
		t.Errorf("first pass: got %d calls want 1", calls)
	}

	// The re-registration fires on the next pass.
	emit(e, "x", nil)
	if calls != 2 {
		t.Errorf("second pass: got %d calls want 2", calls)
	}
}

func TestRemoveMatchesAllRecords(t *testing.T) {
	e := NewEngine()

	var calls int
	fn := func(payload any) { calls++ }
	e.Add("x", fn, false)
	e.Add("x", fn, false)

	if got := e.Count("x"); got != 2 {
		t.Fatalf("got %d records want 2", got)
	}

	e.Remove("x", fn)

	if e.Has("x") {
		t.Error("records with matching func were not all removed")
	}
	emit(e, "x", nil)
	if calls != 0 {
		t.Errorf("removed listener fired %d times", calls)
	}
}

func TestRemoveLeavesOtherListeners(t *testing.T) {
	e := NewEngine()

	var a, b int
	fa := func(payload any) { a++ }
	fb := func(payload any) { b++ }
	e.Add("x", fa, false)
	e.Add("x", fb, false)

	e.Remove("x", fa)
	emit(e, "x", nil)

	if a != 0 {
		t.Errorf("removed listener fired %d times", a)
	}
	if b != 1 {
		t.Errorf("surviving listener fired %d times want 1", b)
	}
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	e := NewEngine()
	e.Remove("missing", func(payload any) {})

	e.Add("x", func(payload any) {}, false)
	e.Remove("x", func(payload any) {}) // different func, no match
	if !e.Has("x") {
		t.Error("unmatched removal cleared the event")
	}
}

func TestRemoveAllSelective(t *testing.T) {
	e := NewEngine()
	e.Add("a", func(payload any) {}, false)
	e.Add("b", func(payload any) {}, false)

	e.RemoveAll("a")

	if e.Has("a") {
		t.Error("event a still has listeners")
	}
	if !e.Has("b") {
		t.Error("event b was cleared")
	}
}

func TestRemoveAllGlobal(t *testing.T) {
	e := NewEngine()
	e.Add("a", func(payload any) {}, false)
	e.Add("b", func(payload any) {}, true)

	e.RemoveAll()

	if e.Has("a") || e.Has("b") {
		t.Error("registry not fully cleared")
	}

	// Still active after a global clear.
	var calls int
	e.Add("a", func(payload any) { calls++ }, false)
	emit(e, "a", nil)
	if calls != 1 {
		t.Errorf("got %d calls want 1 after clear", calls)
	}
}

func TestPanicIsolation(t *testing.T) {
	var recovered any
	e := NewEngine(WithPanicHandler(func(evt primitives.Event, r any) {
		recovered = r
	}))

	var second int
	e.Add("x", func(payload any) { panic("boom") }, false)
	e.Add("x", func(payload any) { second++ }, false)

	emit(e, "x", nil)

	if second != 1 {
		t.Errorf("listener after the panicking one fired %d times want 1", second)
	}
	if recovered != "boom" {
		t.Errorf("panic handler got %v want boom", recovered)
	}
}

func TestPanicWithoutHandlerIsDiscarded(t *testing.T) {
	e := NewEngine()
	e.Add("x", func(payload any) { panic("boom") }, false)
	emit(e, "x", nil) // must not propagate
}

func TestSnapshotAddedMidEmissionDoesNotFire(t *testing.T) {
	e := NewEngine()

	var late int
	e.Add("x", func(payload any) {
		e.Add("x", func(payload any) { late++ }, false)
	}, false)

	emit(e, "x", nil)
	if late != 0 {
		t.Errorf("listener added mid-emission fired %d times in same pass", late)
	}

	emit(e, "x", nil)
	if late != 1 {
		t.Errorf("listener added mid-emission fired %d times in next pass want 1", late)
	}
}

func TestSnapshotRemovedMidEmissionStillFires(t *testing.T) {
	e := NewEngine()

	var second int
	fb := func(payload any) { second++ }
	e.Add("x", func(payload any) { e.Remove("x", fb) }, false)
	e.Add("x", fb, false)

	emit(e, "x", nil)

	if second != 1 {
		t.Errorf("snapshotted listener fired %d times want 1", second)
	}
	if e.Has("x") && e.Count("x") != 1 {
		t.Error("mid-emission removal did not take effect in live registry")
	}
}

func TestPruneOnRemoval(t *testing.T) {
	e := NewEngine()

	fn := func(payload any) {}
	e.Add("x", fn, false)
	e.Remove("x", fn)

	if e.Has("x") {
		t.Error("emptied event key was not pruned")
	}
	if e.Count("x") != 0 {
		t.Error("pruned event reports listeners")
	}
}
