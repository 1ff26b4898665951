// Event provides the immutable event primitive carried through emission.
//
// Events are value types designed for zero-allocation creation via stack
// allocation. Once created, Events should not be mutated. Use NewEvent for
// construction.
//
// # Immutability
//
// Event fields are exported for convenience in read-only contexts, but
// consumers MUST NOT modify them after construction. Violations break
// emission-order guarantees.
//
// # Absent payloads
//
// An emission without a payload carries the NoPayload marker rather than a
// bare nil, so listeners can tell "emitted with nil" apart from "emitted
// with nothing".
package primitives

// Event is a named occurrence plus the payload handed to each listener.
type Event struct {
	Name    string
	Payload any
}

// NewEvent creates and returns a new immutable Event.
//
// This is zero-heap-allocation when Payload is a stack value (small structs,
// primitives). Returns Event by value for stack allocation and copy elision.
func NewEvent(name string, payload any) Event {
	return Event{
		Name:    name,
		Payload: payload,
	}
}

type noPayload struct{}

// NoPayload is the explicit absent-value marker delivered to listeners when
// an event is emitted without a payload.
var NoPayload any = noPayload{}
