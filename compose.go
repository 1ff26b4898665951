// Composition: attaching the dispatcher capability to an existing value.
//
// Go cannot add methods to a value at runtime, so the capability-injection
// path is rendered as a typed wrapper: Composite embeds an Emitter (the six
// operations promote onto it) and carries the original target, whose own
// members remain reachable and untouched. The reserved-name conflict check
// is preserved: composition refuses any target that already declares one of
// the Dispatcher operation names, so existing behavior is never shadowed.
package dispatchx

import (
	"fmt"
	"reflect"
)

// reservedNames are the Dispatcher operation names checked once at
// composition time.
var reservedNames = [...]string{"On", "Once", "Off", "OffAll", "Emit", "HasListeners"}

// Composite is a target value augmented with dispatcher capability. The
// Dispatcher operations promote from the embedded Emitter; everything else
// the target exposes is reached through Target.
type Composite[T any] struct {
	*Emitter
	Target T
}

// Compose augments target with a private dispatcher state and returns the
// composite. The target must be a non-nil object-like value: a struct, a
// pointer, or a map. Nil targets and scalar kinds (numbers, strings, bools,
// funcs, channels, slices) fail with ErrInvalidArgument. If the target's
// method set already declares any reserved operation name, composition
// aborts entirely with ErrAlreadyComposed and the target is left unmodified.
// Options are the same as New and are validated identically.
func Compose[T any](target T, opts ...Option) (*Composite[T], error) {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return nil, fmt.Errorf("compose: %w: nil target", ErrInvalidArgument)
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return nil, fmt.Errorf("compose: %w: nil target", ErrInvalidArgument)
		}
	case reflect.Struct:
	default:
		return nil, fmt.Errorf("compose: %w: target kind %s is not object-like", ErrInvalidArgument, rv.Kind())
	}

	if name, ok := conflictingMethod(rv.Type()); ok {
		return nil, fmt.Errorf("compose: %w: target already defines %s", ErrAlreadyComposed, name)
	}

	em, err := New(opts...)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	return &Composite[T]{Emitter: em, Target: target}, nil
}

// conflictingMethod reports the first reserved name present in the target
// type's method set. The pointer type is consulted so value-receiver and
// pointer-receiver methods are both caught regardless of how the target was
// passed.
func conflictingMethod(t reflect.Type) (string, bool) {
	pt := t
	if pt.Kind() != reflect.Pointer {
		pt = reflect.PointerTo(pt)
	}
	for _, name := range reservedNames {
		if _, ok := pt.MethodByName(name); ok {
			return name, true
		}
	}
	return "", false
}

var _ Dispatcher = (*Composite[struct{}])(nil)
