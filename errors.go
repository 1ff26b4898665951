package dispatchx

import "errors"

// Sentinel errors for the dispatch API. Operations wrap these with context;
// match with errors.Is.
var (
	// ErrInvalidArgument is returned for a malformed event name, a nil
	// listener, a malformed allow-list, or a nil composition target. Always
	// raised before any state change.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEventNotAllowed is returned when a well-formed event name is
	// rejected solely because an allow-list is configured and the name is
	// absent from it.
	ErrEventNotAllowed = errors.New("event not allowed")

	// ErrAlreadyComposed is returned when a composition target already
	// exposes a reserved operation name. The target is left unmodified.
	ErrAlreadyComposed = errors.New("target already composed")
)
