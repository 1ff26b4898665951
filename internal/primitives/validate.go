// Shared argument validation for event names and allow-lists.
//
// Every public operation validates synchronously and fails before any state
// mutation; these helpers are the single source of truth for what counts as
// a well-formed event name and a well-formed allow-list.

package primitives

import (
	"errors"
	"fmt"
)

// ValidateEventName checks that an event name is well-formed.
func ValidateEventName(name string) error {
	if name == "" {
		return errors.New("event name cannot be empty")
	}
	return nil
}

// ValidateAllowedEvents checks that an allow-list is a proper sequence of
// non-empty event names. A nil slice means "no allow-list configured" and is
// valid; an empty non-nil slice is a valid allow-list that permits nothing.
func ValidateAllowedEvents(events []string) error {
	for i, name := range events {
		if name == "" {
			return fmt.Errorf("allowed events entry %d is empty", i)
		}
	}
	return nil
}

// AllowSet builds the membership set enforced on every named operation.
// Returns nil when no allow-list is configured (unrestricted mode).
func AllowSet(events []string) map[string]struct{} {
	if events == nil {
		return nil
	}
	set := make(map[string]struct{}, len(events))
	for _, name := range events {
		set[name] = struct{}{}
	}
	return set
}
