// Options for configuring Emitter instances.
package dispatchx

// Option applies configuration to an Emitter via the functional options
// pattern. Options are evaluated by New before the Emitter accepts any
// operation; invalid settings fail construction.
type Option func(*settings)

// settings accumulates construction-time configuration. The allow-list is
// validated once here and immutable afterwards.
type settings struct {
	allowedEvents []string // nil = unrestricted
	sink          DiagnosticSink
}

// WithAllowedEvents restricts the Emitter to the given event names. Every
// entry must be non-empty or construction fails with ErrInvalidArgument.
// Calling the option with no names yields an allow-list that permits
// nothing; omitting the option entirely leaves the Emitter unrestricted.
func WithAllowedEvents(events ...string) Option {
	return func(s *settings) {
		if events == nil {
			events = []string{}
		}
		s.allowedEvents = events
	}
}

// WithDiagnostic configures the out-of-band sink that receives listener
// failures swallowed by Emit. Nil restores the default discard behavior.
func WithDiagnostic(sink DiagnosticSink) Option {
	return func(s *settings) {
		s.sink = sink
	}
}
