package dispatchx

import (
	"github.com/sirupsen/logrus"
)

// LogrusSink reports listener failures through a structured logrus entry
// carrying the event name and recovered value as fields.
type LogrusSink struct {
	logger logrus.FieldLogger
}

// NewLogrusSink creates a LogrusSink. A nil logger falls back to the logrus
// standard logger.
func NewLogrusSink(logger logrus.FieldLogger) *LogrusSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusSink{logger: logger}
}

func (s *LogrusSink) ListenerPanic(event string, payload any, recovered any) {
	s.logger.WithFields(logrus.Fields{
		"event":     event,
		"recovered": recovered,
	}).Error("listener panic during emission")
}
