package notification

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSink records messages in the log instead of sending them.
// Used when SMTP is not configured.
type LogSink struct {
	log *zerolog.Logger
}

func NewLogSink(log *zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Notify(_ context.Context, msg Message) error {
	s.log.Info().
		Str("kind", string(msg.Kind)).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("notification (delivery disabled)")
	return nil
}
