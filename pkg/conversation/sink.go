package conversation

import (
	"github.com/rs/zerolog"
)

// Sink receives one record per logged append. Implementations own their failure
// handling: a Sink has no way to report an error back to the transcript operation.
type Sink interface {
	Log(severity Severity, msg string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(severity Severity, msg string)

func (f SinkFunc) Log(severity Severity, msg string) {
	f(severity, msg)
}

// ZerologSink writes records to a zerolog.Logger at the level matching their severity.
type ZerologSink struct {
	logger zerolog.Logger
}

var _ Sink = (*ZerologSink)(nil)

func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

func (z *ZerologSink) Log(severity Severity, msg string) {
	z.logger.WithLevel(severity.ZerologLevel()).
		Str("severity", severity.String()).
		Msg(msg)
}
