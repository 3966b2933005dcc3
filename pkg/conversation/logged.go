package conversation

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

type logSettings struct {
	sink     Sink
	severity Severity
}

// LogOption configures a logged append.
type LogOption func(*logSettings)

// WithSink makes s receive a record for the appended message. Without it, the
// append emits nothing. A nil s counts as no sink.
func WithSink(s Sink) LogOption {
	return func(ls *logSettings) {
		ls.sink = s
	}
}

// WithSeverity overrides DefaultSeverity for the emitted record.
func WithSeverity(severity Severity) LogOption {
	return func(ls *logSettings) {
		ls.severity = severity
	}
}

// LogLine renders the record a logged append emits for role and content.
func LogLine(role Role, content string) string {
	return fmt.Sprintf("%s message: %s", role.Title(), content)
}

// AppendLogged appends a message with the given role to t, in place, and hands a
// record to the configured sink, if any. It returns t itself so calls can be chained.
func AppendLogged(t *Transcript, role Role, content string, opts ...LogOption) (*Transcript, error) {
	if t == nil {
		return nil, errNilTranscript(fmt.Sprintf("append %s", role))
	}

	ls := &logSettings{severity: DefaultSeverity}
	for _, opt := range opts {
		opt(ls)
	}

	t.Append(NewChatMessage(role, content))

	if ls.sink != nil {
		emit(ls.sink, ls.severity, LogLine(role, content))
	}

	return t, nil
}

// emit calls the sink and swallows any panic it raises.
func emit(sink Sink, severity Severity, msg string) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug().
				Interface("panic", r).
				Str("severity", severity.String()).
				Msg("transcript log sink panicked")
		}
	}()
	sink.Log(severity, msg)
}

func AppendSystemLogged(t *Transcript, content string, opts ...LogOption) (*Transcript, error) {
	return AppendLogged(t, RoleSystem, content, opts...)
}

func AppendUserLogged(t *Transcript, content string, opts ...LogOption) (*Transcript, error) {
	return AppendLogged(t, RoleUser, content, opts...)
}

func AppendAssistantLogged(t *Transcript, content string, opts ...LogOption) (*Transcript, error) {
	return AppendLogged(t, RoleAssistant, content, opts...)
}

func AppendDeveloperLogged(t *Transcript, content string, opts ...LogOption) (*Transcript, error) {
	return AppendLogged(t, RoleDeveloper, content, opts...)
}
