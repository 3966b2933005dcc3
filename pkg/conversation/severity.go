package conversation

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Severity orders log records emitted by the logged append operations.
type Severity int

const (
	SeverityTrace Severity = iota
	SeverityDebug
	SeverityInformation
	SeverityWarning
	SeverityError
	SeverityCritical
)

// DefaultSeverity is used by the logged appends when no WithSeverity option is given.
const DefaultSeverity = SeverityInformation

var severityNames = map[Severity]string{
	SeverityTrace:       "trace",
	SeverityDebug:       "debug",
	SeverityInformation: "information",
	SeverityWarning:     "warning",
	SeverityError:       "error",
	SeverityCritical:    "critical",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSeverity accepts the full severity names as well as the short forms used by
// log-level flags (info, warn, fatal).
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return SeverityTrace, nil
	case "debug":
		return SeverityDebug, nil
	case "information", "info", "":
		return SeverityInformation, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "critical", "fatal":
		return SeverityCritical, nil
	}
	return SeverityInformation, errors.Errorf("unknown severity %q", s)
}

// ZerologLevel maps s onto the matching zerolog level. Critical maps to FatalLevel,
// which ZerologSink only ever emits through Logger.WithLevel, so it never exits.
func (s Severity) ZerologLevel() zerolog.Level {
	switch s {
	case SeverityTrace:
		return zerolog.TraceLevel
	case SeverityDebug:
		return zerolog.DebugLevel
	case SeverityInformation:
		return zerolog.InfoLevel
	case SeverityWarning:
		return zerolog.WarnLevel
	case SeverityError:
		return zerolog.ErrorLevel
	case SeverityCritical:
		return zerolog.FatalLevel
	}
	return zerolog.NoLevel
}
