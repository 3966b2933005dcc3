package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/go-go-golems/chathistory/pkg/conversation"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type transcriptOpsSettings struct {
	Input         string
	StripSystem   bool
	PrependSystem string
	InsertSystem  string

	System    string
	Developer string
	User      string
	Assistant string
	Severity  conversation.Severity

	Render string
	Style  string
}

func addTranscriptFlags(fs *pflag.FlagSet) {
	fs.String("input", "-", "YAML transcript to read (- for stdin)")
	fs.Bool("strip-system", false, "Remove all system messages")
	fs.String("prepend-system", "", "Prepend a system message")
	fs.String("insert-system", "", "Insert a system message after the leading system messages")
	fs.String("system", "", "Append a logged system message")
	fs.String("developer", "", "Append a logged developer message")
	fs.String("user", "", "Append a logged user message")
	fs.String("assistant", "", "Append a logged assistant message")
	fs.String("severity", "information", "Severity of the append log records (trace, debug, information, warning, error, critical)")
	fs.String("render", "yaml", "Output format (yaml, text, markdown)")
	fs.String("style", "auto", "Glamour style used by --render markdown")
}

func settingsFromViper(v *viper.Viper) (*transcriptOpsSettings, error) {
	severity, err := conversation.ParseSeverity(v.GetString("severity"))
	if err != nil {
		return nil, err
	}
	s := &transcriptOpsSettings{
		Input:         v.GetString("input"),
		StripSystem:   v.GetBool("strip-system"),
		PrependSystem: v.GetString("prepend-system"),
		InsertSystem:  v.GetString("insert-system"),
		System:        v.GetString("system"),
		Developer:     v.GetString("developer"),
		User:          v.GetString("user"),
		Assistant:     v.GetString("assistant"),
		Severity:      severity,
		Render:        v.GetString("render"),
		Style:         v.GetString("style"),
	}
	if s.Input == "" {
		s.Input = "-"
	}
	if s.Render == "" {
		s.Render = "yaml"
	}
	return s, nil
}

func readTranscript(stdin io.Reader, input string) (*conversation.Transcript, error) {
	var (
		data []byte
		err  error
	)
	if input == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read transcript from %s", input)
	}
	t, err := conversation.LoadYAML(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse transcript from %s", input)
	}
	return t, nil
}

func applyTransforms(t *conversation.Transcript, s *transcriptOpsSettings) (*conversation.Transcript, error) {
	var err error
	if s.StripSystem {
		if t, err = conversation.RemoveSystemMessages(t); err != nil {
			return nil, err
		}
	}
	if s.PrependSystem != "" {
		if t, err = conversation.WithPrependedSystem(t, s.PrependSystem); err != nil {
			return nil, err
		}
	}
	if s.InsertSystem != "" {
		if t, err = conversation.InsertSystemAfterExistingSystemMessages(t, s.InsertSystem); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func applyLoggedAppends(t *conversation.Transcript, s *transcriptOpsSettings, sink conversation.Sink) error {
	appends := []struct {
		content string
		fn      func(*conversation.Transcript, string, ...conversation.LogOption) (*conversation.Transcript, error)
	}{
		{s.System, conversation.AppendSystemLogged},
		{s.Developer, conversation.AppendDeveloperLogged},
		{s.User, conversation.AppendUserLogged},
		{s.Assistant, conversation.AppendAssistantLogged},
	}
	for _, a := range appends {
		if a.content == "" {
			continue
		}
		if _, err := a.fn(t, a.content, conversation.WithSink(sink), conversation.WithSeverity(s.Severity)); err != nil {
			return err
		}
	}
	return nil
}

func renderTranscript(w io.Writer, t *conversation.Transcript, s *transcriptOpsSettings) error {
	switch s.Render {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return errors.Wrap(err, "failed to encode transcript")
		}
		return enc.Close()
	case "text":
		conversation.FprintTranscript(w, t)
		return nil
	case "markdown":
		out, err := glamour.Render(conversation.Markdown(t), s.Style)
		if err != nil {
			return errors.Wrap(err, "failed to render markdown")
		}
		_, err = fmt.Fprint(w, out)
		return err
	}
	return errors.Errorf("unknown render format %q", s.Render)
}

func runTranscriptOps(stdin io.Reader, w io.Writer, s *transcriptOpsSettings, logger zerolog.Logger) error {
	t, err := readTranscript(stdin, s.Input)
	if err != nil {
		return err
	}
	logger.Debug().Int("message_count", t.Len()).Str("input", s.Input).Msg("Loaded transcript")

	t, err = applyTransforms(t, s)
	if err != nil {
		return err
	}

	if err := applyLoggedAppends(t, s, conversation.NewZerologSink(logger)); err != nil {
		return err
	}

	return renderTranscript(w, t, s)
}
