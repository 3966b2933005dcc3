package conversation

import (
	"fmt"
	"io"
	"strings"
)

// PrettyPrinter renders a Transcript in a configurable human-friendly way.
type PrettyPrinter struct {
	IncludeIndex bool
	IndentSpaces int
	MaxTextLines int // 0 => unlimited
}

// PrintOption configures a PrettyPrinter.
type PrintOption func(*PrettyPrinter)

// WithIndex toggles the [NN] position prefix.
func WithIndex(include bool) PrintOption { return func(p *PrettyPrinter) { p.IncludeIndex = include } }

// WithIndent sets the number of spaces used for indentation.
func WithIndent(spaces int) PrintOption { return func(p *PrettyPrinter) { p.IndentSpaces = spaces } }

// WithMaxTextLines limits how many lines of text to print per message (0 = unlimited).
func WithMaxTextLines(n int) PrintOption { return func(p *PrettyPrinter) { p.MaxTextLines = n } }

func NewPrettyPrinter(opts ...PrintOption) *PrettyPrinter {
	p := &PrettyPrinter{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FprintTranscript prints t using an ephemeral PrettyPrinter configured via options.
func FprintTranscript(w io.Writer, t *Transcript, opts ...PrintOption) {
	NewPrettyPrinter(opts...).FprintTranscript(w, t)
}

func (p *PrettyPrinter) FprintTranscript(w io.Writer, t *Transcript) {
	if t == nil {
		return
	}
	pad := strings.Repeat(" ", p.IndentSpaces)
	for i, m := range t.messages {
		prefix := pad
		if p.IncludeIndex {
			prefix = fmt.Sprintf("%s[%02d] ", pad, i)
		}
		role := string(m.Role)
		if role == "" {
			role = "unknown"
		}
		fmt.Fprintf(w, "%s%s: %s\n", prefix, role, p.trim(m.Content))
	}
}

func (p *PrettyPrinter) trim(text string) string {
	if p.MaxTextLines <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= p.MaxTextLines {
		return text
	}
	return strings.Join(lines[:p.MaxTextLines], "\n")
}

// Markdown renders t as one second-level heading per message followed by its content.
func Markdown(t *Transcript) string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	for i, m := range t.messages {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## %s\n\n", m.Role.Title())
		sb.WriteString(strings.TrimRight(m.Content, "\n"))
		sb.WriteString("\n")
	}
	return sb.String()
}
