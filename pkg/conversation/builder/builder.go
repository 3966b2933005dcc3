package builder

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/go-go-golems/chathistory/pkg/conversation"
	"github.com/pkg/errors"
)

// TranscriptBuilder assembles a conversation.Transcript from templated prompts.
// Every template is rendered with the builder's variables and the sprig function map.
type TranscriptBuilder struct {
	systemPrompt string
	messages     []conversation.Message
	prompt       string
	variables    map[string]interface{}
	logOptions   []conversation.LogOption
}

// NewTranscriptBuilder creates a new builder for conversation.Transcript
func NewTranscriptBuilder() *TranscriptBuilder {
	return &TranscriptBuilder{
		variables: make(map[string]interface{}),
	}
}

// WithSystemPrompt sets a system prompt that is inserted after any system messages
// the initial messages start with.
func (b *TranscriptBuilder) WithSystemPrompt(systemPrompt string) *TranscriptBuilder {
	b.systemPrompt = systemPrompt
	return b
}

func (b *TranscriptBuilder) WithMessages(messages ...conversation.Message) *TranscriptBuilder {
	b.messages = messages
	return b
}

// WithPrompt sets the final user message.
func (b *TranscriptBuilder) WithPrompt(prompt string) *TranscriptBuilder {
	b.prompt = prompt
	return b
}

func (b *TranscriptBuilder) WithVariables(variables map[string]interface{}) *TranscriptBuilder {
	if b.variables == nil {
		b.variables = make(map[string]interface{})
	}
	for k, v := range variables {
		b.variables[k] = v
	}
	return b
}

// WithLogOptions is passed to the logged append of the final prompt.
func (b *TranscriptBuilder) WithLogOptions(opts ...conversation.LogOption) *TranscriptBuilder {
	b.logOptions = append(b.logOptions, opts...)
	return b
}

// Build renders all templates and returns a new transcript. Nothing is returned
// if any template fails.
func (b *TranscriptBuilder) Build() (*conversation.Transcript, error) {
	t := conversation.NewTranscript()

	for _, message_ := range b.messages {
		s_, err := b.render("message", message_.Content)
		if err != nil {
			return nil, err
		}
		t.Append(conversation.NewChatMessage(message_.Role, s_))
	}

	if b.systemPrompt != "" {
		s_, err := b.render("system-prompt", b.systemPrompt)
		if err != nil {
			return nil, err
		}
		t, err = conversation.InsertSystemAfterExistingSystemMessages(t, s_)
		if err != nil {
			return nil, errors.Wrap(err, "failed to insert system prompt")
		}
	}

	if b.prompt != "" {
		s_, err := b.render("prompt", b.prompt)
		if err != nil {
			return nil, err
		}
		if _, err := conversation.AppendUserLogged(t, s_, b.logOptions...); err != nil {
			return nil, errors.Wrap(err, "failed to append prompt message")
		}
	}

	return t, nil
}

func (b *TranscriptBuilder) render(name string, text string) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse %s template", name)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, b.variables); err != nil {
		return "", errors.Wrapf(err, "failed to execute %s template", name)
	}
	return buf.String(), nil
}
