package openai

import (
	"github.com/go-go-golems/chathistory/pkg/conversation"
	"github.com/pkg/errors"
	go_openai "github.com/sashabaranov/go-openai"
)

// ToChatCompletionMessages converts a transcript into the message list of an OpenAI
// chat completion request. Roles are passed through unchanged, so developer and tool
// messages keep their role string.
func ToChatCompletionMessages(t *conversation.Transcript) ([]go_openai.ChatCompletionMessage, error) {
	if t == nil {
		return nil, errors.Wrap(conversation.ErrInvalidArgument, "to openai: transcript is nil")
	}
	msgs := t.Messages()
	ret := make([]go_openai.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		ret = append(ret, go_openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return ret, nil
}

// FromChatCompletionMessages builds a transcript from OpenAI chat messages. Only the
// role and the text content are kept.
func FromChatCompletionMessages(msgs []go_openai.ChatCompletionMessage) *conversation.Transcript {
	t := conversation.NewTranscript()
	for _, m := range msgs {
		t.Append(conversation.NewChatMessage(conversation.Role(m.Role), m.Content))
	}
	return t
}

// NewChatCompletionRequest wraps the converted transcript in a request for model.
func NewChatCompletionRequest(model string, t *conversation.Transcript) (*go_openai.ChatCompletionRequest, error) {
	msgs, err := ToChatCompletionMessages(t)
	if err != nil {
		return nil, err
	}
	return &go_openai.ChatCompletionRequest{
		Model:    model,
		Messages: msgs,
	}, nil
}
