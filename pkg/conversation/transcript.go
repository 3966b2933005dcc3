package conversation

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidArgument is returned by every transcript operation that is handed a nil transcript.
var ErrInvalidArgument = errors.New("invalid argument")

func errNilTranscript(op string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: transcript is nil", op)
}

// Transcript is an ordered, append-oriented chat history.
//
// A nil *Transcript is the "absent" transcript: the package level operations
// reject it with ErrInvalidArgument. The methods on Transcript are safe to call on
// nil and behave like an empty transcript, except Append, which needs a receiver.
//
// Transcript does no locking. Sharing one instance between goroutines that mutate
// it is the caller's problem.
type Transcript struct {
	messages []Message
}

// NewTranscript creates a transcript holding a copy of msgs.
func NewTranscript(msgs ...Message) *Transcript {
	t := &Transcript{}
	if len(msgs) > 0 {
		t.messages = make([]Message, len(msgs))
		copy(t.messages, msgs)
	}
	return t
}

// Append adds msgs to the end of t in place and returns t.
func (t *Transcript) Append(msgs ...Message) *Transcript {
	t.messages = append(t.messages, msgs...)
	return t
}

func (t *Transcript) Len() int {
	if t == nil {
		return 0
	}
	return len(t.messages)
}

// At returns the message at index i.
func (t *Transcript) At(i int) (Message, bool) {
	if t == nil || i < 0 || i >= len(t.messages) {
		return Message{}, false
	}
	return t.messages[i], true
}

// Last returns the newest message.
func (t *Transcript) Last() (Message, bool) {
	return t.At(t.Len() - 1)
}

// Messages returns a copy of the messages in order. Changing the returned slice does
// not affect t.
func (t *Transcript) Messages() []Message {
	if t == nil || len(t.messages) == 0 {
		return nil
	}
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) CountRole(role Role) int {
	if t == nil {
		return 0
	}
	n := 0
	for _, m := range t.messages {
		if m.Role == role {
			n++
		}
	}
	return n
}

// Equal reports whether both transcripts hold the same messages in the same order.
// Two nil transcripts are equal; a nil and an empty transcript are not.
func (t *Transcript) Equal(other *Transcript) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.messages) != len(other.messages) {
		return false
	}
	for i := range t.messages {
		if t.messages[i] != other.messages[i] {
			return false
		}
	}
	return true
}

// GetSinglePrompt concatenates all the messages together, prefixed by their role.
// A transcript with a single message yields just that message's content.
func (t *Transcript) GetSinglePrompt() string {
	switch t.Len() {
	case 0:
		return ""
	case 1:
		return t.messages[0].Content
	}

	var sb strings.Builder
	for _, m := range t.messages {
		fmt.Fprintf(&sb, "[%s]: %s\n", m.Role, m.Content)
	}
	return sb.String()
}

func (t *Transcript) String() string {
	if t == nil {
		return "<nil>"
	}
	views := make([]string, 0, len(t.messages))
	for _, m := range t.messages {
		views = append(views, m.View())
	}
	return strings.Join(views, "\n")
}

// MarshalYAML encodes the transcript as a plain sequence of messages.
func (t Transcript) MarshalYAML() (interface{}, error) {
	if t.messages == nil {
		return []Message{}, nil
	}
	return t.messages, nil
}

func (t *Transcript) UnmarshalYAML(value *yaml.Node) error {
	var msgs []Message
	if err := value.Decode(&msgs); err != nil {
		return errors.Wrap(err, "failed to decode transcript")
	}
	t.messages = msgs
	return nil
}

// LoadYAML decodes a transcript from YAML bytes.
func LoadYAML(data []byte) (*Transcript, error) {
	t := &Transcript{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, err
	}
	return t, nil
}
