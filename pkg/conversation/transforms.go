package conversation

import (
	"github.com/huandu/go-clone"
	"github.com/rs/zerolog/log"
)

// The functions in this file never modify their inputs. Each one either returns
// a freshly allocated Transcript or an error, never both.

// CopyInto returns a new transcript holding the messages of target followed by
// every message of source, in order. Neither source nor target is modified; use
// target.Append(source.Messages()...) to extend target in place.
func CopyInto(source, target *Transcript) (*Transcript, error) {
	if source == nil {
		return nil, errNilTranscript("copy into: source")
	}
	if target == nil {
		return nil, errNilTranscript("copy into: target")
	}

	out := make([]Message, 0, len(target.messages)+len(source.messages))
	out = append(out, target.messages...)
	out = append(out, source.messages...)

	log.Trace().
		Int("source_count", len(source.messages)).
		Int("target_count", len(target.messages)).
		Msg("copied transcript")

	return &Transcript{messages: out}, nil
}

// WithPrependedSystem returns a new transcript that starts with a system message
// holding content, followed by the messages of t.
func WithPrependedSystem(t *Transcript, content string) (*Transcript, error) {
	if t == nil {
		return nil, errNilTranscript("prepend system")
	}

	out := make([]Message, 0, len(t.messages)+1)
	out = append(out, NewSystemMessage(content))
	out = append(out, t.messages...)

	return &Transcript{messages: out}, nil
}

// leadingSystemCount returns the length of the run of system messages at the start of msgs.
// System messages that appear after the first non-system message do not count.
func leadingSystemCount(msgs []Message) int {
	for i, m := range msgs {
		if !m.IsSystem() {
			return i
		}
	}
	return len(msgs)
}

// InsertSystemAfterExistingSystemMessages returns a new transcript with a system
// message holding content inserted right after the leading run of system messages.
// If t is empty or holds only system messages, the new message ends up last.
func InsertSystemAfterExistingSystemMessages(t *Transcript, content string) (*Transcript, error) {
	if t == nil {
		return nil, errNilTranscript("insert system")
	}

	idx := leadingSystemCount(t.messages)
	out := make([]Message, 0, len(t.messages)+1)
	out = append(out, t.messages[:idx]...)
	out = append(out, NewSystemMessage(content))
	out = append(out, t.messages[idx:]...)

	log.Trace().
		Int("insert_index", idx).
		Int("message_count", len(out)).
		Msg("inserted system message")

	return &Transcript{messages: out}, nil
}

// RemoveRole returns a new transcript without the messages whose role is role.
// All other messages keep their relative order.
func RemoveRole(t *Transcript, role Role) (*Transcript, error) {
	if t == nil {
		return nil, errNilTranscript("remove role " + string(role))
	}

	out := make([]Message, 0, len(t.messages))
	for _, m := range t.messages {
		if m.Role == role {
			continue
		}
		out = append(out, m)
	}

	return &Transcript{messages: out}, nil
}

// RemoveSystemMessages returns a new transcript without any system message.
func RemoveSystemMessages(t *Transcript) (*Transcript, error) {
	if t == nil {
		return nil, errNilTranscript("remove system messages")
	}
	return RemoveRole(t, RoleSystem)
}

// Clone returns an independent copy of t.
func Clone(t *Transcript) (*Transcript, error) {
	if t == nil {
		return nil, errNilTranscript("clone")
	}
	if len(t.messages) == 0 {
		return &Transcript{}, nil
	}
	return &Transcript{messages: clone.Clone(t.messages).([]Message)}, nil
}
