package conversation

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleDeveloper Role = "developer"
	RoleTool      Role = "tool"
)

// Title returns the role name with its first letter upper-cased, as used in log lines
// ("System message: ...").
func (r Role) Title() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// Message is a single role-tagged entry of a Transcript.
//
// Messages are values: copying a Message copies its role and content, and none of
// the transcript operations ever modify a Message in place.
type Message struct {
	Role    Role   `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

func NewChatMessage(role Role, content string) Message {
	return Message{Role: role, Content: content}
}

func NewSystemMessage(content string) Message {
	return NewChatMessage(RoleSystem, content)
}

func NewUserMessage(content string) Message {
	return NewChatMessage(RoleUser, content)
}

func NewAssistantMessage(content string) Message {
	return NewChatMessage(RoleAssistant, content)
}

func NewDeveloperMessage(content string) Message {
	return NewChatMessage(RoleDeveloper, content)
}

func (m Message) IsSystem() bool {
	return m.Role == RoleSystem
}

func (m Message) String() string {
	return m.Content
}

func (m Message) View() string {
	return fmt.Sprintf("[%s]: %s", m.Role, strings.TrimRight(m.Content, "\n"))
}
