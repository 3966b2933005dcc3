package conversation

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTranscript() *Transcript {
	return NewTranscript(
		NewSystemMessage("a"),
		NewSystemMessage("b"),
		NewUserMessage("hi"),
		NewAssistantMessage("hello"),
		NewChatMessage(RoleTool, `{"ok":true}`),
		NewSystemMessage("late"),
		NewDeveloperMessage("dev"),
	)
}

func TestTransformsRejectNilTranscript(t *testing.T) {
	ops := map[string]func() (*Transcript, error){
		"copy into source": func() (*Transcript, error) { return CopyInto(nil, NewTranscript()) },
		"copy into target": func() (*Transcript, error) { return CopyInto(NewTranscript(), nil) },
		"prepend":          func() (*Transcript, error) { return WithPrependedSystem(nil, "x") },
		"insert":           func() (*Transcript, error) { return InsertSystemAfterExistingSystemMessages(nil, "x") },
		"remove system":    func() (*Transcript, error) { return RemoveSystemMessages(nil) },
		"remove role":      func() (*Transcript, error) { return RemoveRole(nil, RoleTool) },
		"clone":            func() (*Transcript, error) { return Clone(nil) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			out, err := op()
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
		})
	}
}

func TestCopyIntoAppendsSourceAfterTarget(t *testing.T) {
	source := NewTranscript(NewUserMessage("q"), NewChatMessage(RoleTool, "r"))
	target := NewTranscript(NewSystemMessage("s"))

	out, err := CopyInto(source, target)
	require.NoError(t, err)

	assert.Equal(t, []Message{
		NewSystemMessage("s"),
		NewUserMessage("q"),
		NewChatMessage(RoleTool, "r"),
	}, out.Messages())
	assert.Equal(t, 2, source.Len())
	assert.Equal(t, 1, target.Len())
}

func TestCopyIntoEmptySource(t *testing.T) {
	target := NewTranscript(NewUserMessage("q"))
	out, err := CopyInto(NewTranscript(), target)
	require.NoError(t, err)
	assert.True(t, out.Equal(target))
	assert.NotSame(t, target, out)
}

func TestWithPrependedSystem(t *testing.T) {
	in := sampleTranscript()
	before := in.Messages()

	out, err := WithPrependedSystem(in, "C")
	require.NoError(t, err)

	require.Equal(t, in.Len()+1, out.Len())
	first, ok := out.At(0)
	require.True(t, ok)
	assert.Equal(t, NewSystemMessage("C"), first)
	assert.Equal(t, before, out.Messages()[1:])
	assert.Equal(t, before, in.Messages())
}

func TestInsertSystemAfterLeadingSystemRun(t *testing.T) {
	in := NewTranscript(NewSystemMessage("a"), NewSystemMessage("b"), NewUserMessage("hi"))

	out, err := InsertSystemAfterExistingSystemMessages(in, "c")
	require.NoError(t, err)

	assert.Equal(t, []Message{
		NewSystemMessage("a"),
		NewSystemMessage("b"),
		NewSystemMessage("c"),
		NewUserMessage("hi"),
	}, out.Messages())
	assert.Equal(t, 3, in.Len())
}

func TestInsertSystemIgnoresLaterSystemMessages(t *testing.T) {
	in := NewTranscript(NewUserMessage("hi"), NewSystemMessage("late"))

	out, err := InsertSystemAfterExistingSystemMessages(in, "x")
	require.NoError(t, err)

	assert.Equal(t, []Message{
		NewSystemMessage("x"),
		NewUserMessage("hi"),
		NewSystemMessage("late"),
	}, out.Messages())
}

func TestInsertSystemIntoAllSystemTranscript(t *testing.T) {
	out, err := InsertSystemAfterExistingSystemMessages(NewTranscript(NewSystemMessage("a")), "b")
	require.NoError(t, err)
	assert.Equal(t, []Message{NewSystemMessage("a"), NewSystemMessage("b")}, out.Messages())
}

func TestInsertSystemIntoEmptyTranscript(t *testing.T) {
	out, err := InsertSystemAfterExistingSystemMessages(NewTranscript(), "x")
	require.NoError(t, err)
	assert.Equal(t, []Message{NewSystemMessage("x")}, out.Messages())
}

func TestInsertSystemDoesNotAliasInput(t *testing.T) {
	// spare capacity in the input must not be shared with the output
	in := &Transcript{messages: make([]Message, 0, 8)}
	in.Append(NewSystemMessage("a"), NewUserMessage("u"))

	out, err := InsertSystemAfterExistingSystemMessages(in, "b")
	require.NoError(t, err)
	out.Append(NewUserMessage("more"))

	assert.Equal(t, []Message{NewSystemMessage("a"), NewUserMessage("u")}, in.Messages())
}

func TestRemoveSystemMessages(t *testing.T) {
	in := sampleTranscript()

	out, err := RemoveSystemMessages(in)
	require.NoError(t, err)

	assert.Equal(t, in.Len()-in.CountRole(RoleSystem), out.Len())
	assert.Equal(t, []Message{
		NewUserMessage("hi"),
		NewAssistantMessage("hello"),
		NewChatMessage(RoleTool, `{"ok":true}`),
		NewDeveloperMessage("dev"),
	}, out.Messages())
	assert.Equal(t, 7, in.Len())
}

func TestRemoveSystemMessagesIsIdempotent(t *testing.T) {
	once, err := RemoveSystemMessages(sampleTranscript())
	require.NoError(t, err)
	twice, err := RemoveSystemMessages(once)
	require.NoError(t, err)
	assert.True(t, once.Equal(twice))
}

func TestRemoveSystemAfterPrependRoundTrip(t *testing.T) {
	for _, in := range []*Transcript{
		NewTranscript(),
		NewTranscript(NewSystemMessage("only")),
		sampleTranscript(),
	} {
		prepended, err := WithPrependedSystem(in, "C")
		require.NoError(t, err)

		left, err := RemoveSystemMessages(prepended)
		require.NoError(t, err)
		right, err := RemoveSystemMessages(in)
		require.NoError(t, err)

		assert.True(t, left.Equal(right), "left=%s right=%s", left, right)
	}
}

func TestRemoveRoleKeepsOtherRoles(t *testing.T) {
	out, err := RemoveRole(sampleTranscript(), RoleTool)
	require.NoError(t, err)
	assert.Equal(t, 0, out.CountRole(RoleTool))
	assert.Equal(t, 3, out.CountRole(RoleSystem))
	assert.Equal(t, 6, out.Len())
}

func TestCloneIsIndependent(t *testing.T) {
	in := sampleTranscript()

	c, err := Clone(in)
	require.NoError(t, err)
	require.True(t, c.Equal(in))
	assert.NotSame(t, in, c)

	c.Append(NewUserMessage("extra"))
	assert.Equal(t, 7, in.Len())
	assert.Equal(t, 8, c.Len())

	in.Append(NewUserMessage("other"))
	last, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, NewUserMessage("extra"), last)
}

func TestCloneEmpty(t *testing.T) {
	c, err := Clone(NewTranscript())
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Equal(NewTranscript()))
}
