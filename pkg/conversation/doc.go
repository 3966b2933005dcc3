// Package conversation provides a small set of operations over an ordered chat
// transcript made of role-tagged messages (system, user, assistant, developer and
// any other role a chat model uses, such as tool).
//
// The operations come in two families:
//
//   - Logged appends (AppendSystemLogged, AppendUserLogged, ...) mutate the
//     transcript they are given and return that same *Transcript, so they can be
//     chained. When a Sink is passed with WithSink, each append emits one record of
//     the form "<Role> message: <content>".
//   - Structural transforms (CopyInto, WithPrependedSystem,
//     InsertSystemAfterExistingSystemMessages, RemoveSystemMessages, Clone) never
//     touch their input and always return a freshly allocated *Transcript.
//
// Every operation rejects a nil transcript with ErrInvalidArgument.
package conversation
