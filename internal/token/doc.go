// Package token defines the flat token stream consumed by the indentation fixer.
// Invariants:
//   - Every byte of the source belongs to exactly one token; concatenating
//     Token.Text over a Stream reproduces the input.
//   - Token is a value; replacements are new values written back with Stream.Replace.
//   - Replace never changes the stream length or the kind at an index.
//   - The last token of a lexed stream is EOF with empty Text.
package token
