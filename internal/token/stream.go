package token

import (
	"fmt"
	"strings"
)

// Stream is an ordered, index-addressable token sequence.
type Stream struct {
	toks []Token
}

// NewStream wraps toks. The slice is owned by the stream afterwards.
func NewStream(toks []Token) Stream {
	return Stream{toks: toks}
}

// Len returns the number of tokens.
func (s Stream) Len() int { return len(s.toks) }

// At returns the token at index i.
func (s Stream) At(i int) Token { return s.toks[i] }

// Prev returns the token before index i; ok is false at the start of the stream.
func (s Stream) Prev(i int) (tok Token, ok bool) {
	if i <= 0 || i > len(s.toks) {
		return Token{}, false
	}
	return s.toks[i-1], true
}

// Replace writes tok at index i. The replacement must keep the kind at that
// index; anything else is a programming error and panics.
func (s Stream) Replace(i int, tok Token) {
	if i < 0 || i >= len(s.toks) {
		panic(fmt.Errorf("token: replace index %d out of range [0,%d)", i, len(s.toks)))
	}
	if s.toks[i].Kind != tok.Kind {
		panic(fmt.Errorf("token: replace at %d changes kind %s -> %s", i, s.toks[i].Kind, tok.Kind))
	}
	s.toks[i] = tok
}

// Tokens returns the underlying slice. Callers must not append to it.
func (s Stream) Tokens() []Token { return s.toks }

// Kinds returns the kind sequence of the stream.
func (s Stream) Kinds() []Kind {
	out := make([]Kind, len(s.toks))
	for i := range s.toks {
		out[i] = s.toks[i].Kind
	}
	return out
}

// HasAny reports whether at least one token has one of the given kinds.
func (s Stream) HasAny(kinds ...Kind) bool {
	for i := range s.toks {
		for _, k := range kinds {
			if s.toks[i].Kind == k {
				return true
			}
		}
	}
	return false
}

// Render concatenates the text of every token.
func (s Stream) Render() string {
	n := 0
	for i := range s.toks {
		n += len(s.toks[i].Text)
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := range s.toks {
		sb.WriteString(s.toks[i].Text)
	}
	return sb.String()
}
