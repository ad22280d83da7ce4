package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Whitespace is a maximal run of spaces, tabs and line breaks.
	Whitespace
	// Comment is a line ("//", "#") or block ("/* */") comment.
	Comment
	// DocComment is a documentation comment ("///", "/** */").
	DocComment
	// Other covers everything else: code, literals, punctuation.
	Other
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Whitespace:
		return "Whitespace"
	case Comment:
		return "Comment"
	case DocComment:
		return "DocComment"
	case Other:
		return "Other"
	default:
		return "Kind(?)"
	}
}

// IsComment reports whether k is a Comment or a DocComment.
func (k Kind) IsComment() bool {
	return k == Comment || k == DocComment
}
