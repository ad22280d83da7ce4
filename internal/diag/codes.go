package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnterminatedBlockComment Code = 1001
	LexUnterminatedString       Code = 1002

	// Отступы
	IndentInfo            Code = 2000
	IndentTabToTabSkipped Code = 2001
	IndentEmptyUnit       Code = 2002

	IOLoadFileError Code = 3001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexUnterminatedString:       "Unterminated string literal",
	IndentInfo:                  "Indentation information",
	IndentTabToTabSkipped:       "tab to tab indentation left unchanged",
	IndentEmptyUnit:             "inferred indentation unit is empty",
	IOLoadFileError:             "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("IND%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
