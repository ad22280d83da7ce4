package indent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidUnit is returned by ParseUnit for spellings that do not describe
// a non-empty all-tab or all-space run.
var ErrInvalidUnit = errors.New("invalid indentation unit")

// MaxUnitWidth bounds the repeat count accepted by ParseUnit.
const MaxUnitWidth = 16

// Unit is the text of one indentation level. A valid configured unit is a
// non-empty run of only tabs or only spaces; an inferred unit may be empty,
// which turns substitution into a no-op.
type Unit string

// Tab is the single-tab unit.
const Tab Unit = "\t"

// Spaces returns a unit of n spaces.
func Spaces(n int) Unit { return Unit(strings.Repeat(" ", n)) }

// Tabs returns a unit of n tabs.
func Tabs(n int) Unit { return Unit(strings.Repeat("\t", n)) }

// HasTab reports whether the unit contains a tab character.
func (u Unit) HasTab() bool { return strings.IndexByte(string(u), '\t') >= 0 }

// IsEmpty reports whether the unit is the empty string.
func (u Unit) IsEmpty() bool { return u == "" }

// Valid reports whether u is non-empty and made of a single repeated character,
// either ' ' or '\t'.
func (u Unit) Valid() bool {
	if u == "" {
		return false
	}
	c := u[0]
	if c != ' ' && c != '\t' {
		return false
	}
	return strings.Count(string(u), string(c)) == len(u)
}

// Describe renders the unit for humans: "4 spaces", "1 tab", "empty".
func (u Unit) Describe() string {
	if u == "" {
		return "empty"
	}
	if !u.Valid() {
		return strconv.Quote(string(u))
	}
	n := len(u)
	word := "space"
	if u[0] == '\t' {
		word = "tab"
	}
	if n != 1 {
		word += "s"
	}
	return fmt.Sprintf("%d %s", n, word)
}

// ParseUnit accepts "tab", "tabs", "tab:N", "space:N", "spaces:N", a bare
// integer N (N spaces) or a literal run of tabs or spaces.
func ParseUnit(s string) (Unit, error) {
	if s != "" && Unit(s).Valid() {
		return Unit(s), nil
	}

	norm := strings.ToLower(strings.TrimSpace(s))
	name, count, hasCount := strings.Cut(norm, ":")
	if !hasCount {
		if n, err := strconv.Atoi(name); err == nil {
			return repeatUnit(' ', n, s)
		}
	}

	n := 1
	if hasCount {
		var err error
		n, err = strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return "", fmt.Errorf("%w %q: bad count: %w", ErrInvalidUnit, s, err)
		}
	}
	switch strings.TrimSpace(name) {
	case "tab", "tabs":
		return repeatUnit('\t', n, s)
	case "space", "spaces":
		if !hasCount {
			return "", fmt.Errorf("%w %q: spaces need a width, e.g. spaces:4", ErrInvalidUnit, s)
		}
		return repeatUnit(' ', n, s)
	}
	return "", fmt.Errorf("%w %q", ErrInvalidUnit, s)
}

func repeatUnit(c byte, n int, orig string) (Unit, error) {
	if n < 1 || n > MaxUnitWidth {
		return "", fmt.Errorf("%w %q: width must be in 1..%d", ErrInvalidUnit, orig, MaxUnitWidth)
	}
	return Unit(strings.Repeat(string(c), n)), nil
}
