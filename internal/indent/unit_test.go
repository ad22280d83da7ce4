package indent

import (
	"errors"
	"testing"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in   string
		want Unit
	}{
		{"tab", Tab},
		{"Tabs", Tab},
		{"tab:2", "\t\t"},
		{"spaces:4", "    "},
		{"space: 2", "  "},
		{"3", "   "},
		{"\t", Tab},
		{"  ", "  "},
	}
	for _, tt := range tests {
		got, err := ParseUnit(tt.in)
		if err != nil {
			t.Errorf("ParseUnit(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseUnitRejects(t *testing.T) {
	for _, in := range []string{"", "spaces", "tab:0", "spaces:17", "0", "\t ", "x", "tab:abc"} {
		if _, err := ParseUnit(in); !errors.Is(err, ErrInvalidUnit) {
			t.Errorf("ParseUnit(%q) error = %v, want ErrInvalidUnit", in, err)
		}
	}
}

func TestUnitDescribe(t *testing.T) {
	tests := map[Unit]string{
		"":       "empty",
		Tab:      "1 tab",
		"\t\t":   "2 tabs",
		" ":      "1 space",
		"    ":   "4 spaces",
		"\t    ": `"\t    "`,
	}
	for u, want := range tests {
		if got := u.Describe(); got != want {
			t.Errorf("%q.Describe() = %q, want %q", string(u), got, want)
		}
	}
}
