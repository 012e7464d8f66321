package grammar_test

import (
	"testing"

	"github.com/ghettovoice/uriref/internal/grammar"
)

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no escapes", "abc", "abc"},
		{"single triplet", "a%20b", "a b"},
		{"lowercase hex", "a%2fb", "a/b"},
		{"uppercase hex", "a%2Fb", "a/b"},
		{"triplet at end", "ab%41", "abA"},
		{"adjacent triplets", "%61%62", "ab"},
		{"malformed kept", "a%zzb", "a%zzb"},
		{"bare percent kept", "a%", "a%"},
		{"short triplet kept", "a%4", "a%4"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.Unescape(c.input); got != c.want {
				t.Errorf("Unescape(%q) = %q, want %q", c.input, got, c.want)
			}
			if got := grammar.Unescape([]byte(c.input)); string(got) != c.want {
				t.Errorf("Unescape(%q bytes) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		should func(byte) bool
		want   string
	}{
		{"empty", "", nil, ""},
		{"unreserved untouched", "abc-._~", nil, "abc-._~"},
		{"space", "a b", nil, "a%20b"},
		{"slash", "a/b", nil, "a%2Fb"},
		{"existing triplet kept", "a%2fb", nil, "a%2fb"},
		{"custom class", "a/b", func(c byte) bool { return c == '/' }, "a%2Fb"},
		{"custom class noop", "a/b", func(c byte) bool { return false }, "a/b"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.Escape(c.input, c.should); got != c.want {
				t.Errorf("Escape(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}
