package uriref_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/uriref"
)

func TestPctDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"empty", "", "", nil},
		{"no escapes", "abc", "abc", nil},
		{"space", "a%20b", "a b", nil},
		{"lowercase hex", "a%2fb", "a/b", nil},
		{"uppercase hex", "a%2Fb", "a/b", nil},
		{"triplet at end", "ab%41", "abA", nil},
		{"reserved decoded too", "%3A%2F%2F", "://", nil},
		{"bare percent", "a%", "", uriref.ErrInvalidPercentEncoding},
		{"short triplet", "a%4", "", uriref.ErrInvalidPercentEncoding},
		{"non-hex triplet", "a%zzb", "", uriref.ErrInvalidPercentEncoding},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uriref.PctDecode(c.input)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("PctDecode(%q) error mismatch (-got +want):\n%s", c.input, diff)
			}
			if got != c.want {
				t.Errorf("PctDecode(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestPctDecode_Bytes(t *testing.T) {
	t.Parallel()

	got, err := uriref.PctDecode([]byte("a%20b"))
	if err != nil {
		t.Fatalf("PctDecode() err = %v, want nil", err)
	}
	if string(got) != "a b" {
		t.Errorf("PctDecode() = %q, want %q", got, "a b")
	}
}

func TestPctEncode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"unreserved untouched", "abc-._~09AZ", "abc-._~09AZ"},
		{"space", "a b", "a%20b"},
		{"reserved", "a/b?c", "a%2Fb%3Fc"},
		{"existing triplet kept", "a%2fb", "a%2fb"},
		{"idempotent", "a%20b", "a%20b"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := uriref.PctEncode(c.input); got != c.want {
				t.Errorf("PctEncode(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}
