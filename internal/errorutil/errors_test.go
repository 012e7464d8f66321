package errorutil_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ghettovoice/uriref/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		args     []any
		wantMsg  string
		wantIs   error
		wantSame bool
	}{
		{"no args", nil, "sentinel", errSentinel, true},
		{"error arg", []any{errors.New("cause")}, "sentinel: cause", errSentinel, false},
		{"already wrapped", []any{fmt.Errorf("%w: cause", errSentinel)}, "sentinel: cause", errSentinel, false},
		{"string arg", []any{"detail"}, "sentinel: detail", errSentinel, false},
		{"format args", []any{"pos %d", 3}, "sentinel: pos 3", errSentinel, false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("err.Error() = %q, want %q", got, c.wantMsg)
			}
			if !errors.Is(err, c.wantIs) {
				t.Errorf("errors.Is(err, %v) = false, want true", c.wantIs)
			}
			if same := err == error(errSentinel); same != c.wantSame {
				t.Errorf("err == sentinel = %v, want %v", same, c.wantSame)
			}
		})
	}
}

func TestNewWrapperError_KeepsWrapped(t *testing.T) {
	t.Parallel()

	inner := errorutil.NewWrapperError(errSentinel, "detail")
	outer := errorutil.NewWrapperError(errSentinel, inner)
	if outer != inner {
		t.Errorf("NewWrapperError(sentinel, wrapped) = %v, want the wrapped error unchanged", outer)
	}
}

func TestIsGrammarErr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("plain"), false},
		{"sentinel", errSentinel, true},
		{"wrapped sentinel", errorutil.NewWrapperError(errSentinel, "detail"), true},
		{"deeply wrapped", fmt.Errorf("outer: %w", errorutil.NewWrapperError(errSentinel, "detail")), true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := errorutil.IsGrammarErr(c.err); got != c.want {
				t.Errorf("IsGrammarErr(%v) = %v, want %v", c.err, got, c.want)
			}
		})
	}
}
