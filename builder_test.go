package uriref_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/uriref"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		build   func(b *uriref.Builder) *uriref.Builder
		want    string
		wantErr error
	}{
		{
			"zero builder",
			func(b *uriref.Builder) *uriref.Builder { return b },
			"", nil,
		},
		{
			"full",
			func(b *uriref.Builder) *uriref.Builder {
				return b.SetScheme("https").
					SetUserInfo("user:pw").
					SetHost("example.com").
					SetPortNumber(8080).
					SetPath("/a/b").
					SetQuery("q=1").
					SetFragment("frag")
			},
			"https://user:pw@example.com:8080/a/b?q=1#frag", nil,
		},
		{
			"host only",
			func(b *uriref.Builder) *uriref.Builder { return b.SetHost("example.com") },
			"//example.com", nil,
		},
		{
			"empty host",
			func(b *uriref.Builder) *uriref.Builder { return b.SetHost("") },
			"//", nil,
		},
		{
			"bracketed host",
			func(b *uriref.Builder) *uriref.Builder {
				return b.SetScheme("http").SetHost("[::1]").SetPath("/")
			},
			"http://[::1]/", nil,
		},
		{
			"port digits preserved",
			func(b *uriref.Builder) *uriref.Builder {
				return b.SetHost("h").SetPortDigits("0080")
			},
			"//h:0080", nil,
		},
		{
			"empty port",
			func(b *uriref.Builder) *uriref.Builder {
				return b.SetHost("h").SetPortDigits("")
			},
			"//h:", nil,
		},
		{
			"rootless with scheme",
			func(b *uriref.Builder) *uriref.Builder {
				return b.SetScheme("mailto").SetPath("a@b")
			},
			"mailto:a@b", nil,
		},
		{
			"unset wins",
			func(b *uriref.Builder) *uriref.Builder {
				return b.SetScheme("http").UnsetScheme().
					SetHost("h").SetPortNumber(80).UnsetPort().
					SetQuery("q").UnsetQuery().
					SetFragment("f").UnsetFragment().
					SetPath("/p")
			},
			"//h/p", nil,
		},

		{
			"invalid scheme",
			func(b *uriref.Builder) *uriref.Builder { return b.SetScheme("1http") },
			"", uriref.ErrInvalidScheme,
		},
		{
			"invalid userinfo",
			func(b *uriref.Builder) *uriref.Builder {
				return b.SetHost("h").SetUserInfo("u ser")
			},
			"", uriref.ErrInvalidUserInfo,
		},
		{
			"userinfo without host",
			func(b *uriref.Builder) *uriref.Builder { return b.SetUserInfo("u") },
			"", uriref.ErrInvalidHost,
		},
		{
			"port without host",
			func(b *uriref.Builder) *uriref.Builder { return b.SetPortNumber(80) },
			"", uriref.ErrInvalidHost,
		},
		{
			"invalid host",
			func(b *uriref.Builder) *uriref.Builder { return b.SetHost("[::1") },
			"", uriref.ErrInvalidHost,
		},
		{
			"invalid port",
			func(b *uriref.Builder) *uriref.Builder {
				return b.SetHost("h").SetPortDigits("8a")
			},
			"", uriref.ErrInvalidPort,
		},
		{
			"invalid path",
			func(b *uriref.Builder) *uriref.Builder { return b.SetPath("/a b") },
			"", uriref.ErrInvalidPath,
		},
		{
			"invalid query",
			func(b *uriref.Builder) *uriref.Builder { return b.SetQuery("a=^") },
			"", uriref.ErrInvalidQuery,
		},
		{
			"invalid fragment",
			func(b *uriref.Builder) *uriref.Builder { return b.SetFragment("a b") },
			"", uriref.ErrInvalidFragment,
		},
		{
			"rootless path with authority",
			func(b *uriref.Builder) *uriref.Builder {
				return b.SetHost("h").SetPath("a/b")
			},
			"", uriref.ErrPathShapeConflict,
		},
		{
			"double slash path without authority",
			func(b *uriref.Builder) *uriref.Builder { return b.SetPath("//a/b") },
			"", uriref.ErrPathShapeConflict,
		},
		{
			"ambiguous first segment",
			func(b *uriref.Builder) *uriref.Builder { return b.SetPath("a:b") },
			"", uriref.ErrAmbiguousRelativeRef,
		},
		{
			"append segments rootless",
			func(b *uriref.Builder) *uriref.Builder {
				return b.AppendSegment("a").AppendSegment("b")
			},
			"a/b", nil,
		},
		{
			"append segments absolute",
			func(b *uriref.Builder) *uriref.Builder {
				return b.SetHost("h").SetPath("/").AppendSegment("a").AppendSegment("b")
			},
			"//h/a/b", nil,
		},
		{
			"append invalid segment",
			func(b *uriref.Builder) *uriref.Builder {
				return b.AppendSegment("a b")
			},
			"", uriref.ErrInvalidPath,
		},
		{
			"scheme resolves ambiguity",
			func(b *uriref.Builder) *uriref.Builder {
				return b.SetScheme("x").SetPath("a:b")
			},
			"x:a:b", nil,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ref, err := c.build(uriref.NewBuilder()).Build()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Build() error mismatch (-got +want):\n%s", diff)
			}
			if c.wantErr != nil {
				return
			}
			if got := ref.String(); got != c.want {
				t.Errorf("ref.String() = %q, want %q", got, c.want)
			}
			if !ref.IsValid() {
				t.Errorf("ref.IsValid() = false, want true")
			}

			// The builder and the parser must agree on the same text.
			parsed, err := uriref.Parse(c.want)
			if err != nil {
				t.Fatalf("Parse(%q) err = %v, want nil", c.want, err)
			}
			if !uriref.Equal(ref, parsed) {
				t.Errorf("Equal(built, parsed) = false, want true")
			}
		})
	}
}

func TestNewBuilderFrom(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"https://user@example.com:8080/a/b?q=1#frag",
		"//[fe80::1%25eth0]:0/",
		"mailto:a@b",
		"p?#",
	}

	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			ref := mustParse(t, input)
			rebuilt, err := uriref.NewBuilderFrom(ref).Build()
			if err != nil {
				t.Fatalf("Build() err = %v, want nil", err)
			}
			if got := rebuilt.String(); got != input {
				t.Errorf("rebuilt.String() = %q, want %q", got, input)
			}
		})
	}
}

func TestNewBuilderFrom_Modify(t *testing.T) {
	t.Parallel()

	ref := mustParse(t, "http://example.com/a")
	got, err := uriref.NewBuilderFrom(ref).
		SetScheme("https").
		SetPortNumber(8443).
		Build()
	if err != nil {
		t.Fatalf("Build() err = %v, want nil", err)
	}
	if want := "https://example.com:8443/a"; got.String() != want {
		t.Errorf("got.String() = %q, want %q", got.String(), want)
	}
	// The source reference is untouched.
	if want := "http://example.com/a"; ref.String() != want {
		t.Errorf("ref.String() = %q, want %q", ref.String(), want)
	}
}

func TestBuilder_BuildURI(t *testing.T) {
	t.Parallel()

	uri, err := uriref.NewBuilder().SetScheme("http").SetHost("h").BuildURI()
	if err != nil {
		t.Fatalf("BuildURI() err = %v, want nil", err)
	}
	if got, want := uri.String(), "http://h"; got != want {
		t.Errorf("uri.String() = %q, want %q", got, want)
	}

	_, err = uriref.NewBuilder().SetPath("/p").BuildURI()
	if diff := cmp.Diff(err, error(uriref.ErrMissingScheme), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("BuildURI() error mismatch (-got +want):\n%s", diff)
	}
}
