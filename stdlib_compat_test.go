package atomre

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/dlclark/regexp2"

	"github.com/coregx/atomre/syntax"
)

// translate rewrites pattern into the syntax shared by regexp and regexp2.
// Every literal and set member is hex-escaped, so no byte keeps a meaning
// it does not have here. Patterns and subjects must be ASCII.
func translate(pattern string) string {
	var sb strings.Builder
	sb.WriteString("(?s)")

	for pos := 0; pos < len(pattern); {
		tok := syntax.ParseAtom(pattern, pos)
		switch tok.Op {
		case syntax.OpAnchor:
			sb.WriteString(`\A`)
		case syntax.OpEndAnchor:
			sb.WriteString(`\z`)
		case syntax.OpWildcard:
			sb.WriteString(".")
		case syntax.OpLiteral:
			fmt.Fprintf(&sb, `\x%02x`, tok.Char)
		case syntax.OpSet:
			if tok.Members == "" {
				sb.WriteString(`[^\s\S]`)
				break
			}
			sb.WriteByte('[')
			for i := 0; i < len(tok.Members); i++ {
				fmt.Fprintf(&sb, `\x%02x`, tok.Members[i])
			}
			sb.WriteByte(']')
		}

		switch tok.Quant {
		case syntax.QuantStar:
			sb.WriteByte('*')
		case syntax.QuantPlus:
			sb.WriteByte('+')
		}
		pos = tok.Next
	}
	return sb.String()
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		pattern, want string
	}{
		{"", "(?s)"},
		{"^a.$", `(?s)\A\x61.\z`},
		{"[ab]+c**", `(?s)[\x61\x62]+\x63*`},
		{"[]x[", `(?s)[^\s\S]\x78[^\s\S]`},
		{"*^$+", `(?s)\x2a\x5e\x24+`},
		{"a-*b]", `(?s)\x61\x62`},
	}

	for _, tt := range tests {
		if got := translate(tt.pattern); got != tt.want {
			t.Errorf("translate(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}

// allStrings returns every string over alphabet of length 0..maxLen.
func allStrings(alphabet string, maxLen int) []string {
	out := []string{""}
	level := []string{""}
	for n := 1; n <= maxLen; n++ {
		var next []string
		for _, s := range level {
			for i := 0; i < len(alphabet); i++ {
				next = append(next, s+alphabet[i:i+1])
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

// TestStdlibCompat checks both engines against regexp on every short
// pattern over the full syntax.
func TestStdlibCompat(t *testing.T) {
	maxPattern := 4
	if testing.Short() {
		maxPattern = 3
	}
	patterns := allStrings("ab.*+^$[]", maxPattern)
	subjects := allStrings("ab$", 3)

	for _, p := range patterns {
		re := regexp.MustCompile(translate(p))
		for _, s := range subjects {
			want := re.MatchString(s)
			if got := MatchDirect(p, s); got != want {
				t.Fatalf("MatchDirect(%q, %q) = %v, regexp %#q says %v", p, s, got, re, want)
			}
			if got := MatchCompiled(p, s); got != want {
				t.Fatalf("MatchCompiled(%q, %q) = %v, regexp %#q says %v", p, s, got, re, want)
			}
		}
	}
}

// TestRegexp2Compat checks the compiled engine against a backtracking
// engine on hand-picked patterns.
func TestRegexp2Compat(t *testing.T) {
	patterns := []string{
		"^b+a*d+$", "[bad]*", "^a[bad]*$", "a.c", "x$", "[abc", "",
		"he[lm]p.*", "colou*r", "^.*$", "[xyz]+[xyz]", "a.*b.*c", "$", "^",
		"[]*a", "**", "a++b", "^^a", "a$$", "a-b", "foo_bar", "[ab]-c",
	}
	subjects := []string{
		"", "baaaad", "abc", "ac", "x", "xy", "help", "hemp me", "color",
		"colouur", "zzz", "z", "aXbYc", "acb", "*", "^a", "a$", "ab",
		"a-b", "foobar", "foo_bar", "b-c",
	}

	for _, p := range patterns {
		re := regexp2.MustCompile(translate(p), regexp2.None)
		for _, s := range subjects {
			want, err := re.MatchString(s)
			if err != nil {
				t.Fatalf("regexp2 %q on %q: %v", p, s, err)
			}
			if got := MatchCompiled(p, s); got != want {
				t.Errorf("MatchCompiled(%q, %q) = %v, regexp2 says %v", p, s, got, want)
			}
		}
	}
}
