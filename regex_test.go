package atomre

import (
	"errors"
	"strings"
	"testing"
)

func TestMatch_Properties(t *testing.T) {
	tests := []struct {
		pattern, subject string
		want             bool
	}{
		{"^b+a*d+$", "baaaad", true},
		{"[bad]*", "baaaad", true},
		{"^a[bad]*$", "baaaad", false},
		{"a.c", "abc", true},
		{"a.c", "ac", false},
		{"", "", true},
		{"", "anything at all", true},
		{"x$", "x", true},
		{"x$", "xy", false},
		{"[abc", "a", false},
		{"[abc", "", false},
		{"a*", "", true},
		{"b*$", "aaa", true},
		{"a+", "", false},
		{"a$b", "a$b", true},
		{"a^b", "a^b", true},
		{"a-b", "ab", true},
		{"foo_bar", "foobar", true},
		{"foo_bar", "foo_bar", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.subject, func(t *testing.T) {
			if got := MatchDirect(tt.pattern, tt.subject); got != tt.want {
				t.Errorf("MatchDirect(%q, %q) = %v, want %v", tt.pattern, tt.subject, got, tt.want)
			}
			if got := MatchCompiled(tt.pattern, tt.subject); got != tt.want {
				t.Errorf("MatchCompiled(%q, %q) = %v, want %v", tt.pattern, tt.subject, got, tt.want)
			}
		})
	}
}

func TestMatch_FailsClosed(t *testing.T) {
	// Exponential without a budget; the default budget gives up.
	pattern := strings.Repeat(".*", 20) + "b"
	subject := strings.Repeat("a", 200)

	if MatchDirect(pattern, subject) {
		t.Error("MatchDirect reported a match after exhausting its budget")
	}
	if MatchCompiled(pattern, subject) {
		t.Error("MatchCompiled reported a match after exhausting its budget")
	}
}

func TestEngine_Errors(t *testing.T) {
	e, err := New(DefaultConfig().WithMaxSteps(500).WithMaxAtoms(8))
	if err != nil {
		t.Fatal(err)
	}

	pattern := strings.Repeat("a*", 6) + "b"
	subject := strings.Repeat("a", 30)
	if _, err := e.MatchDirect(pattern, subject); !errors.Is(err, ErrBudgetExceeded) {
		t.Errorf("MatchDirect error = %v, want ErrBudgetExceeded", err)
	}
	if _, err := e.MatchCompiled(pattern, subject); !errors.Is(err, ErrBudgetExceeded) {
		t.Errorf("MatchCompiled error = %v, want ErrBudgetExceeded", err)
	}

	_, err = e.MatchCompiled("abcdefghij", "abcdefghij")
	if !errors.Is(err, ErrTooManyAtoms) {
		t.Fatalf("MatchCompiled error = %v, want ErrTooManyAtoms", err)
	}
	var cerr *CompileError
	if !errors.As(err, &cerr) || cerr.Pos != 8 {
		t.Errorf("error = %#v, want *CompileError at offset 8", err)
	}

	if got := e.Stats().BudgetExceeded; got != 2 {
		t.Errorf("Stats().BudgetExceeded = %d, want 2", got)
	}
}

func TestEngine_UnboundedSteps(t *testing.T) {
	e := MustNew(DefaultConfig().WithMaxSteps(0))
	pattern := strings.Repeat("a*", 4) + "b"
	subject := strings.Repeat("a", 20)

	ok, err := e.MatchCompiled(pattern, subject)
	if ok || err != nil {
		t.Errorf("MatchCompiled = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(DefaultConfig().WithMaxAtoms(0))
	var cerr *ConfigError
	if !errors.As(err, &cerr) || cerr.Field != "MaxAtoms" {
		t.Fatalf("New error = %v, want *ConfigError for MaxAtoms", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustNew did not panic on an invalid config")
		}
	}()
	MustNew(DefaultConfig().WithMaxSteps(-1))
}

func TestEngine_Dump(t *testing.T) {
	e := MustNew(DefaultConfig())
	got, err := e.Dump("^ab+")
	if err != nil {
		t.Fatal(err)
	}
	want := "1: anchor\n2: literal 'a'\n3: literal 'b'\n4: star of literal 'b'\n"
	if got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
}

func TestEngine_PrefilterDoesNotChangeAnswers(t *testing.T) {
	with := MustNew(DefaultConfig())
	without := MustNew(DefaultConfig().WithPrefilter(false))

	patterns := []string{"abc", "a[bc]d", "[ab][ab][ab]", "ab*c", "ab.", "xy$", "[xy]z+", "a[]", "aa"}
	subjects := []string{"", "abc", "xxabdxx", "aabab", "abbbbc", "zzxy", "yzzz", "a", "aaa", "ab"}

	for _, p := range patterns {
		for _, s := range subjects {
			a, errA := with.MatchCompiled(p, s)
			b, errB := without.MatchCompiled(p, s)
			if a != b || errA != nil || errB != nil {
				t.Errorf("%q on %q: prefilter (%v, %v), no prefilter (%v, %v)", p, s, a, errA, b, errB)
			}
		}
	}
}
