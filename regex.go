// Package atomre matches a small regular-expression language with two
// independent backtracking engines.
//
// The language has literal characters, `.` (any one character), `[...]`
// (any one listed character; no ranges or negation), `*` and `+` after any
// of those, and the anchors `^` (first character only) and `$` (last
// character only). There are no escapes. A match may start anywhere in the
// subject unless the pattern begins with `^`.
//
// MatchDirect interprets the pattern text recursively. MatchCompiled first
// compiles the pattern into a chain of atoms and walks that, using a literal
// prefilter to skip offsets where no match can start. The two engines give
// the same answer for every pattern and subject.
//
// Basic usage:
//
//	if atomre.MatchCompiled("he[lm]p.*", "please help me") {
//	    fmt.Println("matched!")
//	}
//
// Both engines backtrack and are exponential in the worst case, so every
// call runs under a step budget. The package-level functions treat a budget
// overrun as no match; an Engine reports it as ErrBudgetExceeded:
//
//	engine, _ := atomre.New(atomre.DefaultConfig().WithMaxSteps(10_000))
//	ok, err := engine.MatchCompiled("a*a*a*a*b", strings.Repeat("a", 64))
//	if errors.Is(err, atomre.ErrBudgetExceeded) {
//	    // undecided
//	}
package atomre

import (
	"github.com/coregx/atomre/meta"
)

// Config controls engine limits and optimizations.
type Config = meta.Config

// Stats holds the execution counters of an Engine.
type Stats = meta.Stats

// CompileError is returned when a pattern cannot be compiled into a chain.
type CompileError = meta.CompileError

// ConfigError is returned by New for an invalid Config.
type ConfigError = meta.ConfigError

var (
	// ErrBudgetExceeded is returned when a match call runs out of steps.
	ErrBudgetExceeded = meta.ErrBudgetExceeded

	// ErrTooManyAtoms is wrapped by a CompileError when a pattern needs
	// more atoms than Config.MaxAtoms.
	ErrTooManyAtoms = meta.ErrTooManyAtoms
)

// DefaultConfig returns the default configuration.
//
// Example:
//
//	config := atomre.DefaultConfig()
//	config.MaxSteps = 0 // unbounded
//	engine, err := atomre.New(config)
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// defaultEngine serves the package-level functions.
var defaultEngine = MustNew(DefaultConfig())

// MatchDirect reports whether subject contains a match of pattern, reading
// the pattern text directly. A budget overrun is reported as false.
//
// Example:
//
//	atomre.MatchDirect("^ab*c$", "abbbc") // true
func MatchDirect(pattern, subject string) bool {
	ok, err := defaultEngine.MatchDirect(pattern, subject)
	return ok && err == nil
}

// MatchCompiled reports whether subject contains a match of pattern,
// compiling it into an atom chain first. A budget overrun or a pattern
// too large to compile is reported as false.
//
// Example:
//
//	atomre.MatchCompiled("a.c", "xxabcxx") // true
func MatchCompiled(pattern, subject string) bool {
	ok, err := defaultEngine.MatchCompiled(pattern, subject)
	return ok && err == nil
}

// Engine runs both pipelines under one configuration and reports errors
// instead of failing closed.
//
// An Engine is safe to use concurrently from multiple goroutines.
type Engine struct {
	engine *meta.Engine
}

// New returns an engine for config, or a *ConfigError if config is invalid.
func New(config Config) (*Engine, error) {
	engine, err := meta.NewEngine(config)
	if err != nil {
		return nil, err
	}
	return &Engine{engine: engine}, nil
}

// MustNew is like New but panics if config is invalid.
func MustNew(config Config) *Engine {
	e, err := New(config)
	if err != nil {
		panic("atomre: New: " + err.Error())
	}
	return e
}

// MatchDirect reports whether subject contains a match of pattern using the
// direct engine. It returns ErrBudgetExceeded when the step budget runs out.
func (e *Engine) MatchDirect(pattern, subject string) (bool, error) {
	return e.engine.MatchDirect(pattern, subject)
}

// MatchCompiled reports whether subject contains a match of pattern using the
// compiled engine. It returns ErrBudgetExceeded when the step budget runs
// out and a *CompileError wrapping ErrTooManyAtoms when the pattern exceeds
// Config.MaxAtoms.
func (e *Engine) MatchCompiled(pattern, subject string) (bool, error) {
	return e.engine.MatchCompiled(pattern, subject)
}

// Dump returns the compiled chain of pattern, one numbered atom per line.
//
// Example:
//
//	s, _ := engine.Dump("^ab+")
//	// 1: anchor
//	// 2: literal 'a'
//	// 3: literal 'b'
//	// 4: star of literal 'b'
func (e *Engine) Dump(pattern string) (string, error) {
	return e.engine.Dump(pattern)
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.engine.Config()
}

// Stats returns execution statistics.
func (e *Engine) Stats() Stats {
	return e.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	e.engine.ResetStats()
}
