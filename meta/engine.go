package meta

import (
	"errors"
	"sync/atomic"

	"github.com/coregx/atomre/atom"
	"github.com/coregx/atomre/compiler"
	"github.com/coregx/atomre/literal"
	"github.com/coregx/atomre/matcher"
	"github.com/coregx/atomre/prefilter"
)

// Engine matches patterns against subjects with either pipeline.
//
// An Engine holds only its configuration and atomic counters, so it is safe
// for concurrent use. Each call compiles and releases its own chain.
type Engine struct {
	config    Config
	extractor *literal.Extractor
	stats     Stats
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// DirectSearches counts calls to MatchDirect
	DirectSearches uint64

	// CompiledSearches counts calls to MatchCompiled
	CompiledSearches uint64

	// PrefilterCandidates counts offsets proposed by prefilters
	PrefilterCandidates uint64

	// PrefilterShortcuts counts compiled searches decided by a complete
	// prefilter without walking the chain
	PrefilterShortcuts uint64

	// BudgetExceeded counts searches that ran out of steps
	BudgetExceeded uint64
}

// NewEngine returns an engine for the given configuration.
func NewEngine(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	extractorConfig := literal.DefaultConfig()
	extractorConfig.MaxLiterals = config.MaxLiterals

	return &Engine{
		config:    config,
		extractor: literal.New(extractorConfig),
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// MatchDirect reports whether subject contains a match of pattern, reading
// the pattern text directly. It returns ErrBudgetExceeded if the step budget
// runs out first.
func (e *Engine) MatchDirect(pattern, subject string) (bool, error) {
	atomic.AddUint64(&e.stats.DirectSearches, 1)

	b := matcher.NewBudget(e.config.MaxSteps)
	matched := matcher.Direct(pattern, subject, b)
	if b.Exceeded() {
		atomic.AddUint64(&e.stats.BudgetExceeded, 1)
		return false, ErrBudgetExceeded
	}
	return matched, nil
}

// MatchCompiled reports whether subject contains a match of pattern by
// compiling it into an atom chain first. The chain is released before
// returning. Compilation fails only with a *CompileError wrapping
// ErrTooManyAtoms.
func (e *Engine) MatchCompiled(pattern, subject string) (bool, error) {
	atomic.AddUint64(&e.stats.CompiledSearches, 1)

	c, err := e.compile(pattern)
	if err != nil {
		return false, err
	}
	defer c.Release()

	b := matcher.NewBudget(e.config.MaxSteps)
	opts := matcher.CompiledOptions{Budget: b}

	if pf := e.prefilterFor(c); pf != nil {
		if pf.IsComplete() {
			atomic.AddUint64(&e.stats.PrefilterShortcuts, 1)
			return pf.Find([]byte(subject), 0) >= 0, nil
		}
		counter := &candidateCounter{pf: pf}
		defer func() {
			atomic.AddUint64(&e.stats.PrefilterCandidates, counter.n)
		}()
		opts.Prefilter = counter
	}

	matched := matcher.Compiled(c, subject, opts)
	if b.Exceeded() {
		atomic.AddUint64(&e.stats.BudgetExceeded, 1)
		return false, ErrBudgetExceeded
	}
	return matched, nil
}

// Dump compiles pattern and returns its chain, one atom per line.
func (e *Engine) Dump(pattern string) (string, error) {
	c, err := e.compile(pattern)
	if err != nil {
		return "", err
	}
	defer c.Release()
	return c.String(), nil
}

// Stats returns execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		DirectSearches:      atomic.LoadUint64(&e.stats.DirectSearches),
		CompiledSearches:    atomic.LoadUint64(&e.stats.CompiledSearches),
		PrefilterCandidates: atomic.LoadUint64(&e.stats.PrefilterCandidates),
		PrefilterShortcuts:  atomic.LoadUint64(&e.stats.PrefilterShortcuts),
		BudgetExceeded:      atomic.LoadUint64(&e.stats.BudgetExceeded),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.DirectSearches, 0)
	atomic.StoreUint64(&e.stats.CompiledSearches, 0)
	atomic.StoreUint64(&e.stats.PrefilterCandidates, 0)
	atomic.StoreUint64(&e.stats.PrefilterShortcuts, 0)
	atomic.StoreUint64(&e.stats.BudgetExceeded, 0)
}

func (e *Engine) compile(pattern string) (*atom.Chain, error) {
	c, err := compiler.Compile(pattern, e.config.MaxAtoms)
	if err == nil {
		return c, nil
	}

	var cerr *compiler.Error
	if errors.As(err, &cerr) && errors.Is(err, atom.ErrChainFull) {
		return nil, &CompileError{Pattern: pattern, Pos: cerr.Pos, Err: ErrTooManyAtoms}
	}
	return nil, &CompileError{Pattern: pattern, Pos: -1, Err: err}
}

// prefilterFor returns the candidate search for an unanchored chain, or nil
// when prefiltering is disabled or the chain has no literal prefix.
func (e *Engine) prefilterFor(c *atom.Chain) prefilter.Prefilter {
	if !e.config.EnablePrefilter {
		return nil
	}
	if h := c.Head(); h == atom.NoAtom || c.At(h).Kind == atom.KindAnchor {
		return nil
	}

	pf, err := prefilter.NewBuilder(e.extractor.ExtractPrefixes(c)).Build()
	if err != nil {
		// The offset-by-offset scan gives the same answers.
		return nil
	}
	return pf
}

// candidateCounter counts the candidates a prefilter proposes during one
// search.
type candidateCounter struct {
	pf prefilter.Prefilter
	n  uint64
}

func (c *candidateCounter) Find(haystack []byte, start int) int {
	pos := c.pf.Find(haystack, start)
	if pos >= 0 {
		c.n++
	}
	return pos
}
