package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"v.io/x/lib/cmdline"
	"v.io/x/lib/vlog"

	"github.com/coregx/atomre"
)

// demoCases are matched by the demo command.
var demoCases = []Case{
	{Name: "plus-and-anchors", Pattern: "^b+a*d+$", Subject: "baaaad", Want: true},
	{Name: "star-of-set", Pattern: "[bad]*", Subject: "baaaad", Want: true},
	{Name: "anchored-set", Pattern: "^a[bad]*$", Subject: "baaaad", Want: false},
}

// driver holds the flag values and the logger shared by all commands.
type driver struct {
	logger   *vlog.Logger
	logLevel int
	maxSteps int
	dump     bool
	run      string
}

func newRoot(logger *vlog.Logger) *cmdline.Command {
	d := &driver{logger: logger, maxSteps: atomre.DefaultConfig().MaxSteps}

	cmdMatch := &cmdline.Command{
		Runner:   cmdline.RunnerFunc(d.runMatch),
		Name:     "match",
		Short:    "Match one subject with both engines.",
		Long:     "Match runs the pattern against the subject with the direct and the compiled engine and prints each answer with its elapsed time.",
		ArgsName: "<pattern> <subject>",
		ArgsLong: `
<pattern> is the pattern to match.
<subject> is the text to search.
`,
	}
	cmdMatch.Flags.BoolVar(&d.dump, "dump", false, "Print the compiled chain before matching.")

	cmdScan := &cmdline.Command{
		Runner:   cmdline.RunnerFunc(d.runScan),
		Name:     "scan",
		Short:    "Match the contents of a file with both engines.",
		Long:     "Scan reads the whole file and uses its contents as the subject.",
		ArgsName: "<pattern> <file>",
		ArgsLong: `
<pattern> is the pattern to match.
<file> is the file whose contents are searched.
`,
	}

	cmdBatch := &cmdline.Command{
		Runner: cmdline.RunnerFunc(d.runBatch),
		Name:   "batch",
		Short:  "Check a file of cases against both engines.",
		Long: `
Batch loads a YAML list of cases, each with a name, pattern, subject and
expected answer, and reports every case where an engine gives the wrong
answer, runs out of steps, or disagrees with the other engine. It exits with
status 1 if any case fails.
`,
		ArgsName: "<cases.yaml>",
		ArgsLong: "<cases.yaml> is the file of cases.",
	}
	cmdBatch.Flags.StringVar(&d.run, "run", "", "Only run cases whose name matches this wildcard pattern.")

	cmdDemo := &cmdline.Command{
		Runner: cmdline.RunnerFunc(d.runDemo),
		Name:   "demo",
		Short:  "Match the built-in example cases.",
		Long:   "Demo runs a few fixed patterns through both engines.",
	}

	children := []*cmdline.Command{cmdMatch, cmdScan, cmdBatch, cmdDemo}
	for _, cmd := range children {
		cmd.Flags.IntVar(&d.maxSteps, "max-steps", d.maxSteps, "Step budget of each match call; 0 means unbounded.")
		cmd.Flags.IntVar(&d.logLevel, "log-level", 0, "Verbosity of the log written to stderr.")
	}

	return &cmdline.Command{
		Name:     "atomre",
		Short:    "Runs patterns through the direct and compiled matchers.",
		Long:     "Command atomre runs patterns through the direct and compiled matchers and compares their answers.",
		Children: children,
	}
}

// setup configures logging and builds the engine from the flags.
func (d *driver) setup() (*atomre.Engine, error) {
	err := d.logger.Configure(
		vlog.OverridePriorConfiguration(true),
		vlog.LogToStderr(true),
		vlog.Level(d.logLevel),
	)
	if err != nil {
		return nil, err
	}
	return atomre.New(atomre.DefaultConfig().WithMaxSteps(d.maxSteps))
}

func (d *driver) runMatch(env *cmdline.Env, args []string) error {
	if expected, got := 2, len(args); got != expected {
		return env.UsageErrorf("match: incorrect number of arguments, got %d, expected %d", got, expected)
	}
	e, err := d.setup()
	if err != nil {
		return err
	}
	pattern, subject := args[0], args[1]

	if d.dump {
		chain, err := e.Dump(pattern)
		if err != nil {
			return err
		}
		fmt.Fprint(env.Stdout, chain)
	}

	d.logger.VI(1).Infof("pattern %q, subject %q", pattern, subject)
	return d.compare(env, e, pattern, subject)
}

func (d *driver) runScan(env *cmdline.Env, args []string) error {
	if expected, got := 2, len(args); got != expected {
		return env.UsageErrorf("scan: incorrect number of arguments, got %d, expected %d", got, expected)
	}
	e, err := d.setup()
	if err != nil {
		return err
	}
	pattern, path := args[0], args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	d.logger.VI(1).Infof("pattern %q, %d bytes from %s", pattern, len(data), path)
	return d.compare(env, e, pattern, string(data))
}

func (d *driver) runDemo(env *cmdline.Env, args []string) error {
	if len(args) != 0 {
		return env.UsageErrorf("demo: unexpected arguments %v", args)
	}
	e, err := d.setup()
	if err != nil {
		return err
	}

	var errs []error
	for _, c := range demoCases {
		fmt.Fprintf(env.Stdout, "%s %q %q\n", c.Name, c.Pattern, c.Subject)
		if err := d.compare(env, e, c.Pattern, c.Subject); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (d *driver) runBatch(env *cmdline.Env, args []string) error {
	if expected, got := 1, len(args); got != expected {
		return env.UsageErrorf("batch: incorrect number of arguments, got %d, expected %d", got, expected)
	}
	e, err := d.setup()
	if err != nil {
		return err
	}

	cases, err := loadCases(args[0])
	if err != nil {
		return err
	}
	cases = filterCases(cases, d.run)
	d.logger.VI(1).Infof("running %d cases from %s", len(cases), args[0])

	failures := 0
	for _, c := range cases {
		direct := timed(e.MatchDirect, c.Pattern, c.Subject)
		compiled := timed(e.MatchCompiled, c.Pattern, c.Subject)
		d.logger.VI(2).Infof("%s: direct %v in %v, compiled %v in %v",
			c.Name, direct.matched, direct.elapsed, compiled.matched, compiled.elapsed)

		if msg := checkCase(c, direct, compiled); msg != "" {
			failures++
			fmt.Fprintf(env.Stdout, "FAIL %s: %s\n", c.Name, msg)
		}
	}

	if failures > 0 {
		fmt.Fprintf(env.Stdout, "FAIL %d of %d cases\n", failures, len(cases))
		return cmdline.ErrExitCode(1)
	}
	fmt.Fprintf(env.Stdout, "ok %d cases\n", len(cases))
	return nil
}

// result is one engine's answer to one match call.
type result struct {
	matched bool
	err     error
	elapsed time.Duration
}

func (r result) String() string {
	if r.err != nil {
		return "error: " + r.err.Error()
	}
	return fmt.Sprint(r.matched)
}

func timed(match func(pattern, subject string) (bool, error), pattern, subject string) result {
	start := time.Now()
	matched, err := match(pattern, subject)
	return result{matched: matched, err: err, elapsed: time.Since(start)}
}

// errDisagree is returned when the engines give different answers.
var errDisagree = errors.New("engines disagree")

// compare runs both engines, prints their answers and returns errDisagree
// when both decided and the answers differ.
func (d *driver) compare(env *cmdline.Env, e *atomre.Engine, pattern, subject string) error {
	direct := timed(e.MatchDirect, pattern, subject)
	compiled := timed(e.MatchCompiled, pattern, subject)

	fmt.Fprintf(env.Stdout, "  direct   %-5v in %v\n", direct, direct.elapsed)
	fmt.Fprintf(env.Stdout, "  compiled %-5v in %v\n", compiled, compiled.elapsed)

	if direct.err == nil && compiled.err == nil && direct.matched != compiled.matched {
		return errDisagree
	}
	return nil
}

// checkCase returns why c failed, or "" if both engines gave the expected
// answer.
func checkCase(c Case, direct, compiled result) string {
	switch {
	case direct.err != nil || compiled.err != nil:
		return fmt.Sprintf("direct %v, compiled %v", direct, compiled)
	case direct.matched != compiled.matched:
		return fmt.Sprintf("engines disagree: direct %v, compiled %v", direct.matched, compiled.matched)
	case direct.matched != c.Want:
		return fmt.Sprintf("got %v, want %v", direct.matched, c.Want)
	}
	return ""
}
