// Package meta runs both matching pipelines under one configuration.
//
// The direct pipeline hands the pattern text to the recursive matcher. The
// compiled pipeline compiles the pattern into an atom chain, picks a
// prefilter from the chain's literal prefix when the pattern is unanchored,
// walks the chain and releases it. Both spend from a step budget and report
// ErrBudgetExceeded instead of running unbounded.
package meta

// Config controls engine limits and optimizations.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // walk every offset
//	engine, err := meta.NewEngine(config)
type Config struct {
	// MaxSteps limits the work units one match call may spend.
	// Zero means unbounded.
	// Default: 1,000,000
	MaxSteps int

	// MaxAtoms caps the number of atoms one compiled pattern may hold.
	// Patterns needing more fail with ErrTooManyAtoms.
	// Default: 4096
	MaxAtoms int

	// EnablePrefilter enables literal-prefix candidate search in the
	// compiled pipeline.
	// Default: true
	EnablePrefilter bool

	// MaxLiterals limits how many prefix literals the bracket sets of a
	// pattern may expand into.
	// Default: 64
	MaxLiterals int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxSteps:        1_000_000,
		MaxAtoms:        4096,
		EnablePrefilter: true,
		MaxLiterals:     64,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
func (c Config) Validate() error {
	if c.MaxSteps < 0 {
		return &ConfigError{
			Field:   "MaxSteps",
			Message: "must not be negative",
		}
	}

	if c.MaxAtoms < 1 || c.MaxAtoms > 1<<20 {
		return &ConfigError{
			Field:   "MaxAtoms",
			Message: "must be between 1 and 1,048,576",
		}
	}

	if c.EnablePrefilter {
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
	}

	return nil
}

// WithMaxSteps returns a new config with the specified step budget
func (c Config) WithMaxSteps(steps int) Config {
	c.MaxSteps = steps
	return c
}

// WithMaxAtoms returns a new config with the specified atom limit
func (c Config) WithMaxAtoms(atoms int) Config {
	c.MaxAtoms = atoms
	return c
}

// WithPrefilter returns a new config with prefilter enabled/disabled
func (c Config) WithPrefilter(enabled bool) Config {
	c.EnablePrefilter = enabled
	return c
}

// WithMaxLiterals returns a new config with the specified literal limit
func (c Config) WithMaxLiterals(n int) Config {
	c.MaxLiterals = n
	return c
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "atomre: invalid config: " + e.Field + ": " + e.Message
}
