package harness

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
)

// maxRandomSize bounds generated instance sizes so that the exponential
// oracles stay fast.
const maxRandomSize = 12

// Config selects what a harness Run checks.
//
// Example harness.toml:
//
//	large_tests = true
//	generate_random_tests = true
//	random_tests = 25
//	numbers_lower = 4
//	numbers_upper = 10
//	seed = 42
//	kernels = ["lds", "klargest"]
//	fixtures = "cases.yaml"
type Config struct {
	// LargeTests adds the larger hard-coded cases to the builtin suite.
	LargeTests bool `toml:"large_tests"`

	// GenerateRandom enables RandomTests generated instances per kernel.
	GenerateRandom bool `toml:"generate_random_tests"`
	RandomTests    int  `toml:"random_tests"`

	// Lower and Upper bound the size of generated instances (inclusive).
	Lower int `toml:"numbers_lower"`
	Upper int `toml:"numbers_upper"`

	// Seed drives generated instances; 0 picks a fresh seed for every run.
	Seed int64 `toml:"seed"`

	// Kernels restricts the run; empty means all.
	Kernels []string `toml:"kernels"`

	// Fixtures is an optional YAML suite that replaces the builtin one.
	Fixtures string `toml:"fixtures"`
}

// DefaultConfig returns a configuration with large cases and random
// generation off; once enabled it draws 10 instances of size 4..10 per kernel
// from a fresh seed.
func DefaultConfig() Config {
	return Config{
		LargeTests:     false,
		GenerateRandom: false,
		RandomTests:    10,
		Lower:          4,
		Upper:          10,
		Seed:           0,
	}
}

// LoadConfig decodes a TOML file on top of DefaultConfig and validates it.
// Keys that are not part of Config are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("harness: load %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrBadConfig, undec[0].String(), path)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and kernel names.
func (c Config) Validate() error {
	if c.RandomTests < 0 {
		return fmt.Errorf("%w: random_tests=%d", ErrBadConfig, c.RandomTests)
	}
	if c.Lower < 1 || c.Upper < c.Lower {
		return fmt.Errorf("%w: numbers_lower=%d numbers_upper=%d", ErrBadConfig, c.Lower, c.Upper)
	}
	if c.Upper > maxRandomSize {
		return fmt.Errorf("%w: numbers_upper=%d exceeds %d", ErrBadConfig, c.Upper, maxRandomSize)
	}
	known := Kernels()
	for _, k := range c.Kernels {
		if !slices.Contains(known, k) {
			return fmt.Errorf("%w: %q", ErrUnknownKernel, k)
		}
	}

	return nil
}

// selected returns the kernels to run in execution order.
func (c Config) selected() []string {
	if len(c.Kernels) == 0 {
		return Kernels()
	}
	out := make([]string, 0, len(c.Kernels))
	for _, k := range Kernels() {
		if slices.Contains(c.Kernels, k) {
			out = append(out, k)
		}
	}

	return out
}
