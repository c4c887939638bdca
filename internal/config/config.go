// Package config loads runtime settings from AMENDMENTS_* environment
// variables. Command-line flags override them in cmd/.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sflc/amendments/internal/shuffle"
)

// Environment variable names.
const (
	EnvSeed     = "AMENDMENTS_SEED"
	EnvOrdered  = "AMENDMENTS_ORDERED"
	EnvLogFile  = "AMENDMENTS_LOG"
	EnvNoSplash = "AMENDMENTS_NO_SPLASH"
)

// ErrInvalidSeed is returned when the seed is not an unsigned integer.
var ErrInvalidSeed = errors.New("invalid seed")

// Config holds the runtime settings.
type Config struct {
	// Seed fixes the shuffle sequence. Zero means a new sequence every run.
	Seed uint64

	// Ordered presents the cards in catalog order instead of shuffling.
	Ordered bool

	// LogFile receives structured logs. Empty disables logging.
	LogFile string

	// SkipSplash goes straight to the home screen.
	SkipSplash bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{}
}

// FromEnv returns DefaultConfig overlaid with the environment.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvSeed); ok && strings.TrimSpace(v) != "" {
		seed, err := ParseSeed(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup(EnvOrdered); ok {
		cfg.Ordered = parseBool(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvNoSplash); ok {
		cfg.SkipSplash = parseBool(v)
	}
	return cfg, nil
}

// ParseSeed parses a decimal shuffle seed.
func ParseSeed(s string) (uint64, error) {
	seed, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidSeed, s)
	}
	return seed, nil
}

// Source returns the shuffle source described by the config.
func (c Config) Source() shuffle.Source {
	if c.Ordered {
		return shuffle.Identity
	}
	return shuffle.NewSource(c.Seed)
}

// SeedMode describes the ordering for logs.
func (c Config) SeedMode() string {
	switch {
	case c.Ordered:
		return "ordered"
	case c.Seed != 0:
		return "seeded"
	default:
		return "random"
	}
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
