// Package config holds runtime configuration: defaults, profile/env merging,
// and validation. Flag registration lives in cmd/sg1submit; this package only
// defines the settings and their rules.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// --- Enum types for validated string fields ---

// Coverage is the transit coverage category reported to ExoFOP.
type Coverage string

const (
	CoverageFull         Coverage = "Full"
	CoverageIngress      Coverage = "Ingress"
	CoverageEgress       Coverage = "Egress"
	CoverageOutOfTransit Coverage = "Out of Transit"
)

// NormalizeCoverage maps a user-supplied string onto the fixed coverage
// enumeration, case-insensitively. Unrecognized values fall back to Full.
func NormalizeCoverage(raw string) Coverage {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ingress":
		return CoverageIngress
	case "egress":
		return CoverageEgress
	case "out of transit":
		return CoverageOutOfTransit
	default:
		return CoverageFull
	}
}

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// mutated by flag binding, [ApplyProfile], and [ApplyEnv], then validated
// once before the pipeline starts.
type Config struct {
	// ExoFOP credentials. Flags win over EXOFOP_USERNAME / EXOFOP_PASSWORD
	// (which may come from a .env file).
	Username string
	Password string

	// Target identifiers, e.g. "12345678.01" and "1234.01" ("0" = no TOI).
	TIC string
	TOI string

	// Observation set.
	Directory string
	Coverage  string // Raw value; normalized via NormalizeCoverage.
	TelSize   string // Telescope aperture in meters.
	Camera    string

	// Per-filter metadata (required up front for single-filter runs,
	// prompted per filter otherwise).
	PSF      string // Estimated PSF in arcsec.
	DeltaMag string // Faintest neighbor delta mag; "0" = leave blank.

	// Submission settings.
	Notes string
	Group string // ExoFOP group name. Default: "tfopwg".

	// Behavior flags.
	SkipSummary bool // Do not POST time-series summaries.
	SkipFiles   bool // Do not upload files.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.

	// Optional YAML profile with site defaults.
	ProfilePath string
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before flag, env, and profile values are merged in.
func DefaultConfig() Config {
	return Config{
		TOI:       "0",
		Group:     "tfopwg",
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that every required setting is present and that the
// observation directory exists. Called after all config sources are merged.
func (c *Config) Validate() error {
	if c.Username == "" || c.Password == "" {
		return errors.New("ExoFOP credentials required (flags --username/--password or EXOFOP_USERNAME/EXOFOP_PASSWORD)")
	}
	if c.TIC == "" {
		return errors.New("target required (--tic)")
	}
	if c.TOI == "" {
		return errors.New("TOI identifier required (--toi, use '0' for none)")
	}
	if c.Directory == "" {
		return errors.New("observation directory required (--directory)")
	}
	fi, err := os.Stat(c.Directory)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("invalid directory: %s", c.Directory)
	}
	if c.TelSize == "" {
		return errors.New("telescope aperture required (--telsize)")
	}
	if c.Camera == "" {
		return errors.New("camera name required (--camera)")
	}
	if c.Coverage == "" {
		return errors.New("transit coverage required (--coverage: Full, Ingress, Egress, or 'Out of Transit')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	return nil
}
