// Package config holds runtime configuration: defaults, enum types for the
// validated CLI knobs, and validation. Defaults match the legacy Python
// scripts for output parity.
package config

import (
	"errors"
	"fmt"
)

// --- Enum types for validated string fields ---

// Operation selects which pipeline the invocation runs.
type Operation string

const (
	OpCompress Operation = "compress" // Single-file size reduction.
	OpConcat   Operation = "concat"   // Multi-file concatenation.
)

// Codec is the output video codec choice.
type Codec string

const (
	CodecH264 Codec = "libx264" // H.264 (default, widest compatibility).
	CodecH265 Codec = "libx265" // H.265 (smaller output, slower).
	CodecCopy Codec = "copy"    // Stream copy; concat path only.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Presets is the accepted set of encoder speed presets, fastest to slowest.
var Presets = []string{
	"ultrafast", "superfast", "veryfast", "faster", "fast",
	"medium", "slow", "slower", "veryslow",
}

// ValidPreset reports whether p is one of the accepted encoder presets.
func ValidPreset(p string) bool {
	for _, v := range Presets {
		if p == v {
			return true
		}
	}
	return false
}

// Reduction level bounds (the user-facing 1-10 aggressiveness knob).
const (
	LevelMin = 1
	LevelMax = 10
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the CLI layer before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Operation and paths (set from subcommand and positional args).
	Op         Operation
	Inputs     []string
	OutputPath string

	// Compression control (compress path only).
	ReductionLevel int // 1 (minimum reduction) to 10 (maximum reduction).

	// Encoder settings.
	Codec   Codec  // Default: "libx264".
	Preset  string // Default: "ultrafast".
	Threads int    // Default: 0 (auto-detect).

	// Behavior flags.
	Overwrite bool
	DryRun    bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with defaults matching the legacy scripts.
// Used as the base before the CLI layer applies flag overrides.
func DefaultConfig() Config {
	return Config{
		Codec:     CodecH264,
		Preset:    "ultrafast",
		Threads:   0,
		ColorMode: ColorAuto,
	}
}

// Validate checks that the knob set is internally consistent for the chosen
// operation. Called by the CLI layer after flags are applied.
func (c *Config) Validate() error {
	switch c.Op {
	case OpCompress, OpConcat:
		// valid
	default:
		return fmt.Errorf("invalid operation %q", c.Op)
	}

	if len(c.Inputs) == 0 {
		return errors.New("no input files given")
	}
	if c.OutputPath == "" {
		return errors.New("output path must not be empty")
	}

	if !ValidPreset(c.Preset) {
		return fmt.Errorf("invalid preset %q (use one of %v)", c.Preset, Presets)
	}
	if c.Threads < 0 {
		return fmt.Errorf("invalid thread count %d (use 0 for auto-detect)", c.Threads)
	}

	switch c.Codec {
	case CodecH264, CodecH265:
		// valid on both paths
	case CodecCopy:
		if c.Op != OpConcat {
			return errors.New("codec 'copy' is only valid for concat")
		}
	default:
		return fmt.Errorf("invalid codec %q (use 'libx264', 'libx265', or 'copy')", c.Codec)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Op == OpCompress {
		if len(c.Inputs) != 1 {
			return errors.New("compress takes exactly one input file")
		}
		if c.ReductionLevel < LevelMin || c.ReductionLevel > LevelMax {
			return fmt.Errorf("reduction level %d out of range [%d,%d]",
				c.ReductionLevel, LevelMin, LevelMax)
		}
	}

	return nil
}
