// Package cli wires the cobra command tree to the pipeline. All flag
// parsing and interactive behavior (the overwrite prompt) lives here; the
// packages below it only ever see a validated Config.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/clipforge/clipforge/internal/config"
)

var cfg = config.DefaultConfig()

// Raw string values for enum flags; converted onto cfg before validation.
var (
	flagCodec string
	flagColor string
)

var rootCmd = &cobra.Command{
	Use:   "clipforge",
	Short: "Compress and concatenate videos with ffmpeg",
	Long: `clipforge derives ffmpeg encoding parameters from a small set of
high-level knobs and drives ffmpeg to execute them.

compress reduces a video's file size by a 1-10 reduction level that maps
to CRF, resolution, frame-rate, and audio-bitrate tiers. concat joins
multiple clips, normalizing them all to the first clip's resolution.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and exits non-zero on error. SIGINT and
// SIGTERM cancel the context so an in-flight ffmpeg run is killed rather
// than orphaned.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "clipforge: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagCodec, "codec", string(config.CodecH264),
		"Video codec: libx264, libx265, or copy (concat only)")
	pf.StringVar(&cfg.Preset, "preset", cfg.Preset,
		"Encoder speed preset (ultrafast..veryslow); slower presets compress better at the same CRF")
	pf.IntVar(&cfg.Threads, "threads", cfg.Threads, "Encoder threads (0 = auto-detect)")
	pf.BoolVar(&cfg.Overwrite, "overwrite", false, "Overwrite the output file if it exists")
	pf.BoolVar(&cfg.DryRun, "dry-run", false, "Derive parameters and print the ffmpeg command without running it")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output (ffmpeg stats and debug logging)")
	pf.StringVar(&flagColor, "color", string(config.ColorAuto), "Color output: auto, always, or never")
	pf.StringVar(&cfg.LogFile, "log-file", "", "Append log output to this file")

	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(concatCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// applyFlags converts raw string flag values onto cfg. Validation proper
// happens in cfg.Validate.
func applyFlags() {
	cfg.Codec = config.Codec(flagCodec)
	cfg.ColorMode = config.ColorMode(flagColor)
}
