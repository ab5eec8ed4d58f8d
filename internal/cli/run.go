package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/clipforge/clipforge/internal/check"
	"github.com/clipforge/clipforge/internal/config"
	"github.com/clipforge/clipforge/internal/display"
	"github.com/clipforge/clipforge/internal/logging"
	"github.com/clipforge/clipforge/internal/pipeline"
	"github.com/clipforge/clipforge/internal/term"
)

// run is the shared startup path for compress and concat: apply flags,
// validate, set up logging, confirm overwrites, verify ffmpeg, dispatch.
func run(ctx context.Context, op config.Operation, inputs []string) error {
	applyFlags()
	cfg.Op = op
	cfg.Inputs = inputs

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()

	// Inputs must exist before we hand anything to ffprobe.
	for _, in := range cfg.Inputs {
		if _, err := os.Stat(in); err != nil {
			return fmt.Errorf("input file not found: %s", in)
		}
	}

	if !cfg.Overwrite && !cfg.DryRun {
		if _, err := os.Stat(cfg.OutputPath); err == nil {
			if !term.ConfirmOverwrite(cfg.OutputPath) {
				return fmt.Errorf("output file %s exists (use --overwrite)", cfg.OutputPath)
			}
			cfg.Overwrite = true
		}
	}

	if err := check.CheckDeps(&cfg); err != nil {
		return err
	}

	switch op {
	case config.OpCompress:
		return pipeline.Compress(ctx, &cfg, log)
	default:
		return pipeline.Concat(ctx, &cfg, log)
	}
}
