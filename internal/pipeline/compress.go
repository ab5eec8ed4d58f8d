package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/clipforge/clipforge/internal/config"
	"github.com/clipforge/clipforge/internal/display"
	"github.com/clipforge/clipforge/internal/ffmpeg"
	"github.com/clipforge/clipforge/internal/logging"
	"github.com/clipforge/clipforge/internal/planner"
	"github.com/clipforge/clipforge/internal/probe"
)

// Compress runs the single-file size-reduction flow: probe the input, derive
// encoder parameters from the reduction level, assemble the operation graph,
// and execute it. A failed execution removes the partial output file so it
// is never mistaken for a finished encode.
func Compress(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	input := cfg.Inputs[0]

	info, err := probe.Probe(ctx, input)
	if err != nil {
		return err
	}

	params, err := planner.Derive(info, planner.Level(cfg.ReductionLevel))
	if err != nil {
		return err
	}

	logDerivedParams(log, cfg, info, params)

	g := ffmpeg.Assemble(cfg, params, input, cfg.OutputPath)

	if cfg.DryRun {
		log.Warn("DRY RUN, not executing")
		display.PrintCommand(ffmpeg.Build(cfg, g))
		return nil
	}

	start := time.Now()
	if err := ffmpeg.Execute(ctx, cfg, g); err != nil {
		// Never leave a partial output behind.
		os.Remove(cfg.OutputPath)
		return err
	}

	logRatio(log, input, cfg.OutputPath, time.Since(start))
	return nil
}

// logDerivedParams reports the derived parameter set before execution,
// mirroring what the operator would otherwise reverse-engineer from the
// ffmpeg command line.
func logDerivedParams(log *logging.Logger, cfg *config.Config, info *probe.StreamInfo, params *planner.EncodeParams) {
	log.Info("Source: %s | %s | level %d", info.Resolution(), fpsLabel(info.FPS), cfg.ReductionLevel)
	log.Info("  CRF: %d", params.CRF)
	if params.ScaleWidth > 0 {
		log.Info("  Width: %d (aspect ratio preserved)", params.ScaleWidth)
	} else {
		log.Info("  Width: original")
	}
	if params.TargetFPS > 0 {
		log.Info("  FPS: %d (gop=%d, keyint_min=%d)", params.TargetFPS, params.GopSize, params.KeyintMin)
	} else {
		log.Info("  FPS: original")
	}
	if params.AudioBitrateKbps > 0 {
		log.Info("  Audio: aac %s @ 44100 Hz", display.FormatBitrateLabel(int64(params.AudioBitrateKbps)))
	} else {
		log.Info("  Audio: none")
	}
	log.Info("  Codec: %s, preset: %s, threads: %d", cfg.Codec, cfg.Preset, cfg.Threads)
}

// logRatio reports elapsed time and output size relative to the input,
// after a successful encode.
func logRatio(log *logging.Logger, inputPath, outputPath string, elapsed time.Duration) {
	inInfo, err := os.Stat(inputPath)
	if err != nil {
		log.Success("Compressed in %ds -> %s", int(elapsed.Seconds()), outputPath)
		return
	}
	outInfo, err := os.Stat(outputPath)
	if err != nil {
		log.Success("Compressed in %ds -> %s", int(elapsed.Seconds()), outputPath)
		return
	}

	ratio := int64(100)
	if inInfo.Size() > 0 {
		ratio = outInfo.Size() * 100 / inInfo.Size()
	}
	log.Success("Compressed in %ds (%d%% of original, %s -> %s)",
		int(elapsed.Seconds()), ratio,
		display.FormatBytes(inInfo.Size()), display.FormatBytes(outInfo.Size()))
}

// fpsLabel formats a frame rate for display. Two decimals is enough for
// NTSC rates (29.97, 59.94); trailing zeros are trimmed.
func fpsLabel(fps float64) string {
	if fps <= 0 {
		return "unknown fps"
	}
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", fps), "0"), ".")
	return s + " fps"
}
