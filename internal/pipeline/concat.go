package pipeline

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/clipforge/clipforge/internal/config"
	"github.com/clipforge/clipforge/internal/display"
	"github.com/clipforge/clipforge/internal/ffmpeg"
	"github.com/clipforge/clipforge/internal/logging"
	"github.com/clipforge/clipforge/internal/probe"
)

// ProbeFunc matches [probe.Probe]; injectable for tests.
type ProbeFunc func(ctx context.Context, path string) (*probe.StreamInfo, error)

// Concat runs the concatenation flow: probe every input, establish the
// normalization target from the first usable result, assemble the graph,
// and execute it.
func Concat(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	return concatWith(ctx, cfg, log, probe.Probe)
}

func concatWith(ctx context.Context, cfg *config.Config, log *logging.Logger, probeFn ProbeFunc) error {
	inputs := probeAll(ctx, cfg.Inputs, probeFn, log)

	g, target, err := ffmpeg.AssembleConcat(cfg, inputs, cfg.OutputPath)
	if err != nil {
		return err
	}

	log.Info("Joining %d clips -> %s", len(inputs), cfg.OutputPath)
	log.Info("  Target: %dx%d @ %s", target.Width, target.Height, fpsLabel(target.FPS))
	log.Info("  Codec: %s, preset: %s, threads: %d, audio: aac %s",
		cfg.Codec, cfg.Preset, cfg.Threads, display.FormatBitrateLabel(ffmpeg.ConcatAudioKbps))

	if cfg.DryRun {
		log.Warn("DRY RUN, not executing")
		display.PrintCommand(ffmpeg.Build(cfg, g))
		return nil
	}

	start := time.Now()
	if err := ffmpeg.Execute(ctx, cfg, g); err != nil {
		os.Remove(cfg.OutputPath)
		return err
	}

	log.Success("Concatenated %d clips in %ds -> %s", len(inputs), int(time.Since(start).Seconds()), cfg.OutputPath)
	return nil
}

// probeAll probes every path concurrently. Each probe is an independent
// read-only query, so one goroutine per input writes into its own slot of
// the result slice; there is no shared mutable state to guard beyond the
// join. A failed probe yields a nil Info and a warning, never an abort —
// only the assembler decides whether the usable set is sufficient.
func probeAll(ctx context.Context, paths []string, probeFn ProbeFunc, log *logging.Logger) []ffmpeg.ConcatInput {
	results := make([]ffmpeg.ConcatInput, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			results[i].Path = path
			info, err := probeFn(ctx, path)
			if err == nil && !info.HasVideo {
				err = &probe.Error{Path: path, Reason: "no video stream"}
			}
			if err != nil {
				errs[i] = err
				return
			}
			results[i].Info = info
		}(i, path)
	}
	wg.Wait()

	// Report failures in input order once all probes have settled.
	for _, err := range errs {
		if err != nil {
			log.Warn("%v (clip will not set the target resolution)", err)
		}
	}
	return results
}
