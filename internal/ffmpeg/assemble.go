package ffmpeg

import (
	"errors"
	"fmt"

	"github.com/clipforge/clipforge/internal/config"
	"github.com/clipforge/clipforge/internal/planner"
	"github.com/clipforge/clipforge/internal/probe"
)

// Sentinel errors for the concat path's input preconditions.
var (
	ErrEmptyInput      = errors.New("no input files given")
	ErrAllProbesFailed = errors.New("could not probe any input for a target resolution")
)

// ConcatAudioKbps is the fixed AAC bitrate on the concat path; inputs are
// normalized to a common sample format before merging.
const ConcatAudioKbps = 192

const (
	audioSampleRate  = 44100
	compressionPix   = "yuv420p"
	compressionAudio = "aac"
)

// Assemble builds the compress-path operation graph: optional scale, optional
// fps cap, then the terminal video and audio encode nodes. Pure graph
// construction; execution is delegated to [Execute].
func Assemble(cfg *config.Config, params *planner.EncodeParams, inputPath, outputPath string) *Graph {
	g := &Graph{
		Input:      inputPath,
		OutputPath: outputPath,
		Overwrite:  cfg.Overwrite,
	}

	// Filter order matters: rescale first, then drop frames.
	if params.ScaleWidth > 0 {
		// Height -1 preserves the aspect ratio.
		g.VideoFilters = append(g.VideoFilters, FilterNode{"scale", fmt.Sprintf("%d:-1", params.ScaleWidth)})
	}
	if params.TargetFPS > 0 {
		g.VideoFilters = append(g.VideoFilters, FilterNode{"fps", fmt.Sprintf("%d:round=down", params.TargetFPS)})
	}

	g.Video = VideoEncodeNode{
		Codec:     cfg.Codec,
		Preset:    cfg.Preset,
		CRF:       params.CRF,
		Threads:   cfg.Threads,
		PixFmt:    compressionPix,
		FastStart: true,
		GopSize:   params.GopSize,
		KeyintMin: params.KeyintMin,
		// Kept for parity with the legacy compressor. The x264-only
		// options are passed even under libx265, which ignores them.
		Tune:     "zerolatency",
		X264Opts: "no-scenecut",
		Refs:     1,
		BFrames:  1,
		Deblock:  "-1:-1",
	}

	if params.AudioBitrateKbps > 0 {
		g.Audio = &AudioEncodeNode{
			Codec:       compressionAudio,
			BitrateKbps: params.AudioBitrateKbps,
			SampleRate:  audioSampleRate,
		}
	}

	return g
}

// ConcatInput pairs one source path with its probe result. Info is nil when
// probing the file failed; such inputs still join the concatenation (the
// engine reports them), they just cannot supply the target resolution.
type ConcatInput struct {
	Path string
	Info *probe.StreamInfo
}

// ConcatTarget is the normalization target all inputs are scaled to before
// merging: the resolution and frame rate of the first successfully probed
// input.
type ConcatTarget struct {
	Width  int
	Height int
	FPS    float64
}

// AssembleConcat builds the concat-path operation graph. Every input is
// normalized to the target resolution, square pixels, and yuv420p, with
// audio conformed to fltp/44100/stereo; the normalized pairs are then
// concatenated in the caller-supplied order, which is preserved exactly.
//
// Returns ErrEmptyInput for an empty input list and ErrAllProbesFailed when
// no input carries usable stream info to establish the target.
func AssembleConcat(cfg *config.Config, inputs []ConcatInput, outputPath string) (*Graph, *ConcatTarget, error) {
	if len(inputs) == 0 {
		return nil, nil, ErrEmptyInput
	}

	target := pickTarget(inputs)
	if target == nil {
		return nil, nil, ErrAllProbesFailed
	}

	g := &Graph{
		OutputPath: outputPath,
		Overwrite:  cfg.Overwrite,
	}

	for _, in := range inputs {
		g.Chains = append(g.Chains, InputChain{
			Path: in.Path,
			Video: []FilterNode{
				{"scale", fmt.Sprintf("%d:%d", target.Width, target.Height)},
				{"setsar", "1"},
				{"format", compressionPix},
			},
			Audio: []FilterNode{
				{"aformat", fmt.Sprintf("sample_fmts=fltp:sample_rates=%d:channel_layouts=stereo", audioSampleRate)},
			},
		})
	}

	g.Video = VideoEncodeNode{
		Codec:     cfg.Codec,
		Preset:    cfg.Preset,
		Threads:   cfg.Threads,
		FastStart: true,
	}
	g.Audio = &AudioEncodeNode{
		Codec:       compressionAudio,
		BitrateKbps: ConcatAudioKbps,
	}

	return g, target, nil
}

// pickTarget returns the normalization target from the first input whose
// probe succeeded and found a video stream, or nil when there is none.
func pickTarget(inputs []ConcatInput) *ConcatTarget {
	for _, in := range inputs {
		if in.Info != nil && in.Info.HasVideo && in.Info.Width > 0 && in.Info.Height > 0 {
			return &ConcatTarget{
				Width:  in.Info.Width,
				Height: in.Info.Height,
				FPS:    in.Info.FPS,
			}
		}
	}
	return nil
}
