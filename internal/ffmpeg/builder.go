package ffmpeg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clipforge/clipforge/internal/config"
)

// Build renders the complete ffmpeg argument vector for a graph. The command
// follows a shared skeleton: preamble, inputs, filters, video encode, audio
// encode, output. The compress path uses a plain -vf chain on its single
// input; the concat path renders a labeled -filter_complex.
func Build(cfg *config.Config, g *Graph) []string {
	args := make([]string, 0, 48)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin")
	if g.Overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}

	// Loglevel: info when verbose, otherwise error.
	if cfg.Verbose {
		args = append(args, "-loglevel", "info", "-stats")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Inputs ---
	if g.IsConcat() {
		for _, c := range g.Chains {
			args = append(args, "-i", c.Path)
		}
	} else {
		args = append(args, "-i", g.Input)
	}

	// --- Filters and stream selection ---
	if g.IsConcat() {
		args = append(args, "-filter_complex", renderConcatFilter(g))
		args = append(args, "-map", "[v]", "-map", "[a]")
	} else if len(g.VideoFilters) > 0 {
		args = append(args, "-vf", renderChain(g.VideoFilters))
	}

	// --- Encode nodes ---
	args = appendVideoEncode(args, &g.Video)
	args = appendAudioEncode(args, g.Audio)

	// --- Output ---
	args = append(args, g.OutputPath)

	return args
}

// renderChain joins filter nodes into a comma-separated ffmpeg filter chain.
func renderChain(nodes []FilterNode) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ",")
}

// renderConcatFilter builds the labeled filter_complex string: one
// normalization chain per input stream, then a single concat node merging
// the video+audio pairs in input order into [v] and [a].
func renderConcatFilter(g *Graph) string {
	var b strings.Builder
	for i, c := range g.Chains {
		fmt.Fprintf(&b, "[%d:v]%s[v%d];", i, renderChain(c.Video), i)
		fmt.Fprintf(&b, "[%d:a]%s[a%d];", i, renderChain(c.Audio), i)
	}
	for i := range g.Chains {
		fmt.Fprintf(&b, "[v%d][a%d]", i, i)
	}
	fmt.Fprintf(&b, "concat=n=%d:v=1:a=1[v][a]", len(g.Chains))
	return b.String()
}

// appendVideoEncode adds the video encoder arguments, omitting zero-valued
// optional fields.
func appendVideoEncode(args []string, v *VideoEncodeNode) []string {
	args = append(args, "-c:v", string(v.Codec))

	if v.Codec == config.CodecCopy {
		// Stream copy takes no encoder tuning.
		return args
	}

	args = append(args, "-preset", v.Preset)
	if v.CRF > 0 {
		args = append(args, "-crf", strconv.Itoa(v.CRF))
	}
	args = append(args, "-threads", strconv.Itoa(v.Threads))
	if v.PixFmt != "" {
		args = append(args, "-pix_fmt", v.PixFmt)
	}
	if v.FastStart {
		args = append(args, "-movflags", "+faststart")
	}
	if v.Tune != "" {
		args = append(args, "-tune", v.Tune)
	}
	if v.X264Opts != "" {
		args = append(args, "-x264opts", v.X264Opts)
	}
	if v.Refs > 0 {
		args = append(args, "-refs", strconv.Itoa(v.Refs))
	}
	if v.BFrames > 0 {
		args = append(args, "-bf", strconv.Itoa(v.BFrames))
	}
	if v.Deblock != "" {
		args = append(args, "-deblock", v.Deblock)
	}
	if v.GopSize > 0 {
		args = append(args, "-g", strconv.Itoa(v.GopSize))
	}
	if v.KeyintMin > 0 {
		args = append(args, "-keyint_min", strconv.Itoa(v.KeyintMin))
	}
	return args
}

// appendAudioEncode adds the audio encoder arguments, or -an when the graph
// carries no audio.
func appendAudioEncode(args []string, a *AudioEncodeNode) []string {
	if a == nil {
		return append(args, "-an")
	}
	args = append(args, "-c:a", a.Codec, "-b:a", fmt.Sprintf("%dk", a.BitrateKbps))
	if a.SampleRate > 0 {
		args = append(args, "-ar", strconv.Itoa(a.SampleRate))
	}
	return args
}
