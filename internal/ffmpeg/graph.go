package ffmpeg

import "github.com/clipforge/clipforge/internal/config"

// FilterNode is one step in a filter chain, rendered as "name=args" (or just
// "name" when it takes no arguments).
type FilterNode struct {
	Name string
	Args string
}

func (f FilterNode) String() string {
	if f.Args == "" {
		return f.Name
	}
	return f.Name + "=" + f.Args
}

// VideoEncodeNode is the terminal video encode step. Zero-valued fields are
// omitted from the rendered command.
type VideoEncodeNode struct {
	Codec     config.Codec
	Preset    string
	CRF       int // 0 = encoder default (concat path).
	Threads   int // 0 = auto-detect.
	PixFmt    string
	FastStart bool // -movflags +faststart.

	// GOP structure; set only when the frame rate is altered.
	GopSize   int
	KeyintMin int

	// Extra tuning carried by the compress path.
	Tune     string
	X264Opts string
	Refs     int
	BFrames  int
	Deblock  string
}

// AudioEncodeNode is the terminal audio encode step.
type AudioEncodeNode struct {
	Codec       string
	BitrateKbps int
	SampleRate  int // 0 = keep source rate.
}

// InputChain holds one concat input and its per-stream normalization filters.
type InputChain struct {
	Path  string
	Video []FilterNode
	Audio []FilterNode
}

// Graph is the ordered set of filter and encode steps assembled for one run
// of the external engine. Exactly one of the two input forms is populated:
// Input (+ VideoFilters) for the compress path, Chains for the concat path.
// Construction is side-effect free; nothing happens until [Execute].
type Graph struct {
	// Compress path: a single input with an optional video filter chain.
	Input        string
	VideoFilters []FilterNode

	// Concat path: per-input normalization chains, concatenated pairwise
	// (video+audio) in slice order.
	Chains []InputChain

	Video      VideoEncodeNode
	Audio      *AudioEncodeNode // nil = no audio stream; render -an.
	OutputPath string
	Overwrite  bool
}

// IsConcat reports whether the graph is a concatenation graph.
func (g *Graph) IsConcat() bool { return len(g.Chains) > 0 }
