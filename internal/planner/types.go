package planner

// Level is the user-facing size-reduction aggressiveness control: 1 is
// minimum reduction (best quality), 10 is maximum reduction.
type Level int

// Valid reduction level bounds.
const (
	LevelMin Level = 1
	LevelMax Level = 10
)

// Valid reports whether the level is inside [LevelMin, LevelMax].
func (l Level) Valid() bool { return l >= LevelMin && l <= LevelMax }

// EncodeParams is the derived encoder parameter set for one compression run.
// It is produced once by [Derive] and never mutated afterwards. Zero values
// mean "leave the source alone": ScaleWidth 0 keeps the resolution,
// TargetFPS 0 keeps the frame rate, AudioBitrateKbps 0 means there is no
// audio stream to encode.
type EncodeParams struct {
	CRF              int // Constant Rate Factor, within [18,51].
	ScaleWidth       int // Target width in pixels; even, >= 240, < source width.
	TargetFPS        int // Frame-rate cap; set only at the highest levels.
	AudioBitrateKbps int
	GopSize          int // Set only when TargetFPS is set.
	KeyintMin        int // Set only when TargetFPS is set.
}
