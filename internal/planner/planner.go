package planner

import (
	"errors"
	"fmt"
	"math"

	"github.com/clipforge/clipforge/internal/probe"
)

// ErrNoVideoStream is returned by Derive when the input has no video stream
// to compress.
var ErrNoVideoStream = errors.New("input has no video stream")

// CRF derivation constants. The level maps linearly from crfFloor (level 1)
// to crfCeil (level 10), then clamps to the encoder-valid [CRFMin, CRFMax].
const (
	crfFloor = 20
	crfCeil  = 38
	CRFMin   = 18
	CRFMax   = 51
)

// Scale constraints.
const (
	minScaleWidth = 240 // Never scale below this width.

	// Fixed fallback widths when the source width is unknown.
	fallbackWidthHigh = 640 // level >= 7
	fallbackWidthMid  = 720 // level >= 4
	fallbackLevelHigh = 7
	fallbackLevelMid  = 4
)

// Frame-rate capping: evaluated only at the most aggressive levels, and only
// for sources that actually exceed common broadcast rates. The 0.1 slack
// keeps fractional NTSC rates (29.97, 59.94) on the intended side of each
// boundary.
const (
	fpsCapLevel     Level   = 9
	fpsHighCutoff   float64 = 30.1
	fpsMidCutoff    float64 = 25.1
	fpsTargetHigh           = 30
	fpsTargetMid            = 24
)

// Derive maps probed stream metadata and a reduction level to a complete
// encoder parameter set. Pure and deterministic: no I/O, no hidden state.
func Derive(info *probe.StreamInfo, level Level) (*EncodeParams, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("reduction level %d out of range [%d,%d]", level, LevelMin, LevelMax)
	}
	if info == nil || !info.HasVideo {
		return nil, ErrNoVideoStream
	}

	p := &EncodeParams{
		CRF:        deriveCRF(level),
		ScaleWidth: deriveScaleWidth(info.Width, level),
	}

	if info.HasAudio {
		p.AudioBitrateKbps = audioBitrateKbps(level)
	}

	if level >= fpsCapLevel && info.FPS > 0 {
		if target := deriveFPSCap(info.FPS); target > 0 {
			p.TargetFPS = target
			// GOP of two seconds at the new rate; keyframes at least
			// one second apart.
			p.GopSize = target * 2
			p.KeyintMin = target
		}
	}

	return p, nil
}

// deriveCRF interpolates the level onto the CRF range and clamps to the
// encoder-valid bounds.
func deriveCRF(level Level) int {
	crf := crfFloor + int(math.Round(float64(level-LevelMin)*float64(crfCeil-crfFloor)/float64(LevelMax-LevelMin)))
	return clamp(crf, CRFMin, CRFMax)
}

// deriveScaleWidth computes the target width for the level, or 0 for no
// rescale. The candidate is the tier percentage of the source width, rounded
// down to an even integer and floored at minScaleWidth; it applies only when
// strictly smaller than the source. Unknown source width falls back to fixed
// widths at the aggressive tiers.
func deriveScaleWidth(srcWidth int, level Level) int {
	if srcWidth <= 0 {
		switch {
		case level >= fallbackLevelHigh:
			return fallbackWidthHigh
		case level >= fallbackLevelMid:
			return fallbackWidthMid
		default:
			return 0
		}
	}

	pct := scalePercent(level)
	if pct >= 1.0 {
		return 0
	}

	w := int(float64(srcWidth) * pct)
	w -= w % 2
	if w < minScaleWidth {
		w = minScaleWidth
	}
	if w >= srcWidth {
		return 0
	}
	return w
}

// deriveFPSCap returns the capped frame rate for a source rate, or 0 when
// the source is already at or below common rates.
func deriveFPSCap(fps float64) int {
	switch {
	case fps > fpsHighCutoff:
		return fpsTargetHigh
	case fps > fpsMidCutoff:
		return fpsTargetMid
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
