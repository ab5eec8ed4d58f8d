package planner

// The piecewise-constant mappings from reduction level to scale percentage
// and audio bitrate, as ordered (upper bound, value) tables. The first entry
// whose MaxLevel is >= the level wins; tables are sorted by MaxLevel and end
// at LevelMax, so lookups cannot fall through.

type scaleTier struct {
	MaxLevel Level
	Pct      float64 // Fraction of source width; 1.0 = no rescale.
}

var scaleTiers = []scaleTier{
	{2, 1.0},
	{4, 0.80},
	{6, 0.65},
	{8, 0.50},
	{10, 0.35},
}

type audioTier struct {
	MaxLevel Level
	Kbps     int
}

var audioTiers = []audioTier{
	{2, 128},
	{4, 96},
	{7, 64},
	{10, 48},
}

// scalePercent returns the width fraction for the level.
func scalePercent(l Level) float64 {
	for _, t := range scaleTiers {
		if l <= t.MaxLevel {
			return t.Pct
		}
	}
	return scaleTiers[len(scaleTiers)-1].Pct
}

// audioBitrateKbps returns the AAC bitrate tier for the level.
func audioBitrateKbps(l Level) int {
	for _, t := range audioTiers {
		if l <= t.MaxLevel {
			return t.Kbps
		}
	}
	return audioTiers[len(audioTiers)-1].Kbps
}
