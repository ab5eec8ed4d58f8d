package probe

import (
	"errors"
	"strconv"
	"strings"
)

// pickFrameRate selects the raw fraction to parse: r_frame_rate unless it is
// absent, empty, or the "0/0" placeholder, in which case avg_frame_rate is
// used under the same rule. Returns "" when neither field is usable, which
// leaves the frame rate unknown rather than failing the probe.
func pickFrameRate(r, avg string) string {
	if usable(r) {
		return r
	}
	if usable(avg) {
		return avg
	}
	return ""
}

func usable(s string) bool {
	return s != "" && s != "0/0"
}

// parseFraction parses an ffprobe "numerator/denominator" frame-rate fraction.
// A fraction that is not two numeric parts, or whose denominator is zero, is
// an error.
func parseFraction(s string) (float64, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, errors.New("frame rate is not a num/den fraction")
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, errors.New("non-numeric frame-rate numerator")
	}
	den, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, errors.New("non-numeric frame-rate denominator")
	}
	if den == 0 {
		return 0, errors.New("frame-rate denominator is zero")
	}
	return num / den, nil
}
