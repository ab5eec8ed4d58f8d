package probe

import "fmt"

// StreamInfo is the distilled per-file metadata consumed by the parameter
// deriver and the concat assembler. Width, Height and FPS are meaningful
// only when HasVideo is true; zero means unknown.
type StreamInfo struct {
	HasVideo bool
	HasAudio bool
	Width    int
	Height   int
	FPS      float64 // Frames per second; 0 when unknown.
	Duration float64 // Container duration in seconds.
}

// Resolution returns "WxH" for the video stream, or "unknown".
func (si *StreamInfo) Resolution() string {
	if !si.HasVideo || si.Width <= 0 || si.Height <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dx%d", si.Width, si.Height)
}

// Error describes a failed probe of one input file.
type Error struct {
	Path   string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("probe %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("probe %s: %s", e.Path, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }
