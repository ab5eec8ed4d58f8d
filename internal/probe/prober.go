package probe

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"
)

// Probe runs a single ffprobe JSON call against path and returns the parsed
// result. It is a read-only query with no retries; a failure is reported as
// a [*Error] and never masked.
func Probe(ctx context.Context, path string) (*StreamInfo, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, &Error{Path: path, Reason: "ffprobe failed", Err: err}
	}

	return ParseOutput(path, out)
}

// ParseOutput converts raw ffprobe JSON output into a StreamInfo.
// Exported for testing without a real ffprobe binary.
func ParseOutput(path string, data []byte) (*StreamInfo, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Path: path, Reason: "malformed ffprobe JSON", Err: err}
	}
	return buildInfo(path, &raw)
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	CodecType    string         `json:"codec_type"`
	Width        int            `json:"width"`
	Height       int            `json:"height"`
	RFrameRate   string         `json:"r_frame_rate"`
	AvgFrameRate string         `json:"avg_frame_rate"`
	Disposition  map[string]int `json:"disposition"`
}

// --- Conversion from wire types to the domain type ---

func buildInfo(path string, raw *ffprobeOutput) (*StreamInfo, error) {
	info := &StreamInfo{}

	var video *ffprobeStream
	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "video":
			// Cover art shows up as an attached-pic video stream; it is
			// not the stream being transcoded.
			if s.Disposition["attached_pic"] == 1 {
				continue
			}
			if video == nil {
				video = s
			}
		case "audio":
			info.HasAudio = true
		}
	}

	if video != nil {
		info.HasVideo = true
		info.Width = video.Width
		info.Height = video.Height

		frac := pickFrameRate(video.RFrameRate, video.AvgFrameRate)
		if frac != "" {
			fps, err := parseFraction(frac)
			if err != nil {
				return nil, &Error{Path: path, Reason: "malformed frame rate " + strconv.Quote(frac), Err: err}
			}
			info.FPS = fps
		}
	}

	dur := strings.TrimSpace(raw.Format.Duration)
	if dur == "" {
		return nil, &Error{Path: path, Reason: "missing duration"}
	}
	d, err := strconv.ParseFloat(dur, 64)
	if err != nil {
		return nil, &Error{Path: path, Reason: "malformed duration " + strconv.Quote(dur), Err: err}
	}
	info.Duration = d

	return info, nil
}
