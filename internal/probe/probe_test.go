package probe

import (
	"errors"
	"math"
	"testing"
)

// Realistic ffprobe JSON for an MP4 with:
//   - 1 H.264 video stream (1920x1080, 59.94 fps via r_frame_rate)
//   - 1 AAC stereo audio stream
//   - 1 attached pic (cover art, must not be picked as the video stream)
const sampleHD = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mjpeg",
      "codec_type": "video",
      "width": 600,
      "height": 900,
      "disposition": { "default": 0, "attached_pic": 1 }
    },
    {
      "index": 1,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1920,
      "height": 1080,
      "r_frame_rate": "60000/1001",
      "avg_frame_rate": "60000/1001",
      "disposition": { "default": 1, "attached_pic": 0 }
    },
    {
      "index": 2,
      "codec_name": "aac",
      "codec_type": "audio",
      "channels": 2,
      "sample_rate": "44100",
      "disposition": { "default": 1 }
    }
  ],
  "format": {
    "filename": "/media/test/clip.mp4",
    "nb_streams": 3,
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "120.500000"
  }
}`

// Variable-frame-rate screen capture: r_frame_rate is the useless "0/0"
// placeholder, avg_frame_rate carries the real value.
const sampleVFR = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1280,
      "height": 720,
      "r_frame_rate": "0/0",
      "avg_frame_rate": "30000/1001",
      "disposition": { "default": 1 }
    }
  ],
  "format": { "duration": "33.700000" }
}`

const sampleAudioOnly = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mp3",
      "codec_type": "audio",
      "channels": 2,
      "disposition": { "default": 1 }
    }
  ],
  "format": { "duration": "180.000000" }
}`

func TestParseOutput_HDFile(t *testing.T) {
	info, err := ParseOutput("clip.mp4", []byte(sampleHD))
	if err != nil {
		t.Fatal(err)
	}
	if !info.HasVideo {
		t.Error("HasVideo = false, want true")
	}
	if !info.HasAudio {
		t.Error("HasAudio = false, want true")
	}
	if info.Width != 1920 || info.Height != 1080 {
		t.Errorf("resolution = %dx%d, want 1920x1080 (attached pic must be skipped)", info.Width, info.Height)
	}
	if math.Abs(info.FPS-59.94) > 0.01 {
		t.Errorf("FPS = %v, want ~59.94", info.FPS)
	}
	if info.Duration != 120.5 {
		t.Errorf("Duration = %v, want 120.5", info.Duration)
	}
}

func TestParseOutput_AvgFrameRateFallback(t *testing.T) {
	info, err := ParseOutput("vfr.mp4", []byte(sampleVFR))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(info.FPS-29.97) > 0.01 {
		t.Errorf("FPS = %v, want ~29.97 (avg_frame_rate fallback)", info.FPS)
	}
}

func TestParseOutput_AudioOnly(t *testing.T) {
	info, err := ParseOutput("song.mp3", []byte(sampleAudioOnly))
	if err != nil {
		t.Fatal(err)
	}
	if info.HasVideo {
		t.Error("HasVideo = true for audio-only file")
	}
	if !info.HasAudio {
		t.Error("HasAudio = false, want true")
	}
	if info.Width != 0 || info.Height != 0 || info.FPS != 0 {
		t.Errorf("video fields set without a video stream: %+v", info)
	}
}

func TestParseOutput_MissingDuration(t *testing.T) {
	const noDuration = `{
	  "streams": [
	    {"codec_type": "video", "width": 640, "height": 480, "r_frame_rate": "25/1", "disposition": {}}
	  ],
	  "format": {}
	}`
	_, err := ParseOutput("x.mp4", []byte(noDuration))
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *probe.Error", err)
	}
	if perr.Path != "x.mp4" {
		t.Errorf("Path = %q, want x.mp4", perr.Path)
	}
}

func TestParseOutput_MalformedFrameRate(t *testing.T) {
	tests := []struct {
		name string
		r    string
	}{
		{"non-numeric", "abc/def"},
		{"zero denominator", "30/0"},
		{"missing denominator", "30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			js := `{
			  "streams": [
			    {"codec_type": "video", "width": 640, "height": 480, "r_frame_rate": "` + tt.r + `", "disposition": {}}
			  ],
			  "format": {"duration": "10.0"}
			}`
			_, err := ParseOutput("bad.mp4", []byte(js))
			var perr *Error
			if !errors.As(err, &perr) {
				t.Errorf("r_frame_rate %q: error = %v, want *probe.Error", tt.r, err)
			}
		})
	}
}

func TestParseOutput_BothFrameRatesUnusable(t *testing.T) {
	const js = `{
	  "streams": [
	    {"codec_type": "video", "width": 640, "height": 480, "r_frame_rate": "0/0", "avg_frame_rate": "", "disposition": {}}
	  ],
	  "format": {"duration": "10.0"}
	}`
	info, err := ParseOutput("x.mp4", []byte(js))
	if err != nil {
		t.Fatal(err)
	}
	if info.FPS != 0 {
		t.Errorf("FPS = %v, want 0 (unknown)", info.FPS)
	}
}

func TestPickFrameRate(t *testing.T) {
	tests := []struct {
		name string
		r    string
		avg  string
		want string
	}{
		{"prefer r", "24/1", "24000/1001", "24/1"},
		{"r is 0/0", "0/0", "30000/1001", "30000/1001"},
		{"r empty", "", "25/1", "25/1"},
		{"both unusable", "0/0", "", ""},
		{"both empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickFrameRate(tt.r, tt.avg); got != tt.want {
				t.Errorf("pickFrameRate(%q, %q) = %q, want %q", tt.r, tt.avg, got, tt.want)
			}
		})
	}
}

func TestResolution(t *testing.T) {
	si := &StreamInfo{HasVideo: true, Width: 1280, Height: 720}
	if got := si.Resolution(); got != "1280x720" {
		t.Errorf("Resolution() = %q, want 1280x720", got)
	}
	si = &StreamInfo{HasVideo: false}
	if got := si.Resolution(); got != "unknown" {
		t.Errorf("Resolution() = %q, want unknown", got)
	}
}
