package planner

import (
	"errors"
	"reflect"
	"testing"

	"github.com/clipforge/clipforge/internal/probe"
)

// --- Helper builders ---

func hd1080p() *probe.StreamInfo {
	return &probe.StreamInfo{
		HasVideo: true, HasAudio: true,
		Width: 1920, Height: 1080,
		FPS: 29.97, Duration: 600,
	}
}

// --- Derivation tests ---

func TestDerive_CRFPerLevel(t *testing.T) {
	wantCRF := map[Level]int{
		1: 20, 2: 22, 3: 24, 4: 26, 5: 28,
		6: 30, 7: 32, 8: 34, 9: 36, 10: 38,
	}
	for level := LevelMin; level <= LevelMax; level++ {
		p, err := Derive(hd1080p(), level)
		if err != nil {
			t.Fatal(err)
		}
		if p.CRF != wantCRF[level] {
			t.Errorf("level %d: CRF = %d, want %d", level, p.CRF, wantCRF[level])
		}
	}
}

func TestDerive_CRFMonotonicAndInRange(t *testing.T) {
	prev := 0
	for level := LevelMin; level <= LevelMax; level++ {
		p, err := Derive(hd1080p(), level)
		if err != nil {
			t.Fatal(err)
		}
		if p.CRF < CRFMin || p.CRF > CRFMax {
			t.Errorf("level %d: CRF %d outside [%d,%d]", level, p.CRF, CRFMin, CRFMax)
		}
		if p.CRF < prev {
			t.Errorf("level %d: CRF %d decreased from %d", level, p.CRF, prev)
		}
		prev = p.CRF
	}
}

func TestDerive_ScaleTiers1080p(t *testing.T) {
	wantWidth := map[Level]int{
		1: 0, 2: 0, // no rescale
		3: 1536, 4: 1536, // 80%
		5: 1248, 6: 1248, // 65%
		7: 960, 8: 960, // 50%
		9: 672, 10: 672, // 35%
	}
	for level := LevelMin; level <= LevelMax; level++ {
		p, err := Derive(hd1080p(), level)
		if err != nil {
			t.Fatal(err)
		}
		if p.ScaleWidth != wantWidth[level] {
			t.Errorf("level %d: ScaleWidth = %d, want %d", level, p.ScaleWidth, wantWidth[level])
		}
		if p.ScaleWidth != 0 {
			if p.ScaleWidth%2 != 0 {
				t.Errorf("level %d: ScaleWidth %d is odd", level, p.ScaleWidth)
			}
			if p.ScaleWidth < 240 || p.ScaleWidth >= 1920 {
				t.Errorf("level %d: ScaleWidth %d violates [240, source)", level, p.ScaleWidth)
			}
		}
	}
}

func TestDerive_ScaleFloor(t *testing.T) {
	// 300 * 0.35 = 105 -> even 104 -> floored to 240, still below source.
	info := hd1080p()
	info.Width = 300
	p, err := Derive(info, 9)
	if err != nil {
		t.Fatal(err)
	}
	if p.ScaleWidth != 240 {
		t.Errorf("ScaleWidth = %d, want 240 (minimum floor)", p.ScaleWidth)
	}
}

func TestDerive_NoUpscaleFromFloor(t *testing.T) {
	// Source already at the floor: the 240px candidate is not strictly
	// smaller, so no scale filter at all.
	info := hd1080p()
	info.Width = 240
	p, err := Derive(info, 10)
	if err != nil {
		t.Fatal(err)
	}
	if p.ScaleWidth != 0 {
		t.Errorf("ScaleWidth = %d, want 0 for a 240px source", p.ScaleWidth)
	}
}

func TestDerive_UnknownWidthFallback(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		want  int
	}{
		{"low level keeps resolution", 3, 0},
		{"mid level falls back to 720", 4, 720},
		{"mid level upper bound", 6, 720},
		{"high level falls back to 640", 7, 640},
		{"max level", 10, 640},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := hd1080p()
			info.Width = 0
			info.Height = 0
			p, err := Derive(info, tt.level)
			if err != nil {
				t.Fatal(err)
			}
			if p.ScaleWidth != tt.want {
				t.Errorf("level %d: ScaleWidth = %d, want %d", tt.level, p.ScaleWidth, tt.want)
			}
		})
	}
}

func TestDerive_AudioBitrateTiers(t *testing.T) {
	wantKbps := map[Level]int{
		1: 128, 2: 128,
		3: 96, 4: 96,
		5: 64, 6: 64, 7: 64,
		8: 48, 9: 48, 10: 48,
	}
	for level := LevelMin; level <= LevelMax; level++ {
		p, err := Derive(hd1080p(), level)
		if err != nil {
			t.Fatal(err)
		}
		if p.AudioBitrateKbps != wantKbps[level] {
			t.Errorf("level %d: AudioBitrateKbps = %d, want %d", level, p.AudioBitrateKbps, wantKbps[level])
		}
	}
}

func TestDerive_NoAudioStream(t *testing.T) {
	info := hd1080p()
	info.HasAudio = false
	for level := LevelMin; level <= LevelMax; level++ {
		p, err := Derive(info, level)
		if err != nil {
			t.Fatal(err)
		}
		if p.AudioBitrateKbps != 0 {
			t.Errorf("level %d: AudioBitrateKbps = %d, want 0 without audio", level, p.AudioBitrateKbps)
		}
	}
}

func TestDerive_FPSCap(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		fps       float64
		wantFPS   int
		wantGop   int
		wantKeyin int
	}{
		{"below cap level", 8, 60, 0, 0, 0},
		{"59.94 capped to 30", 9, 59.94, 30, 60, 30},
		{"29.97 capped to 24", 9, 29.97, 24, 48, 24},
		{"boundary 30.1 capped to 24", 10, 30.1, 24, 48, 24},
		{"25 fps untouched", 9, 25.0, 0, 0, 0},
		{"boundary 25.1 untouched", 9, 25.1, 0, 0, 0},
		{"unknown fps untouched", 10, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := hd1080p()
			info.FPS = tt.fps
			p, err := Derive(info, tt.level)
			if err != nil {
				t.Fatal(err)
			}
			if p.TargetFPS != tt.wantFPS {
				t.Errorf("TargetFPS = %d, want %d", p.TargetFPS, tt.wantFPS)
			}
			if p.GopSize != tt.wantGop {
				t.Errorf("GopSize = %d, want %d", p.GopSize, tt.wantGop)
			}
			if p.KeyintMin != tt.wantKeyin {
				t.Errorf("KeyintMin = %d, want %d", p.KeyintMin, tt.wantKeyin)
			}
		})
	}
}

func TestDerive_HighFrameRate1080pMaxTiers(t *testing.T) {
	info := &probe.StreamInfo{HasVideo: true, HasAudio: true, Width: 1920, Height: 1080, FPS: 59.94, Duration: 60}
	p, err := Derive(info, 9)
	if err != nil {
		t.Fatal(err)
	}
	want := &EncodeParams{CRF: 36, ScaleWidth: 672, TargetFPS: 30, AudioBitrateKbps: 48, GopSize: 60, KeyintMin: 30}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("Derive(level 9) = %+v, want %+v", p, want)
	}

	p, err = Derive(info, 1)
	if err != nil {
		t.Fatal(err)
	}
	want = &EncodeParams{CRF: 20, ScaleWidth: 0, TargetFPS: 0, AudioBitrateKbps: 128}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("Derive(level 1) = %+v, want %+v", p, want)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	info := hd1080p()
	a, err := Derive(info, 7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Derive(info, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated derivation differs: %+v vs %+v", a, b)
	}
}

func TestDerive_NoVideoStream(t *testing.T) {
	info := &probe.StreamInfo{HasVideo: false, HasAudio: true, Duration: 60}
	_, err := Derive(info, 5)
	if !errors.Is(err, ErrNoVideoStream) {
		t.Errorf("error = %v, want ErrNoVideoStream", err)
	}
}

func TestDerive_InvalidLevel(t *testing.T) {
	for _, level := range []Level{0, 11, -3} {
		if _, err := Derive(hd1080p(), level); err == nil {
			t.Errorf("level %d: expected error", level)
		}
	}
}
