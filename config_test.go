package slideact

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if cfg.Geometry().MaxOffset() != 192 {
		t.Errorf("MaxOffset() = %v, want 192", cfg.Geometry().MaxOffset())
	}
}

func TestDecodeConfigKeepsDefaults(t *testing.T) {
	cfg, err := DecodeConfig([]byte(`
track_width = 300
cursor_width = 60
area_margin = 0
animation_duration = "500ms"
easing = "outBack"
reset_on_tap_when_completed = true
`))
	if err != nil {
		t.Fatalf("DecodeConfig() = %v", err)
	}
	if cfg.TrackWidth != 300 || cfg.CursorWidth != 60 || cfg.AreaMargin != 0 {
		t.Errorf("geometry = %+v", cfg.Geometry())
	}
	if time.Duration(cfg.AnimationDuration) != 500*time.Millisecond {
		t.Errorf("AnimationDuration = %v", time.Duration(cfg.AnimationDuration))
	}
	if cfg.Easing != "outBack" || !cfg.ResetOnTapWhenCompleted {
		t.Errorf("easing=%q resetOnTap=%v", cfg.Easing, cfg.ResetOnTapWhenCompleted)
	}
	// Untouched keys keep their defaults.
	if !cfg.Enabled || !cfg.BounceBack || cfg.GraceRatio != 0.8 || cfg.ThresholdMode != "edge" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", `track_width = `, "decode config"},
		{"bad duration", `animation_duration = "soon"`, "duration"},
		{"unknown easing", `easing = "wobble"`, "unknown easing"},
		{"unknown mode", `threshold_mode = "halfway"`, "unknown threshold mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrackWidth = -5
	cfg.GraceRatio = 3
	cfg.AnimationDuration = Duration(-time.Second)
	cfg.Easing = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if cfg.TrackWidth != 0 || cfg.GraceRatio != 0.8 || cfg.AnimationDuration != 0 || cfg.Easing != "inOutSine" {
		t.Errorf("not clamped: %+v", cfg)
	}
}

func TestEasingByNameCaseInsensitive(t *testing.T) {
	for _, name := range []string{"outBounce", "OUTBOUNCE", "outbounce"} {
		if _, err := EasingByName(name); err != nil {
			t.Errorf("EasingByName(%q) = %v", name, err)
		}
	}
	if _, err := EasingByName("nope"); err == nil {
		t.Error("expected error for unknown easing")
	}
}

func TestEasingNamesSorted(t *testing.T) {
	names := EasingNames()
	if len(names) != len(easings) {
		t.Fatalf("got %d names, want %d", len(names), len(easings))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted at %d: %q > %q", i, names[i-1], names[i])
		}
	}
}

func TestWriteAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slider.toml")
	cfg := DefaultConfig()
	cfg.TrackWidth = 320
	cfg.ThresholdMode = "ratio"
	cfg.GraceRatio = 0.75
	cfg.AnimationDuration = Duration(250 * time.Millisecond)
	cfg.Reversed = true

	if err := WriteConfig(path, cfg); err != nil {
		t.Fatalf("WriteConfig() = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `animation_duration = "250ms"`) {
		t.Errorf("duration not written as a string:\n%s", data)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if got != cfg {
		t.Errorf("LoadConfig() = %+v, want %+v", got, cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig() = %v, want a not-exist error", err)
	}
}
