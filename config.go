package slideact

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tanema/gween/ease"
)

const (
	defaultTrackWidth  = 280
	defaultCursorWidth = 72
	defaultAreaMargin  = 8
	defaultGraceRatio  = 0.8
	defaultDuration    = 300 * time.Millisecond
	defaultEasing      = "inOutSine"
)

// Duration is a time.Duration that reads and writes as a Go duration string
// ("300ms") in TOML.
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Seconds returns the duration in seconds as the float32 gween steps with.
func (d Duration) Seconds() float32 {
	return float32(time.Duration(d).Seconds())
}

// Config holds every option a Slider recognizes. Zero-valued numeric fields
// are not defaulted; start from DefaultConfig.
type Config struct {
	TrackWidth  float64 `toml:"track_width"`
	CursorWidth float64 `toml:"cursor_width"`
	AreaMargin  float64 `toml:"area_margin"`

	ThresholdMode string  `toml:"threshold_mode"` // "edge" or "ratio"
	GraceRatio    float64 `toml:"grace_ratio"`

	AnimationDuration Duration `toml:"animation_duration"`
	Easing            string   `toml:"easing"`

	ResetOnTapWhenCompleted bool `toml:"reset_on_tap_when_completed"`
	BounceBack              bool `toml:"bounce_back"`
	AnimateCompletion       bool `toml:"animate_completion"`
	Reversed                bool `toml:"reversed"`

	// Initial state.
	Locked    bool `toml:"locked"`
	Enabled   bool `toml:"enabled"`
	Completed bool `toml:"completed"`

	Debug bool `toml:"debug"`
}

// DefaultConfig returns the configuration a plain slider starts from.
func DefaultConfig() Config {
	return Config{
		TrackWidth:        defaultTrackWidth,
		CursorWidth:       defaultCursorWidth,
		AreaMargin:        defaultAreaMargin,
		ThresholdMode:     "edge",
		GraceRatio:        defaultGraceRatio,
		AnimationDuration: Duration(defaultDuration),
		Easing:            defaultEasing,
		BounceBack:        true,
		AnimateCompletion: true,
		Enabled:           true,
	}
}

// Geometry returns the track geometry described by the config.
func (c Config) Geometry() Geometry {
	return Geometry{TrackWidth: c.TrackWidth, CursorWidth: c.CursorWidth, AreaMargin: c.AreaMargin}
}

// Validate normalizes out-of-range values in place. Geometry and ratios are
// clamped rather than rejected; only unknown names are errors.
func (c *Config) Validate() error {
	c.TrackWidth = nonNegative(c.TrackWidth)
	c.CursorWidth = nonNegative(c.CursorWidth)
	c.AreaMargin = nonNegative(c.AreaMargin)
	if c.GraceRatio <= 0 || c.GraceRatio > 1 {
		c.GraceRatio = defaultGraceRatio
	}
	if c.AnimationDuration < 0 {
		c.AnimationDuration = 0
	}
	if c.Easing == "" {
		c.Easing = defaultEasing
	}
	if _, err := c.thresholdMode(); err != nil {
		return err
	}
	if _, err := EasingByName(c.Easing); err != nil {
		return err
	}
	return nil
}

func (c Config) thresholdMode() (ThresholdMode, error) {
	switch strings.ToLower(c.ThresholdMode) {
	case "", "edge":
		return ThresholdEdge, nil
	case "ratio", "grace":
		return ThresholdRatio, nil
	}
	return ThresholdEdge, fmt.Errorf("unknown threshold mode %q", c.ThresholdMode)
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"outBack":      ease.OutBack,
	"outBounce":    ease.OutBounce,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
}

// EasingByName returns the gween easing function registered under name.
// Lookup is case-insensitive.
func EasingByName(name string) (ease.TweenFunc, error) {
	if fn, ok := easings[name]; ok {
		return fn, nil
	}
	for k, fn := range easings {
		if strings.EqualFold(k, name) {
			return fn, nil
		}
	}
	return nil, fmt.Errorf("unknown easing %q (known: %s)", name, strings.Join(EasingNames(), ", "))
}

// EasingNames lists the registered easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for k := range easings {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DecodeConfig parses TOML on top of DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func DecodeConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := DecodeConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// EncodeConfig renders cfg as TOML.
func EncodeConfig(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteConfig writes cfg to path as TOML.
func WriteConfig(path string, cfg Config) error {
	data, err := EncodeConfig(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
