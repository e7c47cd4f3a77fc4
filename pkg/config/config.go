// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/user/lapsestamp/pkg/adapters/ggrenderer"
	"github.com/user/lapsestamp/pkg/orchestrator"
	"github.com/user/lapsestamp/pkg/overlay"
	"github.com/user/lapsestamp/pkg/ports"
	"github.com/user/lapsestamp/pkg/timeconv"
	"github.com/user/lapsestamp/pkg/transform"
)

// Config represents the full configuration for lapsestamp.
type Config struct {
	// Input/Output
	InputPath  string `yaml:"-"`
	OutputPath string `yaml:"output"`
	Force      bool   `yaml:"force"`

	// Geometry
	Rotate          string `yaml:"rotate"`
	BackgroundColor string `yaml:"background_color"`

	Cadence  CadenceConfig  `yaml:"cadence"`
	Label    LabelConfig    `yaml:"label"`
	Encoding EncodingConfig `yaml:"encoding"`
}

// CadenceConfig maps frames to real and playback time.
type CadenceConfig struct {
	SecondsPerFrame float64 `yaml:"seconds_per_frame"`
	VideoFPS        float64 `yaml:"video_fps"`
}

// LabelConfig controls the time label drawn on each frame.
type LabelConfig struct {
	BucketSeconds int     `yaml:"bucket_seconds"`
	FontPath      string  `yaml:"font_path"`
	FontSize      float64 `yaml:"font_size"`
	Color         string  `yaml:"color"`
	Shadow        bool    `yaml:"shadow"`
	ShadowColor   string  `yaml:"shadow_color"`
	ShadowOffset  int     `yaml:"shadow_offset"`
	PositionX     float64 `yaml:"position_x"`
	PositionY     float64 `yaml:"position_y"`
	Timezone      string  `yaml:"timezone"` // IANA name; empty keeps the file's local time
}

// EncodingConfig controls the output encoder.
type EncodingConfig struct {
	Quality    int    `yaml:"quality"` // 1-63, 0 for the encoder default
	Bitrate    int    `yaml:"bitrate"` // kbps, 0 for quality-driven
	Preset     string `yaml:"preset"`
	FFmpegPath string `yaml:"ffmpeg_path"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		BackgroundColor: "#000000",

		Cadence: CadenceConfig{
			SecondsPerFrame: timeconv.DefaultSecondsPerFrame.Seconds(),
			VideoFPS:        timeconv.DefaultVideoFPS,
		},

		Label: LabelConfig{
			BucketSeconds: int(overlay.DefaultResolution / time.Second),
			FontSize:      ggrenderer.DefaultFontSize,
			Color:         "#ffffff",
			Shadow:        true,
			ShadowColor:   "#000000b4",
			ShadowOffset:  4,
			PositionX:     0.05,
			PositionY:     0.20,
		},

		Encoding: EncodingConfig{
			Preset: "fast",
		},
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(fs ports.FileSystem, path string) (Config, error) {
	cfg := Defaults()

	data, err := fs.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if _, err := transform.ParseRotation(c.Rotate); err != nil {
		return err
	}
	if err := c.cadence().Validate(); err != nil {
		return err
	}
	if c.Label.BucketSeconds <= 0 {
		return fmt.Errorf("label.bucket_seconds must be positive, got %d", c.Label.BucketSeconds)
	}
	if c.Label.FontSize <= 0 {
		return fmt.Errorf("label.font_size must be positive, got %v", c.Label.FontSize)
	}
	for name, v := range map[string]float64{"label.position_x": c.Label.PositionX, "label.position_y": c.Label.PositionY} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %v", name, v)
		}
	}
	for name, v := range map[string]string{
		"background_color":   c.BackgroundColor,
		"label.color":        c.Label.Color,
		"label.shadow_color": c.Label.ShadowColor,
	} {
		if !IsColor(v) {
			return fmt.Errorf("%s: invalid color %q", name, v)
		}
	}
	if c.Encoding.Quality < 0 || c.Encoding.Quality > 63 {
		return fmt.Errorf("encoding.quality must be within [0, 63], got %d", c.Encoding.Quality)
	}
	if _, err := c.location(); err != nil {
		return err
	}
	return nil
}

func (c Config) cadence() timeconv.Cadence {
	return timeconv.Cadence{
		SecondsPerFrame: time.Duration(c.Cadence.SecondsPerFrame * float64(time.Second)),
		VideoFPS:        c.Cadence.VideoFPS,
	}
}

func (c Config) location() (*time.Location, error) {
	if c.Label.Timezone == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(c.Label.Timezone)
	if err != nil {
		return nil, fmt.Errorf("label.timezone: %w", err)
	}
	return loc, nil
}

// FontSpec returns the font the label renderer should load.
func (c Config) FontSpec() ports.FontSpec {
	return ports.FontSpec{Path: c.Label.FontPath, Size: c.Label.FontSize}
}

// OverlayOptions converts the label settings to overlay.Options.
func (c Config) OverlayOptions() (overlay.Options, error) {
	loc, err := c.location()
	if err != nil {
		return overlay.Options{}, err
	}

	return overlay.Options{
		Resolution: time.Duration(c.Label.BucketSeconds) * time.Second,
		Location:   loc,
		RelX:       c.Label.PositionX,
		RelY:       c.Label.PositionY,
		Style: ports.TextStyle{
			Color:        ParseColor(c.Label.Color),
			Shadow:       c.Label.Shadow,
			ShadowColor:  ParseColor(c.Label.ShadowColor),
			ShadowOffset: c.Label.ShadowOffset,
		},
	}, nil
}

// IsColor reports whether s is a #RRGGBB or #RRGGBBAA hex color.
func IsColor(s string) bool {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := hexValue(s[i]); !ok {
			return false
		}
	}
	return true
}

// ParseColor parses a hex color string to color.Color.
// Malformed input yields black.
func ParseColor(hex string) color.Color {
	if !IsColor(hex) {
		return color.Black
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	r, g, b := hexByte(hex[0:2]), hexByte(hex[2:4]), hexByte(hex[4:6])
	if len(hex) == 8 {
		return color.NRGBA{R: r, G: g, B: b, A: hexByte(hex[6:8])}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexByte(s string) uint8 {
	hi, _ := hexValue(s[0])
	lo, _ := hexValue(s[1])
	return hi<<4 | lo
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
// Call Validate first; an unknown rotation falls back to none.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	rotation, _ := transform.ParseRotation(c.Rotate)

	return orchestrator.Config{
		InputPath:  c.InputPath,
		OutputPath: c.OutputPath,
		Force:      c.Force,

		Rotation:   rotation,
		Background: ParseColor(c.BackgroundColor),

		Cadence: c.cadence(),

		Encoder: ports.EncoderOptions{
			Quality: c.Encoding.Quality,
			Bitrate: c.Encoding.Bitrate,
			Preset:  c.Encoding.Preset,
		},
	}
}
