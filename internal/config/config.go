// Package config holds the tunable constants of the demo.
// The built-in defaults reproduce the stock game; an optional TOML file can
// override any of them.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"
)

// MinSampleRate is the lowest audio rate accepted. Every cue tone must stay
// below half of it.
const MinSampleRate = 8000

// Config holds all settings for a run
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Balls    []BallConfig   `toml:"balls"`
	Paddles  PaddleConfig   `toml:"paddles"`
	Audio    AudioConfig    `toml:"audio"`
	Terminal TerminalConfig `toml:"terminal"`
}

// WindowConfig defines the playing field and host window
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`  // Field width in pixels
	Height int    `toml:"height"` // Field height in pixels
}

// BallConfig defines one ball. All balls start at the field centre.
type BallConfig struct {
	Radius float64 `toml:"radius"`
	Color  string  `toml:"color"` // "#rrggbb" or a CSS colour name
	SpeedX float64 `toml:"speed_x"`
	SpeedY float64 `toml:"speed_y"`
}

// PaddleConfig defines both paddles
type PaddleConfig struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Speed       float64 `toml:"speed"`        // Pixels per tick
	Margin      float64 `toml:"margin"`       // Gap between paddle and field edge
	StartOffset float64 `toml:"start_offset"` // Start y is height/2 - start_offset
	TopColor    string  `toml:"top_color"`
	BottomColor string  `toml:"bottom_color"`
}

// AudioConfig defines the sound cues
type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`      // Base-2 exponent, 0 is unity gain
	WallBounce bool    `toml:"wall_bounce"` // Also cue top/bottom bounces
}

// TerminalConfig defines the terminal host
type TerminalConfig struct {
	FPS           int `toml:"fps"`
	KeyHoldMillis int `toml:"key_hold_ms"` // Terminals send no key-up; a key is released after this long without a repeat
}

// DefaultConfig returns the stock game
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Multiball",
			Width:  800,
			Height: 600,
		},
		Balls: []BallConfig{
			{Radius: 15, Color: "#00FFFF", SpeedX: 4, SpeedY: 4},
			{Radius: 10, Color: "#FFA500", SpeedX: 3, SpeedY: 3},
			{Radius: 8, Color: "#0000FF", SpeedX: 2, SpeedY: 2},
			{Radius: 50, Color: "#808080", SpeedX: 5, SpeedY: 5},
			{Radius: 20, Color: "#ffffff", SpeedX: 8, SpeedY: 8},
		},
		Paddles: PaddleConfig{
			Width:       10,
			Height:      250,
			Speed:       5,
			Margin:      10,
			StartOffset: 75,
			TopColor:    "#10c20a",
			BottomColor: "#e00202",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     -1,
			WallBounce: false,
		},
		Terminal: TerminalConfig{
			FPS:           60,
			KeyHoldMillis: 300,
		},
	}
}

// LoadConfig loads config from a TOML file on top of the defaults.
// A missing file is not an error. Tables merge key by key, but a file that
// lists any [[balls]] replaces the default balls outright: listed balls start
// from zero values, so each needs its own color and speeds.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	defaultBalls := config.Balls
	config.Balls = nil // Decoding into the defaults would merge balls by index
	md, err := toml.Decode(string(data), config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if !md.IsDefined("balls") {
		config.Balls = defaultBalls
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that the config describes a playable field
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if len(c.Balls) == 0 {
		return errors.New("at least one ball is required")
	}
	for i, b := range c.Balls {
		if b.Radius <= 0 {
			return fmt.Errorf("ball %d: radius must be positive, got %v", i, b.Radius)
		}
		if _, err := ParseColor(b.Color); err != nil {
			return fmt.Errorf("ball %d: %w", i, err)
		}
	}

	p := c.Paddles
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("paddle size must be positive, got %vx%v", p.Width, p.Height)
	}
	fieldW, fieldH := float64(c.Window.Width), float64(c.Window.Height)
	if p.Height > fieldH {
		return fmt.Errorf("paddle height %v exceeds field height %v", p.Height, fieldH)
	}
	if p.Margin < 0 || p.Margin+p.Width > fieldW/2 {
		return fmt.Errorf("paddle margin %v plus width %v must fit in half the field width %v", p.Margin, p.Width, fieldW)
	}
	if startY := fieldH/2 - p.StartOffset; startY < 0 || startY > fieldH-p.Height {
		return fmt.Errorf("paddle start y %v outside [0, %v]", startY, fieldH-p.Height)
	}
	if p.Speed < 0 {
		return fmt.Errorf("paddle speed must not be negative, got %v", p.Speed)
	}
	if _, err := ParseColor(p.TopColor); err != nil {
		return fmt.Errorf("paddle top colour: %w", err)
	}
	if _, err := ParseColor(p.BottomColor); err != nil {
		return fmt.Errorf("paddle bottom colour: %w", err)
	}

	if c.Audio.Enabled && c.Audio.SampleRate < MinSampleRate {
		return fmt.Errorf("audio sample rate must be at least %d, got %d", MinSampleRate, c.Audio.SampleRate)
	}

	if c.Terminal.FPS <= 0 {
		return fmt.Errorf("terminal fps must be positive, got %d", c.Terminal.FPS)
	}
	return nil
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or a CSS colour name.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
		}
		return color.NRGBA{}, fmt.Errorf("unknown colour %q", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustParseColor is ParseColor for values already checked by Validate.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
