package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	if c.Window.Width != 800 || c.Window.Height != 600 {
		t.Errorf("Expected 800x600 field, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if len(c.Balls) != 5 {
		t.Fatalf("Expected 5 balls, got %d", len(c.Balls))
	}

	wantRadii := []float64{15, 10, 8, 50, 20}
	wantSpeeds := []float64{4, 3, 2, 5, 8}
	for i, b := range c.Balls {
		if b.Radius != wantRadii[i] {
			t.Errorf("Ball %d: expected radius %v, got %v", i, wantRadii[i], b.Radius)
		}
		if b.SpeedX != wantSpeeds[i] || b.SpeedY != wantSpeeds[i] {
			t.Errorf("Ball %d: expected speed (%v, %v), got (%v, %v)", i, wantSpeeds[i], wantSpeeds[i], b.SpeedX, b.SpeedY)
		}
	}

	if c.Paddles.Width != 10 || c.Paddles.Height != 250 || c.Paddles.Speed != 5 {
		t.Errorf("Unexpected paddle defaults: %+v", c.Paddles)
	}

	if err := c.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if c.Window.Title != DefaultConfig().Window.Title {
		t.Errorf("Expected default title, got %q", c.Window.Title)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	data := `
[window]
title = "Test Field"
width = 400

[paddles]
speed = 7.5
top_color = "navy"

[audio]
enabled = false

[[balls]]
radius = 12
color = "#f0f"
speed_x = -3
speed_y = 1
`
	path := filepath.Join(t.TempDir(), "multiball.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if c.Window.Title != "Test Field" {
		t.Errorf("Expected title 'Test Field', got '%s'", c.Window.Title)
	}
	if c.Window.Width != 400 {
		t.Errorf("Expected width 400, got %d", c.Window.Width)
	}
	// Untouched keys keep their defaults
	if c.Window.Height != 600 {
		t.Errorf("Expected default height 600, got %d", c.Window.Height)
	}
	if c.Paddles.Height != 250 {
		t.Errorf("Expected default paddle height 250, got %v", c.Paddles.Height)
	}
	if c.Paddles.Speed != 7.5 {
		t.Errorf("Expected paddle speed 7.5, got %v", c.Paddles.Speed)
	}
	if c.Audio.Enabled {
		t.Error("Expected audio to be disabled")
	}

	if len(c.Balls) != 1 {
		t.Fatalf("Expected the ball list to be replaced with 1 ball, got %d", len(c.Balls))
	}
	if b := c.Balls[0]; b.Radius != 12 || b.SpeedX != -3 || b.Color != "#f0f" {
		t.Errorf("Unexpected ball: %+v", b)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", "[window\nwidth = 1", "failed to parse"},
		{"zero width", "[window]\nwidth = 0", "window size"},
		{"bad colour", "[paddles]\ntop_color = \"#12\"", "top colour"},
		{"bad ball radius", "[[balls]]\nradius = 0\ncolor = \"red\"", "radius"},
		{"ball without colour", "[[balls]]\nradius = 30", "ball 0"},
		{"paddle taller than field", "[window]\nheight = 200", "exceeds field height"},
		{"paddle starts above field", "[paddles]\nstart_offset = 400", "start y"},
		{"paddle starts below field", "[paddles]\nstart_offset = -100", "start y"},
		{"paddle too wide", "[window]\nwidth = 30", "half the field width"},
		{"negative margin", "[paddles]\nmargin = -1", "margin"},
		{"zero sample rate", "[audio]\nsample_rate = 0", "sample rate"},
		{"sample rate below cue tones", "[audio]\nsample_rate = 1760", "sample rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadConfigListedBallsStartFromZero(t *testing.T) {
	data := `
[[balls]]
radius = 30
color = "red"

[[balls]]
radius = 12
color = "#00f"
speed_x = 6
`
	path := filepath.Join(t.TempDir(), "multiball.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	want := []BallConfig{
		{Radius: 30, Color: "red"},
		{Radius: 12, Color: "#00f", SpeedX: 6},
	}
	if len(c.Balls) != len(want) {
		t.Fatalf("Expected %d balls, got %d", len(want), len(c.Balls))
	}
	for i := range want {
		if c.Balls[i] != want[i] {
			t.Errorf("Ball %d: expected %+v, got %+v", i, want[i], c.Balls[i])
		}
	}
}

func TestLoadConfigKeepsDefaultBallsWhenUnlisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multiball.toml")
	if err := os.WriteFile(path, []byte("[window]\ntitle = \"Quiet\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	defaults := DefaultConfig().Balls
	if len(c.Balls) != len(defaults) {
		t.Fatalf("Expected %d default balls, got %d", len(defaults), len(c.Balls))
	}
	for i := range defaults {
		if c.Balls[i] != defaults[i] {
			t.Errorf("Ball %d: expected %+v, got %+v", i, defaults[i], c.Balls[i])
		}
	}
}

func TestSampleRateIgnoredWhenMuted(t *testing.T) {
	c := DefaultConfig()
	c.Audio.Enabled = false
	c.Audio.SampleRate = 0
	if err := c.Validate(); err != nil {
		t.Errorf("Expected a disabled audio section to skip the rate check, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#00FFFF", color.NRGBA{R: 0, G: 255, B: 255, A: 255}, false},
		{"#ffffff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#f80", color.NRGBA{R: 255, G: 136, B: 0, A: 255}, false},
		{"#10c20a80", color.NRGBA{R: 0x10, G: 0xc2, B: 0x0a, A: 0x80}, false},
		{"Orange", color.NRGBA{R: 255, G: 165, B: 0, A: 255}, false},
		{"  gray ", color.NRGBA{R: 128, G: 128, B: 128, A: 255}, false},
		{"#12345", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
		{"notacolour", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
