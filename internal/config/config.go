// Package config holds the runtime settings, read from built-in
// defaults, an optional YAML file and TAPQUAD_* environment variables in
// that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"tapquad/internal/gesture"
	"tapquad/internal/render"
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Tap Quad"
)

// Texture limits.
const (
	DefaultSmileySize = 256
	MaxTextureSize    = 8192
)

// Environment overrides.
const (
	EnvTexture  = "TAPQUAD_TEXTURE"
	EnvWrap     = "TAPQUAD_WRAP"
	EnvLogLevel = "TAPQUAD_LOG_LEVEL"
	EnvMute     = "TAPQUAD_MUTE"
)

// Config is the full set of runtime settings. The zero value is not
// usable; start from Default or Load.
type Config struct {
	Window   Window     `yaml:"window"`
	Texture  Texture    `yaml:"texture"`
	Gesture  Gesture    `yaml:"gesture"`
	Audio    Audio      `yaml:"audio"`
	Render   Render     `yaml:"render"`
	LogLevel slog.Level `yaml:"log_level"`
}

// Window sizes the desktop window. Android ignores it.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Texture selects and prepares the image mapped on the quad.
type Texture struct {
	// Path is the image to map on the quad; empty selects the built-in
	// smiley.
	Path    string          `yaml:"path"`
	Wrap    render.WrapMode `yaml:"wrap"`
	FlipY   bool            `yaml:"flip_y"`
	MaxSize int             `yaml:"max_size"`
}

// Gesture mirrors gesture.Config in YAML form.
type Gesture struct {
	ShowPressTimeout time.Duration `yaml:"show_press_timeout"`
	DoubleTapTimeout time.Duration `yaml:"double_tap_timeout"`
	LongPressTimeout time.Duration `yaml:"long_press_timeout"`
	TouchSlop        float64       `yaml:"touch_slop"`
	MinFlingVelocity float64       `yaml:"min_fling_velocity"`
}

// Audio controls the tap click.
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Render holds frame settings.
type Render struct {
	ClearColor [4]float32 `yaml:"clear_color"`
}

// Default returns the built-in settings, which always validate.
func Default() Config {
	g := gesture.DefaultConfig()
	return Config{
		Window: Window{Width: WindowWidth, Height: WindowHeight, Title: WindowTitle},
		Texture: Texture{
			Wrap:  render.WrapRepeat,
			FlipY: true,
		},
		Gesture: Gesture{
			ShowPressTimeout: g.ShowPressTimeout,
			DoubleTapTimeout: g.DoubleTapTimeout,
			LongPressTimeout: g.LongPressTimeout,
			TouchSlop:        g.TouchSlop,
			MinFlingVelocity: g.MinFlingVelocity,
		},
		Audio:    Audio{Enabled: true, Volume: 0.6},
		Render:   Render{ClearColor: [4]float32{0, 0, 0, 1}},
		LogLevel: slog.LevelInfo,
	}
}

// Load reads the YAML file at path over the defaults. Unknown keys are
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv applies the TAPQUAD_* overrides found by lookup, normally
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTexture); ok {
		c.Texture.Path = v
	}
	if v, ok := lookup(EnvWrap); ok {
		if err := c.Texture.Wrap.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvWrap, err)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if err := c.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if v, ok := lookup(EnvMute); ok {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMute, err)
		}
		c.Audio.Enabled = !mute
	}
	return nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Texture.MaxSize < 0 || c.Texture.MaxSize > MaxTextureSize:
		return fmt.Errorf("texture max_size %d outside [0,%d]", c.Texture.MaxSize, MaxTextureSize)
	case c.Texture.Wrap < render.WrapRepeat || c.Texture.Wrap > render.WrapMirror:
		return fmt.Errorf("unknown wrap mode %d", c.Texture.Wrap)
	case c.Gesture.ShowPressTimeout <= 0 || c.Gesture.DoubleTapTimeout <= 0 || c.Gesture.LongPressTimeout <= 0:
		return errors.New("gesture timeouts must be positive")
	case c.Gesture.TouchSlop < 0 || c.Gesture.MinFlingVelocity < 0:
		return errors.New("gesture touch_slop and min_fling_velocity must not be negative")
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio volume %v outside [0,1]", c.Audio.Volume)
	}
	for i, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("clear_color[%d] = %v outside [0,1]", i, v)
		}
	}
	return nil
}

// GestureConfig converts the gesture section for the detector.
func (c Config) GestureConfig() gesture.Config {
	return gesture.Config{
		ShowPressTimeout: c.Gesture.ShowPressTimeout,
		DoubleTapTimeout: c.Gesture.DoubleTapTimeout,
		LongPressTimeout: c.Gesture.LongPressTimeout,
		TouchSlop:        c.Gesture.TouchSlop,
		MinFlingVelocity: c.Gesture.MinFlingVelocity,
	}
}
