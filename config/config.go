// Package config loads the plotter's YAML configuration and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/Q1rD/function-plotter/plot"
	"github.com/sgostarter/i/commerr"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = fmt.Errorf("config: %w", commerr.ErrInvalidArgument)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type View struct {
	XMin float64 `yaml:"xMin"`
	XMax float64 `yaml:"xMax"`
	YMin float64 `yaml:"yMin"`
	YMax float64 `yaml:"yMax"`
}

type Sampling struct {
	SamplesPerPixel int           `yaml:"samplesPerPixel"`
	CacheTTL        time.Duration `yaml:"cacheTTL"`
}

// Function is a curve to install at startup. An empty Color takes the next palette entry.
type Function struct {
	Expr  string `yaml:"expr"`
	Color string `yaml:"color,omitempty"`
}

type Config struct {
	Window    Window     `yaml:"window"`
	View      View       `yaml:"view"`
	Sampling  Sampling   `yaml:"sampling"`
	Palette   []string   `yaml:"palette"`
	Functions []Function `yaml:"functions"`
}

// DefaultPalette is cycled through as curves are added.
var DefaultPalette = []string{
	"#2196F3", "#F44336", "#4CAF50", "#FF9800", "#9C27B0",
	"#795548", "#009688", "#673AB7", "#FF5722", "#607D8B",
}

func Default() Config {
	home := plot.DefaultViewport()

	return Config{
		Window: Window{Width: 640, Height: 480, Scale: 1, Title: "Function Plotter", TPS: 60},
		View:   View{XMin: home.XMin, XMax: home.XMax, YMin: home.YMin, YMax: home.YMax},
		Sampling: Sampling{
			SamplesPerPixel: plot.DefaultSamplesPerPixel,
			CacheTTL:        30 * time.Second,
		},
		Palette: append([]string(nil), DefaultPalette...),
	}
}

// Load decodes the YAML file at path over Default and validates the result. An empty path
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	d, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err = Parse(d, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes d over cfg and validates it.
func Parse(d []byte, cfg *Config) error {
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return cfg.Validate()
}

func (cfg *Config) Validate() error {
	var errs []error

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", ErrInvalid, cfg.Window.Width, cfg.Window.Height))
	}
	if cfg.Window.Scale < 0 || cfg.Window.TPS < 0 {
		errs = append(errs, fmt.Errorf("%w: window scale %d, tps %d", ErrInvalid, cfg.Window.Scale, cfg.Window.TPS))
	}
	if !cfg.Home().Valid() {
		errs = append(errs, fmt.Errorf("%w: view needs xMin < xMax and yMin < yMax, got %+v", ErrInvalid, cfg.View))
	}
	if cfg.Sampling.SamplesPerPixel <= 0 {
		errs = append(errs, fmt.Errorf("%w: samplesPerPixel %d", ErrInvalid, cfg.Sampling.SamplesPerPixel))
	}
	if cfg.Sampling.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("%w: cacheTTL %v", ErrInvalid, cfg.Sampling.CacheTTL))
	}
	if _, err := cfg.Colors(); err != nil {
		errs = append(errs, err)
	}
	for i, f := range cfg.Functions {
		if f.Color == "" {
			continue
		}
		if _, err := ParseColor(f.Color); err != nil {
			errs = append(errs, fmt.Errorf("functions[%d]: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// Home is the configured view as a viewport.
func (cfg *Config) Home() plot.Viewport {
	return plot.Viewport{XMin: cfg.View.XMin, XMax: cfg.View.XMax, YMin: cfg.View.YMin, YMax: cfg.View.YMax}
}

// Colors parses the palette.
func (cfg *Config) Colors() ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(cfg.Palette))
	for i, s := range cfg.Palette {
		c, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		out = append(out, c)
	}

	return out, nil
}
