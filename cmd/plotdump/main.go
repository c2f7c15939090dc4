// Command plotdump samples functions over a view without opening a window. It prints a YAML
// report of what the plotter would draw and can write the rendered frame as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/Q1rD/function-plotter/app"
	"github.com/Q1rD/function-plotter/config"
	"github.com/Q1rD/function-plotter/expr"
	"github.com/Q1rD/function-plotter/hal"
	"github.com/Q1rD/function-plotter/plot"
	"gopkg.in/yaml.v3"
)

type report struct {
	View      plot.Viewport   `yaml:"view"`
	Width     int             `yaml:"width"`
	Height    int             `yaml:"height"`
	Functions []functionStats `yaml:"functions"`
}

type functionStats struct {
	Expr       string `yaml:"expr"`
	Normalized string `yaml:"normalized"`
	Error      string `yaml:"error,omitempty"`
	Samples    int    `yaml:"samples,omitempty"`
	Finite     int    `yaml:"finite,omitempty"`
	Paths      int    `yaml:"paths,omitempty"`
	Points     int    `yaml:"points,omitempty"`
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file.")
		view       = flag.String("view", "", "View as xmin,xmax,ymin,ymax.")
		width      = flag.Int("width", 0, "Surface width in pixels (default from config).")
		height     = flag.Int("height", 0, "Surface height in pixels (default from config).")
		spp        = flag.Int("spp", 0, "Samples per pixel (default from config).")
		pngPath    = flag.String("png", "", "Also render the frame to this PNG file.")
		exprs      config.StringList
	)
	flag.Var(&exprs, "f", "Function to sample. Repeatable.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err == nil {
		err = cfg.ApplyOverrides(exprs, *view)
	}
	if err != nil {
		fatalf("config: %v", err)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *spp > 0 {
		cfg.Sampling.SamplesPerPixel = *spp
	}
	if len(cfg.Functions) == 0 {
		fatalf("usage: plotdump -f 'sin(x)' [-f ...] [-view -10,10,-10,10] [-width 640 -height 480] [-png out.png]")
	}

	rep := sampleAll(&cfg)
	if err := writeReport(os.Stdout, rep); err != nil {
		fatalf("report: %v", err)
	}

	if *pngPath != "" {
		if err := renderPNG(&cfg, *pngPath); err != nil {
			fatalf("png: %v", err)
		}
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func sampleAll(cfg *config.Config) report {
	surface := plot.Surface{Width: cfg.Window.Width, Height: cfg.Window.Height}
	v := cfg.Home()

	rep := report{View: v, Width: surface.Width, Height: surface.Height}
	for _, f := range cfg.Functions {
		rep.Functions = append(rep.Functions, sampleOne(f.Expr, v, surface, cfg.Sampling.SamplesPerPixel))
	}
	return rep
}

func sampleOne(text string, v plot.Viewport, s plot.Surface, spp int) functionStats {
	st := functionStats{Expr: text, Normalized: expr.Normalize(text)}

	c, err := expr.Compile(st.Normalized)
	if err == nil {
		err = c.Probe()
	}
	if err != nil {
		st.Error = err.Error()
		return st
	}

	samples := plot.SampleFunc(c, v, s.Width, spp)
	st.Samples = len(samples)
	for _, smp := range samples {
		if !math.IsNaN(smp.Y) && !math.IsInf(smp.Y, 0) {
			st.Finite++
		}
	}

	paths := plot.BuildPaths(samples, v, s)
	st.Paths = len(paths)
	for _, p := range paths {
		st.Points += len(p)
	}
	return st
}

func writeReport(w io.Writer, rep report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}

func renderPNG(cfg *config.Config, path string) error {
	palette, err := cfg.Colors()
	if err != nil {
		return err
	}

	h := hal.New(hal.HostConfig{Width: cfg.Window.Width, Height: cfg.Window.Height})
	p, err := app.New(h, app.Config{
		Home:            cfg.Home(),
		Palette:         palette,
		SamplesPerPixel: cfg.Sampling.SamplesPerPixel,
		CacheTTL:        cfg.Sampling.CacheTTL,
	})
	if err != nil {
		return err
	}
	for _, f := range cfg.Functions {
		c := p.NextColor()
		if f.Color != "" {
			if c, err = config.ParseColor(f.Color); err != nil {
				return err
			}
		}
		p.AddFunction(f.Expr, c)
	}
	if err = p.Step(); err != nil {
		return err
	}

	fb := h.Display().Framebuffer()
	img := &image.RGBA{
		Pix:    hal.SnapshotRGBA(fb),
		Stride: fb.Width() * 4,
		Rect:   image.Rect(0, 0, fb.Width(), fb.Height()),
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(out, img); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
