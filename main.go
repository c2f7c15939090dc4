package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/Q1rD/function-plotter/app"
	"github.com/Q1rD/function-plotter/config"
	"github.com/Q1rD/function-plotter/hal"
	"github.com/Q1rD/function-plotter/internal/buildinfo"
	"github.com/sgostarter/i/l"
)

func main() {
	var (
		configPath string
		headless   bool
		hz         int
		ticks      uint64
		exprs      config.StringList
		view       string
		showInput  bool
	)
	flag.StringVar(&configPath, "config", "", "YAML configuration file.")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Var(&exprs, "f", "Function to plot, e.g. -f 'sin(x)'. Repeatable; replaces the configured functions.")
	flag.StringVar(&view, "view", "", "Initial view as xmin,xmax,ymin,ymax.")
	flag.BoolVar(&showInput, "input", true, "Show the expression input line.")
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()
	logger.WithFields(l.StringField("build", buildinfo.Long())).Info("function plotter starting")

	cfg, err := config.Load(configPath)
	if err == nil {
		err = cfg.ApplyOverrides(exprs, view)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	newApp := func(h hal.HAL) (func() error, error) {
		return newPlotter(h, &cfg, showInput, logger)
	}

	host := hal.HostConfig{Width: cfg.Window.Width, Height: cfg.Window.Height}
	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		err = hal.RunHeadless(ctx, hal.HeadlessConfig{HostConfig: host, Hz: hz, Ticks: ticks}, newApp, nil)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		err = hal.RunWindow(hal.WindowConfig{
			HostConfig: host,
			Scale:      cfg.Window.Scale,
			Title:      cfg.Window.Title,
			TPS:        cfg.Window.TPS,
		}, newApp)
	}

	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("function plotter stopped")
		os.Exit(1)
	}
}

func newPlotter(h hal.HAL, cfg *config.Config, showInput bool, logger l.Wrapper) (func() error, error) {
	palette, err := cfg.Colors()
	if err != nil {
		return nil, err
	}

	p, err := app.New(h, app.Config{
		Home:            cfg.Home(),
		Palette:         palette,
		SamplesPerPixel: cfg.Sampling.SamplesPerPixel,
		CacheTTL:        cfg.Sampling.CacheTTL,
		ShowInput:       showInput,
		Logger:          logger,
	})
	if err != nil {
		return nil, err
	}

	for _, f := range cfg.Functions {
		c := p.NextColor()
		if f.Color != "" {
			if c, err = config.ParseColor(f.Color); err != nil {
				return nil, err
			}
		}
		p.AddFunction(f.Expr, c)
	}

	// Keep the window open on the crash screen; the panic is already logged.
	return func() error {
		if err := p.Step(); err != nil && !errors.Is(err, app.ErrPanic) {
			return err
		}
		return nil
	}, nil
}
