package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	HostConfig
	Hz    int
	Ticks uint64
}

// RunHeadless drives the app on a ticker without opening a window. It returns after Ticks steps
// (0 means run until ctx is done). ready, when set, receives the Host before the first step so
// callers can queue input.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(HAL) (func() error, error), ready func(*Host)) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := New(cfg.HostConfig)
	step, err := newApp(h)
	if err != nil {
		return err
	}
	if ready != nil {
		ready(h)
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
