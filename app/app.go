// Package app is the plotting surface: it owns the curve store, the viewport and the renderer,
// and turns host input into curve and view changes.
package app

import (
	"image/color"
	"time"

	"github.com/Q1rD/function-plotter/plot"
	"github.com/sgostarter/i/l"
)

// Config sets up a Plotter.
type Config struct {
	Home            plot.Viewport
	Palette         []color.RGBA
	SamplesPerPixel int
	CacheTTL        time.Duration

	// ShowInput draws the expression line and enables text entry.
	ShowInput bool

	Logger l.Wrapper
}

// FallbackPalette is used when Config.Palette is empty.
var FallbackPalette = []color.RGBA{
	{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF},
	{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF},
	{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF},
	{R: 0xFF, G: 0x98, B: 0x00, A: 0xFF},
	{R: 0x9C, G: 0x27, B: 0xB0, A: 0xFF},
}
