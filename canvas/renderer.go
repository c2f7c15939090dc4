// Package canvas rasterizes a plot scene into an RGB565 framebuffer.
package canvas

import (
	"errors"
	"image/color"

	"github.com/Q1rD/function-plotter/hal"
	"github.com/Q1rD/function-plotter/plot"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var ErrNoFont = errors.New("canvas: font has no usable glyph size")

var (
	colorBGTop     = color.RGBA{R: 240, G: 240, B: 245, A: 0xFF}
	colorBGBottom  = color.RGBA{R: 250, G: 250, B: 255, A: 0xFF}
	colorGrid      = color.RGBA{R: 220, G: 220, B: 230, A: 0xFF}
	colorGridMinor = color.RGBA{R: 235, G: 235, B: 240, A: 0xFF}
	colorAxis      = color.RGBA{R: 60, G: 60, B: 70, A: 0xFF}
	colorLabelBG   = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	colorPanelBG   = color.RGBA{R: 255, G: 255, B: 255, A: 230}
	colorPanelEdge = color.RGBA{R: 200, G: 200, B: 210, A: 0xFF}
	colorShadow    = color.RGBA{R: 0, G: 0, B: 0, A: 30}
	colorText      = color.RGBA{R: 60, G: 60, B: 70, A: 0xFF}
	colorDim       = color.RGBA{R: 140, G: 140, B: 150, A: 0xFF}
	colorBlack     = color.RGBA{A: 0xFF}
	colorWhite     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorMarker    = color.RGBA{R: 41, G: 128, B: 185, A: 0xFF}
	colorGuide     = color.RGBA{R: 41, G: 128, B: 185, A: 100}
	colorNone      = color.RGBA{}
)

// Stroke is one curve ready to draw: its screen-space paths plus legend data.
type Stroke struct {
	Label    string
	Color    color.RGBA
	Paths    [][]plot.Point
	Selected bool
}

// Scene is everything one frame shows.
type Scene struct {
	View    plot.Viewport
	Strokes []Stroke
	Cursor  plot.CursorState

	// ShowInput enables the expression line along the bottom edge.
	ShowInput bool
	Input     string
	Status    string
}

type Renderer struct {
	fb hal.Framebuffer
	d  *fbDisplay

	font       tinyfont.Fonter
	fontWidth  int16
	fontHeight int16
	fontOffset int16

	// StrokeWidth is the curve pen width in pixels.
	StrokeWidth int
}

func New(fb hal.Framebuffer) (*Renderer, error) {
	r := &Renderer{fb: fb, d: newFBDisplay(fb), StrokeWidth: 2}
	if !r.initFont() {
		return nil, ErrNoFont
	}
	return r, nil
}

func (r *Renderer) initFont() bool {
	r.font = &proggy.TinySZ8pt7b
	r.fontHeight = int16(r.font.GetYAdvance())
	r.fontOffset = r.fontHeight * 3 / 4
	_, outboxWidth := tinyfont.LineWidth(r.font, "0")
	r.fontWidth = int16(outboxWidth)
	return r.fontWidth > 0 && r.fontHeight > 0
}

// Surface is the pixel area paths must be built for.
func (r *Renderer) Surface() plot.Surface {
	if r.fb == nil {
		return plot.Surface{}
	}
	return plot.Surface{Width: r.fb.Width(), Height: r.fb.Height()}
}

// Render draws sc and presents the framebuffer.
func (r *Renderer) Render(sc *Scene) error {
	s := r.Surface()
	if s.Width <= 0 || s.Height <= 0 || !sc.View.Valid() {
		return nil
	}

	r.background(s)
	r.drawGrid(sc.View, s)
	r.drawAxes(sc.View, s)
	r.drawAxisLabels(sc.View, s)

	for _, st := range sc.Strokes {
		r.drawStroke(st)
	}
	r.drawLegend(sc.Strokes)

	if sc.Cursor.Inside {
		if sc.Cursor.InspectCoords {
			r.drawCoordinates(sc.View, s, sc.Cursor.Mouse)
		} else if sc.Cursor.HasNearest && len(sc.Strokes) > 0 {
			r.drawNearest(sc.View, s, sc.Cursor.Nearest)
		}
	}

	if sc.ShowInput {
		r.drawInputLine(s, sc.Input, sc.Status)
	}

	return r.d.Display()
}

func (r *Renderer) background(s plot.Surface) {
	for y := 0; y < s.Height; y++ {
		t := float64(y) / float64(s.Height)
		c := color.RGBA{
			R: lerp8(colorBGTop.R, colorBGBottom.R, t),
			G: lerp8(colorBGTop.G, colorBGBottom.G, t),
			B: lerp8(colorBGTop.B, colorBGBottom.B, t),
			A: 0xFF,
		}
		_ = r.d.FillRectangle(0, int16(y), int16(s.Width), 1, c)
	}
}

func (r *Renderer) drawStroke(st Stroke) {
	for _, path := range st.Paths {
		for i := 1; i < len(path); i++ {
			r.segment(path[i-1].X, path[i-1].Y, path[i].X, path[i].Y, r.StrokeWidth, st.Color)
		}
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
