// Package plot maps between graph and screen space, samples curves over the visible range and
// turns the samples into drawable paths.
package plot

import (
	"math"
	"strconv"
)

// Point is a position in either screen pixels or graph units, depending on who produced it.
type Point struct {
	X, Y float64
}

// Surface is the pixel size of the drawing area.
type Surface struct {
	Width, Height int
}

// Viewport is the visible graph rectangle. XMin < XMax and YMin < YMax always hold.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultViewport is the home view used when nothing else is configured.
func DefaultViewport() Viewport {
	return Viewport{XMin: -10, XMax: 10, YMin: -10, YMax: 10}
}

func (v Viewport) Valid() bool {
	for _, f := range []float64{v.XMin, v.XMax, v.YMin, v.YMax} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return v.XMin < v.XMax && v.YMin < v.YMax
}

func (v Viewport) Width() float64  { return v.XMax - v.XMin }
func (v Viewport) Height() float64 { return v.YMax - v.YMin }

// ToScreen maps graph coordinates to fractional pixels. y grows downward on screen.
func (v Viewport) ToScreen(x, y float64, s Surface) Point {
	return Point{
		X: float64(s.Width) * (x - v.XMin) / v.Width(),
		Y: float64(s.Height) * (1 - (y-v.YMin)/v.Height()),
	}
}

// ToGraph is the inverse of ToScreen.
func (v Viewport) ToGraph(px, py float64, s Surface) (x, y float64) {
	x = v.XMin + v.Width()*px/float64(s.Width)
	y = v.YMin + v.Height()*(1-py/float64(s.Height))
	return x, y
}

// WheelFactor converts wheel rotation to a zoom factor: 15 degrees (one notch) is 1.2x.
func WheelFactor(degrees float64) float64 {
	return math.Pow(1.2, degrees/15)
}

// Zoom keeps the graph point under center fixed and scales every bound's distance to it by
// 1/factor, so factor > 1 zooms in. Factors that are not finite and positive, or that would
// collapse the view, are ignored.
func (v *Viewport) Zoom(factor float64, center Point, s Surface) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}
	gx, gy := v.ToGraph(center.X, center.Y, s)
	next := Viewport{
		XMin: gx - (gx-v.XMin)/factor,
		XMax: gx + (v.XMax-gx)/factor,
		YMin: gy - (gy-v.YMin)/factor,
		YMax: gy + (v.YMax-gy)/factor,
	}
	next.normalize()
	if !next.Valid() {
		return
	}
	*v = next
}

// Pan shifts the view by a pixel drag delta: dragging right moves the view left, dragging down
// moves it up. Bounds are not rounded here, since rounding each one separately could change the
// extent of a deeply zoomed view.
func (v *Viewport) Pan(delta Point, s Surface) {
	dx := -v.Width() * delta.X / float64(s.Width)
	dy := v.Height() * delta.Y / float64(s.Height)
	next := Viewport{XMin: v.XMin + dx, XMax: v.XMax + dx, YMin: v.YMin + dy, YMax: v.YMax + dy}
	if !next.Valid() {
		return
	}
	*v = next
}

// Reset restores home when it is a valid view.
func (v *Viewport) Reset(home Viewport) {
	if home.Valid() {
		*v = home
	}
}

func (v *Viewport) normalize() {
	v.XMin = normalizeFloat(v.XMin)
	v.XMax = normalizeFloat(v.XMax)
	v.YMin = normalizeFloat(v.YMin)
	v.YMax = normalizeFloat(v.YMax)
}

// normalizeFloat rounds to 12 significant digits so repeated zooming keeps labels stable. It
// also folds -0 into 0.
func normalizeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	out, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 12, 64), 64)
	if err != nil {
		return v
	}
	if out == 0 {
		return 0
	}
	return out
}
