package canvas

import (
	"math"
	"strconv"

	"github.com/Q1rD/function-plotter/plot"
)

const (
	minGridSpacingPx  = 4
	minLabelSpacingPx = 48
	maxGridLines      = 4096
	arrowSize         = 12
	arrowAngleDeg     = 25
)

// gridStep is one tenth of the range's decade, halved when that leaves fewer than five cells.
func gridStep(span float64) float64 {
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 1
	}
	step := math.Pow(10, math.Floor(math.Log10(span))-1)
	if span/step < 5 {
		step /= 2
	}
	return step
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	if pow == 0 || math.IsNaN(pow) || math.IsInf(pow, 0) {
		return 1
	}
	frac := raw / pow
	switch {
	case frac <= 1:
		return 1 * pow
	case frac <= 2:
		return 2 * pow
	case frac <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

func fmtAxis(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if math.Abs(v) < 1e-12 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// ticks lists the multiples of step inside [lo, hi].
func ticks(lo, hi, step float64) []float64 {
	if step <= 0 || (hi-lo)/step > maxGridLines {
		return nil
	}
	var out []float64
	for k := math.Ceil(lo / step); k*step <= hi; k++ {
		out = append(out, k*step)
	}
	return out
}

func (r *Renderer) drawGrid(v plot.Viewport, s plot.Surface) {
	xStep := gridStep(v.Width())
	yStep := gridStep(v.Height())
	xPx := float64(s.Width) / v.Width()
	yPx := float64(s.Height) / v.Height()

	if xStep/5*xPx >= minGridSpacingPx {
		r.gridLinesX(v, s, xStep/5, true)
	}
	if yStep/5*yPx >= minGridSpacingPx {
		r.gridLinesY(v, s, yStep/5, true)
	}
	if xStep*xPx >= minGridSpacingPx {
		r.gridLinesX(v, s, xStep, false)
	}
	if yStep*yPx >= minGridSpacingPx {
		r.gridLinesY(v, s, yStep, false)
	}
}

func (r *Renderer) gridLinesX(v plot.Viewport, s plot.Surface, step float64, minor bool) {
	c := colorGrid
	if minor {
		c = colorGridMinor
	}
	for _, x := range ticks(v.XMin, v.XMax, step) {
		if minor && isMultiple(x, step*5) {
			continue
		}
		px := roundInt16(v.ToScreen(x, 0, s).X)
		if minor {
			r.line(px, 0, px, int16(s.Height-1), c, 1)
		} else {
			_ = r.d.FillRectangle(px, 0, 1, int16(s.Height), c)
		}
	}
}

func (r *Renderer) gridLinesY(v plot.Viewport, s plot.Surface, step float64, minor bool) {
	c := colorGrid
	if minor {
		c = colorGridMinor
	}
	for _, y := range ticks(v.YMin, v.YMax, step) {
		if minor && isMultiple(y, step*5) {
			continue
		}
		py := roundInt16(v.ToScreen(0, y, s).Y)
		if minor {
			r.line(0, py, int16(s.Width-1), py, c, 1)
		} else {
			_ = r.d.FillRectangle(0, py, int16(s.Width), 1, c)
		}
	}
}

func isMultiple(v, step float64) bool {
	k := v / step
	return math.Abs(k-math.Round(k)) < 1e-6
}

// drawAxes draws whichever axes cross the view, 2 px wide, with arrow heads at the positive ends.
func (r *Renderer) drawAxes(v plot.Viewport, s plot.Surface) {
	origin := v.ToScreen(0, 0, s)
	sin := math.Sin(arrowAngleDeg * math.Pi / 180)
	cos := math.Cos(arrowAngleDeg * math.Pi / 180)

	if v.YMin <= 0 && v.YMax >= 0 {
		y := origin.Y
		r.segment(0, y, float64(s.Width-1), y, 2, colorAxis)
		tip := [2]float64{float64(s.Width - 1), y}
		r.fillTriangle(tip,
			[2]float64{tip[0] - arrowSize*cos, y - arrowSize*sin},
			[2]float64{tip[0] - arrowSize*cos, y + arrowSize*sin},
			colorAxis)
	}
	if v.XMin <= 0 && v.XMax >= 0 {
		x := origin.X
		r.segment(x, 0, x, float64(s.Height-1), 2, colorAxis)
		tip := [2]float64{x, 0}
		r.fillTriangle(tip,
			[2]float64{x - arrowSize*sin, arrowSize * cos},
			[2]float64{x + arrowSize*sin, arrowSize * cos},
			colorAxis)
	}
}

// drawAxisLabels puts tick marks and values along each axis. When an axis is off screen its
// labels stick to the nearest edge.
func (r *Renderer) drawAxisLabels(v plot.Viewport, s plot.Surface) {
	origin := v.ToScreen(0, 0, s)
	w, h := int16(s.Width), int16(s.Height)

	xStep := math.Max(gridStep(v.Width()), niceStep(minLabelSpacingPx*v.Width()/float64(s.Width)))
	axisY := clampInt16(roundInt16(origin.Y), 0, h-r.fontHeight-8)
	for _, x := range ticks(v.XMin, v.XMax, xStep) {
		if math.Abs(x) < xStep/2 {
			continue
		}
		px := roundInt16(v.ToScreen(x, 0, s).X)
		r.line(px, axisY-3, px, axisY+3, colorAxis, 0)

		label := fmtAxis(x)
		lw := r.textWidth(label)
		bx := clampInt16(px-lw/2-2, 0, w-lw-4)
		r.box(bx, axisY+5, lw+4, r.fontHeight+2, colorLabelBG, colorNone)
		r.text(bx+2, axisY+6, label, colorText, len(label))
	}

	yStep := math.Max(gridStep(v.Height()), niceStep(minLabelSpacingPx*v.Height()/float64(s.Height)))
	axisX := clampInt16(roundInt16(origin.X), 0, w-1)
	for _, y := range ticks(v.YMin, v.YMax, yStep) {
		if math.Abs(y) < yStep/2 {
			continue
		}
		py := roundInt16(v.ToScreen(0, y, s).Y)
		r.line(axisX-3, py, axisX+3, py, colorAxis, 0)

		label := fmtAxis(y)
		lw := r.textWidth(label)
		bx := axisX - lw - 14
		if bx < 0 {
			bx = axisX + 6
		}
		by := clampInt16(py-r.fontHeight/2-1, 0, h-r.fontHeight-2)
		r.box(bx, by, lw+8, r.fontHeight+2, colorLabelBG, colorNone)
		r.text(bx+4, by+1, label, colorText, len(label))
	}
}

func clampInt16(v, lo, hi int16) int16 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
