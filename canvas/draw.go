package canvas

import (
	"image/color"
	"math"

	"tinygo.org/x/tinyfont"
)

// clipLineToRect is Liang–Barsky clipping against [xmin,xmax]x[ymin,ymax].
func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = clampFloat(x0+u1*dx, xmin, xmax)
	cy0 = clampFloat(y0+u1*dy, ymin, ymax)
	cx1 = clampFloat(x0+u2*dx, xmin, xmax)
	cy1 = clampFloat(y0+u2*dy, ymin, ymax)
	return cx0, cy0, cx1, cy1, true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundInt16 rounds v to the nearest int16, saturating at the type's limits.
func roundInt16(v float64) int16 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	case v < 0:
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}

// segment clips a float segment to the surface and draws it width pixels thick.
func (r *Renderer) segment(x0, y0, x1, y1 float64, width int, c color.RGBA) {
	w, h := r.d.Size()
	cx0, cy0, cx1, cy1, ok := clipLineToRect(x0, y0, x1, y1, 0, 0, float64(w-1), float64(h-1))
	if !ok {
		return
	}
	r.thickLine(roundInt16(cx0), roundInt16(cy0), roundInt16(cx1), roundInt16(cy1), width, c)
}

// thickLine widens a Bresenham line across its minor axis.
func (r *Renderer) thickLine(x0, y0, x1, y1 int16, width int, c color.RGBA) {
	if width <= 1 {
		r.line(x0, y0, x1, y1, c, 0)
		return
	}
	steep := absInt16(y1-y0) > absInt16(x1-x0)
	lo := -(width - 1) / 2
	for o := lo; o < lo+width; o++ {
		off := int16(o)
		if steep {
			r.line(x0+off, y0, x1+off, y1, c, 0)
		} else {
			r.line(x0, y0+off, x1, y1+off, c, 0)
		}
	}
}

// line is Bresenham. A non-zero dash draws dash pixels on, dash pixels off.
func (r *Renderer) line(x0, y0, x1, y1 int16, c color.RGBA, dash int) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for n := 0; ; n++ {
		if dash <= 0 || (n/dash)%2 == 0 {
			r.d.SetPixel(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += int16(sx)
		}
		if e2 <= dx {
			err += dx
			y0 += int16(sy)
		}
	}
}

func (r *Renderer) fillCircle(cx, cy int16, radius int16, c color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if int(dx)*int(dx)+int(dy)*int(dy) <= int(radius)*int(radius) {
				r.d.SetPixel(cx+dx, cy+dy, c)
			}
		}
	}
}

func (r *Renderer) fillTriangle(a, b, c [2]float64, col color.RGBA) {
	minX := math.Floor(math.Min(a[0], math.Min(b[0], c[0])))
	maxX := math.Ceil(math.Max(a[0], math.Max(b[0], c[0])))
	minY := math.Floor(math.Min(a[1], math.Min(b[1], c[1])))
	maxY := math.Ceil(math.Max(a[1], math.Max(b[1], c[1])))

	edge := func(p, q [2]float64, x, y float64) float64 {
		return (q[0]-p[0])*(y-p[1]) - (q[1]-p[1])*(x-p[0])
	}
	area := edge(a, b, c[0], c[1])
	if area == 0 {
		return
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edge(b, c, x, y) / area
			w1 := edge(c, a, x, y) / area
			w2 := edge(a, b, x, y) / area
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				r.d.SetPixel(int16(x), int16(y), col)
			}
		}
	}
}

// box fills a rectangle and outlines it when border has any alpha.
func (r *Renderer) box(x, y, w, h int16, fill, border color.RGBA) {
	_ = r.d.FillRectangle(x, y, w, h, fill)
	if border.A == 0 {
		return
	}
	_ = r.d.FillRectangle(x, y, w, 1, border)
	_ = r.d.FillRectangle(x, y+h-1, w, 1, border)
	_ = r.d.FillRectangle(x, y, 1, h, border)
	_ = r.d.FillRectangle(x+w-1, y, 1, h, border)
}

// text draws s with its top-left corner at (x, y), stopping after cols runes.
func (r *Renderer) text(x, y int16, s string, fg color.RGBA, cols int) {
	col := int16(0)
	for _, ch := range s {
		if int(col) >= cols {
			return
		}
		tinyfont.DrawChar(r.d, r.font, x+col*r.fontWidth, y+r.fontOffset, ch, fg)
		col++
	}
}

func (r *Renderer) textWidth(s string) int16 {
	return int16(len([]rune(s))) * r.fontWidth
}

func absInt16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
