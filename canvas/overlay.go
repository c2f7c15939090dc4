package canvas

import (
	"fmt"
	"image/color"

	"github.com/Q1rD/function-plotter/plot"
)

const maxLegendLabel = 28

func (r *Renderer) drawLegend(strokes []Stroke) {
	if len(strokes) == 0 {
		return
	}
	s := r.Surface()

	maxLabel := 0
	for _, st := range strokes {
		if n := len([]rune(st.Label)); n > maxLabel {
			maxLabel = n
		}
	}
	if maxLabel > maxLegendLabel {
		maxLabel = maxLegendLabel
	}

	swatchW := 3 * r.fontWidth
	rows := len(strokes)
	if maxRows := int((int16(s.Height)/2 - 4) / r.fontHeight); rows > maxRows {
		rows = maxRows
	}
	if rows < 1 {
		return
	}

	boxW := swatchW + int16(maxLabel+3)*r.fontWidth
	boxH := int16(rows)*r.fontHeight + 4
	x, y := int16(4), int16(4)
	r.box(x, y, boxW, boxH, colorPanelBG, colorPanelEdge)

	for i, st := range strokes[:rows] {
		cy := y + 2 + int16(i)*r.fontHeight
		_ = r.d.FillRectangle(x+4, cy+r.fontHeight/2-1, swatchW, 3, st.Color)

		fg := colorBlack
		label := st.Label
		if st.Selected {
			fg = st.Color
			label = "> " + label
		}
		r.text(x+8+swatchW, cy, label, fg, maxLabel+2)
	}
}

// drawCoordinates shows the graph position under the pointer, next to it.
func (r *Renderer) drawCoordinates(v plot.Viewport, s plot.Surface, mouse plot.Point) {
	gx, gy := v.ToGraph(mouse.X, mouse.Y, s)
	lines := coordLines(gx, gy)

	x, y, w, h := r.placeBox(s, mouse, lines, 10, 5)
	r.box(x, y, w, h, colorPanelBG, colorBlack)
	r.textLines(x+5, y+5, lines, colorBlack)
}

// drawNearest marks the curve point nearest the pointer, with dashed guides to both axes. Points
// off the surface get no marker.
func (r *Renderer) drawNearest(v plot.Viewport, s plot.Surface, p plot.Point) {
	sp := v.ToScreen(p.X, p.Y, s)
	if sp.X < 0 || sp.X > float64(s.Width) || sp.Y < 0 || sp.Y > float64(s.Height) {
		return
	}
	origin := v.ToScreen(0, 0, s)
	px, py := roundInt16(sp.X), roundInt16(sp.Y)
	ox, oy := roundInt16(clampFloat(origin.X, -1, float64(s.Width))), roundInt16(clampFloat(origin.Y, -1, float64(s.Height)))

	r.line(px, oy, px, py, colorGuide, 4)
	r.line(ox, py, px, py, colorGuide, 4)

	r.fillCircle(px, py, 7, colorWhite)
	r.fillCircle(px, py, 5, colorMarker)

	lines := coordLines(p.X, p.Y)
	x, y, w, h := r.placeBox(s, sp, lines, 15, 8)
	for i := int16(0); i < 5; i++ {
		_ = r.d.FillRectangle(x+i, y+i, w, h, colorShadow)
	}
	r.box(x, y, w, h, colorWhite, colorPanelEdge)
	r.textLines(x+8, y+8, lines, colorText)
}

func (r *Renderer) drawInputLine(s plot.Surface, input, status string) {
	h := r.fontHeight + 6
	y := int16(s.Height) - h
	w := int16(s.Width)
	r.box(0, y, w, h, colorPanelBG, colorPanelEdge)

	cols := int((w - 8) / r.fontWidth)
	line := "f(x) = " + input + "_"
	if rs := []rune(line); len(rs) > cols && cols > 0 {
		line = string(rs[len(rs)-cols:])
	}
	r.text(4, y+3, line, colorBlack, cols)

	if status == "" {
		return
	}
	used := len([]rune(line)) + 2
	if cols-used < 4 {
		return
	}
	sw := r.textWidth(status)
	sx := w - 4 - sw
	if minX := 4 + int16(used)*r.fontWidth; sx < minX {
		sx = minX
	}
	r.text(sx, y+3, status, colorDim, cols-used)
}

// placeBox puts a text box below-right of at, flipping to the other side of at when it would
// leave the surface.
func (r *Renderer) placeBox(s plot.Surface, at plot.Point, lines []string, offset, pad int16) (x, y, w, h int16) {
	maxCols := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > maxCols {
			maxCols = n
		}
	}
	w = int16(maxCols)*r.fontWidth + 2*pad
	h = int16(len(lines))*r.fontHeight + 2*pad

	ax, ay := roundInt16(at.X), roundInt16(at.Y)
	x, y = ax+offset, ay+offset
	if x+w > int16(s.Width) {
		x = ax - offset - w
	}
	if y+h > int16(s.Height) {
		y = ay - offset - h
	}
	return x, y, w, h
}

func (r *Renderer) textLines(x, y int16, lines []string, fg color.RGBA) {
	for i, l := range lines {
		r.text(x, y+int16(i)*r.fontHeight, l, fg, len([]rune(l)))
	}
}

func coordLines(x, y float64) []string {
	return []string{fmt.Sprintf("x: %.2f", x), fmt.Sprintf("y: %.2f", y)}
}
