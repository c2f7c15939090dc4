package plot

import "math"

// FindNearest evaluates every function at the graph x under pixel and returns the point whose y
// is closest to the pointer's graph y. ok is false when no function is finite there.
func FindNearest(funcs []Func, v Viewport, s Surface, pixel Point) (Point, bool) {
	mx, my := v.ToGraph(pixel.X, pixel.Y, s)

	best := Point{}
	bestDist := math.Inf(1)
	for _, f := range funcs {
		y := f.Eval(mx)
		if !isFinite(y) {
			continue
		}
		if d := math.Abs(y - my); d < bestDist {
			bestDist = d
			best = Point{X: mx, Y: y}
		}
	}

	return best, !math.IsInf(bestDist, 1)
}
