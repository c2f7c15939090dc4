package plot

import "math"

// originEpsilon hides samples sitting on the origin itself.
const originEpsilon = 1e-10

// Visible reports whether a sample is drawn: finite, inside v, and not the origin.
func Visible(smp Sample, v Viewport) bool {
	if math.Abs(smp.X) < originEpsilon && math.Abs(smp.Y) < originEpsilon {
		return false
	}
	return isFinite(smp.Y) && smp.Y >= v.YMin && smp.Y <= v.YMax && smp.X >= v.XMin && smp.X <= v.XMax
}

// BuildPaths splits x-ordered samples into polylines in screen space.
//
// A run of visible samples forms one path. An invisible sample ends the current path. Two
// neighbours further apart on screen than the surface height are never joined, which is what
// keeps asymptotes from being bridged. Paths shorter than two points are dropped.
//
// A path does not start exactly at its first visible sample: it is led in from the single
// sample just before it when that sample is finite, off-range and within the jump limit, however
// long the invisible run before it was. The same holds for the single sample after its last
// visible one. This lets a stroke reach the edge of the view where it leaves or enters; the
// renderer clips the extra segment. Samples further back in an invisible run are never used.
func BuildPaths(samples []Sample, v Viewport, s Surface) [][]Point {
	var (
		paths    [][]Point
		path     []Point
		prev     Point
		prevVis  bool
		prevEdge bool
	)
	maxJump := float64(s.Height)

	flush := func() {
		if len(path) >= 2 {
			paths = append(paths, path)
		}
		path = nil
	}

	for i, smp := range samples {
		vis := Visible(smp, v)
		edge := !vis && edgeCandidate(smp)
		var pt Point
		if vis || edge {
			pt = v.ToScreen(smp.X, smp.Y, s)
		}

		switch {
		case vis && len(path) == 0:
			if i > 0 && prevEdge && dist(prev, pt) <= maxJump {
				path = append(path, prev)
			}
			path = append(path, pt)
		case vis:
			if dist(prev, pt) > maxJump {
				flush()
			}
			path = append(path, pt)
		default:
			if len(path) > 0 && prevVis && edge && dist(prev, pt) <= maxJump {
				path = append(path, pt)
			}
			flush()
		}

		prev, prevVis, prevEdge = pt, vis, edge
	}
	flush()

	return paths
}

// edgeCandidate is an invisible sample a path may still reach toward: finite and not the origin.
func edgeCandidate(smp Sample) bool {
	if !isFinite(smp.Y) {
		return false
	}
	return math.Abs(smp.X) >= originEpsilon || math.Abs(smp.Y) >= originEpsilon
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
