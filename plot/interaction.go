package plot

// CursorState is what the overlay layer needs to know about the pointer. Mouse is in pixels,
// Nearest in graph units.
type CursorState struct {
	Mouse         Point
	Inside        bool
	InspectCoords bool
	Nearest       Point
	HasNearest    bool
}

// PanState tracks an in-progress drag.
type PanState struct {
	Active bool
	Last   Point
}

// Interaction applies pointer and modifier input to a viewport. Every method reports whether
// the view or the overlay changed and needs a redraw.
type Interaction struct {
	View    *Viewport
	Surface Surface

	Cursor CursorState
	Pan    PanState

	// Funcs supplies the curves searched for the nearest point.
	Funcs func() []Func
}

func (it *Interaction) Press(p Point) bool {
	it.Pan = PanState{Active: true, Last: p}
	return false
}

func (it *Interaction) Release() bool {
	it.Pan.Active = false
	return false
}

func (it *Interaction) Move(p Point) bool {
	if it.Pan.Active {
		it.View.Pan(Point{X: p.X - it.Pan.Last.X, Y: p.Y - it.Pan.Last.Y}, it.Surface)
		it.Pan.Last = p
	}

	it.Cursor.Mouse = p
	it.Cursor.Inside = true
	it.refreshNearest()

	return true
}

// Wheel zooms about p. Positive degrees zoom in.
func (it *Interaction) Wheel(degrees float64, p Point) bool {
	if degrees == 0 {
		return false
	}
	it.View.Zoom(WheelFactor(degrees), p, it.Surface)
	it.refreshNearest()
	return true
}

func (it *Interaction) Leave() bool {
	it.Cursor.Inside = false
	return true
}

// SetInspect switches between the coordinate readout (Alt held) and the nearest-point marker.
func (it *Interaction) SetInspect(on bool) bool {
	if it.Cursor.InspectCoords == on {
		return false
	}
	it.Cursor.InspectCoords = on
	if !on {
		it.refreshNearest()
	}
	return true
}

// Refresh recomputes the nearest point after the curve set changed.
func (it *Interaction) Refresh() {
	it.refreshNearest()
}

func (it *Interaction) refreshNearest() {
	if it.Cursor.InspectCoords || !it.Cursor.Inside || it.Funcs == nil {
		return
	}
	funcs := it.Funcs()
	if len(funcs) == 0 {
		it.Cursor.HasNearest = false
		return
	}
	it.Cursor.Nearest, it.Cursor.HasNearest = FindNearest(funcs, *it.View, it.Surface, it.Cursor.Mouse)
}
