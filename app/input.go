package app

import (
	"image/color"
	"unicode"

	"github.com/Q1rD/function-plotter/hal"
	"github.com/Q1rD/function-plotter/plot"
)

const (
	keyPanFraction = 10
	keyZoomFactor  = 1.2
	maxInputRunes  = 256
)

// HandleKey applies one keyboard event.
//
// Alt is level-triggered and switches the cursor overlay to the coordinate readout while held.
// Everything else acts on press: text runes edit the input line, Enter commits it, Tab selects
// the next curve and loads it for editing, Delete removes the selected curve, End recolors it,
// Home resets the view, arrows pan and PageUp/PageDown zoom about the center.
func (p *Plotter) HandleKey(ev hal.KeyEvent) {
	if ev.Code == hal.KeyAlt {
		if p.interact.SetInspect(ev.Press) {
			p.dirty = true
		}
		return
	}
	if !ev.Press {
		return
	}

	if ev.Code == hal.KeyUnknown {
		if p.showInput && ev.Rune != 0 && unicode.IsPrint(ev.Rune) && len(p.input) < maxInputRunes {
			p.input = append(p.input, ev.Rune)
			p.dirty = true
		}
		return
	}

	s := p.renderer.Surface()
	switch ev.Code {
	case hal.KeyEnter:
		p.commitInput()
	case hal.KeyBackspace:
		if !p.showInput || len(p.input) == 0 {
			return
		}
		p.input = p.input[:len(p.input)-1]
	case hal.KeyEscape:
		if p.showInput {
			p.input = p.input[:0]
		}
		p.editing = ""
		p.selected = ""
		p.status = ""
	case hal.KeyTab:
		p.selectNext()
	case hal.KeyDelete:
		if p.selected != "" {
			p.RemoveFunction(p.selected)
			p.input = p.input[:0]
		}
	case hal.KeyEnd:
		p.recolorSelected()
	case hal.KeyHome:
		p.ResetView()
	case hal.KeyLeft:
		p.panBy(plot.Point{X: float64(s.Width) / keyPanFraction})
	case hal.KeyRight:
		p.panBy(plot.Point{X: -float64(s.Width) / keyPanFraction})
	case hal.KeyUp:
		p.panBy(plot.Point{Y: float64(s.Height) / keyPanFraction})
	case hal.KeyDown:
		p.panBy(plot.Point{Y: -float64(s.Height) / keyPanFraction})
	case hal.KeyPageUp:
		p.zoomCenter(keyZoomFactor)
	case hal.KeyPageDown:
		p.zoomCenter(1 / keyZoomFactor)
	default:
		return
	}

	p.dirty = true
}

// commitInput adds the input line as a new curve, or replaces the curve being edited. The text
// stays in the input line when it is rejected.
func (p *Plotter) commitInput() {
	text := string(p.input)
	if text == "" {
		return
	}

	var err error
	if p.editing != "" {
		var c color.RGBA
		if old, getErr := p.store.Get(p.editing); getErr == nil {
			c = old.Color
		} else {
			c = p.NextColor()
		}
		p.forget(p.editing)
		err = p.store.Update(p.editing, text, c)
		p.selected = ""
		p.editing = ""
	} else {
		p.forget(text)
		err = p.store.Add(text, p.NextColor())
	}

	if err != nil {
		p.status = err.Error()
		return
	}

	p.status = ""
	p.input = p.input[:0]
}

func (p *Plotter) selectNext() {
	keys := p.store.Keys()
	if len(keys) == 0 {
		p.selected = ""
		return
	}

	next := 0
	for i, k := range keys {
		if k == p.selected {
			next = (i + 1) % len(keys)
			break
		}
	}

	p.selected = keys[next]
	if p.showInput {
		p.editing = p.selected
		p.input = append(p.input[:0], []rune(p.selected)...)
	}
}

func (p *Plotter) recolorSelected() {
	c, err := p.store.Get(p.selected)
	if err != nil {
		return
	}
	p.UpdateFunction(c.Key, c.Key, p.NextColor())
	if p.editing == c.Key {
		p.editing = p.selected
	}
}

func (p *Plotter) panBy(delta plot.Point) {
	p.view.Pan(delta, p.renderer.Surface())
	p.interact.Refresh()
}

func (p *Plotter) zoomCenter(factor float64) {
	s := p.renderer.Surface()
	p.view.Zoom(factor, plot.Point{X: float64(s.Width) / 2, Y: float64(s.Height) / 2}, s)
	p.interact.Refresh()
}
