package app

import (
	"image/color"

	"github.com/Q1rD/function-plotter/canvas"
	"github.com/Q1rD/function-plotter/curve"
	"github.com/Q1rD/function-plotter/hal"
	"github.com/Q1rD/function-plotter/plot"
	"github.com/sgostarter/i/l"
)

// Plotter is one interactive plotting surface. All methods must be called from the goroutine
// that calls Step.
type Plotter struct {
	logger l.Wrapper

	store    *curve.Store
	view     plot.Viewport
	home     plot.Viewport
	sampler  *plot.Sampler
	interact *plot.Interaction
	renderer *canvas.Renderer

	kbd hal.Keyboard
	ptr hal.Pointer

	palette   []color.RGBA
	nextColor int

	showInput bool
	input     []rune
	selected  string
	editing   string
	status    string

	dirty   bool
	crashed bool
}

// New builds a Plotter that draws into h's framebuffer and reads h's keyboard and pointer.
func New(h hal.HAL, cfg Config) (*Plotter, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	fb := h.Display().Framebuffer()
	renderer, err := canvas.New(fb)
	if err != nil {
		return nil, err
	}

	home := cfg.Home
	if !home.Valid() {
		home = plot.DefaultViewport()
	}

	palette := cfg.Palette
	if len(palette) == 0 {
		palette = FallbackPalette
	}

	p := &Plotter{
		logger:    logger.WithFields(l.StringField(l.ClsKey, "plotter")),
		store:     curve.NewStore(logger),
		view:      home,
		home:      home,
		sampler:   plot.NewSampler(cfg.SamplesPerPixel, cfg.CacheTTL),
		renderer:  renderer,
		palette:   palette,
		showInput: cfg.ShowInput,
		dirty:     true,
	}

	if in := h.Input(); in != nil {
		p.kbd = in.Keyboard()
		p.ptr = in.Pointer()
	}

	p.interact = &plot.Interaction{
		View:    &p.view,
		Surface: renderer.Surface(),
		Funcs:   p.funcs,
	}

	p.store.OnChange(func() {
		p.interact.Refresh()
		p.dirty = true
	})

	return p, nil
}

// AddFunction installs text in color c. Invalid text is logged and otherwise ignored.
func (p *Plotter) AddFunction(text string, c color.RGBA) {
	p.forget(text)
	_ = p.store.Add(text, c)
}

// UpdateFunction replaces oldText with newText. If newText is invalid the old curve is gone.
func (p *Plotter) UpdateFunction(oldText, newText string, c color.RGBA) {
	p.forget(oldText)
	_ = p.store.Update(oldText, newText, c)
	if p.selected == oldText {
		p.selected = ""
		if _, err := p.store.Get(newText); err == nil {
			p.selected = newText
		}
	}
}

func (p *Plotter) RemoveFunction(text string) {
	p.forget(text)
	p.store.Remove(text)
	if p.selected == text {
		p.selected = ""
	}
	if p.editing == text {
		p.editing = ""
	}
}

// forget drops the cached samples of the curve installed under text.
func (p *Plotter) forget(text string) {
	if c, err := p.store.Get(text); err == nil {
		p.sampler.Forget(c.ID)
	}
}

// RequestRedraw marks the surface for repaint on the next Step.
func (p *Plotter) RequestRedraw() {
	p.dirty = true
}

// NextColor returns the next palette color, cycling.
func (p *Plotter) NextColor() color.RGBA {
	c := p.palette[p.nextColor%len(p.palette)]
	p.nextColor = (p.nextColor + 1) % len(p.palette)
	return c
}

// ResetView returns to the home viewport.
func (p *Plotter) ResetView() {
	p.view.Reset(p.home)
	p.interact.Refresh()
	p.dirty = true
}

func (p *Plotter) View() plot.Viewport      { return p.view }
func (p *Plotter) Cursor() plot.CursorState { return p.interact.Cursor }
func (p *Plotter) Store() *curve.Store      { return p.store }
func (p *Plotter) Selected() string         { return p.selected }
func (p *Plotter) Input() string            { return string(p.input) }

// Step drains pending input and repaints when anything changed. A panic inside a step is logged,
// shown on screen and returned as an error.
func (p *Plotter) Step() (err error) {
	if p.crashed {
		return nil
	}
	defer p.recoverPanic(&err)

	p.drainInput()

	if !p.dirty {
		return nil
	}
	p.dirty = false

	return p.render()
}

func (p *Plotter) drainInput() {
	if p.kbd != nil {
	keys:
		for {
			select {
			case ev := <-p.kbd.Events():
				p.HandleKey(ev)
			default:
				break keys
			}
		}
	}

	if p.ptr != nil {
	pointer:
		for {
			select {
			case ev := <-p.ptr.Events():
				p.HandlePointer(ev)
			default:
				break pointer
			}
		}
	}
}

// HandlePointer applies one mouse event to the view and cursor.
func (p *Plotter) HandlePointer(ev hal.PointerEvent) {
	pt := plot.Point{X: float64(ev.X), Y: float64(ev.Y)}

	changed := false
	switch ev.Kind {
	case hal.PointerMove:
		changed = p.interact.Move(pt)
	case hal.PointerPress:
		if ev.Button == hal.ButtonLeft {
			changed = p.interact.Press(pt)
		}
	case hal.PointerRelease:
		if ev.Button == hal.ButtonLeft {
			changed = p.interact.Release()
		}
	case hal.PointerWheel:
		changed = p.interact.Wheel(ev.WheelDegrees, pt)
	case hal.PointerLeave:
		changed = p.interact.Leave()
	}

	if changed {
		p.dirty = true
	}
}

func (p *Plotter) render() error {
	surface := p.renderer.Surface()
	curves := p.store.Curves()

	scene := &canvas.Scene{
		View:      p.view,
		Strokes:   make([]canvas.Stroke, 0, len(curves)),
		Cursor:    p.interact.Cursor,
		ShowInput: p.showInput,
		Input:     string(p.input),
		Status:    p.status,
	}
	for _, c := range curves {
		scene.Strokes = append(scene.Strokes, canvas.Stroke{
			Label:    c.Key,
			Color:    c.Color,
			Paths:    p.sampler.Paths(c.ID, c, p.view, surface),
			Selected: c.Key == p.selected,
		})
	}

	if err := p.renderer.Render(scene); err != nil {
		p.logger.WithFields(l.ErrorField(err)).Error("render failed")
		return err
	}

	return nil
}

func (p *Plotter) funcs() []plot.Func {
	curves := p.store.Curves()
	out := make([]plot.Func, 0, len(curves))
	for _, c := range curves {
		out = append(out, c)
	}
	return out
}
