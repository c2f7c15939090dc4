package app

import (
	"image/color"
	"testing"

	"github.com/Q1rD/function-plotter/hal"
	"github.com/Q1rD/function-plotter/plot"
	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRed = color.RGBA{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF}

func newTestPlotter(t *testing.T) (*Plotter, *hal.Host) {
	t.Helper()
	h := hal.New(hal.HostConfig{Width: 200, Height: 100})
	p, err := New(h, Config{ShowInput: true, Logger: l.NewNopLoggerWrapper()})
	require.NoError(t, err)
	return p, h
}

func pixelAt(fb hal.Framebuffer, x, y int) [3]uint8 {
	rgba := hal.SnapshotRGBA(fb)
	i := (y*fb.Width() + x) * 4
	return [3]uint8{rgba[i], rgba[i+1], rgba[i+2]}
}

func quantized(c color.RGBA) [3]uint8 {
	r, g, b := hal.RGB888From565(hal.RGB565(c.R, c.G, c.B))
	return [3]uint8{r, g, b}
}

func typeText(h *hal.Host, s string) {
	for _, r := range s {
		h.PushKey(hal.KeyEvent{Press: true, Rune: r})
	}
}

func pressKey(h *hal.Host, code hal.KeyCode) {
	h.PushKey(hal.KeyEvent{Code: code, Press: true})
	h.PushKey(hal.KeyEvent{Code: code})
}

func TestPlotter_DrawsCurve(t *testing.T) {
	p, h := newTestPlotter(t)
	p.AddFunction("x", testRed)
	require.NoError(t, p.Step())

	// y = x passes through (5, 5), which is pixel (150, 25) on a 200x100 surface.
	assert.Equal(t, quantized(testRed), pixelAt(h.Display().Framebuffer(), 150, 25))
}

func TestPlotter_InvalidFunctionIsIgnored(t *testing.T) {
	p, _ := newTestPlotter(t)
	p.AddFunction("sin(", testRed)
	p.AddFunction("x+y", testRed)
	assert.Equal(t, 0, p.Store().Len())
	require.NoError(t, p.Step())
}

func TestPlotter_TypingAddsCurve(t *testing.T) {
	p, h := newTestPlotter(t)

	typeText(h, "2x")
	pressKey(h, hal.KeyEnter)
	require.NoError(t, p.Step())

	assert.Equal(t, []string{"2x"}, p.Store().Keys())
	assert.Equal(t, "", p.Input())

	c, err := p.Store().Get("2x")
	require.NoError(t, err)
	assert.Equal(t, FallbackPalette[0], c.Color)
	assert.Equal(t, FallbackPalette[1], p.NextColor())
}

func TestPlotter_RejectedInputStays(t *testing.T) {
	p, h := newTestPlotter(t)

	typeText(h, "q(x)")
	pressKey(h, hal.KeyEnter)
	require.NoError(t, p.Step())

	assert.Equal(t, 0, p.Store().Len())
	assert.Equal(t, "q(x)", p.Input())
	assert.Contains(t, p.status, "unknown function")

	pressKey(h, hal.KeyEscape)
	require.NoError(t, p.Step())
	assert.Equal(t, "", p.Input())
	assert.Equal(t, "", p.status)
}

func TestPlotter_EditSelected(t *testing.T) {
	p, h := newTestPlotter(t)
	p.AddFunction("x", testRed)

	pressKey(h, hal.KeyTab)
	require.NoError(t, p.Step())
	assert.Equal(t, "x", p.Selected())
	assert.Equal(t, "x", p.Input())

	pressKey(h, hal.KeyBackspace)
	typeText(h, "2x")
	pressKey(h, hal.KeyEnter)
	require.NoError(t, p.Step())

	assert.Equal(t, []string{"2x"}, p.Store().Keys())
	c, err := p.Store().Get("2x")
	require.NoError(t, err)
	assert.Equal(t, testRed, c.Color)
	assert.Equal(t, "", p.Selected())
}

func TestPlotter_RecolorAndDelete(t *testing.T) {
	p, h := newTestPlotter(t)
	p.AddFunction("x", testRed)
	p.AddFunction("cos(x)", testRed)

	pressKey(h, hal.KeyTab)
	pressKey(h, hal.KeyEnd)
	require.NoError(t, p.Step())

	assert.Equal(t, "cos(x)", p.Selected())
	c, err := p.Store().Get("cos(x)")
	require.NoError(t, err)
	assert.Equal(t, FallbackPalette[0], c.Color)
	assert.Equal(t, 2, p.sampler.Len())

	pressKey(h, hal.KeyDelete)
	require.NoError(t, p.Step())
	assert.Equal(t, []string{"x"}, p.Store().Keys())
	assert.Equal(t, "", p.Selected())
	assert.Equal(t, 1, p.sampler.Len())
}

func TestPlotter_KeyboardNavigation(t *testing.T) {
	p, h := newTestPlotter(t)

	pressKey(h, hal.KeyLeft)
	require.NoError(t, p.Step())
	v := p.View()
	assert.InDelta(t, -12.0, v.XMin, 1e-9)
	assert.InDelta(t, 8.0, v.XMax, 1e-9)

	pressKey(h, hal.KeyPageUp)
	require.NoError(t, p.Step())
	assert.InDelta(t, 20/1.2, p.View().Width(), 1e-9)

	pressKey(h, hal.KeyHome)
	require.NoError(t, p.Step())
	assert.Equal(t, plot.DefaultViewport(), p.View())
}

func TestPlotter_PointerNearestAndZoom(t *testing.T) {
	p, h := newTestPlotter(t)
	p.AddFunction("x", testRed)

	h.PushPointer(hal.PointerEvent{Kind: hal.PointerMove, X: 150, Y: 25})
	require.NoError(t, p.Step())

	cur := p.Cursor()
	require.True(t, cur.HasNearest)
	assert.InDelta(t, 5.0, cur.Nearest.X, 1e-9)
	assert.InDelta(t, 5.0, cur.Nearest.Y, 1e-9)

	h.PushKey(hal.KeyEvent{Code: hal.KeyAlt, Press: true})
	require.NoError(t, p.Step())
	assert.True(t, p.Cursor().InspectCoords)
	h.PushKey(hal.KeyEvent{Code: hal.KeyAlt})
	require.NoError(t, p.Step())
	assert.False(t, p.Cursor().InspectCoords)

	h.PushPointer(hal.PointerEvent{Kind: hal.PointerWheel, X: 100, Y: 50, WheelDegrees: 120})
	require.NoError(t, p.Step())
	assert.Less(t, p.View().Width(), 20.0)

	h.PushPointer(hal.PointerEvent{Kind: hal.PointerLeave})
	require.NoError(t, p.Step())
	assert.False(t, p.Cursor().Inside)
}

func TestPlotter_DragPans(t *testing.T) {
	p, h := newTestPlotter(t)

	h.PushPointer(hal.PointerEvent{Kind: hal.PointerPress, X: 100, Y: 50, Button: hal.ButtonLeft})
	h.PushPointer(hal.PointerEvent{Kind: hal.PointerMove, X: 120, Y: 50})
	h.PushPointer(hal.PointerEvent{Kind: hal.PointerRelease, X: 120, Y: 50, Button: hal.ButtonLeft})
	h.PushPointer(hal.PointerEvent{Kind: hal.PointerMove, X: 140, Y: 50})
	require.NoError(t, p.Step())

	assert.InDelta(t, -12.0, p.View().XMin, 1e-9)
	assert.InDelta(t, 20.0, p.View().Width(), 1e-9)
}

func TestPlotter_PanicBecomesError(t *testing.T) {
	p, h := newTestPlotter(t)
	p.Store().OnChange(func() { panic("boom") })

	typeText(h, "x")
	pressKey(h, hal.KeyEnter)

	err := p.Step()
	require.ErrorIs(t, err, ErrPanic)
	assert.Contains(t, err.Error(), "boom")
	assert.NoError(t, p.Step())
}

func TestPlotter_HiddenInputLineIgnoresEditing(t *testing.T) {
	h := hal.New(hal.HostConfig{Width: 200, Height: 100})
	p, err := New(h, Config{})
	require.NoError(t, err)
	p.input = []rune("x")

	typeText(h, "2")
	pressKey(h, hal.KeyBackspace)
	require.NoError(t, p.Step())
	assert.Equal(t, "x", p.Input())

	pressKey(h, hal.KeyEscape)
	require.NoError(t, p.Step())
	assert.Equal(t, "x", p.Input())
}
