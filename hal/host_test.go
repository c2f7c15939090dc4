package hal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGB565_RoundTrip(t *testing.T) {
	for _, c := range [][3]uint8{{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255}} {
		r, g, b := RGB888From565(RGB565(c[0], c[1], c[2]))
		assert.Equal(t, c, [3]uint8{r, g, b})
	}
	assert.Equal(t, uint16(0xF800), RGB565(0xFF, 0, 0))
}

func TestFramebuffer_ClearAndSnapshot(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	assert.Equal(t, 6, fb.StrideBytes())
	assert.Len(t, fb.Buffer(), 12)

	fb.ClearRGB(255, 0, 0)
	px := SnapshotRGBA(fb)
	require.Len(t, px, 3*2*4)
	for i := 0; i < len(px); i += 4 {
		assert.Equal(t, []byte{255, 0, 0, 255}, px[i:i+4])
	}
}

func TestHost_QueuesInput(t *testing.T) {
	h := New(HostConfig{Width: 10, Height: 10})
	assert.Equal(t, 10, h.Display().Framebuffer().Width())

	require.True(t, h.PushKey(KeyEvent{Code: KeyAlt, Press: true}))
	require.True(t, h.PushPointer(PointerEvent{Kind: PointerWheel, X: 1, Y: 2, WheelDegrees: 15}))

	ev := <-h.Input().Keyboard().Events()
	assert.Equal(t, KeyAlt, ev.Code)
	assert.True(t, ev.Press)

	pe := <-h.Input().Pointer().Events()
	assert.Equal(t, PointerWheel, pe.Kind)
	assert.Equal(t, 15.0, pe.WheelDegrees)

	for h.PushKey(KeyEvent{Rune: 'x', Press: true}) {
	}
	assert.False(t, h.PushKey(KeyEvent{Rune: 'y', Press: true}))
}

func TestRunHeadless_StopsAfterTicks(t *testing.T) {
	steps := 0
	var host *Host
	err := RunHeadless(context.Background(), HeadlessConfig{HostConfig: HostConfig{Width: 4, Height: 4}, Hz: 1000, Ticks: 5},
		func(h HAL) (func() error, error) {
			return func() error { steps++; return nil }, nil
		},
		func(h *Host) { host = h })
	require.NoError(t, err)
	assert.Equal(t, 5, steps)
	require.NotNil(t, host)
	assert.Equal(t, 4, host.Display().Framebuffer().Height())
}

func TestRunHeadless_Cancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := RunHeadless(ctx, HeadlessConfig{Hz: 100}, func(HAL) (func() error, error) { return nil, nil }, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
