//go:build !cgo

package hal

// hostPointer without cgo has no window to poll; only PushPointer feeds it.
type hostPointer struct {
	ch chan PointerEvent
}

func newHostPointer(_, _ int) *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 256)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) poll() {}
