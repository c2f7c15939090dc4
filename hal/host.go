package hal

// HostConfig sizes the desktop and headless hosts.
type HostConfig struct {
	Width  int
	Height int
}

// Host is the desktop HAL: an in-memory framebuffer plus keyboard and pointer queues. The window
// runner fills the queues from ebiten; tests and the headless runner use PushKey and PushPointer.
type Host struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
	ptr *hostPointer
}

// New returns a host HAL implementation.
func New(cfg HostConfig) *Host {
	fb := newHostFramebuffer(cfg.Width, cfg.Height)
	return &Host{
		fb:  fb,
		kbd: newHostKeyboard(),
		ptr: newHostPointer(fb.width, fb.height),
	}
}

func (h *Host) Display() Display { return hostDisplay{fb: h.fb} }
func (h *Host) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }

// PushKey queues ev without blocking. It reports false when the queue is full.
func (h *Host) PushKey(ev KeyEvent) bool {
	select {
	case h.kbd.ch <- ev:
		return true
	default:
		return false
	}
}

// PushPointer queues ev without blocking. It reports false when the queue is full.
func (h *Host) PushPointer(ev PointerEvent) bool {
	select {
	case h.ptr.ch <- ev:
		return true
	default:
		return false
	}
}

func (h *Host) poll() {
	h.kbd.poll()
	h.ptr.poll()
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }
