package hal

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyAlt
)

// KeyEvent is a keyboard event. Text input arrives as Press events with Code KeyUnknown and a
// non-zero Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerKind says what a PointerEvent reports.
type PointerKind uint8

const (
	PointerMove PointerKind = iota + 1
	PointerPress
	PointerRelease
	PointerWheel
	PointerLeave
)

// PointerButton identifies a mouse button.
type PointerButton uint8

const (
	ButtonNone PointerButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// PointerEvent is a mouse event in framebuffer pixels. WheelDegrees is positive when the wheel
// turns away from the user.
type PointerEvent struct {
	Kind         PointerKind
	X, Y         int
	Button       PointerButton
	WheelDegrees float64
}

// Pointer provides mouse events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// HAL is the only contact point between the plotter and the outside world.
type HAL interface {
	Display() Display
	Input() Input
}
