package canvas

import (
	"strings"
	"unicode/utf8"
)

// RenderMessage clears the surface to white and prints lines, wrapping at the right edge, until
// the surface is full. It is used for the crash screen.
func (r *Renderer) RenderMessage(lines []string) error {
	if r.fb == nil {
		return nil
	}
	r.fb.ClearRGB(255, 255, 255)

	cols := int16(r.fb.Width()) / r.fontWidth
	if cols <= 0 {
		cols = 1
	}
	maxH := int16(r.fb.Height())

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+r.fontHeight > maxH {
				return r.d.Display()
			}
			chunk, rest := takeRunes(line, cols)
			r.text(0, y, chunk, colorBlack, int(cols))
			y += r.fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}

	return r.d.Display()
}

// takeRunes splits s after its first n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
