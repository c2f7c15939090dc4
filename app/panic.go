package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/sgostarter/i/l"
)

// ErrPanic wraps a panic recovered from Step.
var ErrPanic = errors.New("plotter panic")

// recoverPanic turns a panic in Step into an error, logs it with the stack and paints the crash
// screen. Later steps do nothing.
func (p *Plotter) recoverPanic(errp *error) {
	v := recover()
	if v == nil {
		return
	}

	p.crashed = true
	stack := debug.Stack()
	*errp = fmt.Errorf("%w: %v", ErrPanic, v)

	p.logger.WithFields(l.StringField("panic", fmt.Sprint(v)), l.StringField("stack", string(stack))).
		Error("step panicked")

	lines := []string{
		"Plotter Panic:",
		fmt.Sprint(v),
		"",
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}

	if err := p.renderer.RenderMessage(lines); err != nil {
		p.logger.WithFields(l.ErrorField(err)).Error("crash screen failed")
	}
}
