// Package curve holds the set of plotted functions keyed by the text the user typed.
package curve

import (
	"image/color"

	"github.com/Q1rD/function-plotter/expr"
)

// Curve is one installed function. The store owns the Compiled expression; anything that
// evaluates off the store's goroutine works on a Clone.
type Curve struct {
	ID       uint64
	Key      string
	Color    color.RGBA
	Compiled *expr.Compiled
}

// Eval evaluates the curve at x. NaN and ±Inf pass through.
func (c *Curve) Eval(x float64) float64 {
	return c.Compiled.Eval(x)
}

// Clone returns a copy with its own evaluator, keeping ID, key and color.
func (c *Curve) Clone() (*Curve, error) {
	ce, err := c.Compiled.Clone()
	if err != nil {
		return nil, err
	}

	return &Curve{ID: c.ID, Key: c.Key, Color: c.Color, Compiled: ce}, nil
}
