package expr

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// Compiled is a normalized expression bound to its own x parameter.
type Compiled struct {
	src    string
	expr   *govaluate.EvaluableExpression
	params map[string]interface{}
}

// Compile checks the normalized text against the builtin function set and hands it to the
// evaluation engine. Every failure is a *ParseError.
func Compile(normalized string) (*Compiled, error) {
	n, err := parse(normalized)
	if err != nil {
		return nil, err
	}
	if err := checkSymbols(n); err != nil {
		return nil, err
	}

	ex, err := govaluate.NewEvaluableExpressionWithFunctions(normalized, engineFunctions())
	if err != nil {
		return nil, &ParseError{Message: err.Error(), Position: -1}
	}

	params := make(map[string]interface{}, len(constants)+1)
	for name, v := range constants {
		params[name] = v
	}
	params["x"] = 0.0

	return &Compiled{src: normalized, expr: ex, params: params}, nil
}

// Source returns the normalized text the expression was compiled from.
func (c *Compiled) Source() string { return c.src }

// Clone returns an independent copy with its own engine instance and x slot.
func (c *Compiled) Clone() (*Compiled, error) {
	return Compile(c.src)
}

// Eval returns the value at x. Engine errors and non-numeric results are NaN.
func (c *Compiled) Eval(x float64) (y float64) {
	defer func() {
		if r := recover(); r != nil {
			y = math.NaN()
		}
	}()
	v, err := c.eval(x)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Probe evaluates once at x=0 and reports what Eval would have swallowed.
func (c *Compiled) Probe() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrEval, r)
		}
	}()
	_, err = c.eval(0)
	return err
}

func (c *Compiled) eval(x float64) (float64, error) {
	c.params["x"] = x
	res, err := c.expr.Evaluate(c.params)
	if err != nil {
		return math.NaN(), fmt.Errorf("%w: %v", ErrEval, err)
	}
	f, ok := res.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("%w: result is %T, not a number", ErrEval, res)
	}
	return f, nil
}

func checkSymbols(n node) error {
	switch nn := n.(type) {
	case nodeIdent:
		if nn.name == "x" {
			return nil
		}
		if _, ok := constants[nn.name]; ok {
			return nil
		}
		return &ParseError{Message: "unknown variable", Position: nn.pos, Token: nn.name}
	case nodeUnary:
		return checkSymbols(nn.x)
	case nodeBinary:
		if err := checkSymbols(nn.left); err != nil {
			return err
		}
		return checkSymbols(nn.right)
	case nodeCall:
		b, ok := builtins[nn.name]
		if !ok {
			return &ParseError{Message: "unknown function", Position: nn.pos, Token: nn.name}
		}
		if len(nn.args) != b.arity {
			return &ParseError{
				Message:  fmt.Sprintf("%s expects %d argument(s), got %d", nn.name, b.arity, len(nn.args)),
				Position: nn.pos,
				Token:    nn.name,
			}
		}
		for _, a := range nn.args {
			if err := checkSymbols(a); err != nil {
				return err
			}
		}
	}
	return nil
}
