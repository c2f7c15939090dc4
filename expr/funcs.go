package expr

import (
	"fmt"
	"math"
	"sort"

	"github.com/Knetic/govaluate"
)

// Pow is math.Pow restricted to the reals: a negative base with a fractional exponent is NaN.
func Pow(base, exponent float64) float64 {
	if base < 0 && math.Floor(exponent) != exponent {
		return math.NaN()
	}
	return math.Pow(base, exponent)
}

type builtin struct {
	arity int
	fn    func(args []float64) float64
}

func unary(fn func(float64) float64) builtin {
	return builtin{arity: 1, fn: func(args []float64) float64 { return fn(args[0]) }}
}

var builtins = map[string]builtin{
	"pow":   {arity: 2, fn: func(args []float64) float64 { return Pow(args[0], args[1]) }},
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"sqrt":  unary(math.Sqrt),
	"abs":   unary(math.Abs),
	"exp":   unary(math.Exp),
	"log":   unary(math.Log),
	"log10": unary(math.Log10),
}

// constants are bound next to x in every parameter set.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Builtins returns the names of the functions expressions may call.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func engineFunctions() map[string]govaluate.ExpressionFunction {
	out := make(map[string]govaluate.ExpressionFunction, len(builtins))
	for name, b := range builtins {
		name, b := name, b
		out[name] = func(args ...interface{}) (interface{}, error) {
			if len(args) != b.arity {
				return nil, fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrEval, name, b.arity, len(args))
			}
			vals := make([]float64, len(args))
			for i, a := range args {
				f, ok := a.(float64)
				if !ok {
					return nil, fmt.Errorf("%w: %s: argument %d is %T, not a number", ErrEval, name, i+1, a)
				}
				vals[i] = f
			}
			return b.fn(vals), nil
		}
	}
	return out
}
