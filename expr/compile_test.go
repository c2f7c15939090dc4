package expr

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, raw string) *Compiled {
	t.Helper()
	c, err := Compile(Normalize(raw))
	require.NoError(t, err, raw)
	require.NoError(t, c.Probe(), raw)
	return c
}

func TestCompile_Evaluates(t *testing.T) {
	tests := []struct {
		raw  string
		x    float64
		want float64
	}{
		{raw: "2^x", x: 3, want: 8},
		{raw: "x^2", x: -4, want: 16},
		{raw: "3", x: 100, want: 3},
		{raw: "sin(x)", x: math.Pi / 2, want: 1},
		{raw: "2pi", x: 0, want: 2 * math.Pi},
		{raw: "e^x", x: 1, want: math.E},
		{raw: "abs(x)-1", x: -3, want: 2},
		{raw: "log10(x)", x: 1000, want: 3},
		{raw: "x/2+1", x: 4, want: 3},
		{raw: "pow(-2, 3)", x: 0, want: -8},
	}

	for _, tt := range tests {
		c := mustCompile(t, tt.raw)
		assert.InDelta(t, tt.want, c.Eval(tt.x), 1e-9, "%s at x=%v", tt.raw, tt.x)
	}
}

func TestCompile_NonFiniteResults(t *testing.T) {
	assert.True(t, math.IsNaN(mustCompile(t, "sqrt(x)").Eval(-1)))
	assert.True(t, math.IsInf(mustCompile(t, "log(x)").Eval(0), -1))
	assert.True(t, math.IsInf(mustCompile(t, "1/x").Eval(0), 1))
	assert.True(t, math.IsNaN(mustCompile(t, "x^(1/3)").Eval(-8)))
	assert.InDelta(t, 2.0, mustCompile(t, "x^(1/3)").Eval(8), 1e-12)
}

func TestPow_RealDomain(t *testing.T) {
	assert.True(t, math.IsNaN(Pow(-8, 1.0/3)))
	assert.Equal(t, -8.0, Pow(-2, 3))
	assert.Equal(t, 0.25, Pow(2, -2))
	assert.Equal(t, 1.0, Pow(0, 0))
}

func TestCompile_UnknownFunction(t *testing.T) {
	_, err := Compile(Normalize("q(x)"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "q", pe.Token)
	assert.Equal(t, 1, pe.Position)
	assert.Contains(t, pe.Error(), "unknown function")
}

func TestCompile_UnknownVariable(t *testing.T) {
	_, err := Compile(Normalize("x+y"))
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "y", pe.Token)
	assert.Equal(t, "unknown variable", pe.Message)
}

func TestCompile_Arity(t *testing.T) {
	for _, raw := range []string{"sin(x, 2)", "pow(x)", "sqrt()"} {
		_, err := Compile(Normalize(raw))
		assert.ErrorIs(t, err, ErrParse, raw)
	}
}

func TestCompile_SyntaxErrors(t *testing.T) {
	for _, raw := range []string{"2+", "(x", "x $ 2", "", "x)"} {
		c, err := Compile(Normalize(raw))
		assert.Nil(t, c, raw)
		assert.ErrorIs(t, err, ErrParse, raw)
	}
}

func TestCompiled_Clone(t *testing.T) {
	c := mustCompile(t, "x*x")
	d, err := c.Clone()
	require.NoError(t, err)
	assert.Equal(t, c.Source(), d.Source())

	assert.Equal(t, 9.0, c.Eval(3))
	assert.Equal(t, 16.0, d.Eval(4))
	assert.Equal(t, 9.0, c.Eval(3))
	assert.Equal(t, 3.0, c.params["x"])
	assert.Equal(t, 4.0, d.params["x"])
}

func TestBuiltins(t *testing.T) {
	assert.Equal(t, []string{"abs", "cos", "exp", "log", "log10", "pow", "sin", "sqrt", "tan"}, Builtins())
}
