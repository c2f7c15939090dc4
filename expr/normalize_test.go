package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Rewrites(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2x", want: "(2*x)+0*x"},
		{in: "x2", want: "(x*2)+0*x"},
		{in: "2.5x", want: "(2.5*x)+0*x"},
		{in: "x.5", want: "(x*0.5)+0*x"},
		{in: "2X", want: "(2*x)+0*x"},
		{in: "(x+1)(x-1)", want: "((x+1)*(x-1))+0*x"},
		{in: "(x+1)x", want: "((x+1)*x)+0*x"},
		{in: "x(x+1)", want: "(x*(x+1))+0*x"},
		{in: "X^2", want: "(pow(x,2))+0*x"},
		{in: "2^x^2", want: "(pow(2,pow(x,2)))+0*x"},
		{in: "(x+1)^2", want: "(pow(x+1,2))+0*x"},
		{in: "2^-x", want: "(pow(2,(-x)))+0*x"},
		{in: "-2^2", want: "((-(pow(2,2))))+0*x"},
		{in: "-(x+1)", want: "((-(x+1)))+0*x"},
		{in: "x*-1", want: "(x*(-1))+0*x"},
		{in: "1/(x-1)", want: "(1/(x-1))+0*x"},
		{in: "x-(x-1)", want: "(x-(x-1))+0*x"},
		{in: "2sin(x)", want: "(2*sin(x))+0*x"},
		{in: "2pi", want: "(2*pi)+0*x"},
		{in: "3", want: "(3)+0*x"},
		{in: "1e3", want: "(1000)+0*x"},
		{in: "  x + 1 ", want: "(x+1)+0*x"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalize_PassesThroughWhatItCannotParse(t *testing.T) {
	assert.Equal(t, "(2+)+0*x", Normalize("2+"))
	assert.Equal(t, "(x $ 2)+0*x", Normalize("x $ 2"))
	assert.Equal(t, "()+0*x", Normalize(""))
}

func TestNormalize_ImplicitMatchesExplicit(t *testing.T) {
	pairs := [][2]string{
		{"2x", "2*x"},
		{"x2", "x*2"},
		{"3x^2+2x", "3*x^2+2*x"},
		{"(x+1)(x-2)", "(x+1)*(x-2)"},
		{"2sin(x)", "2*sin(x)"},
	}

	for _, p := range pairs {
		implicit, err := Compile(Normalize(p[0]))
		require.NoError(t, err, p[0])
		explicit, err := Compile(Normalize(p[1]))
		require.NoError(t, err, p[1])

		for _, x := range []float64{-3.5, -1, 0.25, 2, 7} {
			assert.InDelta(t, explicit.Eval(x), implicit.Eval(x), 1e-12, "%s vs %s at x=%v", p[0], p[1], x)
		}
	}
}

func TestNormalize_UnaryMinusBindsLooserThanPower(t *testing.T) {
	c, err := Compile(Normalize("-x^2"))
	require.NoError(t, err)
	assert.InDelta(t, -9.0, c.Eval(3), 1e-12)

	c, err = Compile(Normalize("2^-x"))
	require.NoError(t, err)
	assert.InDelta(t, 0.125, c.Eval(3), 1e-12)

	c, err = Compile(Normalize("2^x^2"))
	require.NoError(t, err)
	assert.InDelta(t, 512.0, c.Eval(3), 1e-9)
	assert.False(t, math.IsNaN(c.Eval(-1)))
}
