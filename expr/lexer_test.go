package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "12", want: 2},
		{in: "2.5x", want: 3},
		{in: ".5", want: 2},
		{in: "1e3", want: 3},
		{in: "1E-3+x", want: 4},
		{in: "2e", want: 1},
		{in: "3.4.5", want: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scanNumber(tt.in, 0), tt.in)
	}
	assert.Equal(t, 4, scanNumber("x+42", 2))
}
