package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	colors, err := cfg.Colors()
	require.NoError(t, err)
	require.Len(t, colors, 10)
	assert.Equal(t, color.RGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF}, colors[0])
	assert.Equal(t, -10.0, cfg.Home().XMin)
}

func TestParse_OverDefaults(t *testing.T) {
	cfg := Default()
	err := Parse([]byte(`
window:
  width: 800
view:
  xMin: -1
  xMax: 1
sampling:
  cacheTTL: 5s
functions:
  - expr: sin(x)
  - expr: x^2
    color: "#F44336"
`), &cfg)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, -1.0, cfg.View.XMin)
	assert.Equal(t, -10.0, cfg.View.YMin)
	assert.Equal(t, 5*time.Second, cfg.Sampling.CacheTTL)
	assert.Equal(t, 8, cfg.Sampling.SamplesPerPixel)
	require.Len(t, cfg.Functions, 2)
	assert.Equal(t, "x^2", cfg.Functions[1].Expr)
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"view: {xMin: 1, xMax: 1}",
		"window: {width: 0}",
		"sampling: {samplesPerPixel: -1}",
		"palette: [\"#12345G\"]",
		"functions: [{expr: x, color: red}]",
		"window: [",
	}

	for _, doc := range tests {
		cfg := Default()
		err := Parse([]byte(doc), &cfg)
		require.Error(t, err, doc)
		assert.True(t, errors.Is(err, ErrInvalid), doc)
		assert.True(t, errors.Is(err, commerr.ErrInvalidArgument), doc)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "plotter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: {title: demo}\n"), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Window.Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#4CAF50")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}, c)
	assert.Equal(t, "#4CAF50", FormatColor(c))

	c, err = ParseColor("f00")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, c)

	for _, bad := range []string{"", "#12", "#GGGGGG", "#1234567"} {
		_, err = ParseColor(bad)
		assert.ErrorIs(t, err, ErrInvalid, bad)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.Functions = []Function{{Expr: "x"}}

	var fs StringList
	require.NoError(t, fs.Set("sin(x)"))
	require.NoError(t, fs.Set("1/x"))
	assert.Equal(t, "sin(x); 1/x", fs.String())

	require.NoError(t, cfg.ApplyOverrides(fs, "-5, 5, -2.5, 2.5"))
	assert.Equal(t, []Function{{Expr: "sin(x)"}, {Expr: "1/x"}}, cfg.Functions)
	assert.Equal(t, View{XMin: -5, XMax: 5, YMin: -2.5, YMax: 2.5}, cfg.View)

	assert.ErrorIs(t, cfg.ApplyOverrides(nil, "1,2,3"), ErrInvalid)
	assert.ErrorIs(t, cfg.ApplyOverrides(nil, "a,b,c,d"), ErrInvalid)
	assert.ErrorIs(t, cfg.ApplyOverrides(nil, "5,-5,0,1"), ErrInvalid)
}
