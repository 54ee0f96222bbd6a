package parabola_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suapapa/lotto645/internal/parabola"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		want     float64
		adjusted bool
	}{
		{name: "default", a: 1, want: 1},
		{name: "snapped to step", a: 2.34, want: 2.3},
		{name: "zero", a: 0, want: 0.1, adjusted: true},
		{name: "tiny positive", a: 0.04, want: 0.1, adjusted: true},
		{name: "tiny negative", a: -0.04, want: -0.1, adjusted: true},
		{name: "lower bound", a: -5, want: -5},
		{name: "upper bound", a: 5, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := parabola.New(tt.a)
			require.NoError(t, err)
			require.InDelta(t, tt.want, c.A, 1e-9)
			require.Equal(t, tt.adjusted, c.Adjusted)
		})
	}
}

func TestNewOutOfRange(t *testing.T) {
	for _, a := range []float64{-5.1, 5.01, 100, math.NaN()} {
		_, err := parabola.New(a)
		require.ErrorIs(t, err, parabola.ErrOutOfRange, "a = %v", a)
	}
}

func TestLinspace(t *testing.T) {
	xs := parabola.Linspace(-5, 5, parabola.DefaultSamples)
	require.Len(t, xs, 100)
	require.Equal(t, -5.0, xs[0])
	require.Equal(t, 5.0, xs[99])
	require.InDelta(t, 10.0/99, xs[1]-xs[0], 1e-12)

	require.Nil(t, parabola.Linspace(0, 1, 0))
	require.Equal(t, []float64{3}, parabola.Linspace(3, 9, 1))
}

func TestSample(t *testing.T) {
	c, err := parabola.New(-2)
	require.NoError(t, err)
	pts := c.Sample(11)
	require.Len(t, pts, 11)
	require.Equal(t, parabola.Point{X: -5, Y: -50}, pts[0])
	require.InDelta(t, 0, pts[5].Y, 1e-12)
	require.Equal(t, -50.0, pts[10].Y)
}

func TestAnalysis(t *testing.T) {
	tests := []struct {
		a     float64
		label string
		shape parabola.Shape
		width parabola.Width
	}{
		{1, "y = 1.0x^2", parabola.OpensUp, parabola.Standard},
		{-1, "y = -1.0x^2", parabola.OpensDown, parabola.Standard},
		{4, "y = 4.0x^2", parabola.OpensUp, parabola.Narrow},
		{-0.5, "y = -0.5x^2", parabola.OpensDown, parabola.Wide},
		{0, "y = 0.1x^2", parabola.OpensUp, parabola.Wide},
	}
	for _, tt := range tests {
		c, err := parabola.New(tt.a)
		require.NoError(t, err)
		require.Equal(t, tt.label, c.Label())
		require.Equal(t, tt.shape, c.Shape(), tt.label)
		require.Equal(t, tt.width, c.Width(), tt.label)
	}
	require.Equal(t, "opens down", parabola.OpensDown.String())
	require.Equal(t, "narrow", parabola.Narrow.String())
}

func TestRender(t *testing.T) {
	c, err := parabola.New(1)
	require.NoError(t, err)

	lines := strings.Split(parabola.Render(c, 41, 21), "\n")
	require.Len(t, lines, 21)

	// the vertex overdraws the axis crossing
	require.Equal(t, byte('*'), lines[10][20])
	require.Equal(t, byte('-'), lines[10][0], "y=25 at x=-5 is clipped")
	require.Equal(t, byte('|'), lines[0][20])
	require.NotContains(t, lines[0], "*")
	// x = ±3 gives y = 9, one row below the top
	require.Equal(t, byte('*'), lines[1][8])
	require.Equal(t, byte('*'), lines[1][32])

	down, err := parabola.New(-1)
	require.NoError(t, err)
	downLines := strings.Split(parabola.Render(down, 41, 21), "\n")
	require.Equal(t, byte('*'), downLines[10][20])
	require.Equal(t, byte('*'), downLines[19][32])
	require.NotContains(t, downLines[1], "*")
}
