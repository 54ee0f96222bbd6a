// Package parabola samples y = a·x² over a fixed viewport and renders it as
// a text chart.
package parabola

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	MinA = -5.0
	MaxA = 5.0
	Step = 0.1

	XMin = -5.0
	XMax = 5.0
	YMin = -10.0
	YMax = 10.0

	// DefaultSamples matches the resolution of the interactive grapher.
	DefaultSamples = 100

	nearZero   = 0.05
	substitute = 0.1
)

var ErrOutOfRange = errors.New("parabola: a is out of range")

// Curve is y = A·x². Adjusted is set when the requested a was too close to
// zero to be a parabola and A holds the substitute.
type Curve struct {
	A        float64
	Adjusted bool
}

// New validates a, snaps it to Step and replaces values within 0.05 of zero
// by ±0.1.
func New(a float64) (Curve, error) {
	if math.IsNaN(a) || a < MinA || a > MaxA {
		return Curve{}, fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, a, MinA, MaxA)
	}
	if math.Abs(a) < nearZero {
		if a >= 0 {
			return Curve{A: substitute, Adjusted: true}, nil
		}
		return Curve{A: -substitute, Adjusted: true}, nil
	}
	return Curve{A: math.Round(a/Step) / (1 / Step)}, nil
}

func (c Curve) Eval(x float64) float64 {
	return c.A * x * x
}

// Point is one sample of a curve.
type Point struct {
	X, Y float64
}

// Sample evaluates the curve at n evenly spaced x values across the viewport.
func (c Curve) Sample(n int) []Point {
	xs := Linspace(XMin, XMax, n)
	pts := make([]Point, len(xs))
	for i, x := range xs {
		pts[i] = Point{X: x, Y: c.Eval(x)}
	}
	return pts
}

// Linspace returns n evenly spaced values from start to stop, both included.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	step := (stop - start) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Label formats the equation the way the chart legend shows it.
func (c Curve) Label() string {
	return fmt.Sprintf("y = %.1fx^2", c.A)
}

// Shape is the direction a parabola opens.
type Shape int

const (
	OpensUp Shape = iota
	OpensDown
)

func (c Curve) Shape() Shape {
	if c.A < 0 {
		return OpensDown
	}
	return OpensUp
}

func (s Shape) String() string {
	if s == OpensDown {
		return "opens down"
	}
	return "opens up"
}

// Width compares the curve with y = x².
type Width int

const (
	Standard Width = iota
	Narrow
	Wide
)

func (c Curve) Width() Width {
	abs := math.Abs(c.A)
	switch {
	case math.Abs(abs-1) < Step/2:
		return Standard
	case abs > 1:
		return Narrow
	default:
		return Wide
	}
}

func (w Width) String() string {
	switch w {
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	default:
		return "standard"
	}
}

// Render draws the curve on a cols×rows character grid covering the fixed
// viewport. Samples outside [YMin, YMax] are clipped.
func Render(c Curve, cols, rows int) string {
	cols, rows = max(cols, 3), max(rows, 3)
	grid := make([][]byte, rows)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", cols))
	}

	originRow := toRow(0, rows)
	originCol := toCol(0, cols)
	for col := range cols {
		grid[originRow][col] = '-'
	}
	for r := range rows {
		grid[r][originCol] = '|'
	}
	grid[originRow][originCol] = '+'

	for _, p := range c.Sample(cols) {
		if p.Y < YMin || p.Y > YMax {
			continue
		}
		grid[toRow(p.Y, rows)][toCol(p.X, cols)] = '*'
	}

	lines := make([]string, rows)
	for r, line := range grid {
		lines[r] = strings.TrimRight(string(line), " ")
	}
	return strings.Join(lines, "\n")
}

func toCol(x float64, cols int) int {
	return int(math.Round((x - XMin) / (XMax - XMin) * float64(cols-1)))
}

func toRow(y float64, rows int) int {
	return int(math.Round((YMax - y) / (YMax - YMin) * float64(rows-1)))
}
