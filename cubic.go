package spline

import (
	"fmt"
	"math"
	"slices"
)

// solveEpsilon is the relative size below which polynomial coefficients are
// treated as rounding noise by [CubicBez.Solve], and the distance outside of
// [0, 1] within which roots are snapped to the interval.
const solveEpsilon = 1e-12

// CubicBez is a cubic Bézier segment in any number of dimensions. All four
// control points have the same dimension.
type CubicBez struct {
	pts [4]VecN
}

// NewCubicBez returns the cubic Bézier segment with the given control points.
func NewCubicBez(p0, p1, p2, p3 VecN) (CubicBez, error) {
	pts := [4]VecN{p0, p1, p2, p3}
	dim := p0.Dim()
	if dim == 0 {
		return CubicBez{}, fmt.Errorf("NewCubicBez: %w: control point 0 has dimension 0", ErrRange)
	}
	for i, p := range pts {
		if p.Dim() != dim {
			return CubicBez{}, fmt.Errorf("NewCubicBez: control point %d: %w", i, dimensionError("NewCubicBez", dim, p.Dim()))
		}
		pts[i] = p.Copy()
	}
	return CubicBez{pts}, nil
}

// CubicBezScalar returns a one-dimensional cubic Bézier segment.
func CubicBezScalar(p0, p1, p2, p3 float64) CubicBez {
	return CubicBez{[4]VecN{Vec(p0), Vec(p1), Vec(p2), Vec(p3)}}
}

// Dim returns the dimension of the control points.
func (c CubicBez) Dim() int {
	return c.pts[0].Dim()
}

// Point returns a copy of the i-th control point. It panics unless 0 ≤ i < 4.
func (c CubicBez) Point(i int) VecN {
	mustIndex("CubicBez.Point", i, len(c.pts))
	return c.pts[i].Copy()
}

// Points returns copies of all four control points.
func (c CubicBez) Points() [4]VecN {
	var out [4]VecN
	for i, p := range c.pts {
		out[i] = p.Copy()
	}
	return out
}

// SetPoint replaces the i-th control point, which must have the same
// dimension as the others.
func (c *CubicBez) SetPoint(i int, p VecN) error {
	if i < 0 || i >= len(c.pts) {
		return rangeError("CubicBez.SetPoint", i, len(c.pts))
	}
	if p.Dim() != c.Dim() {
		return dimensionError("CubicBez.SetPoint", c.Dim(), p.Dim())
	}
	c.pts[i] = p.Copy()
	return nil
}

func (c CubicBez) Start() VecN {
	return c.pts[0].Copy()
}

func (c CubicBez) End() VecN {
	return c.pts[3].Copy()
}

func (c CubicBez) IsInf() bool {
	return c.pts[0].IsInf() || c.pts[1].IsInf() || c.pts[2].IsInf() || c.pts[3].IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.pts[0].IsNaN() || c.pts[1].IsNaN() || c.pts[2].IsNaN() || c.pts[3].IsNaN()
}

func (c CubicBez) String() string {
	return fmt.Sprintf("CubicBez{%v, %v, %v, %v}", c.pts[0], c.pts[1], c.pts[2], c.pts[3])
}

// Eval evaluates the segment at t, which is clamped to [0, 1], and returns
// the point's coordinates.
func (c CubicBez) Eval(t float64) []float64 {
	return c.eval(clamp01(t)).Slice()
}

func (c CubicBez) eval(t float64) VecN {
	mt := 1.0 - t
	return Add(
		c.pts[0].Scale(mt*mt*mt),
		c.pts[1].Scale(3*mt*mt*t),
		c.pts[2].Scale(3*mt*t*t),
		c.pts[3].Scale(t*t*t),
	)
}

// Deriv returns the first derivative at t, which is clamped to [0, 1].
func (c CubicBez) Deriv(t float64) []float64 {
	return c.Differentiate().Eval(clamp01(t)).Slice()
}

// Deriv2 returns the second derivative at t, which is clamped to [0, 1].
func (c CubicBez) Deriv2(t float64) []float64 {
	t = clamp01(t)
	p0, p1, p2, p3 := c.pts[0], c.pts[1], c.pts[2], c.pts[3]
	dd0 := p2.Sub(p1.Scale(2)).Add(p0)
	dd1 := p3.Sub(p2.Scale(2)).Add(p1)
	return dd0.Scale(1 - t).Add(dd1.Scale(t)).Scale(6).Slice()
}

func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		c.pts[1].Sub(c.pts[0]).Scale(3),
		c.pts[2].Sub(c.pts[1]).Scale(3),
		c.pts[3].Sub(c.pts[2]).Scale(3),
	}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p0, p1, p2, p3 := c.pts[0], c.pts[1], c.pts[2], c.pts[3]
	pm := c.eval(0.5)
	return CubicBez{[4]VecN{
			p0,
			Lerp(p0, p1, 0.5),
			p0.Add(p1.Scale(2.0)).Add(p2).Scale(0.25),
			pm,
		}},
		CubicBez{[4]VecN{
			pm,
			p1.Add(p2.Scale(2.0)).Add(p3).Scale(0.25),
			Lerp(p2, p3, 0.5),
			p3,
		}}
}

// coords returns the control points' coordinates along axis.
func (c CubicBez) coords(op string, axis int) (p0, p1, p2, p3 float64) {
	mustIndex(op, axis, c.Dim())
	return c.pts[0].c[axis], c.pts[1].c[axis], c.pts[2].c[axis], c.pts[3].c[axis]
}

// Solve returns the sorted parameters t ∈ [0, 1] at which the coordinate
// along axis equals value. For a two-dimensional curve, Solve(0, 10) finds
// all t where x = 10. It panics if axis is out of range.
//
// Roots from different branches of the cubic formula aren't deduplicated.
func (c CubicBez) Solve(axis int, value float64) []float64 {
	p0, p1, p2, p3 := c.coords("CubicBez.Solve", axis)

	a := -p0 + (3 * p1) - (3 * p2) + p3
	b := (3 * p0) - (6 * p1) + (3 * p2)
	cc := -(3 * p0) + (3 * p1)
	d := p0 - value

	// Coefficients that only survive as rounding error of evenly spaced
	// control points are zero.
	noise := solveEpsilon * max(math.Abs(p0), math.Abs(p1), math.Abs(p2), math.Abs(p3))
	if math.Abs(a) <= noise {
		a = 0
	}
	if math.Abs(b) <= noise {
		b = 0
	}
	if math.Abs(cc) <= noise {
		cc = 0
	}

	roots, n := SolveCubic(a, b, cc, d)
	out := make([]float64, 0, n)
	for _, t := range roots[:n] {
		switch {
		case t == 0:
			// Turn -0 into 0
			t = 0
		case t < 0 && t >= -solveEpsilon:
			t = 0
		case t > 1 && t <= 1+solveEpsilon:
			t = 1
		}
		if t >= 0 && t <= 1 {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}

// Extrema returns the sorted parameters t ∈ (0, 1) at which the derivative
// along at least one axis is zero.
func (c CubicBez) Extrema() []float64 {
	var out []float64
	for axis := range c.Dim() {
		p0, p1, p2, p3 := c.coords("CubicBez.Extrema", axis)
		d0, d1, d2 := p1-p0, p2-p1, p3-p2
		roots, n := SolveQuadratic(d0-2*d1+d2, 2*(d1-d0), d0)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out = append(out, t)
			}
		}
	}
	slices.Sort(out)
	return out
}

// Bounds returns the smallest axis-aligned box that encloses the segment.
func (c CubicBez) Bounds() Box {
	b := NewBoxFromPoints(c.pts[0], c.pts[3])
	for _, t := range c.Extrema() {
		b = b.UnionPoint(c.eval(t))
	}
	return b
}
