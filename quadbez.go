package spline

import "fmt"

// QuadBez is a quadratic Bézier segment. It is primarily the derivative of a
// [CubicBez], see [CubicBez.Differentiate].
type QuadBez struct {
	P0 VecN
	P1 VecN
	P2 VecN
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Eval evaluates the segment at t. Unlike [CubicBez.Eval], t isn't clamped.
func (q QuadBez) Eval(t float64) VecN {
	mt := 1.0 - t
	a := q.P0.Scale(mt * mt)
	b := q.P1.Scale(mt * 2.0)
	c := q.P2.Scale(t)
	d := b.Add(c)
	return a.Add(d.Scale(t))
}

// Deriv returns the derivative of the segment at t.
func (q QuadBez) Deriv(t float64) VecN {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return d0.Add(d1.Sub(d0).Scale(t)).Scale(2)
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{[4]VecN{
		q.P0,
		q.P0.Add(q.P1.Sub(q.P0).Scale(2.0 / 3.0)),
		q.P2.Add(q.P1.Sub(q.P2).Scale(2.0 / 3.0)),
		q.P2,
	}}
}

func (q QuadBez) String() string {
	return fmt.Sprintf("QuadBez{%v, %v, %v}", q.P0, q.P1, q.P2)
}
