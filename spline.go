package spline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerances used by [Spline.Points] to merge intersections that are found
// twice, for example by adjacent segments that share a knot. Two points are
// the same if every pair of coordinates is within DedupAbsTol of each other,
// or within DedupRelTol relative to the larger magnitude.
const (
	DedupAbsTol = 1e-9
	DedupRelTol = 1e-3
)

// WeightFunc computes the weight of interior knot i, for 1 ≤ i ≤ len(knots)-2.
// At knot i, the derivative at the end of the incoming segment is the weight
// times the derivative at the start of the outgoing segment. Larger weights
// give the incoming segment more of the tangent.
type WeightFunc func(i int, knots []VecN) float64

// DistanceRatio weighs knot i by the ratio of the lengths of the chords before
// and after it. It is the default weight function of [Spline].
//
// Coincident knots produce infinite or NaN weights.
func DistanceRatio(i int, knots []VecN) float64 {
	w1 := knots[i].Sub(knots[i-1]).Magnitude()
	w2 := knots[i+1].Sub(knots[i]).Magnitude()
	return w1 / w2
}

// UniformWeights weighs all knots equally. The resulting spline is the
// natural cubic spline with uniform parametrization, which is C2 continuous.
func UniformWeights(int, []VecN) float64 {
	return 1
}

// FixedWeights returns a weight function that looks up precomputed weights.
// w is indexed by knot, so w[0] is never used. The function panics if a
// knot has no weight.
func FixedWeights(w []float64) WeightFunc {
	w = append([]float64(nil), w...)
	return func(i int, _ []VecN) float64 {
		return w[i]
	}
}

// Spline is a piecewise cubic Bézier curve that passes through all of its
// knots. The segments are recomputed whenever the knots or the weights
// change.
//
// A spline needs at least three knots; with fewer, it has no segments.
type Spline struct {
	knots   []VecN
	weights WeightFunc
	curves  []CubicBez
}

// NewSpline returns a spline through knots, which must all have the same
// dimension. If weights is nil, [DistanceRatio] is used.
func NewSpline(knots []VecN, weights WeightFunc) (*Spline, error) {
	if weights == nil {
		weights = DistanceRatio
	}
	s := &Spline{weights: weights}
	if len(knots) > 0 {
		if err := s.SetKnots(knots); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SetKnots replaces all knots and recomputes the segments. The knots are
// copied.
func (s *Spline) SetKnots(knots []VecN) error {
	out := make([]VecN, len(knots))
	for i, k := range knots {
		if k.Dim() == 0 {
			return fmt.Errorf("Spline.SetKnots: knot %d: %w: dimension 0", i, ErrRange)
		}
		if k.Dim() != knots[0].Dim() {
			return fmt.Errorf("Spline.SetKnots: knot %d: %w", i, dimensionError("Spline.SetKnots", knots[0].Dim(), k.Dim()))
		}
		out[i] = k.Copy()
	}
	s.knots = out
	s.Recalculate()
	return nil
}

// SetKnotCoords is like [Spline.SetKnots] but takes raw coordinates. The
// dimension is that of the first knot. Knots with fewer coordinates are
// padded with zeros, and knots with more are an error.
func (s *Spline) SetKnotCoords(coords [][]float64) error {
	if len(coords) == 0 {
		return s.SetKnots(nil)
	}
	dim := len(coords[0])
	knots := make([]VecN, len(coords))
	for i, c := range coords {
		if len(c) > dim {
			return fmt.Errorf("Spline.SetKnotCoords: knot %d: %w", i, dimensionError("Spline.SetKnotCoords", dim, len(c)))
		}
		v, err := NewVec(len(c), c...)
		if err != nil {
			return fmt.Errorf("Spline.SetKnotCoords: knot %d: %w", i, err)
		}
		if knots[i], err = v.Extend(dim); err != nil {
			return fmt.Errorf("Spline.SetKnotCoords: knot %d: %w", i, err)
		}
	}
	return s.SetKnots(knots)
}

// SetWeights replaces the weight function and recomputes the segments. If
// weights is nil, [DistanceRatio] is used.
func (s *Spline) SetWeights(weights WeightFunc) {
	if weights == nil {
		weights = DistanceRatio
	}
	s.weights = weights
	s.Recalculate()
}

// Knots returns copies of the knots.
func (s *Spline) Knots() []VecN {
	out := make([]VecN, len(s.knots))
	for i, k := range s.knots {
		out[i] = k.Copy()
	}
	return out
}

// Curves returns the segments of the spline. Segment i starts at knot i and
// ends at knot i+1.
func (s *Spline) Curves() []CubicBez {
	out := make([]CubicBez, len(s.curves))
	for i, c := range s.curves {
		out[i] = CubicBez{c.Points()}
	}
	return out
}

// Len returns the number of segments.
func (s *Spline) Len() int {
	return len(s.curves)
}

// Recalculate recomputes the segments from the knots and weights. This
// happens automatically when either changes, but weight functions that
// depend on external state may need it. It runs in O(n) for n knots.
//
// The first control point of every segment is found by solving a tridiagonal
// system. Its interior rows join the second derivatives of neighboring
// segments at the shared knot, scaled by the square of the knot's weight, and
// its first and last rows make the second derivative vanish at the spline's
// ends. The second control points then follow from joining the first
// derivatives.
func (s *Spline) Recalculate() {
	n := len(s.knots)
	s.curves = nil
	if n < 3 {
		return
	}
	knots := s.knots

	k := make([]float64, n)
	for i := 1; i < n-1; i++ {
		k[i] = s.weights(i, knots)
	}

	a := make([]float64, n-1)
	b := make([]float64, n-1)
	c := make([]float64, n-1)
	d := make([]VecN, n-1)

	a[0] = 0
	b[0] = 2
	c[0] = k[1]
	d[0] = knots[0].Add(knots[1].Scale(1 + k[1]))
	for i := 1; i < n-2; i++ {
		a[i] = 1
		b[i] = 2 * (k[i] + (k[i] * k[i]))
		c[i] = k[i+1] * k[i] * k[i]
		d[i] = knots[i].Scale(1 + (2 * k[i]) + (k[i] * k[i])).
			Add(knots[i+1].Scale(1 + k[i+1]).Scale(k[i] * k[i]))
	}
	kl := k[n-2]
	a[n-2] = 1
	b[n-2] = (2 * kl) + (1.5 * kl * kl)
	c[n-2] = 0
	d[n-2] = knots[n-2].Scale(1 + (2 * kl) + (kl * kl)).
		Add(knots[n-1].Scale(0.5 * kl * kl))

	p1 := SolveTridiagonal(a, b, c, d)
	p2 := make([]VecN, n-1)
	for i := 0; i < n-2; i++ {
		p2[i] = knots[i+1].Sub(p1[i+1].Sub(knots[i+1]).Scale(k[i+1]))
	}
	p2[n-2] = knots[n-1].Add(p1[n-2]).Scale(0.5)

	s.curves = make([]CubicBez, n-1)
	for i := range n - 1 {
		s.curves[i] = CubicBez{[4]VecN{knots[i], p1[i], p2[i], knots[i+1]}}
	}
}

// Eval evaluates the spline at u ∈ [0, Len()]. The integer part of u selects
// the segment and the fractional part is the parameter within it. It panics
// if the spline has no segments.
func (s *Spline) Eval(u float64) []float64 {
	if len(s.curves) == 0 {
		panic("called on spline without segments")
	}
	u = max(0, min(float64(len(s.curves)), u))
	i := min(int(math.Floor(u)), len(s.curves)-1)
	return s.curves[i].Eval(u - float64(i))
}

// Points returns all points on the spline whose coordinate along axis equals
// value, in order along the spline. For example, Points(0, 10) returns all
// points where x = 10, and Points(2, -2) all points where z = -2.
//
// Intersections found by more than one segment are only reported once.
func (s *Spline) Points(axis int, value float64) [][]float64 {
	var out [][]float64
	for _, c := range s.curves {
		for _, t := range c.Solve(axis, value) {
			pt := c.Eval(t)
			if !containsPoint(out, pt) {
				out = append(out, pt)
			}
		}
	}
	return out
}

func containsPoint(pts [][]float64, pt []float64) bool {
outer:
	for _, p := range pts {
		for i := range p {
			if !scalar.EqualWithinAbsOrRel(p[i], pt[i], DedupAbsTol, DedupRelTol) {
				continue outer
			}
		}
		return true
	}
	return false
}

// Bounds returns the smallest axis-aligned box that encloses the spline. It
// panics if the spline has no segments.
func (s *Spline) Bounds() Box {
	if len(s.curves) == 0 {
		panic("called on spline without segments")
	}
	b := s.curves[0].Bounds()
	for _, c := range s.curves[1:] {
		b = b.Union(c.Bounds())
	}
	return b
}
