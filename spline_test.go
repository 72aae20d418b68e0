package spline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func vecs(coords ...[]float64) []VecN {
	out := make([]VecN, len(coords))
	for i, c := range coords {
		out[i] = Vec(c...)
	}
	return out
}

func mustSpline(t *testing.T, knots []VecN, weights WeightFunc) *Spline {
	t.Helper()
	s, err := NewSpline(knots, weights)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSplineTooFewKnots(t *testing.T) {
	for n := range 3 {
		knots := make([]VecN, n)
		for i := range knots {
			knots[i] = Vec(float64(i), 0)
		}
		s := mustSpline(t, knots, nil)
		if len(s.Curves()) != 0 {
			t.Errorf("%d knots: got segments %v", n, s.Curves())
		}
		diff(t, [][]float64{}, s.Points(0, 0), cmpopts.EquateEmpty())
		if s.Len() != 0 {
			t.Errorf("%d knots: got %d segments, want 0", n, s.Len())
		}
	}
}

func TestSplineInterpolatesKnots(t *testing.T) {
	knotSets := [][]VecN{
		vecs([]float64{0, 0}, []float64{1, 1}, []float64{2, 0}, []float64{3, 1}),
		vecs([]float64{0, 0}, []float64{1, 2}, []float64{4, 0}, []float64{5, 5}, []float64{-2, 3}),
		vecs([]float64{0, 0, 0}, []float64{1, 2, 3}, []float64{-1, 0, 2}),
	}
	for _, knots := range knotSets {
		for _, weights := range []WeightFunc{nil, UniformWeights} {
			s := mustSpline(t, knots, weights)
			curves := s.Curves()
			if len(curves) != len(knots)-1 {
				t.Fatalf("got %d segments, want %d", len(curves), len(knots)-1)
			}
			for i, c := range curves {
				if got := Vec(c.Eval(0)...); !got.ApproxEqual(knots[i], DefaultEpsilon) {
					t.Errorf("segment %d starts at %v, want %v", i, got, knots[i])
				}
				if got := Vec(c.Eval(1)...); !got.ApproxEqual(knots[i+1], DefaultEpsilon) {
					t.Errorf("segment %d ends at %v, want %v", i, got, knots[i+1])
				}
			}
		}
	}
}

func TestSplineKnownControlPoints(t *testing.T) {
	s := mustSpline(t, vecs([]float64{0, 0}, []float64{1, 1}, []float64{2, 0}), nil)
	want := []CubicBez{
		{[4]VecN{Vec(0, 0), Vec(1.0/3, 0.5), Vec(2.0/3, 1), Vec(1, 1)}},
		{[4]VecN{Vec(1, 1), Vec(4.0/3, 1), Vec(5.0/3, 0.5), Vec(2, 0)}},
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	for i, c := range s.Curves() {
		for j, p := range c.Points() {
			diff(t, want[i].pts[j].Slice(), p.Slice(), approx)
		}
	}
}

func TestSplineTangentContinuity(t *testing.T) {
	knots := vecs([]float64{0, 0}, []float64{1, 2}, []float64{4, 0}, []float64{5, 5}, []float64{-2, 3})
	s := mustSpline(t, knots, nil)
	curves := s.Curves()
	for i := 1; i < len(curves); i++ {
		in := Vec(curves[i-1].Deriv(1)...)
		out := Vec(curves[i].Deriv(0)...)
		if !in.Normalize().ApproxEqual(out.Normalize(), DefaultEpsilon) {
			t.Errorf("knot %d: incoming tangent %v and outgoing tangent %v differ in direction", i, in, out)
		}
		// The incoming derivative is the weight times the outgoing one.
		k := DistanceRatio(i, knots)
		if !in.ApproxEqual(out.Scale(k), 1e-9) {
			t.Errorf("knot %d: got %v, want %v", i, in, out.Scale(k))
		}
		// And the second derivatives scale with the squared weight.
		in2 := Vec(curves[i-1].Deriv2(1)...)
		out2 := Vec(curves[i].Deriv2(0)...)
		if !in2.ApproxEqual(out2.Scale(k*k), 1e-9) {
			t.Errorf("knot %d: got second derivative %v, want %v", i, in2, out2.Scale(k*k))
		}
	}
}

func TestSplineC2(t *testing.T) {
	knots := vecs([]float64{0, 0}, []float64{1, 2}, []float64{4, 0}, []float64{5, 5}, []float64{-2, 3})
	s := mustSpline(t, knots, UniformWeights)
	curves := s.Curves()
	opt := cmpopts.EquateApprox(0, 1e-9)
	for i := 1; i < len(curves); i++ {
		diff(t, curves[i-1].Deriv(1), curves[i].Deriv(0), opt)
		diff(t, curves[i-1].Deriv2(1), curves[i].Deriv2(0), opt)
	}
	// Natural boundary conditions
	diff(t, []float64{0, 0}, curves[0].Deriv2(0), opt)
	diff(t, []float64{0, 0}, curves[len(curves)-1].Deriv2(1), opt)
}

func TestSplineFixedWeights(t *testing.T) {
	knots := vecs([]float64{0, 0}, []float64{1, 2}, []float64{4, 0}, []float64{5, 5})
	w := []float64{0, DistanceRatio(1, knots), DistanceRatio(2, knots)}
	s1 := mustSpline(t, knots, nil)
	s2 := mustSpline(t, knots, FixedWeights(w))
	diff(t, s1.Curves(), s2.Curves(), equateCubics)

	// Weights are copied.
	w[1] = 100
	s2.Recalculate()
	diff(t, s1.Curves(), s2.Curves(), equateCubics)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for knot without weight")
		}
	}()
	mustSpline(t, knots, FixedWeights(w[:2]))
}

func TestSplineSetWeights(t *testing.T) {
	knots := vecs([]float64{0, 0}, []float64{1, 2}, []float64{4, 0}, []float64{5, 5})
	s := mustSpline(t, knots, nil)
	s.SetWeights(UniformWeights)
	diff(t, mustSpline(t, knots, UniformWeights).Curves(), s.Curves(), equateCubics)
	s.SetWeights(nil)
	diff(t, mustSpline(t, knots, DistanceRatio).Curves(), s.Curves(), equateCubics)
}

func TestSplineSetKnots(t *testing.T) {
	s := mustSpline(t, nil, nil)
	if err := s.SetKnots(vecs([]float64{0, 0}, []float64{1})); err == nil {
		t.Error("expected error for knots of different dimensions")
	} else {
		wantError(t, err, ErrDimensionMismatch)
	}
	_, err := NewSpline(vecs([]float64{0, 0}, []float64{1, 1, 1}), nil)
	wantError(t, err, ErrDimensionMismatch)

	knots := vecs([]float64{0, 0}, []float64{1, 1}, []float64{2, 0})
	if err := s.SetKnots(knots); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("got %d segments, want 2", s.Len())
	}

	// Knots are copied in both directions.
	knots[0].Set(0, 100)
	got := s.Knots()
	got[1].Set(0, 100)
	diff(t, vecs([]float64{0, 0}, []float64{1, 1}, []float64{2, 0}), s.Knots(), equateVecs)

	// Replacing the knots recomputes the segments.
	if err := s.SetKnots(knots[:2]); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Errorf("got %d segments for two knots, want 0", s.Len())
	}
}

func TestSplineSetKnotCoords(t *testing.T) {
	s := mustSpline(t, nil, nil)
	if err := s.SetKnotCoords([][]float64{{0, 0}, {1}, {2, 0}}); err != nil {
		t.Fatal(err)
	}
	diff(t, vecs([]float64{0, 0}, []float64{1, 0}, []float64{2, 0}), s.Knots(), equateVecs)

	wantError(t, s.SetKnotCoords([][]float64{{0, 0}, {1, 2, 3}}), ErrDimensionMismatch)
	wantError(t, s.SetKnotCoords([][]float64{{0, 0}, {1, math.NaN()}}), ErrNotFinite)
	wantError(t, s.SetKnotCoords([][]float64{{}}), ErrRange)

	if err := s.SetKnotCoords(nil); err != nil {
		t.Fatal(err)
	}
	if len(s.Knots()) != 0 || s.Len() != 0 {
		t.Errorf("got %d knots and %d segments, want none", len(s.Knots()), s.Len())
	}
}

func TestSplinePointsAtKnot(t *testing.T) {
	knots := vecs([]float64{0, 0}, []float64{1, 1}, []float64{2, 0}, []float64{3, 1})
	s := mustSpline(t, knots, nil)
	for i, k := range knots {
		pts := s.Points(0, k.X())
		if len(pts) != 1 {
			t.Errorf("knot %d: got points %v, want exactly one", i, pts)
			continue
		}
		if got := Vec(pts[0]...); !got.ApproxEqual(k, 1e-6) {
			t.Errorf("knot %d: got %v, want %v", i, got, k)
		}
	}
}

func TestSplinePoints(t *testing.T) {
	knots := vecs([]float64{0, 0}, []float64{1, 1}, []float64{2, 0}, []float64{3, 1})
	s := mustSpline(t, knots, nil)

	pts := s.Points(1, 0.5)
	if len(pts) < 3 {
		t.Fatalf("got %d points %v, want at least 3", len(pts), pts)
	}
	for i, pt := range pts {
		if math.Abs(pt[1]-0.5) > 1e-9 {
			t.Errorf("point %v doesn't have y = 0.5", pt)
		}
		if i > 0 && pts[i-1][0] >= pt[0] {
			t.Errorf("points aren't in order along the spline: %v", pts)
		}
	}

	diff(t, [][]float64{}, s.Points(0, 10), cmpopts.EquateEmpty())
	wantPanic(t, ErrRange, func() { s.Points(2, 0) })
}

func TestContainsPoint(t *testing.T) {
	pts := [][]float64{{1, 2}, {0, -3}}
	for _, tt := range []struct {
		pt   []float64
		want bool
	}{
		{[]float64{1, 2}, true},
		{[]float64{1.0005, 2}, true},
		{[]float64{1e-12, -3}, true},
		{[]float64{1.01, 2}, false},
		{[]float64{1e-3, -3}, false},
		{[]float64{2, 1}, false},
	} {
		if got := containsPoint(pts, tt.pt); got != tt.want {
			t.Errorf("containsPoint(%v) = %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestSplineEval(t *testing.T) {
	knots := vecs([]float64{0, 0}, []float64{1, 1}, []float64{2, 0}, []float64{3, 1})
	s := mustSpline(t, knots, nil)
	curves := s.Curves()
	opt := cmpopts.EquateApprox(0, 1e-12)
	diff(t, knots[0].Slice(), s.Eval(0), opt)
	diff(t, knots[1].Slice(), s.Eval(1), opt)
	diff(t, knots[3].Slice(), s.Eval(3), opt)
	diff(t, knots[3].Slice(), s.Eval(4), opt)
	diff(t, curves[1].Eval(0.25), s.Eval(1.25), opt)

	empty := mustSpline(t, nil, nil)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for spline without segments")
		}
	}()
	empty.Eval(0)
}

func TestSplineBounds(t *testing.T) {
	s := mustSpline(t, vecs([]float64{0, 0}, []float64{1, 1}, []float64{2, 0}), nil)
	b := s.Bounds()
	opt := cmpopts.EquateApprox(0, 1e-12)
	diff(t, []float64{0, 0}, b.Min.Slice(), opt)
	diff(t, []float64{2, 1}, b.Max.Slice(), opt)
	for u := 0.0; u <= 2; u += 0.125 {
		if p := Vec(s.Eval(u)...); !b.Inflate(1e-12).Contains(p) {
			t.Errorf("%v isn't inside %v", p, b)
		}
	}
}

func TestSplineDegenerate(t *testing.T) {
	// Coincident knots propagate NaNs instead of failing.
	s := mustSpline(t, vecs([]float64{0, 0}, []float64{0, 0}, []float64{1, 1}), nil)
	if s.Len() != 2 {
		t.Fatalf("got %d segments, want 2", s.Len())
	}
	nan := false
	for _, c := range s.Curves() {
		nan = nan || c.IsNaN() || c.IsInf()
	}
	if !nan {
		t.Errorf("got finite segments %v for coincident knots", s.Curves())
	}
}
