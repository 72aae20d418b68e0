// Package spline provides n-dimensional vectors, cubic Bézier segments, and
// smooth cubic Bézier splines that pass through a list of knots. It only
// computes geometry; drawing the results is left to the caller.
//
// # Vectors
//
// [VecN] is a vector of float64 components whose dimension is fixed when it
// is created. Vectors support the usual arithmetic, norms, reflection and
// interpolation ([Lerp], [Slerp]). Vectors of up to four dimensions can also
// be accessed by name: the components are called x, y, z, w, or
// alternatively r, g, b, a and s, t, p, q. See [VecN.Swizzle] and
// [VecN.SetSwizzle].
//
// Misusing arithmetic, for example adding vectors of different dimensions,
// panics. Functions that construct or modify vectors from caller-provided
// data return errors instead, which can be matched with [errors.Is] against
// [ErrDimensionMismatch], [ErrNotFinite], [ErrRange] and [ErrInvalidSwizzle].
//
// Degenerate geometry is not an error. Normalizing a zero vector, splines
// with coincident knots and similar inputs produce NaNs and infinities.
//
// # Polynomials
//
// [SolveLinear], [SolveQuadratic] and [SolveCubic] find the real roots of
// polynomials of up to third degree in closed form.
//
// # Cubic Béziers
//
// [CubicBez] is a cubic Bézier segment with control points of any
// dimension. Besides evaluating it ([CubicBez.Eval]) and its derivatives, it
// can find all parameters at which one coordinate takes a given value
// ([CubicBez.Solve]). For a two-dimensional curve, this intersects the curve
// with a vertical or horizontal line. The extents of segments and splines
// are reported as a [Box].
//
// # Splines
//
// [Spline] fits a piecewise cubic Bézier curve through a list of knots. The
// curve interpolates every knot, has matching tangent directions where
// segments meet, and has vanishing curvature at both ends. A [WeightFunc]
// controls how the tangent at each interior knot is divided between the
// segments meeting there. The default, [DistanceRatio], divides by chord
// length; [UniformWeights] produces the classic C2 continuous natural
// spline. Computing a spline takes O(n) time for n knots, by solving a
// tridiagonal system with the Thomas algorithm ([SolveTridiagonal]).
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [Tridiagonal matrix algorithm]
//   - [Cubic equation], in particular the trigonometric solution for three
//     real roots
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Tridiagonal matrix algorithm]: https://en.wikipedia.org/wiki/Tridiagonal_matrix_algorithm
// [Cubic equation]: https://en.wikipedia.org/wiki/Cubic_equation
package spline
