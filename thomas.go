package spline

import "fmt"

// SolveTridiagonal solves A x = d for x, where A is the tridiagonal matrix
// with sub-diagonal a, diagonal b and super-diagonal c. The coefficients are
// scalars and are applied to every dimension of the right-hand side d, which
// solves the same system independently per dimension. All inputs must have
// the same length.
//
// a[0] and c[len(c)-1] are outside of the matrix and are ignored, but must
// be present. 0 is adequate.
//
// See [SolveTridiagonalVec] for details on the algorithm.
func SolveTridiagonal(a, b, c []float64, d []VecN) []VecN {
	n := len(d)
	if len(a) != n || len(b) != n || len(c) != n {
		panic(fmt.Errorf("SolveTridiagonal: %w: coefficient lengths %d, %d, %d for %d equations",
			ErrDimensionMismatch, len(a), len(b), len(c), n))
	}
	if n == 0 {
		return nil
	}
	dim := d[0].Dim()
	broadcast := func(s []float64) []VecN {
		out := make([]VecN, len(s))
		for i, f := range s {
			out[i] = broadcastUnchecked(dim, f)
		}
		return out
	}
	return SolveTridiagonalVec(broadcast(a), broadcast(b), broadcast(c), d)
}

// broadcastUnchecked is like [Broadcast] but allows non-finite values, which
// degenerate knots produce as coefficients.
func broadcastUnchecked(dim int, f float64) VecN {
	c := make([]float64, dim)
	for i := range c {
		c[i] = f
	}
	return VecN{c}
}

// SolveTridiagonalVec solves a tridiagonal system like [SolveTridiagonal],
// but with vector coefficients. Every dimension is an independent system
// with its own coefficients.
//
// This is the Thomas algorithm, which runs in O(n). It doesn't pivot. A zero
// pivot produces infinities and NaNs rather than an error; the algorithm is
// stable for diagonally dominant matrices.
func SolveTridiagonalVec(a, b, c, d []VecN) []VecN {
	n := len(d)
	if len(a) != n || len(b) != n || len(c) != n {
		panic(fmt.Errorf("SolveTridiagonalVec: %w: coefficient lengths %d, %d, %d for %d equations",
			ErrDimensionMismatch, len(a), len(b), len(c), n))
	}
	if n == 0 {
		return nil
	}

	cp := make([]VecN, n)
	dp := make([]VecN, n)
	cp[0] = c[0].Div(b[0])
	dp[0] = d[0].Div(b[0])
	for i := 1; i < n; i++ {
		denom := b[i].Sub(a[i].Mul(cp[i-1]))
		cp[i] = c[i].Div(denom)
		dp[i] = d[i].Sub(a[i].Mul(dp[i-1])).Div(denom)
	}

	x := make([]VecN, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i].Sub(cp[i].Mul(x[i+1]))
	}
	return x
}
