package spline

import "math"

// SolveLinear finds the real root of a linear equation.
//
// Returns the value of x for which a x + b = 0. If there are no solutions, or
// infinitely many (a is zero), no root is returned.
func SolveLinear(a, b float64) ([1]float64, int) {
	if a == 0 {
		return [1]float64{}, 0
	}
	return [1]float64{-b / a}, 1
}

// SolveQuadratic finds the roots of a quadratic equation.
//
// Returns values of x for which a x² + b x + c = 0. If a is zero, this
// solves the linear equation instead.
//
// Complex roots aren't supported. If the discriminant is negative, both
// returned roots are NaN.
func SolveQuadratic(a, b, c float64) ([2]float64, int) {
	if a == 0 {
		roots, n := SolveLinear(b, c)
		return [2]float64{roots[0]}, n
	}
	d := math.Sqrt((b * b) - (4 * a * c))
	root1 := (-b - d) / (2 * a)
	root2 := (-b + d) / (2 * a)
	return [2]float64{root1, root2}, 2
}

// SolveCubic finds real roots of cubic equations.
//
// Returns values of x for which a x³ + b x² + c x + d = 0. If a is zero, this
// solves the quadratic equation instead.
//
// The roots are computed in closed form, using the discriminant to tell
// repeated roots, a single real root (Cardano's formula) and three real roots
// (the trigonometric solution) apart. The second return value states how many
// roots were found. Roots are not sorted.
func SolveCubic(a, b, c, d float64) ([3]float64, int) {
	if a == 0 {
		roots, n := SolveQuadratic(b, c, d)
		return [3]float64{roots[0], roots[1]}, n
	}

	disc := a * b * c * d * 18
	disc -= math.Pow(b, 3) * d * 4
	disc += math.Pow(b, 2) * math.Pow(c, 2)
	disc -= a * math.Pow(c, 3) * 4
	disc -= math.Pow(a, 2) * math.Pow(d, 2) * 27

	d0 := math.Pow(b, 2) - (a * c * 3)

	if disc == 0 {
		if d0 == 0 {
			// Triple root
			return [3]float64{-b / (a * 3)}, 1
		}
		// Double root and a simple root
		root1 := a * b * c * 4
		root1 -= a * a * d * 9
		root1 -= b * b * b
		root1 /= a * d0

		root2 := ((a * d * 9) - b*c) / (d0 * 2)

		return [3]float64{root1, root2}, 2
	}

	f := ((3 * (c / a)) - (math.Pow(b, 2) / math.Pow(a, 2))) / 3
	g := 2 * math.Pow(b, 3) / math.Pow(a, 3)
	g -= 9 * b * c / math.Pow(a, 2)
	g += 27 * d / a
	g /= 27
	h := (math.Pow(g, 2) / 4) + (math.Pow(f, 3) / 27)

	if h > 0 {
		// One real root
		r := -(g / 2) + math.Sqrt(h)
		s := math.Cbrt(r)
		t := -(g / 2) - math.Sqrt(h)
		u := math.Cbrt(t)
		return [3]float64{(s + u) - (b / (3 * a))}, 1
	}

	// Three real roots
	i := math.Sqrt((math.Pow(g, 2) / 4) - h)
	j := math.Cbrt(i)
	k := math.Acos(-g / (2 * i))
	l := -j
	m := math.Cos(k / 3)
	n := math.Sqrt(3) * math.Sin(k/3)
	p := -b / (3 * a)

	return [3]float64{
		2*j*math.Cos(k/3) - (b / (3 * a)),
		(l * (m + n)) + p,
		(l * (m - n)) + p,
	}, 3
}
