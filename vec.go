package spline

import (
	"fmt"
	"math"
	"strings"
)

// DefaultEpsilon is the tolerance used by callers of [VecN.ApproxEqual] that
// don't have a better one.
const DefaultEpsilon = 1e-8

// VecN is a vector of a fixed number of float64 components. The dimension is
// chosen at construction and never changes.
//
// Arithmetic methods never modify their receiver and return new vectors.
// Only [VecN.Set] and [VecN.SetSwizzle] mutate in place. Note that copying a
// VecN by assignment shares its components; use [VecN.Copy] for an
// independent vector.
//
// The zero value has dimension 0 and isn't a valid vector.
type VecN struct {
	c []float64
}

// NewVec returns a vector of dimension dim. With no values, it is the zero
// vector. With a single value, every component is set to it. Otherwise,
// exactly dim values must be provided.
func NewVec(dim int, values ...float64) (VecN, error) {
	if dim <= 0 {
		return VecN{}, fmt.Errorf("NewVec: %w: dimension %d must be positive", ErrRange, dim)
	}
	if err := checkFinite("NewVec", values); err != nil {
		return VecN{}, err
	}
	c := make([]float64, dim)
	switch len(values) {
	case 0:
	case 1:
		for i := range c {
			c[i] = values[0]
		}
	case dim:
		copy(c, values)
	default:
		return VecN{}, fmt.Errorf("NewVec: %w: got %d values for dimension %d, want 0, 1, or %d",
			ErrDimensionMismatch, len(values), dim, dim)
	}
	return VecN{c}, nil
}

// Vec returns the vector ⟨values...⟩, whose dimension is the number of values.
// It panics if there are no values or if any of them isn't finite.
func Vec(values ...float64) VecN {
	v, err := NewVec(len(values), values...)
	if err != nil {
		panic(err)
	}
	return v
}

// Zero returns the zero vector of dimension dim.
func Zero(dim int) VecN {
	return Broadcast(dim, 0)
}

// Broadcast returns a vector of dimension dim with every component set to f.
// It panics if dim isn't positive or f isn't finite.
func Broadcast(dim int, f float64) VecN {
	v, err := NewVec(dim, f)
	if err != nil {
		panic(err)
	}
	return v
}

func checkFinite(op string, values []float64) error {
	for i, f := range values {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%s: %w: value %d is %v", op, ErrNotFinite, i, f)
		}
	}
	return nil
}

// Dim returns the number of components.
func (v VecN) Dim() int {
	return len(v.c)
}

// At returns the i-th component. It panics if i is out of range.
func (v VecN) At(i int) float64 {
	mustIndex("VecN.At", i, len(v.c))
	return v.c[i]
}

// Set assigns f to the i-th component.
func (v *VecN) Set(i int, f float64) error {
	if i < 0 || i >= len(v.c) {
		return rangeError("VecN.Set", i, len(v.c))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("VecN.Set: %w: %v", ErrNotFinite, f)
	}
	v.c[i] = f
	return nil
}

func (v VecN) X() float64 { return v.At(0) }
func (v VecN) Y() float64 { return v.At(1) }
func (v VecN) Z() float64 { return v.At(2) }
func (v VecN) W() float64 { return v.At(3) }

// Slice returns the components as a new slice.
func (v VecN) Slice() []float64 {
	out := make([]float64, len(v.c))
	copy(out, v.c)
	return out
}

// Copy returns a vector that doesn't share storage with v.
func (v VecN) Copy() VecN {
	return VecN{v.Slice()}
}

// Extend returns v promoted to dimension dim, with the new components set to
// zero. Demoting to a smaller dimension is an error.
func (v VecN) Extend(dim int) (VecN, error) {
	if dim < len(v.c) {
		return VecN{}, fmt.Errorf("VecN.Extend: %w: cannot demote dimension %d to %d", ErrRange, len(v.c), dim)
	}
	c := make([]float64, dim)
	copy(c, v.c)
	return VecN{c}, nil
}

func (v VecN) String() string {
	var sb strings.Builder
	sb.WriteString("⟨")
	for i, f := range v.c {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", f)
	}
	sb.WriteString("⟩")
	return sb.String()
}

func (v VecN) zip(op string, o VecN, fn func(a, b float64) float64) VecN {
	mustMatch(op, len(v.c), len(o.c))
	c := make([]float64, len(v.c))
	for i := range c {
		c[i] = fn(v.c[i], o.c[i])
	}
	return VecN{c}
}

func (v VecN) apply(fn func(a float64) float64) VecN {
	c := make([]float64, len(v.c))
	for i, f := range v.c {
		c[i] = fn(f)
	}
	return VecN{c}
}

// Add returns v+o. It panics if the dimensions differ.
func (v VecN) Add(o VecN) VecN {
	return v.zip("VecN.Add", o, func(a, b float64) float64 { return a + b })
}

// Sub returns v-o. It panics if the dimensions differ.
func (v VecN) Sub(o VecN) VecN {
	return v.zip("VecN.Sub", o, func(a, b float64) float64 { return a - b })
}

// Mul returns the componentwise product of v and o.
func (v VecN) Mul(o VecN) VecN {
	return v.zip("VecN.Mul", o, func(a, b float64) float64 { return a * b })
}

// Div returns the componentwise quotient of v and o.
func (v VecN) Div(o VecN) VecN {
	return v.zip("VecN.Div", o, func(a, b float64) float64 { return a / b })
}

func (v VecN) AddScalar(f float64) VecN {
	return v.apply(func(a float64) float64 { return a + f })
}

func (v VecN) SubScalar(f float64) VecN {
	return v.apply(func(a float64) float64 { return a - f })
}

// Scale returns v with every component multiplied by f.
func (v VecN) Scale(f float64) VecN {
	return v.apply(func(a float64) float64 { return a * f })
}

func (v VecN) DivScalar(f float64) VecN {
	return v.apply(func(a float64) float64 { return a / f })
}

// Neg returns a new vector with the signs of all components flipped.
func (v VecN) Neg() VecN {
	return v.Scale(-1)
}

// Pow returns v with every component raised to the power p.
func (v VecN) Pow(p float64) VecN {
	return v.apply(func(a float64) float64 { return math.Pow(a, p) })
}

// Dot returns the dot product of v and o. It panics if the dimensions differ.
func (v VecN) Dot(o VecN) float64 {
	mustMatch("VecN.Dot", len(v.c), len(o.c))
	var sum float64
	for i := range v.c {
		sum += v.c[i] * o.c[i]
	}
	return sum
}

// Pnorm returns the p-norm (Σ|xᵢ|ᵖ)^(1/p).
func (v VecN) Pnorm(p float64) float64 {
	var sum float64
	for _, f := range v.c {
		sum += math.Pow(math.Abs(f), p)
	}
	return math.Pow(sum, 1/p)
}

// Magnitude returns the euclidean norm of the vector.
func (v VecN) Magnitude() float64 {
	return v.Pnorm(2)
}

// Normalize returns a vector of magnitude 1 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v VecN) Normalize() VecN {
	return v.DivScalar(v.Magnitude())
}

// Reflect reflects v across the hyperplane described by normal, which
// doesn't need to be normalized.
func (v VecN) Reflect(normal VecN) VecN {
	n := normal.Normalize()
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Sum returns the sum of all components.
func (v VecN) Sum() float64 {
	var sum float64
	for _, f := range v.c {
		sum += f
	}
	return sum
}

func (v VecN) Max() float64 {
	out := math.Inf(-1)
	for _, f := range v.c {
		out = max(out, f)
	}
	return out
}

func (v VecN) Min() float64 {
	out := math.Inf(1)
	for _, f := range v.c {
		out = min(out, f)
	}
	return out
}

// Argmax returns the indices of all components equal to the maximum.
func (v VecN) Argmax() []int {
	return v.indicesOf(v.Max())
}

// Argmin returns the indices of all components equal to the minimum.
func (v VecN) Argmin() []int {
	return v.indicesOf(v.Min())
}

func (v VecN) indicesOf(f float64) []int {
	var out []int
	for i, x := range v.c {
		if x == f {
			out = append(out, i)
		}
	}
	return out
}

// Choose returns a new vector made of the components at the given indices, in
// order. Indices may repeat.
func (v VecN) Choose(indices ...int) (VecN, error) {
	if len(indices) == 0 {
		return VecN{}, fmt.Errorf("VecN.Choose: %w: no indices", ErrRange)
	}
	c := make([]float64, len(indices))
	for j, i := range indices {
		if i < 0 || i >= len(v.c) {
			return VecN{}, rangeError("VecN.Choose", i, len(v.c))
		}
		c[j] = v.c[i]
	}
	return VecN{c}, nil
}

// Concat returns a vector consisting of the components of v followed by
// those of each of os.
func (v VecN) Concat(os ...VecN) VecN {
	c := v.Slice()
	for _, o := range os {
		c = append(c, o.c...)
	}
	return VecN{c}
}

// Map returns fn applied to every component. Unlike [VecN.MapVec], the
// results may be arbitrary.
func (v VecN) Map(fn func(i int, f float64) float64) []float64 {
	out := make([]float64, len(v.c))
	for i, f := range v.c {
		out[i] = fn(i, f)
	}
	return out
}

// MapVec is like [VecN.Map] but returns a vector. It fails if fn produces a
// value that isn't finite.
func (v VecN) MapVec(fn func(i int, f float64) float64) (VecN, error) {
	c := v.Map(fn)
	if err := checkFinite("VecN.MapVec", c); err != nil {
		return VecN{}, err
	}
	return VecN{c}, nil
}

// Equal reports whether v and o have the same dimension and identical
// components.
func (v VecN) Equal(o VecN) bool {
	if len(v.c) != len(o.c) {
		return false
	}
	for i := range v.c {
		if v.c[i] != o.c[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether v and o have the same dimension and each pair
// of components differs by less than epsilon.
func (v VecN) ApproxEqual(o VecN, epsilon float64) bool {
	if len(v.c) != len(o.c) {
		return false
	}
	for i := range v.c {
		if !(math.Abs(v.c[i]-o.c[i]) < epsilon) {
			return false
		}
	}
	return true
}

// IsInf reports whether at least one component is infinite.
func (v VecN) IsInf() bool {
	for _, f := range v.c {
		if math.IsInf(f, 0) {
			return true
		}
	}
	return false
}

// IsNaN reports whether at least one component is NaN.
func (v VecN) IsNaN() bool {
	for _, f := range v.c {
		if math.IsNaN(f) {
			return true
		}
	}
	return false
}

// Add returns the sum of all vectors, which must have the same dimension.
func Add(vecs ...VecN) VecN {
	if len(vecs) == 0 {
		panic("called with no vectors")
	}
	out := Zero(vecs[0].Dim())
	for _, v := range vecs {
		out = out.zip("Add", v, func(a, b float64) float64 { return a + b })
	}
	return out
}

// Multiply returns the componentwise product of all vectors, which must have
// the same dimension.
func Multiply(vecs ...VecN) VecN {
	if len(vecs) == 0 {
		panic("called with no vectors")
	}
	out := Broadcast(vecs[0].Dim(), 1)
	for _, v := range vecs {
		out = out.zip("Multiply", v, func(a, b float64) float64 { return a * b })
	}
	return out
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp linearly interpolates between two vectors. t is clamped to [0, 1].
func Lerp(v1, v2 VecN, t float64) VecN {
	mustMatch("Lerp", v1.Dim(), v2.Dim())
	t = clamp01(t)
	// v1 + t * (v2-v1)
	return v1.Add(v2.Sub(v1).Scale(t))
}

// Slerp spherically interpolates between two vectors. The angle and the
// magnitude are interpolated independently. t is clamped to [0, 1].
func Slerp(v1, v2 VecN, t float64) VecN {
	mustMatch("Slerp", v1.Dim(), v2.Dim())
	t = clamp01(t)
	dot := max(-1, min(1, v1.Normalize().Dot(v2.Normalize())))
	th := math.Acos(dot) * t
	relative := v2.Sub(v1.Scale(dot)).Normalize()
	mag := v1.Magnitude() + (v2.Magnitude()-v1.Magnitude())*t
	sin, cos := math.Sincos(th)
	return v1.Scale(cos).Add(relative.Scale(sin)).Normalize().Scale(mag)
}
