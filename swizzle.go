package spline

import (
	"fmt"
	"math"
)

// Swizzle names. A single access must draw all of its names from one group.
var swizzleGroups = [...]string{"xyzw", "rgba", "stpq"}

// swizzleIndices maps every character of names to a component index. It
// reports false if names is empty or mixes groups.
func swizzleIndices(names string) ([]int, bool) {
	if names == "" {
		return nil, false
	}
outer:
	for _, group := range swizzleGroups {
		out := make([]int, 0, len(names))
		for i := 0; i < len(names); i++ {
			idx := -1
			for j := 0; j < len(group); j++ {
				if group[j] == names[i] {
					idx = j
					break
				}
			}
			if idx == -1 {
				continue outer
			}
			out = append(out, idx)
		}
		return out, true
	}
	return nil, false
}

// Get returns the component with the given name, which is one of x, y, z, w
// or their aliases r, g, b, a and s, t, p, q. It reports false if the name
// isn't valid for v, including when v has more than four dimensions.
func (v VecN) Get(name string) (float64, bool) {
	if len(name) != 1 {
		return 0, false
	}
	sw, ok := v.Swizzle(name)
	if !ok {
		return 0, false
	}
	return sw.c[0], true
}

// Swizzle returns a new vector whose components are taken from v in the order
// given by names. Names may repeat, so that, for example, "xxy" on ⟨1, 2⟩ is
// ⟨1, 1, 2⟩. It reports false if any name isn't valid for v.
func (v VecN) Swizzle(names string) (VecN, bool) {
	if len(v.c) > 4 {
		return VecN{}, false
	}
	indices, ok := swizzleIndices(names)
	if !ok {
		return VecN{}, false
	}
	c := make([]float64, len(indices))
	for j, i := range indices {
		if i >= len(v.c) {
			return VecN{}, false
		}
		c[j] = v.c[i]
	}
	return VecN{c}, true
}

// SetSwizzle assigns values to the components given by names, in order.
//
// The number of values must match the number of names, and a name may not
// appear more than once. If any name refers to a component beyond v's
// dimension, v is left unchanged and no error is returned.
func (v *VecN) SetSwizzle(names string, values ...float64) error {
	if len(v.c) > 4 {
		return fmt.Errorf("VecN.SetSwizzle: %w: dimension %d has no named components", ErrInvalidSwizzle, len(v.c))
	}
	indices, ok := swizzleIndices(names)
	if !ok {
		return fmt.Errorf("VecN.SetSwizzle: %w: %q", ErrInvalidSwizzle, names)
	}
	if len(values) != len(indices) {
		return fmt.Errorf("VecN.SetSwizzle: %w: %d values for %q", ErrDimensionMismatch, len(values), names)
	}
	for _, f := range values {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("VecN.SetSwizzle: %w: %v", ErrNotFinite, f)
		}
	}
	for _, i := range indices {
		if i >= len(v.c) {
			return nil
		}
	}
	var seen [4]bool
	for _, i := range indices {
		if seen[i] {
			return fmt.Errorf("VecN.SetSwizzle: %w: repeated name in %q", ErrInvalidSwizzle, names)
		}
		seen[i] = true
	}
	for j, i := range indices {
		v.c[i] = values[j]
	}
	return nil
}
