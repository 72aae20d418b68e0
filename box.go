package spline

import (
	"fmt"
	"math"
)

// Box is an axis-aligned box, described by its minimum and maximum corners.
// Both corners must have the same dimension.
type Box struct {
	Min, Max VecN
}

// NewBoxFromPoints returns the smallest box containing p0 and p1, ensuring that
// Min is less than or equal to Max along every axis.
func NewBoxFromPoints(p0, p1 VecN) Box {
	mustMatch("NewBoxFromPoints", p0.Dim(), p1.Dim())
	return Box{
		Min: p0.zip("NewBoxFromPoints", p1, math.Min),
		Max: p0.zip("NewBoxFromPoints", p1, math.Max),
	}
}

func (b Box) Dim() int { return b.Min.Dim() }

// Abs returns a new box with the same extents as b, but ensuring that Min is
// less than or equal to Max along every axis.
func (b Box) Abs() Box {
	return NewBoxFromPoints(b.Min, b.Max)
}

// Size returns the extent of the box along every axis.
func (b Box) Size() VecN {
	return b.Max.Sub(b.Min)
}

func (b Box) Center() VecN {
	return Lerp(b.Min, b.Max, 0.5)
}

// Contains reports whether pt lies inside the box or on its boundary.
func (b Box) Contains(pt VecN) bool {
	mustMatch("Box.Contains", b.Dim(), pt.Dim())
	for i, f := range pt.c {
		if !(f >= b.Min.c[i] && f <= b.Max.c[i]) {
			return false
		}
	}
	return true
}

// Union returns the smallest box enclosing b and o.
//
// Results are valid only if both boxes have non-negative extents.
func (b Box) Union(o Box) Box {
	return Box{
		Min: b.Min.zip("Box.Union", o.Min, math.Min),
		Max: b.Max.zip("Box.Union", o.Max, math.Max),
	}
}

// UnionPoint computes the union with one point. A succession of UnionPoint
// operations on a series of points yields their enclosing box.
func (b Box) UnionPoint(pt VecN) Box {
	return Box{
		Min: b.Min.zip("Box.UnionPoint", pt, math.Min),
		Max: b.Max.zip("Box.UnionPoint", pt, math.Max),
	}
}

// Intersect returns the intersection of two boxes.
//
// The result always has non-negative extents. It is empty along the axes on
// which the boxes don't overlap.
func (b Box) Intersect(o Box) Box {
	lo := b.Min.zip("Box.Intersect", o.Min, math.Max)
	hi := b.Max.zip("Box.Intersect", o.Max, math.Min)
	return Box{Min: lo, Max: lo.zip("Box.Intersect", hi, math.Max)}
}

// Inflate expands the box by amount in every direction. Negative amounts
// shrink it.
func (b Box) Inflate(amount float64) Box {
	return Box{
		Min: b.Min.SubScalar(amount),
		Max: b.Max.AddScalar(amount),
	}
}

func (b Box) Translate(v VecN) Box {
	return Box{
		Min: b.Min.Add(v),
		Max: b.Max.Add(v),
	}
}

// Volume returns the product of the box's extents. For two-dimensional
// boxes this is the area.
func (b Box) Volume() float64 {
	vol := 1.0
	for _, f := range b.Size().c {
		vol *= f
	}
	return vol
}

func (b Box) IsInf() bool {
	return b.Min.IsInf() || b.Max.IsInf()
}

func (b Box) IsNaN() bool {
	return b.Min.IsNaN() || b.Max.IsNaN()
}

func (b Box) String() string {
	return fmt.Sprintf("Box{%v, %v}", b.Min, b.Max)
}
