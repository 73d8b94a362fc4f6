package geom

import "math"

// MaxValue is the "unbounded" sentinel used for missing max sizes and
// unset shrink sizes. It is finite so arithmetic on it stays well defined.
const MaxValue = 999999.0

// MaxVector has MaxValue on every axis.
var MaxVector = Splat(MaxValue)

// Epsilon is the tolerance used by the approximate comparisons.
const Epsilon = 1e-5

// Approx reports whether a and b differ by less than Epsilon.
func Approx(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Clamp restricts v to [lo, hi]. If lo > hi, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if hi >= lo && v > hi {
		return hi
	}
	return v
}

// SafeDivZero divides component-wise, producing 0 where the divisor is 0.
func SafeDivZero(a, b Vec3) Vec3 {
	return Vec3{X: safeDiv(a.X, b.X, 0), Y: safeDiv(a.Y, b.Y, 0), Z: safeDiv(a.Z, b.Z, 0)}
}

// SafeDivOne divides component-wise, producing 1 where the divisor is 0.
func SafeDivOne(a, b Vec3) Vec3 {
	return Vec3{X: safeDiv(a.X, b.X, 1), Y: safeDiv(a.Y, b.Y, 1), Z: safeDiv(a.Z, b.Z, 1)}
}

func safeDiv(a, b, fallback float64) float64 {
	if b == 0 {
		return fallback
	}
	return a / b
}

// AlignOffset returns the position of an alignment point inside a span of
// the given size centered at 0.
func AlignOffset(size float64, align Align) float64 {
	switch align {
	case AlignStart:
		return -size * 0.5
	case AlignEnd:
		return size * 0.5
	default:
		return 0
	}
}

// AlignPivot returns the center of a child of childSize placed in a parent
// of parentSize, matching the parent's parentAlign point with the child's
// childAlign point.
func AlignPivot(childSize, parentSize float64, parentAlign, childAlign Align) float64 {
	return AlignOffset(parentSize, parentAlign) - AlignOffset(childSize, childAlign)
}

// AlignChild aligns childSize inside parentSize using the same alignment
// for parent and child.
func AlignChild(childSize, parentSize float64, align Align) float64 {
	return AlignPivot(childSize, parentSize, align, align)
}

// AlignAxis aligns on a single axis of two sizes.
func AlignAxis(childSize, parentSize Vec3, axis Axis, align Align) float64 {
	return AlignChild(childSize.At(axis), parentSize.At(axis), align)
}

// AlignBox aligns childSize inside parentSize on all three axes.
func AlignBox(childSize, parentSize Vec3, horizontal, vertical, depth Align) Vec3 {
	return Vec3{
		X: AlignChild(childSize.X, parentSize.X, horizontal),
		Y: AlignChild(childSize.Y, parentSize.Y, vertical),
		Z: AlignChild(childSize.Z, parentSize.Z, depth),
	}
}

// ComponentAxes reports, per axis, whether the size is driven by content.
type ComponentAxes [3]bool

// MeasureComponentBounds fits content bounds into a node whose size on the
// non-component axes is given by size. Component axes scale uniformly so the
// content keeps its aspect ratio, limited by min and max.
func MeasureComponentBounds(content Bounds, component ComponentAxes, size, lo, hi Vec3) Bounds {
	return measureComponent(content, component, size, lo, hi, 3)
}

// MeasureComponentBounds2D is MeasureComponentBounds restricted to X and Y;
// Z always takes the clamped size.
func MeasureComponentBounds2D(content Bounds, component ComponentAxes, size, lo, hi Vec3) Bounds {
	return measureComponent(content, component, size, lo, hi, 2)
}

func measureComponent(content Bounds, component ComponentAxes, size, lo, hi Vec3, dims int) Bounds {
	content.Size = content.Size.Max(Splat(0.0001))

	allComponent := true
	scale := math.MaxFloat64
	maxScale := math.MaxFloat64
	minScale := -math.MaxFloat64
	for i := 0; i < dims; i++ {
		axis := Axes[i]
		cs := content.Size.At(axis)
		if !component[axis] {
			allComponent = false
			scale = min(scale, size.At(axis)/cs)
		}
		maxScale = min(maxScale, hi.At(axis)/cs)
		minScale = max(minScale, lo.At(axis)/cs)
	}
	if allComponent {
		scale = 1
	}

	clampedScale := Clamp(scale, minScale, maxScale)
	clampedSize := size.Clamp(lo, hi)

	out := content
	for _, axis := range Axes {
		if int(axis) < dims && component[axis] {
			out.Size.Set(axis, content.Size.At(axis)*clampedScale)
		} else {
			out.Size.Set(axis, clampedSize.At(axis))
		}
	}
	out.Center = content.Center.Mul(out.Size.Div(content.Size))
	return out
}
