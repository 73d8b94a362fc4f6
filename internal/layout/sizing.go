package layout

import "github.com/grindlemire/go-box3d/internal/geom"

// SizeType returns the size kind declared on axis.
func (n *Node) SizeType(axis geom.Axis) SizeKind { return n.size[axis].kind }

// MinType returns the minimum kind declared on axis.
func (n *Node) MinType(axis geom.Axis) LimitKind { return n.minSize[axis].kind }

// MaxType returns the maximum kind declared on axis.
func (n *Node) MaxType(axis geom.Axis) LimitKind { return n.maxSize[axis].kind }

// FillFraction returns the fill fraction on axis, or false when the axis
// is not sized by Fill.
func (n *Node) FillFraction(axis geom.Axis) (float64, bool) {
	s := n.size[axis]
	if s.kind != SizeFill {
		return 0, false
	}
	return s.amount, true
}

// MinSize resolves the minimum on axis including margin.
func (n *Node) MinSize(axis geom.Axis, parentSize float64) float64 {
	return n.resolveMin(axis, parentSize, true)
}

// MaxSize resolves the maximum on axis including margin.
func (n *Node) MaxSize(axis geom.Axis, parentSize float64) float64 {
	return n.resolveMax(axis, parentSize, true)
}

// MinSizes resolves the minimum on every axis including margin.
func (n *Node) MinSizes(parentSize geom.Vec3) geom.Vec3 {
	return n.minSizes(parentSize, true)
}

// MaxSizes resolves the maximum on every axis including margin.
func (n *Node) MaxSizes(parentSize geom.Vec3) geom.Vec3 {
	return n.maxSizes(parentSize, true)
}

func (n *Node) minSizes(parentSize geom.Vec3, withMargin bool) geom.Vec3 {
	var out geom.Vec3
	for _, axis := range geom.Axes {
		out.Set(axis, n.resolveMin(axis, parentSize.At(axis), withMargin))
	}
	return out
}

func (n *Node) maxSizes(parentSize geom.Vec3, withMargin bool) geom.Vec3 {
	var out geom.Vec3
	for _, axis := range geom.Axes {
		out.Set(axis, n.resolveMax(axis, parentSize.At(axis), withMargin))
	}
	return out
}

func (n *Node) resolveMin(axis geom.Axis, parentSize float64, withMargin bool) float64 {
	margin := 0.0
	if withMargin {
		margin = n.margin.Size().At(axis)
	}

	l := n.minSize[axis]
	switch l.kind {
	case LimitFixed:
		return max(l.amount, 0) + margin
	case LimitFill:
		return max(l.amount*parentSize, 0)
	default:
		return margin
	}
}

func (n *Node) resolveMax(axis geom.Axis, parentSize float64, withMargin bool) float64 {
	margin := 0.0
	if withMargin {
		margin = n.margin.Size().At(axis)
	}

	l := n.maxSize[axis]
	switch l.kind {
	case LimitFixed:
		return max(l.amount, 0) + margin
	case LimitFill:
		return max(l.amount*parentSize, 0)
	default:
		return geom.MaxValue
	}
}

// CanShrink reports whether a parent may reduce the node below its
// measured size on axis: the axis must not be Fill and must have a minimum.
func (n *Node) CanShrink(axis geom.Axis) bool {
	return n.size[axis].kind != SizeFill && n.minSize[axis].kind != LimitNone
}

// IsShrunk reports whether a parent reduced the node on any axis.
func (n *Node) IsShrunk() bool {
	return n.result.ShrinkSize != geom.MaxVector
}

// axisIsFill reports whether any of size, min or max on axis depends on
// the parent's allocation.
func (n *Node) axisIsFill(axis geom.Axis) bool {
	return n.size[axis].kind == SizeFill ||
		n.minSize[axis].kind == LimitFill ||
		n.maxSize[axis].kind == LimitFill
}

func (n *Node) anyAxisIsFill() bool {
	return n.axisIsFill(geom.X) || n.axisIsFill(geom.Y) || n.axisIsFill(geom.Z)
}

func (n *Node) anyFillOrShrinkChanged() bool {
	for _, axis := range geom.Axes {
		if n.axisIsFill(axis) && n.fillChanged[axis] {
			return true
		}
		if n.CanShrink(axis) && n.shrinkChanged[axis] {
			return true
		}
	}
	return false
}

// MeasureSize returns the size the node wants in a parent of layoutSize,
// including margin and clamped to min and max. Fill axes want nothing
// until the parent allocates space.
func (n *Node) MeasureSize(layoutSize geom.Vec3) geom.Vec3 {
	var out geom.Vec3
	for _, axis := range geom.Axes {
		out.Set(axis, n.MeasureSizeAxis(axis, layoutSize.At(axis)))
	}
	return out
}

// MeasureSizeAxis is MeasureSize on a single axis.
func (n *Node) MeasureSizeAxis(axis geom.Axis, layoutSize float64) float64 {
	size := 0.0
	if n.size[axis].kind != SizeFill {
		size = n.result.RotatedAndScaledBounds.Size.At(axis) + n.margin.Size().At(axis)
	}
	return geom.Clamp(size, n.MinSize(axis, layoutSize), n.MaxSize(axis, layoutSize))
}

// ArrangeSize returns the measured box including margin.
func (n *Node) ArrangeSize() geom.Vec3 {
	return n.result.RotatedAndScaledBounds.Size.Add(n.margin.Size())
}

// SetShrinkFillSize hands the node an allocation of childSize on every
// axis inside a parent of layoutSize.
func (n *Node) SetShrinkFillSize(childSize, layoutSize geom.Vec3) {
	for _, axis := range geom.Axes {
		n.SetShrinkFillSizeAxis(axis, childSize.At(axis), layoutSize.At(axis), false)
	}
}

// SetShrinkFillSizeAxis hands the node an allocation on one axis. Fill axes
// take childSize as their fill size; when includesFraction is set,
// childSize already has the fill fraction applied and it is divided out.
// Axes with a minimum are shrunk to childSize if they measure larger.
func (n *Node) SetShrinkFillSizeAxis(axis geom.Axis, childSize, layoutSize float64, includesFraction bool) {
	if n.axisIsFill(axis) {
		fill := childSize
		if s := n.size[axis]; includesFraction && s.kind == SizeFill {
			fill = 0
			if s.amount > 0 {
				fill = childSize / s.amount
			}
		}
		n.setFillSizeAxis(axis, fill)
	}

	if n.minSize[axis].kind != LimitNone {
		if n.MeasureSizeAxis(axis, layoutSize) > childSize {
			n.setShrinkSizeAxis(axis, max(n.MinSize(axis, layoutSize), childSize))
		}
	}
}

func (n *Node) setFillSize(size geom.Vec3) {
	for _, axis := range geom.Axes {
		n.setFillSizeAxis(axis, size.At(axis))
	}
}

func (n *Node) setFillSizeAxis(axis geom.Axis, size float64) {
	n.fillChanged[axis] = n.fillChanged[axis] || n.result.FillSize.At(axis) != size
	n.result.FillSize.Set(axis, size)
}

func (n *Node) setShrinkSizeAxis(axis geom.Axis, size float64) {
	n.shrinkChanged[axis] = n.shrinkChanged[axis] || n.result.ShrinkSize.At(axis) != size
	n.result.ShrinkSize.Set(axis, size)
}

func (n *Node) resetShrinkFillSize() {
	n.result.ShrinkSize = geom.MaxVector
	n.result.FillSize = geom.Zero
}

func (n *Node) resetFillShrinkChanged() {
	n.fillChanged = [3]bool{}
	n.shrinkChanged = [3]bool{}
}

// SetPositionResult records the position a strategy or constraint
// assigned, in the parent's layout space.
func (n *Node) SetPositionResult(position geom.Vec3) {
	n.result.LayoutPosition = position
	n.positionUpdate = true
	n.updateDependents = true
}

// SetRotationResult records the rotation a strategy or constraint assigned.
func (n *Node) SetRotationResult(rotation geom.Quat) {
	n.result.LayoutRotation = rotation
	n.rotationUpdate = true
	n.updateDependents = true
}

// BoxScale returns the scale applied to the node's box. Roots whose
// adapter leaves scale to the host use the host's last committed scale.
func (n *Node) BoxScale() geom.Vec3 {
	if _, ok := n.Adapter().TryGetScale(n); !ok {
		return n.result.TransformScale.Abs()
	}
	return n.scale.Abs()
}

// BoxRotation returns the rotation applied to the node's box. The declared
// rotation only applies inside a layout; a root keeps the host rotation.
func (n *Node) BoxRotation() geom.Quat {
	if n.parent.Valid() || n.dependency.Valid() {
		return n.rotation
	}
	return n.result.TransformRotation
}

// WorldBoxScale returns the product of box scales up the parent chain.
func (n *Node) WorldBoxScale(includeLocal bool) geom.Vec3 {
	scale := geom.One
	if includeLocal {
		scale = n.BoxScale()
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		scale = scale.Mul(p.BoxScale())
	}
	return scale
}

func (n *Node) applyScaleAndRotation() {
	b := geom.ScaleBounds(n.result.LayoutBounds, n.BoxScale())
	n.result.RotatedAndScaledBounds = geom.RotateBounds(b, n.BoxRotation())
	n.sizeUpdate = true
	n.updateDependents = true
}
