package layouts

import (
	"github.com/grindlemire/go-box3d/internal/flex"
	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/grindlemire/go-box3d/internal/layout"
)

// Diagonal places each child after the previous one on all three axes at
// once, so the children climb diagonally through the node. It is the
// smallest useful strategy and a template for writing new ones.
type Diagonal struct {
	Gap geom.Vec3
}

// NewDiagonal returns a Diagonal with gap between neighbours on each axis.
func NewDiagonal(gap geom.Vec3) *Diagonal {
	return &Diagonal{Gap: gap}
}

// Measure implements layout.Strategy. Layout axes take the sum of the
// children plus gaps; fill and shrink children absorb the difference on
// the others.
func (d *Diagonal) Measure(node *layout.Node, size, lo, hi geom.Vec3) geom.Bounds {
	children := node.LayoutChildren()

	var used geom.Vec3
	for _, child := range children {
		used = used.Add(child.MeasureSize(size))
	}
	if len(children) > 1 {
		used = used.Add(d.Gap.Scale(float64(len(children) - 1)))
	}
	used = used.Clamp(lo, hi)

	for _, axis := range geom.Axes {
		if node.SizeType(axis) == layout.SizeLayout {
			size.Set(axis, used.At(axis))
		}
	}

	for _, axis := range geom.Axes {
		space, taken := size.At(axis), used.At(axis)
		if diff := space - taken; diff <= 1e-6 && diff >= -1e-6 {
			continue
		}

		items := make([]flex.Item, len(children))
		for i, child := range children {
			items[i] = flex.NewItem(child, axis, child.MeasureSizeAxis(axis, space), taken, space)
		}
		flex.GrowOrShrink(items, taken, space, d.Gap.At(axis))
		for i, child := range children {
			child.SetShrinkFillSizeAxis(axis, items[i].FinalSize, space, false)
		}
	}

	return geom.NewBounds(geom.Zero, size)
}

// Arrange implements layout.Strategy.
func (d *Diagonal) Arrange(node *layout.Node, layoutSize geom.Vec3) {
	next := layoutSize.Scale(-0.5)
	for _, child := range node.LayoutChildren() {
		size := child.ArrangeSize()
		child.SetPositionResult(next.Add(size.Scale(0.5)))
		child.SetRotationResult(geom.Identity)
		next = next.Add(size).Add(d.Gap)
	}
}
