package layouts

import (
	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/grindlemire/go-box3d/internal/layout"
)

// AlignConstraint positions a node against the world box of the node it
// depends on. Align picks the point on the target box and Pivot picks the
// matching point on the constrained node, per axis. The node also takes the
// target's rotation.
type AlignConstraint struct {
	HorizontalAlign geom.Align
	VerticalAlign   geom.Align
	DepthAlign      geom.Align

	HorizontalPivot geom.Align
	VerticalPivot   geom.Align
	DepthPivot      geom.Align
}

// NewAlignConstraint centers the node on its target.
func NewAlignConstraint() *AlignConstraint {
	return &AlignConstraint{
		HorizontalAlign: geom.AlignCenter,
		VerticalAlign:   geom.AlignCenter,
		DepthAlign:      geom.AlignCenter,
		HorizontalPivot: geom.AlignCenter,
		VerticalPivot:   geom.AlignCenter,
		DepthPivot:      geom.AlignCenter,
	}
}

// Constrain implements layout.Constraint.
func (c *AlignConstraint) Constrain(node *layout.Node) {
	target := node.Dependency()
	if target == nil {
		return
	}

	box, rotation := target.WorldBox(true)
	size := node.Result().RotatedAndScaledBounds.Size

	align := [3]geom.Align{c.HorizontalAlign, c.VerticalAlign, c.DepthAlign}
	pivot := [3]geom.Align{c.HorizontalPivot, c.VerticalPivot, c.DepthPivot}
	var local geom.Vec3
	for _, axis := range geom.Axes {
		local.Set(axis, geom.AlignPivot(size.At(axis), box.Size.At(axis), align[axis], pivot[axis]))
	}

	node.SetPositionResult(box.Center.Add(rotation.Rotate(local)))
	node.SetRotationResult(rotation)
}
