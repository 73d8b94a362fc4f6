package layout

import "github.com/grindlemire/go-box3d/internal/geom"

var defaultAdapter Adapter = emptyAdapter{}

// emptyAdapter measures a node with no content as a box of size 1 on its
// component axes.
type emptyAdapter struct{}

func (emptyAdapter) Measure(node *Node, size, lo, hi geom.Vec3) geom.Bounds {
	for _, axis := range geom.Axes {
		if node.SizeType(axis) == SizeComponent {
			size.Set(axis, 1)
		}
	}
	return geom.NewBounds(geom.Zero, size.Clamp(lo, hi))
}

func (emptyAdapter) TryGetScale(*Node) (geom.Vec3, bool) {
	return geom.One, true
}

func (emptyAdapter) TryGetRectSize(*Node) (geom.Vec3, bool) {
	return geom.Zero, false
}

// ImmediateUpdater accepts every target as soon as it is computed.
// It is the engine's default TransformUpdater.
type ImmediateUpdater struct{}

func (ImmediateUpdater) PreUpdate(*Node)                      {}
func (ImmediateUpdater) UpdatePosition(*Node, geom.Vec3) bool { return true }
func (ImmediateUpdater) UpdateRotation(*Node, geom.Quat) bool { return true }
func (ImmediateUpdater) UpdateScale(*Node, geom.Vec3) bool    { return true }
func (ImmediateUpdater) UpdateRectSize(*Node, geom.Vec3) bool { return true }
