package layout

import (
	"github.com/grindlemire/go-box3d/internal/debug"
	"github.com/grindlemire/go-box3d/internal/geom"
)

func (e *Engine) computeScale(n *Node) {
	componentScale, ok := n.Adapter().TryGetScale(n)
	n.result.ComponentScale = componentScale
	if !ok {
		n.reachedScale = true
		return
	}

	scale := componentScale
	if p := n.Parent(); p != nil {
		scale = geom.SafeDivOne(scale, p.result.ComponentScale)
	}
	n.result.TargetScale = scale.Mul(n.scale)
	n.reachedScale = false
}

func (e *Engine) computeRectSize(n *Node) {
	if size, ok := n.Adapter().TryGetRectSize(n); ok {
		n.result.TargetRectSize = size
		n.reachedRectSize = false
		return
	}
	n.reachedRectSize = true
}

// computeTransforms turns layout results into local target transforms.
// A root's own position and rotation belong to the host.
func (e *Engine) computeTransforms(n *Node) {
	if n.sizeUpdate {
		n.sizeUpdate = false
		e.computeScale(n)
		e.computeRectSize(n)
		for _, child := range n.LayoutChildren() {
			child.sizeUpdate = true
		}
	}

	switch parent := n.Parent(); {
	case n.dependency.Valid():
		if n.positionUpdate {
			n.result.TargetPosition = n.result.LayoutPosition
			n.reachedPosition = false
		}
		if n.rotationUpdate {
			n.result.TargetRotation = n.result.LayoutRotation.Mul(n.rotation)
			n.reachedRotation = false
		}

	case parent != nil:
		if n.rotationUpdate {
			n.result.TargetRotation = n.result.LayoutRotation.Mul(n.rotation)
			n.reachedRotation = false
		}
		if n.positionUpdate {
			pos := n.result.LayoutPosition.
				Sub(parent.padding.Center()).
				Add(parent.result.AdapterBounds.Center).
				Sub(n.margin.Center()).
				Sub(n.result.TargetRotation.Rotate(n.result.RotatedAndScaledBounds.Center)).
				Add(n.offset)
			n.result.TargetPosition = geom.SafeDivZero(pos, parent.result.ComponentScale)
			n.reachedPosition = false
		}

	default:
		n.reachedPosition = true
		n.reachedRotation = true
	}

	n.positionUpdate = false
	n.rotationUpdate = false

	n.TransformUpdater().PreUpdate(n)

	for _, child := range n.LayoutChildren() {
		e.computeTransforms(child)
	}
}

// updateTransforms hands unreached targets to the updater. A change to a
// node's transform invalidates what its children reached, so they are
// asked again.
func (e *Engine) updateTransforms(n *Node) {
	u := n.TransformUpdater()
	children := n.LayoutChildren()
	changed := !n.Settled()

	if !n.reachedPosition {
		n.reachedPosition = u.UpdatePosition(n, n.result.TargetPosition)
		if n.reachedPosition {
			n.result.TransformPosition = n.result.TargetPosition
		}
		for _, child := range children {
			child.reachedPosition = false
		}
	}

	if !n.reachedRotation {
		n.reachedRotation = u.UpdateRotation(n, n.result.TargetRotation)
		if n.reachedRotation {
			n.result.TransformRotation = n.result.TargetRotation
		}
		for _, child := range children {
			child.reachedRotation = false
		}
	}

	if !n.reachedScale {
		n.reachedScale = u.UpdateScale(n, n.result.TargetScale)
		if n.reachedScale {
			n.result.TransformScale = n.result.TargetScale
		}
		for _, child := range children {
			child.reachedScale = false
		}
	}

	if !n.reachedRectSize {
		n.reachedRectSize = u.UpdateRectSize(n, n.result.TargetRectSize)
		if n.reachedRectSize {
			n.result.TransformRectSize = n.result.TargetRectSize
		}
	}

	if debug.Enabled() {
		debug.Log("transform", "node", n, "position", n.result.TargetPosition, "scale", n.result.TargetScale)
	}

	if changed {
		for _, fn := range n.listeners {
			fn(n)
		}
	}

	for _, child := range children {
		e.updateTransforms(child)
	}
}

// Settled reports whether the updater has reached every target for n.
func (n *Node) Settled() bool {
	return n.reachedPosition && n.reachedRotation && n.reachedScale && n.reachedRectSize
}

// WorldTransform composes the committed local targets up the parent chain.
// Roots contribute the host position and rotation last accepted for them.
func (n *Node) WorldTransform() (position geom.Vec3, rotation geom.Quat, scale geom.Vec3) {
	r := &n.result
	parent := n.Parent()
	if parent == nil {
		if n.dependency.Valid() {
			return r.TargetPosition, r.TargetRotation, r.TargetScale
		}
		return r.TransformPosition, r.TransformRotation, r.TargetScale
	}

	pp, pr, ps := parent.WorldTransform()
	position = pp.Add(pr.Rotate(ps.Mul(r.TargetPosition)))
	rotation = pr.Mul(r.TargetRotation)
	scale = ps.Mul(r.TargetScale)
	return position, rotation, scale
}

// SetHostTransform records where the host placed a root node. The world
// boxes of its subtree move with it, and nodes constrained to them are
// recomputed on the next Update. Nodes with a parent or a dependency
// ignore it.
func (n *Node) SetHostTransform(position geom.Vec3, rotation geom.Quat) {
	if n.Parent() != nil || n.dependency.Valid() {
		return
	}
	n.result.TransformPosition = position
	n.result.TransformRotation = rotation
	n.invalidateDependents()
}

func (n *Node) invalidateDependents() {
	n.updateDependents = true
	for _, child := range n.LayoutChildren() {
		child.invalidateDependents()
	}
}

// WorldBox returns the node's layout box in world space, with the padding
// removed from the center when withoutPadding is set. The size is the
// adapter box under the world box scale.
func (n *Node) WorldBox(withoutPadding bool) (geom.Bounds, geom.Quat) {
	position, rotation, _ := n.WorldTransform()
	scale := n.WorldBoxScale(true)

	center := n.result.LayoutBounds.Center
	if withoutPadding {
		center = center.Sub(n.padding.Center())
	}
	center = rotation.Rotate(center.Mul(scale)).Add(position)
	return geom.NewBounds(center, n.result.AdapterBounds.Size.Mul(scale)), rotation
}
