package layout

import "github.com/grindlemire/go-box3d/internal/geom"

// Strategy lays out the children of a node. The engine works entirely with
// this interface, enabling custom implementations.
type Strategy interface {
	// Measure computes the node's content bounds from its already measured
	// children. size is the space available to the children and min/max
	// bound it. Measure may hand allocations to children with
	// SetShrinkFillSize but must not touch nodes outside the subtree.
	Measure(node *Node, size, min, max geom.Vec3) geom.Bounds

	// Arrange assigns a position and rotation to each child with
	// SetPositionResult and SetRotationResult. layoutSize is the space
	// available to the children after padding.
	Arrange(node *Node, layoutSize geom.Vec3)
}

// Adapter measures externally owned content.
type Adapter interface {
	// Measure returns the node's bounds. size holds the resolved size on
	// every non-component axis; the adapter fills in the component axes.
	Measure(node *Node, size, min, max geom.Vec3) geom.Bounds

	// TryGetScale returns the scale the content needs in layout space, or
	// false if the node's scale should be left to the host.
	TryGetScale(node *Node) (geom.Vec3, bool)

	// TryGetRectSize returns a 2D rect size for hosts with rect transforms.
	TryGetRectSize(node *Node) (geom.Vec3, bool)
}

// Constraint positions a node relative to its dependency target.
type Constraint interface {
	Constrain(node *Node)
}

// Modifier post-processes a node after its strategy arranged the children.
type Modifier interface {
	PostArrange(node *Node)
}

// TransformUpdater moves the host's transform toward the computed target.
// Each Update method returns true once the target is reached; the engine
// keeps calling it on later cycles until then.
type TransformUpdater interface {
	PreUpdate(node *Node)
	UpdatePosition(node *Node, position geom.Vec3) bool
	UpdateRotation(node *Node, rotation geom.Quat) bool
	UpdateScale(node *Node, scale geom.Vec3) bool
	UpdateRectSize(node *Node, size geom.Vec3) bool
}
