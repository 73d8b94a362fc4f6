package layout

import "github.com/grindlemire/go-box3d/internal/geom"

// Result holds the cached outcome of the last layout cycle for a node.
type Result struct {
	// AdapterBounds is the box measured by the adapter.
	AdapterBounds geom.Bounds

	// LayoutBounds is AdapterBounds offset by the strategy's content center.
	LayoutBounds geom.Bounds

	// RotatedAndScaledBounds is LayoutBounds after the node's own scale
	// and rotation. Parents lay the node out using this box.
	RotatedAndScaledBounds geom.Bounds

	// ComponentScale is the scale the adapter wants in layout space.
	ComponentScale geom.Vec3

	// FillSize is the space allocated to Fill axes by the parent.
	FillSize geom.Vec3

	// ShrinkSize is the clamped size when the parent had no room,
	// or geom.MaxVector when not shrunk.
	ShrinkSize geom.Vec3

	// LayoutPosition and LayoutRotation are what the parent strategy
	// (or the constraint) assigned, in the parent's layout space.
	LayoutPosition geom.Vec3
	LayoutRotation geom.Quat

	// Target* are the local transform values handed to the updater.
	TargetPosition geom.Vec3
	TargetRotation geom.Quat
	TargetScale    geom.Vec3
	TargetRectSize geom.Vec3

	// Transform* are the last values the updater accepted.
	TransformPosition geom.Vec3
	TransformRotation geom.Quat
	TransformScale    geom.Vec3
	TransformRectSize geom.Vec3
}

func newResult() Result {
	return Result{
		ComponentScale:    geom.One,
		ShrinkSize:        geom.MaxVector,
		LayoutRotation:    geom.Identity,
		TargetRotation:    geom.Identity,
		TargetScale:       geom.One,
		TransformRotation: geom.Identity,
		TransformScale:    geom.One,
	}
}
