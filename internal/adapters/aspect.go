package adapters

import (
	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/grindlemire/go-box3d/internal/layout"
)

// AspectRatio adapts a flat rectangle of a fixed width to height ratio.
// The host receives the measured box as a rect size instead of a scale.
type AspectRatio struct {
	Ratio float64
}

// NewAspectRatio returns an adapter for a rectangle width/height = ratio.
// A non-positive ratio is treated as square.
func NewAspectRatio(ratio float64) *AspectRatio {
	return &AspectRatio{Ratio: ratio}
}

func (a *AspectRatio) rect() geom.Bounds {
	ratio := a.Ratio
	if ratio <= 0 {
		ratio = 1
	}
	return geom.NewBounds(geom.Zero, geom.V3(ratio, 1, 0))
}

// Measure implements layout.Adapter.
func (a *AspectRatio) Measure(node *layout.Node, size, lo, hi geom.Vec3) geom.Bounds {
	component := componentAxes(node)
	if node.SizeType(geom.Z) == layout.SizeComponent {
		size.Z = 0
	}
	return geom.MeasureComponentBounds2D(a.rect(), component, size, lo, hi)
}

// TryGetScale implements layout.Adapter. Rectangles are resized, never
// scaled.
func (a *AspectRatio) TryGetScale(*layout.Node) (geom.Vec3, bool) {
	return geom.One, true
}

// TryGetRectSize implements layout.Adapter.
func (a *AspectRatio) TryGetRectSize(node *layout.Node) (geom.Vec3, bool) {
	return node.Result().AdapterBounds.Size, true
}
