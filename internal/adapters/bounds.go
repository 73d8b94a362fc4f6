package adapters

import (
	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/grindlemire/go-box3d/internal/layout"
)

// maxComponentScale guards against content too small to scale sensibly.
const maxComponentScale = 1e5

// Bounds adapts content with externally measured bounds, such as a mesh.
// Component axes keep the content's aspect ratio; the content is scaled to
// fill whatever the node's other axes ask for.
type Bounds struct {
	content geom.Bounds
	flat    bool
}

// NewBounds returns an adapter for 3D content.
func NewBounds(content geom.Bounds) *Bounds {
	return &Bounds{content: content}
}

// NewFlatBounds returns an adapter for 2D content such as a sprite. Only X
// and Y keep the aspect ratio and depth is never scaled.
func NewFlatBounds(content geom.Bounds) *Bounds {
	return &Bounds{content: content, flat: true}
}

// Content returns the content bounds.
func (a *Bounds) Content() geom.Bounds { return a.content }

// SetContent replaces the content bounds and marks node dirty if they
// changed. It reports whether they changed.
func (a *Bounds) SetContent(node *layout.Node, content geom.Bounds) bool {
	if a.content == content {
		return false
	}
	a.content = content
	if node != nil {
		node.MarkDirty()
	}
	return true
}

// Measure implements layout.Adapter.
func (a *Bounds) Measure(node *layout.Node, size, lo, hi geom.Vec3) geom.Bounds {
	component := componentAxes(node)
	if a.flat {
		return geom.MeasureComponentBounds2D(a.content, component, size, lo, hi)
	}
	return geom.MeasureComponentBounds(a.content, component, size, lo, hi)
}

// TryGetScale implements layout.Adapter. The scale stretches the content to
// the measured box.
func (a *Bounds) TryGetScale(node *layout.Node) (geom.Vec3, bool) {
	if a.content.Size == geom.Zero {
		return geom.One, true
	}

	scale := geom.SafeDivOne(node.Result().AdapterBounds.Size, a.content.Size)
	for _, axis := range geom.Axes {
		if scale.At(axis) > maxComponentScale {
			scale.Set(axis, 1)
		}
	}
	if a.flat {
		scale.Z = 1
	}
	return scale, true
}

// TryGetRectSize implements layout.Adapter.
func (a *Bounds) TryGetRectSize(*layout.Node) (geom.Vec3, bool) {
	return geom.Zero, false
}

func componentAxes(node *layout.Node) geom.ComponentAxes {
	var out geom.ComponentAxes
	for _, axis := range geom.Axes {
		out[axis] = node.SizeType(axis) == layout.SizeComponent
	}
	return out
}
