package layouts

import (
	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/grindlemire/go-box3d/internal/layout"
)

// OffsetModifier shifts every arranged child of a node by Offset.
type OffsetModifier struct {
	Offset geom.Vec3
}

// PostArrange implements layout.Modifier.
func (m *OffsetModifier) PostArrange(node *layout.Node) {
	for _, child := range node.LayoutChildren() {
		child.SetPositionResult(child.Result().LayoutPosition.Add(m.Offset))
	}
}
