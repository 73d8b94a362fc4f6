package layout

import "github.com/grindlemire/go-box3d/internal/geom"

// Option configures a Node.
type Option func(*Node)

// Apply applies opts and marks the node dirty once.
func (n *Node) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(n)
	}
	n.MarkDirty()
}

// --- Size Options ---

// WithSize sets the size on one axis.
func WithSize(axis geom.Axis, s Size) Option {
	return func(n *Node) {
		n.size[axis] = s
	}
}

// WithWidth sets the size on X.
func WithWidth(s Size) Option { return WithSize(geom.X, s) }

// WithHeight sets the size on Y.
func WithHeight(s Size) Option { return WithSize(geom.Y, s) }

// WithDepth sets the size on Z.
func WithDepth(s Size) Option { return WithSize(geom.Z, s) }

// WithFixedSize sets fixed sizes on all three axes.
func WithFixedSize(x, y, z float64) Option {
	return func(n *Node) {
		n.size = [3]Size{Fixed(x), Fixed(y), Fixed(z)}
	}
}

// WithMin sets the minimum on one axis.
func WithMin(axis geom.Axis, l Limit) Option {
	return func(n *Node) {
		n.minSize[axis] = l
	}
}

// WithMax sets the maximum on one axis.
func WithMax(axis geom.Axis, l Limit) Option {
	return func(n *Node) {
		n.maxSize[axis] = l
	}
}

// --- Spacing Options ---

// WithMargin sets the margin.
func WithMargin(d geom.Directions) Option {
	return func(n *Node) {
		n.margin = d
	}
}

// WithPadding sets the padding.
func WithPadding(d geom.Directions) Option {
	return func(n *Node) {
		n.padding = d
	}
}

// --- Transform Options ---

// WithOffset sets the post-layout translation.
func WithOffset(v geom.Vec3) Option {
	return func(n *Node) {
		n.offset = v
	}
}

// WithScale sets the node's own scale.
func WithScale(v geom.Vec3) Option {
	return func(n *Node) {
		n.scale = v
	}
}

// WithRotation sets the node's own rotation.
func WithRotation(q geom.Quat) Option {
	return func(n *Node) {
		n.rotation = q
	}
}

// --- Behavior Options ---

// WithStrategy assigns a layout strategy; see SetStrategy.
func WithStrategy(s Strategy) Option {
	return func(n *Node) {
		n.strategy = s
		if s == nil {
			return
		}
		for _, axis := range geom.Axes {
			if n.size[axis].kind == SizeComponent {
				n.size[axis] = FromLayout()
			}
		}
	}
}

// WithAdapter assigns a content adapter.
func WithAdapter(a Adapter) Option {
	return func(n *Node) {
		n.adapter = a
	}
}

// WithSkip excludes the node from its parent's strategy.
func WithSkip(skip bool) Option {
	return func(n *Node) {
		n.skip = skip
	}
}
