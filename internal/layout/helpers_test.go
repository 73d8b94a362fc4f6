package layout

import (
	"fmt"

	"github.com/grindlemire/go-box3d/internal/geom"
)

// rowStrategy places children side by side along X, centered in the node.
// Fill children on X share what fixed children leave.
type rowStrategy struct {
	log *[]string
}

func (s rowStrategy) Measure(node *Node, size, lo, hi geom.Vec3) geom.Bounds {
	s.record("measure", node)

	children := node.LayoutChildren()
	var total geom.Vec3
	fixed, fractions := 0.0, 0.0
	for _, child := range children {
		m := child.MeasureSize(size)
		total.X += m.X
		total.Y = max(total.Y, m.Y)
		total.Z = max(total.Z, m.Z)
		if f, ok := child.FillFraction(geom.X); ok {
			fractions += f
		} else {
			fixed += m.X
		}
	}

	remaining := max(size.X-fixed, 0)
	for _, child := range children {
		if f, ok := child.FillFraction(geom.X); ok && fractions > 0 {
			child.SetShrinkFillSizeAxis(geom.X, remaining*f/fractions, size.X, true)
		}
		child.SetShrinkFillSizeAxis(geom.Y, size.Y, size.Y, false)
		child.SetShrinkFillSizeAxis(geom.Z, size.Z, size.Z, false)
	}

	out := size
	for _, axis := range geom.Axes {
		if node.SizeType(axis) == SizeLayout {
			out.Set(axis, geom.Clamp(total.At(axis), lo.At(axis), hi.At(axis)))
		}
	}
	return geom.NewBounds(geom.Zero, out)
}

func (s rowStrategy) Arrange(node *Node, layoutSize geom.Vec3) {
	s.record("arrange", node)

	children := node.LayoutChildren()
	used := 0.0
	for _, child := range children {
		used += child.ArrangeSize().X
	}
	x := -used / 2
	for _, child := range children {
		w := child.ArrangeSize().X
		child.SetPositionResult(geom.V3(x+w/2, 0, 0))
		child.SetRotationResult(geom.Identity)
		x += w
	}
}

func (s rowStrategy) record(op string, node *Node) {
	if s.log != nil {
		*s.log = append(*s.log, fmt.Sprintf("%s:%v", op, node.Entity()))
	}
}

// countingStrategy is a rowStrategy that counts Measure calls per entity.
type countingStrategy struct {
	rowStrategy
	measures map[any]int
}

func (s *countingStrategy) Measure(node *Node, size, lo, hi geom.Vec3) geom.Bounds {
	s.measures[node.Entity()]++
	return s.rowStrategy.Measure(node, size, lo, hi)
}

// offsetConstraint places the node at its target's world box center plus
// a fixed offset.
type offsetConstraint struct {
	offset geom.Vec3
	log    *[]string
}

func (c offsetConstraint) Constrain(node *Node) {
	if c.log != nil {
		*c.log = append(*c.log, fmt.Sprintf("constrain:%v", node.Entity()))
	}
	box, rot := node.Dependency().WorldBox(true)
	node.SetPositionResult(box.Center.Add(c.offset))
	node.SetRotationResult(rot)
}

// countingUpdater reaches a position target only after lag calls.
type countingUpdater struct {
	ImmediateUpdater
	lag       int
	positions int
}

func (u *countingUpdater) UpdatePosition(*Node, geom.Vec3) bool {
	u.positions++
	return u.positions > u.lag
}

type entity struct {
	name string
	dead bool
}

func (e *entity) Alive() bool    { return !e.dead }
func (e *entity) String() string { return e.name }

type modifierFunc func(*Node)

func (f *modifierFunc) PostArrange(n *Node) { (*f)(n) }

// snapshot copies every node's result keyed by entity.
func snapshot(e *Engine) map[any]Result {
	out := make(map[any]Result)
	for _, n := range e.Nodes() {
		out[n.Entity()] = n.Result()
	}
	return out
}

// placement is the part of a result that incremental updates must agree
// on with a full recompute.
type placement struct {
	position geom.Vec3
	size     geom.Vec3
}

func placements(e *Engine) map[any]placement {
	out := make(map[any]placement)
	for _, n := range e.Nodes() {
		out[n.Entity()] = placement{position: n.Result().LayoutPosition, size: n.ArrangeSize()}
	}
	return out
}
