package layout

import (
	"github.com/grindlemire/go-box3d/internal/debug"
	"github.com/grindlemire/go-box3d/internal/geom"
)

// compute runs the three passes on a dirty node, then pushes transforms
// to the updaters and recomputes the dependents.
func (e *Engine) compute(n *Node) {
	if n.dirty && !n.dragging {
		debug.Log("compute", "node", n)
		e.measureRoot(n)
		e.arrange(n)
		e.constrain(n)
	}

	if n.hasResult {
		e.computeTransforms(n)
		e.updateTransforms(n)
		e.computeDependents(n)
	}
}

func (e *Engine) computeDependents(n *Node) {
	if len(n.dependents) > 0 {
		fill := n.result.AdapterBounds.Size.Mul(n.WorldBoxScale(true))
		for _, h := range n.dependents {
			dep := e.nodes[h]
			dep.dirty = dep.dirty || n.updateDependents
			dep.setFillSize(fill)
			e.compute(dep)
		}
	}

	n.updateDependents = false
	for _, child := range n.LayoutChildren() {
		e.computeDependents(child)
	}
}

// childAvailableSize is the adapter box minus padding.
func childAvailableSize(n *Node) geom.Vec3 {
	return n.result.AdapterBounds.Size.Sub(n.padding.Size()).Max(geom.Zero)
}

func (e *Engine) measureRoot(n *Node) {
	lo := n.minSizes(geom.Zero, false)
	hi := n.maxSizes(geom.MaxVector, false)
	e.measure(n, lo, hi, true)
}

// measureChild measures a child before its parent has allocated space.
func (e *Engine) measureChild(n *Node, includeChildren bool) {
	lo := n.minSizes(geom.Zero, false)
	hi := n.maxSizes(geom.MaxVector, false)
	e.measure(n, lo, hi, includeChildren)
}

// measureChildIn measures a child against its parent's layout size,
// honoring any shrink allocation.
func (e *Engine) measureChildIn(n *Node, parentLayoutSize geom.Vec3) {
	lo := n.minSizes(parentLayoutSize, false)
	hi := n.result.ShrinkSize.Min(n.maxSizes(parentLayoutSize, false))
	e.measure(n, lo, hi, true)
}

func (e *Engine) measure(n *Node, lo, hi geom.Vec3, includeChildren bool) {
	if debug.Enabled() {
		debug.Log("measure", "node", n, "min", lo, "max", hi, "children", includeChildren)
	}

	// Start with whatever size is known now. Layout axes change once the
	// strategy has measured the children.
	e.measureAdapter(n, geom.Zero, n.declaredSize(), lo, hi)

	if includeChildren && n.strategy != nil {
		e.measureLayout(n, lo, hi)
	}

	n.applyScaleAndRotation()
}

// declaredSize resolves the size known before measuring children.
func (n *Node) declaredSize() geom.Vec3 {
	var out geom.Vec3
	margin := n.margin.Size()
	for _, axis := range geom.Axes {
		s := n.size[axis]
		switch s.kind {
		case SizeLayout:
			if n.strategy != nil {
				out.Set(axis, n.padding.Size().At(axis))
			}
		case SizeFill:
			inv := 0.0
			if sc := n.scale.At(axis); sc != 0 {
				inv = 1 / sc
			}
			out.Set(axis, n.result.FillSize.At(axis)*s.amount*inv-margin.At(axis))
		case SizeFixed:
			out.Set(axis, s.amount)
		}
	}
	return out
}

func (e *Engine) measureAdapter(n *Node, center, size, lo, hi geom.Vec3) {
	b := n.Adapter().Measure(n, size, lo, hi)
	n.result.AdapterBounds = b
	n.result.LayoutBounds = geom.NewBounds(b.Center.Add(center), b.Size)
}

// measureLayout measures the children in two phases: first without any
// allocation to gather fixed and content sizes, then fill and shrunk
// children against the resulting box. One refinement pass runs if any
// of those children changed size.
func (e *Engine) measureLayout(n *Node, lo, hi geom.Vec3) {
	children := n.LayoutChildren()

	// Sizes from the previous cycle. A child that ends the cycle at a
	// different size needs arranging even when nothing else marked it.
	before := make([]geom.Vec3, len(children))
	defer func() {
		for i, child := range children {
			if child.ArrangeSize() != before[i] {
				child.dirty = true
			}
			if child.dirty {
				n.dirty = true
			}
		}
	}()

	for i, child := range children {
		before[i] = child.ArrangeSize()
		wasShrunk := child.IsShrunk()
		child.resetShrinkFillSize()
		child.resetFillShrinkChanged()

		if child.anyAxisIsFill() {
			e.measureChild(child, false)
		} else if child.dirty || !child.hasResult || wasShrunk {
			e.measureChild(child, true)
		}
	}

	padding := n.padding.Size()
	available := childAvailableSize(n)
	minAvailable := lo.Sub(padding).Max(geom.Zero)
	maxAvailable := hi.Sub(padding).Max(geom.Zero)
	available = available.Clamp(minAvailable, maxAvailable)

	bounds := n.strategy.Measure(n, available, minAvailable, maxAvailable)
	if debug.Enabled() {
		debug.Log("measure layout", "node", n, "pass", 1, "bounds", bounds)
	}
	e.measureAdapter(n, bounds.Center, bounds.Size.Add(padding), lo, hi)

	changed := false
	for _, child := range children {
		if !child.anyAxisIsFill() && !child.IsShrunk() {
			continue
		}

		prev := child.ArrangeSize()
		e.measureChildIn(child, bounds.Size)
		if prev != child.ArrangeSize() {
			changed = true
			child.dirty = true
		}
		child.resetFillShrinkChanged()
	}

	if !changed {
		return
	}

	bounds = n.strategy.Measure(n, available, minAvailable, maxAvailable)
	if debug.Enabled() {
		debug.Log("measure layout", "node", n, "pass", 2, "bounds", bounds)
	}
	e.measureAdapter(n, bounds.Center, bounds.Size.Add(padding), lo, hi)

	// Last pass: children whose allocation moved again are measured once
	// more and left at that size.
	for _, child := range children {
		if child.anyFillOrShrinkChanged() {
			e.measureChildIn(child, bounds.Size)
			child.dirty = true
		}
	}
}

func (e *Engine) arrange(n *Node) {
	n.dirty = false
	n.hasResult = true
	n.SetPositionResult(geom.Zero)
	n.SetRotationResult(geom.Identity)

	children := n.LayoutChildren()
	if len(children) == 0 || n.strategy == nil {
		return
	}

	if debug.Enabled() {
		debug.Log("arrange", "node", n, "size", n.result.AdapterBounds.Size)
	}

	for _, child := range children {
		if child.dirty {
			e.arrange(child)
		}
	}

	n.strategy.Arrange(n, childAvailableSize(n))

	for _, m := range n.modifiers {
		m.PostArrange(n)
	}
}

func (e *Engine) constrain(n *Node) {
	if n.constraint != nil {
		debug.Log("constrain", "node", n)
		n.constraint.Constrain(n)
	}
}
