package layout

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-box3d/internal/geom"
)

// Handle addresses a node in its engine's arena.
type Handle int32

// NoHandle is the zero relation: no parent, no dependency.
const NoHandle Handle = -1

// Valid reports whether h can refer to a node.
func (h Handle) Valid() bool { return h >= 0 }

// Node represents a box in the layout tree.
//
// Nodes are created by Engine.NodeFor and owned by their engine. Every
// setter marks the node dirty; results are recomputed on the next
// Engine.Update.
type Node struct {
	engine *Engine
	handle Handle
	entity any

	// Tree (owned) and dependency (weak) relations
	parent     Handle
	index      int
	children   []Handle
	dependency Handle
	dependents []Handle

	// Configuration (user-set)
	size     [3]Size
	minSize  [3]Limit
	maxSize  [3]Limit
	margin   geom.Directions
	padding  geom.Directions
	offset   geom.Vec3
	scale    geom.Vec3
	rotation geom.Quat
	skip     bool
	dragging bool

	strategy   Strategy
	adapter    Adapter
	constraint Constraint
	modifiers  []Modifier
	updater    TransformUpdater
	listeners  []func(*Node)
	properties map[any]any

	// Computed (set by layout engine)
	result Result

	// Internal state
	dirty            bool
	hasResult        bool
	positionUpdate   bool
	rotationUpdate   bool
	sizeUpdate       bool
	updateDependents bool
	reachedPosition  bool
	reachedRotation  bool
	reachedScale     bool
	reachedRectSize  bool
	fillChanged      [3]bool
	shrinkChanged    [3]bool
}

func newNode(e *Engine, h Handle, entity any) *Node {
	return &Node{
		engine:          e,
		handle:          h,
		entity:          entity,
		parent:          NoHandle,
		dependency:      NoHandle,
		scale:           geom.One,
		rotation:        geom.Identity,
		result:          newResult(),
		dirty:           true,
		reachedPosition: true,
		reachedRotation: true,
		reachedScale:    true,
		reachedRectSize: true,
	}
}

func (n *Node) String() string {
	return fmt.Sprintf("%v#%d", n.entity, n.handle)
}

// Handle returns the node's arena handle.
func (n *Node) Handle() Handle { return n.handle }

// Entity returns the external entity this node represents.
func (n *Node) Entity() any { return n.entity }

// Engine returns the engine that owns the node.
func (n *Node) Engine() *Engine { return n.engine }

// Parent returns the parent node, or nil for roots and dependents.
func (n *Node) Parent() *Node { return n.engine.Node(n.parent) }

// Index returns the node's position in its parent's children.
func (n *Node) Index() int { return n.index }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the child at index i.
func (n *Node) Child(i int) *Node { return n.engine.Node(n.children[i]) }

// Children returns the children in order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, h := range n.children {
		out = append(out, n.engine.nodes[h])
	}
	return out
}

// LayoutChildren returns the children the strategy should lay out:
// skipped and dragged children are left out.
func (n *Node) LayoutChildren() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, h := range n.children {
		if child := n.engine.nodes[h]; child.participates() {
			out = append(out, child)
		}
	}
	return out
}

func (n *Node) participates() bool {
	return !n.skip && !n.dragging
}

// Dependency returns the constraint target, or nil.
func (n *Node) Dependency() *Node { return n.engine.Node(n.dependency) }

// Dependents returns the nodes that depend on this node.
func (n *Node) Dependents() []*Node {
	out := make([]*Node, 0, len(n.dependents))
	for _, h := range n.dependents {
		out = append(out, n.engine.nodes[h])
	}
	return out
}

// IsRoot reports whether the node has neither a parent nor a dependency.
func (n *Node) IsRoot() bool {
	return !n.parent.Valid() && !n.dependency.Valid()
}

// Size returns the declared size on axis.
func (n *Node) Size(axis geom.Axis) Size { return n.size[axis] }

// Min returns the declared minimum on axis.
func (n *Node) Min(axis geom.Axis) Limit { return n.minSize[axis] }

// Max returns the declared maximum on axis.
func (n *Node) Max(axis geom.Axis) Limit { return n.maxSize[axis] }

func (n *Node) Margin() geom.Directions  { return n.margin }
func (n *Node) Padding() geom.Directions { return n.padding }
func (n *Node) Offset() geom.Vec3        { return n.offset }
func (n *Node) Scale() geom.Vec3         { return n.scale }
func (n *Node) Rotation() geom.Quat      { return n.rotation }
func (n *Node) Skip() bool               { return n.skip }
func (n *Node) Dragging() bool           { return n.dragging }
func (n *Node) Strategy() Strategy       { return n.strategy }
func (n *Node) Constraint() Constraint   { return n.constraint }

// Adapter returns the node's adapter, or the engine default.
func (n *Node) Adapter() Adapter {
	if n.adapter == nil {
		return defaultAdapter
	}
	return n.adapter
}

// TransformUpdater returns the node's updater, or the engine default.
func (n *Node) TransformUpdater() TransformUpdater {
	if n.updater == nil {
		return n.engine.updater
	}
	return n.updater
}

// Modifiers returns the attached modifiers in order.
func (n *Node) Modifiers() []Modifier { return slices.Clone(n.modifiers) }

// Result returns a copy of the cached result.
func (n *Node) Result() Result { return n.result }

// Dirty reports whether the node needs recalculation.
func (n *Node) Dirty() bool { return n.dirty }

// HasResult reports whether the node has been computed at least once.
func (n *Node) HasResult() bool { return n.hasResult }

// --- Declarative setters ---

// SetSize sets the size on one axis.
func (n *Node) SetSize(axis geom.Axis, s Size) {
	n.size[axis] = s
	n.MarkDirty()
}

// SetSizes sets the size on all three axes.
func (n *Node) SetSizes(x, y, z Size) {
	n.size = [3]Size{x, y, z}
	n.MarkDirty()
}

// SetMin sets the minimum on one axis.
func (n *Node) SetMin(axis geom.Axis, l Limit) {
	n.minSize[axis] = l
	n.MarkDirty()
}

// SetMax sets the maximum on one axis.
func (n *Node) SetMax(axis geom.Axis, l Limit) {
	n.maxSize[axis] = l
	n.MarkDirty()
}

// SetMargin sets the space around the node inside its parent.
func (n *Node) SetMargin(d geom.Directions) {
	n.margin = d
	n.MarkDirty()
}

// SetPadding sets the space between the node and its children.
func (n *Node) SetPadding(d geom.Directions) {
	n.padding = d
	n.MarkDirty()
}

// SetOffset sets a translation applied after layout.
func (n *Node) SetOffset(v geom.Vec3) {
	n.offset = v
	n.MarkDirty()
}

// SetScale sets the node's own scale.
func (n *Node) SetScale(v geom.Vec3) {
	n.scale = v
	n.MarkDirty()
}

// SetRotation sets the node's own rotation.
func (n *Node) SetRotation(q geom.Quat) {
	n.rotation = q
	n.MarkDirty()
}

// SetSkip excludes the node from its parent's strategy.
func (n *Node) SetSkip(skip bool) {
	n.skip = skip
	n.MarkDirty()
	if p := n.Parent(); p != nil {
		p.MarkDirty()
	}
}

// SetDragging marks the node as held by an external interaction. A dragging
// node is not recomputed and is left out of its parent's layout.
func (n *Node) SetDragging(dragging bool) {
	if n.dragging == dragging {
		return
	}
	n.dragging = dragging
	if p := n.Parent(); p != nil {
		p.MarkDirty()
	}
	if !dragging {
		n.MarkDirty()
	}
}

// SetStrategy assigns the layout strategy. Axes sized by Component become
// sized by the strategy, since the children now define the content.
func (n *Node) SetStrategy(s Strategy) {
	n.strategy = s
	if s != nil {
		for _, axis := range geom.Axes {
			if n.size[axis].kind == SizeComponent {
				n.size[axis] = FromLayout()
			}
		}
	}
	n.MarkDirty()
}

// SetAdapter overrides the content adapter. Nil restores the default.
func (n *Node) SetAdapter(a Adapter) {
	n.adapter = a
	n.MarkDirty()
}

// SetTransformUpdater overrides the updater. Nil restores the engine default.
func (n *Node) SetTransformUpdater(u TransformUpdater) {
	n.updater = u
	n.MarkDirty()
}

// SetConstraint assigns a constraint and its dependency target.
func (n *Node) SetConstraint(c Constraint, target *Node) {
	n.constraint = c
	n.SetDependency(target)
	n.MarkDirty()
}

// AddModifier attaches m, moving it to the end if already attached.
func (n *Node) AddModifier(m Modifier) {
	n.modifiers = slices.DeleteFunc(n.modifiers, func(o Modifier) bool { return o == m })
	n.modifiers = append(n.modifiers, m)
	n.MarkDirty()
}

// RemoveModifier detaches m.
func (n *Node) RemoveModifier(m Modifier) {
	n.modifiers = slices.DeleteFunc(n.modifiers, func(o Modifier) bool { return o == m })
	n.MarkDirty()
}

// SetProperty stores a layout property that the parent's strategy reads,
// such as a grid cell. Keys follow the context.WithValue convention: use an
// unexported key type per package. A nil value removes the property.
func (n *Node) SetProperty(key, value any) {
	if value == nil {
		delete(n.properties, key)
	} else {
		if n.properties == nil {
			n.properties = make(map[any]any)
		}
		n.properties[key] = value
	}
	n.MarkDirty()
}

// Property returns the property stored under key.
func (n *Node) Property(key any) (any, bool) {
	v, ok := n.properties[key]
	return v, ok
}

// OnResultChanged registers fn to run after every cycle that handed new
// targets to the node's updater.
func (n *Node) OnResultChanged(fn func(*Node)) {
	n.listeners = append(n.listeners, fn)
}

// --- Tree mutation ---

// AddChild appends children.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		n.InsertChild(child, len(n.children))
	}
}

// InsertChild inserts child at index, detaching it from any prior parent
// or dependency. index is clamped to the valid range.
func (n *Node) InsertChild(child *Node, index int) {
	if child.parent == n.handle && child.index == index {
		return
	}

	child.Detach()
	child.SetDependency(nil)

	index = max(0, min(index, len(n.children)))
	n.children = slices.Insert(n.children, index, child.handle)
	child.parent = n.handle
	n.reindex(index)
	n.engine.removeRoot(child.handle)

	child.MarkDirty()
	n.MarkDirty()
}

// Detach removes the node from its parent. The node becomes a root.
func (n *Node) Detach() {
	parent := n.Parent()
	if parent == nil {
		return
	}

	parent.MarkDirty()
	parent.children = slices.Delete(parent.children, n.index, n.index+1)
	parent.reindex(n.index)
	n.parent = NoHandle
	n.index = 0
	if !n.dependency.Valid() {
		n.engine.addRoot(n.handle)
	}
	n.MarkDirty()
}

// DetachAllChildren detaches every child, last first.
func (n *Node) DetachAllChildren() {
	for len(n.children) > 0 {
		n.engine.nodes[n.children[len(n.children)-1]].Detach()
	}
}

func (n *Node) reindex(from int) {
	for i := from; i < len(n.children); i++ {
		n.engine.nodes[n.children[i]].index = i
	}
}

// --- Dependencies ---

// SetDependency makes the node depend on target, detaching it from its
// parent. Nil clears the dependency. Cycles are not checked here; see
// Engine.CheckDependency.
func (n *Node) SetDependency(target *Node) {
	h := NoHandle
	if target != nil {
		h = target.handle
	}
	if n.dependency == h {
		return
	}

	if prev := n.Dependency(); prev != nil {
		prev.dependents = slices.DeleteFunc(prev.dependents, func(d Handle) bool { return d == n.handle })
	}

	n.dependency = h
	if target != nil {
		n.Detach()
		target.dependents = append(target.dependents, n.handle)
		n.engine.removeRoot(n.handle)
	} else if !n.parent.Valid() {
		n.engine.addRoot(n.handle)
	}
	n.MarkDirty()
}

// ClearDependents clears the dependency of every dependent.
func (n *Node) ClearDependents() {
	for len(n.dependents) > 0 {
		n.engine.nodes[n.dependents[len(n.dependents)-1]].SetDependency(nil)
	}
}

// --- Dirty propagation ---

// MarkDirty marks this node and all ancestors as needing recalculation.
// If the dependency target was never computed, it is marked too.
func (n *Node) MarkDirty() {
	if n.dirty {
		return
	}

	for node := n; node != nil; node = node.Parent() {
		node.dirty = true
		node.positionUpdate = true
		node.rotationUpdate = true
		node.sizeUpdate = true
	}

	if dep := n.Dependency(); dep != nil && !dep.hasResult {
		dep.MarkDirty()
	}
}

// markDirtyDown marks every descendant and dependent dirty.
func (n *Node) markDirtyDown() {
	for _, h := range n.children {
		child := n.engine.nodes[h]
		child.MarkDirty()
		child.markDirtyDown()
	}
	for _, h := range n.dependents {
		dep := n.engine.nodes[h]
		dep.MarkDirty()
		dep.markDirtyDown()
	}
}
