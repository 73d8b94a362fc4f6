package layout

import (
	"errors"
	"slices"

	"github.com/grindlemire/go-box3d/internal/debug"
	"github.com/grindlemire/go-box3d/internal/geom"
)

var (
	// ErrSelfDependency is returned when a node would depend on itself.
	ErrSelfDependency = errors.New("node cannot depend on itself")

	// ErrCyclicDependency is returned when a dependency would close a cycle
	// through dependency edges or ancestors.
	ErrCyclicDependency = errors.New("dependency would create a cycle")
)

// Aliver is implemented by entities that can report their own destruction.
// Engine.Update destroys the nodes of entities that are no longer alive.
type Aliver interface {
	Alive() bool
}

// RootSizer returns the space available to a root node. It drives the
// root's Fill axes.
type RootSizer func(root *Node) geom.Vec3

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRootSizer sets the available space for roots. Default is (1, 1, 1).
func WithRootSizer(fn RootSizer) EngineOption {
	return func(e *Engine) {
		e.rootSizer = fn
	}
}

// WithTransformUpdater sets the updater used by nodes without their own.
// Default is ImmediateUpdater.
func WithTransformUpdater(u TransformUpdater) EngineOption {
	return func(e *Engine) {
		if u != nil {
			e.updater = u
		}
	}
}

// Engine drives layout for a set of node trees. An Engine is not safe for
// concurrent use; independent engines may run on separate goroutines.
type Engine struct {
	nodes    []*Node
	entities map[any]Handle
	roots    []Handle
	pending  []Handle

	rootSizer RootSizer
	updater   TransformUpdater
	preUpdate []func()
}

// NewEngine creates an empty engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		entities:  make(map[any]Handle),
		rootSizer: func(*Node) geom.Vec3 { return geom.One },
		updater:   ImmediateUpdater{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NodeFor returns the node for entity, creating a root node on first use.
// entity must be comparable.
func (e *Engine) NodeFor(entity any) *Node {
	if h, ok := e.entities[entity]; ok {
		return e.nodes[h]
	}

	h := Handle(len(e.nodes))
	n := newNode(e, h, entity)
	e.nodes = append(e.nodes, n)
	e.entities[entity] = h
	e.roots = append(e.roots, h)
	return n
}

// Lookup returns the node for entity without creating one.
func (e *Engine) Lookup(entity any) (*Node, bool) {
	h, ok := e.entities[entity]
	if !ok {
		return nil, false
	}
	return e.nodes[h], true
}

// Node returns the node at h, or nil if h is invalid or destroyed.
// Handles are never reused within an engine.
func (e *Engine) Node(h Handle) *Node {
	if !h.Valid() || int(h) >= len(e.nodes) {
		return nil
	}
	return e.nodes[h]
}

// Nodes returns every live node in creation order.
func (e *Engine) Nodes() []*Node {
	out := make([]*Node, 0, len(e.entities))
	for _, n := range e.nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Roots returns the root nodes in the order they became roots.
func (e *Engine) Roots() []*Node {
	out := make([]*Node, 0, len(e.roots))
	for _, h := range e.roots {
		out = append(out, e.nodes[h])
	}
	return out
}

// Destroy detaches the node for entity from its parent, children,
// dependency and dependents and forgets it. Unknown entities are ignored.
// The handle's slot stays empty so that stale handles resolve to nil; an
// engine that churns entities grows by one pointer per node ever created.
func (e *Engine) Destroy(entity any) {
	h, ok := e.entities[entity]
	if !ok {
		return
	}
	n := e.nodes[h]
	debug.Log("destroy", "node", n)

	n.Detach()
	n.DetachAllChildren()
	n.SetDependency(nil)
	n.ClearDependents()

	e.removeRoot(h)
	e.pending = slices.DeleteFunc(e.pending, func(p Handle) bool { return p == h })
	delete(e.entities, entity)
	e.nodes[h] = nil
}

// OnPreUpdate registers fn to run at the start of every Update.
func (e *Engine) OnPreUpdate(fn func()) {
	e.preUpdate = append(e.preUpdate, fn)
}

// RequestUpdate queues n to be marked dirty on the next Update.
func (e *Engine) RequestUpdate(n *Node) {
	e.pending = append(e.pending, n.handle)
}

// ForceUpdate marks n, its subtree and its dependents dirty and runs an
// update cycle immediately.
func (e *Engine) ForceUpdate(n *Node) {
	n.MarkDirty()
	n.markDirtyDown()
	e.Update()
}

// ForceUpdateAll recomputes every tree immediately.
func (e *Engine) ForceUpdateAll() {
	for _, h := range e.roots {
		root := e.nodes[h]
		root.MarkDirty()
		root.markDirtyDown()
	}
	e.Update()
}

// Update runs one layout cycle: pending requests are applied, nodes of
// dead entities are destroyed, and every dirty root is measured, arranged
// and constrained before transforms are handed to the updaters.
func (e *Engine) Update() {
	for _, fn := range e.preUpdate {
		fn()
	}

	for _, h := range e.pending {
		if n := e.Node(h); n != nil {
			n.MarkDirty()
		}
	}
	e.pending = e.pending[:0]

	e.sweep()

	for _, h := range slices.Clone(e.roots) {
		root := e.Node(h)
		if root == nil || root.dependency.Valid() {
			continue
		}
		e.updateRootFillSize(root)
		e.compute(root)
	}
}

func (e *Engine) sweep() {
	var dead []any
	for _, n := range e.nodes {
		if n == nil {
			continue
		}
		if a, ok := n.entity.(Aliver); ok && !a.Alive() {
			dead = append(dead, n.entity)
		}
	}
	for _, entity := range dead {
		e.Destroy(entity)
	}
}

func (e *Engine) updateRootFillSize(root *Node) {
	size := e.rootSizer(root)
	if size != root.result.FillSize {
		debug.Log("root fill size", "node", root, "size", size)
		root.setFillSize(size)
		root.MarkDirty()
	}
}

// CheckDependency reports whether making node depend on target would
// create a self dependency or a cycle. Walking up from target through
// dependency and parent edges must never reach node.
func (e *Engine) CheckDependency(node, target *Node) error {
	if target == nil {
		return nil
	}
	if node == target {
		return ErrSelfDependency
	}

	seen := make(map[Handle]bool)
	stack := []*Node{target}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == node {
			return ErrCyclicDependency
		}
		if seen[cur.handle] {
			continue
		}
		seen[cur.handle] = true

		if p := cur.Parent(); p != nil {
			stack = append(stack, p)
		}
		if d := cur.Dependency(); d != nil {
			stack = append(stack, d)
		}
	}
	return nil
}

func (e *Engine) addRoot(h Handle) {
	if !slices.Contains(e.roots, h) {
		e.roots = append(e.roots, h)
	}
}

func (e *Engine) removeRoot(h Handle) {
	e.roots = slices.DeleteFunc(e.roots, func(r Handle) bool { return r == h })
}
