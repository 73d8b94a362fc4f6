package layout

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

// newRow builds a root row of the given fixed size with one child per
// option set.
func newRow(e *Engine, name string, size geom.Vec3, children ...[]Option) (*Node, []*Node) {
	root := e.NodeFor(name)
	root.Apply(WithFixedSize(size.X, size.Y, size.Z), WithStrategy(rowStrategy{}))

	nodes := make([]*Node, len(children))
	for i, opts := range children {
		child := e.NodeFor(name + "/" + string(rune('a'+i)))
		child.Apply(opts...)
		root.AddChild(child)
		nodes[i] = child
	}
	return root, nodes
}

func TestEngine_FillDistribution(t *testing.T) {
	e := NewEngine()
	_, children := newRow(e, "root", geom.V3(400, 10, 10),
		[]Option{WithWidth(Fill(1))},
		[]Option{WithWidth(Fill(1))},
		[]Option{WithWidth(Fill(2))},
	)

	e.Update()

	wantSize := []float64{100, 100, 200}
	wantPos := []float64{-150, -50, 100}
	for i, child := range children {
		assert.InDelta(t, wantSize[i], child.ArrangeSize().X, delta, "child %d size", i)
		assert.InDelta(t, wantPos[i], child.Result().TargetPosition.X, delta, "child %d position", i)
		assert.False(t, child.Dirty(), "child %d dirty", i)
	}
}

func TestEngine_LayoutAxesWrapChildren(t *testing.T) {
	e := NewEngine()
	root := e.NodeFor("root")
	root.SetStrategy(rowStrategy{})
	for i, w := range []float64{3, 4, 5} {
		child := e.NodeFor(i)
		child.Apply(WithFixedSize(w, float64(i+1), 1))
		root.AddChild(child)
	}
	root.SetPadding(geom.DirectionsAll(1))

	e.Update()

	assert.Equal(t, geom.V3(14, 5, 3), root.Result().AdapterBounds.Size)
}

func TestEngine_DirtyPropagation(t *testing.T) {
	e := NewEngine()
	root := e.NodeFor("root")
	root.SetStrategy(rowStrategy{})

	c1, c2 := e.NodeFor("c1"), e.NodeFor("c2")
	g1, g2 := e.NodeFor("g1"), e.NodeFor("g2")
	c1.SetStrategy(rowStrategy{})
	c2.SetStrategy(rowStrategy{})
	root.AddChild(c1, c2)
	c1.AddChild(g1)
	c2.AddChild(g2)

	e.Update()
	for _, n := range e.Nodes() {
		require.False(t, n.Dirty(), "%v dirty after update", n)
	}

	g1.SetSize(geom.X, Fixed(3))

	assert.True(t, g1.Dirty())
	assert.True(t, c1.Dirty())
	assert.True(t, root.Dirty())
	assert.False(t, c2.Dirty())
	assert.False(t, g2.Dirty())

	e.Update()
	assert.InDelta(t, 3.0, g1.ArrangeSize().X, delta)
	assert.InDelta(t, 4.0, root.Result().AdapterBounds.Size.X, delta)
}

func TestEngine_Idempotent(t *testing.T) {
	e := NewEngine(WithRootSizer(func(*Node) geom.Vec3 { return geom.V3(300, 50, 10) }))
	root, _ := newRow(e, "root", geom.V3(120, 10, 10),
		[]Option{WithWidth(Fill(1)), WithMargin(geom.DirectionsSymmetric(1, 0, 0))},
		[]Option{WithFixedSize(20, 5, 5), WithMin(geom.X, FixedLimit(10))},
		[]Option{WithWidth(Fill(0.5)), WithRotation(geom.AxisAngle(geom.V3(0, 0, 1), 30))},
	)
	root.SetPadding(geom.DirectionsAll(2))

	e.Update()
	first := snapshot(e)

	e.Update()
	assert.Equal(t, first, snapshot(e), "update without mutation")

	e.ForceUpdateAll()
	assert.Equal(t, first, snapshot(e), "forced recompute")
}

func TestEngine_RequestUpdateIsDeferred(t *testing.T) {
	e := NewEngine()
	root, children := newRow(e, "root", geom.V3(10, 10, 10), []Option{WithFixedSize(2, 2, 2)})
	e.Update()

	calls := 0
	children[0].OnResultChanged(func(*Node) { calls++ })

	e.RequestUpdate(children[0])
	assert.False(t, children[0].Dirty(), "request must not mark dirty immediately")
	assert.False(t, root.Dirty())

	e.Update()
	assert.Equal(t, 1, calls)
	assert.False(t, children[0].Dirty())

	e.Update()
	assert.Equal(t, 1, calls, "listeners only run when targets were pushed")
}

func TestEngine_ForceUpdateRunsSynchronously(t *testing.T) {
	e := NewEngine()
	root, children := newRow(e, "root", geom.V3(10, 10, 10), []Option{WithFixedSize(2, 2, 2)})
	e.Update()

	var log []string
	root.SetStrategy(rowStrategy{log: &log})
	e.Update()
	log = log[:0]

	e.ForceUpdate(children[0])
	assert.Equal(t, []string{"measure:root", "arrange:root"}, log)
	assert.False(t, root.Dirty())
}

func TestEngine_DependencyOrdering(t *testing.T) {
	var log []string
	e := NewEngine()

	// b is created first so it precedes a in creation order
	b := e.NodeFor("b")
	b.SetStrategy(rowStrategy{log: &log})
	bChild := e.NodeFor("b1")
	b.AddChild(bChild)

	a := e.NodeFor("a")
	a.Apply(WithFixedSize(10, 10, 10), WithStrategy(rowStrategy{log: &log}))
	a1 := e.NodeFor("a1")
	a1.Apply(WithFixedSize(4, 4, 4))
	a.AddChild(a1)

	require.NoError(t, e.CheckDependency(b, a1))
	b.SetConstraint(offsetConstraint{offset: geom.V3(0, 5, 0), log: &log}, a1)

	e.Update()

	idx := func(s string) int {
		i := slices.Index(log, s)
		require.GreaterOrEqual(t, i, 0, "%q not in %v", s, log)
		return i
	}
	assert.Less(t, idx("arrange:a"), idx("measure:b"))
	assert.Less(t, idx("arrange:a"), idx("constrain:b"))
	assert.Less(t, idx("arrange:b"), idx("constrain:b"))

	assert.InDelta(t, 5.0, b.Result().TargetPosition.Y, delta)
	assert.InDelta(t, a1.Result().TargetPosition.X, b.Result().TargetPosition.X, delta)
}

func TestEngine_DependentFollowsTarget(t *testing.T) {
	e := NewEngine()
	a, children := newRow(e, "a", geom.V3(10, 10, 10),
		[]Option{WithFixedSize(2, 2, 2)},
		[]Option{WithFixedSize(2, 2, 2)},
	)
	dep := e.NodeFor("dep")
	dep.Apply(WithWidth(Fill(1)))
	dep.SetConstraint(offsetConstraint{}, children[1])

	e.Update()
	assert.InDelta(t, 1.0, dep.Result().TargetPosition.X, delta)
	assert.InDelta(t, 2.0, dep.Result().AdapterBounds.Size.X, delta, "fill follows target size")

	children[0].SetSize(geom.X, Fixed(6))
	e.Update()
	assert.InDelta(t, 3.0, dep.Result().TargetPosition.X, delta)
	assert.False(t, a.Dirty())
}

func TestEngine_HostTransformMovesWorldBoxes(t *testing.T) {
	e := NewEngine()
	a, children := newRow(e, "a", geom.V3(10, 10, 10),
		[]Option{WithFixedSize(2, 2, 2)},
		[]Option{WithFixedSize(2, 2, 2)},
	)
	dep := e.NodeFor("dep")
	dep.SetConstraint(offsetConstraint{}, children[1])
	e.Update()
	require.InDelta(t, 1.0, dep.Result().TargetPosition.X, delta)

	a.SetHostTransform(geom.V3(100, 0, 0), geom.Identity)
	e.Update()

	position, _, _ := children[1].WorldTransform()
	assert.InDelta(t, 101.0, position.X, delta)
	assert.InDelta(t, 101.0, dep.Result().TargetPosition.X, delta)

	// only roots take a host transform
	children[0].SetHostTransform(geom.V3(50, 0, 0), geom.Identity)
	e.Update()
	position, _, _ = children[0].WorldTransform()
	assert.InDelta(t, 99.0, position.X, delta)
}

func TestEngine_CheckDependency(t *testing.T) {
	e := NewEngine()
	a := e.NodeFor("a")
	c := e.NodeFor("c")
	a.AddChild(c)
	b := e.NodeFor("b")
	b.SetDependency(c)

	assert.ErrorIs(t, e.CheckDependency(a, a), ErrSelfDependency)
	assert.ErrorIs(t, e.CheckDependency(a, c), ErrCyclicDependency, "depending on own descendant")
	assert.ErrorIs(t, e.CheckDependency(a, b), ErrCyclicDependency, "through a dependency edge")
	assert.NoError(t, e.CheckDependency(e.NodeFor("x"), b))
	assert.NoError(t, e.CheckDependency(a, nil))
}

func TestEngine_RootFillSize(t *testing.T) {
	e := NewEngine(WithRootSizer(func(*Node) geom.Vec3 { return geom.V3(200, 40, 1) }))
	root := e.NodeFor("root")
	root.Apply(WithWidth(Fill(0.5)), WithHeight(Fill(1)))

	e.Update()
	assert.Equal(t, geom.V3(100, 40, 1), root.Result().AdapterBounds.Size)

	// unchanged available space keeps the root clean
	e.Update()
	assert.False(t, root.Dirty())
}

func TestEngine_DefaultRootFillSize(t *testing.T) {
	e := NewEngine()
	root := e.NodeFor("root")
	root.Apply(WithWidth(Fill(1)))
	e.Update()

	assert.Equal(t, geom.One, root.Result().FillSize)
	assert.Equal(t, geom.V3(1, 1, 1), root.Result().AdapterBounds.Size)
}

func TestEngine_UpdaterRetriesUntilReached(t *testing.T) {
	e := NewEngine()
	_, children := newRow(e, "root", geom.V3(10, 10, 10), []Option{WithFixedSize(2, 2, 2)})
	u := &countingUpdater{lag: 1}
	children[0].SetTransformUpdater(u)

	e.Update()
	assert.Equal(t, 1, u.positions)
	assert.False(t, children[0].Settled())
	assert.Equal(t, geom.Zero, children[0].Result().TransformPosition)

	e.Update()
	assert.Equal(t, 2, u.positions)
	assert.True(t, children[0].Settled())

	e.Update()
	assert.Equal(t, 2, u.positions, "reached targets are not resent")
}

func TestEngine_ModifierRunsAfterArrange(t *testing.T) {
	e := NewEngine()
	root, children := newRow(e, "root", geom.V3(10, 10, 10), []Option{WithFixedSize(2, 2, 2)})
	var shift modifierFunc = func(n *Node) {
		for _, child := range n.LayoutChildren() {
			child.SetPositionResult(child.Result().LayoutPosition.Add(geom.V3(0, 3, 0)))
		}
	}
	root.AddModifier(&shift)

	e.Update()
	assert.InDelta(t, 3.0, children[0].Result().TargetPosition.Y, delta)
}

func TestEngine_PreUpdateHook(t *testing.T) {
	e := NewEngine()
	calls := 0
	e.OnPreUpdate(func() { calls++ })

	e.Update()
	e.Update()
	assert.Equal(t, 2, calls)
}

func TestEngine_DraggingRootIsNotRecomputed(t *testing.T) {
	e := NewEngine()
	root := e.NodeFor("root")
	root.Apply(WithFixedSize(2, 2, 2))
	e.Update()

	root.SetDragging(true)
	root.SetSize(geom.X, Fixed(8))
	e.Update()
	assert.InDelta(t, 2.0, root.Result().AdapterBounds.Size.X, delta)

	root.SetDragging(false)
	e.Update()
	assert.InDelta(t, 8.0, root.Result().AdapterBounds.Size.X, delta)
}

func TestEngine_Destroy(t *testing.T) {
	e := NewEngine()
	p := e.NodeFor("p")
	c := e.NodeFor("c")
	g := e.NodeFor("g")
	d := e.NodeFor("d")
	p.AddChild(c)
	c.AddChild(g)
	d.SetDependency(c)
	h := c.Handle()

	e.Destroy("c")

	assert.Equal(t, 0, p.ChildCount())
	assert.True(t, g.IsRoot())
	assert.True(t, d.IsRoot())
	assert.Nil(t, d.Dependency())
	assert.Nil(t, e.Node(h))
	_, ok := e.Lookup("c")
	assert.False(t, ok)
	assert.NotContains(t, names(e.Roots()), "c")
	assert.ElementsMatch(t, []any{"p", "g", "d"}, names(e.Roots()))

	// unknown entities are ignored
	assert.NotPanics(t, func() { e.Destroy("missing") })
}

func TestEngine_DestroyedHandlesStayInvalid(t *testing.T) {
	e := NewEngine()
	a := e.NodeFor("a")
	h := a.Handle()

	e.Destroy("a")
	b := e.NodeFor("a")

	assert.NotEqual(t, h, b.Handle())
	assert.Nil(t, e.Node(h))
	assert.Same(t, b, e.Node(b.Handle()))
	assert.Len(t, e.Nodes(), 1)
}

func TestEngine_SweepsDeadEntities(t *testing.T) {
	e := NewEngine()
	parent := &entity{name: "parent"}
	child := &entity{name: "child"}
	p := e.NodeFor(parent)
	p.SetStrategy(rowStrategy{})
	p.AddChild(e.NodeFor(child))
	e.Update()

	child.dead = true
	e.Update()

	_, ok := e.Lookup(child)
	assert.False(t, ok)
	assert.Equal(t, 0, p.ChildCount())
	assert.False(t, p.Dirty(), "parent recomputed in the same cycle")
}

func TestEngine_NodeForReturnsSameNode(t *testing.T) {
	e := NewEngine()
	a := e.NodeFor("a")
	assert.Same(t, a, e.NodeFor("a"))
	assert.Len(t, e.Nodes(), 1)
}

func TestEngine_MeasureRunsAtMostTwicePerCycle(t *testing.T) {
	type tc struct {
		children [][]Option
		mutate   func(children []*Node)
		want     int
	}

	tests := map[string]tc{
		"fixed children": {
			children: [][]Option{
				{WithFixedSize(10, 5, 5)},
				{WithFixedSize(20, 5, 5)},
			},
			mutate: func(c []*Node) { c[0].SetSize(geom.X, Fixed(15)) },
			want:   1,
		},
		"fill children resized": {
			children: [][]Option{
				{WithWidth(Fill(1))},
				{WithWidth(Fill(1))},
				{WithFixedSize(10, 5, 5)},
			},
			mutate: func(c []*Node) { c[2].SetSize(geom.X, Fixed(30)) },
			want:   2,
		},
		"child shrunk": {
			children: [][]Option{
				{WithFixedSize(10, 30, 5), WithMin(geom.Y, FixedLimit(2))},
				{WithFixedSize(10, 5, 5)},
			},
			mutate: func(c []*Node) { c[0].SetSize(geom.Y, Fixed(40)) },
			want:   2,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEngine()
			s := &countingStrategy{measures: make(map[any]int)}
			root, children := newRow(e, "root", geom.V3(100, 10, 10), tc.children...)
			root.SetStrategy(s)
			e.Update()

			clear(s.measures)
			tc.mutate(children)
			e.Update()

			assert.Equal(t, tc.want, s.measures["root"])
			for entity, n := range s.measures {
				assert.LessOrEqual(t, n, 2, "%v measured too often", entity)
			}

			clear(s.measures)
			e.Update()
			assert.Empty(t, s.measures, "clean tree is not measured")
		})
	}
}

// nestedTree builds a fixed root holding a shrinkable layout container
// with a fill-height child, a fill-width sibling and a fixed leaf.
func nestedTree() (*Engine, map[string]*Node) {
	e := NewEngine()
	nodes := make(map[string]*Node)
	add := func(parent *Node, name string, opts ...Option) *Node {
		n := e.NodeFor(name)
		n.Apply(opts...)
		if parent != nil {
			parent.AddChild(n)
		}
		nodes[name] = n
		return n
	}

	root := add(nil, "root", WithFixedSize(60, 10, 10), WithStrategy(rowStrategy{}))
	grid := add(root, "grid", WithStrategy(rowStrategy{}), WithMin(geom.Y, FixedLimit(2)))
	add(grid, "tall", WithFixedSize(5, 16, 5))
	add(grid, "stretch", WithFixedSize(5, 0, 5), WithHeight(Fill(1)))
	inner := add(grid, "inner", WithStrategy(rowStrategy{}), WithMin(geom.X, FixedLimit(1)))
	add(inner, "deep", WithFixedSize(3, 3, 3))
	add(root, "fill", WithWidth(Fill(1)), WithHeight(Fixed(4)))
	add(root, "leaf", WithFixedSize(5, 5, 5))
	return e, nodes
}

func TestEngine_IncrementalMatchesFullUpdate(t *testing.T) {
	compare := func(t *testing.T, e *Engine) {
		t.Helper()
		got := placements(e)
		e.ForceUpdateAll()
		for entity, want := range placements(e) {
			assert.InDelta(t, want.position.X, got[entity].position.X, delta, "%v position", entity)
			assert.InDelta(t, want.position.Y, got[entity].position.Y, delta, "%v position", entity)
			assert.InDelta(t, want.size.X, got[entity].size.X, delta, "%v size", entity)
			assert.InDelta(t, want.size.Y, got[entity].size.Y, delta, "%v size", entity)
			assert.InDelta(t, want.size.Z, got[entity].size.Z, delta, "%v size", entity)
		}
	}

	t.Run("shrunk container grows back", func(t *testing.T) {
		e, nodes := nestedTree()
		e.Update()
		require.True(t, nodes["grid"].IsShrunk())

		nodes["root"].SetSize(geom.Y, Fixed(20))
		e.Update()
		assert.False(t, nodes["grid"].IsShrunk())
		compare(t, e)
	})

	t.Run("sibling change under shrunk container", func(t *testing.T) {
		e, nodes := nestedTree()
		e.Update()

		nodes["leaf"].SetSize(geom.X, Fixed(9))
		e.Update()
		compare(t, e)
	})

	names := []string{"root", "grid", "tall", "stretch", "inner", "deep", "fill", "leaf"}
	for seed := uint64(1); seed <= 300; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(seed, seed))
			e, nodes := nestedTree()
			e.Update()

			for range 4 {
				for range 3 {
					n := nodes[names[rng.IntN(len(names))]]
					n.SetSize(geom.Axes[rng.IntN(len(geom.Axes))], Fixed(1+rng.Float64()*20))
				}
				e.Update()
				compare(t, e)
			}
		})
	}
}
