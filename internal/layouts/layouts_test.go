package layouts

import (
	"fmt"
	"testing"

	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/grindlemire/go-box3d/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

// build creates a root with the given options and one child per option
// set, named root/0, root/1 and so on.
func build(e *layout.Engine, root []layout.Option, children ...[]layout.Option) (*layout.Node, []*layout.Node) {
	r := e.NodeFor("root")
	r.Apply(root...)
	nodes := make([]*layout.Node, len(children))
	for i, opts := range children {
		child := e.NodeFor(fmt.Sprintf("root/%d", i))
		child.Apply(opts...)
		r.AddChild(child)
		nodes[i] = child
	}
	return r, nodes
}

func repeat(n int, opts ...layout.Option) [][]layout.Option {
	out := make([][]layout.Option, n)
	for i := range out {
		out[i] = opts
	}
	return out
}

func positions(nodes []*layout.Node) []geom.Vec3 {
	out := make([]geom.Vec3, len(nodes))
	for i, n := range nodes {
		out[i] = n.Result().LayoutPosition
	}
	return out
}

func assertVecs(t *testing.T, want, got []geom.Vec3) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, delta, "[%d].X", i)
		assert.InDelta(t, want[i].Y, got[i].Y, delta, "[%d].Y", i)
		assert.InDelta(t, want[i].Z, got[i].Z, delta, "[%d].Z", i)
	}
}

func TestFlexible_WrapOverflow(t *testing.T) {
	e := layout.NewEngine()
	f := NewFlexible(WithWrap(geom.NegativeY))
	root, children := build(e,
		[]layout.Option{layout.WithStrategy(f), layout.WithFixedSize(100, 0, 1), layout.WithHeight(layout.FromLayout())},
		repeat(5, layout.WithFixedSize(30, 10, 1))...,
	)

	e.Update()

	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}}, f.Lines(root))
	assert.InDelta(t, 20, root.Result().AdapterBounds.Size.Y, delta)
	assertVecs(t, []geom.Vec3{
		geom.V3(-30, 5, 0), geom.V3(0, 5, 0), geom.V3(30, 5, 0),
		geom.V3(-15, -5, 0), geom.V3(15, -5, 0),
	}, positions(children))
}

func TestFlexible_Arrange(t *testing.T) {
	type tc struct {
		flexible  *Flexible
		root      []layout.Option
		children  [][]layout.Option
		wantPos   []float64
		wantSizes []float64
		wantRootX float64
	}

	tests := map[string]tc{
		"fill fractions": {
			flexible: NewFlexible(),
			root:     []layout.Option{layout.WithFixedSize(400, 10, 1)},
			children: [][]layout.Option{
				{layout.WithFixedSize(0, 10, 1), layout.WithWidth(layout.Fill(1))},
				{layout.WithFixedSize(0, 10, 1), layout.WithWidth(layout.Fill(1))},
				{layout.WithFixedSize(0, 10, 1), layout.WithWidth(layout.Fill(2))},
			},
			wantPos:   []float64{-150, -50, 100},
			wantSizes: []float64{100, 100, 200},
			wantRootX: 400,
		},
		"fixed gap sizes layout axis": {
			flexible:  NewFlexible(WithGap(10)),
			root:      []layout.Option{layout.WithFixedSize(0, 10, 1), layout.WithWidth(layout.FromLayout())},
			children:  repeat(3, layout.WithFixedSize(20, 10, 1)),
			wantPos:   []float64{-30, 0, 30},
			wantSizes: []float64{20, 20, 20},
			wantRootX: 80,
		},
		"space between": {
			flexible:  NewFlexible(WithGapType(GapSpaceBetween)),
			root:      []layout.Option{layout.WithFixedSize(100, 10, 1)},
			children:  repeat(3, layout.WithFixedSize(20, 10, 1)),
			wantPos:   []float64{-40, 0, 40},
			wantSizes: []float64{20, 20, 20},
			wantRootX: 100,
		},
		"negative direction": {
			flexible:  NewFlexible(WithDirection(geom.NegativeX)),
			root:      []layout.Option{layout.WithFixedSize(100, 10, 1)},
			children:  repeat(2, layout.WithFixedSize(20, 10, 1)),
			wantPos:   []float64{10, -10},
			wantSizes: []float64{20, 20},
			wantRootX: 100,
		},
		"start aligned": {
			flexible:  NewFlexible(WithAlign(geom.AlignStart, geom.AlignCenter, geom.AlignCenter)),
			root:      []layout.Option{layout.WithFixedSize(100, 10, 1)},
			children:  repeat(2, layout.WithFixedSize(20, 10, 1)),
			wantPos:   []float64{-40, -20},
			wantSizes: []float64{20, 20},
			wantRootX: 100,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := layout.NewEngine()
			root, children := build(e, append(tt.root, layout.WithStrategy(tt.flexible)), tt.children...)

			e.Update()

			assert.InDelta(t, tt.wantRootX, root.Result().AdapterBounds.Size.X, delta, "root width")
			for i, child := range children {
				assert.InDelta(t, tt.wantSizes[i], child.ArrangeSize().X, delta, "child %d size", i)
				assert.InDelta(t, tt.wantPos[i], child.Result().LayoutPosition.X, delta, "child %d position", i)
			}
		})
	}
}

func TestFlexible_InnerAlignOnCrossAxis(t *testing.T) {
	e := layout.NewEngine()
	f := NewFlexible(WithInnerAlign(geom.AlignCenter, geom.AlignEnd, geom.AlignCenter))
	_, children := build(e,
		[]layout.Option{layout.WithStrategy(f), layout.WithFixedSize(100, 0, 1), layout.WithHeight(layout.FromLayout())},
		[]layout.Option{layout.WithFixedSize(10, 10, 1)},
		[]layout.Option{layout.WithFixedSize(10, 4, 1)},
	)

	e.Update()

	assert.InDelta(t, 0, children[0].Result().LayoutPosition.Y, delta)
	assert.InDelta(t, 3, children[1].Result().LayoutPosition.Y, delta)
}

func TestFlexible_ShrinksToMin(t *testing.T) {
	e := layout.NewEngine()
	_, children := build(e,
		[]layout.Option{layout.WithStrategy(NewFlexible()), layout.WithFixedSize(50, 10, 1)},
		repeat(2, layout.WithFixedSize(40, 10, 1), layout.WithMin(geom.X, layout.FixedLimit(10)))...,
	)

	e.Update()

	for i, child := range children {
		assert.InDelta(t, 25, child.ArrangeSize().X, delta, "child %d", i)
	}
}

func TestGrid_AutoAssign(t *testing.T) {
	e := layout.NewEngine()
	g := NewGrid(WithCells(3, 2, 1))
	root, _ := build(e,
		[]layout.Option{layout.WithStrategy(g), layout.WithFixedSize(300, 200, 1)},
		repeat(5, layout.WithFixedSize(1, 1, 1))...,
	)

	want := []Cell{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	assert.Equal(t, want, g.Assign(root))
}

func TestGrid_AutoAssignWrapsLayers(t *testing.T) {
	e := layout.NewEngine()
	g := NewGrid(WithCells(2, 1, 2))
	root, _ := build(e, []layout.Option{layout.WithStrategy(g)}, repeat(3)...)

	want := []Cell{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}}
	assert.Equal(t, want, g.Assign(root))
}

func TestGrid_PinnedCells(t *testing.T) {
	e := layout.NewEngine()
	g := NewGrid(WithCells(3, 2, 1))
	root, children := build(e, []layout.Option{layout.WithStrategy(g)}, repeat(3)...)

	SetCell(children[0], Cell{Column: 2, Row: 1})
	SetCell(children[2], Cell{Column: -1, Row: 0})
	e.Update()
	require.False(t, root.Dirty())

	cell, ok := CellOf(children[2])
	require.True(t, ok)
	assert.Equal(t, Cell{0, 0, 0}, cell)

	assert.Equal(t, []Cell{{2, 1, 0}, {1, 0, 0}, {0, 0, 0}}, g.Assign(root))
	assert.Same(t, children[0], g.ChildAt(root, Cell{2, 1, 0}))
	assert.Equal(t, []*layout.Node{children[2]}, g.ChildrenAt(root, Cell{}))
	assert.Nil(t, g.ChildAt(root, Cell{1, 1, 0}))

	ClearCell(children[0])
	_, ok = CellOf(children[0])
	assert.False(t, ok)
	assert.True(t, root.Dirty())
}

func TestGrid_AutoAssignSkipsPinnedCells(t *testing.T) {
	type tc struct {
		pins map[int]Cell
		want []Cell
	}

	tests := map[string]tc{
		"nothing pinned": {
			want: []Cell{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		},
		"first cell pinned by a later child": {
			pins: map[int]Cell{3: {}},
			want: []Cell{{1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0, 0, 0}},
		},
		"run of pinned cells": {
			pins: map[int]Cell{0: {1, 0, 0}, 1: {0, 1, 0}},
			want: []Cell{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}, {1, 1, 0}},
		},
		"pinned children may share a cell": {
			pins: map[int]Cell{0: {1, 1, 0}, 1: {1, 1, 0}},
			want: []Cell{{1, 1, 0}, {1, 1, 0}, {0, 0, 0}, {1, 0, 0}},
		},
		"overflow continues into the next layer": {
			pins: map[int]Cell{0: {0, 0, 1}},
			want: []Cell{{0, 0, 1}, {0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := layout.NewEngine()
			g := NewGrid(WithCells(2, 2, 1))
			root, children := build(e, []layout.Option{layout.WithStrategy(g)}, repeat(4)...)
			for i, c := range tc.pins {
				SetCell(children[i], c)
			}

			cells := g.Assign(root)
			assert.Equal(t, tc.want, cells)
		})
	}
}

func TestGrid_Arrange(t *testing.T) {
	type tc struct {
		grid      *Grid
		root      []layout.Option
		children  [][]layout.Option
		wantPos   []geom.Vec3
		wantSize  geom.Vec3
		wantChild geom.Vec3
	}

	tests := map[string]tc{
		"rectangle fill": {
			grid: NewGrid(WithCells(3, 2, 1)),
			root: []layout.Option{layout.WithFixedSize(300, 200, 1)},
			children: repeat(6,
				layout.WithFixedSize(0, 0, 1),
				layout.WithWidth(layout.Fill(1)),
				layout.WithHeight(layout.Fill(1)),
			),
			wantPos: []geom.Vec3{
				geom.V3(-100, 50, 0), geom.V3(0, 50, 0), geom.V3(100, 50, 0),
				geom.V3(-100, -50, 0), geom.V3(0, -50, 0), geom.V3(100, -50, 0),
			},
			wantSize:  geom.V3(300, 200, 1),
			wantChild: geom.V3(100, 100, 1),
		},
		"hexagonal fixed": {
			grid:     NewGrid(WithCells(2, 2, 1), WithCellType(CellHexagonal), WithCellSize(10, 10, 1)),
			children: repeat(4, layout.WithFixedSize(10, 10, 1)),
			wantPos: []geom.Vec3{
				geom.V3(-7.5, 3.75, 0), geom.V3(2.5, 3.75, 0),
				geom.V3(-2.5, -3.75, 0), geom.V3(7.5, -3.75, 0),
			},
			wantSize:  geom.V3(25, 17.5, 1),
			wantChild: geom.V3(10, 10, 1),
		},
		"spacing and rows up": {
			grid: NewGrid(
				WithCells(2, 2, 1),
				WithCellSize(10, 10, 1),
				WithSpacing(2, 4, 0),
				WithGridDirections(geom.PositiveX, geom.PositiveY, geom.PositiveZ),
			),
			children: repeat(4, layout.WithFixedSize(10, 10, 1)),
			wantPos: []geom.Vec3{
				geom.V3(-6, -7, 0), geom.V3(6, -7, 0),
				geom.V3(-6, 7, 0), geom.V3(6, 7, 0),
			},
			wantSize:  geom.V3(22, 24, 1),
			wantChild: geom.V3(10, 10, 1),
		},
		"aligned in cell": {
			grid: NewGrid(
				WithCells(1, 1, 1),
				WithCellSize(10, 10, 1),
				WithCellAlign(geom.AlignStart, geom.AlignEnd, geom.AlignCenter),
			),
			children:  repeat(1, layout.WithFixedSize(4, 4, 1)),
			wantPos:   []geom.Vec3{geom.V3(-3, 3, 0)},
			wantSize:  geom.V3(10, 10, 1),
			wantChild: geom.V3(4, 4, 1),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := layout.NewEngine()
			root, children := build(e, append(tt.root, layout.WithStrategy(tt.grid)), tt.children...)

			e.Update()

			size := root.Result().AdapterBounds.Size
			assertVecs(t, []geom.Vec3{tt.wantSize}, []geom.Vec3{size})
			assertVecs(t, tt.wantPos, positions(children))
			for _, child := range children {
				assertVecs(t, []geom.Vec3{tt.wantChild}, []geom.Vec3{child.ArrangeSize()})
			}
		})
	}
}

func TestGrid_AxesDeduplicated(t *testing.T) {
	type tc struct {
		columns, rows, layers geom.Direction
		want                  [3]geom.Axis
	}

	tests := map[string]tc{
		"default":             {geom.PositiveX, geom.NegativeY, geom.PositiveZ, [3]geom.Axis{geom.X, geom.Y, geom.Z}},
		"rows on column axis": {geom.PositiveX, geom.NegativeX, geom.PositiveZ, [3]geom.Axis{geom.X, geom.Y, geom.Z}},
		"layers on row axis":  {geom.PositiveX, geom.NegativeY, geom.PositiveY, [3]geom.Axis{geom.X, geom.Y, geom.Z}},
		"all on one axis":     {geom.PositiveZ, geom.PositiveZ, geom.PositiveZ, [3]geom.Axis{geom.Z, geom.X, geom.Y}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g := NewGrid(WithGridDirections(tt.columns, tt.rows, tt.layers))
			if got := g.gridAxes(); got != tt.want {
				t.Errorf("gridAxes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiagonal(t *testing.T) {
	type tc struct {
		gap       geom.Vec3
		root      []layout.Option
		children  [][]layout.Option
		wantPos   []geom.Vec3
		wantSizes []geom.Vec3
	}

	tests := map[string]tc{
		"layout sized": {
			gap: geom.Splat(1),
			children: [][]layout.Option{
				{layout.WithFixedSize(2, 2, 2)},
				{layout.WithFixedSize(4, 4, 4)},
			},
			wantPos:   []geom.Vec3{geom.Splat(-2.5), geom.Splat(1.5)},
			wantSizes: []geom.Vec3{geom.Splat(2), geom.Splat(4)},
		},
		"fill takes the rest": {
			root: []layout.Option{layout.WithFixedSize(10, 10, 10)},
			children: [][]layout.Option{
				{layout.WithFixedSize(2, 2, 2)},
				{
					layout.WithWidth(layout.Fill(1)),
					layout.WithHeight(layout.Fill(1)),
					layout.WithDepth(layout.Fill(1)),
				},
			},
			wantPos:   []geom.Vec3{geom.Splat(-4), geom.Splat(1)},
			wantSizes: []geom.Vec3{geom.Splat(2), geom.Splat(8)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := layout.NewEngine()
			_, children := build(e, append(tt.root, layout.WithStrategy(NewDiagonal(tt.gap))), tt.children...)

			e.Update()

			assertVecs(t, tt.wantPos, positions(children))
			sizes := make([]geom.Vec3, len(children))
			for i, child := range children {
				sizes[i] = child.ArrangeSize()
			}
			assertVecs(t, tt.wantSizes, sizes)
		})
	}
}

func TestAlignConstraint(t *testing.T) {
	type tc struct {
		align, pivot geom.Align
		want         float64
	}

	tests := map[string]tc{
		"center":         {geom.AlignCenter, geom.AlignCenter, 0},
		"end to start":   {geom.AlignEnd, geom.AlignStart, 6},
		"start to start": {geom.AlignStart, geom.AlignStart, -4},
		"start to end":   {geom.AlignStart, geom.AlignEnd, -6},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := layout.NewEngine()
			target := e.NodeFor("target")
			target.Apply(layout.WithFixedSize(10, 10, 10))
			node := e.NodeFor("node")
			node.Apply(layout.WithFixedSize(2, 2, 2))

			c := NewAlignConstraint()
			c.HorizontalAlign, c.HorizontalPivot = tt.align, tt.pivot
			node.SetConstraint(c, target)

			e.Update()

			got := node.Result().TargetPosition
			assert.InDelta(t, tt.want, got.X, delta)
			assert.InDelta(t, 0, got.Y, delta)
			assert.InDelta(t, 0, got.Z, delta)
		})
	}
}

func TestOffsetModifier(t *testing.T) {
	e := layout.NewEngine()
	root, children := build(e,
		[]layout.Option{layout.WithStrategy(NewFlexible()), layout.WithFixedSize(20, 10, 1)},
		repeat(2, layout.WithFixedSize(10, 10, 1))...,
	)
	root.AddModifier(&OffsetModifier{Offset: geom.V3(0, 5, 0)})

	e.Update()

	assertVecs(t, []geom.Vec3{geom.V3(-5, 5, 0), geom.V3(5, 5, 0)}, positions(children))
}

func TestParseNames(t *testing.T) {
	gap, err := ParseGapType("space-between")
	require.NoError(t, err)
	assert.Equal(t, GapSpaceBetween, gap)

	cell, err := ParseCellType(CellHexagonal.String())
	require.NoError(t, err)
	assert.Equal(t, CellHexagonal, cell)

	_, err = ParseGapType("around")
	assert.Error(t, err)
	_, err = ParseCellType("triangle")
	assert.Error(t, err)
}
