package layouts

import (
	"fmt"

	"github.com/grindlemire/go-box3d/internal/debug"
	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/grindlemire/go-box3d/internal/layout"
)

// CellType selects the grid topology.
type CellType uint8

const (
	// CellRectangle lays cells out edge to edge.
	CellRectangle CellType = iota
	// CellHexagonal packs rows at 0.75 of the row size and shifts odd rows
	// by half a column.
	CellHexagonal
)

func (c CellType) String() string {
	switch c {
	case CellRectangle:
		return "rectangle"
	case CellHexagonal:
		return "hexagonal"
	default:
		return fmt.Sprintf("CellType(%d)", uint8(c))
	}
}

// ParseCellType parses the names produced by CellType.String.
func ParseCellType(s string) (CellType, error) {
	switch s {
	case "", "rectangle":
		return CellRectangle, nil
	case "hexagonal":
		return CellHexagonal, nil
	}
	return CellRectangle, fmt.Errorf("unknown cell type %q", s)
}

// CellSizeType selects how the cell size on one grid dimension is found.
type CellSizeType uint8

const (
	// CellFill divides the available space by the cell count.
	CellFill CellSizeType = iota
	// CellFixed uses a fixed size.
	CellFixed
)

func (c CellSizeType) String() string {
	switch c {
	case CellFill:
		return "fill"
	case CellFixed:
		return "fixed"
	default:
		return fmt.Sprintf("CellSizeType(%d)", uint8(c))
	}
}

// Cell addresses a grid cell. Negative coordinates are clamped to zero when
// assigned with SetCell.
type Cell struct {
	Column, Row, Layer int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Column, c.Row, c.Layer)
}

// GridDimension configures one grid dimension (columns, rows or layers).
type GridDimension struct {
	Count     int
	Direction geom.Direction
	SizeType  CellSizeType
	Size      float64
	Spacing   float64
}

// Grid places children in uniform cells. Children are assigned the cell set
// with SetCell, otherwise the next free cell in row-major order: column
// first, then row, then layer.
type Grid struct {
	CellType CellType
	Columns  GridDimension
	Rows     GridDimension
	Layers   GridDimension

	// Alignment of each child inside its cell.
	HorizontalAlign geom.Align
	VerticalAlign   geom.Align
	DepthAlign      geom.Align
}

// GridOption configures a Grid.
type GridOption func(*Grid)

// NewGrid returns a 3x3x1 rectangular grid with columns along +X, rows
// along -Y and layers along +Z. All cells fill the available space.
func NewGrid(opts ...GridOption) *Grid {
	g := &Grid{
		Columns:         GridDimension{Count: 3, Direction: geom.PositiveX, Size: 1},
		Rows:            GridDimension{Count: 3, Direction: geom.NegativeY, Size: 1},
		Layers:          GridDimension{Count: 1, Direction: geom.PositiveZ, Size: 1},
		HorizontalAlign: geom.AlignCenter,
		VerticalAlign:   geom.AlignCenter,
		DepthAlign:      geom.AlignCenter,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithCellType sets the grid topology.
func WithCellType(t CellType) GridOption {
	return func(g *Grid) { g.CellType = t }
}

// WithCells sets the number of columns, rows and layers.
func WithCells(columns, rows, layers int) GridOption {
	return func(g *Grid) {
		g.Columns.Count, g.Rows.Count, g.Layers.Count = columns, rows, layers
	}
}

// WithGridDirections sets the direction of columns, rows and layers.
func WithGridDirections(columns, rows, layers geom.Direction) GridOption {
	return func(g *Grid) {
		g.Columns.Direction, g.Rows.Direction, g.Layers.Direction = columns, rows, layers
	}
}

// WithCellSize fixes the cell size on every dimension.
func WithCellSize(column, row, layer float64) GridOption {
	return func(g *Grid) {
		for _, d := range []struct {
			dim  *GridDimension
			size float64
		}{{&g.Columns, column}, {&g.Rows, row}, {&g.Layers, layer}} {
			d.dim.SizeType = CellFixed
			d.dim.Size = max(d.size, 0)
		}
	}
}

// WithSpacing sets the spacing between columns, rows and layers.
func WithSpacing(column, row, layer float64) GridOption {
	return func(g *Grid) {
		g.Columns.Spacing, g.Rows.Spacing, g.Layers.Spacing = column, row, layer
	}
}

// WithCellAlign sets the alignment of children inside their cells.
func WithCellAlign(h, v, d geom.Align) GridOption {
	return func(g *Grid) {
		g.HorizontalAlign, g.VerticalAlign, g.DepthAlign = h, v, d
	}
}

type cellKey struct{}

// SetCell pins node to cell in its parent's grid.
func SetCell(node *layout.Node, cell Cell) {
	node.SetProperty(cellKey{}, Cell{
		Column: max(cell.Column, 0),
		Row:    max(cell.Row, 0),
		Layer:  max(cell.Layer, 0),
	})
}

// ClearCell returns node to automatic cell assignment.
func ClearCell(node *layout.Node) {
	node.SetProperty(cellKey{}, nil)
}

// CellOf returns the cell pinned with SetCell.
func CellOf(node *layout.Node) (Cell, bool) {
	v, ok := node.Property(cellKey{})
	if !ok {
		return Cell{}, false
	}
	return v.(Cell), true
}

func (g *Grid) columns() int { return max(g.Columns.Count, 1) }
func (g *Grid) rows() int    { return max(g.Rows.Count, 1) }
func (g *Grid) layers() int  { return max(g.Layers.Count, 1) }

// gridAxes maps columns, rows and layers to distinct axes. Conflicting
// directions give way to the column axis first, then the row axis.
func (g *Grid) gridAxes() [3]geom.Axis {
	col := g.Columns.Direction.Axis()
	row := g.Rows.Direction.Axis()
	layer := g.Layers.Direction.Axis()
	first, second := col.Others()

	if col == row {
		row = first
		if layer == first {
			row = second
		}
	}
	if col == layer {
		layer = first
		if row == first {
			layer = second
		}
	}
	if row == layer {
		layer = geom.Third(col, row)
	}
	return [3]geom.Axis{col, row, layer}
}

func (g *Grid) dimensions() [3]*GridDimension {
	return [3]*GridDimension{&g.Columns, &g.Rows, &g.Layers}
}

func (g *Grid) columnSize(available float64) float64 {
	if g.Columns.SizeType == CellFixed {
		return g.Columns.Size
	}
	n := float64(g.columns())
	size := (available - g.Columns.Spacing*(n-1)) / n
	if g.CellType == CellHexagonal && g.rows() > 1 {
		size *= n / (n + 0.5)
	}
	return size
}

func (g *Grid) rowSize(available float64) float64 {
	if g.Rows.SizeType == CellFixed {
		return g.Rows.Size
	}
	n := float64(g.rows())
	if g.CellType == CellHexagonal {
		return (available - g.Rows.Spacing*(n-1)) / (1 + (n-1)*0.75)
	}
	return (available - g.Rows.Spacing*(n-1)) / n
}

func (g *Grid) layerSize(available float64) float64 {
	if g.Layers.SizeType == CellFixed {
		return g.Layers.Size
	}
	n := float64(g.layers())
	return (available - g.Layers.Spacing*(n-1)) / n
}

func (g *Grid) cellSize(axes [3]geom.Axis, available geom.Vec3) geom.Vec3 {
	size := available
	size.Set(axes[0], g.columnSize(available.At(axes[0])))
	size.Set(axes[1], g.rowSize(available.At(axes[1])))
	size.Set(axes[2], g.layerSize(available.At(axes[2])))
	return size
}

func (g *Grid) gridSize(axes [3]geom.Axis, cell geom.Vec3) geom.Vec3 {
	colAxis, rowAxis, layerAxis := axes[0], axes[1], axes[2]
	cols, rows, layers := float64(g.columns()), float64(g.rows()), float64(g.layers())
	hex := g.CellType == CellHexagonal && g.rows() > 1

	var size geom.Vec3
	if hex {
		size.Set(rowAxis, cell.At(rowAxis)+(0.75*cell.At(rowAxis)+g.Rows.Spacing)*(rows-1))
	} else {
		size.Set(rowAxis, cell.At(rowAxis)*rows+g.Rows.Spacing*(rows-1))
	}
	size.Set(colAxis, cell.At(colAxis)*cols+g.Columns.Spacing*(cols-1))
	if hex {
		size.Set(colAxis, size.At(colAxis)+cell.At(colAxis)*0.5)
	}
	size.Set(layerAxis, cell.At(layerAxis)*layers+g.Layers.Spacing*(layers-1))
	return size
}

// Measure implements layout.Strategy.
func (g *Grid) Measure(node *layout.Node, size, lo, hi geom.Vec3) geom.Bounds {
	axes := g.gridAxes()
	dims := g.dimensions()
	cell := g.cellSize(axes, size)

	children := node.LayoutChildren()
	for _, child := range children {
		childSize := child.MeasureSize(size)
		for i, axis := range axes {
			if node.SizeType(axis) == layout.SizeLayout && dims[i].SizeType == CellFill {
				cell.Set(axis, max(cell.At(axis), childSize.At(axis)))
			}
		}
	}

	cell = cell.Clamp(g.cellSize(axes, lo), g.cellSize(axes, hi))
	grid := g.gridSize(axes, cell)
	for _, axis := range geom.Axes {
		if node.SizeType(axis) == layout.SizeLayout {
			size.Set(axis, grid.At(axis))
		}
	}

	if debug.Enabled() {
		debug.Log("grid measure", "node", node, "cell", cell, "size", size)
	}

	for _, child := range children {
		child.SetShrinkFillSize(cell, size)
	}
	return geom.NewBounds(geom.Zero, size)
}

// Assign returns the cell of every layout child of node, in child order.
// Automatic assignment skips cells pinned with SetCell. Pinned children
// keep their cell even when another pinned child shares it.
func (g *Grid) Assign(node *layout.Node) []Cell {
	children := node.LayoutChildren()
	cells := make([]Cell, len(children))
	pinned := make(map[Cell]bool)
	auto := make([]bool, len(children))
	for i, child := range children {
		c, ok := CellOf(child)
		cells[i], auto[i] = c, !ok
		pinned[c] = pinned[c] || ok
	}

	var next Cell
	for i := range children {
		if !auto[i] {
			continue
		}
		for pinned[next] {
			next = g.advance(next)
		}
		cells[i] = next
		next = g.advance(next)
	}
	return cells
}

// advance steps c to the following cell in row-major order.
func (g *Grid) advance(c Cell) Cell {
	c.Column++
	if c.Column >= g.columns() {
		c.Column = 0
		c.Row++
		if c.Row >= g.rows() {
			c.Row = 0
			c.Layer++
		}
	}
	return c
}

// ChildrenAt returns the children of node assigned to cell.
func (g *Grid) ChildrenAt(node *layout.Node, cell Cell) []*layout.Node {
	var out []*layout.Node
	children := node.LayoutChildren()
	for i, c := range g.Assign(node) {
		if c == cell {
			out = append(out, children[i])
		}
	}
	return out
}

// ChildAt returns the first child of node assigned to cell, or nil.
func (g *Grid) ChildAt(node *layout.Node, cell Cell) *layout.Node {
	if children := g.ChildrenAt(node, cell); len(children) > 0 {
		return children[0]
	}
	return nil
}

// cellPosition returns the center of cell relative to the grid center.
func (g *Grid) cellPosition(c Cell, axes [3]geom.Axis, cell, grid geom.Vec3) geom.Vec3 {
	colAxis, rowAxis, layerAxis := axes[0], axes[1], axes[2]
	colSize, rowSize, layerSize := cell.At(colAxis), cell.At(rowAxis), cell.At(layerAxis)
	col, row, layer := float64(c.Column), float64(c.Row), float64(c.Layer)

	pos := grid.Scale(-0.5)
	if g.CellType == CellRectangle {
		pos.Set(rowAxis, pos.At(rowAxis)+rowSize*row+g.Rows.Spacing*row+rowSize/2)
		pos.Set(colAxis, pos.At(colAxis)+colSize*col+g.Columns.Spacing*col+colSize/2)
	} else {
		shift := 0.0
		if c.Row%2 != 0 {
			shift = colSize / 2
		}
		pos.Set(rowAxis, pos.At(rowAxis)+rowSize*0.75*row+g.Rows.Spacing*row+rowSize/2)
		pos.Set(colAxis, pos.At(colAxis)+colSize*col+colSize/2+g.Columns.Spacing*col+shift)
	}
	pos.Set(layerAxis, pos.At(layerAxis)+layerSize*layer+g.Layers.Spacing*layer+layerSize/2)

	pos.Set(rowAxis, pos.At(rowAxis)*g.Rows.Direction.Sign())
	pos.Set(colAxis, pos.At(colAxis)*g.Columns.Direction.Sign())
	pos.Set(layerAxis, pos.At(layerAxis)*g.Layers.Direction.Sign())
	return pos
}

// Arrange implements layout.Strategy.
func (g *Grid) Arrange(node *layout.Node, layoutSize geom.Vec3) {
	axes := g.gridAxes()
	cell := g.cellSize(axes, layoutSize)
	grid := g.gridSize(axes, cell)

	children := node.LayoutChildren()
	for i, c := range g.Assign(node) {
		child := children[i]
		aligned := geom.AlignBox(child.ArrangeSize(), cell, g.HorizontalAlign, g.VerticalAlign, g.DepthAlign)
		child.SetPositionResult(g.cellPosition(c, axes, cell, grid).Add(aligned))
		child.SetRotationResult(geom.Identity)
	}
}
