package scene

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-box3d/internal/adapters"
	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/grindlemire/go-box3d/internal/layout"
	"github.com/grindlemire/go-box3d/internal/layouts"
)

// Instance is a scene built into its own engine. Node entities are the
// scene node names.
type Instance struct {
	Scene  *Scene
	Engine *layout.Engine
	nodes  map[string]*layout.Node
}

// Build creates an engine holding every node of the scene. opts are applied
// after the scene's own root size, so callers can override it.
func (s *Scene) Build(opts ...layout.EngineOption) (*Instance, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var engineOpts []layout.EngineOption
	if s.RootSize != nil {
		size := s.RootSize.Vec3()
		engineOpts = append(engineOpts, layout.WithRootSizer(func(*layout.Node) geom.Vec3 { return size }))
	}
	engineOpts = append(engineOpts, opts...)

	in := &Instance{
		Scene:  s,
		Engine: layout.NewEngine(engineOpts...),
		nodes:  make(map[string]*layout.Node),
	}
	for i := range s.Nodes {
		if err := in.build(&s.Nodes[i], nil); err != nil {
			return nil, err
		}
	}

	var err error
	s.Walk(func(n *Node, _ int) {
		if err == nil && n.Constraint != nil {
			err = in.constrain(n)
		}
	})
	if err != nil {
		return nil, err
	}
	return in, nil
}

func (in *Instance) build(decl *Node, parent *layout.Node) error {
	opts, err := decl.options()
	if err != nil {
		return fmt.Errorf("node %q: %w", decl.Name, err)
	}

	n := in.Engine.NodeFor(decl.Name)
	n.Apply(opts...)
	in.nodes[decl.Name] = n
	if parent != nil {
		parent.AddChild(n)
	}

	if c := decl.Cell; c != nil {
		layouts.SetCell(n, layouts.Cell{Column: c[0], Row: c[1], Layer: c[2]})
	}
	for _, m := range decl.Modifiers {
		n.AddModifier(&layouts.OffsetModifier{Offset: m.Offset.Vec3()})
	}

	for i := range decl.Children {
		if err := in.build(&decl.Children[i], n); err != nil {
			return err
		}
	}
	return nil
}

func (in *Instance) constrain(decl *Node) error {
	n := in.nodes[decl.Name]
	target, ok := in.nodes[decl.Constraint.Target]
	if !ok {
		return fmt.Errorf("node %q: %w: %q", decl.Name, ErrUnknownTarget, decl.Constraint.Target)
	}
	if err := in.Engine.CheckDependency(n, target); err != nil {
		return fmt.Errorf("node %q on %q: %w", decl.Name, decl.Constraint.Target, err)
	}

	align, err := decl.Constraint.Align.parse()
	if err != nil {
		return fmt.Errorf("node %q: %w", decl.Name, err)
	}
	pivot, err := decl.Constraint.Pivot.parse()
	if err != nil {
		return fmt.Errorf("node %q: %w", decl.Name, err)
	}

	c := layouts.NewAlignConstraint()
	c.HorizontalAlign, c.VerticalAlign, c.DepthAlign = align[0], align[1], align[2]
	c.HorizontalPivot, c.VerticalPivot, c.DepthPivot = pivot[0], pivot[1], pivot[2]
	n.SetConstraint(c, target)
	return nil
}

// Node returns the engine node built for the named scene node.
func (in *Instance) Node(name string) (*layout.Node, bool) {
	n, ok := in.nodes[name]
	return n, ok
}

// options converts the declarative fields of n. Sizes left empty keep the
// node's default so a strategy can turn them into layout sizes.
func (n *Node) options() ([]layout.Option, error) {
	var opts []layout.Option

	for _, axis := range geom.Axes {
		if v := n.Size.get(axis); v != "" {
			size, err := ParseSize(v)
			if err != nil {
				return nil, fmt.Errorf("size.%v: %w", axis, err)
			}
			opts = append(opts, layout.WithSize(axis, size))
		}
		if v := n.Min.get(axis); v != "" {
			limit, err := ParseLimit(v)
			if err != nil {
				return nil, fmt.Errorf("min.%v: %w", axis, err)
			}
			opts = append(opts, layout.WithMin(axis, limit))
		}
		if v := n.Max.get(axis); v != "" {
			limit, err := ParseLimit(v)
			if err != nil {
				return nil, fmt.Errorf("max.%v: %w", axis, err)
			}
			opts = append(opts, layout.WithMax(axis, limit))
		}
	}

	if n.Margin != nil {
		opts = append(opts, layout.WithMargin(n.Margin.Directions()))
	}
	if n.Padding != nil {
		opts = append(opts, layout.WithPadding(n.Padding.Directions()))
	}
	if n.Offset != nil {
		opts = append(opts, layout.WithOffset(n.Offset.Vec3()))
	}
	if n.Scale != nil {
		opts = append(opts, layout.WithScale(n.Scale.Vec3()))
	}
	if r := n.Rotation; r != nil {
		opts = append(opts, layout.WithRotation(geom.Euler(r[0], r[1], r[2])))
	}
	if n.Skip {
		opts = append(opts, layout.WithSkip(true))
	}

	if n.Adapter != nil {
		a, err := n.Adapter.adapter()
		if err != nil {
			return nil, err
		}
		opts = append(opts, layout.WithAdapter(a))
	}
	if n.Layout != nil {
		s, err := n.Layout.strategy()
		if err != nil {
			return nil, err
		}
		opts = append(opts, layout.WithStrategy(s))
	}
	return opts, nil
}

func (a *Adapter) adapter() (layout.Adapter, error) {
	content := geom.NewBounds(a.Center.Vec3(), a.Size.Vec3())
	switch strings.ToLower(a.Type) {
	case "bounds", "mesh":
		return adapters.NewBounds(content), nil
	case "flat", "sprite":
		return adapters.NewFlatBounds(content), nil
	case "aspect":
		return adapters.NewAspectRatio(a.Ratio), nil
	}
	return nil, fmt.Errorf("adapter %w %q", ErrUnknownType, a.Type)
}

func (l *Layout) strategy() (layout.Strategy, error) {
	switch strings.ToLower(l.Type) {
	case "flexible", "flex":
		return l.flexible()
	case "grid":
		return l.grid()
	case "diagonal":
		return layouts.NewDiagonal(l.Spacing.Vec3()), nil
	}
	return nil, fmt.Errorf("layout %w %q", ErrUnknownType, l.Type)
}

func (l *Layout) flexible() (*layouts.Flexible, error) {
	f := layouts.NewFlexible()

	var err error
	if f.Direction, err = parseDirection(l.Direction, geom.PositiveX); err != nil {
		return nil, err
	}
	if f.WrapDirection, err = parseDirection(l.WrapDirection, geom.NegativeY); err != nil {
		return nil, err
	}
	if f.GapType, err = layouts.ParseGapType(l.GapType); err != nil {
		return nil, err
	}
	if f.WrapGapType, err = layouts.ParseGapType(l.WrapGapType); err != nil {
		return nil, err
	}
	align, err := l.Align.parse()
	if err != nil {
		return nil, err
	}
	inner, err := l.InnerAlign.parse()
	if err != nil {
		return nil, err
	}

	f.Wrap = l.Wrap
	f.Gap, f.WrapGap = l.Gap, l.WrapGap
	f.HorizontalAlign, f.VerticalAlign, f.DepthAlign = align[0], align[1], align[2]
	f.HorizontalInnerAlign, f.VerticalInnerAlign, f.DepthInnerAlign = inner[0], inner[1], inner[2]
	return f, nil
}

func (l *Layout) grid() (*layouts.Grid, error) {
	g := layouts.NewGrid()

	cellType, err := layouts.ParseCellType(l.CellType)
	if err != nil {
		return nil, err
	}
	g.CellType = cellType

	dims := []struct {
		dim       *layouts.GridDimension
		count     int
		direction string
	}{
		{&g.Columns, l.Columns, l.ColumnDirection},
		{&g.Rows, l.Rows, l.RowDirection},
		{&g.Layers, l.Layers, l.LayerDirection},
	}
	for i, d := range dims {
		if d.count > 0 {
			d.dim.Count = d.count
		}
		if d.dim.Direction, err = parseDirection(d.direction, d.dim.Direction); err != nil {
			return nil, err
		}
		if size := l.CellSize[i]; size > 0 {
			d.dim.SizeType = layouts.CellFixed
			d.dim.Size = size
		}
		d.dim.Spacing = l.Spacing[i]
	}

	align, err := l.CellAlign.parse()
	if err != nil {
		return nil, err
	}
	g.HorizontalAlign, g.VerticalAlign, g.DepthAlign = align[0], align[1], align[2]
	return g, nil
}
