package layouts

import (
	"fmt"

	"github.com/grindlemire/go-box3d/internal/debug"
	"github.com/grindlemire/go-box3d/internal/flex"
	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/grindlemire/go-box3d/internal/layout"
)

// GapType selects how space between children or lines is computed.
type GapType uint8

const (
	// GapFixed puts a fixed gap between neighbours.
	GapFixed GapType = iota
	// GapSpaceBetween spreads the leftover space evenly between neighbours.
	GapSpaceBetween
)

func (g GapType) String() string {
	switch g {
	case GapFixed:
		return "fixed"
	case GapSpaceBetween:
		return "space-between"
	default:
		return fmt.Sprintf("GapType(%d)", uint8(g))
	}
}

// ParseGapType parses the names produced by GapType.String.
func ParseGapType(s string) (GapType, error) {
	switch s {
	case "", "fixed":
		return GapFixed, nil
	case "space-between":
		return GapSpaceBetween, nil
	}
	return GapFixed, fmt.Errorf("unknown gap type %q", s)
}

// Flexible places children one after another along Direction. With Wrap
// set, children that would overflow the line start a new line along
// WrapDirection. Fill children share leftover space on the flex axis and
// shrinkable children give up space when the line overflows.
type Flexible struct {
	Direction     geom.Direction
	Wrap          bool
	WrapDirection geom.Direction

	// Outer alignment of the block of lines inside the node.
	HorizontalAlign geom.Align
	VerticalAlign   geom.Align
	DepthAlign      geom.Align

	// Alignment of children within their line and of lines in the block.
	HorizontalInnerAlign geom.Align
	VerticalInnerAlign   geom.Align
	DepthInnerAlign      geom.Align

	GapType     GapType
	Gap         float64
	WrapGapType GapType
	WrapGap     float64
}

// FlexibleOption configures a Flexible.
type FlexibleOption func(*Flexible)

// NewFlexible returns a Flexible flowing along +X and wrapping along -Y,
// with everything centered.
func NewFlexible(opts ...FlexibleOption) *Flexible {
	f := &Flexible{
		Direction:            geom.PositiveX,
		WrapDirection:        geom.NegativeY,
		HorizontalAlign:      geom.AlignCenter,
		VerticalAlign:        geom.AlignCenter,
		DepthAlign:           geom.AlignCenter,
		HorizontalInnerAlign: geom.AlignCenter,
		VerticalInnerAlign:   geom.AlignCenter,
		DepthInnerAlign:      geom.AlignCenter,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithDirection sets the flex direction.
func WithDirection(d geom.Direction) FlexibleOption {
	return func(f *Flexible) { f.Direction = d }
}

// WithWrap enables wrapping into new lines along d.
func WithWrap(d geom.Direction) FlexibleOption {
	return func(f *Flexible) {
		f.Wrap = true
		f.WrapDirection = d
	}
}

// WithAlign sets the outer alignment.
func WithAlign(h, v, d geom.Align) FlexibleOption {
	return func(f *Flexible) {
		f.HorizontalAlign, f.VerticalAlign, f.DepthAlign = h, v, d
	}
}

// WithInnerAlign sets the alignment of children within their lines.
func WithInnerAlign(h, v, d geom.Align) FlexibleOption {
	return func(f *Flexible) {
		f.HorizontalInnerAlign, f.VerticalInnerAlign, f.DepthInnerAlign = h, v, d
	}
}

// WithGap sets a fixed gap between children.
func WithGap(gap float64) FlexibleOption {
	return func(f *Flexible) {
		f.Gap = gap
		f.GapType = GapFixed
	}
}

// WithGapType sets how the gap between children is computed.
func WithGapType(t GapType) FlexibleOption {
	return func(f *Flexible) { f.GapType = t }
}

// WithWrapGap sets a fixed gap between lines.
func WithWrapGap(gap float64) FlexibleOption {
	return func(f *Flexible) {
		f.WrapGap = gap
		f.WrapGapType = GapFixed
	}
}

// WithWrapGapType sets how the gap between lines is computed.
func WithWrapGapType(t GapType) FlexibleOption {
	return func(f *Flexible) { f.WrapGapType = t }
}

type line struct {
	size           geom.Vec3
	position       geom.Vec3
	children       []*layout.Node
	childSizes     []geom.Vec3
	childPositions []geom.Vec3
}

// flexAxes resolves the flex, wrap and third axes. A wrap direction on the
// flex axis falls back to the first other axis.
type flexAxes struct {
	flex, wrap, third geom.Axis
	wrapping          bool
}

func (f *Flexible) axes() flexAxes {
	flexAxis := f.Direction.Axis()
	first, second := flexAxis.Others()
	wrapAxis := f.WrapDirection.Axis()
	if wrapAxis == flexAxis {
		wrapAxis = first
	}
	third := first
	if wrapAxis == first {
		third = second
	}
	return flexAxes{flex: flexAxis, wrap: wrapAxis, third: third, wrapping: f.Wrap}
}

func (f *Flexible) fixedGap() float64 {
	if f.GapType == GapFixed {
		return f.Gap
	}
	return 0
}

func (f *Flexible) fixedWrapGap() float64 {
	if f.WrapGapType == GapFixed {
		return f.WrapGap
	}
	return 0
}

// lines partitions children greedily. Children are measured against size
// when measuring, and use their arranged size otherwise.
func (f *Flexible) lines(children []*layout.Node, ax flexAxes, size geom.Vec3, maxLineSize float64, measuring bool) []*line {
	if len(children) == 0 {
		return nil
	}

	cur := &line{}
	lines := []*line{cur}
	addGap := false
	for _, child := range children {
		gap := 0.0
		if addGap {
			gap = f.fixedGap()
		}

		var childSize geom.Vec3
		if measuring {
			childSize = child.MeasureSize(size)
		} else {
			childSize = child.ArrangeSize()
		}

		if len(cur.childSizes) > 0 && ax.wrapping &&
			cur.size.At(ax.flex)+childSize.At(ax.flex)+gap > maxLineSize {
			cur = &line{}
			lines = append(lines, cur)
			gap = 0
		}

		cur.childSizes = append(cur.childSizes, childSize)
		cur.children = append(cur.children, child)
		cur.size.Set(ax.flex, cur.size.At(ax.flex)+childSize.At(ax.flex)+gap)
		cur.size.Set(ax.wrap, max(cur.size.At(ax.wrap), childSize.At(ax.wrap)))
		cur.size.Set(ax.third, max(cur.size.At(ax.third), childSize.At(ax.third)))
		addGap = true
	}
	return lines
}

func (f *Flexible) totalLineSize(lines []*line, ax flexAxes) geom.Vec3 {
	var total geom.Vec3
	for _, l := range lines {
		if ax.wrapping {
			total.Set(ax.flex, max(total.At(ax.flex), l.size.At(ax.flex)))
			total.Set(ax.wrap, total.At(ax.wrap)+l.size.At(ax.wrap))
			total.Set(ax.third, max(total.At(ax.third), l.size.At(ax.third)))
		} else {
			total = total.Max(l.size)
		}
	}
	if ax.wrapping && len(lines) > 0 {
		total.Set(ax.wrap, total.At(ax.wrap)+f.fixedWrapGap()*float64(len(lines)-1))
	}
	return total
}

// Measure implements layout.Strategy.
func (f *Flexible) Measure(node *layout.Node, size, lo, hi geom.Vec3) geom.Bounds {
	ax := f.axes()
	maxLineSize := size.At(ax.flex)
	if node.SizeType(ax.flex) == layout.SizeLayout {
		maxLineSize = hi.At(ax.flex)
	}

	lines := f.lines(node.LayoutChildren(), ax, size, maxLineSize, true)
	if debug.Enabled() {
		debug.Log("flexible measure", "node", node, "lines", len(lines))
	}

	layoutSize := f.totalLineSize(lines, ax)
	for _, axis := range geom.Axes {
		if node.SizeType(axis) == layout.SizeLayout {
			layoutSize.Set(axis, geom.Clamp(layoutSize.At(axis), lo.At(axis), hi.At(axis)))
		} else {
			layoutSize.Set(axis, size.At(axis))
		}
	}

	f.fillFlexAxis(lines, ax.flex, layoutSize.At(ax.flex))
	f.fillWrapAxis(lines, ax.wrap, layoutSize.At(ax.wrap))
	for _, child := range node.LayoutChildren() {
		s := layoutSize.At(ax.third)
		child.SetShrinkFillSizeAxis(ax.third, s, s, false)
	}

	return geom.NewBounds(geom.Zero, layoutSize)
}

func setChildSize(l *line, i int, axis geom.Axis, size, layoutSize float64) {
	l.children[i].SetShrinkFillSizeAxis(axis, size, layoutSize, true)
	l.childSizes[i].Set(axis, size)
}

func (f *Flexible) fillFlexAxis(lines []*line, axis geom.Axis, size float64) {
	gap := f.fixedGap()
	for _, l := range lines {
		items := make([]flex.Item, len(l.children))
		for i, child := range l.children {
			items[i] = flex.NewItem(child, axis, l.childSizes[i].At(axis), l.size.At(axis), size)
		}

		flex.GrowOrShrink(items, l.size.At(axis), size, gap)

		for i := range l.children {
			setChildSize(l, i, axis, items[i].FinalSize, size)
		}
	}
}

// fillWrapAxis treats every line as one flex item on the wrap axis, then
// sizes the line's children to the line's final size.
func (f *Flexible) fillWrapAxis(lines []*line, axis geom.Axis, size float64) {
	items := make([]flex.Item, len(lines))
	remaining := size
	for li, l := range lines {
		lineSize := l.size.At(axis)
		item := flex.Item{
			StartSize: lineSize,
			MaxSize:   l.children[0].MaxSize(axis, size),
			FinalSize: lineSize,
		}
		if size > 0 {
			item.ShrinkFactor = lineSize / size
		}
		for i, child := range l.children {
			if child.CanShrink(axis) {
				item.MinSize = max(item.MinSize, child.MinSize(axis, size))
			} else {
				item.MinSize = max(item.MinSize, l.childSizes[i].At(axis))
			}
			item.MaxSize = max(item.MaxSize, child.MaxSize(axis, size))
			if frac, ok := child.FillFraction(axis); ok {
				item.GrowFactor = max(item.GrowFactor, frac)
			}
		}
		remaining -= lineSize
		items[li] = item
	}

	if remaining > 1e-6 || remaining < -1e-6 {
		flex.GrowOrShrink(items, size-remaining, size, f.fixedWrapGap())
	}

	for li, l := range lines {
		final := items[li].FinalSize
		for i, child := range l.children {
			if frac, ok := child.FillFraction(axis); ok {
				hi := min(child.MaxSize(axis, size), final)
				setChildSize(l, i, axis, geom.Clamp(frac*size, child.MinSize(axis, size), hi), size)
			} else {
				setChildSize(l, i, axis, final, size)
			}
		}
	}
}

func (f *Flexible) innerAlign() [3]geom.Align {
	return [3]geom.Align{f.HorizontalInnerAlign, f.VerticalInnerAlign, f.DepthInnerAlign}
}

func (f *Flexible) outerAlign() [3]geom.Align {
	return [3]geom.Align{f.HorizontalAlign, f.VerticalAlign, f.DepthAlign}
}

// Arrange implements layout.Strategy.
func (f *Flexible) Arrange(node *layout.Node, layoutSize geom.Vec3) {
	ax := f.axes()
	first, second := ax.flex.Others()
	flexSign := f.Direction.Sign()
	wrapSign := f.WrapDirection.Sign()
	inner := f.innerAlign()

	lines := f.lines(node.LayoutChildren(), ax, layoutSize, layoutSize.At(ax.flex)+1e-4, false)
	if len(lines) == 0 {
		return
	}

	for _, l := range lines {
		lineGap := 0.0
		if len(l.children) > 1 {
			switch f.GapType {
			case GapFixed:
				lineGap = f.Gap
			case GapSpaceBetween:
				lineGap = (layoutSize.At(ax.flex) - l.size.At(ax.flex)) / float64(len(l.children)-1)
				l.size.Set(ax.flex, layoutSize.At(ax.flex))
			}
		}

		next := flexSign * -l.size.At(ax.flex) / 2
		for _, cs := range l.childSizes {
			var pos geom.Vec3
			pos.Set(ax.flex, next+flexSign*cs.At(ax.flex)/2)
			pos.Set(first, geom.AlignAxis(cs, l.size, first, inner[first]))
			pos.Set(second, geom.AlignAxis(cs, l.size, second, inner[second]))
			l.childPositions = append(l.childPositions, pos)
			next += flexSign * (cs.At(ax.flex) + lineGap)
		}
	}

	total := f.totalLineSize(lines, ax)
	if ax.wrapping {
		wrapGap := 0.0
		if len(lines) > 1 {
			switch f.WrapGapType {
			case GapFixed:
				wrapGap = f.WrapGap
			case GapSpaceBetween:
				wrapGap = (layoutSize.At(ax.wrap) - total.At(ax.wrap)) / float64(len(lines)-1)
				total.Set(ax.wrap, layoutSize.At(ax.wrap))
			}
		}

		next := wrapSign * -total.At(ax.wrap) / 2
		for _, l := range lines {
			l.position.Set(ax.wrap, next+wrapSign*l.size.At(ax.wrap)/2)
			l.position.Set(ax.flex, geom.AlignAxis(l.size, total, ax.flex, inner[ax.flex]))
			l.position.Set(ax.third, geom.AlignAxis(l.size, total, ax.third, inner[ax.third]))
			next += wrapSign*l.size.At(ax.wrap) + wrapGap*wrapSign
		}
	} else {
		for _, axis := range geom.Axes {
			lines[0].position.Set(axis, geom.AlignAxis(lines[0].size, total, axis, inner[axis]))
		}
	}

	outer := f.outerAlign()
	var offset geom.Vec3
	for _, axis := range geom.Axes {
		offset.Set(axis, geom.AlignAxis(total, layoutSize, axis, outer[axis]))
	}

	for _, l := range lines {
		for i, child := range l.children {
			child.SetPositionResult(offset.Add(l.position).Add(l.childPositions[i]))
			child.SetRotationResult(geom.Identity)
		}
	}
}

// Lines reports which children share a line after the last arrange, as
// child indices. It re-partitions from the arranged sizes and is meant for
// inspection and tests.
func (f *Flexible) Lines(node *layout.Node) [][]int {
	ax := f.axes()
	size := node.Result().AdapterBounds.Size.Sub(node.Padding().Size()).Max(geom.Zero)
	lines := f.lines(node.LayoutChildren(), ax, size, size.At(ax.flex)+1e-4, false)
	out := make([][]int, len(lines))
	for i, l := range lines {
		for _, child := range l.children {
			out[i] = append(out[i], child.Index())
		}
	}
	return out
}
