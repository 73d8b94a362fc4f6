// Package flex distributes a line of space between items that can grow
// toward a maximum or shrink toward a minimum.
//
// The distributor works on one axis at a time. Strategies build one [Item]
// per child, call [GrowOrShrink], and read FinalSize back.
package flex

import "github.com/grindlemire/go-box3d/internal/geom"

// Item holds the distribution state for one child on one axis.
// Items are built per call and never stored on nodes.
type Item struct {
	MinSize      float64
	MaxSize      float64
	StartSize    float64
	ShrinkFactor float64
	GrowFactor   float64
	FinalSize    float64
}

// Node is the sizing view of a layout node that NewItem needs.
type Node interface {
	// FillFraction returns the fill fraction on axis, or false when the
	// axis is not sized by Fill.
	FillFraction(axis geom.Axis) (float64, bool)
	MinSize(axis geom.Axis, parentSize float64) float64
	MaxSize(axis geom.Axis, parentSize float64) float64
	CanShrink(axis geom.Axis) bool
}

// NewItem builds the conventional item for a child: fill children grow by
// their fraction from zero, everything else starts at childSize and shrinks
// in proportion to its share of usedSize when the node allows it.
func NewItem(node Node, axis geom.Axis, childSize, usedSize, layoutSize float64) Item {
	grow, _ := node.FillFraction(axis)

	item := Item{
		MinSize:    node.MinSize(axis, layoutSize),
		MaxSize:    node.MaxSize(axis, layoutSize),
		GrowFactor: grow,
	}
	if grow == 0 {
		item.StartSize = childSize
	}
	if node.CanShrink(axis) && usedSize > 0 {
		item.ShrinkFactor = childSize / usedSize
	}
	return item
}

// GrowOrShrink grows the items when space exceeds used, otherwise shrinks them.
func GrowOrShrink(items []Item, used, space, gap float64) {
	if space > used {
		Grow(items, space, gap)
	} else {
		Shrink(items, space, gap)
	}
}

// Grow distributes space between items in proportion to their grow factor.
//
// Items with no grow factor keep their clamped start size. When the total
// factor is below one each growing item takes factor*space, so a lone item
// with factor 0.5 fills half the line.
func Grow(items []Item, space, gap float64) {
	if len(items) == 0 {
		return
	}
	space = max(0, space-gap*float64(len(items)-1))

	total := 0.0
	growing := make([]bool, len(items))
	for i := range items {
		item := &items[i]
		switch {
		case item.GrowFactor == 0:
			item.FinalSize = geom.Clamp(item.StartSize, item.MinSize, item.MaxSize)
		case item.StartSize >= item.MaxSize:
			item.FinalSize = item.MaxSize
		default:
			item.FinalSize = item.StartSize
			total += item.GrowFactor
			growing[i] = true
		}
		space = max(0, space-item.FinalSize)
	}

	// Each pass hands out the free space, then freezes only the items
	// clamped in the direction of the net violation and repeats.
	frozen := make([]bool, len(items))
	clamped := make([]float64, len(items))
	for i := range items {
		frozen[i] = !growing[i]
	}
	for total > 0 {
		free, active := space, 0.0
		for i, item := range items {
			switch {
			case !frozen[i]:
				active += item.GrowFactor
			case growing[i]:
				free -= item.FinalSize - item.StartSize
			}
		}
		if active == 0 {
			break
		}

		violation := 0.0
		for i := range items {
			item := &items[i]
			if frozen[i] {
				continue
			}
			var share float64
			if total >= 1 {
				share = max(0, free) * item.GrowFactor / active
			} else {
				share = space * item.GrowFactor
			}
			want := item.StartSize + share
			item.FinalSize = geom.Clamp(want, item.MinSize, item.MaxSize)
			clamped[i] = item.FinalSize - want
			violation += clamped[i]
		}

		// Every pass freezes at least one item.
		for i := range items {
			if frozen[i] {
				continue
			}
			switch {
			case violation > 1e-9:
				frozen[i] = clamped[i] > 0
			case violation < -1e-9:
				frozen[i] = clamped[i] < 0
			default:
				frozen[i] = true
			}
		}
	}
}

// Shrink fits items into space by reducing the ones that can shrink in
// proportion to their shrink factor, never below their minimum.
func Shrink(items []Item, space, gap float64) {
	if len(items) == 0 {
		return
	}
	space = max(0, space-gap*float64(len(items)-1))

	total := 0.0
	for i := range items {
		item := &items[i]
		item.FinalSize = geom.Clamp(item.StartSize, item.MinSize, item.MaxSize)
		if item.FinalSize > item.MinSize && item.ShrinkFactor > 0 {
			total += item.ShrinkFactor
		} else {
			space = max(0, space-item.FinalSize)
		}
	}

	for again := total > 0; again; {
		again = false
		for i := range items {
			item := &items[i]
			if item.ShrinkFactor <= 0 || item.FinalSize <= item.MinSize {
				continue
			}

			item.FinalSize = space * item.ShrinkFactor / total
			if item.FinalSize < item.MinSize {
				item.FinalSize = item.MinSize
				space = max(0, space-item.MinSize)
				total -= item.ShrinkFactor
				again = total > 0
			}
		}
	}
}

// Sum returns the total final size of items plus the gaps between them.
func Sum(items []Item, gap float64) float64 {
	if len(items) == 0 {
		return 0
	}
	total := gap * float64(len(items)-1)
	for _, item := range items {
		total += item.FinalSize
	}
	return total
}
