package flex

import (
	"testing"

	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/stretchr/testify/assert"
)

const delta = 1e-6

func finals(items []Item) []float64 {
	out := make([]float64, len(items))
	for i, item := range items {
		out[i] = item.FinalSize
	}
	return out
}

func assertFinals(t *testing.T, want []float64, items []Item) {
	t.Helper()
	got := finals(items)
	if !assert.Len(t, got, len(want)) {
		return
	}
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "item %d", i)
	}
}

func TestGrow(t *testing.T) {
	type tc struct {
		items []Item
		space float64
		gap   float64
		want  []float64
	}

	tests := map[string]tc{
		"fill 1,1,2 splits proportionally": {
			items: []Item{
				{GrowFactor: 1, MaxSize: geom.MaxValue},
				{GrowFactor: 1, MaxSize: geom.MaxValue},
				{GrowFactor: 2, MaxSize: geom.MaxValue},
			},
			space: 400,
			want:  []float64{100, 100, 200},
		},
		"fixed item keeps start and grower takes the rest": {
			items: []Item{
				{StartSize: 30, MaxSize: geom.MaxValue},
				{GrowFactor: 1, MaxSize: geom.MaxValue},
			},
			space: 100,
			want:  []float64{30, 70},
		},
		"gap is removed once between items": {
			items: []Item{
				{GrowFactor: 1, MaxSize: geom.MaxValue},
				{GrowFactor: 1, MaxSize: geom.MaxValue},
			},
			space: 100,
			gap:   10,
			want:  []float64{45, 45},
		},
		"max clamp gives the remainder to others": {
			items: []Item{
				{GrowFactor: 1, MaxSize: 20},
				{GrowFactor: 1, MaxSize: geom.MaxValue},
			},
			space: 100,
			want:  []float64{20, 80},
		},
		"min clamp removes item from distribution": {
			items: []Item{
				{GrowFactor: 1, MinSize: 80, MaxSize: geom.MaxValue},
				{GrowFactor: 1, MaxSize: geom.MaxValue},
			},
			space: 100,
			want:  []float64{80, 20},
		},
		"min clamp after max clamp still fills exactly": {
			items: []Item{
				{GrowFactor: 1, MaxSize: 40},
				{GrowFactor: 1, MinSize: 80, MaxSize: 1000},
			},
			space: 100,
			want:  []float64{20, 80},
		},
		"fractional fill takes a share of space": {
			items: []Item{
				{GrowFactor: 0.5, MaxSize: geom.MaxValue},
			},
			space: 100,
			want:  []float64{50},
		},
		"zero factor start is clamped": {
			items: []Item{
				{StartSize: 50, MinSize: 0, MaxSize: 10},
			},
			space: 100,
			want:  []float64{10},
		},
		"start already at max": {
			items: []Item{
				{GrowFactor: 1, StartSize: 30, MaxSize: 30},
				{GrowFactor: 1, MaxSize: geom.MaxValue},
			},
			space: 100,
			want:  []float64{30, 70},
		},
		"gap larger than space never goes negative": {
			items: []Item{
				{GrowFactor: 1, MaxSize: geom.MaxValue},
				{GrowFactor: 1, MaxSize: geom.MaxValue},
			},
			space: 5,
			gap:   10,
			want:  []float64{0, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			Grow(tt.items, tt.space, tt.gap)
			assertFinals(t, tt.want, tt.items)
		})
	}
}

func TestGrow_ExactFill(t *testing.T) {
	items := []Item{
		{GrowFactor: 1, MaxSize: geom.MaxValue},
		{GrowFactor: 3, MaxSize: geom.MaxValue},
		{GrowFactor: 2, MaxSize: 40},
		{StartSize: 12, MaxSize: geom.MaxValue},
	}
	Grow(items, 300, 4)

	assert.InDelta(t, 300.0, Sum(items, 4), delta)
	for i, item := range items {
		assert.GreaterOrEqual(t, item.FinalSize, item.MinSize, "item %d", i)
		assert.LessOrEqual(t, item.FinalSize, item.MaxSize, "item %d", i)
	}
}

func TestShrink(t *testing.T) {
	type tc struct {
		items []Item
		space float64
		gap   float64
		want  []float64
	}

	tests := map[string]tc{
		"proportional shrink": {
			items: []Item{
				{StartSize: 60, ShrinkFactor: 0.5, MaxSize: geom.MaxValue},
				{StartSize: 60, ShrinkFactor: 0.5, MaxSize: geom.MaxValue},
			},
			space: 100,
			want:  []float64{50, 50},
		},
		"min bound holds and others absorb": {
			items: []Item{
				{StartSize: 60, ShrinkFactor: 0.5, MinSize: 55, MaxSize: geom.MaxValue},
				{StartSize: 60, ShrinkFactor: 0.5, MaxSize: geom.MaxValue},
			},
			space: 100,
			want:  []float64{55, 45},
		},
		"items that cannot shrink keep their size": {
			items: []Item{
				{StartSize: 70, MaxSize: geom.MaxValue},
				{StartSize: 70, ShrinkFactor: 0.5, MaxSize: geom.MaxValue},
			},
			space: 100,
			want:  []float64{70, 30},
		},
		"gap reduces shrink space": {
			items: []Item{
				{StartSize: 50, ShrinkFactor: 0.5, MaxSize: geom.MaxValue},
				{StartSize: 50, ShrinkFactor: 0.5, MaxSize: geom.MaxValue},
			},
			space: 90,
			gap:   10,
			want:  []float64{40, 40},
		},
		"all at min": {
			items: []Item{
				{StartSize: 10, ShrinkFactor: 0.5, MinSize: 10, MaxSize: geom.MaxValue},
				{StartSize: 10, ShrinkFactor: 0.5, MinSize: 10, MaxSize: geom.MaxValue},
			},
			space: 5,
			want:  []float64{10, 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			Shrink(tt.items, tt.space, tt.gap)
			assertFinals(t, tt.want, tt.items)
			for i, item := range tt.items {
				assert.GreaterOrEqual(t, item.FinalSize, item.MinSize, "item %d", i)
			}
		})
	}
}

func TestZeroItems(t *testing.T) {
	assert.NotPanics(t, func() {
		Grow(nil, 100, 5)
		Shrink(nil, 100, 5)
		GrowOrShrink([]Item{}, 0, 100, 5)
	})
	assert.Equal(t, 0.0, Sum(nil, 5))
}

func TestGrowOrShrink(t *testing.T) {
	grow := []Item{{GrowFactor: 1, MaxSize: geom.MaxValue}}
	GrowOrShrink(grow, 0, 50, 0)
	assert.InDelta(t, 50.0, grow[0].FinalSize, delta)

	shrink := []Item{{StartSize: 80, ShrinkFactor: 1, MaxSize: geom.MaxValue}}
	GrowOrShrink(shrink, 80, 50, 0)
	assert.InDelta(t, 50.0, shrink[0].FinalSize, delta)
}

type fakeNode struct {
	fill      float64
	isFill    bool
	lo, hi    float64
	canShrink bool
}

func (n fakeNode) FillFraction(geom.Axis) (float64, bool) { return n.fill, n.isFill }
func (n fakeNode) MinSize(geom.Axis, float64) float64     { return n.lo }
func (n fakeNode) MaxSize(geom.Axis, float64) float64     { return n.hi }
func (n fakeNode) CanShrink(geom.Axis) bool               { return n.canShrink }

func TestNewItem(t *testing.T) {
	type tc struct {
		node fakeNode
		want Item
	}

	tests := map[string]tc{
		"fill node grows from zero": {
			node: fakeNode{fill: 0.5, isFill: true, hi: geom.MaxValue},
			want: Item{GrowFactor: 0.5, MaxSize: geom.MaxValue},
		},
		"fixed node shrinks by share": {
			node: fakeNode{lo: 2, hi: 40, canShrink: true},
			want: Item{StartSize: 20, ShrinkFactor: 0.25, MinSize: 2, MaxSize: 40},
		},
		"fixed node without min cannot shrink": {
			node: fakeNode{hi: geom.MaxValue},
			want: Item{StartSize: 20, MaxSize: geom.MaxValue},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := NewItem(tt.node, geom.X, 20, 80, 100)
			assert.Equal(t, tt.want, got)
		})
	}
}
