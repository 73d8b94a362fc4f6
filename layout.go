// layout.go re-exports engine types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package box3d

import "github.com/grindlemire/go-box3d/internal/layout"

// Engine owns a set of nodes and runs layout cycles over them.
type Engine = layout.Engine

// EngineOption configures an Engine.
type EngineOption = layout.EngineOption

// Node is one box in the layout tree.
type Node = layout.Node

// Handle addresses a node inside its engine.
type Handle = layout.Handle

// NoHandle is the handle of a missing node.
const NoHandle = layout.NoHandle

// Option configures a Node.
type Option = layout.Option

// Result holds the outcome of the last layout cycle for a node.
type Result = layout.Result

// Strategy positions a node's children.
type Strategy = layout.Strategy

// Adapter measures a node's own content.
type Adapter = layout.Adapter

// Constraint places a node relative to the node it depends on.
type Constraint = layout.Constraint

// Modifier adjusts children after the strategy arranged them.
type Modifier = layout.Modifier

// TransformUpdater applies computed transforms to the host.
type TransformUpdater = layout.TransformUpdater

// ImmediateUpdater accepts every transform as soon as it is computed.
type ImmediateUpdater = layout.ImmediateUpdater

// RootSizer supplies the space available to a root node.
type RootSizer = layout.RootSizer

// Aliver is implemented by entities that can report their own destruction.
type Aliver = layout.Aliver

// Size is the per-axis size rule of a node.
type Size = layout.Size

// SizeKind specifies how a Size is interpreted.
type SizeKind = layout.SizeKind

const (
	SizeComponent = layout.SizeComponent
	SizeFixed     = layout.SizeFixed
	SizeFill      = layout.SizeFill
	SizeLayout    = layout.SizeLayout
)

// Limit is a per-axis min or max rule.
type Limit = layout.Limit

// LimitKind specifies how a Limit is interpreted.
type LimitKind = layout.LimitKind

const (
	LimitNone  = layout.LimitNone
	LimitFixed = layout.LimitFixed
	LimitFill  = layout.LimitFill
)

var (
	ErrSelfDependency   = layout.ErrSelfDependency
	ErrCyclicDependency = layout.ErrCyclicDependency
)

// NewEngine creates an empty engine.
func NewEngine(opts ...EngineOption) *Engine { return layout.NewEngine(opts...) }

// WithRootSizer sets the space available to roots.
func WithRootSizer(fn RootSizer) EngineOption { return layout.WithRootSizer(fn) }

// WithTransformUpdater sets the updater used by nodes without their own.
func WithTransformUpdater(u TransformUpdater) EngineOption { return layout.WithTransformUpdater(u) }

// Component sizes an axis from the adapter's content.
func Component() Size { return layout.Component() }

// Fixed sizes an axis to an absolute length.
func Fixed(length float64) Size { return layout.Fixed(length) }

// Fill sizes an axis to a fraction of the space the parent allocates.
func Fill(fraction float64) Size { return layout.Fill(fraction) }

// FromLayout sizes an axis to the arranged children.
func FromLayout() Size { return layout.FromLayout() }

// NoLimit leaves an axis unbounded.
func NoLimit() Limit { return layout.NoLimit() }

// FixedLimit bounds an axis by an absolute length.
func FixedLimit(length float64) Limit { return layout.FixedLimit(length) }

// FillLimit bounds an axis by a fraction of the parent's layout size.
func FillLimit(fraction float64) Limit { return layout.FillLimit(fraction) }

var (
	WithSize      = layout.WithSize
	WithWidth     = layout.WithWidth
	WithHeight    = layout.WithHeight
	WithDepth     = layout.WithDepth
	WithFixedSize = layout.WithFixedSize
	WithMin       = layout.WithMin
	WithMax       = layout.WithMax
	WithMargin    = layout.WithMargin
	WithPadding   = layout.WithPadding
	WithOffset    = layout.WithOffset
	WithScale     = layout.WithScale
	WithRotation  = layout.WithRotation
	WithStrategy  = layout.WithStrategy
	WithAdapter   = layout.WithAdapter
	WithSkip      = layout.WithSkip
)
