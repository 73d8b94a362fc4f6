// strategies.go re-exports the ready-made strategies, constraints,
// modifiers and adapters.
package box3d

import (
	"github.com/grindlemire/go-box3d/internal/adapters"
	"github.com/grindlemire/go-box3d/internal/layouts"
)

type (
	Flexible       = layouts.Flexible
	FlexibleOption = layouts.FlexibleOption
	GapType        = layouts.GapType

	Grid          = layouts.Grid
	GridOption    = layouts.GridOption
	GridDimension = layouts.GridDimension
	Cell          = layouts.Cell
	CellType      = layouts.CellType
	CellSizeType  = layouts.CellSizeType

	Diagonal        = layouts.Diagonal
	AlignConstraint = layouts.AlignConstraint
	OffsetModifier  = layouts.OffsetModifier

	BoundsAdapter = adapters.Bounds
	AspectRatio   = adapters.AspectRatio
)

const (
	GapFixed        = layouts.GapFixed
	GapSpaceBetween = layouts.GapSpaceBetween

	CellRectangle = layouts.CellRectangle
	CellHexagonal = layouts.CellHexagonal
	CellFill      = layouts.CellFill
	CellFixed     = layouts.CellFixed
)

var (
	NewFlexible     = layouts.NewFlexible
	WithDirection   = layouts.WithDirection
	WithWrap        = layouts.WithWrap
	WithAlign       = layouts.WithAlign
	WithInnerAlign  = layouts.WithInnerAlign
	WithGap         = layouts.WithGap
	WithGapType     = layouts.WithGapType
	WithWrapGap     = layouts.WithWrapGap
	WithWrapGapType = layouts.WithWrapGapType

	NewGrid            = layouts.NewGrid
	WithCellType       = layouts.WithCellType
	WithCells          = layouts.WithCells
	WithGridDirections = layouts.WithGridDirections
	WithCellSize       = layouts.WithCellSize
	WithSpacing        = layouts.WithSpacing
	WithCellAlign      = layouts.WithCellAlign
	SetCell            = layouts.SetCell
	ClearCell          = layouts.ClearCell
	CellOf             = layouts.CellOf

	NewDiagonal        = layouts.NewDiagonal
	NewAlignConstraint = layouts.NewAlignConstraint

	NewBoundsAdapter     = adapters.NewBounds
	NewFlatBoundsAdapter = adapters.NewFlatBounds
	NewAspectRatio       = adapters.NewAspectRatio
)
