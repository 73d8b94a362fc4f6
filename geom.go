// geom.go re-exports geometry types from internal/geom.
package box3d

import "github.com/grindlemire/go-box3d/internal/geom"

// Vec3 is a 3D vector.
type Vec3 = geom.Vec3

// Quat is a rotation quaternion.
type Quat = geom.Quat

// Bounds is an axis aligned box given by center and size.
type Bounds = geom.Bounds

// Directions holds one value per box face, used for margin and padding.
type Directions = geom.Directions

// Axis identifies X, Y or Z.
type Axis = geom.Axis

const (
	X = geom.X
	Y = geom.Y
	Z = geom.Z
)

// Direction is a signed axis.
type Direction = geom.Direction

const (
	PositiveX = geom.PositiveX
	NegativeX = geom.NegativeX
	PositiveY = geom.PositiveY
	NegativeY = geom.NegativeY
	PositiveZ = geom.PositiveZ
	NegativeZ = geom.NegativeZ
)

// Align positions a box along one axis.
type Align = geom.Align

const (
	AlignStart  = geom.AlignStart
	AlignCenter = geom.AlignCenter
	AlignEnd    = geom.AlignEnd
)

var (
	Zero     = geom.Zero
	One      = geom.One
	Identity = geom.Identity
)

// V3 builds a vector.
func V3(x, y, z float64) Vec3 { return geom.V3(x, y, z) }

// Euler builds a rotation from angles in degrees.
func Euler(x, y, z float64) Quat { return geom.Euler(x, y, z) }

// NewBounds builds a box from center and size.
func NewBounds(center, size Vec3) Bounds { return geom.NewBounds(center, size) }
