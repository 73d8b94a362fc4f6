package geom

// Axis identifies one of the three spatial axes.
type Axis uint8

const (
	X Axis = iota
	Y
	Z
)

// Axes lists X, Y, Z in order, for range loops.
var Axes = [3]Axis{X, Y, Z}

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return "?"
	}
}

// Others returns the two axes that are not a, in ascending order.
func (a Axis) Others() (Axis, Axis) {
	switch a {
	case X:
		return Y, Z
	case Y:
		return X, Z
	default:
		return X, Y
	}
}

// Third returns the axis that is neither a nor b.
func Third(a, b Axis) Axis {
	o1, o2 := a.Others()
	if o1 == b {
		return o2
	}
	return o1
}

// Unit returns the unit vector along the positive direction of a.
func (a Axis) Unit() Vec3 {
	var v Vec3
	v.Set(a, 1)
	return v
}

// Direction is an axis together with a sign.
type Direction uint8

const (
	PositiveX Direction = iota
	NegativeX
	PositiveY
	NegativeY
	PositiveZ
	NegativeZ
)

var directionNames = [...]string{"+x", "-x", "+y", "-y", "+z", "-z"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "?"
}

// ParseDirection parses the names produced by Direction.String.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return PositiveX, false
}

// Axis returns the axis the direction runs along.
func (d Direction) Axis() Axis {
	return Axis(d / 2)
}

// Sign returns 1 for positive directions and -1 for negative ones.
func (d Direction) Sign() float64 {
	if d%2 == 0 {
		return 1
	}
	return -1
}

// Opposite returns the direction on the same axis with the other sign.
func (d Direction) Opposite() Direction {
	if d%2 == 0 {
		return d + 1
	}
	return d - 1
}

// Vector returns the unit vector pointing along d.
func (d Direction) Vector() Vec3 {
	return d.Axis().Unit().Scale(d.Sign())
}

// DirectionsOf returns the positive and negative directions of axis.
func DirectionsOf(axis Axis) (Direction, Direction) {
	return Direction(axis * 2), Direction(axis*2 + 1)
}

// Plane is a pair of axes.
type Plane uint8

const (
	XY Plane = iota
	XZ
	ZY
)

// Axes returns the two axes spanning the plane.
func (p Plane) Axes() (Axis, Axis) {
	switch p {
	case XY:
		return X, Y
	case XZ:
		return X, Z
	default:
		return Z, Y
	}
}

// Align positions a box along one axis relative to another.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

var alignNames = [...]string{"start", "center", "end"}

func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "?"
}

// ParseAlign parses "start", "center" or "end".
func ParseAlign(s string) (Align, bool) {
	for i, name := range alignNames {
		if name == s {
			return Align(i), true
		}
	}
	return AlignCenter, false
}
