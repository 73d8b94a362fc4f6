package geom

// Directions holds one value per face of a box: right, left, top, bottom,
// back, front. Margin and padding are expressed this way.
type Directions struct {
	Right, Left, Top, Bottom, Back, Front float64
}

// DirectionsAll returns Directions with the same value on every face.
func DirectionsAll(v float64) Directions {
	return Directions{Right: v, Left: v, Top: v, Bottom: v, Back: v, Front: v}
}

// DirectionsSymmetric returns Directions with one value per axis applied to
// both faces of that axis.
func DirectionsSymmetric(x, y, z float64) Directions {
	return Directions{Right: x, Left: x, Top: y, Bottom: y, Back: z, Front: z}
}

// Get returns the value for the face d points at.
func (d Directions) Get(dir Direction) float64 {
	switch dir {
	case PositiveX:
		return d.Right
	case NegativeX:
		return d.Left
	case PositiveY:
		return d.Top
	case NegativeY:
		return d.Bottom
	case PositiveZ:
		return d.Back
	default:
		return d.Front
	}
}

// Size returns the total extent added on each axis.
func (d Directions) Size() Vec3 {
	return Vec3{X: d.Right + d.Left, Y: d.Top + d.Bottom, Z: d.Back + d.Front}
}

// Center returns the offset of the inner box's center caused by uneven faces.
func (d Directions) Center() Vec3 {
	return Vec3{
		X: (d.Right - d.Left) * 0.5,
		Y: (d.Top - d.Bottom) * 0.5,
		Z: (d.Back - d.Front) * 0.5,
	}
}

// IsZero returns true if every face is zero.
func (d Directions) IsZero() bool {
	return d == Directions{}
}
