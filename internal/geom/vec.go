package geom

import "math"

// Vec3 is a 3D vector. Components are indexed by Axis.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a Vec3 from its components.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns a Vec3 with every component set to v.
func Splat(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Zero is the zero vector.
var Zero = Vec3{}

// One is the vector with every component set to 1.
var One = Vec3{X: 1, Y: 1, Z: 1}

// At returns the component on the given axis.
func (v Vec3) At(axis Axis) float64 {
	switch axis {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		return v.Z
	}
}

// Set assigns the component on the given axis.
func (v *Vec3) Set(axis Axis, value float64) {
	switch axis {
	case X:
		v.X = value
	case Y:
		v.Y = value
	default:
		v.Z = value
	}
}

// With returns a copy of v with the component on axis replaced.
func (v Vec3) With(axis Axis, value float64) Vec3 {
	v.Set(axis, value)
	return v
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mul multiplies component-wise.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Div divides component-wise. Division by zero follows IEEE rules;
// use SafeDivZero or SafeDivOne when the divisor may be degenerate.
func (v Vec3) Div(o Vec3) Vec3 {
	return Vec3{X: v.X / o.X, Y: v.Y / o.Y, Z: v.Z / o.Z}
}

// Scale multiplies every component by f.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Abs applies math.Abs to each component.
func (v Vec3) Abs() Vec3 {
	return Vec3{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// Min returns the component-wise minimum.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{X: min(v.X, o.X), Y: min(v.Y, o.Y), Z: min(v.Z, o.Z)}
}

// Max returns the component-wise maximum.
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{X: max(v.X, o.X), Y: max(v.Y, o.Y), Z: max(v.Z, o.Z)}
}

// Clamp restricts each component to [lo, hi].
// If lo > hi on an axis, lo wins.
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return Vec3{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
		Z: Clamp(v.Z, lo.Z, hi.Z),
	}
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// ApproxEqual reports whether every component differs by less than Epsilon.
func (v Vec3) ApproxEqual(o Vec3) bool {
	return Approx(v.X, o.X) && Approx(v.Y, o.Y) && Approx(v.Z, o.Z)
}
