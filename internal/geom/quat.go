package geom

import "math"

// Quat is a rotation quaternion.
type Quat struct {
	X, Y, Z, W float64
}

// Identity is the no-op rotation.
var Identity = Quat{W: 1}

// AxisAngle returns a rotation of degrees around axis.
func AxisAngle(axis Vec3, degrees float64) Quat {
	l := math.Sqrt(axis.Dot(axis))
	if l == 0 {
		return Identity
	}
	half := degrees * math.Pi / 360
	s := math.Sin(half) / l
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: math.Cos(half)}
}

// Euler returns a rotation from angles in degrees, applied Z first, then X, then Y.
func Euler(x, y, z float64) Quat {
	qx := AxisAngle(V3(1, 0, 0), x)
	qy := AxisAngle(V3(0, 1, 0), y)
	qz := AxisAngle(V3(0, 0, 1), z)
	return qy.Mul(qx).Mul(qz)
}

// Mul composes two rotations; the result applies o first, then q.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Inverse returns the inverse rotation. q is assumed normalized.
func (q Quat) Inverse() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Normalize scales q to unit length. A zero quaternion becomes Identity.
func (q Quat) Normalize() Quat {
	l := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if l == 0 {
		return Identity
	}
	return Quat{X: q.X / l, Y: q.Y / l, Z: q.Z / l, W: q.W / l}
}

// IsIdentity reports whether q is (approximately) the identity rotation.
// q and -q describe the same rotation.
func (q Quat) IsIdentity() bool {
	return Approx(q.X, 0) && Approx(q.Y, 0) && Approx(q.Z, 0) && Approx(math.Abs(q.W), 1)
}

// IsZero reports whether q is the zero value, which is not a valid rotation.
func (q Quat) IsZero() bool {
	return q == Quat{}
}
