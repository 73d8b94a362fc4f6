package geom

// Bounds is an axis-aligned box described by its center and size.
type Bounds struct {
	Center Vec3
	Size   Vec3
}

// NewBounds creates Bounds from a center and size.
func NewBounds(center, size Vec3) Bounds {
	return Bounds{Center: center, Size: size}
}

// MinMaxBounds creates Bounds spanning lo to hi.
func MinMaxBounds(lo, hi Vec3) Bounds {
	return Bounds{Center: lo.Add(hi).Scale(0.5), Size: hi.Sub(lo)}
}

// Extents returns half the size.
func (b Bounds) Extents() Vec3 {
	return b.Size.Scale(0.5)
}

// Min returns the minimum corner.
func (b Bounds) Min() Vec3 {
	return b.Center.Sub(b.Extents())
}

// Max returns the maximum corner.
func (b Bounds) Max() Vec3 {
	return b.Center.Add(b.Extents())
}

// Encapsulate grows the bounds to include p.
func (b Bounds) Encapsulate(p Vec3) Bounds {
	return MinMaxBounds(b.Min().Min(p), b.Max().Max(p))
}

// Translate moves the bounds by d.
func (b Bounds) Translate(d Vec3) Bounds {
	return Bounds{Center: b.Center.Add(d), Size: b.Size}
}

// Contains reports whether p is inside the bounds, edges included.
func (b Bounds) Contains(p Vec3) bool {
	lo, hi := b.Min(), b.Max()
	return p.X >= lo.X && p.X <= hi.X &&
		p.Y >= lo.Y && p.Y <= hi.Y &&
		p.Z >= lo.Z && p.Z <= hi.Z
}

// ApproxEqual compares center and size within Epsilon.
func (b Bounds) ApproxEqual(o Bounds) bool {
	return b.Center.ApproxEqual(o.Center) && b.Size.ApproxEqual(o.Size)
}

// ScaleBounds multiplies the center and size by scale.
func ScaleBounds(b Bounds, scale Vec3) Bounds {
	return Bounds{Center: b.Center.Mul(scale), Size: b.Size.Mul(scale)}
}

// RotateBounds rotates the bounds around the origin and returns the
// axis-aligned bounds enclosing all eight rotated corners.
func RotateBounds(b Bounds, rotation Quat) Bounds {
	if rotation.IsIdentity() || rotation.IsZero() {
		return b
	}

	lo, hi := b.Min(), b.Max()
	out := Bounds{Center: rotation.Rotate(b.Center)}
	for i := 0; i < 8; i++ {
		corner := Vec3{X: lo.X, Y: lo.Y, Z: lo.Z}
		if i&1 != 0 {
			corner.X = hi.X
		}
		if i&2 != 0 {
			corner.Y = hi.Y
		}
		if i&4 != 0 {
			corner.Z = hi.Z
		}
		out = out.Encapsulate(rotation.Rotate(corner))
	}
	return out
}

// CreateRotatedBounds returns bounds of the given size rotated about its own
// center and placed at center.
func CreateRotatedBounds(center, size Vec3, rotation Quat) Bounds {
	if rotation.IsIdentity() || rotation.IsZero() {
		return NewBounds(center, size)
	}
	b := RotateBounds(NewBounds(Zero, size), rotation)
	b.Center = center
	return b
}
