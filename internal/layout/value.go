package layout

// SizeKind specifies how a Size is interpreted.
type SizeKind uint8

const (
	SizeComponent SizeKind = iota // Size measured from content by the adapter
	SizeFixed                     // Absolute length
	SizeFill                      // Fraction of the space the parent allocates
	SizeLayout                    // Bounding box of the children arranged by the strategy
)

var sizeKindNames = [...]string{"component", "fixed", "fill", "layout"}

func (k SizeKind) String() string {
	if int(k) < len(sizeKindNames) {
		return sizeKindNames[k]
	}
	return "unknown"
}

// Size is the declared size of a node on one axis.
type Size struct {
	kind   SizeKind
	amount float64
}

// Component returns a Size measured from content.
func Component() Size {
	return Size{kind: SizeComponent}
}

// Fixed returns a Size of an absolute length. Negative lengths clamp to 0.
func Fixed(length float64) Size {
	return Size{kind: SizeFixed, amount: max(length, 0)}
}

// Fill returns a Size taking fraction of the parent's allocation.
// Negative fractions clamp to 0.
func Fill(fraction float64) Size {
	return Size{kind: SizeFill, amount: max(fraction, 0)}
}

// FromLayout returns a Size derived from the node's own layout strategy.
func FromLayout() Size {
	return Size{kind: SizeLayout}
}

// Kind returns how the size is interpreted.
func (s Size) Kind() SizeKind { return s.kind }

// Amount returns the length for Fixed and the fraction for Fill, else 0.
func (s Size) Amount() float64 { return s.amount }

// LimitKind specifies how a Limit is interpreted.
type LimitKind uint8

const (
	LimitNone  LimitKind = iota // Unbounded
	LimitFixed                  // Absolute length
	LimitFill                   // Fraction of the parent's layout size
)

var limitKindNames = [...]string{"none", "fixed", "fill"}

func (k LimitKind) String() string {
	if int(k) < len(limitKindNames) {
		return limitKindNames[k]
	}
	return "unknown"
}

// Limit is a declared min or max size on one axis.
type Limit struct {
	kind   LimitKind
	amount float64
}

// NoLimit returns an unbounded Limit.
func NoLimit() Limit {
	return Limit{}
}

// FixedLimit returns a Limit of an absolute length.
func FixedLimit(length float64) Limit {
	return Limit{kind: LimitFixed, amount: max(length, 0)}
}

// FillLimit returns a Limit of a fraction of the parent's layout size.
func FillLimit(fraction float64) Limit {
	return Limit{kind: LimitFill, amount: max(fraction, 0)}
}

// Kind returns how the limit is interpreted.
func (l Limit) Kind() LimitKind { return l.kind }

// Amount returns the length for Fixed and the fraction for Fill, else 0.
func (l Limit) Amount() float64 { return l.amount }

// IsNone reports whether the limit is unbounded.
func (l Limit) IsNone() bool { return l.kind == LimitNone }
