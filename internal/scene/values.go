package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/grindlemire/go-box3d/internal/layout"
	"gopkg.in/yaml.v3"
)

// ErrInvalidValue is wrapped by every parse failure of a scene value.
var ErrInvalidValue = errors.New("invalid value")

// Vec is a three component vector written as [x, y, z] or as a single
// number applied to every axis.
type Vec [3]float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*v = Vec{f, f, f}
		return nil
	}
	var raw []float64
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("line %d: vector needs 3 components, got %d: %w", node.Line, len(raw), ErrInvalidValue)
	}
	copy(v[:], raw)
	return nil
}

// Vec3 converts to a geometry vector.
func (v Vec) Vec3() geom.Vec3 { return geom.V3(v[0], v[1], v[2]) }

// VecOf converts a geometry vector.
func VecOf(v geom.Vec3) Vec { return Vec{v.X, v.Y, v.Z} }

// Value is a raw scalar that is interpreted later, such as "fill 0.5" or 10.
type Value string

// UnmarshalYAML implements yaml.Unmarshaler. Numbers and strings are both
// accepted as text.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar: %w", node.Line, ErrInvalidValue)
	}
	*v = Value(node.Value)
	return nil
}

// ParseSize parses a size value. An empty value is component sized.
func ParseSize(s string) (layout.Size, error) {
	kind, amount, err := splitValue(s)
	if err != nil {
		return layout.Size{}, err
	}
	switch kind {
	case "", "component":
		return layout.Component(), nil
	case "layout":
		return layout.FromLayout(), nil
	case "fill":
		return layout.Fill(amount), nil
	case "fixed":
		return layout.Fixed(amount), nil
	}
	return layout.Size{}, fmt.Errorf("size %q: %w", s, ErrInvalidValue)
}

// ParseLimit parses a min or max value. An empty value is no limit.
func ParseLimit(s string) (layout.Limit, error) {
	kind, amount, err := splitValue(s)
	if err != nil {
		return layout.Limit{}, err
	}
	switch kind {
	case "", "none":
		return layout.NoLimit(), nil
	case "fill":
		return layout.FillLimit(amount), nil
	case "fixed":
		return layout.FixedLimit(amount), nil
	}
	return layout.Limit{}, fmt.Errorf("limit %q: %w", s, ErrInvalidValue)
}

// splitValue splits "kind amount". A bare number is fixed and a bare
// "fill" has an amount of 1.
func splitValue(s string) (string, float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", 0, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return "fixed", f, nil
	}

	kind, rest, found := strings.Cut(s, " ")
	kind = strings.ToLower(kind)
	if !found {
		if kind == "fill" {
			return kind, 1, nil
		}
		return kind, 0, nil
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return "", 0, fmt.Errorf("%q: %w", s, ErrInvalidValue)
	}
	return kind, amount, nil
}

// SizeFormat renders a size in the form ParseSize accepts.
func SizeFormat(s layout.Size) string {
	switch s.Kind() {
	case layout.SizeFixed:
		return strconv.FormatFloat(s.Amount(), 'g', -1, 64)
	case layout.SizeFill:
		return "fill " + strconv.FormatFloat(s.Amount(), 'g', -1, 64)
	case layout.SizeLayout:
		return "layout"
	default:
		return "component"
	}
}

// AxisValues holds one value per axis.
type AxisValues struct {
	X Value `yaml:"x,omitempty"`
	Y Value `yaml:"y,omitempty"`
	Z Value `yaml:"z,omitempty"`
}

func (a AxisValues) get(axis geom.Axis) string {
	switch axis {
	case geom.X:
		return string(a.X)
	case geom.Y:
		return string(a.Y)
	default:
		return string(a.Z)
	}
}

// Edges are margin or padding values, written as a single number for every
// face or as a mapping of faces.
type Edges struct {
	Right  float64 `yaml:"right"`
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Back   float64 `yaml:"back"`
	Front  float64 `yaml:"front"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Edges) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*e = Edges{f, f, f, f, f, f}
		return nil
	}
	type plain Edges
	return node.Decode((*plain)(e))
}

// Directions converts to geometry edges.
func (e Edges) Directions() geom.Directions {
	return geom.Directions{
		Right: e.Right, Left: e.Left,
		Top: e.Top, Bottom: e.Bottom,
		Back: e.Back, Front: e.Front,
	}
}

// Aligns holds one alignment per axis. Empty entries are centered.
type Aligns struct {
	X string `yaml:"x,omitempty"`
	Y string `yaml:"y,omitempty"`
	Z string `yaml:"z,omitempty"`
}

func (a Aligns) parse() ([3]geom.Align, error) {
	var out [3]geom.Align
	for i, s := range []string{a.X, a.Y, a.Z} {
		al, err := parseAlign(s)
		if err != nil {
			return out, err
		}
		out[i] = al
	}
	return out, nil
}

func parseAlign(s string) (geom.Align, error) {
	if s == "" {
		return geom.AlignCenter, nil
	}
	a, ok := geom.ParseAlign(strings.ToLower(s))
	if !ok {
		return geom.AlignCenter, fmt.Errorf("align %q: %w", s, ErrInvalidValue)
	}
	return a, nil
}

func parseDirection(s string, fallback geom.Direction) (geom.Direction, error) {
	if s == "" {
		return fallback, nil
	}
	d, ok := geom.ParseDirection(strings.ToLower(s))
	if !ok {
		return fallback, fmt.Errorf("direction %q: %w", s, ErrInvalidValue)
	}
	return d, nil
}
