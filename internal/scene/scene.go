package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned (wrapped) by Validate and Build.
var (
	ErrDuplicateNode   = errors.New("duplicate node name")
	ErrUnnamedNode     = errors.New("node has no name")
	ErrUnknownTarget   = errors.New("unknown constraint target")
	ErrNestedDependent = errors.New("constrained node must be a root")
	ErrUnknownType     = errors.New("unknown type")
)

// Scene is a set of node trees solved together in one engine.
type Scene struct {
	Name     string `yaml:"name"`
	RootSize *Vec   `yaml:"rootSize,omitempty"` // space available to Fill roots
	Nodes    []Node `yaml:"nodes"`
}

// Node describes one node and its subtree.
type Node struct {
	Name     string     `yaml:"name"`
	Size     AxisValues `yaml:"size,omitempty"`
	Min      AxisValues `yaml:"min,omitempty"`
	Max      AxisValues `yaml:"max,omitempty"`
	Margin   *Edges     `yaml:"margin,omitempty"`
	Padding  *Edges     `yaml:"padding,omitempty"`
	Offset   *Vec       `yaml:"offset,omitempty"`
	Scale    *Vec       `yaml:"scale,omitempty"`
	Rotation *Vec       `yaml:"rotation,omitempty"` // euler degrees
	Skip     bool       `yaml:"skip,omitempty"`

	Layout     *Layout     `yaml:"layout,omitempty"`
	Adapter    *Adapter    `yaml:"adapter,omitempty"`
	Cell       *[3]int     `yaml:"cell,omitempty"`
	Modifiers  []Modifier  `yaml:"modifiers,omitempty"`
	Constraint *Constraint `yaml:"constraint,omitempty"`

	Children []Node `yaml:"children,omitempty"`
}

// Layout selects and configures the node's strategy.
type Layout struct {
	Type string `yaml:"type"` // flexible, grid or diagonal

	// flexible
	Direction     string  `yaml:"direction,omitempty"`
	Wrap          bool    `yaml:"wrap,omitempty"`
	WrapDirection string  `yaml:"wrapDirection,omitempty"`
	Align         Aligns  `yaml:"align,omitempty"`
	InnerAlign    Aligns  `yaml:"innerAlign,omitempty"`
	Gap           float64 `yaml:"gap,omitempty"`
	GapType       string  `yaml:"gapType,omitempty"`
	WrapGap       float64 `yaml:"wrapGap,omitempty"`
	WrapGapType   string  `yaml:"wrapGapType,omitempty"`

	// grid
	CellType        string `yaml:"cellType,omitempty"`
	Columns         int    `yaml:"columns,omitempty"`
	Rows            int    `yaml:"rows,omitempty"`
	Layers          int    `yaml:"layers,omitempty"`
	ColumnDirection string `yaml:"columnDirection,omitempty"`
	RowDirection    string `yaml:"rowDirection,omitempty"`
	LayerDirection  string `yaml:"layerDirection,omitempty"`

	// CellSize fixes the column, row and layer size; zero entries fill.
	CellSize  Vec    `yaml:"cellSize,omitempty"`
	CellAlign Aligns `yaml:"cellAlign,omitempty"`

	// grid and diagonal
	Spacing Vec `yaml:"spacing,omitempty"`
}

// Adapter describes externally measured content.
type Adapter struct {
	Type   string  `yaml:"type"` // bounds, flat or aspect
	Size   Vec     `yaml:"size,omitempty"`
	Center Vec     `yaml:"center,omitempty"`
	Ratio  float64 `yaml:"ratio,omitempty"`
}

// Modifier post-processes arranged children.
type Modifier struct {
	Offset Vec `yaml:"offset"`
}

// Constraint makes the node follow Target.
type Constraint struct {
	Target string `yaml:"target"`
	Align  Aligns `yaml:"align,omitempty"`
	Pivot  Aligns `yaml:"pivot,omitempty"`
}

// Parse decodes a scene from YAML. Unknown fields are errors.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the scene at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Walk calls fn for every node in the scene, parents before children.
// depth is 0 for roots.
func (s *Scene) Walk(fn func(n *Node, depth int)) {
	var walk func(nodes []Node, depth int)
	walk = func(nodes []Node, depth int) {
		for i := range nodes {
			fn(&nodes[i], depth)
			walk(nodes[i].Children, depth+1)
		}
	}
	walk(s.Nodes, 0)
}

// Validate checks names, constraint targets and every value in the scene.
// All problems are reported together.
func (s *Scene) Validate() error {
	var errs []error
	names := make(map[string]bool)
	s.Walk(func(n *Node, _ int) {
		switch {
		case n.Name == "":
			errs = append(errs, ErrUnnamedNode)
		case names[n.Name]:
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateNode, n.Name))
		}
		names[n.Name] = true
	})

	s.Walk(func(n *Node, depth int) {
		if err := n.validate(); err != nil {
			errs = append(errs, fmt.Errorf("node %q: %w", n.Name, err))
		}
		if c := n.Constraint; c != nil {
			if depth > 0 {
				errs = append(errs, fmt.Errorf("node %q: %w", n.Name, ErrNestedDependent))
			}
			if !names[c.Target] {
				errs = append(errs, fmt.Errorf("node %q: %w: %q", n.Name, ErrUnknownTarget, c.Target))
			}
		}
	})
	return errors.Join(errs...)
}

// validate checks that every value of n parses.
func (n *Node) validate() error {
	_, err := n.options()
	return err
}
