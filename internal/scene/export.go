package scene

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/grindlemire/go-box3d/internal/layout"
)

// Format is a result encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("format %w %q", ErrUnknownType, s)
}

// Solution is the solved state of every node in a scene.
type Solution struct {
	Scene string       `json:"scene" yaml:"scene"`
	Nodes []NodeResult `json:"nodes" yaml:"nodes"`
}

// NodeResult is the solved transform of one node. Position, Rotation and
// Scale are local to the parent, or to the dependency target for
// constrained nodes.
type NodeResult struct {
	Name       string     `json:"name" yaml:"name"`
	Parent     string     `json:"parent,omitempty" yaml:"parent,omitempty"`
	Dependency string     `json:"dependency,omitempty" yaml:"dependency,omitempty"`
	Position   Vec        `json:"position" yaml:"position,flow"`
	Rotation   [4]float64 `json:"rotation" yaml:"rotation,flow"`
	Scale      Vec        `json:"scale" yaml:"scale,flow"`
	Size       Vec        `json:"size" yaml:"size,flow"`
	RectSize   *Vec       `json:"rectSize,omitempty" yaml:"rectSize,omitempty,flow"`
	World      Vec        `json:"world" yaml:"world,flow"`
}

// Solve runs one engine cycle and collects the result of every scene node
// in declaration order.
func (in *Instance) Solve() *Solution {
	in.Engine.Update()

	sol := &Solution{Scene: in.Scene.Name}
	in.Scene.Walk(func(decl *Node, _ int) {
		sol.Nodes = append(sol.Nodes, resultOf(decl.Name, in.nodes[decl.Name]))
	})
	return sol
}

func resultOf(name string, n *layout.Node) NodeResult {
	r := n.Result()
	world, _, _ := n.WorldTransform()

	out := NodeResult{
		Name:     name,
		Position: VecOf(r.TargetPosition),
		Rotation: quatOf(r.TargetRotation),
		Scale:    VecOf(r.TargetScale),
		Size:     VecOf(r.AdapterBounds.Size),
		World:    VecOf(world),
	}
	if p := n.Parent(); p != nil {
		out.Parent = entityName(p)
	}
	if d := n.Dependency(); d != nil {
		out.Dependency = entityName(d)
	}
	if _, ok := n.Adapter().TryGetRectSize(n); ok {
		rect := VecOf(r.TargetRectSize)
		out.RectSize = &rect
	}
	return out
}

func entityName(n *layout.Node) string {
	if s, ok := n.Entity().(string); ok {
		return s
	}
	return fmt.Sprint(n.Entity())
}

func quatOf(q geom.Quat) [4]float64 {
	return [4]float64{q.X, q.Y, q.Z, q.W}
}

// Lookup returns the result for the named node.
func (s *Solution) Lookup(name string) (NodeResult, bool) {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return NodeResult{}, false
}

// Encode writes the solution to w. pretty indents JSON output; YAML is
// always indented.
func (s *Solution) Encode(w io.Writer, format Format, pretty bool) error {
	switch format {
	case FormatJSON, "":
		var (
			data []byte
			err  error
		)
		if pretty {
			data, err = json.MarshalIndent(s, "", "  ")
		} else {
			data, err = json.Marshal(s)
		}
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("format %w %q", ErrUnknownType, format)
}

// DecodeSolution reads a solution previously written by Encode.
func DecodeSolution(r io.Reader, format Format) (*Solution, error) {
	var s Solution
	switch format {
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("format %w %q", ErrUnknownType, format)
	}
	return &s, nil
}
