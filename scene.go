// scene.go re-exports YAML scene loading from internal/scene.
package box3d

import "github.com/grindlemire/go-box3d/internal/scene"

type (
	Scene         = scene.Scene
	SceneInstance = scene.Instance
	Solution      = scene.Solution
	NodeResult    = scene.NodeResult
	Format        = scene.Format
)

const (
	FormatJSON = scene.FormatJSON
	FormatYAML = scene.FormatYAML
)

// LoadScene reads and validates the YAML scene at path.
func LoadScene(path string) (*Scene, error) { return scene.Load(path) }

// ParseScene decodes and validates a YAML scene.
func ParseScene(data []byte) (*Scene, error) { return scene.Parse(data) }
