package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/grindlemire/go-box3d/internal/scene"
)

// resultInfix marks files written by resultFileName.
const resultInfix = ".solved."

// isSceneFile reports whether path has a YAML extension and is not a
// result file.
func isSceneFile(path string) bool {
	if strings.Contains(filepath.Base(path), resultInfix) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// collectSceneFiles expands paths into scene files. A path ending in /...
// is walked recursively, a directory contributes its own scene files and
// a file is taken as is.
func collectSceneFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isSceneFile(p) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && isSceneFile(entry.Name()) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else {
			files = append(files, path)
		}
	}

	return files, nil
}

// resultFileName names the result file for a scene inside dir.
// Examples:
//
//	board.yaml  -> dir/board.solved.json
//	my-room.yml -> dir/my-room.solved.yaml
func resultFileName(dir, scenePath string, format scene.Format) string {
	base := filepath.Base(scenePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+resultInfix+string(format))
}
