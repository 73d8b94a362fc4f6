package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/grindlemire/go-box3d/internal/layout"
	"github.com/grindlemire/go-box3d/internal/scene"
)

func newSolveCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [path...]",
		Short: "Solve scenes and print the results",
		Long: `Solve every scene named on the command line. Paths may be files,
directories or a directory followed by /... to search recursively.
Each scene is solved in its own engine and scenes are solved concurrently.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

			files, err := sceneArgs(args)
			if err != nil {
				return err
			}
			log.Debug("found scenes", "count", len(files))

			sols, err := solveFiles(cmd.Context(), cfg, log, files)
			if err != nil {
				return err
			}
			return writeSolutions(cmd.OutOrStdout(), cfg, files, sols)
		},
	}
}

// sceneArgs collects the scene files named by args, defaulting to the
// current directory.
func sceneArgs(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	files, err := collectSceneFiles(args)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no scene files found")
	}
	return files, nil
}

// solveFiles solves each file in its own engine, at most cfg.Jobs at once.
// Results keep the order of files.
func solveFiles(ctx context.Context, cfg config, log *slog.Logger, files []string) ([]*scene.Solution, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)

	sols := make([]*scene.Solution, len(files))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sol, err := solveFile(path, cfg.RootSize)
			if err != nil {
				return err
			}
			log.Info("solved scene", "path", path, "scene", sol.Scene, "nodes", len(sol.Nodes))
			sols[i] = sol
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sols, nil
}

// solveFile loads, builds and solves one scene. A non-nil rootSize
// replaces the scene's own root size.
func solveFile(path string, rootSize *geom.Vec3) (*scene.Solution, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}

	var opts []layout.EngineOption
	if rootSize != nil {
		size := *rootSize
		opts = append(opts, layout.WithRootSizer(func(*layout.Node) geom.Vec3 { return size }))
	}
	in, err := s.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in.Solve(), nil
}

// writeSolutions writes every solution to w, or to one file per scene when
// cfg.Out is set. YAML documents on w are separated by ---.
func writeSolutions(w io.Writer, cfg config, files []string, sols []*scene.Solution) error {
	if cfg.Out != "" {
		if err := os.MkdirAll(cfg.Out, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	for i, sol := range sols {
		if cfg.Out != "" {
			var buf bytes.Buffer
			if err := sol.Encode(&buf, cfg.Format, cfg.Pretty); err != nil {
				return err
			}
			path := resultFileName(cfg.Out, files[i], cfg.Format)
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			continue
		}

		if i > 0 && cfg.Format == scene.FormatYAML {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if err := sol.Encode(w, cfg.Format, cfg.Pretty); err != nil {
			return err
		}
	}
	return nil
}
