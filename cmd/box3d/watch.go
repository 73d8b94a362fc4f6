package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newWatchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [path...]",
		Short: "Solve scenes again whenever they change",
		Long: `Solve every scene once, then watch the directories holding them and
solve a scene again each time it is written. Runs until interrupted.`,
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
			return watchFiles(cmd.Context(), cfg, log, cmd.OutOrStdout(), files)
		},
	}
	cmd.Flags().Duration("debounce", 100*time.Millisecond, "quiet period before solving changed scenes")
	cobra.CheckErr(v.BindPFlag("debounce", cmd.Flags().Lookup("debounce")))
	return cmd
}

// watchFiles solves files, then solves again every scene file written in
// their directories. Writes arriving within cfg.Debounce of each other are
// batched. Solve failures are logged and watching continues.
func watchFiles(ctx context.Context, cfg config, log *slog.Logger, w io.Writer, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
		log.Debug("watching directory", "path", dir)
	}

	run := func(paths []string) {
		sols, err := solveFiles(ctx, cfg, log, paths)
		if err == nil {
			err = writeSolutions(w, cfg, paths, sols)
		}
		if err != nil {
			log.Error("solve failed", "error", err)
		}
	}
	run(files)

	pending := make(map[string]bool)
	timer := time.NewTimer(cfg.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !isSceneFile(ev.Name) || !dirs[filepath.Dir(ev.Name)] {
				continue
			}
			log.Debug("scene changed", "path", ev.Name, "op", ev.Op.String())
			pending[ev.Name] = true
			timer.Reset(cfg.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)

		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			clear(pending)
			slices.Sort(paths)
			run(paths)
		}
	}
}
