package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-box3d/internal/debug"
	"github.com/grindlemire/go-box3d/internal/geom"
	"github.com/grindlemire/go-box3d/internal/scene"
)

// envPrefix is prepended to every flag name to form its environment variable.
const envPrefix = "BOX3D"

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "box3d",
		Short: "Solve 3D box layout scenes",
		Long: `box3d lays out trees of 3D boxes described in YAML scene files and
prints the solved position, rotation, scale and size of every node.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (yaml)")
	flags.StringP("format", "f", string(scene.FormatJSON), "result format: json or yaml")
	flags.Bool("pretty", true, "indent json results")
	flags.String("root-size", "", "space available to fill roots, as x,y,z or a single number")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.IntP("jobs", "j", 0, "scenes solved at once (0 uses every CPU)")
	flags.StringP("out", "o", "", "directory for result files instead of stdout")
	cobra.CheckErr(v.BindPFlags(flags))

	cmd.AddCommand(
		newSolveCmd(v),
		newWatchCmd(v),
		newVersionCmd(),
	)
	return cmd
}

// config is the resolved configuration of one command run.
type config struct {
	Format   scene.Format
	Pretty   bool
	RootSize *geom.Vec3
	LogLevel slog.Level
	Jobs     int
	Out      string
	Debounce time.Duration
}

// loadConfig reads the optional config file and resolves every setting.
// Flags win over environment variables, which win over the file.
func loadConfig(v *viper.Viper) (config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg config
	var err error
	if cfg.Format, err = scene.ParseFormat(v.GetString("format")); err != nil {
		return config{}, err
	}
	if s := v.GetString("root-size"); s != "" {
		size, err := parseVec(s)
		if err != nil {
			return config{}, fmt.Errorf("root-size: %w", err)
		}
		cfg.RootSize = &size
	}
	level := v.GetString("log-level")
	if level == "" {
		level = "warn"
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return config{}, fmt.Errorf("log-level: %w", err)
	}

	cfg.Pretty = v.GetBool("pretty")
	cfg.Out = v.GetString("out")
	cfg.Jobs = v.GetInt("jobs")
	if cfg.Jobs <= 0 {
		cfg.Jobs = runtime.GOMAXPROCS(0)
	}
	cfg.Debounce = v.GetDuration("debounce")
	if cfg.Debounce <= 0 {
		cfg.Debounce = 100 * time.Millisecond
	}
	return cfg, nil
}

// parseVec reads "x,y,z" or a single number for all three axes.
func parseVec(s string) (geom.Vec3, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && !strings.HasPrefix(s, "[") {
		s = "[" + s + "]"
	}
	var v scene.Vec
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return geom.Vec3{}, err
	}
	return v.Vec3(), nil
}

// newLogger builds the command logger. At debug level engine traces are
// routed to it as well.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	if level <= slog.LevelDebug {
		debug.SetLogger(logger)
	}
	return logger
}
