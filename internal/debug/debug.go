package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// EnvVar names the environment variable that enables file logging.
const EnvVar = "BOX3D_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = slog.New(slog.DiscardHandler)
	enabled atomic.Bool
)

func init() {
	if path := os.Getenv(EnvVar); path != "" {
		// Tracing is best-effort; a bad path leaves logging disabled.
		_ = Init(path)
	}
}

// Init starts debug logging to the file at path.
// If path is empty, uses "box3d-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "box3d-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	setLocked(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}

// SetLogger routes trace records to l. A nil logger disables tracing.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	setLocked(l)
}

func setLocked(l *slog.Logger) {
	if l == nil {
		logger = slog.New(slog.DiscardHandler)
		enabled.Store(false)
		return
	}
	logger = l
	enabled.Store(true)
}

// Close closes the debug log file and disables tracing.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	setLocked(nil)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether trace records are being written.
func Enabled() bool {
	return enabled.Load()
}

// Log writes a debug-level trace record. Callers on hot paths should
// check Enabled first to avoid building args.
func Log(msg string, args ...any) {
	if !enabled.Load() {
		return
	}
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Debug(msg, args...)
}
