package logger

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Config controls output level, format, and the optional file sink.
type Config struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT"`
	Dir    string `yaml:"dir" envconfig:"LOG_DIR"`
	File   string `yaml:"file" envconfig:"LOG_FILE"`
}

var (
	initOnce   sync.Once
	shutdownMu sync.Mutex
	shutdowned bool

	logClosers []io.Closer
	levelVar   slog.LevelVar

	// L is the base logger; component loggers below derive from it.
	L *slog.Logger

	// DB logs storage events.
	DB *slog.Logger
	// TG logs Telegram transport events.
	TG *slog.Logger
	// MIG logs schema migration events.
	MIG *slog.Logger
	// Gate logs membership gate decisions.
	Gate *slog.Logger
	// SVCPosting logs post/comment submission activity.
	SVCPosting *slog.Logger
	// SVCModeration logs approve/reject workflow activity.
	SVCModeration *slog.Logger
	// Maint logs scheduled maintenance runs.
	Maint *slog.Logger
)

// Init configures the global structured logger. It may be called only once.
func Init(cfg Config) error {
	var initErr error
	initOnce.Do(func() {
		levelVar.Set(parseLevel(cfg.Level))

		out, closers, err := buildOutput(cfg)
		if err != nil {
			initErr = err
			return
		}
		logClosers = closers

		opts := &slog.HandlerOptions{Level: &levelVar}
		var handler slog.Handler
		switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
		case "text", "kv", "pretty":
			handler = slog.NewTextHandler(out, opts)
		default:
			handler = slog.NewJSONHandler(out, opts)
		}

		L = slog.New(handler)
		slog.SetDefault(L)
		wireComponents()

		L.LogAttrs(context.Background(), slog.LevelInfo, "startup",
			slog.String("component", "app"),
			slog.String("event", "startup"),
			slog.String("go_version", runtime.Version()),
		)
	})
	return initErr
}

func wireComponents() {
	DB = L.With("component", "db")
	TG = L.With("component", "tg")
	MIG = L.With("component", "db.migrate")
	Gate = L.With("component", "gate")
	SVCPosting = L.With("component", "service.posting")
	SVCModeration = L.With("component", "service.moderation")
	Maint = L.With("component", "maintenance")
}

// Shutdown closes any opened log sinks.
func Shutdown() error {
	shutdownMu.Lock()
	defer shutdownMu.Unlock()
	if shutdowned {
		return nil
	}
	shutdowned = true

	var errs []error
	for _, c := range logClosers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildOutput(cfg Config) (io.Writer, []io.Closer, error) {
	writers := []io.Writer{os.Stdout}
	var closers []io.Closer
	dir := strings.TrimSpace(cfg.Dir)
	file := strings.TrimSpace(cfg.File)
	if dir != "" && file != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("logger: failed to create log dir %s: %v", dir, err)
		} else {
			path := filepath.Join(dir, file)
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				log.Printf("logger: failed to open log file %s: %v", path, err)
			} else {
				writers = append(writers, f)
				closers = append(closers, f)
			}
		}
	}
	if len(writers) == 1 {
		return writers[0], closers, nil
	}
	return io.MultiWriter(writers...), closers, nil
}

// Component constructs a logger scoped to the provided component attribute.
func Component(name string) *slog.Logger {
	if L == nil {
		return nil
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return L
	}
	return L.With("component", trimmed)
}

// Event logs an event with context metadata attached.
func Event(ctx context.Context, logg *slog.Logger, level slog.Level, event string, attrs ...slog.Attr) {
	if logg == nil {
		logg = FromContext(ctx)
	}
	if logg == nil {
		return
	}
	all := make([]slog.Attr, 0, len(attrs)+4)
	if event != "" {
		all = append(all, slog.String("event", event))
	}
	if rid := RIDFrom(ctx); rid != "" {
		all = append(all, slog.String("rid", rid))
	}
	all = append(all, attrs...)
	logg.LogAttrs(ctx, level, event, all...)
}

// Debug logs a debug-level event for the given component logger.
func Debug(ctx context.Context, logg *slog.Logger, event string, attrs ...slog.Attr) {
	Event(ctx, logg, slog.LevelDebug, event, attrs...)
}

// Info logs an info-level event for the given component logger.
func Info(ctx context.Context, logg *slog.Logger, event string, attrs ...slog.Attr) {
	Event(ctx, logg, slog.LevelInfo, event, attrs...)
}

// Warn logs a warn-level event for the given component logger.
func Warn(ctx context.Context, logg *slog.Logger, event string, attrs ...slog.Attr) {
	Event(ctx, logg, slog.LevelWarn, event, attrs...)
}

// Error logs an error-level event for the given component logger.
func Error(ctx context.Context, logg *slog.Logger, event string, attrs ...slog.Attr) {
	Event(ctx, logg, slog.LevelError, event, attrs...)
}
