// Package logger owns the process-wide structured logger: a zap core with a
// JSON encoder on stderr, exposed to the rest of sitecfg as a logr.Logger.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/samdoesblogs/sitecfg/pkg/settings"
)

type loggerContextKey struct{}

const (
	RootCommandKey  = "root_command"
	SubCommandKey   = "sub_command"
	ConfigPathKey   = "config_path"
	ConfigSourceKey = "config_source"
	CommitKey       = "commit"
	VersionKey      = "version"
	GoVersionKey    = "go_version"
	TimeStampKey    = "timestamp"
	MessageKey      = "message"
)

const (
	// InfoLevel is the default minimum level.
	InfoLevel int8 = int8(zapcore.InfoLevel)
	// DebugLevel is selected by --debug.
	DebugLevel int8 = int8(zapcore.DebugLevel)
)

var (
	once sync.Once

	// globalZapLogger backs Sync(); package-private so callers cannot swap it.
	globalZapLogger *zap.Logger

	// globalLogrLogger is returned by FromContext when the context has no logger.
	globalLogrLogger *logr.Logger

	defaultNoopLogger logr.Logger = logr.Discard()
)

// LevelFor maps the --debug flag to a minimum log level.
func LevelFor(debugEnabled bool) int8 {
	if debugEnabled {
		return DebugLevel
	}
	return InfoLevel
}

// Get initializes the global logger writing to stderr. Only the first call
// configures anything; later calls return the same logger.
func Get(logLevel int8) *logr.Logger {
	once.Do(func() {
		globalZapLogger = newZap(zapcore.Lock(os.Stderr), logLevel)
		gl := zapr.NewLogger(globalZapLogger)
		globalLogrLogger = &gl
	})
	if globalLogrLogger == nil {
		return &defaultNoopLogger
	}
	return globalLogrLogger
}

// New builds a standalone logger writing JSON lines to w. It does not touch
// the global logger.
func New(w io.Writer, logLevel int8) logr.Logger {
	return zapr.NewLogger(newZap(zapcore.AddSync(w), logLevel))
}

func newZap(sink zapcore.WriteSyncer, logLevel int8) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	goVersion := "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		goVersion = info.GoVersion
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		sink,
		zap.NewAtomicLevelAt(zapcore.Level(logLevel)),
	).With([]zapcore.Field{
		zap.String(CommitKey, settings.VersionInformation.Commit),
		zap.String(VersionKey, settings.VersionInformation.BuildVersion),
		zap.String(GoVersionKey, goVersion),
	})

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)
}

// WithLogger returns a context carrying log. A context that already carries
// the same logger is returned unchanged.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	if lp, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok && lp == log {
		return ctx
	}
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext returns the context logger, else the global logger, else a
// no-op logger.
func FromContext(ctx context.Context) *logr.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		return log
	}
	if globalLogrLogger != nil {
		return globalLogrLogger
	}
	return &defaultNoopLogger
}

// Sync flushes buffered entries. Call it once before the process exits.
func Sync() {
	if globalZapLogger == nil {
		return
	}
	if err := globalZapLogger.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync logger: %v\n", err)
	}
}

// isIgnorableSyncError matches the errors stderr returns when it is a pipe
// or a TTY. Windows consoles report an invalid handle instead.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	return strings.Contains(err.Error(), "The handle is invalid")
}

// GetNoopLogger returns a logger that discards everything.
func GetNoopLogger() *logr.Logger {
	return &defaultNoopLogger
}

// WithValues returns a new logger with the key/value pairs attached.
func WithValues(lgr *logr.Logger, keysAndValues ...any) *logr.Logger {
	nlgr := lgr.WithValues(keysAndValues...)
	return &nlgr
}
