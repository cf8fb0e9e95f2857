// Package logger provides structured logging for the engine using zap.
// All engine subsystems accept a *zap.Logger via their builder options and
// fall back to the package default when none is supplied.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	defaultMu     sync.Mutex
	defaultLogger *zap.Logger
)

// FileConfig holds rotating file output configuration.
type FileConfig struct {
	// Path is the log file location. Empty disables file output.
	Path string
	// MaxSizeMB is the maximum size in megabytes before rotation.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to retain.
	MaxBackups int
	// MaxAgeDays is the maximum age in days of a retained rotated file.
	MaxAgeDays int
	// Compress enables gzip compression of rotated files.
	Compress bool
}

// DefaultFileConfig returns rotating file settings suitable for a long-running
// render process.
//
// Parameters:
//   - path: the log file location
//
// Returns:
//   - FileConfig: the default file configuration for that path
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// New creates a zap logger with console output and any provided options applied.
//
// Parameters:
//   - opts: variadic list of LoggerBuilderOption functions to configure the logger
//
// Returns:
//   - *zap.Logger: the configured logger
func New(opts ...LoggerBuilderOption) *zap.Logger {
	cfg := &loggerConfig{
		level:   zapcore.InfoLevel,
		console: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var cores []zapcore.Core

	if cfg.console {
		consoleEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			CallerKey:        "caller",
			EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			EncodeCaller:     zapcore.ShortCallerEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), cfg.level))
	}

	if cfg.file.Path != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.file.Path,
			MaxSize:    cfg.file.MaxSizeMB,
			MaxBackups: cfg.file.MaxBackups,
			MaxAge:     cfg.file.MaxAgeDays,
			Compress:   cfg.file.Compress,
			LocalTime:  true,
		}
		fileEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			CallerKey:        "caller",
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			EncodeCaller:     zapcore.ShortCallerEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(fileWriter), cfg.level))
	}

	if len(cores) == 0 {
		return zap.NewNop()
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}

// Default returns the shared package logger, creating it on first use.
// Subsystems use this when no logger was supplied via their builder options.
//
// Returns:
//   - *zap.Logger: the shared logger
func Default() *zap.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New()
	}
	return defaultLogger
}

// SetDefault replaces the shared package logger. Passing nil restores the
// built-in console logger on next use.
//
// Parameters:
//   - l: the logger to install as the shared default
func SetDefault(l *zap.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
