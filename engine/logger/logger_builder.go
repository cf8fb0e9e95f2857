package logger

import "go.uber.org/zap/zapcore"

// loggerConfig collects the settings applied by LoggerBuilderOption functions.
type loggerConfig struct {
	level   zapcore.Level
	console bool
	file    FileConfig
}

// LoggerBuilderOption is a function that configures a logger during construction.
type LoggerBuilderOption func(*loggerConfig)

// WithLevel is an option builder that sets the minimum log level.
// Recognized names are "debug", "info", "warn", and "error"; anything else
// falls back to info.
//
// Parameters:
//   - level: the level name
//
// Returns:
//   - LoggerBuilderOption: a function that applies the level option
func WithLevel(level string) LoggerBuilderOption {
	return func(c *loggerConfig) {
		switch level {
		case "debug":
			c.level = zapcore.DebugLevel
		case "warn":
			c.level = zapcore.WarnLevel
		case "error":
			c.level = zapcore.ErrorLevel
		default:
			c.level = zapcore.InfoLevel
		}
	}
}

// WithConsole is an option builder that enables or disables console output.
// Console output is enabled by default; disabling it is useful in tests.
//
// Parameters:
//   - enabled: true to log to stdout
//
// Returns:
//   - LoggerBuilderOption: a function that applies the console option
func WithConsole(enabled bool) LoggerBuilderOption {
	return func(c *loggerConfig) {
		c.console = enabled
	}
}

// WithFile is an option builder that enables rotating file output.
//
// Parameters:
//   - cfg: the file output configuration
//
// Returns:
//   - LoggerBuilderOption: a function that applies the file option
func WithFile(cfg FileConfig) LoggerBuilderOption {
	return func(c *loggerConfig) {
		c.file = cfg
	}
}
