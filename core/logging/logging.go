// Package logging creates zap loggers with per-package levels.
//
// Log entries are written to stderr.
// The PIVCHECK_LOG_FORMAT environment variable selects the encoding:
// "console" for human readable lines, or JSON otherwise.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var root = zap.New(newCore(os.Getenv("PIVCHECK_LOG_FORMAT")))

func newEncoder(format string) zapcore.Encoder {
	if format == "console" {
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(cfg)
}

func newCore(format string) zapcore.Core {
	return zapcore.NewCore(newEncoder(format), zapcore.Lock(os.Stderr), zap.DebugLevel)
}

// Named creates a named logger whose level is not controlled by environment.
func Named(pkg string) *zap.Logger {
	return root.Named(pkg)
}

// New creates a named logger whose level is controlled by PIVCHECK_LOG_<pkg> or PIVCHECK_LOG environment variable.
//
// Each package declares one logger next to its package docstring:
//
//	var logger = logging.New("boundary")
func New(pkg string) *zap.Logger {
	return Named(pkg).WithOptions(zap.IncreaseLevel(GetLevel(pkg).al))
}
