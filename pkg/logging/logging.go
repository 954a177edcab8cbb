// Package logging sets up the process-wide zap logger.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. It is a no-op logger until Setup runs.
var Logger = zap.NewNop()

// Options configures Setup.
type Options struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string
	// Format is "console" or "json".
	Format string
	// Output is "stderr", "stdout", "discard" or a file path.
	Output string
}

// Setup builds the global logger from opts and returns it.
func Setup(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if opts.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	var ws zapcore.WriteSyncer
	switch opts.Output {
	case "", "stderr":
		ws = zapcore.Lock(os.Stderr)
	case "stdout":
		ws = zapcore.Lock(os.Stdout)
	case "discard":
		Logger = zap.NewNop()
		return Logger, nil
	default:
		f, err := os.OpenFile(opts.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log output: %w", err)
		}
		ws = zapcore.AddSync(f)
	}

	Logger = zap.New(zapcore.NewCore(encoder, ws, level), zap.AddCaller())
	return Logger, nil
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
