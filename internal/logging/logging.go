// Package logging builds the logr.Logger used across ip6pool on top of zap.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFile is the log file name placed in the user's home directory.
const DefaultFile = ".ip6pool.log"

// Options configures New.
type Options struct {
	// File is the log destination. Empty or "-" logs to stderr. A leading
	// "~/" is expanded to the home directory.
	File string
	// Verbosity raises the level: 0 info, 1 debug, negative errors only.
	Verbosity int
}

// DefaultPath returns ~/.ip6pool.log, or DefaultFile when the home directory
// is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFile
	}
	return filepath.Join(home, DefaultFile)
}

// New returns a logger writing timestamped, levelled records and a sync
// function to flush it before exit.
func New(opts Options) (logr.Logger, func() error, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-opts.Verbosity))
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{outputPath(opts.File)}
	cfg.ErrorOutputPaths = []string{"stderr"}

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), func() error { return nil }, err
	}

	return zapr.NewLogger(zl), zl.Sync, nil
}

func outputPath(file string) string {
	switch {
	case file == "" || file == "-":
		return "stderr"
	case strings.HasPrefix(file, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, file[2:])
		}
	}
	return file
}
