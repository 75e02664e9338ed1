// Package logger builds zap loggers and carries them through a context.
package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// Options selects the encoder and destination of a logger.
type Options struct {
	// Verbose switches to the human-readable development encoder at debug
	// level.
	Verbose bool
	// Path redirects output to a file. Empty means stderr.
	Path string
	// Discard returns a no-op logger regardless of the other options.
	Discard bool
}

// New constructs a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	if opts.Discard {
		return zap.NewNop(), nil
	}
	var cfg zap.Config
	if opts.Verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	if opts.Path != "" {
		cfg.OutputPaths = []string{opts.Path}
		cfg.ErrorOutputPaths = []string{opts.Path}
	}
	return cfg.Build()
}

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// L returns the logger stored in ctx, or the global logger.
func L(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	return zap.L()
}
