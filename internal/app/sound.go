package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"burn/internal/logger"
)

// SoundPlayer is an Igniter with a lifecycle, such as audio.Player.
type SoundPlayer interface {
	Igniter
	Init() error
	Close()
}

// StartSound initialises p. On failure the warning goes to w as well as the
// log and the returned Igniter is nil. stop is always safe to call.
func StartSound(ctx context.Context, w io.Writer, p SoundPlayer) (Igniter, func()) {
	if err := p.Init(); err != nil {
		fmt.Fprintf(w, "burn: sound disabled: %v\n", err)
		logger.L(ctx).Warn("sound disabled", zap.Error(err))
		return nil, func() {}
	}
	return p, p.Close
}
