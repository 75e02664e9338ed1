package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"burn/internal/core"
	"burn/internal/layer"
	"burn/internal/logger"
	"burn/internal/render"
)

// Igniter is told how many cells caught fire during a tick.
type Igniter interface {
	Ignite(n int)
}

type burnStats interface {
	Tick() int
	Fires() int
	BurntFraction() float64
}

// TerminalOptions configures RunTerminal.
type TerminalOptions struct {
	// Text is the page being burnt. It may be nil.
	Text   layer.Layer
	Border bool
	Color  bool
	TPS    float64
	// Sound receives ignition counts when non-nil.
	Sound Igniter
}

// RunTerminal animates sim on screen until it is done, the user quits, the
// screen closes or ctx is cancelled. The caller owns screen initialisation
// and teardown.
func RunTerminal(ctx context.Context, screen tcell.Screen, sim core.Sim, opts TerminalOptions) error {
	l := logger.L(ctx)
	size := sim.Size()
	term := render.NewTerminal(screen, opts.Color)
	comp := layer.Compositor{Rows: size.Rows, Cols: size.Cols}

	static := scene(size, opts.Text, opts.Border)
	draw := func() {
		layers := append(static[:len(static):len(static)], sim.Layer())
		term.Draw(comp.Composite(layers...))
	}

	stats, _ := sim.(burnStats)
	fires := 0
	if stats != nil {
		fires = stats.Fires()
	}

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(core.TickInterval(opts.TPS))
	defer ticker.Stop()

	l.Info("burn started",
		zap.String("sim", sim.Name()),
		zap.Int("rows", size.Rows),
		zap.Int("cols", size.Cols))

	screen.HideCursor()
	draw()
	paused := false
	for !sim.Done() {
		select {
		case <-ctx.Done():
			l.Info("burn interrupted", zap.Error(ctx.Err()))
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				draw()
			case *tcell.EventKey:
				if quitKey(ev) {
					l.Info("burn quit by user")
					return nil
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
					paused = !paused
				}
			}
		case <-ticker.C:
			if paused {
				continue
			}
			sim.Step()
			if stats != nil {
				if n := stats.Fires(); n > fires {
					if opts.Sound != nil {
						opts.Sound.Ignite(n - fires)
					}
					fires = n
				}
				if ce := l.Check(zap.DebugLevel, "tick"); ce != nil {
					ce.Write(zap.Int("tick", stats.Tick()), zap.Int("fires", fires))
				}
			}
			draw()
		}
	}

	if stats != nil {
		l.Info("burn finished",
			zap.Int("tick", stats.Tick()),
			zap.Int("fires", stats.Fires()),
			zap.Float64("burnt", stats.BurntFraction()))
	}
	return nil
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
