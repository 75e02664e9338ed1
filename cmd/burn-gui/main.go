//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"burn/internal/app"
	"burn/internal/audio"
	"burn/internal/layer"
	"burn/internal/logger"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	rows := flag.Int("rows", 0, "grid rows (0 fits the monitor)")
	cols := flag.Int("cols", 0, "grid columns (0 fits the monitor)")
	flag.Parse()

	l, err := logger.New(logger.Options{Verbose: cfg.Verbose, Path: cfg.LogPath})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	var lines []string
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, app.ErrUsage)
		os.Exit(1)
	}
	if flag.NArg() == 1 {
		lines, err = app.OpenPage(flag.Arg(0))
		if err != nil {
			l.Fatal("read page", zap.String("path", flag.Arg(0)), zap.Error(err))
		}
	}

	if *rows <= 0 || *cols <= 0 {
		sw, sh := ebiten.ScreenSizeInFullscreen()
		fit := app.GameOptions{Scale: cfg.Scale, Pixels: cfg.Pixels}.GridForWindow(sw*3/4, sh*3/4)
		*rows, *cols = fit.Rows, fit.Cols
	}

	sim, err := cfg.NewSim(*rows, *cols)
	if err != nil {
		l.Fatal("build sim", zap.Error(err))
	}
	opts := app.GameOptions{
		Text:   layer.NewText(*rows, *cols, app.FitPage(lines, *rows), 1),
		Border: cfg.Border,
		Color:  cfg.Color,
		TPS:    cfg.TPS,
		Scale:  cfg.Scale,
		Pixels: cfg.Pixels,
	}
	if cfg.Sound {
		sound, closeSound := app.StartSound(logger.NewContext(context.Background(), l), os.Stderr, audio.NewPlayer())
		defer closeSound()
		opts.Sound = sound
	}

	game := app.New(sim, cfg.Seed, opts)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("burn: " + sim.Name())
	ebiten.SetWindowSize(w, h)

	l.Info("window opened",
		zap.String("sim", sim.Name()),
		zap.Int("rows", *rows),
		zap.Int("cols", *cols),
		zap.Bool("pixels", cfg.Pixels))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		l.Fatal("run game", zap.Error(err))
	}
}
