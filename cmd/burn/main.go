package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"burn/internal/app"
	"burn/internal/audio"
	"burn/internal/layer"
	"burn/internal/logger"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: burn [flags] FILE\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, app.ErrUsage)
		os.Exit(1)
	}
	if err := run(cfg, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, path string) error {
	lines, err := app.OpenPage(path)
	if err != nil {
		return err
	}

	// The screen owns the terminal, so logs only go to an explicit file.
	l, err := logger.New(logger.Options{
		Verbose: cfg.Verbose,
		Path:    cfg.LogPath,
		Discard: cfg.LogPath == "",
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.NewContext(ctx, l.With(zap.String("file", path)))

	// Sound starts before the screen so a failure is still visible.
	var sound app.Igniter
	if cfg.Sound {
		var closeSound func()
		sound, closeSound = app.StartSound(ctx, os.Stderr, audio.NewPlayer())
		defer closeSound()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	if rows < 3 || cols < 3 {
		return fmt.Errorf("terminal too small: %dx%d", cols, rows)
	}
	sim, err := cfg.NewSim(rows, cols)
	if err != nil {
		return err
	}

	opts := app.TerminalOptions{
		Text:   layer.NewText(rows, cols, app.FitPage(lines, rows), 1),
		Border: cfg.Border,
		Color:  cfg.Color,
		TPS:    cfg.TPS,
		Sound:  sound,
	}

	err = app.RunTerminal(ctx, screen, sim, opts)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
