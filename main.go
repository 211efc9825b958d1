package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"mdev0bit/lazyfinger/config"
	"mdev0bit/lazyfinger/platform"
	"mdev0bit/lazyfinger/storage"
	"mdev0bit/lazyfinger/systray"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	platform.Init()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Continuing with default settings", "error", err)
	}
	cfgPath, _ := config.Path()
	slog.Info("Configuration loaded", "path", cfgPath)

	var db *storage.DB
	if dir, err := config.Dir(); err == nil {
		db, err = storage.Open(dir)
		if err != nil {
			slog.Warn("Session ledger unavailable", "error", err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	agent := NewAgent(cfg, cfgPath, db)

	tray := systray.NewManager(systray.Callbacks{
		Toggle: agent.Toggle,
		Rebind: agent.BeginHotkeyCapture,
		Pick:   agent.BeginLocationPick,
		Quit:   cancel,
	}, cfg.Settings.Hotkey, nil)
	agent.SetNotifier(tray)

	done := make(chan error, 1)
	go func() {
		done <- agent.Run(ctx)
	}()

	// The tray must own the main goroutine; closing ctx (signal or Quit
	// menu) tears it down.
	go func() {
		<-ctx.Done()
		tray.Stop()
	}()
	tray.Run()

	cancel()
	if err := <-done; err != nil {
		slog.Error("Agent error", "error", err)
		os.Exit(1)
	}

	slog.Info("LazyFinger stopped")
}
