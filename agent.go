package main

import (
	"context"
	"log/slog"

	"mdev0bit/lazyfinger/clicker"
	"mdev0bit/lazyfinger/config"
	"mdev0bit/lazyfinger/input"
	"mdev0bit/lazyfinger/storage"
)

// Notifier receives state changes the core reports back for display.
type Notifier interface {
	RunningChanged(running bool)
	HotkeyChanged(key string)
	TargetPicked(x, y int)
	TotalsChanged(sessions, clicks, clickedMs int64)
}

// Agent is the application root: it owns the settings store, the click
// scheduler, the global input listener and the session ledger, and exposes
// the entry points the tray drives.
type Agent struct {
	cfg     *config.Config
	cfgPath string
	store   *config.Store

	exec     clicker.Executor
	sched    *clicker.Scheduler
	hotkey   *input.Hotkey
	picker   *input.Picker
	listener *input.Listener

	db       *storage.DB
	notifier Notifier
}

// NewAgent wires the core together. db may be nil; session recording is then
// skipped.
func NewAgent(cfg *config.Config, cfgPath string, db *storage.DB) *Agent {
	a := &Agent{
		cfg:     cfg,
		cfgPath: cfgPath,
		db:      db,
	}

	a.store = config.NewStore(cfg.Settings)
	a.exec = clicker.NewExecutor()
	a.sched = clicker.NewScheduler(a.store, a.exec, slog.Default())
	a.sched.OnStateChange(a.runningChanged)
	a.sched.OnRunDone(a.recordSession)

	a.hotkey = input.NewHotkey(a.store, a.sched.Toggle, slog.Default())
	a.picker = input.NewPicker(a.store, slog.Default())
	a.listener = input.NewListener(a.hotkey, a.picker, slog.Default())

	return a
}

// SetNotifier registers the display surface. Must be called before Run.
func (a *Agent) SetNotifier(n Notifier) {
	a.notifier = n
}

// Store exposes the shared settings store to the UI boundary.
func (a *Agent) Store() *config.Store {
	return a.store
}

// Run installs the global input hook and blocks until ctx is cancelled, then
// tears everything down and flushes the settings document.
func (a *Agent) Run(ctx context.Context) error {
	a.listener.Start()
	slog.Info("LazyFinger started", "hotkey", a.store.Hotkey())

	if a.db != nil {
		if recent, err := a.db.GetRecentSessions(1); err == nil && len(recent) > 0 {
			last := recent[0]
			slog.Info("Previous session",
				"started_at", last.StartedAt, "clicks", last.Clicks, "reason", last.StopReason)
		}
	}
	a.publishTotals()

	<-ctx.Done()

	a.sched.Stop()
	a.picker.Cancel()
	a.hotkey.CancelCapture()
	a.listener.Close()
	a.flush()

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			slog.Warn("Failed to close session ledger", "error", err)
		}
	}

	return nil
}

// Toggle starts or stops the click cycle.
func (a *Agent) Toggle() {
	a.sched.Toggle()
}

// BeginHotkeyCapture arms rebind mode: the next key press becomes the toggle
// hotkey.
func (a *Agent) BeginHotkeyCapture() {
	slog.Info("Hotkey capture armed, press the new toggle key")
	a.hotkey.BeginCapture(func(key string) {
		if a.notifier != nil {
			a.notifier.HotkeyChanged(key)
		}
	})
}

// BeginLocationPick arms the one-shot location picker. Picking is mutually
// exclusive with clicking, so an active run is stopped first.
func (a *Agent) BeginLocationPick() {
	a.sched.Stop()
	slog.Info("Location pick armed, click the target position")
	a.picker.Begin(func(x, y int) {
		if a.notifier != nil {
			a.notifier.TargetPicked(x, y)
		}
	})
}

func (a *Agent) runningChanged(running bool) {
	if running {
		slog.Info("Clicking started")
	} else {
		slog.Info("Clicking stopped")
	}
	if a.notifier != nil {
		a.notifier.RunningChanged(running)
	}
}

// recordSession writes one finished cycle into the ledger. Best effort only.
func (a *Agent) recordSession(sum clicker.RunSummary) {
	if a.db == nil {
		return
	}

	reason := storage.ReasonStopped
	if sum.Completed {
		reason = storage.ReasonCompleted
	}

	err := a.db.InsertSession(storage.Session{
		StartedAt:   sum.StartedAt,
		Duration:    sum.Duration,
		Clicks:      sum.Clicks,
		MouseButton: sum.Settings.MouseButton,
		ClickType:   sum.Settings.ClickType,
		IntervalMs:  clicker.IntervalMillis(sum.Settings),
		StopReason:  reason,
	})
	if err != nil {
		slog.Warn("Failed to record session", "error", err)
		return
	}
	a.publishTotals()
}

// publishTotals pushes the ledger aggregates to the display surface.
func (a *Agent) publishTotals() {
	if a.db == nil || a.notifier == nil {
		return
	}

	totals, err := a.db.GetTotals()
	if err != nil {
		slog.Warn("Failed to read session totals", "error", err)
		return
	}
	a.notifier.TotalsChanged(int64(totals.Sessions), totals.TotalClicks, totals.TotalTimeMs)
}

// flush folds the live settings and the click counter back into the document
// and saves it. Persistence failures are logged, never fatal.
func (a *Agent) flush() {
	a.cfg.Settings = a.store.Snapshot()
	a.cfg.Metadata.TotalClicks += a.exec.Clicks()

	if err := config.Save(a.cfgPath, a.cfg); err != nil {
		slog.Warn("Failed to save settings document", "error", err)
	}
}
