package clicker

import (
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"mdev0bit/lazyfinger/config"
)

// RunSummary describes one completed click cycle.
type RunSummary struct {
	StartedAt time.Time
	Duration  time.Duration
	Clicks    int
	Settings  config.Settings
	// Completed is true when a fixed repeat count exhausted itself, false
	// when the run was stopped externally.
	Completed bool
}

// Scheduler owns the Idle/Running state machine and the background click
// cycle. At most one cycle runs at a time; Start while running and Stop while
// idle are no-ops.
type Scheduler struct {
	store *config.Store
	exec  Executor
	log   *slog.Logger

	// onState is called synchronously from Start/Stop with the new state.
	onState func(running bool)
	// onDone receives a summary when a cycle ends, after the state flip.
	onDone func(RunSummary)

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	// done is the current cycle's completion channel, closed when its
	// goroutine exits. The next Start chains on it so cycles never overlap.
	done chan struct{}
}

// NewScheduler creates an idle scheduler.
func NewScheduler(store *config.Store, exec Executor, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{store: store, exec: exec, log: log}
}

// OnStateChange registers the running/idle observer. Must be set before
// Start; the callback runs synchronously inside Start and Stop.
func (s *Scheduler) OnStateChange(fn func(running bool)) {
	s.onState = fn
}

// OnRunDone registers the cycle-summary observer.
func (s *Scheduler) OnRunDone(fn func(RunSummary)) {
	s.onDone = fn
}

// Running reports whether a click cycle is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start transitions Idle -> Running and spawns the click cycle. Observers are
// notified before Start returns. A previous cycle that is still draining its
// final click is joined before the new one begins; the join is captured under
// the lock together with the state flip and happens off the calling
// goroutine, so Start never blocks and never chains on a cycle newer than
// itself.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	stop := make(chan struct{})
	done := make(chan struct{})
	prev := s.done
	s.stop = stop
	s.done = done
	s.mu.Unlock()

	if s.onState != nil {
		s.onState(true)
	}

	go func() {
		if prev != nil {
			<-prev
		}
		s.run(stop, done)
	}()
}

// Stop raises the stop signal and transitions Running -> Idle. The cycle
// observes the signal mid-wait and exits without another click; a click
// already in flight is allowed to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	s.mu.Unlock()

	if s.onState != nil {
		s.onState(false)
	}
}

// stopSelf is the cycle's own termination path. It only flips the state if
// the cycle is still the current one, so a Stop/Start pair racing the final
// target check cannot have its fresh run torn down.
func (s *Scheduler) stopSelf(stop chan struct{}) {
	s.mu.Lock()
	if !s.running || s.stop != stop {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	s.mu.Unlock()

	if s.onState != nil {
		s.onState(false)
	}
}

// Toggle stops a running scheduler and starts an idle one. This is the entry
// point bound to the hotkey and the tray.
func (s *Scheduler) Toggle() {
	if s.Running() {
		s.Stop()
	} else {
		s.Start()
	}
}

// run is the click cycle. The repeat target is fixed from a snapshot taken
// here; every click re-reads the store so button, type and position edits
// take effect mid-run.
func (s *Scheduler) run(stop, done chan struct{}) {
	defer close(done)

	startedAt := time.Now()
	entry := s.store.Snapshot()

	target := -1
	if entry.RepeatMode == config.RepeatFixed {
		target = parseRepeatCount(entry.RepeatCount)
	}

	clicks := 0
	completed := false

loop:
	for {
		select {
		case <-stop:
			break loop
		default:
		}

		// The target check precedes the click: a target already met
		// performs zero clicks.
		if target >= 0 && clicks >= target {
			completed = true
			s.stopSelf(stop)
			break
		}

		cur := s.store.Snapshot()
		s.exec.Fire(cur)
		clicks++

		timer := time.NewTimer(Wait(cur))
		select {
		case <-stop:
			timer.Stop()
			break loop
		case <-timer.C:
		}
	}

	s.log.Debug("Click cycle finished", "clicks", clicks, "completed", completed)

	if s.onDone != nil {
		s.onDone(RunSummary{
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Clicks:    clicks,
			Settings:  entry,
			Completed: completed,
		})
	}
}

// parseRepeatCount resolves the fixed repeat target. A non-numeric count
// falls back to 1; values <= 0 are kept and behave as already satisfied.
func parseRepeatCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}
